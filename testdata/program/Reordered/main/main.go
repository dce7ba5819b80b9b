//go:build ordinalize

package main

import (
	"fmt"

	"github.com/caelunshun/ordinalize"
)

var TestOrdinal = ordinalize.Ordinal[Test]()

func main() {
	// Output: 3 2 1 0
	fmt.Println(
		TestOrdinal(A(43223)),
		TestOrdinal(B{named1: "hello"}),
		TestOrdinal(C{I64(10), I32(0)}),
		TestOrdinal(D{}),
	)
}
