//go:build ordinalize

package main

import (
	"fmt"

	"github.com/caelunshun/ordinalize"
)

var TestOrdinal = ordinalize.Ordinal[Test]()

func main() {
	// Output: 0 1 2 3
	fmt.Println(
		TestOrdinal(A(43223)),
		TestOrdinal(B{named1: "hello", named2: nil}),
		TestOrdinal(C{I64(10), I32(0)}),
		TestOrdinal(D{}),
	)
}
