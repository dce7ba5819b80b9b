//go:build ordinalize

package main

import (
	"fmt"

	"github.com/caelunshun/ordinalize"
)

type Test int

const (
	A Test = iota
	B
	C
	D
	E
	F
	G
)

var TestOrdinal = ordinalize.Ordinal[Test]()

func main() {
	for _, v := range []Test{A, B, C, D, E, F, G} {
		fmt.Print(TestOrdinal(v), " ")
	}
	fmt.Println()
}
