//go:build ordinalize

package main

import (
	"fmt"

	"github.com/caelunshun/ordinalize"
)

type Color int

const (
	Red Color = iota
	Green
	Blue

	Default = Red
)

var ColorOrdinal = ordinalize.Ordinal[Color]()

func main() {
	// Output: 0 1 2 0
	fmt.Println(ColorOrdinal(Red), ColorOrdinal(Green), ColorOrdinal(Blue), ColorOrdinal(Default))
}
