//go:build ordinalize

package main

import (
	"fmt"

	"example.com/ImportedEnum/colors"
	"github.com/caelunshun/ordinalize"
)

var ColorOrdinal = ordinalize.Ordinal[colors.Color]()

func main() {
	// Output: 2 1 0
	fmt.Println(ColorOrdinal(colors.Blue), ColorOrdinal(colors.Green), ColorOrdinal(colors.Red))
}
