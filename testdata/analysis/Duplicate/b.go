//go:build ordinalize

package testdata

import "github.com/caelunshun/ordinalize"

var (
	AnotherColorOrdinal = ordinalize.Ordinal[Color]() // want `duplicate ordinal function for Color\n\tprevious declaration at .*a.go:16:20`
	HueOrdinal          = ordinalize.Ordinal[Hue]()   // want `duplicate ordinal function for Color`
)
