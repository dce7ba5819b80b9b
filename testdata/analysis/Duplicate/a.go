//go:build ordinalize

package testdata

import "github.com/caelunshun/ordinalize"

type Color int

const (
	Red Color = iota
	Green
)

type Hue = Color

var ColorOrdinal = ordinalize.Ordinal[Color]() // ok
