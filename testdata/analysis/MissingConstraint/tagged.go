//go:build ordinalize

package testdata

import "github.com/caelunshun/ordinalize"

type Color int

const (
	Red Color = iota
	Green
)

var ColorOrdinal = ordinalize.Ordinal[Color]() // ok
