//go:build ordinalize

package testdata

import "github.com/caelunshun/ordinalize"

type Color int

const (
	Red Color = iota
	Green
)

var _ = ordinalize.Ordinal[Color]() // want `cannot assign ordinal function to blank identifier`
