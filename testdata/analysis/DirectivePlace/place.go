//go:build ordinalize

package testdata

import "github.com/caelunshun/ordinalize"

type Color int

const (
	Red Color = iota
	Green
)

// Legal: package-level variable
var ColorOrdinal = ordinalize.Ordinal[Color]()

// Legal: parenthesized
var ParenOrdinal = (ordinalize.Ordinal[Color]()) // want `duplicate ordinal function for Color`

// Illegal: called immediately
var redOrdinal = ordinalize.Ordinal[Color]()(Red) // want `cannot use Ordinal outside package-level variable declaration`

// Illegal: multiple values from a single expression are never directives
var first, second = pair(ordinalize.Ordinal[Color]()) // want `cannot use Ordinal outside package-level variable declaration`

func pair(f func(Color) uint) (uint, uint) { return f(Red), f(Green) }

func insideFunc() {
	// Illegal: declare with ":="
	f := ordinalize.Ordinal[Color]() // want `cannot use Ordinal outside package-level variable declaration`
	_ = f

	// Illegal: declare with "var ="
	var g = ordinalize.Ordinal[Color]() // want `cannot use Ordinal outside package-level variable declaration`
	_ = g

	// Illegal: call without assignment
	ordinalize.Ordinal[Color]() // want `cannot use Ordinal outside package-level variable declaration`
}
