// Package arm synthesizes and writes the switch arms of ordinal functions.
package arm

import (
	"strings"

	"github.com/caelunshun/ordinalize/internal/ordinalize/variant"
)

// Arm is a switch arm matching any value of a variant regardless of its
// fields. It is paired with the ordinal of the variant.
type Arm struct {
	variant.Variant
	Ordinal uint
}

// Synthesize creates arms for the variants of the declaration. The i-th variant
// in declaration order is assigned the ordinal i, regardless of its name or
// shape.
func Synthesize(decl variant.Decl) []Arm {
	arms := make([]Arm, len(decl.Variants))
	for i, v := range decl.Variants {
		arms[i] = Arm{Variant: v, Ordinal: uint(i)}
	}
	return arms
}

// Rule returns the pattern the arm matches in a compact notation. Field names
// are never listed, so the rule of a variant does not change when its fields
// are renamed:
//
//	Empty       // no fields
//	Celsius(_)  // 1 unnamed field
//	Pair(_, _)  // 2 unnamed fields
//	Circle{..}  // any named fields
func (a Arm) Rule() string {
	switch a.Shape {
	case variant.UnnamedFields:
		if a.Arity == 0 {
			return a.Name
		}
		return a.Name + "(" + strings.Repeat("_, ", a.Arity-1) + "_)"
	case variant.NamedFields:
		return a.Name + "{..}"
	}
	return a.Name
}
