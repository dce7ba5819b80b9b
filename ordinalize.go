// Package ordinalize provides a directive for generating ordinal functions of
// enum types.
//
// An ordinal is the zero-based declaration index of the variant a value holds.
// Ordinalize understands both enum encodings Go code uses: union-style
// interfaces implemented by a closed set of types, and named basic types with
// typed constants. Fields carried by a variant never affect its ordinal.
//
// To start with Ordinalize, add a build constraint to files containing
// Ordinalize directives:
//
//	//go:build ordinalize
//
// Then declare an ordinal function with [Ordinal]:
//
//	// source:
//	type Shape interface{ isShape() }
//
//	type Empty struct{}
//	type Circle struct{ Radius float64 }
//	type Pair struct {
//		Left
//		Right
//	}
//
//	var ShapeOrdinal = ordinalize.Ordinal[Shape]()
//
//	// generated:
//	func ShapeOrdinal(in Shape) uint {
//		switch in.(type) {
//		case Empty, *Empty: // Empty
//			return 0
//		case Circle, *Circle: // Circle{..}
//			return 1
//		case Pair, *Pair: // Pair(_, _)
//			return 2
//		}
//		panic(ordinalizeerrors.NoVariant("Shape", in))
//	}
//
// After declaring ordinal functions, run the ordinalize command. It will
// generate ordinalize_gen.go for your package:
//
//	go run github.com/caelunshun/ordinalize/cmd/ordinalize
//
// # Declaration order
//
// Variants are ordered as they are declared: by file name first, then by their
// position in the file. Enum constants sharing the value of an earlier constant
// are aliases and do not take an ordinal:
//
//	type Color int
//
//	const (
//		Red   Color = iota // 0
//		Green              // 1
//		Blue               // 2
//
//		Default = Red // alias of Red
//	)
//
// # Unsupported types
//
// Types other than unions and enums have no variants. Requesting an ordinal
// function for them fails at the directive:
//
//	main.go:12:22: cannot derive ordinal on Point which is not an enum
//		struct types have no variants
package ordinalize

// Ordinal directive generates an ordinal function for the enum type T. The
// variable that holds the directive is rewritten to the actual function when
// Ordinalize generates code:
//
//	// source:
//	var ColorOrdinal = ordinalize.Ordinal[Color]()
//
//	// generated:
//	func ColorOrdinal(in Color) uint {
//		switch in {
//		case Red:
//			return 0
//		case Green:
//			return 1
//		case Blue:
//			return 2
//		}
//		panic(ordinalizeerrors.NoVariant("Color", in))
//	}
//
// T is either an interface type with at least one method, whose variants are
// the types in its package implementing it, or a named basic type, whose
// variants are the constants of that type in its package.
//
// The generated function panics with an error wrapping
// [ordinalizeerrors.ErrNoVariant] when the value holds no declared variant,
// such as a nil interface or a converted integer out of the declared constants.
func Ordinal[T any]() func(T) uint {
	panic("ordinalize: not generated")
}
