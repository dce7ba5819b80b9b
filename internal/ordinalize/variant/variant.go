// Package variant collects the variants of enum types in declaration order.
//
// Go has two idiomatic enum encodings, and both are collected:
//
//   - A union is a named interface type with at least one method. Its variants
//     are the named types in the same package implementing it, except structs
//     embedding an interface which implements the union. Those wrap a variant.
//   - An enum is a named basic type. Its variants are the constants of the
//     type in the same package. A constant with the value of an earlier one is
//     an alias of the same variant, which is named by the first exported one.
//
// Any other type is not an enum and [Collect] fails with [ErrNotEnum].
package variant

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"

	"github.com/caelunshun/ordinalize/internal/typeinfo"
)

// Kind is the enum encoding of a declaration.
type Kind int

const (
	// Union is a named interface type implemented by its variants.
	Union Kind = iota + 1

	// Enum is a named basic type with typed constants as its variants.
	Enum
)

func (k Kind) String() string {
	switch k {
	case Union:
		return "union"
	case Enum:
		return "enum"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is the field-arity category of a variant.
type Shape int

const (
	// NoFields is a variant without fields, such as an enum constant or an
	// empty struct.
	NoFields Shape = iota

	// UnnamedFields is a variant with a fixed number of unnamed fields: a
	// struct with only embedded fields, or a type defined on a non-struct
	// type which carries exactly one unnamed value.
	UnnamedFields

	// NamedFields is a struct variant with at least one named field. The
	// number of fields does not matter.
	NamedFields
)

func (s Shape) String() string {
	switch s {
	case NoFields:
		return "no fields"
	case UnnamedFields:
		return "unnamed fields"
	case NamedFields:
		return "named fields"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Variant is one alternative of an enum type.
type Variant struct {
	// Name is the type name of a union variant or the constant name of an enum
	// variant. It is unique within the enum type.
	Name string

	Shape Shape

	// Arity is the number of unnamed fields. It is zero unless Shape is
	// UnnamedFields.
	Arity int

	// Value and Pointer are the types implementing the union. Either or both
	// of them are set for a union variant. Both are nil for an enum variant.
	Value   *typeinfo.Type
	Pointer *typeinfo.Type

	// Const is the constant of an enum variant.
	Const *types.Const

	obj types.Object
}

// Object returns the declared type name or constant of the variant.
func (v Variant) Object() types.Object { return v.obj }

// Pos returns the declaration position of the variant.
func (v Variant) Pos() token.Pos { return v.obj.Pos() }

// Exported reports whether the variant can be referred from other packages.
func (v Variant) Exported() bool { return v.obj.Exported() }

// Decl is a declaration of an enum type with its variants in declaration order.
type Decl struct {
	Type     typeinfo.Type
	Kind     Kind
	Variants []Variant
}

// TypeInfo returns the enum type.
func (d Decl) TypeInfo() typeinfo.Type { return d.Type }

// Pkg returns the package where the enum type is declared.
func (d Decl) Pkg() *types.Package { return d.Type.Pkg() }

// ErrNotEnum is wrapped by errors of [Collect] when the type is not an enum.
var ErrNotEnum = errors.New("not an enum")

// NotEnumError describes why a type is not an enum. It wraps [ErrNotEnum].
type NotEnumError struct {
	Type   typeinfo.Type
	Reason string
}

func (e *NotEnumError) Error() string { return e.Reason }
func (e *NotEnumError) Unwrap() error { return ErrNotEnum }

func notEnum(t typeinfo.Type, format string, args ...any) error {
	return &NotEnumError{Type: t, Reason: fmt.Sprintf(format, args...)}
}

// Collect collects the variants of the enum type t in declaration order. fset
// must be the file set the declarations of t were parsed with. If t is not an
// enum, it returns an error wrapping [ErrNotEnum].
func Collect(fset *token.FileSet, t typeinfo.Type) (Decl, error) {
	if t.IsGeneric() || t.IsInstantiated() {
		return Decl{}, notEnum(t, "generic types have no fixed variants")
	}

	switch {
	case t.IsInterface():
		if !t.IsNamed() {
			return Decl{}, notEnum(t, "unnamed interface types have no variants")
		}
		if t.Pkg() == nil {
			return Decl{}, notEnum(t, "predeclared types have no variants")
		}
		if t.Interface.NumMethods() == 0 {
			return Decl{}, notEnum(t, "interface types without methods are implemented by every type")
		}
		return Decl{Type: t, Kind: Union, Variants: collectUnion(fset, t)}, nil

	case t.IsBasic():
		if !t.IsNamed() || t.Pkg() == nil {
			return Decl{}, notEnum(t, "predeclared types have no variants")
		}
		variants := collectEnum(fset, t)
		if len(variants) == 0 {
			return Decl{}, notEnum(t, "no constants of the type are declared")
		}
		return Decl{Type: t, Kind: Enum, Variants: variants}, nil
	}

	return Decl{}, notEnum(t, "%s types have no variants", kindOf(t.Type().Underlying()))
}

// kindOf describes the kind of the underlying type.
func kindOf(t types.Type) string {
	switch t.(type) {
	case *types.Struct:
		return "struct"
	case *types.Pointer:
		return "pointer"
	case *types.Slice:
		return "slice"
	case *types.Array:
		return "array"
	case *types.Map:
		return "map"
	case *types.Chan:
		return "channel"
	case *types.Signature:
		return "function"
	case *types.TypeParam:
		return "type parameter"
	}
	return "such"
}

// ShapeOf determines the shape of a union variant type and the number of its
// unnamed fields. Named fields take precedence: a struct with any named field
// has NamedFields shape regardless of its embedded fields.
func ShapeOf(t typeinfo.Type) (Shape, int) {
	if !t.IsStruct() {
		// type Celsius float64
		return UnnamedFields, 1
	}

	n := t.Struct.NumFields()
	if n == 0 {
		// type Empty struct{}
		return NoFields, 0
	}

	for field := range t.Struct.Fields() {
		if !field.Embedded() {
			// type Circle struct{ Radius float64 }
			return NamedFields, 0
		}
	}

	// type Pair struct{ Left; Right }
	return UnnamedFields, n
}
