package typeinfo

import (
	"go/token"
	"go/types"
)

// Type is a [types.Type] taken apart into the pieces that decide whether it
// can be an enum. Aliases are resolved. Only one of Basic, Struct, Interface
// and Pointer is set, after the underlying type of a named type. Other kinds,
// such as slices or channels, only have T.
type Type struct {
	T types.Type

	Named     *types.Named
	Basic     *types.Basic
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer

	// Elem is the element type of a pointer.
	Elem *Type
}

// TypeOf takes t apart.
func TypeOf(t types.Type) Type {
	t = types.Unalias(t)

	if named, ok := t.(*types.Named); ok {
		info := TypeOf(named.Underlying())
		info.T, info.Named = t, named
		return info
	}

	info := Type{T: t}
	switch t := t.(type) {
	case *types.Basic:
		info.Basic = t
	case *types.Struct:
		info.Struct = t
	case *types.Interface:
		info.Interface = t
	case *types.Pointer:
		elem := TypeOf(t.Elem())
		info.Pointer, info.Elem = t, &elem
	}
	return info
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsNamed() bool     { return t.Named != nil }
func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }

func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// Pkg returns the package declaring the named type, or nil.
func (t Type) Pkg() *types.Package {
	if t.Named == nil {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Name returns the name of the named type, or "".
func (t Type) Name() string {
	if t.Named == nil {
		return ""
	}
	return t.Named.Obj().Name()
}

// Pos returns where the named type, or the named type a pointer refers to, is
// declared.
func (t Type) Pos() token.Pos {
	t = t.Deref()
	if t.Named == nil {
		return token.NoPos
	}
	return t.Named.Obj().Pos()
}

// Ref returns the type of pointers to t.
func (t Type) Ref() Type { return TypeOf(types.NewPointer(t.T)) }

// Deref follows pointers down to a non-pointer type.
func (t Type) Deref() Type {
	for t.Pointer != nil {
		t = *t.Elem
	}
	return t
}

// Implements reports whether t implements the interface u. It is false when u
// is not an interface.
func (t Type) Implements(u Type) bool {
	return u.Interface != nil && types.Implements(t.T, u.Interface)
}

// IsGeneric reports whether a type parameter is still open somewhere in t.
// Box[T] is generic while Box[int] is not.
func (t Type) IsGeneric() bool { return hasTypeParam(t.T) }

// IsInstantiated reports whether t instantiates a generic type, such as
// Box[int].
func (t Type) IsInstantiated() bool {
	return t.Named != nil && t.Named.TypeArgs().Len() != 0
}

func hasTypeParam(t types.Type) bool {
	switch t := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true
	case *types.Pointer:
		return hasTypeParam(t.Elem())
	case *types.Signature:
		return t.TypeParams().Len() != 0
	case *types.Named:
		if t.TypeParams().Len() != 0 && t.TypeArgs().Len() == 0 {
			// Box[T]
			return true
		}
		for arg := range t.TypeArgs().Types() {
			if hasTypeParam(arg) {
				// Box[T] inside another generic declaration
				return true
			}
		}
	case *types.Struct:
		for field := range t.Fields() {
			if hasTypeParam(field.Type()) {
				return true
			}
		}
	case *types.Interface:
		for method := range t.Methods() {
			if hasTypeParam(method.Type()) {
				return true
			}
		}
	}
	return false
}
