package variant

import (
	"cmp"
	"go/constant"
	"go/token"
	"go/types"
	"slices"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/caelunshun/ordinalize/internal/typeinfo"
)

// declared returns objects of the scope in declaration order. Objects are
// ordered by file name and then by their position in the file, which does not
// depend on the order the files were parsed in.
func declared(fset *token.FileSet, scope *types.Scope) []types.Object {
	var objs []types.Object
	for _, name := range scope.Names() {
		objs = append(objs, scope.Lookup(name))
	}

	slices.SortStableFunc(objs, func(a, b types.Object) int {
		pa, pb := fset.Position(a.Pos()), fset.Position(b.Pos())
		return cmp.Or(
			cmp.Compare(pa.Filename, pb.Filename),
			cmp.Compare(pa.Line, pb.Line),
			cmp.Compare(pa.Column, pb.Column),
		)
	})
	return objs
}

// collectUnion collects named types implementing the union interface from the
// package where the interface is declared.
func collectUnion(fset *token.FileSet, union typeinfo.Type) []Variant {
	// type name -> Variant
	variants := linkedhashmap.New()

	for _, obj := range declared(fset, union.Pkg().Scope()) {
		name, ok := obj.(*types.TypeName)
		if !ok || name.IsAlias() {
			continue
		}

		t := typeinfo.TypeOf(name.Type())
		if !t.IsNamed() || t.IsInterface() || t.IsGeneric() {
			continue
		}
		if wrapsUnion(t, union) {
			continue
		}

		v := Variant{Name: name.Name(), obj: name}
		if t.Implements(union) {
			v.Value = &t
		}
		if ref := t.Ref(); ref.Implements(union) {
			// Methods of value receivers are also in the method set of the
			// pointer type. So the pointer type implements the union whenever
			// the value type does.
			v.Pointer = &ref
		}
		if v.Value == nil && v.Pointer == nil {
			continue
		}

		v.Shape, v.Arity = ShapeOf(t)
		variants.Put(v.Name, v)
	}

	return collectValues(variants)
}

// collectEnum collects constants of the enum type from the package where the
// enum type is declared. A constant having the same value as an earlier one is
// an alias, not a variant.
func collectEnum(fset *token.FileSet, enum typeinfo.Type) []Variant {
	// constant value -> Variant
	variants := linkedhashmap.New()

	for _, obj := range declared(fset, enum.Pkg().Scope()) {
		con, ok := obj.(*types.Const)
		if !ok {
			continue
		}

		if !typeinfo.TypeOf(con.Type()).Identical(enum) {
			continue
		}

		if con.Val().Kind() == constant.Unknown {
			// Invalid constant expression
			continue
		}
		key := con.Val().ExactString()
		if prev, found := variants.Get(key); found {
			// An alias of the earlier constant keeps its ordinal, but an
			// exported alias names it for other packages.
			if !prev.(Variant).Exported() && con.Exported() {
				variants.Put(key, Variant{
					Name:  con.Name(),
					Shape: NoFields,
					Const: con,
					obj:   con,
				})
			}
			continue
		}

		variants.Put(key, Variant{
			Name:  con.Name(),
			Shape: NoFields,
			Const: con,
			obj:   con,
		})
	}

	return collectValues(variants)
}

// wrapsUnion reports whether t embeds an interface implementing the union,
// such as "type Wrap struct{ Shape }", directly or through embedded structs.
// Such a type holds another variant instead of being one.
func wrapsUnion(t, union typeinfo.Type) bool {
	if !t.IsStruct() {
		return false
	}
	for field := range t.Struct.Fields() {
		if !field.Embedded() {
			continue
		}
		embedded := typeinfo.TypeOf(field.Type())
		if embedded.IsInterface() && embedded.Implements(union) {
			return true
		}
		if wrapsUnion(embedded, union) {
			return true
		}
	}
	return false
}

func collectValues(m *linkedhashmap.Map) []Variant {
	variants := make([]Variant, 0, m.Size())
	for _, v := range m.Values() {
		variants = append(variants, v.(Variant))
	}
	return variants
}
