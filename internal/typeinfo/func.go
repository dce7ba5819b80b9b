package typeinfo

import (
	"fmt"
	"go/token"
	"go/types"
)

// Func describes an ordinal function, func(X) uint. It is declared by a
// package-level variable holding an ordinalize.Ordinal directive, or created
// programmatically by [NewFunc].
type Func struct {
	obj types.Object
	x   Type
}

func (fn Func) Object() types.Object { return fn.obj }
func (fn Func) Name() string {
	if fn.obj == nil {
		return ""
	}
	return fn.obj.Name()
}

// X returns the input type, the enum type.
func (fn Func) X() Type { return fn.x }

// TypeInfo implements [Typed]. Ordinal functions are indexed by their input
// types.
func (fn Func) TypeInfo() Type { return fn.x }

// Pos returns where the function is declared.
func (fn Func) Pos() token.Pos {
	if fn.obj == nil {
		return token.NoPos
	}
	return fn.obj.Pos()
}

// NewFunc creates a new [Func] named name which takes x.
func NewFunc(pkg *types.Package, name string, x Type) Func {
	params := types.NewTuple(types.NewVar(token.NoPos, pkg, "in", x.T))
	results := types.NewTuple(types.NewVar(token.NoPos, pkg, "", types.Typ[types.Uint]))
	sig := types.NewSignatureType(nil, nil, nil, params, results, false)
	return Func{obj: types.NewFunc(token.NoPos, pkg, name, sig), x: x}
}

// FuncOf inspects the given object and returns a new [Func]. It returns an
// error if the object is not a func(X) uint.
func FuncOf(obj types.Object) (Func, error) {
	if obj == nil {
		return Func{}, fmt.Errorf("func: no object")
	}

	sig, ok := obj.Type().Underlying().(*types.Signature)
	if !ok {
		return Func{}, fmt.Errorf("func: not signature type")
	}

	params, results := sig.Params(), sig.Results()
	if params.Len() != 1 || results.Len() != 1 || sig.Variadic() {
		return Func{}, fmt.Errorf("expected signature: [func(X) uint]")
	}
	if !types.Identical(results.At(0).Type(), types.Typ[types.Uint]) {
		return Func{}, fmt.Errorf("expected signature: [func(X) uint]")
	}

	return Func{obj: obj, x: TypeOf(params.At(0).Type())}, nil
}
