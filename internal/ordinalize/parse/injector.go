package parse

import (
	"cmp"
	"errors"
	"go/ast"
	"go/token"
	"iter"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/caelunshun/ordinalize/internal/codefmt"
	"github.com/caelunshun/ordinalize/internal/ordinalize/variant"
	"github.com/caelunshun/ordinalize/internal/typeinfo"
)

// Injector represents an ordinal function request declared by an
// ordinalize.Ordinal directive:
//
//	var ShapeOrdinal = ordinalize.Ordinal[Shape]()
//	    ^^^^^^^^^^^^   ^^^^^^^^^^^^^^^^^^^^^^^^^^^
//	    Func.Name()    pos
type Injector struct {
	typeinfo.Func
	Decl variant.Decl

	pkg *packages.Package
	pos token.Pos

	Doc     *ast.CommentGroup
	Comment *ast.CommentGroup
}

// Pkg returns the package where the injector is called. Injector implements
// [codefmt.Pkger] by this method.
func (inj Injector) Pkg() *packages.Package { return inj.pkg }

// Pos returns the token position where the injector is called. Injector
// implements [codefmt.Poser] by this method.
func (inj Injector) Pos() token.Pos { return inj.pos }

// String returns a string representation of the injector. For example,
// "ordinalize.Ordinal[Shape]".
func (inj Injector) String() string {
	return codefmt.Sprintf(inj, "ordinalize.Ordinal[%t]", inj.X())
}

// ParseInjectors parses all [Injector]s from the AST in the order of their
// positions. It collects all errors instead of stopping at the first error.
func (p *Parser) ParseInjectors() ([]Injector, error) {
	var errs error
	// requested type -> Injector
	requested := typeinfo.NewLookup[Injector]()

	for _, file := range p.OrdinalizeGoFiles() {
		for id, call := range p.FindInjectors(file) {
			inj, err := p.parseInjector(id, call)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			if prev, ok := requested.Put(inj); !ok {
				err := codefmt.Errorf(p, call, `duplicate ordinal function for %t
	previous declaration at %b`, inj.X(), prev)
				errs = errors.Join(errs, err)
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	injs := make([]Injector, 0, requested.Len())
	for inj := range requested.Range() {
		injs = append(injs, inj)
	}
	slices.SortFunc(injs, func(a, b Injector) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return injs, nil
}

// FindInjectors iterates ordinalize.Ordinal calls assigned to package-level
// variables in the file. The variable identifier is yielded with the call.
func (p *Parser) FindInjectors(file *ast.File) iter.Seq2[*ast.Ident, *ast.CallExpr] {
	return func(yield func(*ast.Ident, *ast.CallExpr) bool) {
		for val := range p.valueSpecs(file) {
			if len(val.Names) != len(val.Values) {
				// Injectors should return exactly one value. The
				// assignment like this is invalid:
				// a, b := ordinalize.Ordinal[Shape]()
				continue
			}

			for i := range val.Values {
				call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
				if !ok || !p.IsDirective(call, "Ordinal") {
					continue
				}

				if !yield(val.Names[i], call) {
					return
				}
			}
		}
	}
}

// valueSpecs iterates package-level var and const specs in the file.
func (p *Parser) valueSpecs(file *ast.File) iter.Seq[*ast.ValueSpec] {
	return func(yield func(*ast.ValueSpec) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				// A sole spec without parentheses has its doc comment on the
				// declaration.
				if val.Doc == nil && !gen.Lparen.IsValid() {
					val.Doc = gen.Doc
				}

				if !yield(val) {
					return
				}
			}
		}
	}
}

// parseInjector parses an [Injector] from the given AST nodes. The enum type
// given as the type argument is inspected here. If it is not an enum, the error
// is reported at the call.
func (p *Parser) parseInjector(id *ast.Ident, call *ast.CallExpr) (Injector, error) {
	if id.Name == "_" {
		return Injector{}, codefmt.Errorf(p, id, "cannot assign ordinal function to blank identifier")
	}

	if len(call.Args) != 0 {
		return Injector{}, codefmt.Errorf(p, call, "need no parameters")
	}

	fn, err := typeinfo.FuncOf(p.pkg.TypesInfo.ObjectOf(id))
	if err != nil {
		// The directive signature guarantees func(T) uint.
		panic(err)
	}

	decl, err := variant.Collect(p.pkg.Fset, fn.X())
	if err != nil {
		var notEnum *variant.NotEnumError
		if errors.As(err, &notEnum) {
			return Injector{}, codefmt.Wrapf(p, call, err, `cannot derive ordinal on %t which is not an enum
	%s`, fn.X(), notEnum.Reason)
		}
		panic(err)
	}

	if err := p.validateVariants(call, decl); err != nil {
		return Injector{}, err
	}

	val := p.valueSpecOf(id)
	inj := Injector{
		Func: fn,
		Decl: decl,
		pkg:  p.pkg,
		pos:  call.Pos(),
	}
	if val != nil {
		inj.Doc = val.Doc
		inj.Comment = val.Comment
	}
	return inj, nil
}

// validateVariants checks if the generated code can refer to all variants. The
// generated code lives in the current package, so unexported variants of an
// enum in another package are not accessible.
func (p *Parser) validateVariants(call *ast.CallExpr, decl variant.Decl) error {
	if decl.Pkg() == p.pkg.Types {
		return nil
	}

	var errs error
	for _, v := range decl.Variants {
		if v.Exported() {
			continue
		}
		err := codefmt.Errorf(p, call, `cannot refer to unexported variant %o of %t
	declared at %b`, v, decl.Type, v)
		errs = errors.Join(errs, err)
	}
	return errs
}

// valueSpecOf finds the value spec declaring the identifier.
func (p *Parser) valueSpecOf(id *ast.Ident) *ast.ValueSpec {
	for _, file := range p.OrdinalizeGoFiles() {
		if id.Pos() < file.FileStart || id.Pos() > file.FileEnd {
			continue
		}
		for val := range p.valueSpecs(file) {
			if slices.Contains(val.Names, id) {
				return val
			}
		}
	}
	return nil
}
