package arm

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/packages"

	"github.com/caelunshun/ordinalize/internal/codefmt"
	"github.com/caelunshun/ordinalize/internal/ordinalize/variant"
	"github.com/caelunshun/ordinalize/internal/typeinfo"
)

const errorsPkgPath = "github.com/caelunshun/ordinalize/pkg/ordinalizeerrors"

// Ordinal is an ordinal function to be generated. It returns the ordinal of the
// variant its input holds.
type Ordinal struct {
	typeinfo.Func
	Decl variant.Decl
	Arms []Arm

	pkg *packages.Package
	pos token.Pos

	doc     *ast.CommentGroup
	comment *ast.CommentGroup
}

// New creates an [Ordinal] named by fn for the enum declaration. pos is where
// the ordinal function was requested, and doc and comment are the comments of
// the request to be copied to the generated function.
func New(pkg *packages.Package, pos token.Pos, fn typeinfo.Func, decl variant.Decl, doc, comment *ast.CommentGroup) *Ordinal {
	return &Ordinal{
		Func:    fn,
		Decl:    decl,
		Arms:    Synthesize(decl),
		pkg:     pkg,
		pos:     pos,
		doc:     doc,
		comment: comment,
	}
}

// Pkg implements [codefmt.Pkger].
func (o *Ordinal) Pkg() *packages.Package { return o.pkg }

// Pos implements [codefmt.Poser].
func (o *Ordinal) Pos() token.Pos { return o.pos }

// WriteDefineCode writes the function declaration:
//
//	func ShapeOrdinal(in Shape) uint {
//		switch in.(type) {
//		case Circle, *Circle: // Circle{..}
//			return 0
//		case *Square: // Square{..}
//			return 1
//		}
//		panic(ordinalizeerrors.NoVariant("Shape", in))
//	}
//
// Arms are exhaustive over the declared variants, so there is no default arm.
// The panic is reached only by values holding no declared variant.
func (o *Ordinal) WriteDefineCode(w *codefmt.Writer) {
	o.writeComments(w, o.doc)

	varIn := w.Name("in")
	w.Printf("func %s(%s %t) uint {", o.Name(), varIn, o.X())
	if o.comment != nil {
		w.Printf(" ")
		o.writeComments(w, o.comment)
	} else {
		w.Printf("\n")
	}

	if len(o.Arms) != 0 {
		switch o.Decl.Kind {
		case variant.Union:
			o.writeUnionArms(w, varIn)
		case variant.Enum:
			o.writeEnumArms(w, varIn)
		default:
			panic("unknown enum kind")
		}
	}

	varErrors := w.Import(errorsPkgPath, "ordinalizeerrors")
	w.Printf("panic(%s.NoVariant(%q, %s))\n", varErrors, w.Sprintf("%t", o.X()), varIn)
	w.Printf("}\n")
}

// writeUnionArms writes a type switch. Each arm lists the value type, the
// pointer type, or both of them, whichever implements the union.
func (o *Ordinal) writeUnionArms(w *codefmt.Writer, varIn string) {
	w.Printf("switch %s.(type) {\n", varIn)
	for _, arm := range o.Arms {
		switch {
		case arm.Value != nil && arm.Pointer != nil:
			w.Printf("case %t, %t:", *arm.Value, *arm.Pointer)
		case arm.Value != nil:
			w.Printf("case %t:", *arm.Value)
		case arm.Pointer != nil:
			w.Printf("case %t:", *arm.Pointer)
		default:
			panic("union variant without type")
		}
		w.Printf(" // %s\n", arm.Rule())
		w.Printf("return %d\n", arm.Ordinal)
	}
	w.Printf("}\n")
}

// writeEnumArms writes an expression switch over the enum constants.
func (o *Ordinal) writeEnumArms(w *codefmt.Writer, varIn string) {
	w.Printf("switch %s {\n", varIn)
	for _, arm := range o.Arms {
		w.Printf("case %o:\n", arm.Const)
		w.Printf("return %d\n", arm.Ordinal)
	}
	w.Printf("}\n")
}

func (o *Ordinal) writeComments(w *codefmt.Writer, group *ast.CommentGroup) {
	if group == nil {
		return
	}
	for _, c := range group.List {
		w.Printf("%s\n", c.Text)
	}
}
