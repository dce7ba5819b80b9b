package arm_test

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/caelunshun/ordinalize/internal/codefmt"
	"github.com/caelunshun/ordinalize/internal/ordinalize/arm"
	"github.com/caelunshun/ordinalize/internal/ordinalize/variant"
	"github.com/caelunshun/ordinalize/internal/typeinfo"
)

func load(t *testing.T, code string) *packages.Package {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.ParseComments)
	require.NoError(t, err)

	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	pkg, err := (&types.Config{}).Check("example.com/p", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return &packages.Package{
		Name:      pkg.Name(),
		PkgPath:   pkg.Path(),
		Types:     pkg,
		Fset:      fset,
		Syntax:    []*ast.File{file},
		TypesInfo: info,
	}
}

func newOrdinal(t *testing.T, pkg *packages.Package, typeName, funcName string, doc, comment *ast.CommentGroup) *arm.Ordinal {
	t.Helper()

	obj := pkg.Types.Scope().Lookup(typeName)
	require.NotNil(t, obj, typeName)

	decl, err := variant.Collect(pkg.Fset, typeinfo.TypeOf(obj.Type()))
	require.NoError(t, err)

	fn := typeinfo.NewFunc(pkg.Types, funcName, decl.Type)
	return arm.New(pkg, token.NoPos, fn, decl, doc, comment)
}

func writeDefineCode(pkg *packages.Package, ord *arm.Ordinal) (string, *codefmt.Writer) {
	var buf bytes.Buffer
	w := codefmt.NewWriter(&buf, pkg).WithNS(codefmt.NewNS(pkg.Types.Scope()))
	ord.WriteDefineCode(w)
	return buf.String(), w
}

const shapes = `
package p

type Shape interface{ isShape() }

type Empty struct{}
type Circle struct{ Radius float64 }
type Square struct{ Side float64 }
type Celsius float64
type Pair struct {
	Left
	Right
}

type (
	Left  int
	Right int
)

func (Empty) isShape()   {}
func (Circle) isShape()  {}
func (*Square) isShape() {}
func (Celsius) isShape() {}
func (Pair) isShape()    {}
`

func TestSynthesize(t *testing.T) {
	pkg := load(t, shapes)
	ord := newOrdinal(t, pkg, "Shape", "ShapeOrdinal", nil, nil)

	var rules []string
	for i, a := range ord.Arms {
		assert.Equal(t, uint(i), a.Ordinal)
		rules = append(rules, a.Rule())
	}
	assert.Equal(t, []string{"Empty", "Circle{..}", "Square{..}", "Celsius(_)", "Pair(_, _)"}, rules)
}

func TestSynthesizeEmpty(t *testing.T) {
	assert.Empty(t, arm.Synthesize(variant.Decl{}))
}

func TestRule(t *testing.T) {
	tests := []struct {
		shape variant.Shape
		arity int
		want  string
	}{
		{variant.NoFields, 0, "V"},
		{variant.UnnamedFields, 1, "V(_)"},
		{variant.UnnamedFields, 3, "V(_, _, _)"},
		{variant.NamedFields, 0, "V{..}"},
	}
	for _, test := range tests {
		a := arm.Arm{Variant: variant.Variant{Name: "V", Shape: test.shape, Arity: test.arity}}
		assert.Equal(t, test.want, a.Rule())
	}
}

func TestWriteDefineCodeUnion(t *testing.T) {
	pkg := load(t, shapes)
	ord := newOrdinal(t, pkg, "Shape", "ShapeOrdinal", nil, nil)

	code, w := writeDefineCode(pkg, ord)
	assert.Equal(t, `func ShapeOrdinal(in Shape) uint {
switch in.(type) {
case Empty, *Empty: // Empty
return 0
case Circle, *Circle: // Circle{..}
return 1
case *Square: // Square{..}
return 2
case Celsius, *Celsius: // Celsius(_)
return 3
case Pair, *Pair: // Pair(_, _)
return 4
}
panic(ordinalizeerrors.NoVariant("Shape", in))
}
`, code)

	require.Contains(t, w.Imports(), "ordinalizeerrors")
	assert.Equal(t, "github.com/caelunshun/ordinalize/pkg/ordinalizeerrors", w.Imports()["ordinalizeerrors"].Path)
}

func TestWriteDefineCodeEnum(t *testing.T) {
	pkg := load(t, `
package p

type Color int

const (
	Red Color = iota
	Green
	Blue

	Default = Red
)
`)
	ord := newOrdinal(t, pkg, "Color", "ColorOrdinal", nil, nil)

	code, _ := writeDefineCode(pkg, ord)
	assert.Equal(t, `func ColorOrdinal(in Color) uint {
switch in {
case Red:
return 0
case Green:
return 1
case Blue:
return 2
}
panic(ordinalizeerrors.NoVariant("Color", in))
}
`, code)
}

func TestWriteDefineCodeComments(t *testing.T) {
	pkg := load(t, `
package p

type Color int

const Red Color = 0

var in = 42
`)
	doc := &ast.CommentGroup{List: []*ast.Comment{{Text: "// ColorOrdinal returns the ordinal of the color."}}}
	comment := &ast.CommentGroup{List: []*ast.Comment{{Text: "// generated"}}}
	ord := newOrdinal(t, pkg, "Color", "ColorOrdinal", doc, comment)

	code, _ := writeDefineCode(pkg, ord)
	assert.Equal(t, `// ColorOrdinal returns the ordinal of the color.
func ColorOrdinal(in2 Color) uint { // generated
switch in2 {
case Red:
return 0
}
panic(ordinalizeerrors.NoVariant("Color", in2))
}
`, code)
}

func TestWriteDefineCodeNoVariants(t *testing.T) {
	pkg := load(t, `
package p

type Never interface{ never() }
`)
	ord := newOrdinal(t, pkg, "Never", "NeverOrdinal", nil, nil)
	assert.Empty(t, ord.Arms)

	code, _ := writeDefineCode(pkg, ord)
	assert.Equal(t, `func NeverOrdinal(in Never) uint {
panic(ordinalizeerrors.NoVariant("Never", in))
}
`, code)
}
