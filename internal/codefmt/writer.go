package codefmt

import (
	"fmt"
	"go/ast"
	"go/types"
	"io"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code for a package. Packages of the types and
// objects it formats are collected as imports under names that do not
// conflict with the package scope.
type Writer struct {
	out     io.Writer
	imports *importSet
	fmt     Formatter
	ns      NS
}

// NewWriter creates a [Writer] for code in pkg. It has no namespace until
// [Writer.WithNS] gives one.
func NewWriter(out io.Writer, pkg *packages.Package) *Writer {
	imports := &importSet{
		pkg:   pkg,
		names: make(map[string]Import),
		paths: make(map[string]string),
	}
	return &Writer{
		out:     out,
		imports: imports,
		fmt:     Formatter{Fset: pkg.Fset, Qualifier: imports.qualify},
	}
}

// WithNS returns a copy of the writer naming identifiers in ns. The copy
// shares the output and the imports.
func (w *Writer) WithNS(ns NS) *Writer {
	dup := *w
	dup.ns = ns
	return &dup
}

// Printf writes code formatted like [Sprintf].
func (w *Writer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(w.out, format, w.fmt.operands(args)...)
}

// Sprintf formats code like [Sprintf] without writing it.
func (w *Writer) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, w.fmt.operands(args)...)
}

// Name takes a unique identifier from the namespace of the writer.
func (w *Writer) Name(hint string) string {
	return w.ns.Name(hint)
}

// Import imports the package at path and returns the name to refer to it.
// name is the name the package declares.
//
//	errs := w.Import("github.com/caelunshun/ordinalize/pkg/ordinalizeerrors", "ordinalizeerrors")
//	w.Printf("panic(%s.NoVariant(%q, in))\n", errs, "Color")
func (w *Writer) Import(path, name string) string {
	return w.imports.use(path, name)
}

// Import is a package imported by generated code.
type Import struct {
	Path string

	// Renamed is true when the import needs an explicit name because its
	// declared name is taken.
	Renamed bool
}

// Imports returns the imports collected so far by their names.
func (w *Writer) Imports() map[string]Import {
	return w.imports.names
}

// Requalify rewrites references to imported packages in node so that they use
// the import names of the writer. Dot-imported identifiers get an explicit
// qualifier.
func (w *Writer) Requalify(node ast.Node) ast.Node {
	pkg := w.imports.pkg
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.SelectorExpr:
			// fmt.Println
			id, ok := n.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := pkg.TypesInfo.ObjectOf(id).(*types.PkgName)
			if !ok {
				return true
			}
			imported := pkgName.Imported()
			name := w.imports.use(imported.Path(), imported.Name())
			c.Replace(&ast.SelectorExpr{
				X:   &ast.Ident{NamePos: id.NamePos, Name: name},
				Sel: n.Sel,
			})
			return false

		case *ast.Ident:
			// Println from a dot-import
			obj := pkg.TypesInfo.ObjectOf(n)
			if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() == pkg.PkgPath {
				return true
			}
			if obj.Parent() != obj.Pkg().Scope() {
				// Fields and methods
				return true
			}
			name := w.imports.use(obj.Pkg().Path(), obj.Pkg().Name())
			c.Replace(&ast.SelectorExpr{
				X:   &ast.Ident{NamePos: n.NamePos, Name: name},
				Sel: &ast.Ident{NamePos: n.NamePos, Name: n.Name},
			})
			return false
		}
		return true
	}, nil)
}

// importSet names the imports of generated code in a package.
type importSet struct {
	pkg   *packages.Package
	names map[string]Import // import name -> Import
	paths map[string]string // path -> import name
}

// use imports the package at path and returns its import name. The declared
// name is preferred unless it is taken by another import or by a declaration
// of the package.
func (s *importSet) use(path, name string) string {
	if taken, ok := s.paths[path]; ok {
		return taken
	}

	for candidate := range DisambiguateName(name) {
		if _, ok := s.names[candidate]; ok {
			continue
		}
		if s.pkg.Types.Scope().Lookup(candidate) != nil {
			continue
		}
		s.names[candidate] = Import{Path: path, Renamed: candidate != name}
		s.paths[path] = candidate
		return candidate
	}
	panic("unreachable")
}

// qualify is a [types.Qualifier] importing the packages it qualifies.
func (s *importSet) qualify(pkg *types.Package) string {
	if pkg.Path() == s.pkg.PkgPath {
		return ""
	}
	return s.use(pkg.Path(), pkg.Name())
}
