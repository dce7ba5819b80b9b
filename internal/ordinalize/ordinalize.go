package ordinalizeinternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"

	"github.com/caelunshun/ordinalize/internal/codefmt"
	"github.com/caelunshun/ordinalize/internal/ordinalize/arm"
	"github.com/caelunshun/ordinalize/internal/ordinalize/parse"
)

// Ordinalize generates ordinal functions for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
//
// Variants are collected from the files built with the ordinalize tag. Files
// excluded by the tag, such as "//go:build !ordinalize" files, are invisible
// to the ordinal functions, so [Main] reports them.
type Ordinalize struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf bytes.Buffer
	w   *codefmt.Writer

	ords []*arm.Ordinal
	// positions of the directive calls to erase
	directives map[token.Pos]bool
}

// New creates a new [Ordinalize] for the given package. The package must have
// its Syntax, Types and TypesInfo, and it must not have any errors.
func New(pkg *packages.Package) (*Ordinalize, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	o := &Ordinalize{
		p:          parser,
		ns:         codefmt.NewNS(pkg.Types.Scope()),
		directives: make(map[token.Pos]bool),
	}
	o.w = codefmt.NewWriter(&o.buf, pkg)
	return o, nil
}

// Build parses the directives and collects the variants of the requested
// enums. It must be called before [Generate].
func (o *Ordinalize) Build() error {
	validateErr := o.p.Validate()
	injs, parseErr := o.p.ParseInjectors()
	if err := errors.Join(validateErr, parseErr); err != nil {
		return err
	}

	for _, inj := range injs {
		// The directive variable is replaced by the generated function of
		// the same name.
		o.ns.Reserve(inj.Name())
		o.directives[inj.Pos()] = true
		o.ords = append(o.ords, arm.New(o.p.Pkg(), inj.Pos(), inj.Func, inj.Decl, inj.Doc, inj.Comment))
	}
	return nil
}

// Ordinals returns the ordinal functions to be generated in the order of
// their requests.
func (o *Ordinalize) Ordinals() []*arm.Ordinal { return o.ords }

// Generate returns the content of the generated file. It must be called after
// [Build] succeeds. It returns nil if no ordinal function is requested.
func (o *Ordinalize) Generate() []byte {
	if len(o.ords) == 0 {
		return nil
	}

	o.w.Printf("// ordinalize: ordinal functions\n\n")
	for _, ord := range o.ords {
		// Each function has its own local names.
		ord.WriteDefineCode(o.w.WithNS(maps.Clone(o.ns)))
		o.w.Printf("\n")
	}

	for _, file := range o.p.OrdinalizeGoFiles() {
		o.mergeFile(file)
	}
	return o.frame()
}

// mergeFile copies the declarations of a file built with the ordinalize tag,
// except its imports and directives. Otherwise the declarations would be
// missing from the normal build.
func (o *Ordinalize) mergeFile(file *ast.File) {
	fset := o.p.Pkg().Fset
	header := fmt.Sprintf("// %s:\n\n", filepath.Base(fset.File(file.Pos()).Name()))

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if ok && gen.Tok == token.IMPORT {
			// Imports are collected from their usage.
			continue
		}
		if ok {
			if gen = o.eraseDirectives(gen); len(gen.Specs) == 0 {
				continue
			}
			decl = gen
		}

		o.buf.WriteString(header)
		header = ""

		_ = printer.Fprint(&o.buf, fset, &printer.CommentedNode{
			Node:     o.w.Requalify(decl),
			Comments: file.Comments,
		})
		o.buf.WriteString("\n\n")
	}
}

// eraseDirectives removes the variables assigned with directives from the
// declaration:
//
//	var a, b = ordinalize.Ordinal[T](), 42 // => var b = 42
//	var c = ordinalize.Ordinal[U]()        // => (removed)
func (o *Ordinalize) eraseDirectives(gen *ast.GenDecl) *ast.GenDecl {
	return astutil.Apply(gen, func(c *astutil.Cursor) bool {
		spec, ok := c.Node().(*ast.ValueSpec)
		if !ok {
			return true
		}
		if len(spec.Values) != len(spec.Names) {
			// Constants repeating the previous expression, or variables
			// without values
			return false
		}

		kept := *spec
		kept.Names, kept.Values = nil, nil
		for i, value := range spec.Values {
			if !o.directives[value.Pos()] {
				kept.Names = append(kept.Names, spec.Names[i])
				kept.Values = append(kept.Values, value)
			}
		}

		switch len(kept.Names) {
		case 0:
			c.Delete()
		case len(spec.Names):
		default:
			c.Replace(&kept)
		}
		return false
	}, nil).(*ast.GenDecl)
}

// frame puts the build constraint, the header, the package clause and the
// imports in front of the written code, and formats it.
func (o *Ordinalize) frame() []byte {
	generator := "github.com/caelunshun/ordinalize"
	if Version != "" {
		generator += "@" + Version
	}

	var code bytes.Buffer
	fmt.Fprintf(&code, "//go:build !%s\n", parse.BuildTag)
	fmt.Fprintf(&code, "// Code generated by %s. DO NOT EDIT.\n\n", generator)
	fmt.Fprintf(&code, "package %s\n\n", o.p.Pkg().Name)

	imports := o.w.Imports()
	if len(imports) != 0 {
		code.WriteString("import (\n")
		for _, name := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[name]
			if parse.IsOrdinalizeImport(imp.Path) {
				panic("ordinalize import remains")
			}
			if imp.Renamed {
				fmt.Fprintf(&code, "\t%s %q\n", name, imp.Path)
			} else {
				fmt.Fprintf(&code, "\t%q\n", imp.Path)
			}
		}
		code.WriteString(")\n\n")
	}
	code.Write(o.buf.Bytes())

	if formatted, err := format.Source(code.Bytes()); err == nil {
		return formatted
	}
	return code.Bytes()
}
