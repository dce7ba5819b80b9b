package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// BuildTag is the build tag of files containing Ordinalize directives.
const BuildTag = "ordinalize"

func IsOrdinalizeImport(path string) bool {
	// Source code from "wire/internal/wire/parse.go".
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/caelunshun/ordinalize"
}

// Parser parses an AST of the underlying package to collect ordinal function
// requests.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the Ordinalize directive function if the
// call expression is an Ordinalize directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.Pkg().TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsOrdinalizeImport(pkg.Path()) {
		// Not Ordinalize function
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is an Ordinalize directive with the
// given name. If name is empty, it checks if the call is any Ordinalize
// directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		// Any ordinalize directive
		return true
	}

	return calleeName == name
}

// OrdinalizeGoFiles returns the Go files that have a "//go:build ordinalize"
// constraint.
func (p *Parser) OrdinalizeGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildOrdinalize(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildOrdinalize reports whether the file is built only with the
// ordinalize tag, such as by "//go:build ordinalize" or "//go:build ordinalize
// && linux".
func hasGoBuildOrdinalize(file *ast.File) bool {
	_, with, without := evalGoBuild(file)
	return with && !without
}

// ExcludedByBuildTag returns the "//go:build" line of the file if the line
// excludes the file only when the ordinalize tag is set, such as "//go:build
// !ordinalize". Otherwise, it returns nil. Generated ordinal functions do not
// see the declarations of such a file.
func ExcludedByBuildTag(file *ast.File) *ast.Comment {
	line, with, without := evalGoBuild(file)
	if line == nil || with || !without {
		return nil
	}
	return line
}

// evalGoBuild finds the "//go:build" line of the file and evaluates it with and
// without the ordinalize tag. Other tags are assumed to be set. A file without
// the line is built either way.
func evalGoBuild(file *ast.File) (line *ast.Comment, with, without bool) {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			// Build constraints must appear before the package clause.
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			with = expr.Eval(func(string) bool { return true })
			without = expr.Eval(func(tag string) bool { return tag != BuildTag })
			return comment, with, without
		}
	}
	return nil, true, true
}
