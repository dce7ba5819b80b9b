package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/caelunshun/ordinalize/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Directives in expected places are checked by [Parser.ParseInjectors]. But
// some rules need to be checked globally. That's what this function does.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectivePlaces(file))
	}
	return errs
}

// validateConstraint checks if files importing "github.com/caelunshun/ordinalize"
// have "//go:build ordinalize" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	var ordinalizeImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsOrdinalizeImport(strings.Trim(imp.Path.Value, `"`)) {
			ordinalizeImport = imp
			break
		}
	}
	if ordinalizeImport == nil {
		return nil
	}

	if hasGoBuildOrdinalize(file) {
		return nil
	}

	return codefmt.Errorf(p, ordinalizeImport, `file must have "//go:build ordinalize" constraint when importing ordinalize`)
}

// validateDirectivePlaces checks directives outside package-level variable
// declarations. Only the declarations are erased at code generation, so any
// other directive call would remain in the ordinary build and panic at run
// time.
func (p *Parser) validateDirectivePlaces(file *ast.File) error {
	if !hasGoBuildOrdinalize(file) {
		return nil
	}

	allowed := make(map[token.Pos]struct{})
	for _, call := range p.FindInjectors(file) {
		allowed[call.Pos()] = struct{}{}
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		directive, ok := p.GetDirective(call)
		if !ok {
			return true
		}

		if _, ok := allowed[call.Pos()]; ok {
			return false
		}

		err := codefmt.Errorf(p, call, "cannot use %s outside package-level variable declaration", directive)
		errs = errors.Join(errs, err)
		return false
	})
	return errs
}
