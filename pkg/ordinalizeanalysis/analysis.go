// Package ordinalizeanalysis provides an analyzer reporting misuses of
// ordinalize.Ordinal directives, such as a directive on a type which is not an
// enum, at the position of the directive.
package ordinalizeanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/caelunshun/ordinalize/internal/codefmt"
	ordinalizeinternal "github.com/caelunshun/ordinalize/internal/ordinalize"
)

// Analyzer validates the usage of Ordinalize in the package.
var Analyzer = &analysis.Analyzer{
	Name: "ordinalize",
	Doc:  "linter for ordinalize usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	o, err := ordinalizeinternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := o.Build(); err != nil {
		report(pass, err)
	}

	return nil, nil
}

// report unrolls joined errors and reports each [codefmt.CodeError] as a
// diagnostic.
func report(pass *analysis.Pass, err error) {
	for _, err := range codefmt.Unjoin(err) {
		if codeErr, ok := err.(*codefmt.CodeError); ok {
			pass.Report(analysis.Diagnostic{
				Pos:      codeErr.Pos(),
				End:      codeErr.End(),
				Category: "ordinalize",
				Message:  codeErr.Unwrap().Error(),
			})
		}
	}
}
