// golangcilintordinalize package provides a plugin for golangci-lint to
// integrate the Ordinalize analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// The resulting binary reports misused ordinalize.Ordinal directives.
package golangcilintordinalize

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/caelunshun/ordinalize/pkg/ordinalizeanalysis"
)

func init() {
	register.Plugin("ordinalize", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return OrdinalizeLinter{}, nil
}

type OrdinalizeLinter struct{}

func (OrdinalizeLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{ordinalizeanalysis.Analyzer}, nil
}

// GetLoadMode requires type information: variants are found by the types
// implementing a union or the constants of an enum type.
func (OrdinalizeLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
