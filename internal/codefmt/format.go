package codefmt

import (
	"fmt"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// Formatter renders types, objects and positions of a package as they are
// spelled in its source code.
type Formatter struct {
	Fset *token.FileSet

	// Qualifier names the packages of types and objects. A nil Qualifier
	// spells package paths in full.
	Qualifier types.Qualifier
}

// New creates a [Formatter] for code in pkg. Types and objects of pkg itself
// are not qualified, and others are qualified by their package names.
func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{Fset: pkg.Fset, Qualifier: types.RelativeTo(pkg.Types)}
}

// Type renders a type, such as "colors.Level" or "*Square".
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.Qualifier)
}

// Obj renders a reference to a package-level object, such as "colors.Red".
func (f Formatter) Obj(obj types.Object) string {
	if obj.Pkg() == nil || f.Qualifier == nil {
		return obj.Name()
	}
	if qual := f.Qualifier(obj.Pkg()); qual != "" {
		return qual + "." + obj.Name()
	}
	return obj.Name()
}

// Pos renders a position in the file:line:column form.
func (f Formatter) Pos(pos token.Pos) string {
	if f.Fset == nil {
		return FormatPosition(token.Position{})
	}
	return FormatPosition(f.Fset.Position(pos))
}

var wd, _ = os.Getwd()

// FormatPosition renders a position relative to the working directory. An
// invalid position is rendered as "-:-".
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}
	if rel, err := filepath.Rel(wd, pos.Filename); err == nil {
		pos.Filename = rel
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
}
