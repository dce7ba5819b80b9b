// Package ordinalizeinternal generates ordinal functions for enum types
// requested by ordinalize.Ordinal directives.
package ordinalizeinternal

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/caelunshun/ordinalize/internal/codefmt"
	"github.com/caelunshun/ordinalize/internal/ordinalize/parse"
)

var Version string

// Main is the main entry point for Ordinalize. It is used by the command-line
// tool directly.
//
// The packages matching patterns are loaded from wd with env, the ordinalize
// build tag and the extra comma-separated tags. tests includes test files.
// Each package requesting ordinal functions gets a file named outFile.
//
// It returns the contents of the files to write by their paths relative to wd.
// If any package has an error, it returns all errors sorted by message and no
// files.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	var errs []error
	for _, pkg := range pkgs {
		code, err := generate(pkg)
		if err == nil && code != nil {
			err = checkHiddenFiles(wd, pkg)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if code != nil {
			outs[outPath(wd, pkg, outFile)] = code
		}
	}
	if err := reorderErrors(errors.Join(errs...)); err != nil {
		return nil, err
	}
	return outs, nil
}

// generate returns the generated code for the package, or nil if it requests
// no ordinal functions.
func generate(pkg *packages.Package) ([]byte, error) {
	o, err := New(pkg)
	if err != nil {
		return nil, err
	}
	if err := o.Build(); err != nil {
		return nil, err
	}
	return o.Generate(), nil
}

// checkHiddenFiles reports files of the package excluded by the ordinalize
// build tag. The packages are loaded with the tag, so variants declared in
// such files would be missing from the generated functions, which then panic
// with ordinalizeerrors.ErrNoVariant for those variants.
func checkHiddenFiles(wd string, pkg *packages.Package) error {
	fset := token.NewFileSet()
	var errs []error
	for _, path := range pkg.IgnoredFiles {
		if filepath.Ext(path) != ".go" {
			continue
		}

		file, err := parser.ParseFile(fset, path, nil, parser.PackageClauseOnly|parser.ParseComments)
		if err != nil || ast.IsGenerated(file) {
			// Broken files are not built at all, and generated files, the
			// output of Ordinalize included, are not where variants live.
			continue
		}

		line := parse.ExcludedByBuildTag(file)
		if line == nil {
			continue
		}
		pos := fset.Position(line.Pos())
		pos.Filename = relPath(wd, pos.Filename)
		errs = append(errs, fmt.Errorf(`%s: cannot see declarations excluded by the %s build tag
	ordinal functions of package %s would miss variants declared in this file`, pos, parse.BuildTag, pkg.Name))
	}
	return errors.Join(errs...)
}

func outPath(wd string, pkg *packages.Package, outFile string) string {
	return filepath.Join(relPath(wd, filepath.Dir(pkg.GoFiles[0])), outFile)
}

// relPath returns path relative to wd if possible.
func relPath(wd, path string) string {
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}

// load loads the packages with the ordinalize build tag. Errors of the
// packages are returned with their positions relative to wd.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	buildTags := parse.BuildTag
	if tags != "" {
		buildTags += "," + tags
	}

	pkgs, err := packages.Load(&packages.Config{
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + buildTags},
		Tests:      tests,
	}, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			if pkgErr.Pos == "" {
				errs = append(errs, errors.New(pkgErr.Msg))
				continue
			}
			path, lineCol, _ := strings.Cut(pkgErr.Pos, ":")
			pkgErr.Pos = relPath(wd, path) + ":" + lineCol
			errs = append(errs, pkgErr)
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return pkgs, nil
}

// reorderErrors sorts joined errors by message, so that the output does not
// depend on the order of packages or files.
func reorderErrors(err error) error {
	errs := codefmt.Unjoin(err)
	slices.SortStableFunc(errs, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(errs...)
}
