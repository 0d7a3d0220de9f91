package analyze

import (
	"errors"
	"fmt"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"newtype-generator/internal/common"
	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/invocation"
	"newtype-generator/internal/manifest"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Loader loads Go packages and collects their directives.
type Loader struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
	// Output is the generated file name. It is not scanned for directives.
	Output string
}

// NewLoader creates a Loader writing to the default output file.
func NewLoader() *Loader {
	return &Loader{Output: manifest.DefaultOutput}
}

// Load loads the packages matching patterns (e.g., ".", "./...",
// "newtype-generator/examples/units").
func (l *Loader) Load(patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  l.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Type errors are expected before the first run, when code already uses
	// the types that are about to be generated.
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	out := make([]*Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		out = append(out, FromPackage(pkg, l.Output))
	}

	return out, nil
}

// FromPackage collects the directives of a loaded package. The package
// needs at least the syntax, types and type info of LoadMode. Files named
// output are skipped.
func FromPackage(pkg *packages.Package, output string) *Package {
	var dir string
	if first, ok := common.First(pkg.Syntax); ok {
		dir = filepath.Dir(pkg.Fset.Position(first.FileStart).Filename)
	}

	result := newPackage(pkg.Name, pkg.PkgPath, dir, output)

	var found []directive

	for _, file := range pkg.Syntax {
		filename := pkg.Fset.Position(file.FileStart).Filename
		if filepath.Base(filename) == output {
			continue
		}

		result.imports[filename] = fileImports(pkg.TypesInfo, file)
		found = append(found, scanFile(pkg.Fset, file)...)
	}

	var parsed []directive

	for _, d := range found {
		inv, err := invocation.ParseAt(d.text, d.position)
		if err != nil {
			var invErr *invocation.Error
			if errors.As(err, &invErr) {
				result.Diagnostics.Add(invErr.Diagnostic(d.position))
			} else {
				result.Diagnostics.AddError(diagnostic.CodeSyntax, err.Error(), d.position, d.text)
			}

			continue
		}

		d.inv = inv
		parsed = append(parsed, d)
		result.Invocations = append(result.Invocations, inv)
	}

	resolveTypes(pkg, result, parsed)
	result.declared = declaredOutside(pkg, output)

	return result
}
