package analyze

import (
	"fmt"
	"go/token"
	"go/types"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/invocation"
	"newtype-generator/internal/plan"
)

// Package is the analysis result for one Go package.
type Package struct {
	Name    string // e.g., "units"
	PkgPath string // e.g., "newtype-generator/examples/units"
	Dir     string
	// Output is the name of the generated file in Dir.
	Output string
	// Invocations are the well-formed directives in file and source order.
	Invocations []invocation.Invocation
	// Diagnostics holds malformed directives and unresolvable types.
	Diagnostics diagnostic.Diagnostics

	// imports maps a file name to that file's qualifier -> import path table.
	imports map[string]map[string]string
	// resolved maps an invocation position to its resolved type.
	resolved map[token.Position]types.Type
	// declared maps package-level names declared by hand to their positions.
	declared map[string]token.Position
}

func newPackage(name, pkgPath, dir, output string) *Package {
	return &Package{
		Name:     name,
		PkgPath:  pkgPath,
		Dir:      dir,
		Output:   output,
		imports:  make(map[string]map[string]string),
		resolved: make(map[token.Position]types.Type),
		declared: make(map[string]token.Position),
	}
}

// ImportResolver resolves qualifiers against the imports of the file an
// invocation was written in.
func (p *Package) ImportResolver() plan.ImportResolver {
	return func(inv invocation.Invocation, qualifier string) (string, bool) {
		path, ok := p.imports[inv.Pos.Filename][qualifier]
		return path, ok
	}
}

// TypeResolver returns the types resolved during loading. Types naming other
// generated types resolve to nil until the output file exists.
func (p *Package) TypeResolver() plan.TypeResolver {
	return func(inv invocation.Invocation) types.Type {
		return p.resolved[inv.Pos]
	}
}

// Plan resolves the package's invocations. Analysis diagnostics are merged
// into the plan's, so a plan with a malformed directive is never generated.
// A generated name that is already declared outside the output file is a
// duplicate-type error.
func (p *Package) Plan() *plan.Plan {
	r := plan.NewResolver(plan.Config{
		PackageName: p.Name,
		PkgPath:     p.PkgPath,
		Dir:         p.Dir,
		Output:      p.Output,
		Imports:     p.ImportResolver(),
		TypeOf:      p.TypeResolver(),
	})

	result := r.Resolve(p.Invocations)
	result.Diagnostics.Merge(p.Diagnostics)

	for _, spec := range result.Types {
		names := []string{spec.Name}
		if spec.Style == invocation.StyleAccessor {
			names = append(names, spec.Constructor())
		}

		for _, name := range names {
			if pos, ok := p.declared[name]; ok {
				result.Diagnostics.AddError(diagnostic.CodeDuplicateType,
					fmt.Sprintf("%s is already declared at %s", name, pos), spec.Source.Pos, spec.Source.String())
			}
		}
	}

	return result
}
