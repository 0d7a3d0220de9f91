// Package newtypeanalysis reports malformed newtype directives as analysis
// diagnostics, so a vet tool or golangci-lint can fail the build on them
// before the generator runs.
package newtypeanalysis

import (
	"go/token"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"newtype-generator/internal/analyze"
	"newtype-generator/internal/manifest"
)

// Analyzer validates the newtype directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "newtype",
	Doc:  "linter for newtype directives",
	Run:  run,
}

// output is the generated file name the analyzer skips.
var output = manifest.DefaultOutput

func init() {
	Analyzer.Flags.StringVar(&output, "o", output, "generated file name, not scanned for directives")
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

	p := analyze.FromPackage(pkg, output).Plan()

	for _, d := range p.Diagnostics.Errors {
		pos := posOf(pass, d.Pos)

		// Positions are reported separately.
		d.Pos = token.Position{}

		pass.Report(analysis.Diagnostic{
			Pos:      pos,
			Category: d.Code,
			Message:  d.String(),
		})
	}

	return nil, nil
}

// posOf maps a position back to the pass's file set. Positions outside the
// package's files fall back to the first package clause.
func posOf(pass *analysis.Pass, position token.Position) token.Pos {
	for _, f := range pass.Files {
		tf := pass.Fset.File(f.Pos())
		if tf == nil || tf.Name() != position.Filename {
			continue
		}

		if position.Line < 1 || position.Line > tf.LineCount() {
			break
		}

		return tf.LineStart(position.Line) + token.Pos(max(position.Column-1, 0))
	}

	if len(pass.Files) > 0 {
		return pass.Files[0].Package
	}

	return token.NoPos
}
