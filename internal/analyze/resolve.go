package analyze

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"

	"newtype-generator/internal/diagnostic"
)

// resolveTypes evaluates every invocation's type expression in the file scope
// of the file it was written in. Types local to a function are not visible
// there, even for directives written inside that function. Types that name another invocation of the
// package are left unresolved: they do not exist until the output is
// generated.
func resolveTypes(pkg *packages.Package, result *Package, parsed []directive) {
	if pkg.Types == nil {
		return
	}

	names := make(map[string]bool, len(parsed))
	for _, d := range parsed {
		names[strings.ToLower(d.inv.Name)] = true
	}

	for _, d := range parsed {
		tv, err := types.Eval(pkg.Fset, pkg.Types, d.scope, d.inv.Type)
		if err == nil && tv.IsType() {
			result.resolved[d.inv.Pos] = tv.Type
			continue
		}

		if namesInvocation(d.inv.Type, names) {
			continue
		}

		msg := "cannot resolve type " + d.inv.Type
		if err != nil {
			msg += ": " + err.Error()
		} else {
			msg += ": not a type"
		}

		result.Diagnostics.AddError(diagnostic.CodeUnknownType, msg, d.position, d.text)
	}
}

// namesInvocation reports whether expr mentions an unqualified identifier
// that is one of names, compared case-insensitively since visibility changes
// the case of generated names.
func namesInvocation(expr string, names map[string]bool) bool {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return false
	}

	found := false

	ast.Inspect(node, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			return false
		case *ast.Ident:
			if names[strings.ToLower(n.Name)] {
				found = true
			}
		}

		return !found
	})

	return found
}

// declaredOutside returns the package-level names not declared in the output
// file, with their positions.
func declaredOutside(pkg *packages.Package, output string) map[string]token.Position {
	out := make(map[string]token.Position)
	if pkg.Types == nil {
		return out
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		pos := pkg.Fset.Position(scope.Lookup(name).Pos())
		if filepath.Base(pos.Filename) == output {
			continue
		}

		out[name] = pos
	}

	return out
}
