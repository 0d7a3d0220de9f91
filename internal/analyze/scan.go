package analyze

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"newtype-generator/internal/common"
	"newtype-generator/internal/invocation"
)

// directive is one directive comment.
type directive struct {
	text string
	// scope is where the type is evaluated: the file's package clause, so
	// only package-level and imported names resolve, as in the output file.
	scope    token.Pos
	position token.Position
	inv      invocation.Invocation
}

// scanFile returns the directives of a file in source order.
func scanFile(fset *token.FileSet, file *ast.File) []directive {
	var out []directive

	for _, group := range file.Comments {
		for _, c := range group.List {
			text, ok := invocation.CutDirective(c.Text)
			if !ok {
				continue
			}

			out = append(out, directive{
				text:     text,
				scope:    file.Package,
				position: fset.Position(c.Slash),
			})
		}
	}

	return out
}

// fileImports returns the qualifier -> path table of a file. Blank and dot
// imports cannot qualify a type and are left out.
func fileImports(info *types.Info, file *ast.File) map[string]string {
	out := make(map[string]string, len(file.Imports))

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		var name string

		switch {
		case spec.Name != nil:
			name = spec.Name.Name
		case info != nil && info.PkgNameOf(spec) != nil:
			name = info.PkgNameOf(spec).Name()
		default:
			name = common.PkgAlias(path)
		}

		if name == "_" || name == "." {
			continue
		}

		out[name] = path
	}

	return out
}
