package gen

import (
	"sort"

	"newtype-generator/internal/invocation"
	"newtype-generator/internal/plan"
)

// ownImports are imported by every generated file and pruned when unused.
var ownImports = []string{"fmt", "maps", "slices"}

// templateData holds all data needed for the file template.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	Types            []typeData
	GenerateComments bool
}

// importSpec is one import line.
type importSpec struct {
	Alias string
	Path  string
}

// typeData is one generated type.
type typeData struct {
	Name        string
	Field       string
	Type        string
	Receiver    string
	Source      string
	Accessor    bool
	Constructor string
	// CloneExpr duplicates the receiver's field.
	CloneExpr string
	// DebugFormat is the fmt.Sprintf format of GoString.
	DebugFormat string
}

// buildTemplateData constructs the template data from a plan.
func (g *Generator) buildTemplateData(p *plan.Plan) *templateData {
	data := &templateData{
		PackageName:      p.PackageName,
		GenerateComments: g.config.GenerateComments,
	}

	for _, path := range ownImports {
		data.Imports = append(data.Imports, importSpec{Path: path})
	}

	for _, imp := range p.Imports() {
		// Already present from ownImports
		if imp.Name == "" && isOwnImport(imp.Path) {
			continue
		}

		data.Imports = append(data.Imports, importSpec{Alias: imp.Name, Path: imp.Path})
	}

	sort.SliceStable(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	for _, t := range p.Types {
		data.Types = append(data.Types, buildTypeData(t))
	}

	return data
}

func buildTypeData(t plan.TypeSpec) typeData {
	recv := t.Receiver()
	field := recv + "." + t.Field

	td := typeData{
		Name:      t.Name,
		Field:     t.Field,
		Type:      t.Type,
		Receiver:  recv,
		Source:    t.Source.String(),
		Accessor:  t.Style == invocation.StyleAccessor,
		CloneExpr: cloneExpr(t.Clone, field),
	}

	if td.Accessor {
		td.Constructor = t.Constructor()
		td.DebugFormat = t.Name + "(%#v)"
	} else {
		td.DebugFormat = t.Name + " { " + t.Field + ": %#v }"
	}

	return td
}

// cloneExpr returns the expression copying expr according to c.
func cloneExpr(c plan.CloneStrategy, expr string) string {
	switch c {
	case plan.CloneSlice:
		return "slices.Clone(" + expr + ")"
	case plan.CloneMap:
		return "maps.Clone(" + expr + ")"
	default:
		return expr
	}
}

func isOwnImport(path string) bool {
	for _, p := range ownImports {
		if p == path {
			return true
		}
	}

	return false
}
