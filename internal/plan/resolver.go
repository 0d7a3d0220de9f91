package plan

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/invocation"
)

// Generated method names. A public field with one of these names would
// collide with the method.
const (
	MethodClone    = "Clone"
	MethodGoString = "GoString"
	MethodGet      = "Get"
)

// reservedImports are imported by generated code itself.
var reservedImports = map[string]string{
	"fmt":    "fmt",
	"maps":   "maps",
	"slices": "slices",
}

// ImportResolver maps a package qualifier used by an invocation's type
// (the "time" in time.Duration) to an import path.
type ImportResolver func(inv invocation.Invocation, qualifier string) (path string, ok bool)

// TypeResolver returns the resolved underlying type of an invocation, or nil
// when it is not known (for example before the package has been generated).
type TypeResolver func(inv invocation.Invocation) types.Type

// Config holds configuration for planning.
type Config struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// PkgPath is the import path of the package, if known.
	PkgPath string
	// Dir and Output locate the generated file.
	Dir    string
	Output string
	// Imports resolves package qualifiers. Nil rejects every qualified type.
	Imports ImportResolver
	// TypeOf refines the clone strategy for named underlying types. Optional.
	TypeOf TypeResolver
}

// Resolver performs planning for one package.
type Resolver struct {
	config Config
	// declared holds every identifier the generated file declares, in
	// declaration order: type name -> *declared
	declared *linkedhashmap.Map
	// qualifiers maps package names used so far to their import paths.
	qualifiers map[string]string
}

// declared records which invocation introduced an identifier.
type declared struct {
	spec *TypeSpec
	// constructor is true when the identifier is an accessor-style
	// constructor rather than a type.
	constructor bool
}

// NewResolver creates a new Resolver.
func NewResolver(config Config) *Resolver {
	return &Resolver{config: config}
}

// Resolve plans the given invocations. Invocations with errors are reported
// in Plan.Diagnostics and left out of Plan.Types.
func (r *Resolver) Resolve(invs []invocation.Invocation) *Plan {
	r.declared = linkedhashmap.New()
	r.qualifiers = make(map[string]string)

	p := &Plan{
		PackageName: r.config.PackageName,
		PkgPath:     r.config.PkgPath,
		Dir:         r.config.Dir,
		Output:      r.config.Output,
	}

	for _, inv := range invs {
		spec, ok := r.resolveOne(inv, &p.Diagnostics)
		if !ok {
			continue
		}

		r.declare(spec, &p.Diagnostics)
	}

	// Collect in declaration order, skipping constructor entries
	it := r.declared.Iterator()
	for it.Next() {
		d := it.Value().(*declared)
		if !d.constructor {
			p.Types = append(p.Types, *d.spec)
		}
	}

	return p
}

// resolveOne plans a single invocation.
func (r *Resolver) resolveOne(inv invocation.Invocation, diags *diagnostic.Diagnostics) (*TypeSpec, bool) {
	subject := inv.String()
	exported := inv.Visibility.Exported()

	spec := &TypeSpec{
		Name:       applyVisibility(inv.Name, exported),
		Field:      inv.FieldName(),
		Type:       inv.Type,
		Style:      inv.Style,
		Visibility: inv.Visibility,
		Source:     inv,
	}

	// The accessor field is never exported.
	if inv.Style == invocation.StyleNamed {
		spec.Field = applyVisibility(spec.Field, exported)
	}

	if isExported(spec.Name) != exported {
		diags.AddError(diagnostic.CodeBadIdent,
			fmt.Sprintf("type name %q cannot be made %s", inv.Name, visibilityWord(exported)), inv.Pos, subject)

		return nil, false
	}

	if inv.Style == invocation.StyleNamed && isExported(spec.Field) != exported {
		diags.AddError(diagnostic.CodeBadIdent,
			fmt.Sprintf("field name %q cannot be made %s", inv.FieldName(), visibilityWord(exported)), inv.Pos, subject)

		return nil, false
	}

	if !token.IsIdentifier(spec.Name) || types.Universe.Lookup(spec.Name) != nil {
		diags.AddError(diagnostic.CodeBadIdent,
			fmt.Sprintf("type name %q becomes %q, which is not usable as a type name", inv.Name, spec.Name),
			inv.Pos, subject)

		return nil, false
	}

	if !token.IsIdentifier(spec.Field) {
		diags.AddError(diagnostic.CodeBadIdent,
			fmt.Sprintf("field name %q becomes %q, which is a Go keyword", inv.FieldName(), spec.Field),
			inv.Pos, subject)

		return nil, false
	}

	if _, reserved := reservedImports[spec.Name]; reserved {
		diags.AddError(diagnostic.CodeBadIdent,
			fmt.Sprintf("type name %q would hide the %s package used by generated code", spec.Name, spec.Name),
			inv.Pos, subject)

		return nil, false
	}

	if spec.Name != inv.Name {
		diags.AddWarning(diagnostic.CodeRenamed,
			fmt.Sprintf("type %s is generated as %s to be %s", inv.Name, spec.Name, visibilityWord(exported)),
			inv.Pos, subject)
	}

	if inv.Style == invocation.StyleNamed && (spec.Field == MethodClone || spec.Field == MethodGoString) {
		diags.AddError(diagnostic.CodeFieldClash,
			fmt.Sprintf("field %s collides with the generated %s method", spec.Field, spec.Field), inv.Pos, subject)

		return nil, false
	}

	expr, err := parser.ParseExpr(inv.Type)
	if err != nil {
		// Parsed invocations always carry valid type expressions
		diags.AddError(diagnostic.CodeBadType, err.Error(), inv.Pos, subject)
		return nil, false
	}

	imports, ok := r.resolveImports(inv, expr, diags)
	if !ok {
		return nil, false
	}

	spec.Imports = imports
	spec.Clone = r.cloneStrategy(inv, expr)

	return spec, true
}

// declare registers the spec's identifiers, reporting clashes with earlier
// invocations.
func (r *Resolver) declare(spec *TypeSpec, diags *diagnostic.Diagnostics) {
	names := []struct {
		name        string
		constructor bool
	}{{spec.Name, false}}

	if spec.Style == invocation.StyleAccessor {
		names = append(names, struct {
			name        string
			constructor bool
		}{spec.Constructor(), true})
	}

	for _, n := range names {
		if prev, ok := r.declared.Get(n.name); ok {
			first := prev.(*declared).spec.Source
			diags.AddError(diagnostic.CodeDuplicateType,
				fmt.Sprintf("%s is already declared by %s at %s", n.name, first.String(), first.Pos),
				spec.Source.Pos, spec.Source.String())

			return
		}
	}

	for _, n := range names {
		r.declared.Put(n.name, &declared{spec: spec, constructor: n.constructor})
	}
}

// resolveImports maps every package qualifier in expr to an import.
func (r *Resolver) resolveImports(inv invocation.Invocation, expr ast.Expr, diags *diagnostic.Diagnostics) ([]Import, bool) {
	var imports []Import

	ok := true

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, isSel := n.(*ast.SelectorExpr)
		if !isSel {
			return true
		}

		pkg, isIdent := sel.X.(*ast.Ident)
		if !isIdent {
			return true
		}

		path, found := "", false
		if r.config.Imports != nil {
			path, found = r.config.Imports(inv, pkg.Name)
		}

		if !found {
			diags.AddError(diagnostic.CodeUnknownType,
				fmt.Sprintf("package %q in %s is not imported", pkg.Name, inv.Type), inv.Pos, inv.String())

			ok = false

			return false
		}

		if std, reserved := reservedImports[pkg.Name]; reserved && std != path {
			diags.AddError(diagnostic.CodeUnknownType,
				fmt.Sprintf("package name %q is reserved for %q in generated code", pkg.Name, std), inv.Pos, inv.String())

			ok = false

			return false
		}

		if prev, seen := r.qualifiers[pkg.Name]; seen && prev != path {
			diags.AddError(diagnostic.CodeUnknownType,
				fmt.Sprintf("package name %q refers to both %q and %q", pkg.Name, prev, path), inv.Pos, inv.String())

			ok = false

			return false
		}

		r.qualifiers[pkg.Name] = path
		imports = append(imports, newImport(pkg.Name, path))

		return false
	})

	return imports, ok
}

// cloneStrategy picks how Clone copies the value. The resolved type wins
// over the syntax, so a named slice type such as net.IP is still cloned.
func (r *Resolver) cloneStrategy(inv invocation.Invocation, expr ast.Expr) CloneStrategy {
	if r.config.TypeOf != nil {
		if t := r.config.TypeOf(inv); t != nil {
			switch t.Underlying().(type) {
			case *types.Slice:
				return CloneSlice
			case *types.Map:
				return CloneMap
			default:
				return CloneCopy
			}
		}
	}

	switch t := ast.Unparen(expr).(type) {
	case *ast.ArrayType:
		if t.Len == nil {
			return CloneSlice
		}
	case *ast.MapType:
		return CloneMap
	}

	return CloneCopy
}

// newImport records the import, naming it unless the qualifier is certainly
// the path's default package name.
func newImport(qualifier, path string) Import {
	if isDefaultName(qualifier, path) {
		return Import{Path: path}
	}

	return Import{Name: qualifier, Path: path}
}

func visibilityWord(exported bool) string {
	if exported {
		return "exported"
	}

	return "unexported"
}
