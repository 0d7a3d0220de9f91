package plan

import (
	"sort"

	"newtype-generator/internal/common"
	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/invocation"
)

// CloneStrategy describes how Clone duplicates the held value.
type CloneStrategy int

const (
	// CloneCopy copies the value; enough for scalars, structs, pointers and arrays.
	CloneCopy CloneStrategy = iota
	// CloneSlice uses slices.Clone so the copy does not share a backing array.
	CloneSlice
	// CloneMap uses maps.Clone so the copy does not share buckets.
	CloneMap
)

// String returns a human-readable representation of the CloneStrategy.
func (c CloneStrategy) String() string {
	switch c {
	case CloneCopy:
		return "copy"
	case CloneSlice:
		return "slices.Clone"
	case CloneMap:
		return "maps.Clone"
	default:
		return common.UnknownStr
	}
}

// Import is a package referenced by generated code.
type Import struct {
	// Name is the explicit import name, empty when it matches the default.
	Name string
	// Path is the import path.
	Path string
}

// Plan is everything needed to generate one output file.
type Plan struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// PkgPath is the import path of the package, if known.
	PkgPath string
	// Dir is the directory the output file goes to.
	Dir string
	// Output is the output file name within Dir.
	Output string
	// Types lists the types to generate in declaration order.
	Types []TypeSpec
	// Diagnostics contains all warnings and errors from planning.
	Diagnostics diagnostic.Diagnostics
}

// TypeSpec is one type to generate.
type TypeSpec struct {
	// Name is the final type name.
	Name string
	// Field is the final name of the field holding the value.
	Field string
	// Type is the underlying type expression.
	Type string
	// Style selects named-field or accessor output.
	Style invocation.Style
	// Visibility is the effective visibility.
	Visibility invocation.Visibility
	// Clone is the Clone strategy for Type.
	Clone CloneStrategy
	// Imports are the packages Type refers to.
	Imports []Import
	// Source is the invocation the spec was planned from.
	Source invocation.Invocation
}

// Receiver returns the method receiver name: the lower-cased first letter of
// the type name. A receiver must not hide the type it belongs to, so
// single-letter types fall back to "n" (or "x" for a type named n).
func (s TypeSpec) Receiver() string {
	r := lowerLeading(s.Name)[:1]
	if !isASCIILetter(r[0]) || r == s.Name {
		if s.Name == "n" {
			return "x"
		}

		return "n"
	}

	return r
}

// Constructor returns the constructor name for accessor-style types.
func (s TypeSpec) Constructor() string {
	if s.Visibility.Exported() {
		return "New" + s.Name
	}

	return "new" + upperFirst(s.Name)
}

// Imports returns the imports of all types, deduplicated and sorted by path.
func (p *Plan) Imports() []Import {
	var all []Import
	for _, t := range p.Types {
		all = append(all, t.Imports...)
	}

	all = common.Dedup(all)
	sort.Slice(all, func(i, j int) bool {
		if all[i].Path != all[j].Path {
			return all[i].Path < all[j].Path
		}

		return all[i].Name < all[j].Name
	})

	return all
}

// NeedsImport reports whether any type's Clone uses the given strategy.
func (p *Plan) NeedsImport(c CloneStrategy) bool {
	for _, t := range p.Types {
		if t.Clone == c {
			return true
		}
	}

	return false
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
