package plan

import (
	"newtype-generator/internal/common"
	"newtype-generator/internal/invocation"
)

// isDefaultName reports whether qualifier is the name the package at path is
// referenced by when imported without an explicit name. Paths whose last
// element is not an identifier ("go-units") never qualify: Go does not derive
// a package name from them.
func isDefaultName(qualifier, path string) bool {
	name, ok := common.ImpliedName(path)
	return ok && name == qualifier
}

// StaticImports returns an ImportResolver backed by a fixed name -> path map,
// as listed in a manifest.
func StaticImports(m map[string]string) ImportResolver {
	return func(_ invocation.Invocation, qualifier string) (string, bool) {
		path, ok := m[qualifier]
		return path, ok
	}
}
