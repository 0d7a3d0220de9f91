package common

import (
	"go/token"
	"path"
	"strings"
)

// UnknownStr is the String() value of enum values outside their declared range.
const UnknownStr = "unknown"

// PkgAlias returns an identifier to reference an import path by: the implied
// package name, with hyphens replaced ("go-units" -> "go_units").
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	name, _ := ImpliedName(pkgPath)
	return strings.ReplaceAll(name, "-", "_")
}

// ImpliedName returns the package name an import path implies: the last
// element, with a trailing major version suffix ("/v2") skipped and a
// gopkg.in ".vN" suffix dropped. The bool is false when that element is not
// a Go identifier ("go-units"), so the real name cannot be guessed and the
// import needs an explicit name.
func ImpliedName(pkgPath string) (string, bool) {
	if pkgPath == "" {
		return "", false
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	// gopkg.in/yaml.v3 -> yaml
	if i := strings.Index(base, ".v"); i > 0 && isDigits(base[i+2:]) {
		base = base[:i]
	}

	return base, token.IsIdentifier(base)
}

func isMajorVersion(s string) bool {
	return len(s) > 1 && s[0] == 'v' && isDigits(s[1:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
