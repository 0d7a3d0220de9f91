package manifest

import (
	"go/token"

	"newtype-generator/internal/common"
)

// CurrentVersion is the only manifest version understood.
const CurrentVersion = "1"

// DefaultOutput is the output file name when the manifest does not set one.
const DefaultOutput = "newtype_gen.go"

// Manifest is the root of a manifest file.
type Manifest struct {
	Version string   `yaml:"version"`
	Package string   `yaml:"package"`
	Output  string   `yaml:"output,omitempty"`
	Imports []Import `yaml:"imports,omitempty"`
	Types   []Entry  `yaml:"types"`

	// Path is the file the manifest was loaded from, if any.
	Path string `yaml:"-"`
}

// Import is an import referenced by qualified underlying types.
// It is written either as a bare path or as a {name, path} mapping.
type Import struct {
	Name string `yaml:"name,omitempty"`
	Path string `yaml:"path"`
}

// LocalName returns the identifier the import is referenced by.
func (i Import) LocalName() string {
	if i.Name != "" {
		return i.Name
	}

	return common.PkgAlias(i.Path)
}

// Entry is one invocation. It is written either as an invocation string or
// as a structured mapping.
type Entry struct {
	// Text is the invocation string, empty for structured entries.
	Text string `yaml:"-"`

	Name       string `yaml:"name,omitempty"`
	Type       string `yaml:"type,omitempty"`
	Field      string `yaml:"field,omitempty"`
	Visibility string `yaml:"visibility,omitempty"`
	Style      string `yaml:"style,omitempty"`

	// Line and Column locate the entry in the manifest file.
	Line   int `yaml:"-"`
	Column int `yaml:"-"`
}

// IsText returns true if the entry was written as an invocation string.
func (e Entry) IsText() bool {
	return e.Text != ""
}

// Position returns the entry position within the manifest at path.
func (e Entry) Position(path string) token.Position {
	return token.Position{Filename: path, Line: e.Line, Column: e.Column}
}

// ImportMap returns local name -> import path for all imports.
func (m *Manifest) ImportMap() map[string]string {
	out := make(map[string]string, len(m.Imports))
	for _, imp := range m.Imports {
		out[imp.LocalName()] = imp.Path
	}

	return out
}
