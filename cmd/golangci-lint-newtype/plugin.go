// golangcilintnewtype package provides a plugin for golangci-lint to run the
// newtype analyzer. To build a custom golangci-lint binary with this plugin,
// use the following command at this package's directory:
//
//	golangci-lint custom
//
// The resulting golangci-lint-newtype binary reports malformed newtype
// directives alongside the other linters.
package golangcilintnewtype

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"newtype-generator/pkg/newtypeanalysis"
)

func init() {
	register.Plugin("newtype", New)
}

// New returns the linter; it takes no settings.
func New(settings any) (register.LinterPlugin, error) {
	return NewtypeLinter{}, nil
}

// NewtypeLinter runs the newtype analyzer.
type NewtypeLinter struct{}

// BuildAnalyzers returns the newtype analyzer.
func (NewtypeLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{newtypeanalysis.Analyzer}, nil
}

// GetLoadMode asks for type information: directive types are resolved with
// go/types.
func (NewtypeLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
