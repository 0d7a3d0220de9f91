package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"

	"golang.org/x/tools/go/ast/astutil"

	"newtype-generator/internal/plan"
)

// Header marks generated files. Files starting with it may be overwritten
// or removed by the generator.
const Header = "// Code generated by newtype-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// WriteUnformatted writes the raw template output next to the intended
	// output when it fails to format.
	WriteUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
		WriteUnformatted: true,
	}
}

// Generator generates Go code from a plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in.
	Dir string
	// Filename is the name of the file (e.g., "newtype_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the full path of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate generates the output file for a plan. It returns nil when the
// plan has no types. Plans with error diagnostics are refused.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("plan for package %s has errors: %w", p.PackageName, p.Diagnostics.Error())
	}

	if len(p.Types) == 0 {
		return nil, nil
	}

	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{Dir: p.Dir, Filename: p.Output}

	formatted, err := tidy(buf.Bytes())
	if err != nil {
		if g.config.WriteUnformatted {
			_ = writeDebugUnformatted(p.Dir, p.Output, buf.Bytes())
		}

		file.Content = buf.Bytes()

		return file, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	return file, nil
}

// tidy removes unused imports the template added and formats the result.
func tidy(src []byte) ([]byte, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	for _, path := range ownImports {
		if !astutil.UsesImport(f, path) {
			astutil.DeleteImport(fset, f, path)
		}
	}

	ast.SortImports(fset, f)

	var out bytes.Buffer
	if err := format.Node(&out, fset, f); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
