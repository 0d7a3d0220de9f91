package gen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtype-generator/internal/invocation"
	"newtype-generator/internal/plan"
)

// buildPlan parses and plans texts for package units. Each text gets its own
// line so positions differ.
func buildPlan(t *testing.T, imports map[string]string, texts ...string) *plan.Plan {
	t.Helper()

	invs := make([]invocation.Invocation, 0, len(texts))

	for i, text := range texts {
		inv, err := invocation.ParseAt(text, token.Position{Filename: "units.go", Line: i + 1, Column: 1})
		require.NoError(t, err, text)

		invs = append(invs, inv)
	}

	p := plan.NewResolver(plan.Config{
		PackageName: "units",
		Output:      "newtype_gen.go",
		Imports:     plan.StaticImports(imports),
	}).Resolve(invs)
	require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())

	return p
}

func generate(t *testing.T, p *plan.Plan) string {
	t.Helper()

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.NoError(t, err)
	require.NotNil(t, file)

	return string(file.Content)
}

// importPaths returns the import paths of a Go source file, in order.
func importPaths(t *testing.T, src string) []string {
	t.Helper()

	f, err := parser.ParseFile(token.NewFileSet(), "", src, parser.ImportsOnly)
	require.NoError(t, err)

	var paths []string
	for _, imp := range f.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		require.NoError(t, err)

		paths = append(paths, p)
	}

	return paths
}

func TestGenerator_Generate_FormA(t *testing.T) {
	content := generate(t, buildPlan(t, nil, "newtype(wrapped, int)"))

	assert.Contains(t, content, Header)
	assert.Contains(t, content, "package units")
	assert.Contains(t, content, "// wrapped wraps int.\n//\n// Generated from newtype(wrapped, int).\ntype wrapped struct {\n\tv int\n}")
	assert.Contains(t, content, "func (w wrapped) Clone() wrapped {\n\treturn wrapped{v: w.v}\n}")
	assert.Contains(t, content, "func (w wrapped) GoString() string {\n\treturn fmt.Sprintf(\"wrapped { v: %#v }\", w.v)\n}")
	assert.Equal(t, []string{"fmt"}, importPaths(t, content))
}

func TestGenerator_Generate_AllForms(t *testing.T) {
	content := generate(t, buildPlan(t, nil,
		"newtype(meters, float64, pub)",
		"newtype(counter, int, count)",
		"newtype(total, int64, sum, pub)",
	))

	assert.Contains(t, content, "type Meters struct {\n\tV float64\n}")
	assert.Contains(t, content, "return Meters{V: m.V}")
	assert.Contains(t, content, `fmt.Sprintf("Meters { V: %#v }", m.V)`)

	assert.Contains(t, content, "type counter struct {\n\tcount int\n}")
	assert.Contains(t, content, "return counter{count: c.count}")

	assert.Contains(t, content, "type Total struct {\n\tSum int64\n}")
	assert.Contains(t, content, "func (t Total) Clone() Total {")
}

func TestGenerator_Generate_DelimitersAreEquivalent(t *testing.T) {
	paren := generate(t, buildPlan(t, nil,
		"newtype(wrapped, int)",
		"newtype(meters, float64, pub)",
		"newtype(counter, int, count)",
		"newtype(total, int64, sum, pub)",
		"newtype.accessor(handle, uint64)",
	))
	brace := generate(t, buildPlan(t, nil,
		"newtype{wrapped, int}",
		"newtype{meters, float64, pub}",
		"newtype{counter, int, count}",
		"newtype{total, int64, sum, pub}",
		"newtype.accessor{handle, uint64}",
	))

	assert.Equal(t, paren, brace)
}

func TestGenerator_Generate_CallSiteIndependent(t *testing.T) {
	first := buildPlan(t, nil, "newtype(meters, float64)")
	second := buildPlan(t, nil, "newtype(other, int)", "newtype(meters, float64)")
	second.Types = second.Types[1:]

	require.NotEqual(t, first.Types[0].Source.Pos, second.Types[0].Source.Pos)
	assert.Equal(t, generate(t, first), generate(t, second))
}

func TestGenerator_Generate_CloneStrategies(t *testing.T) {
	content := generate(t, buildPlan(t, map[string]string{"time": "time"},
		"newtype(ids, []int)",
		"newtype(index, map[string]time.Duration)",
		"newtype(when, time.Time)",
	))

	assert.Contains(t, content, "return ids{v: slices.Clone(i.v)}")
	assert.Contains(t, content, "return index{v: maps.Clone(i.v)}")
	assert.Contains(t, content, "return when{v: w.v}")
	assert.Equal(t, []string{"fmt", "maps", "slices", "time"}, importPaths(t, content))
}

func TestGenerator_Generate_NamedImports(t *testing.T) {
	content := generate(t, buildPlan(t, map[string]string{"yml": "gopkg.in/yaml.v3"},
		"newtype(node, *yml.Node)",
	))

	assert.Contains(t, content, `yml "gopkg.in/yaml.v3"`)
	assert.Contains(t, content, "type node struct {\n\tv *yml.Node\n}")
	assert.Equal(t, []string{"fmt", "gopkg.in/yaml.v3"}, importPaths(t, content))
}

func TestGenerator_Generate_Accessor(t *testing.T) {
	content := generate(t, buildPlan(t, nil, "newtype.accessor(handle, uint64)", "newtype.accessor(names, []string)"))

	assert.Contains(t, content, "type handle struct {\n\tv uint64\n}")
	assert.Contains(t, content, "func newHandle(v uint64) handle {\n\treturn handle{v: v}\n}")
	assert.Contains(t, content, "func (h handle) Get() uint64 {\n\treturn h.v\n}")
	assert.Contains(t, content, `fmt.Sprintf("handle(%#v)", h.v)`)

	assert.Contains(t, content, "func (n names) Get() []string {\n\treturn slices.Clone(n.v)\n}")
}

func TestGenerator_Generate_WithoutComments(t *testing.T) {
	file, err := NewGenerator(GeneratorConfig{}).Generate(buildPlan(t, nil, "newtype.accessor(handle, uint64)"))
	require.NoError(t, err)

	content := string(file.Content)
	assert.NotContains(t, content, "// handle wraps")
	assert.NotContains(t, content, "// Clone returns")
	assert.Contains(t, content, "func (h handle) Clone() handle {")
}

func TestGenerator_Generate_EmptyPlan(t *testing.T) {
	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(&plan.Plan{PackageName: "units"})
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestGenerator_Generate_RefusesPlanWithErrors(t *testing.T) {
	p := &plan.Plan{PackageName: "units"}
	p.Diagnostics.AddError("syntax", "broken", token.Position{}, "")

	_, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestGenerator_Generate_WritesUnformattedOnFailure(t *testing.T) {
	dir := t.TempDir()
	p := &plan.Plan{
		PackageName: "units",
		Dir:         dir,
		Output:      "newtype_gen.go",
		Types:       []plan.TypeSpec{{Name: "broken", Field: "v", Type: "func("}},
	}

	file, err := NewGenerator(DefaultGeneratorConfig()).Generate(p)
	require.Error(t, err)
	require.NotNil(t, file)
	assert.Contains(t, string(file.Content), "v func(")

	_, statErr := os.Stat(filepath.Join(dir, "_newtype_gen.unformatted.go"))
	assert.NoError(t, statErr)
}

func TestWriteFileAndRemoveStale(t *testing.T) {
	dir := t.TempDir()
	file := &GeneratedFile{
		Dir:      filepath.Join(dir, "units"),
		Filename: "newtype_gen.go",
		Content:  []byte(Header + "\n\npackage units\n"),
	}

	require.NoError(t, WriteFile(file))
	require.NoError(t, WriteFile(file), "generated files may be overwritten")

	removed, err := RemoveStale(file.Path())
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = RemoveStale(file.Path())
	require.NoError(t, err)
	assert.False(t, removed)

	handWritten := filepath.Join(file.Dir, "newtype_gen.go")
	require.NoError(t, os.WriteFile(handWritten, []byte("package units\n"), 0o644))

	err = WriteFile(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")

	removed, err = RemoveStale(handWritten)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.FileExists(t, handWritten)
}
