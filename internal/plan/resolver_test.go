package plan

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newtype-generator/internal/diagnostic"
	"newtype-generator/internal/invocation"
)

func mustParse(t *testing.T, texts ...string) []invocation.Invocation {
	t.Helper()

	invs := make([]invocation.Invocation, 0, len(texts))

	for i, text := range texts {
		inv, err := invocation.ParseAt(text, token.Position{Filename: "units.go", Line: i + 1, Column: 1})
		require.NoError(t, err, text)

		invs = append(invs, inv)
	}

	return invs
}

func resolve(t *testing.T, imports map[string]string, texts ...string) *Plan {
	t.Helper()

	r := NewResolver(Config{
		PackageName: "units",
		Output:      "newtype_gen.go",
		Imports:     StaticImports(imports),
	})

	return r.Resolve(mustParse(t, texts...))
}

func TestResolve_Forms(t *testing.T) {
	p := resolve(t, nil,
		"newtype(wrapped, int)",
		"newtype(meters, float64, pub)",
		"newtype(counter, int, count)",
		"newtype(total, int, count, pub)",
		"newtype(secret, string, s, priv)",
	)
	require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())
	require.Len(t, p.Types, 5)

	expected := []struct {
		name  string
		field string
	}{
		{"wrapped", "v"},
		{"Meters", "V"},
		{"counter", "count"},
		{"Total", "Count"},
		{"secret", "s"},
	}

	for i, e := range expected {
		assert.Equal(t, e.name, p.Types[i].Name)
		assert.Equal(t, e.field, p.Types[i].Field)
		assert.Equal(t, CloneCopy, p.Types[i].Clone)
	}

	assert.Equal(t, "units", p.PackageName)
	assert.Equal(t, "newtype_gen.go", p.Output)
}

func TestResolve_RestrictedLowersName(t *testing.T) {
	p := resolve(t, nil, "newtype(Wrapped, int)", "newtype(URLPath, string, Raw)")
	require.False(t, p.Diagnostics.HasErrors())
	require.Len(t, p.Types, 2)

	assert.Equal(t, "wrapped", p.Types[0].Name)
	assert.Equal(t, "urlPath", p.Types[1].Name)
	assert.Equal(t, "raw", p.Types[1].Field)

	require.Len(t, p.Diagnostics.Warnings, 2)
	assert.Equal(t, diagnostic.CodeRenamed, p.Diagnostics.Warnings[0].Code)
}

func TestResolve_CloneStrategy(t *testing.T) {
	p := resolve(t, nil,
		"newtype(ids, []int)",
		"newtype(index, map[string]int)",
		"newtype(grid, [3][3]int)",
		"newtype(paren, ([]byte))",
		"newtype(ptr, *int)",
	)
	require.False(t, p.Diagnostics.HasErrors())

	assert.Equal(t, CloneSlice, p.Types[0].Clone)
	assert.Equal(t, CloneMap, p.Types[1].Clone)
	assert.Equal(t, CloneCopy, p.Types[2].Clone)
	assert.Equal(t, CloneSlice, p.Types[3].Clone)
	assert.Equal(t, CloneCopy, p.Types[4].Clone)

	assert.True(t, p.NeedsImport(CloneSlice))
	assert.True(t, p.NeedsImport(CloneMap))
}

func TestResolve_CloneStrategyFromResolvedType(t *testing.T) {
	ipType := types.NewNamed(types.NewTypeName(token.NoPos, nil, "IP", nil), types.NewSlice(types.Typ[types.Byte]), nil)

	r := NewResolver(Config{
		PackageName: "units",
		Imports:     StaticImports(map[string]string{"net": "net"}),
		TypeOf: func(inv invocation.Invocation) types.Type {
			if inv.Type == "net.IP" {
				return ipType
			}

			return nil
		},
	})

	p := r.Resolve(mustParse(t, "newtype(addr, net.IP)", "newtype(raw, []byte)"))
	require.False(t, p.Diagnostics.HasErrors())
	assert.Equal(t, CloneSlice, p.Types[0].Clone)
	assert.Equal(t, CloneSlice, p.Types[1].Clone)
	assert.Equal(t, []Import{{Path: "net"}}, p.Imports())
}

func TestResolve_Imports(t *testing.T) {
	p := resolve(t, map[string]string{"time": "time", "yml": "gopkg.in/yaml.v3", "t2": "time"},
		"newtype(timeout, time.Duration)",
		"newtype(node, *yml.Node)",
		"newtype(deadlines, map[string]time.Time)",
		"newtype(later, t2.Time)",
	)
	require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())

	assert.Equal(t, []Import{{Path: "time"}}, p.Types[0].Imports)
	assert.Equal(t, []Import{{Name: "yml", Path: "gopkg.in/yaml.v3"}}, p.Types[1].Imports)
	assert.Equal(t, []Import{
		{Name: "yml", Path: "gopkg.in/yaml.v3"},
		{Path: "time"},
		{Name: "t2", Path: "time"},
	}, p.Imports())
}

func TestResolve_HyphenatedImportIsNamed(t *testing.T) {
	p := resolve(t, map[string]string{"go_units": "example.com/go-units", "units": "example.com/units/v2"},
		"newtype(dist, go_units.Meter)",
		"newtype(span, units.Meter)",
	)
	require.False(t, p.Diagnostics.HasErrors(), p.Diagnostics.Error())

	assert.Equal(t, []Import{
		{Name: "go_units", Path: "example.com/go-units"},
		{Path: "example.com/units/v2"},
	}, p.Imports())
}

func TestResolve_UnknownQualifier(t *testing.T) {
	p := resolve(t, nil, "newtype(timeout, time.Duration)", "newtype(ok, int)")

	require.Len(t, p.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeUnknownType, p.Diagnostics.Errors[0].Code)
	assert.Equal(t, 1, p.Diagnostics.Errors[0].Pos.Line)

	require.Len(t, p.Types, 1)
	assert.Equal(t, "ok", p.Types[0].Name)
}

func TestResolve_QualifierConflicts(t *testing.T) {
	r := NewResolver(Config{
		PackageName: "units",
		Imports: func(inv invocation.Invocation, q string) (string, bool) {
			if inv.Pos.Line == 1 {
				return "example.com/a/" + q, true
			}

			return "example.com/b/" + q, true
		},
	})

	p := r.Resolve(mustParse(t, "newtype(first, x.T)", "newtype(second, x.T)", "newtype(third, fmt.Stringer)"))
	require.Len(t, p.Diagnostics.Errors, 2)
	assert.Contains(t, p.Diagnostics.Errors[0].Message, `refers to both`)
	assert.Contains(t, p.Diagnostics.Errors[1].Message, `reserved`)
}

func TestResolve_DuplicateType(t *testing.T) {
	p := resolve(t, nil,
		"newtype(meters, float64)",
		"newtype{Meters, int}",
		"newtype(meters, float64, pub)",
	)

	require.Len(t, p.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateType, p.Diagnostics.Errors[0].Code)
	assert.Equal(t, 2, p.Diagnostics.Errors[0].Pos.Line)
	assert.Contains(t, p.Diagnostics.Errors[0].Message, "units.go:1:1")

	require.Len(t, p.Types, 2)
	assert.Equal(t, "meters", p.Types[0].Name)
	assert.Equal(t, "Meters", p.Types[1].Name)
}

func TestResolve_AccessorConstructorClash(t *testing.T) {
	p := resolve(t, nil,
		"newtype.accessor(handle, uint64)",
		"newtype(newHandle, int)",
	)

	require.Len(t, p.Diagnostics.Errors, 1)
	assert.Equal(t, diagnostic.CodeDuplicateType, p.Diagnostics.Errors[0].Code)

	require.Len(t, p.Types, 1)
	assert.Equal(t, "handle", p.Types[0].Name)
	assert.Equal(t, "v", p.Types[0].Field)
	assert.Equal(t, "newHandle", p.Types[0].Constructor())
}

func TestResolve_BadNames(t *testing.T) {
	tests := []struct {
		text string
		code string
	}{
		{"newtype(_hidden, int, pub)", diagnostic.CodeBadIdent},
		{"newtype(ok, int, _f, pub)", diagnostic.CodeBadIdent},
		{"newtype(Type, int)", diagnostic.CodeBadIdent},
		{"newtype(String, int)", diagnostic.CodeBadIdent},
		{"newtype(ok, int, Func)", diagnostic.CodeBadIdent},
		{"newtype(Fmt, int)", diagnostic.CodeBadIdent},
		{"newtype(ok, int, clone, pub)", diagnostic.CodeFieldClash},
		{"newtype(ok, int, goString, pub)", diagnostic.CodeFieldClash},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p := resolve(t, nil, tt.text)
			require.True(t, p.Diagnostics.HasErrors())
			assert.Equal(t, tt.code, p.Diagnostics.Errors[0].Code, p.Diagnostics.Error())
			assert.Empty(t, p.Types)
		})
	}
}

func TestTypeSpec_Receiver(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Meters", "m"},
		{"wrapped", "w"},
		{"URL", "u"},
		{"t", "n"},
		{"n", "x"},
		{"_x", "n"},
		{"ñame", "n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeSpec{Name: tt.name}.Receiver())
		})
	}
}

func TestNaming(t *testing.T) {
	assert.Equal(t, "Meters", upperFirst("meters"))
	assert.Equal(t, "Ñame", upperFirst("ñame"))
	assert.Equal(t, "_x", upperFirst("_x"))
	assert.Equal(t, "meters", lowerLeading("Meters"))
	assert.Equal(t, "id", lowerLeading("ID"))
	assert.Equal(t, "urlPath", lowerLeading("URLPath"))
	assert.Equal(t, "httpsPort", lowerLeading("HTTPSPort"))
	assert.Equal(t, "already", lowerLeading("already"))
	assert.Equal(t, "ids", lowerLeading("IDs"))
	assert.Equal(t, "urlsByKey", lowerLeading("URLsByKey"))
	assert.True(t, isExported("Meters"))
	assert.False(t, isExported("_Meters"))
}

func TestCloneStrategy_String(t *testing.T) {
	assert.Equal(t, "copy", CloneCopy.String())
	assert.Equal(t, "slices.Clone", CloneSlice.String())
	assert.Equal(t, "maps.Clone", CloneMap.String())
	assert.Equal(t, "unknown", CloneStrategy(7).String())
}
