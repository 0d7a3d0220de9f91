package invocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutDirective(t *testing.T) {
	tests := []struct {
		comment string
		want    string
		ok      bool
	}{
		{"//newtype(meters, float64)", "newtype(meters, float64)", true},
		{"//newtype{meters, float64}  ", "newtype{meters, float64}", true},
		{"//newtype (meters, float64)", "newtype (meters, float64)", true},
		{"//newtype.accessor(handle, uint64)", "newtype.accessor(handle, uint64)", true},
		{"//newtype.accesor(handle, uint64)", "newtype.accesor(handle, uint64)", true},
		{"//newtype(meters, float64) // in meters", "newtype(meters, float64)", true},
		{"//newtype(link, struct{ U string `d:\"http://x\"` }) // tagged", "newtype(link, struct{ U string `d:\"http://x\"` })", true},
		{"// newtype(meters, float64)", "", false},
		{"//newtypes are great", "", false},
		{"//newtype is great", "", false},
		{"//newtype", "", false},
		{"/* newtype(meters, float64) */", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.comment, func(t *testing.T) {
			got, ok := CutDirective(tt.comment)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCutDirective_KeepsSlashesInTags(t *testing.T) {
	text, ok := CutDirective("//newtype(link, struct{ U string `d:\"http://x\"` }) // tagged")
	require.True(t, ok)

	inv, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, "struct{ U string `d:\"http://x\"` }", inv.Type)
}
