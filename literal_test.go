package skriptparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLiteralList(t *testing.T) {
	data := []struct {
		input        string
		wantParts    []string
		wantIsAnd    bool
		wantWarnings int
	}{
		{`a, b and c`, []string{"a", "b", "c"}, true, 0},
		{`a, b, c`, []string{"a", "b", "c"}, true, 1},
		{`a and b or c`, []string{"a", "b", "c"}, true, 1},
		{`"a, b" and c`, []string{"a, b", "c"}, true, 0},
	}

	for _, d := range data {
		lit, warnings := ParseLiteralList(d.input)
		require.Equal(t, d.wantParts, lit.Parts, d.input)
		require.Equal(t, d.wantIsAnd, lit.IsAnd, d.input)
		require.Len(t, warnings, d.wantWarnings, d.input)
	}
}

func TestParseLiteralList_SingleValue(t *testing.T) {
	lit, warnings := ParseLiteralList("alice")
	require.Equal(t, []string{"alice"}, lit.Parts)
	require.True(t, lit.IsSingle())
	require.Empty(t, warnings)
}

func TestParseLiteralList_OrOnly(t *testing.T) {
	lit, warnings := ParseLiteralList("a or b")
	require.Equal(t, []string{"a", "b"}, lit.Parts)
	require.False(t, lit.IsAnd)
	require.Empty(t, warnings)
}

func TestDequote(t *testing.T) {
	require.Equal(t, `he said "hi"`, dequote(`"he said ""hi"""`))
	require.Equal(t, "plain", dequote("plain"))
}
