package skriptparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextMatching(t *testing.T) {
	data := []struct {
		pattern    string
		open       byte
		close      byte
		from       int
		wantClose  int
		wantErr    bool
	}{
		{"[a]", '[', ']', 0, 2, false},
		{"[a[b]c]", '[', ']', 0, 6, false},
		{"[a\\]b]", '[', ']', 0, 5, false},
		{"[a", '[', ']', 0, 0, true},
		{"(a|b)", '(', ')', 0, 4, false},
	}

	for _, d := range data {
		close, err := nextMatching(d.pattern, d.open, d.close, d.from)
		if d.wantErr {
			require.Error(t, err, d.pattern)
			continue
		}
		require.NoError(t, err, d.pattern)
		require.Equal(t, d.wantClose, close, d.pattern)
	}
}

func TestNextUnescaped(t *testing.T) {
	require.Equal(t, 3, nextUnescaped("abc%def", '%', 0))
	require.Equal(t, -1, nextUnescaped("abc", '%', 0))
	require.Equal(t, 5, nextUnescaped(`ab\%c%d`, '%', 0))
}

func TestNextUnescapedQuote(t *testing.T) {
	require.Equal(t, 3, nextUnescapedQuote(`"ab"`, 1))
	require.Equal(t, 5, nextUnescapedQuote(`"a""b"c"`, 1))
	require.Equal(t, -1, nextUnescapedQuote(`"abc`, 1))
}

func TestSplitAlternation(t *testing.T) {
	p := "a|b|c"
	spans := splitAlternation(p, 0, len(p))
	require.Len(t, spans, 3)
	require.Equal(t, "a", spans[0].text(p))
	require.Equal(t, "b", spans[1].text(p))
	require.Equal(t, "c", spans[2].text(p))

	p2 := "a(b|c)|d"
	spans2 := splitAlternation(p2, 0, len(p2))
	require.Len(t, spans2, 2)
	require.Equal(t, "a(b|c)", spans2[0].text(p2))
	require.Equal(t, "d", spans2[1].text(p2))
}

func TestValidatePattern(t *testing.T) {
	data := []struct {
		pattern string
		wantErr bool
	}{
		{"give %item% to %player%", false},
		{"[(a|b)] %item%", false},
		{"(%item%|%player%)", false},
		{"(%item%|%item% %player%)", true},
		{"give %item", true},
		{"give item]", false}, // bare ']' is a harmless literal terminator, not an error
		{"give \\", true},
	}

	for _, d := range data {
		err := validatePattern(d.pattern)
		if d.wantErr {
			require.Error(t, err, d.pattern)
		} else {
			require.NoError(t, err, d.pattern)
		}
	}
}
