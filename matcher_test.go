package skriptparse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newStaticParser(t *testing.T, rt *Runtime, input string) *ExprParser {
	t.Helper()
	return newExprParser(rt, input, true)
}

func TestMatchPattern_CompleteConsumption(t *testing.T) {
	rt := testRuntime(newFakeRegistry(), nil)

	for _, input := range []string{"world", "the world"} {
		ep := newStaticParser(t, rt, input)
		result, err := matchPattern(ep, "[the] world")
		require.NoError(t, err, input)
		require.NotNil(t, result, input)
		require.Equal(t, input, result.Input)
	}

	ep := newStaticParser(t, rt, "the worldX")
	result, err := matchPattern(ep, "[the] world")
	require.NoError(t, err)
	require.Nil(t, result, "trailing input must not match")
}

func TestMatchPattern_AlternationLeftBias(t *testing.T) {
	rt := testRuntime(newFakeRegistry(), nil)

	ep := newStaticParser(t, rt, "foo")
	result, err := matchPattern(ep, "(foo|foobar)")
	require.NoError(t, err)
	require.NotNil(t, result)

	ep2 := newStaticParser(t, rt, "ab")
	result2, err := matchPattern(ep2, "(a|ab)")
	require.NoError(t, err)
	require.NotNil(t, result2, "backtracking must fall through to the branch that permits full consumption")
}

func TestMatchPattern_QuotedAtomicity(t *testing.T) {
	types := newFakeRegistry().withType("string").withType("player")
	rt := testRuntime(types, nil)

	ep := newStaticParser(t, rt, `say "hello to bob" to alice`)
	result, err := matchPattern(ep, "say %string% to %player%")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Bindings, 2)
	require.Equal(t, `hello to bob`, result.Bindings[0].Value.String())
	require.Equal(t, "alice", result.Bindings[1].Value.String())
}

func TestMatchPattern_PluralityEnforcement(t *testing.T) {
	types := newFakeRegistry().withType("player")
	rt := testRuntime(types, nil)

	ep := newStaticParser(t, rt, "alice and bob")
	result, err := matchPattern(ep, "%player%")
	require.NoError(t, err)
	require.Nil(t, result)
	require.Equal(t, QualitySemantic, ep.best.quality)
	require.Contains(t, ep.best.message, "single player")
}

func TestMatchPattern_TenseEnforcement(t *testing.T) {
	types := newFakeRegistry().withType("block")
	rt := testRuntime(types, nil)

	ep := newStaticParser(t, rt, "stone")
	result, err := matchPattern(ep, "%block@-1%")
	require.NoError(t, err)
	require.Nil(t, result)
	require.Equal(t, QualitySemantic, ep.best.quality)
	require.Contains(t, ep.best.message, "past/future")
}

func TestMatchPattern_RegexSlot(t *testing.T) {
	rt := testRuntime(newFakeRegistry(), nil)

	ep := newStaticParser(t, rt, "42 seconds")
	result, err := matchPattern(ep, `<\d+> seconds`)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Regexes, 1)
	require.Equal(t, []string{"42"}, result.Regexes[0].Groups)
}

func TestMatchPattern_GiveToPlayer(t *testing.T) {
	types := newFakeRegistry().withType("itemtype").withType("player")
	rt := testRuntime(types, nil)

	ep := newStaticParser(t, rt, "give diamond sword to alice")
	result, err := matchPattern(ep, "give %itemtype% to %player%")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, "diamond sword", result.Bindings[0].Value.String())
	require.Equal(t, "alice", result.Bindings[1].Value.String())
}
