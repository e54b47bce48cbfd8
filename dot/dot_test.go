package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/automaton"
	"github.com/katalvlaran/automata/dag"
	"github.com/katalvlaran/automata/dot"
	"github.com/katalvlaran/automata/word"
)

func TestString_Compact(t *testing.T) {
	c, err := automaton.NewCompact[rune](alphabet.Runes("ab"))
	require.NoError(t, err)
	q0 := c.AddInitialState(true)
	q1 := c.AddState(false)
	require.NoError(t, c.SetTransition(q0, 'a', q1))
	require.NoError(t, c.SetTransition(q0, 'b', q0))
	require.NoError(t, c.SetTransition(q1, 'a', q0))
	require.NoError(t, c.SetTransition(q1, 'b', q0))

	out, err := dot.String[int, rune](c, dot.WithTitle(`even "a"`))
	require.NoError(t, err)
	want := `digraph automaton {
    rankdir=LR;
    node [fontname="Helvetica", fontsize=11];
    edge [fontname="Helvetica", fontsize=10];
    labelloc="t";
    label="even \"a\"";
    __start [shape=none, label="", width=0, height=0];
    __start -> s0;
    s0 [label="0", shape=doublecircle];
    s1 [label="1", shape=circle];
    s0 -> s1 [label="a"];
    s0 -> s0 [label="b"];
    s1 -> s0 [label="a,b"];
}
`
	assert.Equal(t, want, out)
}

func TestString_DAGView(t *testing.T) {
	b, err := dag.NewPCDFA[rune](alphabet.Runes("ab"), dag.WithLogger(nil))
	require.NoError(t, err)
	require.NoError(t, b.InsertAccepted(word.FromString("a")))
	require.NoError(t, b.Insert(word.FromString("bb"), false))

	out, err := dot.String[dag.StateID, rune](b.View(), dot.WithRankDir("TB"))
	require.NoError(t, err)
	assert.Contains(t, out, "rankdir=TB;")
	assert.Equal(t, 4, strings.Count(out, "shape=")-1, "four states plus the start marker")
	assert.Contains(t, out, "style=dashed", "the undecided state reached by b")
	assert.Contains(t, out, `[label="a,b"]`, "sink self-loops are merged")
}

func TestWrite_Errors(t *testing.T) {
	_, err := dot.String[int, rune](nil)
	assert.ErrorIs(t, err, dot.ErrGraphNil)

	c, err := automaton.NewCompact[rune](alphabet.Runes("a"))
	require.NoError(t, err)
	_, err = dot.String[int, rune](c, dot.WithRankDir("diagonal"))
	assert.ErrorIs(t, err, dot.ErrOptionViolation)
}

func TestWithSymbolFormatter(t *testing.T) {
	c, err := automaton.NewCompact[string](alphabet.MustNew("open", "close"))
	require.NoError(t, err)
	q := c.AddInitialState(true)
	require.NoError(t, c.SetTransition(q, "open", q))

	out, err := dot.String[int, string](c, dot.WithSymbolFormatter(func(sym any) string {
		return strings.ToUpper(sym.(string))
	}))
	require.NoError(t, err)
	assert.Contains(t, out, `s0 -> s0 [label="OPEN"];`)
}
