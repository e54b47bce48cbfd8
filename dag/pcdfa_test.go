package dag_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/dag"
)

func newPC(t testing.TB, syms string) *dag.PCDFABuilder[rune] {
	t.Helper()
	b, err := dag.NewPCDFA[rune](alphabet.Runes(syms), dag.WithVerify(), dag.WithLogger(nil))
	require.NoError(t, err)

	return b
}

func TestPCDFA_PrefixClosure(t *testing.T) {
	b := newPC(t, "ab")
	require.NoError(t, b.Insert(w("ab"), false))

	assert.Equal(t, acceptance.False, b.Lookup(w("ab")))
	assert.Equal(t, acceptance.False, b.Lookup(w("abb")))
	assert.Equal(t, acceptance.False, b.Lookup(w("abababa")))
	assert.Equal(t, acceptance.DontKnow, b.Lookup(w("a")))
	assert.Equal(t, acceptance.DontKnow, b.Lookup(w("")))

	err := b.Insert(w("abb"), true)
	require.ErrorIs(t, err, dag.ErrConflict)
	var ce *dag.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, dag.ConflictSink, ce.Kind)

	// rejecting below a rejected prefix adds nothing
	size := b.Size()
	require.NoError(t, b.Insert(w("abb"), false))
	assert.Equal(t, size, b.Size())
}

func TestPCDFA_AcceptMarksPrefixes(t *testing.T) {
	b := newPC(t, "abc")
	require.NoError(t, b.InsertAccepted(w("abc")))
	for _, s := range []string{"", "a", "ab", "abc"} {
		assert.Equal(t, acceptance.True, b.Lookup(w(s)), s)
	}
	assert.Equal(t, acceptance.DontKnow, b.Lookup(w("abcc")))

	err := b.Insert(w("a"), false)
	require.ErrorIs(t, err, dag.ErrConflict)
	var ce *dag.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, dag.ConflictAcceptance, ce.Kind)

	// epsilon -> false contradicts any accepted word
	assert.ErrorIs(t, b.Insert(w(""), false), dag.ErrConflict)
	assert.Equal(t, acceptance.True, b.Lookup(w("")))
}

func TestPCDFA_RejectEpsilon(t *testing.T) {
	b := newPC(t, "ab")
	require.NoError(t, b.Insert(w("ab"), false))
	require.NoError(t, b.Insert(w(""), false))

	assert.Equal(t, b.Sink(), b.Root())
	assert.Equal(t, 1, b.Size())
	assert.Equal(t, acceptance.False, b.Lookup(w("")))
	assert.Equal(t, acceptance.False, b.Lookup(w("ba")))
	assert.ErrorIs(t, b.Insert(w("b"), true), dag.ErrConflict)
	assert.NoError(t, b.Verify())
}

func TestPCDFA_RejectDropsUndecidedSubtree(t *testing.T) {
	b := newPC(t, "abc")
	require.NoError(t, b.Insert(w("abc"), false))
	// root, sink, and the DontKnow states for "a" and "ab"
	assert.Equal(t, 4, b.Size())

	require.NoError(t, b.Insert(w("ab"), false))
	assert.Equal(t, 3, b.Size())
	assert.Equal(t, acceptance.False, b.Lookup(w("abc")))
	assert.Equal(t, acceptance.False, b.Lookup(w("ab")))
	assert.Equal(t, acceptance.DontKnow, b.Lookup(w("a")))
}

func TestPCDFA_SharedRejections(t *testing.T) {
	b := newPC(t, "ab")
	require.NoError(t, b.InsertAccepted(w("ab")))
	require.NoError(t, b.InsertAccepted(w("ba")))
	require.NoError(t, b.Insert(w("abb"), false))
	require.NoError(t, b.Insert(w("baa"), false))

	assert.Equal(t, acceptance.False, b.Lookup(w("abba")))
	assert.Equal(t, acceptance.False, b.Lookup(w("baab")))
	assert.Equal(t, acceptance.DontKnow, b.Lookup(w("aba")))
	assert.Equal(t, acceptance.DontKnow, b.Lookup(w("bab")))
	assert.Equal(t, acceptance.True, b.Lookup(w("b")))

	// the view shows the sink as absorbing
	edges := b.View().OutEdges(b.Sink())
	require.Len(t, edges, 2)
	for _, e := range edges {
		assert.Equal(t, b.Sink(), e.To)
	}
	assert.NoError(t, b.Verify())
}
