package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/word"
)

func silent(string, ...interface{}) {}

func TestSignatureKey_TrailingEmptySlots(t *testing.T) {
	k1 := signatureKey(acceptance.True, []StateID{3, NoState})
	k2 := signatureKey(acceptance.True, []StateID{3})
	k3 := signatureKey(acceptance.True, []StateID{3, NoState, NoState, NoState})
	assert.Equal(t, k1, k2)
	assert.Equal(t, k1, k3)

	assert.NotEqual(t, signatureKey(acceptance.False, []StateID{3}), k1)
	assert.NotEqual(t, signatureKey(acceptance.True, []StateID{NoState, 3}), k1)
	// 127 and 128 differ in uvarint width; the keys must still differ
	assert.NotEqual(t,
		signatureKey(acceptance.DontKnow, []StateID{127, 0}),
		signatureKey(acceptance.DontKnow, []StateID{128}))
}

func TestStore_RefCountsAndReclaim(t *testing.T) {
	st := newStore(2, 0, silent)
	root := st.newState(acceptance.DontKnow)
	st.states[root].pinned = true

	leaf := st.intern(acceptance.True, nil)
	mid := st.intern(acceptance.DontKnow, []StateID{leaf, leaf})
	assert.Equal(t, int32(2), st.states[leaf].inDeg)
	assert.Equal(t, mid, st.intern(acceptance.DontKnow, []StateID{leaf, leaf}), "interning is idempotent")

	st.setSucc(root, 0, mid)
	assert.Equal(t, 3, st.live)

	// detaching mid reclaims it and then leaf
	st.setSucc(root, 0, NoState)
	assert.Equal(t, 1, st.live)
	assert.Empty(t, st.index)
	assert.Len(t, st.free, 2)

	// freed slots are reused
	again := st.newState(acceptance.False)
	assert.Contains(t, []StateID{leaf, mid}, again)
	assert.Len(t, st.states[again].succ, 2)
}

func TestStore_UnregisterKeepsForeignEntry(t *testing.T) {
	st := newStore(1, 0, silent)
	a := st.intern(acceptance.True, nil)
	b := st.newState(acceptance.True)
	st.states[b].registered = true
	st.states[b].key = st.keyOf(b)

	st.unregister(b)
	assert.Equal(t, a, st.index[st.keyOf(a)])
}

func TestVerify_DetectsCorruption(t *testing.T) {
	b, err := NewDFA[rune](alphabet.Runes("ab"), WithLogger(silent))
	require.NoError(t, err)
	require.NoError(t, b.InsertAccepted(word.FromString("ab")))
	require.NoError(t, b.InsertAccepted(word.FromString("bb")))
	require.NoError(t, b.Verify())

	shared := b.st.succ(b.root, 0)
	b.st.states[shared].inDeg = 1
	assert.ErrorIs(t, b.Verify(), ErrInvariantViolation)
	b.st.states[shared].inDeg = 2

	// a second state with the shared signature breaks canonicity
	dup := b.st.newState(acceptance.DontKnow)
	b.st.setSucc(dup, 1, b.st.succ(shared, 1))
	b.st.setSucc(b.root, 0, dup)
	assert.ErrorIs(t, b.Verify(), ErrInvariantViolation)
}

func TestVerifyOption_PanicsOnViolation(t *testing.T) {
	b, err := NewDFA[rune](alphabet.Runes("a"), WithLogger(silent), WithVerify())
	require.NoError(t, err)
	require.NoError(t, b.InsertAccepted(word.FromString("a")))

	b.st.states[b.st.succ(b.root, 0)].inDeg = 5
	assert.Panics(t, func() { _ = b.InsertAccepted(word.FromString("aa")) })
}
