package acceptance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/acceptance"
)

func TestAcceptance_ZeroValueIsDontKnow(t *testing.T) {
	var a acceptance.Acceptance
	assert.Equal(t, acceptance.DontKnow, a)
	assert.False(t, a.IsDefined())
}

func TestAcceptance_Bool(t *testing.T) {
	b, err := acceptance.True.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	b, err = acceptance.False.Bool()
	require.NoError(t, err)
	assert.False(t, b)

	_, err = acceptance.DontKnow.Bool()
	assert.ErrorIs(t, err, acceptance.ErrDontKnow)
}

func TestAcceptance_Conflicts(t *testing.T) {
	cases := []struct {
		a, b acceptance.Acceptance
		want bool
	}{
		{acceptance.True, acceptance.False, true},
		{acceptance.False, acceptance.True, true},
		{acceptance.True, acceptance.True, false},
		{acceptance.DontKnow, acceptance.True, false},
		{acceptance.False, acceptance.DontKnow, false},
		{acceptance.DontKnow, acceptance.DontKnow, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.a.Conflicts(c.b), "%s vs %s", c.a, c.b)
	}
	assert.True(t, acceptance.True.ConflictsWith(false))
	assert.False(t, acceptance.DontKnow.ConflictsWith(false))
}

func TestAcceptance_Merge(t *testing.T) {
	got, err := acceptance.Merge(acceptance.DontKnow, acceptance.False)
	require.NoError(t, err)
	assert.Equal(t, acceptance.False, got)

	got, err = acceptance.Merge(acceptance.True, acceptance.DontKnow)
	require.NoError(t, err)
	assert.Equal(t, acceptance.True, got)

	got, err = acceptance.Merge(acceptance.True, acceptance.True)
	require.NoError(t, err)
	assert.Equal(t, acceptance.True, got)

	_, err = acceptance.Merge(acceptance.True, acceptance.False)
	assert.ErrorIs(t, err, acceptance.ErrConflict)
}

func TestAcceptance_Text(t *testing.T) {
	for _, in := range []string{"true", "T", "+", "yes"} {
		var a acceptance.Acceptance
		require.NoError(t, a.UnmarshalText([]byte(in)))
		assert.Equal(t, acceptance.True, a, in)
	}
	for _, in := range []string{"false", "-", "No", "0"} {
		var a acceptance.Acceptance
		require.NoError(t, a.UnmarshalText([]byte(in)))
		assert.Equal(t, acceptance.False, a, in)
	}
	a := acceptance.True
	require.NoError(t, a.UnmarshalText([]byte("?")))
	assert.Equal(t, acceptance.DontKnow, a)

	assert.ErrorIs(t, a.UnmarshalText([]byte("maybe")), acceptance.ErrUnknownValue)

	out, err := acceptance.False.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "false", string(out))
	assert.Equal(t, "?", acceptance.DontKnow.String())
}
