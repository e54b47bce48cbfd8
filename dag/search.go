package dag

import (
	"github.com/katalvlaran/automata/automaton"
	"github.com/katalvlaran/automata/separate"
	"github.com/katalvlaran/automata/traverse"
	"github.com/katalvlaran/automata/word"
)

// FindSeparatingWord returns a shortest word on which b and ref disagree.
// With implicitFalse, words b knows nothing about count as rejected.
// See separate.Find for the exact policy.
func FindSeparatingWord[S comparable, I comparable](
	b Built[I],
	ref automaton.DFA[S, I],
	implicitFalse bool,
	opts ...traverse.Option,
) (word.Word[I], bool, error) {
	if b == nil {
		return word.Word[I]{}, false, separate.ErrNilAutomaton
	}
	base := b.builder()

	return separate.Find[StateID, S, I](base, ref, base.alpha, implicitFalse, opts...)
}
