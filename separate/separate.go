// Package separate finds a shortest word on which a partially built automaton
// and a reference DFA disagree.
//
// What
//
//   - Breadth-first search over the product of the built automaton and the
//     reference, starting at both initial states.
//   - A product state diverges when the built side has a definite acceptance
//     that differs from the reference's.
//   - With implicitFalse, "no information" on the built side (DontKnow states
//     and missing transitions) counts as rejecting; missing transitions lead
//     into a virtual off-structure sink that keeps following the reference.
//   - Without implicitFalse, a missing built transition is not expanded.
//
// Determinism
//
//	Successors are expanded in alphabet index order and divergence is checked
//	when a product state is dequeued, so the result is the shortest separating
//	word and, among those, the first in index order.
//
// Complexity
//
//   - Time:   O(|built| * |ref| * k)
//   - Memory: O(|built| * |ref|)
package separate

import (
	"errors"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/automaton"
	"github.com/katalvlaran/automata/traverse"
	"github.com/katalvlaran/automata/word"
)

var (
	// ErrNilAutomaton is returned when either automaton is nil.
	ErrNilAutomaton = errors.New("separate: automaton is nil")

	// ErrNilAlphabet is returned when the alphabet is nil.
	ErrNilAlphabet = errors.New("separate: alphabet is nil")
)

// Partial is the built side of the comparison: a deterministic structure
// addressed by symbol index whose states carry three-valued acceptance.
type Partial[N comparable] interface {
	// Root returns the initial state.
	Root() N
	// Step returns the successor of n for the symbol with index idx, if any.
	Step(n N, idx int) (N, bool)
	// Acceptance returns the classification stored at n.
	Acceptance(n N) acceptance.Acceptance
}

// pair is a product state. off marks the virtual sink outside the built structure.
type pair[N comparable, S comparable] struct {
	built N
	off   bool
	ref   S
}

// Find returns a shortest word on which built and ref disagree, and whether one exists.
// alpha supplies the symbols for indices 0..alpha.Size()-1; opts are passed to the
// underlying traversal.
func Find[N comparable, S comparable, I comparable](
	built Partial[N],
	ref automaton.DFA[S, I],
	alpha alphabet.Alphabet[I],
	implicitFalse bool,
	opts ...traverse.Option,
) (word.Word[I], bool, error) {
	// 1. Validate inputs
	if built == nil || ref == nil {
		return word.Word[I]{}, false, ErrNilAutomaton
	}
	if alpha == nil {
		return word.Word[I]{}, false, ErrNilAlphabet
	}
	refInit, ok := ref.InitialState()
	if !ok {
		// Nothing to compare against, same as a missing reference transition.
		return word.Word[I]{}, false, nil
	}

	// 2. Product graph, generated on demand
	k := alpha.Size()
	next := func(p pair[N, S]) []traverse.Edge[pair[N, S], int] {
		out := make([]traverse.Edge[pair[N, S], int], 0, k)
		for idx := 0; idx < k; idx++ {
			r, ok := ref.Successor(p.ref, alpha.Symbol(idx))
			if !ok {
				continue
			}
			q := pair[N, S]{ref: r, off: true}
			if !p.off {
				if b, ok := built.Step(p.built, idx); ok {
					q = pair[N, S]{built: b, ref: r}
				} else if !implicitFalse {
					continue
				}
			}
			out = append(out, traverse.Edge[pair[N, S], int]{From: p, Label: idx, To: q})
		}

		return out
	}

	// 3. Divergence test at dequeue time
	diverges := func(p pair[N, S]) bool {
		got := acceptance.DontKnow
		if !p.off {
			got = built.Acceptance(p.built)
		}
		if implicitFalse && got == acceptance.DontKnow {
			got = acceptance.False
		}

		return got.ConflictsWith(ref.IsAccepting(p.ref))
	}

	start := pair[N, S]{built: built.Root(), ref: refInit}
	res, err := traverse.BFS[pair[N, S], int](traverse.GraphFunc[pair[N, S], int](next), start,
		traverse.Visitor[pair[N, S], int]{
			OnVisit: func(p pair[N, S], _ int) traverse.Action {
				if diverges(p) {
					return traverse.Abort
				}

				return traverse.Explore
			},
		}, opts...)
	if err != nil {
		return word.Word[I]{}, false, err
	}
	if !res.Aborted {
		return word.Word[I]{}, false, nil
	}

	// 4. Rebuild the witness from the BFS parent links
	labels, err := res.LabelsTo(res.Last)
	if err != nil {
		return word.Word[I]{}, false, err
	}
	wb := word.NewBuilder[I](len(labels))
	for _, idx := range labels {
		wb.Append(alpha.Symbol(idx))
	}

	return wb.Word(), true, nil
}
