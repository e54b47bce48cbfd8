package dag

import (
	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/word"
)

// PCDFABuilder incrementally builds a prefix-closed partial DFA.
//
// Accepting a word marks every prefix accepted; rejecting a word routes it
// into the sink, which rejects every extension.
type PCDFABuilder[I comparable] struct {
	*Builder[I]
}

// NewPCDFA returns an empty prefix-closed builder over alpha.
func NewPCDFA[I comparable](alpha alphabet.Alphabet[I], opts ...Option) (*PCDFABuilder[I], error) {
	b, err := newBuilder[I](alpha, true, opts)
	if err != nil {
		return nil, err
	}

	return &PCDFABuilder[I]{Builder: b}, nil
}

// Sink returns the rejecting sink state.
func (p *PCDFABuilder[I]) Sink() StateID { return p.sink }

// Insert records w -> accepting under prefix-closed semantics.
// Accepting a word below a rejected prefix, or rejecting a word that is
// already accepted (directly or as a prefix of an accepted word), fails with
// a *ConflictError. On error the builder is unchanged.
func (p *PCDFABuilder[I]) Insert(w word.Word[I], accepting bool) error {
	syms, err := p.indices(w)
	if err != nil {
		return err
	}
	path, hitSink := p.walk(syms)
	m := len(path) - 1

	if accepting {
		return p.accept(w, syms, path, hitSink)
	}
	if hitSink {
		return nil
	}

	e := &edit{path: path, syms: syms, attach: true, tailEnd: p.sink}
	if m == len(syms) {
		if got := p.st.acceptance(path[m]); got == acceptance.True {
			return p.conflict(ConflictAcceptance, w, got, acceptance.False)
		}
		if m == 0 {
			p.rejectAll()
			p.inserted(w, acceptance.False)

			return nil
		}
		// the undecided subtree under w is replaced by the sink
		e.path = path[:m]
	} else {
		e.tail = syms[m+1:]
	}
	p.st.apply(e)
	p.inserted(w, acceptance.False)

	return nil
}

// InsertAccepted is Insert(w, true).
func (p *PCDFABuilder[I]) InsertAccepted(w word.Word[I]) error {
	return p.Insert(w, true)
}

func (p *PCDFABuilder[I]) accept(w word.Word[I], syms []int, path []StateID, hitSink bool) error {
	if hitSink {
		return p.conflict(ConflictSink, w, acceptance.False, acceptance.True)
	}
	m := len(path) - 1
	e := &edit{path: path, syms: syms, pathAcc: acceptance.True}
	if m == len(syms) {
		if p.st.acceptance(path[m]) == acceptance.True {
			return nil
		}
	} else {
		e.attach = true
		e.tail = syms[m+1:]
		e.tailEnd = NoState
		e.tailAcc = acceptance.True
		e.endAcc = acceptance.True
	}
	p.st.apply(e)
	p.inserted(w, acceptance.True)

	return nil
}

// rejectAll handles epsilon -> false on an undecided root: the root is
// dropped and the sink becomes the initial state.
func (p *PCDFABuilder[I]) rejectAll() {
	old := p.root
	p.st.clearSuccs(old)
	p.st.states[old].pinned = false
	p.st.drop(old)
	p.root = p.sink
}
