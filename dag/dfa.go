package dag

import (
	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/word"
)

// DFABuilder incrementally builds a partial DFA from labeled words.
type DFABuilder[I comparable] struct {
	*Builder[I]
}

// NewDFA returns an empty builder over alpha.
func NewDFA[I comparable](alpha alphabet.Alphabet[I], opts ...Option) (*DFABuilder[I], error) {
	b, err := newBuilder[I](alpha, false, opts)
	if err != nil {
		return nil, err
	}

	return &DFABuilder[I]{Builder: b}, nil
}

// Insert records w -> accepting.
// Re-inserting a known word with the same value is a no-op; with the opposite
// value it fails with a *ConflictError. On error the builder is unchanged.
func (d *DFABuilder[I]) Insert(w word.Word[I], accepting bool) error {
	// 1. Resolve symbols
	syms, err := d.indices(w)
	if err != nil {
		return err
	}
	want := acceptance.FromBool(accepting)

	// 2. Walk as far as the structure goes
	path, _ := d.walk(syms)
	m := len(path) - 1

	// 3. Validate and describe the change
	e := &edit{path: path, syms: syms}
	if m == len(syms) {
		got := d.st.acceptance(path[m])
		switch {
		case got == want:
			return nil
		case got.IsDefined():
			return d.conflict(ConflictAcceptance, w, got, want)
		}
		e.bottomAcc = want
	} else {
		e.attach = true
		e.tail = syms[m+1:]
		e.tailEnd = NoState
		e.endAcc = want
	}

	// 4. Apply and re-consolidate
	d.st.apply(e)
	d.inserted(w, want)

	return nil
}

// InsertAccepted is Insert(w, true).
func (d *DFABuilder[I]) InsertAccepted(w word.Word[I]) error {
	return d.Insert(w, true)
}
