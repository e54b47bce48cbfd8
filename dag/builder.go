package dag

import (
	"fmt"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/word"
)

// Builder holds the state shared by DFABuilder and PCDFABuilder:
// the growing alphabet, the arena with its signature index, and the root.
type Builder[I comparable] struct {
	alpha *alphabet.Growing[I]
	st    *store
	root  StateID
	sink  StateID // NoState for plain builders
	opts  Options
}

// Built is implemented by every builder in this package.
type Built[I comparable] interface {
	builder() *Builder[I]
}

func newBuilder[I comparable](alpha alphabet.Alphabet[I], prefixClosed bool, opts []Option) (*Builder[I], error) {
	// 1. Validate input and options
	if alpha == nil {
		return nil, ErrNilAlphabet
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2. Allocate the arena with a pinned, unregistered root
	g := alphabet.NewGrowing[I](alpha)
	b := &Builder[I]{
		alpha: g,
		st:    newStore(g.Size(), o.InitialCapacity, o.Logger),
		sink:  NoState,
		opts:  o,
	}
	b.root = b.st.newState(acceptance.DontKnow)
	b.st.states[b.root].pinned = true

	// 3. Prefix-closed builders share one rejecting sink
	if prefixClosed {
		b.sink = b.st.newState(acceptance.False)
		b.st.states[b.sink].pinned = true
	}

	return b, nil
}

func (b *Builder[I]) builder() *Builder[I] { return b }

// Alphabet returns the builder's alphabet, including symbols added later.
func (b *Builder[I]) Alphabet() alphabet.Alphabet[I] { return b.alpha }

// Root returns the initial state.
func (b *Builder[I]) Root() StateID { return b.root }

// Size returns the number of live states.
func (b *Builder[I]) Size() int { return b.st.live }

// Acceptance returns the classification stored at s.
func (b *Builder[I]) Acceptance(s StateID) acceptance.Acceptance { return b.st.acceptance(s) }

// Step returns the successor of s for the symbol with index idx.
// The sink of a prefix-closed builder loops on every symbol.
func (b *Builder[I]) Step(s StateID, idx int) (StateID, bool) {
	if s == b.sink {
		return s, true
	}
	if idx < 0 || idx >= len(b.st.states[s].succ) {
		return NoState, false
	}
	t := b.st.succ(s, idx)

	return t, t != NoState
}

// Lookup returns the stored classification of w, or DontKnow if the walk
// leaves the built structure. Unknown symbols answer DontKnow.
func (b *Builder[I]) Lookup(w word.Word[I]) acceptance.Acceptance {
	cur := b.root
	for i := 0; i < w.Len(); i++ {
		if cur == b.sink {
			return acceptance.False
		}
		idx, ok := b.alpha.Index(w.At(i))
		if !ok {
			return acceptance.DontKnow
		}
		if cur = b.st.succ(cur, idx); cur == NoState {
			return acceptance.DontKnow
		}
	}

	return b.st.acceptance(cur)
}

// HasDefinitiveInformation reports whether Lookup(w) is True or False.
func (b *Builder[I]) HasDefinitiveInformation(w word.Word[I]) bool {
	return b.Lookup(w).IsDefined()
}

// AddAlphabetSymbol appends sym to the alphabet and widens every state.
// It returns the symbol's index and whether it was new.
func (b *Builder[I]) AddAlphabetSymbol(sym I) (int, bool) {
	idx, added := b.alpha.Add(sym)
	if !added {
		return idx, false
	}
	b.st.widen(b.alpha.Size())
	b.opts.Logger("dag: added symbol %v at index %d", sym, idx)
	b.checked()

	return idx, true
}

// indices maps w to symbol indices.
func (b *Builder[I]) indices(w word.Word[I]) ([]int, error) {
	syms := make([]int, w.Len())
	for i := range syms {
		idx, ok := b.alpha.Index(w.At(i))
		if !ok {
			return nil, fmt.Errorf("%w: %v at position %d of %s", ErrUnknownSymbol, w.At(i), i, w)
		}
		syms[i] = idx
	}

	return syms, nil
}

// walk follows syms from the root through existing transitions. It returns
// the visited states n0..nm, stopping at the first missing transition or at
// the end of the word. hitSink reports that the next state would be the sink,
// which is never part of the path.
func (b *Builder[I]) walk(syms []int) (path []StateID, hitSink bool) {
	path = make([]StateID, 0, len(syms)+1)
	cur := b.root
	for i := 0; ; i++ {
		if cur == b.sink {
			return path, true
		}
		path = append(path, cur)
		if i == len(syms) {
			return path, false
		}
		if cur = b.st.succ(cur, syms[i]); cur == NoState {
			return path, false
		}
	}
}

// conflict logs and returns a *ConflictError.
func (b *Builder[I]) conflict(kind ConflictKind, w word.Word[I], stored, requested acceptance.Acceptance) error {
	err := &ConflictError{Kind: kind, Word: w.String(), Stored: stored, Requested: requested}
	b.opts.Logger("%v", err)

	return err
}

// inserted logs a successful mutation and self-checks when enabled.
func (b *Builder[I]) inserted(w word.Word[I], a acceptance.Acceptance) {
	b.opts.Logger("dag: inserted %s -> %s (%d states)", w, a, b.st.live)
	b.checked()
}

func (b *Builder[I]) checked() {
	if !b.opts.Verify {
		return
	}
	if err := b.Verify(); err != nil {
		panic(err)
	}
}
