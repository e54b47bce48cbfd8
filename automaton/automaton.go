// Package automaton defines the deterministic-automaton contract consumed by
// the separating-word search, and Compact, a dense table implementation.
//
// Compact stores transitions in a flat slice indexed by state*k+symbol, with
// -1 for "no transition", so it can be partial or complete. Complete() adds a
// rejecting sink for every missing transition.
package automaton

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/traverse"
	"github.com/katalvlaran/automata/word"
)

// Sentinel errors for Compact construction.
var (
	// ErrStateOutOfRange indicates a state id that was never allocated.
	ErrStateOutOfRange = errors.New("automaton: state out of range")

	// ErrUnknownSymbol indicates a symbol outside the automaton's alphabet.
	ErrUnknownSymbol = errors.New("automaton: symbol not in alphabet")

	// ErrNilAlphabet is returned when constructing over a nil alphabet.
	ErrNilAlphabet = errors.New("automaton: alphabet is nil")
)

// none marks a missing transition or initial state.
const none = -1

// DFA is a deterministic, possibly partial automaton.
type DFA[S comparable, I comparable] interface {
	// InitialState returns the initial state, if any.
	InitialState() (S, bool)
	// Successor returns the state reached from s on sym, if defined.
	Successor(s S, sym I) (S, bool)
	// IsAccepting reports whether s is accepting.
	IsAccepting(s S) bool
}

// Accepts runs w on a from its initial state. Missing transitions reject.
func Accepts[S comparable, I comparable](a DFA[S, I], w word.Word[I]) bool {
	s, ok := a.InitialState()
	if !ok {
		return false
	}
	for i := 0; i < w.Len(); i++ {
		if s, ok = a.Successor(s, w.At(i)); !ok {
			return false
		}
	}

	return a.IsAccepting(s)
}

// Compact is a DFA with integer states 0..Size()-1.
type Compact[I comparable] struct {
	alpha     alphabet.Alphabet[I]
	k         int
	initial   int
	accepting []bool
	trans     []int
}

// NewCompact returns an empty automaton over alpha.
func NewCompact[I comparable](alpha alphabet.Alphabet[I]) (*Compact[I], error) {
	if alpha == nil {
		return nil, ErrNilAlphabet
	}

	return &Compact[I]{alpha: alpha, k: alpha.Size(), initial: none}, nil
}

// Alphabet returns the input alphabet.
func (c *Compact[I]) Alphabet() alphabet.Alphabet[I] { return c.alpha }

// Size returns the number of states.
func (c *Compact[I]) Size() int { return len(c.accepting) }

// AddState allocates a state with no outgoing transitions and returns its id.
func (c *Compact[I]) AddState(accepting bool) int {
	id := len(c.accepting)
	c.accepting = append(c.accepting, accepting)
	for i := 0; i < c.k; i++ {
		c.trans = append(c.trans, none)
	}

	return id
}

// AddInitialState allocates a state and makes it initial.
func (c *Compact[I]) AddInitialState(accepting bool) int {
	id := c.AddState(accepting)
	c.initial = id

	return id
}

// SetInitial makes s the initial state.
func (c *Compact[I]) SetInitial(s int) error {
	if err := c.check(s); err != nil {
		return err
	}
	c.initial = s

	return nil
}

// SetAccepting sets whether s is accepting.
func (c *Compact[I]) SetAccepting(s int, accepting bool) error {
	if err := c.check(s); err != nil {
		return err
	}
	c.accepting[s] = accepting

	return nil
}

// SetTransition defines s --sym--> t, replacing any previous target.
func (c *Compact[I]) SetTransition(s int, sym I, t int) error {
	if err := c.check(s); err != nil {
		return err
	}
	if err := c.check(t); err != nil {
		return err
	}
	idx, ok := c.alpha.Index(sym)
	if !ok || idx >= c.k {
		return fmt.Errorf("%w: %v", ErrUnknownSymbol, sym)
	}
	c.trans[s*c.k+idx] = t

	return nil
}

// InitialState implements DFA.
func (c *Compact[I]) InitialState() (int, bool) {
	return c.initial, c.initial != none
}

// Successor implements DFA.
func (c *Compact[I]) Successor(s int, sym I) (int, bool) {
	idx, ok := c.alpha.Index(sym)
	if !ok || idx >= c.k {
		return none, false
	}

	return c.SuccessorAt(s, idx)
}

// SuccessorAt returns the successor of s for the symbol with index idx.
func (c *Compact[I]) SuccessorAt(s, idx int) (int, bool) {
	if s < 0 || s >= len(c.accepting) || idx < 0 || idx >= c.k {
		return none, false
	}
	t := c.trans[s*c.k+idx]

	return t, t != none
}

// IsAccepting implements DFA.
func (c *Compact[I]) IsAccepting(s int) bool {
	return s >= 0 && s < len(c.accepting) && c.accepting[s]
}

// Acceptance returns True or False for s; Compact states are always decided.
func (c *Compact[I]) Acceptance(s int) acceptance.Acceptance {
	return acceptance.FromBool(c.IsAccepting(s))
}

// Accepts reports whether the automaton accepts w.
func (c *Compact[I]) Accepts(w word.Word[I]) bool {
	return Accepts[int, I](c, w)
}

// IsComplete reports whether every state has a transition for every symbol.
func (c *Compact[I]) IsComplete() bool {
	for _, t := range c.trans {
		if t == none {
			return false
		}
	}

	return c.initial != none
}

// Complete routes every missing transition to a fresh rejecting sink.
// It returns the sink id, or -1 if the automaton was already complete.
func (c *Compact[I]) Complete() int {
	if c.IsComplete() {
		return none
	}
	sink := c.AddState(false)
	if c.initial == none {
		c.initial = sink
	}
	for i, t := range c.trans {
		if t == none {
			c.trans[i] = sink
		}
	}

	return sink
}

// OutEdges implements traverse.Graph; edges are ordered by symbol index.
func (c *Compact[I]) OutEdges(s int) []traverse.Edge[int, I] {
	if s < 0 || s >= len(c.accepting) {
		return nil
	}
	out := make([]traverse.Edge[int, I], 0, c.k)
	for idx := 0; idx < c.k; idx++ {
		if t := c.trans[s*c.k+idx]; t != none {
			out = append(out, traverse.Edge[int, I]{From: s, Label: c.alpha.Symbol(idx), To: t})
		}
	}

	return out
}

// Reachable returns the set of states reachable from the initial state.
func (c *Compact[I]) Reachable() *bitset.BitSet {
	live := bitset.New(uint(len(c.accepting)))
	if c.initial == none {
		return live
	}
	workList := []int{c.initial}
	live.Set(uint(c.initial))
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for idx := 0; idx < c.k; idx++ {
			t := c.trans[s*c.k+idx]
			if t != none && !live.Test(uint(t)) {
				live.Set(uint(t))
				workList = append(workList, t)
			}
		}
	}

	return live
}

func (c *Compact[I]) check(s int) error {
	if s < 0 || s >= len(c.accepting) {
		return fmt.Errorf("%w: %d (size %d)", ErrStateOutOfRange, s, len(c.accepting))
	}

	return nil
}
