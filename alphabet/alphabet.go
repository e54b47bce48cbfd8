// Package alphabet maps input symbols to dense indices 0..k-1 and back.
//
// Two implementations are provided:
//
//   - Simple: a fixed alphabet built from a list of distinct symbols.
//   - Growing: wraps any Alphabet and appends new symbols with the next index.
//
// Index order is the iteration order everywhere in this module: traversals,
// separating-word tie-breaks and DOT output all enumerate symbols by index.
package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for alphabet construction.
var (
	// ErrDuplicateSymbol is returned when a symbol occurs twice.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrNilBase is returned when Growing is asked to wrap a nil alphabet.
	ErrNilBase = errors.New("alphabet: base alphabet is nil")
)

// Alphabet is a bijection between symbols and the indices 0..Size()-1.
type Alphabet[I comparable] interface {
	// Size returns the number of symbols.
	Size() int
	// Index returns the dense index of sym and whether sym is a member.
	Index(sym I) (int, bool)
	// Symbol returns the symbol with index idx. It panics when idx is out of range.
	Symbol(idx int) I
	// Symbols returns all symbols in index order.
	Symbols() []I
}

// Simple is an immutable Alphabet.
type Simple[I comparable] struct {
	syms  []I
	index map[I]int
}

// New returns a Simple alphabet over syms, in the given order.
func New[I comparable](syms ...I) (*Simple[I], error) {
	a := &Simple[I]{
		syms:  make([]I, 0, len(syms)),
		index: make(map[I]int, len(syms)),
	}
	for _, s := range syms {
		if _, dup := a.index[s]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateSymbol, s)
		}
		a.index[s] = len(a.syms)
		a.syms = append(a.syms, s)
	}

	return a, nil
}

// MustNew is like New but panics on duplicates. Intended for literals.
func MustNew[I comparable](syms ...I) *Simple[I] {
	a, err := New(syms...)
	if err != nil {
		panic(err)
	}

	return a
}

// Runes returns the alphabet of the distinct runes of s, in order of first occurrence.
func Runes(s string) *Simple[rune] {
	a := &Simple[rune]{index: make(map[rune]int, len(s))}
	for _, r := range s {
		if _, dup := a.index[r]; dup {
			continue
		}
		a.index[r] = len(a.syms)
		a.syms = append(a.syms, r)
	}

	return a
}

// Size implements Alphabet.
func (a *Simple[I]) Size() int { return len(a.syms) }

// Index implements Alphabet.
func (a *Simple[I]) Index(sym I) (int, bool) {
	i, ok := a.index[sym]

	return i, ok
}

// Symbol implements Alphabet.
func (a *Simple[I]) Symbol(idx int) I { return a.syms[idx] }

// Symbols implements Alphabet.
func (a *Simple[I]) Symbols() []I {
	out := make([]I, len(a.syms))
	copy(out, a.syms)

	return out
}

// Contains reports whether sym belongs to a.
func Contains[I comparable](a Alphabet[I], sym I) bool {
	_, ok := a.Index(sym)

	return ok
}
