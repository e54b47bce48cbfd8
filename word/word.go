// Package word provides Word, an immutable finite sequence of symbols, the
// unit of input consumed by the incremental builders and produced by the
// separating-word search.
//
// Words never expose their backing storage: sub-words share it read-only and
// every operation that extends a word copies. Out-of-range indices panic like
// slice expressions do.
package word

import (
	"fmt"
	"strings"
)

// Word is an immutable sequence of symbols of type I.
// The zero value is the empty word (epsilon).
type Word[I comparable] struct {
	syms []I
}

// Epsilon returns the empty word.
func Epsilon[I comparable]() Word[I] {
	return Word[I]{}
}

// Of returns the word consisting of syms, in order. syms is copied.
func Of[I comparable](syms ...I) Word[I] {
	if len(syms) == 0 {
		return Word[I]{}
	}
	cp := make([]I, len(syms))
	copy(cp, syms)

	return Word[I]{syms: cp}
}

// FromString returns the word of the runes of s.
func FromString(s string) Word[rune] {
	return Word[rune]{syms: []rune(s)}
}

// Len returns the number of symbols.
func (w Word[I]) Len() int { return len(w.syms) }

// IsEmpty reports whether w is epsilon.
func (w Word[I]) IsEmpty() bool { return len(w.syms) == 0 }

// At returns the symbol at position i.
func (w Word[I]) At(i int) I { return w.syms[i] }

// First returns the first symbol. It panics on epsilon.
func (w Word[I]) First() I { return w.syms[0] }

// Last returns the last symbol. It panics on epsilon.
func (w Word[I]) Last() I { return w.syms[len(w.syms)-1] }

// Prefix returns the first n symbols.
func (w Word[I]) Prefix(n int) Word[I] { return w.SubWord(0, n) }

// Suffix returns the last n symbols.
func (w Word[I]) Suffix(n int) Word[I] { return w.SubWord(len(w.syms)-n, len(w.syms)) }

// From returns the symbols from position i to the end.
func (w Word[I]) From(i int) Word[I] { return w.SubWord(i, len(w.syms)) }

// SubWord returns the symbols in positions [from, to).
func (w Word[I]) SubWord(from, to int) Word[I] {
	if from < 0 || to > len(w.syms) || from > to {
		panic(fmt.Sprintf("word: sub-word [%d:%d] out of range for length %d", from, to, len(w.syms)))
	}
	if from == to {
		return Word[I]{}
	}

	return Word[I]{syms: w.syms[from:to:to]}
}

// Append returns w followed by syms.
func (w Word[I]) Append(syms ...I) Word[I] {
	out := make([]I, 0, len(w.syms)+len(syms))
	out = append(out, w.syms...)
	out = append(out, syms...)

	return Word[I]{syms: out}
}

// Prepend returns sym followed by w.
func (w Word[I]) Prepend(sym I) Word[I] {
	out := make([]I, 0, len(w.syms)+1)
	out = append(out, sym)
	out = append(out, w.syms...)

	return Word[I]{syms: out}
}

// Concat returns w followed by every word in others.
func (w Word[I]) Concat(others ...Word[I]) Word[I] {
	n := len(w.syms)
	for _, o := range others {
		n += len(o.syms)
	}
	out := make([]I, 0, n)
	out = append(out, w.syms...)
	for _, o := range others {
		out = append(out, o.syms...)
	}

	return Word[I]{syms: out}
}

// Equal reports whether w and o hold the same symbols in the same order.
func (w Word[I]) Equal(o Word[I]) bool {
	if len(w.syms) != len(o.syms) {
		return false
	}
	for i := range w.syms {
		if w.syms[i] != o.syms[i] {
			return false
		}
	}

	return true
}

// IsPrefixOf reports whether w is a (not necessarily proper) prefix of o.
func (w Word[I]) IsPrefixOf(o Word[I]) bool {
	return len(w.syms) <= len(o.syms) && w.Equal(o.Prefix(len(w.syms)))
}

// IsSuffixOf reports whether w is a (not necessarily proper) suffix of o.
func (w Word[I]) IsSuffixOf(o Word[I]) bool {
	return len(w.syms) <= len(o.syms) && w.Equal(o.Suffix(len(w.syms)))
}

// LongestCommonPrefix returns the longest word that is a prefix of both.
func (w Word[I]) LongestCommonPrefix(o Word[I]) Word[I] {
	n := min(len(w.syms), len(o.syms))
	i := 0
	for i < n && w.syms[i] == o.syms[i] {
		i++
	}

	return w.Prefix(i)
}

// Symbols returns a copy of the symbols.
func (w Word[I]) Symbols() []I {
	out := make([]I, len(w.syms))
	copy(out, w.syms)

	return out
}

// String renders rune and string symbols verbatim and anything else with
// fmt, separated by spaces. Epsilon renders as "ε".
func (w Word[I]) String() string {
	if len(w.syms) == 0 {
		return "ε"
	}
	var sb strings.Builder
	for i, s := range w.syms {
		switch v := any(s).(type) {
		case rune:
			sb.WriteRune(v)
		case string:
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(v)
		default:
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, v)
		}
	}

	return sb.String()
}

// Builder accumulates symbols and snapshots them into Words.
type Builder[I comparable] struct {
	syms []I
}

// NewBuilder returns a Builder with room for capacity symbols.
func NewBuilder[I comparable](capacity int) *Builder[I] {
	return &Builder[I]{syms: make([]I, 0, capacity)}
}

// Append adds syms to the end.
func (b *Builder[I]) Append(syms ...I) *Builder[I] {
	b.syms = append(b.syms, syms...)

	return b
}

// Len returns the number of accumulated symbols.
func (b *Builder[I]) Len() int { return len(b.syms) }

// Truncate drops everything after the first n symbols.
func (b *Builder[I]) Truncate(n int) *Builder[I] {
	b.syms = b.syms[:n]

	return b
}

// Reverse reverses the accumulated symbols in place.
func (b *Builder[I]) Reverse() *Builder[I] {
	for i, j := 0, len(b.syms)-1; i < j; i, j = i+1, j-1 {
		b.syms[i], b.syms[j] = b.syms[j], b.syms[i]
	}

	return b
}

// Word returns a snapshot; later changes to b do not affect it.
func (b *Builder[I]) Word() Word[I] {
	return Of(b.syms...)
}
