// Package tree provides incremental DFA and prefix-closed DFA builders that
// never share states: every inserted word owns its own path, so the automaton
// is a trie.
//
// The API mirrors package dag. Tree builders are simpler and use more memory;
// they serve as a baseline for the sharing builders.
package tree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/automaton"
	"github.com/katalvlaran/automata/separate"
	"github.com/katalvlaran/automata/traverse"
	"github.com/katalvlaran/automata/word"
)

var (
	// ErrConflict is returned when an insertion contradicts stored information.
	ErrConflict = errors.New("tree: conflicting information")

	// ErrUnknownSymbol indicates a symbol outside the builder's alphabet.
	ErrUnknownSymbol = errors.New("tree: symbol not in alphabet")

	// ErrNilAlphabet is returned when a builder is constructed without an alphabet.
	ErrNilAlphabet = errors.New("tree: alphabet is nil")
)

// none marks a missing child.
const none int32 = -1

type node struct {
	acc  acceptance.Acceptance
	succ []int32 // may be shorter than the alphabet
}

// Builder is a trie of labeled words.
type Builder[I comparable] struct {
	alpha        *alphabet.Growing[I]
	nodes        []node
	size         int
	prefixClosed bool
}

// NewDFA returns an empty plain builder over alpha.
func NewDFA[I comparable](alpha alphabet.Alphabet[I]) (*Builder[I], error) {
	return newBuilder[I](alpha, false)
}

// NewPCDFA returns an empty prefix-closed builder over alpha.
// A rejected node absorbs every extension.
func NewPCDFA[I comparable](alpha alphabet.Alphabet[I]) (*Builder[I], error) {
	return newBuilder[I](alpha, true)
}

func newBuilder[I comparable](alpha alphabet.Alphabet[I], prefixClosed bool) (*Builder[I], error) {
	if alpha == nil {
		return nil, ErrNilAlphabet
	}
	b := &Builder[I]{alpha: alphabet.NewGrowing[I](alpha), prefixClosed: prefixClosed}
	b.newNode(acceptance.DontKnow)

	return b, nil
}

func (b *Builder[I]) newNode(acc acceptance.Acceptance) int32 {
	b.nodes = append(b.nodes, node{acc: acc})
	b.size++

	return int32(len(b.nodes) - 1)
}

// Size returns the number of nodes in the trie.
func (b *Builder[I]) Size() int { return b.size }

// Alphabet returns the builder's alphabet.
func (b *Builder[I]) Alphabet() alphabet.Alphabet[I] { return b.alpha }

// Root returns the root node.
func (b *Builder[I]) Root() int32 { return 0 }

// Acceptance returns the classification stored at n.
func (b *Builder[I]) Acceptance(n int32) acceptance.Acceptance { return b.nodes[n].acc }

// Step returns the child of n for the symbol with index idx. In a
// prefix-closed builder a rejected node loops on every symbol.
func (b *Builder[I]) Step(n int32, idx int) (int32, bool) {
	if b.prefixClosed && b.nodes[n].acc == acceptance.False {
		return n, true
	}
	if idx < 0 || idx >= len(b.nodes[n].succ) || b.nodes[n].succ[idx] == none {
		return none, false
	}

	return b.nodes[n].succ[idx], true
}

// AddAlphabetSymbol appends sym to the alphabet. Children are allocated
// lazily, so no node needs widening.
func (b *Builder[I]) AddAlphabetSymbol(sym I) (int, bool) {
	return b.alpha.Add(sym)
}

// Lookup returns the classification of w, DontKnow off the trie.
func (b *Builder[I]) Lookup(w word.Word[I]) acceptance.Acceptance {
	cur := b.Root()
	for i := 0; i < w.Len(); i++ {
		idx, ok := b.alpha.Index(w.At(i))
		if !ok {
			if b.prefixClosed && b.nodes[cur].acc == acceptance.False {
				return acceptance.False
			}

			return acceptance.DontKnow
		}
		if cur, ok = b.Step(cur, idx); !ok {
			return acceptance.DontKnow
		}
	}

	return b.nodes[cur].acc
}

// InsertAccepted is Insert(w, true).
func (b *Builder[I]) InsertAccepted(w word.Word[I]) error {
	return b.Insert(w, true)
}

// Insert records w -> accepting. On error the builder is unchanged.
func (b *Builder[I]) Insert(w word.Word[I], accepting bool) error {
	// 1. Resolve symbols
	syms := make([]int, w.Len())
	for i := range syms {
		idx, ok := b.alpha.Index(w.At(i))
		if !ok {
			return fmt.Errorf("%w: %v at position %d of %s", ErrUnknownSymbol, w.At(i), i, w)
		}
		syms[i] = idx
	}
	want := acceptance.FromBool(accepting)

	// 2. Validate along the existing part of the path
	cur, depth := b.Root(), 0
	for {
		acc := b.nodes[cur].acc
		if b.prefixClosed && acc == acceptance.False {
			if accepting {
				return fmt.Errorf("%w: %s passes through a rejected prefix", ErrConflict, w)
			}

			return nil
		}
		if depth == len(syms) {
			if acc.Conflicts(want) {
				return fmt.Errorf("%w: %s is %s, requested %s", ErrConflict, w, acc, want)
			}

			break
		}
		next, ok := b.Step(cur, syms[depth])
		if !ok {
			break
		}
		cur, depth = next, depth+1
	}

	// 3. Mutate: extend the path and record the value
	cur = b.Root()
	for i := 0; ; i++ {
		if b.prefixClosed && accepting {
			b.nodes[cur].acc = acceptance.True
		}
		if i == len(syms) {
			break
		}
		cur = b.child(cur, syms[i])
	}
	if b.prefixClosed && !accepting {
		b.size -= b.subtreeSize(cur) - 1
		b.nodes[cur].succ = nil
	}
	b.nodes[cur].acc = want

	return nil
}

// child returns the child of n at idx, creating it if needed.
func (b *Builder[I]) child(n int32, idx int) int32 {
	for len(b.nodes[n].succ) <= idx {
		b.nodes[n].succ = append(b.nodes[n].succ, none)
	}
	if c := b.nodes[n].succ[idx]; c != none {
		return c
	}
	c := b.newNode(acceptance.DontKnow)
	b.nodes[n].succ[idx] = c

	return c
}

func (b *Builder[I]) subtreeSize(n int32) int {
	size := 1
	for _, c := range b.nodes[n].succ {
		if c != none {
			size += b.subtreeSize(c)
		}
	}

	return size
}

// OutEdges implements traverse.Graph over the trie, labeled by symbol.
func (b *Builder[I]) OutEdges(n int32) []traverse.Edge[int32, I] {
	var out []traverse.Edge[int32, I]
	for idx := 0; idx < b.alpha.Size(); idx++ {
		if c, ok := b.Step(n, idx); ok {
			out = append(out, traverse.Edge[int32, I]{From: n, Label: b.alpha.Symbol(idx), To: c})
		}
	}

	return out
}

// InitialState returns the root.
func (b *Builder[I]) InitialState() (int32, bool) { return b.Root(), true }

// FindSeparatingWord returns a shortest word on which b and ref disagree.
func FindSeparatingWord[S comparable, I comparable](
	b *Builder[I],
	ref automaton.DFA[S, I],
	implicitFalse bool,
	opts ...traverse.Option,
) (word.Word[I], bool, error) {
	if b == nil {
		return word.Word[I]{}, false, separate.ErrNilAutomaton
	}

	return separate.Find[int32, S, I](b, ref, b.alpha, implicitFalse, opts...)
}
