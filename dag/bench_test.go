package dag_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/dag"
	"github.com/katalvlaran/automata/word"
)

func benchWords(n, maxLen int) []word.Word[rune] {
	rng := rand.New(rand.NewSource(42))
	syms := []rune("abcd")
	out := make([]word.Word[rune], n)
	for i := range out {
		out[i] = randomWord(rng, syms, maxLen)
	}

	return out
}

// BenchmarkDFA_Insert inserts 1000 random words of length <= 16 into a fresh builder.
func BenchmarkDFA_Insert(b *testing.B) {
	words := benchWords(1000, 16)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		d, _ := dag.NewDFA[rune](alphabet.Runes("abcd"), dag.WithLogger(nil), dag.WithInitialCapacity(4096))
		for j, w := range words {
			_ = d.Insert(w, j%3 == 0)
		}
	}
}

// BenchmarkDFA_Lookup queries a builder holding 1000 random words.
func BenchmarkDFA_Lookup(b *testing.B) {
	words := benchWords(1000, 16)
	d, _ := dag.NewDFA[rune](alphabet.Runes("abcd"), dag.WithLogger(nil))
	for j, w := range words {
		_ = d.Insert(w, j%3 == 0)
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = d.Lookup(words[i%len(words)])
	}
}

// BenchmarkPCDFA_Insert mixes accepted words with rejected extensions.
func BenchmarkPCDFA_Insert(b *testing.B) {
	words := benchWords(1000, 16)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		p, _ := dag.NewPCDFA[rune](alphabet.Runes("abcd"), dag.WithLogger(nil))
		for j, w := range words {
			_ = p.Insert(w, j%4 != 0)
		}
	}
}
