package alphabet

// Growing wraps a base alphabet and lets callers append symbols.
// Base symbols keep their indices; added symbols get Size() at insertion time.
// The base is read once at construction; later changes to it are not observed.
type Growing[I comparable] struct {
	syms  []I
	index map[I]int
}

// NewGrowing returns a Growing alphabet seeded with every symbol of base.
// A nil base yields an empty alphabet.
func NewGrowing[I comparable](base Alphabet[I]) *Growing[I] {
	g := &Growing[I]{index: make(map[I]int)}
	if base == nil {
		return g
	}
	for _, s := range base.Symbols() {
		g.Add(s)
	}

	return g
}

// Add appends sym if it is new. It returns the index of sym and whether it was added.
func (g *Growing[I]) Add(sym I) (int, bool) {
	if i, ok := g.index[sym]; ok {
		return i, false
	}
	i := len(g.syms)
	g.index[sym] = i
	g.syms = append(g.syms, sym)

	return i, true
}

// Size implements Alphabet.
func (g *Growing[I]) Size() int { return len(g.syms) }

// Index implements Alphabet.
func (g *Growing[I]) Index(sym I) (int, bool) {
	i, ok := g.index[sym]

	return i, ok
}

// Symbol implements Alphabet.
func (g *Growing[I]) Symbol(idx int) I { return g.syms[idx] }

// Symbols implements Alphabet.
func (g *Growing[I]) Symbols() []I {
	out := make([]I, len(g.syms))
	copy(out, g.syms)

	return out
}
