package dag

import (
	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/traverse"
)

// View is a read-only graph view of a builder, suitable for traverse and dot.
// It is not a snapshot; later mutations show through.
type View[I comparable] struct {
	b *Builder[I]
}

// View returns a read-only view of b.
func (b *Builder[I]) View() View[I] { return View[I]{b: b} }

// InitialState returns the root.
func (v View[I]) InitialState() (StateID, bool) { return v.b.root, true }

// Acceptance returns the classification stored at s.
func (v View[I]) Acceptance(s StateID) acceptance.Acceptance { return v.b.st.acceptance(s) }

// OutEdges implements traverse.Graph in alphabet index order.
// The sink of a prefix-closed builder is shown with a self-loop per symbol.
func (v View[I]) OutEdges(s StateID) []traverse.Edge[StateID, I] {
	k := v.b.alpha.Size()
	out := make([]traverse.Edge[StateID, I], 0, k)
	for idx := 0; idx < k; idx++ {
		if t, ok := v.b.Step(s, idx); ok {
			out = append(out, traverse.Edge[StateID, I]{From: s, Label: v.b.alpha.Symbol(idx), To: t})
		}
	}

	return out
}

// States lists the states reachable from the root in breadth-first order.
func (v View[I]) States() []StateID {
	res, err := traverse.BFS[StateID, I](v, v.b.root, traverse.Visitor[StateID, I]{})
	if err != nil {
		return nil
	}

	return res.Order
}
