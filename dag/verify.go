package dag

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/automata/traverse"
)

// Verify checks the structural invariants:
//   - every successor is a live state and every state has one slot per symbol,
//   - stored in-degrees equal the actual number of incoming transitions,
//   - every live non-pinned state is registered under its current signature,
//     and no two states share a signature,
//   - every live state is reachable from the root (the sink excepted),
//   - the stored transitions form a DAG.
//
// Violations are wrapped in ErrInvariantViolation.
func (b *Builder[I]) Verify() error {
	st := b.st
	n := len(st.states)
	violation := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
	}

	// 1. Pinned states
	if !st.states[b.root].live {
		return violation("root %d is not live", b.root)
	}
	if b.sink != NoState {
		if !st.states[b.sink].live || st.states[b.sink].registered {
			return violation("sink %d must be live and unregistered", b.sink)
		}
	}

	// 2. Edges and in-degrees
	live := bitset.New(uint(n))
	refs := make([]int32, n)
	for id := range st.states {
		s := &st.states[id]
		if !s.live {
			continue
		}
		live.Set(uint(id))
		if len(s.succ) != st.k {
			return violation("state %d has %d slots, want %d", id, len(s.succ), st.k)
		}
		for idx, t := range s.succ {
			if t == NoState {
				continue
			}
			if int(t) < 0 || int(t) >= n || !st.states[t].live {
				return violation("dangling transition %d --%d--> %d", id, idx, t)
			}
			refs[t]++
		}
	}
	if live.Count() != uint(st.live) {
		return violation("live count %d, found %d", st.live, live.Count())
	}
	for id, r := range refs {
		if st.states[id].live && st.states[id].inDeg != r {
			return violation("state %d in-degree %d, counted %d", id, st.states[id].inDeg, r)
		}
	}

	// 3. Canonicity
	registered := 0
	for id := range st.states {
		s := &st.states[id]
		if !s.live {
			continue
		}
		if s.pinned {
			if s.registered {
				return violation("pinned state %d is registered", id)
			}

			continue
		}
		key := st.keyOf(StateID(id))
		if !s.registered || s.key != key {
			return violation("state %d is not registered under its signature", id)
		}
		if owner := st.index[key]; owner != StateID(id) {
			return violation("states %d and %d share a signature", owner, id)
		}
		registered++
	}
	if registered != len(st.index) {
		return violation("index holds %d signatures for %d registered states", len(st.index), registered)
	}

	// 4. No leaked states
	reach := b.reachable()
	if b.sink != NoState {
		reach.Set(uint(b.sink))
	}
	if !reach.Equal(live) {
		leaked := live.Difference(reach)
		first, _ := leaked.NextSet(0)

		return violation("%d live states unreachable, first %d", leaked.Count(), first)
	}

	// 5. Acyclicity of the stored transitions
	var cycle *traverse.Edge[StateID, int]
	_, err := traverse.DFS[StateID, int](b.storedGraph(), b.root, traverse.Visitor[StateID, int]{
		OnBackEdge: func(e traverse.Edge[StateID, int]) {
			if cycle == nil {
				cycle = &e
			}
		},
	})
	if err != nil {
		return err
	}
	if cycle != nil {
		return violation("cycle through %d --%d--> %d", cycle.From, cycle.Label, cycle.To)
	}

	return nil
}

// storedGraph exposes the stored transitions, labeled by symbol index.
// Unlike View it shows no sink loops.
func (b *Builder[I]) storedGraph() traverse.Graph[StateID, int] {
	return traverse.GraphFunc[StateID, int](func(s StateID) []traverse.Edge[StateID, int] {
		var out []traverse.Edge[StateID, int]
		for idx, t := range b.st.states[s].succ {
			if t != NoState {
				out = append(out, traverse.Edge[StateID, int]{From: s, Label: idx, To: t})
			}
		}

		return out
	})
}

// reachable returns the states reachable from the root through stored transitions.
func (b *Builder[I]) reachable() *bitset.BitSet {
	seen := bitset.New(uint(len(b.st.states)))
	seen.Set(uint(b.root))
	workList := []StateID{b.root}
	for len(workList) > 0 {
		s := workList[0]
		workList = workList[1:]
		for _, t := range b.st.states[s].succ {
			if t != NoState && !seen.Test(uint(t)) {
				seen.Set(uint(t))
				workList = append(workList, t)
			}
		}
	}

	return seen
}

// Stats reports the current structure sizes.
func (b *Builder[I]) Stats() Stats {
	reach := b.reachable()
	s := Stats{
		Live:       b.st.live,
		Reachable:  int(reach.Count()),
		Registered: len(b.st.index),
	}
	for i, ok := reach.NextSet(0); ok; i, ok = reach.NextSet(i + 1) {
		x := &b.st.states[i]
		if x.inDeg > 1 {
			s.Confluence++
		}
		for _, t := range x.succ {
			if t != NoState {
				s.Transitions++
			}
		}
	}

	return s
}
