package dag

import "github.com/katalvlaran/automata/acceptance"

// edit describes one validated insertion as a change at the bottom of a
// root path, plus the fresh suffix to attach there.
//
// path is n0 (root) .. nq. Every nj with j < q has its slot syms[j] pointed at
// the rebuilt nj+1. At nq the slot syms[q] receives the suffix when attach is
// set; otherwise only its acceptance changes.
type edit struct {
	path   []StateID
	syms   []int
	attach bool

	// tail lists the symbols below the attach point. The suffix ends in tailEnd,
	// or in a fresh state with acceptance endAcc when tailEnd is NoState;
	// intermediate suffix states carry tailAcc.
	tail    []int
	tailEnd StateID
	tailAcc acceptance.Acceptance
	endAcc  acceptance.Acceptance

	// bottomAcc, when defined, becomes the acceptance of nq.
	bottomAcc acceptance.Acceptance
	// pathAcc, when defined, becomes the acceptance of every path state.
	pathAcc acceptance.Acceptance
}

// apply rebuilds the path bottom-up so that every state ends up canonical.
//
// States n1..nc-1 above the first confluence state nc are reachable only
// through this path and are mutated in place. nc and everything below it are
// shared with other words and are replaced by interned copies instead.
func (st *store) apply(e *edit) {
	q := len(e.path) - 1

	// 1. Locate the first confluence state below the root
	firstConf := q + 1
	for j := 1; j <= q; j++ {
		if st.states[e.path[j]].inDeg > 1 {
			firstConf = j

			break
		}
	}

	// 2. Hide the in-place states; interning must never return one of them
	for j := 1; j < firstConf; j++ {
		st.unregister(e.path[j])
	}

	// 3. Intern the fresh suffix
	child := NoState
	if e.attach {
		child = st.suffix(e)
	}

	// 4. Rebuild bottom-up, handing each result to its parent's slot
	for j := q; j >= 0; j-- {
		n := e.path[j]
		acc := st.states[n].acc
		if e.pathAcc.IsDefined() {
			acc = e.pathAcc
		}
		if j == q && e.bottomAcc.IsDefined() {
			acc = e.bottomAcc
		}
		slot := -1
		if j < q || e.attach {
			slot = e.syms[j]
		}

		if j >= firstConf {
			child = st.clone(n, acc, slot, child)

			continue
		}
		st.setAcceptance(n, acc)
		if slot >= 0 {
			st.setSucc(n, slot, child)
		}
		if j == 0 {
			break
		}
		if t := st.lookupOrRegister(n); t != n {
			st.log("dag: merged state %d into %d", n, t)
			child = t

			continue
		}
		child = n
	}
}

// suffix interns the chain for e.tail bottom-up and returns its top state.
func (st *store) suffix(e *edit) StateID {
	child := e.tailEnd
	if child == NoState {
		child = st.intern(e.endAcc, nil)
	}
	for i := len(e.tail) - 1; i >= 0; i-- {
		succ := make([]StateID, e.tail[i]+1)
		for j := range succ {
			succ[j] = NoState
		}
		succ[e.tail[i]] = child
		child = st.intern(e.tailAcc, succ)
	}

	return child
}

// clone returns the canonical state equal to n with acceptance acc and, if
// slot >= 0, slot pointed at child. n itself is left untouched.
func (st *store) clone(n StateID, acc acceptance.Acceptance, slot int, child StateID) StateID {
	succ := make([]StateID, len(st.states[n].succ))
	copy(succ, st.states[n].succ)
	if slot >= 0 {
		succ[slot] = child
	}
	t := st.intern(acc, succ)
	if t != n {
		st.log("dag: copy-on-write of shared state %d as %d", n, t)
	}

	return t
}
