package dag

import (
	"encoding/binary"

	"github.com/katalvlaran/automata/acceptance"
)

// state is one arena slot.
type state struct {
	acc    acceptance.Acceptance
	succ   []StateID
	inDeg  int32
	pinned bool // root and sink; never reclaimed
	live   bool

	// key is the signature the state was registered under; valid iff registered.
	key        string
	registered bool
}

// store is the arena of states plus the signature index over it.
// It keeps in-degrees exact but does not enforce canonicity.
type store struct {
	states []state
	free   []StateID
	k      int
	live   int
	index  map[string]StateID
	log    Logger
}

func newStore(k, capacity int, log Logger) *store {
	return &store{
		states: make([]state, 0, capacity),
		k:      k,
		index:  make(map[string]StateID, capacity),
		log:    log,
	}
}

// newState allocates a state with acceptance acc and k empty slots.
func (st *store) newState(acc acceptance.Acceptance) StateID {
	st.live++
	if n := len(st.free); n > 0 {
		id := st.free[n-1]
		st.free = st.free[:n-1]
		s := &st.states[id]
		s.acc, s.live = acc, true
		s.succ = s.succ[:0]
		for i := 0; i < st.k; i++ {
			s.succ = append(s.succ, NoState)
		}

		return id
	}
	succ := make([]StateID, st.k)
	for i := range succ {
		succ[i] = NoState
	}
	st.states = append(st.states, state{acc: acc, succ: succ, live: true})

	return StateID(len(st.states) - 1)
}

func (st *store) acceptance(s StateID) acceptance.Acceptance { return st.states[s].acc }

func (st *store) setAcceptance(s StateID, a acceptance.Acceptance) { st.states[s].acc = a }

func (st *store) succ(s StateID, idx int) StateID { return st.states[s].succ[idx] }

// setSucc points slot idx of s at t. The new target gains a reference before
// the old one loses its own, so self-replacement never frees anything.
func (st *store) setSucc(s StateID, idx int, t StateID) {
	old := st.states[s].succ[idx]
	if old == t {
		return
	}
	if t != NoState {
		st.states[t].inDeg++
	}
	st.states[s].succ[idx] = t
	if old != NoState {
		st.release(old)
	}
}

// release drops one reference to s and reclaims every state left unreferenced.
func (st *store) release(s StateID) {
	stack := []StateID{s}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st.states[x].inDeg--
		if st.states[x].inDeg > 0 || st.states[x].pinned {
			continue
		}
		for _, c := range st.states[x].succ {
			if c != NoState {
				stack = append(stack, c)
			}
		}
		st.drop(x)
	}
}

// drop returns s to the free list. Its outgoing references must already be released.
func (st *store) drop(s StateID) {
	st.unregister(s)
	x := &st.states[s]
	x.acc = acceptance.DontKnow
	x.succ = x.succ[:0]
	x.inDeg = 0
	x.pinned = false
	x.live = false
	st.free = append(st.free, s)
	st.live--
}

// clearSuccs empties every slot of s.
func (st *store) clearSuccs(s StateID) {
	for i := range st.states[s].succ {
		st.setSucc(s, i, NoState)
	}
}

// widen appends empty slots to every live state until each has k of them.
func (st *store) widen(k int) {
	for id := range st.states {
		if !st.states[id].live {
			continue
		}
		for len(st.states[id].succ) < k {
			st.states[id].succ = append(st.states[id].succ, NoState)
		}
	}
	st.k = k
}

// signatureKey encodes (acc, succ) as a string. Trailing empty slots are
// omitted so that keys survive alphabet growth; every id is written as
// uvarint(id+1), which makes the encoding unambiguous.
func signatureKey(acc acceptance.Acceptance, succ []StateID) string {
	n := len(succ)
	for n > 0 && succ[n-1] == NoState {
		n--
	}
	buf := make([]byte, 1, 1+2*n)
	buf[0] = byte(acc)
	for _, t := range succ[:n] {
		buf = binary.AppendUvarint(buf, uint64(t+1))
	}

	return string(buf)
}

func (st *store) keyOf(s StateID) string {
	return signatureKey(st.states[s].acc, st.states[s].succ)
}
