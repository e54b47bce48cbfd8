package dag

import "github.com/katalvlaran/automata/acceptance"

// lookupOrRegister returns the state registered under the current signature
// of s if it is a different state; the caller then merges s into it.
// Otherwise s is registered and returned.
func (st *store) lookupOrRegister(s StateID) StateID {
	key := st.keyOf(s)
	if t, ok := st.index[key]; ok && t != s {
		return t
	}
	st.register(s, key)

	return s
}

// intern returns the registered state with signature (acc, succ), allocating
// and registering it if none exists. succ may be shorter than the alphabet.
func (st *store) intern(acc acceptance.Acceptance, succ []StateID) StateID {
	key := signatureKey(acc, succ)
	if t, ok := st.index[key]; ok {
		return t
	}
	s := st.newState(acc)
	for i, t := range succ {
		if t != NoState {
			st.setSucc(s, i, t)
		}
	}
	st.register(s, key)

	return s
}

func (st *store) register(s StateID, key string) {
	if st.states[s].registered {
		st.unregister(s)
	}
	st.index[key] = s
	st.states[s].key = key
	st.states[s].registered = true
}

// unregister hides s from the index. Entries owned by another state are kept.
func (st *store) unregister(s StateID) {
	x := &st.states[s]
	if !x.registered {
		return
	}
	if owner, ok := st.index[x.key]; ok && owner == s {
		delete(st.index, x.key)
	}
	x.key = ""
	x.registered = false
}
