// Package dag provides incremental DFA and prefix-closed DFA builders with
// maximal structural sharing.
//
// What
//
//   - Insert labeled words (word -> accepted/rejected) one at a time into a
//     lazily built, partial automaton.
//   - Lookup a word's classification: True, False, or DontKnow once the walk
//     leaves the built structure.
//   - Equivalent suffixes are stored once: every state is hash-consed on its
//     signature (acceptance + ordered successor ids), so the automaton is a DAG
//     in which no two live states have the same signature.
//   - Contradicting information is refused with a *ConflictError and leaves
//     the builder unchanged.
//   - The alphabet can grow while the builder is in use.
//   - FindSeparatingWord compares the builder with a reference DFA.
//
// Variants
//
//   - DFABuilder: plain semantics; acceptance is recorded per word.
//   - PCDFABuilder: prefix-closed semantics. Accepting a word accepts all its
//     prefixes; rejecting a word rejects all its extensions. Rejection is a
//     single absorbing sink state.
//
// Sharing and confluence
//
//	A state reachable through more than one word (a confluence state) must not
//	be mutated in place: the other words would change meaning. Every state
//	keeps an in-degree count. Insert walks the word, rejects conflicts before
//	touching anything, then rebuilds the path bottom-up:
//	  - states below the first confluence state are copied (copy-on-write),
//	  - states above it are mutated in place and re-hash-consed, merging into
//	    an existing equal state when their new signature is already taken,
//	  - the root is always mutated in place.
//	The in-place states are removed from the signature index before the new
//	suffix is interned, so interning cannot hand back a state that is about to
//	change.
//
// Determinism
//
//	State ids depend only on the sequence of operations. Views list edges in
//	alphabet index order.
//
// Complexity (n = |word|, k = |alphabet|)
//
//   - Insert: O(n * k) plus reclamation of dropped states.
//   - Lookup: O(n).
//   - AddAlphabetSymbol: O(states).
//   - Verify, Stats: O(states * k).
//
// Options
//
//   - WithLogger(fn):           debug sink; defaults to gou's Debugf.
//   - WithInitialCapacity(n):   arena pre-allocation, n >= 0.
//   - WithVerify():             check every invariant after each mutation and
//     panic on violation (debugging aid).
//
// Errors
//
//   - ErrNilAlphabet          if the builder is constructed without an alphabet.
//   - ErrOptionViolation      for invalid options.
//   - ErrUnknownSymbol        if Insert meets a symbol outside the alphabet.
//   - *ConflictError          (errors.Is(err, ErrConflict)) on contradiction.
//   - ErrInvariantViolation   from Verify only.
//
// Builders are single-writer structures with no internal locking.
package dag
