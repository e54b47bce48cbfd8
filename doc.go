// Package automata builds deterministic automata incrementally from labeled
// words, keeping the automaton as a DAG with maximal structural sharing.
//
// 🚀 What is automata?
//
//	A small, single-writer library for learning and testing setups that
//	collect word classifications one at a time:
//		• Three-valued acceptance: true, false, don't know
//		• Hash-consed DAG builders: plain DFA and prefix-closed DFA
//		• Copy-on-write confluence resolution on every insertion
//		• Alphabet growth while building
//		• Shortest separating word against a reference DFA
//		• Tree builders as the unshared baseline
//		• Generic BFS/DFS and Graphviz DOT rendering
//
// ✨ Why a DAG?
//
//   - Equivalent suffix structure is stored once; a new word reuses it
//   - Lookups stay O(|w|) with no hashing on the read path
//   - A sample set never gets a loop, so "don't know" stays honest
//
// Packages:
//
//	acceptance/   the True / False / DontKnow lattice
//	word/         immutable words over any comparable symbol type
//	alphabet/     dense symbol indexing, fixed or growing
//	automaton/    the DFA interface and a compact table implementation
//	traverse/     generic BFS/DFS with per-node and per-edge actions
//	dag/          the incremental DAG builders (DFA and PC-DFA)
//	tree/         incremental tree builders without sharing
//	separate/     product BFS for shortest separating words
//	dot/          Graphviz DOT output for any labeled view
//	cmd/dagbuild  build an automaton from a config file of samples
//
// Quick example: after abc→true, ac→false, acb→true and ε→true
//
//	      a       b       c
//	ε(T) ───▶ (?) ───▶ (?) ───▶ (T)
//	           │                 ▲
//	           └──c──▶ (F) ──b───┘
//
// the accepting leaf is shared between abc and acb.
//
//	go get github.com/katalvlaran/automata
package automata
