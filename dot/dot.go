// Package dot renders labeled automata as Graphviz DOT.
//
// Any view exposing an initial state, per-state acceptance and labeled
// out-edges can be rendered: dag and tree builders, automaton.Compact.
// Only states reachable from the initial state are written, in
// breadth-first order, so the output is deterministic.
//
// Styling
//
//   - accepting states: doublecircle
//   - rejecting states: circle
//   - states without information: dashed grey circle
//   - parallel edges are merged into one edge with a comma-separated label
package dot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/traverse"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dot: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dot: invalid option supplied")
)

// Graph is what Write renders.
type Graph[N comparable, L any] interface {
	traverse.Graph[N, L]
	InitialState() (N, bool)
	Acceptance(n N) acceptance.Acceptance
}

// Option configures rendering.
type Option func(*Options)

// Options holds rendering parameters.
type Options struct {
	// Title is drawn on top of the graph when non-empty.
	Title string
	// RankDir is one of LR, RL, TB, BT.
	RankDir string
	// FormatSymbol renders an edge label. The default prints runes as
	// characters and everything else with fmt.Sprint.
	FormatSymbol func(sym any) string

	err error
}

// DefaultOptions lays out left to right without a title.
func DefaultOptions() Options {
	return Options{
		RankDir:      "LR",
		FormatSymbol: formatSymbol,
	}
}

// WithTitle sets the graph title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithRankDir sets the layout direction.
func WithRankDir(dir string) Option {
	return func(o *Options) {
		switch dir {
		case "LR", "RL", "TB", "BT":
			o.RankDir = dir
		default:
			o.err = fmt.Errorf("%w: unknown rankdir %q", ErrOptionViolation, dir)
		}
	}
}

// WithSymbolFormatter overrides how edge labels are rendered. Nil is ignored.
func WithSymbolFormatter(fn func(sym any) string) Option {
	return func(o *Options) {
		if fn != nil {
			o.FormatSymbol = fn
		}
	}
}

// String renders g and returns the DOT text.
func String[N comparable, L any](g Graph[N, L], opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Write[N, L](&sb, g, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Write renders g to w.
func Write[N comparable, L any](w io.Writer, g Graph[N, L], opts ...Option) error {
	// 1. Validate input and options
	if g == nil {
		return ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}

	// 2. Collect reachable states in BFS order
	var order []N
	if start, ok := g.InitialState(); ok {
		res, err := traverse.BFS[N, L](g, start, traverse.Visitor[N, L]{})
		if err != nil {
			return err
		}
		order = res.Order
	}
	names := make(map[N]string, len(order))
	for i, n := range order {
		names[n] = fmt.Sprintf("s%d", i)
	}

	// 3. Header
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph automaton {")
	fmt.Fprintf(bw, "    rankdir=%s;\n", o.RankDir)
	fmt.Fprintln(bw, `    node [fontname="Helvetica", fontsize=11];`)
	fmt.Fprintln(bw, `    edge [fontname="Helvetica", fontsize=10];`)
	if o.Title != "" {
		fmt.Fprintln(bw, `    labelloc="t";`)
		fmt.Fprintf(bw, "    label=\"%s\";\n", escape(o.Title))
	}
	if len(order) > 0 {
		fmt.Fprintln(bw, `    __start [shape=none, label="", width=0, height=0];`)
		fmt.Fprintf(bw, "    __start -> %s;\n", names[order[0]])
	}

	// 4. States
	for _, n := range order {
		fmt.Fprintf(bw, "    %s [label=\"%s\", %s];\n", names[n], escape(fmt.Sprint(n)), style(g.Acceptance(n)))
	}

	// 5. Edges, parallel ones merged in first-seen order
	for _, n := range order {
		var targets []N
		labels := make(map[N][]string)
		for _, e := range g.OutEdges(n) {
			if _, seen := labels[e.To]; !seen {
				targets = append(targets, e.To)
			}
			labels[e.To] = append(labels[e.To], o.FormatSymbol(e.Label))
		}
		for _, to := range targets {
			fmt.Fprintf(bw, "    %s -> %s [label=\"%s\"];\n", names[n], names[to], escape(strings.Join(labels[to], ",")))
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

func formatSymbol(sym any) string {
	if r, ok := sym.(rune); ok {
		return string(r)
	}

	return fmt.Sprint(sym)
}

func style(a acceptance.Acceptance) string {
	switch a {
	case acceptance.True:
		return "shape=doublecircle"
	case acceptance.False:
		return "shape=circle"
	default:
		return `shape=circle, style=dashed, color=grey`
	}
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)

	return s
}
