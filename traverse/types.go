package traverse

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrNotReached is returned by PathTo for nodes the traversal never discovered.
	ErrNotReached = errors.New("traverse: node not reached")
)

// Action tells the walker how to proceed after a callback.
type Action uint8

const (
	// Explore continues normally.
	Explore Action = iota
	// Ignore skips the node's out-edges (OnVisit) or the single edge (OnEdge).
	Ignore
	// Abort stops the traversal.
	Abort
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Explore:
		return "explore"
	case Ignore:
		return "ignore"
	case Abort:
		return "abort"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// Edge is a labeled transition From -> To.
type Edge[N comparable, L any] struct {
	From  N
	Label L
	To    N
}

// Graph is the adjacency view the walkers consume.
type Graph[N comparable, L any] interface {
	// OutEdges returns the edges leaving n, in the order they should be followed.
	OutEdges(n N) []Edge[N, L]
}

// GraphFunc adapts a plain function to Graph.
type GraphFunc[N comparable, L any] func(n N) []Edge[N, L]

// OutEdges implements Graph.
func (f GraphFunc[N, L]) OutEdges(n N) []Edge[N, L] { return f(n) }

// Visitor holds the traversal callbacks. Nil callbacks behave as Explore / no-op.
type Visitor[N comparable, L any] struct {
	// OnVisit is called when a node is visited (BFS: dequeued; DFS: discovered).
	OnVisit func(n N, depth int) Action

	// OnEdge is called for every out-edge of a visited node, including edges
	// into already discovered nodes.
	OnEdge func(e Edge[N, L], depth int) Action

	// OnExit is called after all descendants of n are finished (DFS only).
	OnExit func(n N, depth int)

	// OnBackEdge is called for edges into a node on the current DFS stack (DFS only).
	OnBackEdge func(e Edge[N, L])
}

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops following edges that would exceed this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits traversal depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result holds the outcome of a traversal.
type Result[N comparable, L any] struct {
	// Order lists nodes in visit order (BFS) or post-order (DFS).
	Order []N

	// PreOrder lists nodes in discovery order (DFS only; equals Order for BFS).
	PreOrder []N

	// Depth maps every discovered node to its depth.
	Depth map[N]int

	// Parent maps every discovered node except the start to the edge that discovered it.
	Parent map[N]Edge[N, L]

	// Aborted reports whether a callback returned Abort.
	Aborted bool

	// Last is the node being visited when the traversal was aborted.
	Last N
}

func newResult[N comparable, L any]() *Result[N, L] {
	return &Result[N, L]{
		Depth:  make(map[N]int),
		Parent: make(map[N]Edge[N, L]),
	}
}

// Reached reports whether n was discovered.
func (r *Result[N, L]) Reached(n N) bool {
	_, ok := r.Depth[n]

	return ok
}

// PathTo reconstructs the discovery path from the start node to dest.
func (r *Result[N, L]) PathTo(dest N) ([]Edge[N, L], error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	var path []Edge[N, L]
	for cur := dest; ; {
		e, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, e)
		cur = e.From
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// LabelsTo returns the edge labels along PathTo(dest).
func (r *Result[N, L]) LabelsTo(dest N) ([]L, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return nil, err
	}
	out := make([]L, len(path))
	for i, e := range path {
		out[i] = e.Label
	}

	return out, nil
}
