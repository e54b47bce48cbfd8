package traverse

// Visitation states of a node during DFS.
const (
	white = iota // not discovered
	gray         // on the current stack
	black        // finished
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable, L any] struct {
	graph   Graph[N, L]
	v       Visitor[N, L]
	opts    Options
	res     *Result[N, L]
	state   map[N]int
	aborted bool
}

// DFS performs depth-first search on g from start.
// res.Order is the post-order, res.PreOrder the discovery order.
// Back edges are reported through Visitor.OnBackEdge and never followed.
func DFS[N comparable, L any](g Graph[N, L], start N, v Visitor[N, L], opts ...Option) (*Result[N, L], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 3. Traverse from the single root
	w := &dfsWalker[N, L]{
		graph: g,
		v:     v,
		opts:  o,
		res:   newResult[N, L](),
		state: make(map[N]int),
	}
	if err = w.traverse(start, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// traverse visits n at the given depth and recurses into its successors.
func (w *dfsWalker[N, L]) traverse(n N, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Discover
	w.state[n] = gray
	w.res.Depth[n] = depth
	w.res.PreOrder = append(w.res.PreOrder, n)

	// 3. Pre-order hook
	act := Explore
	if w.v.OnVisit != nil {
		act = w.v.OnVisit(n, depth)
	}
	if act == Abort {
		w.abort(n)

		return nil
	}

	// 4. Explore successors unless ignored or beyond the depth limit
	if act == Explore && (w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth) {
		for _, e := range w.graph.OutEdges(n) {
			if w.v.OnEdge != nil {
				switch w.v.OnEdge(e, depth) {
				case Abort:
					w.abort(n)

					return nil
				case Ignore:
					continue
				}
			}
			switch w.state[e.To] {
			case gray:
				if w.v.OnBackEdge != nil {
					w.v.OnBackEdge(e)
				}
			case white:
				w.res.Parent[e.To] = e
				if err := w.traverse(e.To, depth+1); err != nil {
					return err
				}
				if w.aborted {
					return nil
				}
			}
		}
	}

	// 5. Post-order hook and finish
	w.state[n] = black
	if w.v.OnExit != nil {
		w.v.OnExit(n, depth)
	}
	w.res.Order = append(w.res.Order, n)

	return nil
}

func (w *dfsWalker[N, L]) abort(at N) {
	w.aborted = true
	w.res.Aborted = true
	w.res.Last = at
}
