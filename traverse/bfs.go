package traverse

import "context"

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// bfsWalker encapsulates mutable BFS state.
type bfsWalker[N comparable, L any] struct {
	graph Graph[N, L]
	v     Visitor[N, L]
	opts  Options
	ctx   context.Context
	queue []queueItem[N]
	res   *Result[N, L]
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, ErrOptionViolation, or the context error on cancellation.
// A callback returning Abort ends the search early with res.Aborted set and a nil error.
func BFS[N comparable, L any](g Graph[N, L], start N, v Visitor[N, L], opts ...Option) (*Result[N, L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	w := &bfsWalker[N, L]{
		graph: g,
		v:     v,
		opts:  o,
		ctx:   o.Ctx,
		res:   newResult[N, L](),
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks n discovered at depth d and appends it to the queue.
func (w *bfsWalker[N, L]) enqueue(n N, d int) {
	w.res.Depth[n] = d
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, aborted, or cancelled.
func (w *bfsWalker[N, L]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		w.res.PreOrder = w.res.Order
		act := Explore
		if w.v.OnVisit != nil {
			act = w.v.OnVisit(item.node, item.depth)
		}
		switch act {
		case Abort:
			w.abort(item.node)

			return nil
		case Ignore:
			continue
		}

		stop, err := w.expand(item)
		if err != nil || stop {
			return err
		}
	}

	return nil
}

// expand follows the out-edges of item, honoring OnEdge and MaxDepth.
func (w *bfsWalker[N, L]) expand(item queueItem[N]) (bool, error) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return false, nil
	}
	for _, e := range w.graph.OutEdges(item.node) {
		select {
		case <-w.ctx.Done():
			return true, w.ctx.Err()
		default:
		}

		if w.v.OnEdge != nil {
			switch w.v.OnEdge(e, item.depth) {
			case Abort:
				w.abort(item.node)

				return true, nil
			case Ignore:
				continue
			}
		}
		if _, seen := w.res.Depth[e.To]; seen {
			continue
		}
		w.res.Parent[e.To] = e
		w.enqueue(e.To, nextDepth)
	}

	return false, nil
}

func (w *bfsWalker[N, L]) abort(at N) {
	w.res.Aborted = true
	w.res.Last = at
}
