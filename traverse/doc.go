// Package traverse provides breadth-first and depth-first traversal over any
// graph that can enumerate the labeled out-edges of a node.
//
// What
//
//   - BFS(g, start, visitor, opts...) explores nodes in non-decreasing distance
//     from start and records visit order, depths and the discovering edge of
//     every node, so PathTo/LabelsTo can rebuild a shortest path.
//   - DFS(g, start, visitor, opts...) explores depth-first and records
//     pre-order and post-order; back edges (edges into a node on the current
//     stack) are reported, which is how callers detect cycles.
//   - A single Visitor carries the callbacks. OnVisit and OnEdge return a
//     tagged Action:
//   - Explore: continue normally.
//   - Ignore:  for OnVisit, do not expand the node; for OnEdge, do not follow the edge.
//   - Abort:   stop the whole traversal; the result is returned with Aborted set.
//
// Why
//
//   - The automata packages need several walks over the same structures
//     (reachability, invariant checks, product search, DOT export). One generic
//     walker with edge-level control replaces a family of visitor interfaces.
//
// Determinism
//
//	Edges are followed in the order Graph.OutEdges returns them. All graphs in
//	this module return edges by ascending symbol index, so every traversal is
//	reproducible.
//
// Complexity (V = reachable nodes, E = their out-edges)
//
//   - Time:   O(V + E) plus the cost of the callbacks.
//   - Memory: O(V) for the queue/stack, visited set, depth and parent maps.
//
// Options
//
//   - WithContext(ctx):  cancellation, checked once per node and per edge.
//   - WithMaxDepth(d):   d > 0 limits the depth of followed edges; 0 means no
//     limit; d < 0 is reported as ErrOptionViolation.
//
// Errors
//
//   - ErrGraphNil          if the graph is nil.
//   - ErrOptionViolation   for invalid options.
//   - ErrNotReached        from PathTo/LabelsTo for nodes not discovered.
//   - ctx.Err()            on cancellation.
package traverse
