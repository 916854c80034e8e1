// Package bfs provides breadth-first search over any core.Adjacency,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from the start.
//   - Returns a Result containing:
//   - Order: visit sequence, each reachable vertex exactly once
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - MultiSource seeds several starts at depth 0 (rotting oranges, walls and gates).
//   - Hooks: OnEnqueue (vertex queued) and OnVisit (vertex dequeued; may abort).
//   - Filters individual arcs via WithFilterNeighbor.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - Reachability, connected components, and level layering.
//   - The same walker serves explicit graphs and gridgraph.Grid alike.
//
// Determinism
//
//	Vertices are discovered in the order Neighbors returns them, and core.Graph
//	returns arcs in insertion order, so the visit sequence is reproducible.
//
// Visited-before-enqueue
//
//	A vertex is marked visited when it is queued, not when it is dequeued, so
//	the queue never holds two entries for one vertex.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS[string](g, "start",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           on cancellation.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// An absent start vertex is not an error: the result is simply empty.
package bfs
