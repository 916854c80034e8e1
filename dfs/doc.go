// Package dfs implements depth-first search traversal, connected components,
// and topological sort over any core.Adjacency, all with an explicit stack.
//
// What:
//
//   - DFS: pre-order traversal from one start vertex. Neighbors are pushed in
//     Neighbors order, so siblings come off the stack in reverse. Supports:
//   - Pre-order hook (OnVisit), with error abort
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Components / IsConnected: DFS forest across all vertices.
//   - TopologicalSort: three-colour (White, Gray, Black) DFS. A vertex is
//     recorded once all its descendants finish; the order is the reverse of
//     that post-order. The first arc into a Gray vertex aborts with
//     ErrCycleDetected.
//   - DetectCycles: three-colour DFS that collects every cycle closed by a
//     back-edge, honoring per-arc directedness, in canonical rotation.
//   - TopoSortN, CourseOrder, CanFinish: integer-node wrappers for
//     prerequisite problems.
//
// Why:
//   - No recursion: deep chains (10⁵ vertices and more) cannot exhaust the goroutine stack.
//   - Two colours cannot tell a back-edge from a cross-edge; the Gray marker can.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for DFS (lazy stack), O(V) for TopologicalSort.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrCycleDetected   from TopologicalSort and its wrappers.
//   - ErrNotDirected     if TopologicalSort is given an undirected *core.Graph.
//   - ErrNodeOutOfRange  from TopoSortN for an edge naming a node ≥ n.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit, wrapped.
//
// An absent start vertex is not an error: DFS returns an empty Result.
package dfs
