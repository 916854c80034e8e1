// Package core provides the single, thread-safe in-memory graph every
// algorithm in lvlgraph runs over.
//
// A Graph[N] is generic over its node identifier: ints for course or flight
// networks, strings for named vertices, packed row-major cell indices for
// grids. One type covers the behaviors the algorithm packages need:
//
//   - Directed vs. undirected edges (WithDirected, per-edge WithEdgeDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//
// Why use core.Graph?
//
//   - Deterministic iteration: Vertices() and Neighbors() follow insertion order,
//     so BFS/DFS orders and topological orders are reproducible.
//   - Undirected edges are stored as two arcs, so traversals never special-case direction.
//   - Algorithms consume the narrow Adjacency[N] interface, so implicit graphs
//     (gridgraph.Grid) and read-only views (Graph.View) plug in unchanged.
//
// Core Methods:
//
//	AddVertex(id N)                                   // O(1)
//	AddEdge(from, to N, w float64, opts...) error     // O(1)†
//	HasVertex(id N) bool                              // O(1)
//	HasEdge(from, to N) bool                          // O(deg)
//	Vertices() []N                                    // O(V), insertion order
//	Neighbors(id N) []Edge[N]                         // O(deg), nil for absent id
//	Edges() []Edge[N]                                 // O(E), one entry per logical edge
//	VertexCount(), EdgeCount() int                    // O(1)
//	Clone() *Graph[N]                                 // O(V+E)
//	View() Adjacency[N]                               // O(1), read-only
//
//	† O(deg(from)) when multi-edges are disabled (duplicate check).
//
// Errors:
//
//	ErrBadWeight           – NaN/Inf weight, or non-zero weight on an unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// Negative weights are stored as given. Picking an algorithm that tolerates
// them (shortestpath.BellmanFord rather than Dijkstra) is the caller's job.
package core
