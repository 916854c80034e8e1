// Package prim_kruskal computes minimum spanning trees over any undirected
// core.Adjacency with Prim's and Kruskal's algorithms, plus the implicit
// "connect all points" variants.
//
// What & Why
//
//   - An MST of a connected, weighted, undirected graph is a subset of edges
//     that connects every vertex with the least total weight.
//   - Uses: network design, clustering (cut the heaviest tree edges), and as
//     a subroutine in approximation algorithms.
//
// Algorithms Provided
//
//   - Prim(g, start, opts...) (*Tree[N], error)
//
//   - Strategy: frontier seeded with (0, start). Each pop of an unvisited
//     vertex adds its popped cost to the total and pushes arcs to unvisited
//     neighbors; stale pops are skipped.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Kruskal(g, opts...) (*Tree[N], error)
//
//   - Strategy: stable-sort all arcs by weight, then merge with a
//     unionfind.DisjointSet, skipping arcs whose endpoints already share a root.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - KruskalOnPoints(points) / PrimOnPoints(points) int
//
//   - Edges are implicit Manhattan distances between every pair of points.
//     KruskalOnPoints pops a global O(n²) min-heap until n−1 unions succeed;
//     PrimOnPoints grows one tree over an implicit complete graph.
//
// Disconnected graphs
//
//	Neither algorithm fails on a disconnected graph. Prim returns the tree of
//	start's component, Kruskal a spanning forest. Tree.Spans(n) reports
//	whether the result covers all n vertices.
//
// Error Conditions
//
//   - ErrInvalidGraph  – graph is nil, or a *core.Graph that is directed or
//     has directed edges.
//   - ErrUnknownMethod – Compute was asked for a method other than prim/kruskal.
//   - the context error on cancellation.
//
// Determinism
//
//	Vertices and arcs come in insertion order, Kruskal sorts stably, and the
//	frontier breaks ties by push order, so the chosen edges are repeatable.
//	On a connected graph the total cost does not depend on Prim's start vertex.
package prim_kruskal
