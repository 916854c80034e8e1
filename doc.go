// Package lvlgraph is a generic, in-memory graph algorithms library: one
// graph type and one adjacency contract shared by every algorithm, so
// traversal, shortest paths, spanning trees and grid problems never carry
// their own copies of BFS or Dijkstra.
//
// What is inside?
//
//	core/         - Graph[N], the thread-safe adjacency store, and Adjacency[N]
//	bfs/          - BFS and multi-source BFS, enqueue-time visited marking
//	dfs/          - explicit-stack DFS, components, three-colour topological sort
//	unionfind/    - DisjointSet[N] with path compression and union by size
//	frontier/     - min-priority frontier of {priority, node} entries
//	shortestpath/ - Dijkstra, hop-bounded Bellman-Ford, full Bellman-Ford
//	prim_kruskal/ - Prim and Kruskal minimum spanning trees
//	gridgraph/    - 2D grids as implicit graphs, plus the classic grid problems
//
// and a demo harness on top, outside the library API:
//
//	internal/     - config (koanf), logging (logrus), metrics (prometheus), runner
//	cmd/graphrun  - CLI that runs YAML job files and prints JSON lines
//
// Node identifiers are any comparable type: ints for course or flight
// networks, strings for named vertices, packed row-major cell indices for
// grids.
//
// Quick example:
//
//	g := core.NewGraph[string](core.WithWeighted())
//	_ = g.AddEdge("A", "B", 4)
//	_ = g.AddEdge("B", "C", 1)
//	_ = g.AddEdge("A", "C", 7)
//	res, _ := shortestpath.Dijkstra[string](g, "A")
//	res.DistanceTo("C") // 5
//
// Every algorithm builds its own visited sets, distance tables and
// disjoint sets per call and never mutates the graph, so concurrent
// calls over one graph, or over Graph.View, are safe.
package lvlgraph
