// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows one tree from a start vertex using a min-heap of candidate vertices.
package prim_kruskal

import (
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// Prim grows a minimum spanning tree from start.
//
// Steps:
//  1. Validate: graph != nil and undirected.
//  2. Seed the frontier with (0, start).
//  3. Pop the cheapest entry. If its vertex is already in the tree the entry
//     is stale: skip it. Otherwise mark it, add the popped cost to the total,
//     record the attaching edge, and push every arc to an unvisited neighbor.
//  4. Stop when the frontier is empty.
//
// On a disconnected graph the tree covers only start's component and no
// error is returned; use Tree.Spans to check coverage. An absent start
// yields an empty tree.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or directed.
//   - the context error on cancellation.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim[N comparable](graph core.Adjacency[N], start N, opts ...Option[N]) (*Tree[N], error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, err
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	tree := &Tree[N]{}
	if !graph.HasVertex(start) {
		return tree, nil
	}

	// 2. Seed. The entry's Node is the arc that would attach its To vertex;
	//    the seed is a zero-cost arc from start to itself.
	visited := make(map[N]bool)
	pq := frontier.New[core.Edge[N]](0)
	pq.Push(0, core.Edge[N]{From: start, To: start})

	// 3. Main loop.
	for pq.Len() > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item, _ := pq.Pop()
		v := item.Node.To
		if visited[v] {
			continue
		}
		visited[v] = true
		tree.Cost += item.Priority
		tree.Vertices = append(tree.Vertices, v)
		if len(tree.Vertices) > 1 {
			tree.Edges = append(tree.Edges, item.Node)
		}

		for _, e := range graph.Neighbors(v) {
			if !visited[e.To] {
				pq.Push(e.Weight, e)
			}
		}
	}

	return tree, nil
}
