// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/unionfind"
)

// Kruskal computes a minimum spanning forest of an undirected graph.
//
// Steps:
//  1. Validate: graph != nil and undirected.
//  2. Collect every arc in Vertices/Neighbors order, skipping self-loops.
//     Each undirected edge appears twice; the second copy is rejected by Union.
//  3. Stable-sort by ascending Weight so ties break by insertion order.
//  4. Accept each arc whose endpoints lie in different sets; stop at |V|-1 edges.
//
// A disconnected graph yields a forest and no error; Tree.Spans tells the
// caller whether it is a single tree.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal[N comparable](graph core.Adjacency[N], opts ...Option[N]) (*Tree[N], error) {
	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, err
	}
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	// 2. Collect arcs.
	vertices := graph.Vertices()
	var edges []core.Edge[N]
	for _, v := range vertices {
		for _, e := range graph.Neighbors(v) {
			if e.From != e.To {
				edges = append(edges, e)
			}
		}
	}

	// 3. Sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find over the sorted arcs.
	dsu := unionfind.New(vertices...)
	tree := &Tree[N]{Vertices: vertices}
	for _, e := range edges {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if len(tree.Edges) == len(vertices)-1 {
			break
		}
		if dsu.Union(e.From, e.To) {
			tree.Edges = append(tree.Edges, e)
			tree.Cost += e.Weight
		}
	}

	return tree, nil
}
