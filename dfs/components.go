package dfs

import "github.com/katalvlaran/lvlgraph/core"

// Components partitions the vertices of g into DFS trees, started from each
// unvisited vertex in Vertices order. Each component lists its vertices in
// pre-order. On an undirected graph these are the connected components; on a
// directed graph each tree holds what its root reaches that no earlier tree did.
//
// Complexity: O(V + E).
func Components[N comparable](g core.Adjacency[N]) [][]N {
	if g == nil {
		return nil
	}

	w := newWalker(g, DefaultOptions[N]())
	var comps [][]N
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		before := len(w.res.Order)
		// background context and no hooks: run cannot fail
		_ = w.run(v)
		comp := make([]N, len(w.res.Order)-before)
		copy(comp, w.res.Order[before:])
		comps = append(comps, comp)
	}

	return comps
}

// IsConnected reports whether one DFS from the first vertex reaches every
// vertex. An empty graph counts as connected; a nil graph does not.
func IsConnected[N comparable](g core.Adjacency[N]) bool {
	if g == nil {
		return false
	}
	verts := g.Vertices()
	if len(verts) == 0 {
		return true
	}
	res, err := DFS(g, verts[0])

	return err == nil && len(res.Order) == len(verts)
}
