// File: view.go
// Role: Read-only views and deep copies.
// Concurrency:
//   - Read locks on source; a Clone is a fresh, independent graph.
package core

// View returns a read-only Adjacency over g. The view shares storage with g
// and exposes no mutating methods, so several algorithms may run over views
// of one graph concurrently while nobody mutates it. Directed and
// HasDirectedEdges are forwarded so algorithms that check directedness see
// the same answer as on g.
func (g *Graph[N]) View() Adjacency[N] {
	return readOnly[N]{g: g}
}

// readOnly hides the mutators of *Graph behind the Adjacency interface.
type readOnly[N comparable] struct {
	g *Graph[N]
}

func (r readOnly[N]) HasVertex(id N) bool      { return r.g.HasVertex(id) }
func (r readOnly[N]) Vertices() []N            { return r.g.Vertices() }
func (r readOnly[N]) Neighbors(id N) []Edge[N] { return r.g.Neighbors(id) }
func (r readOnly[N]) Directed() bool           { return r.g.Directed() }
func (r readOnly[N]) HasDirectedEdges() bool   { return r.g.HasDirectedEdges() }

// Clone returns a deep copy of g: same flags, vertices, edges and arc order.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[N]{
		cfg:       g.cfg,
		order:     make([]N, len(g.order)),
		index:     make(map[N]int, len(g.index)),
		adjacency: make(map[N][]Edge[N], len(g.adjacency)),
		edges:     make([]Edge[N], len(g.edges)),
	}
	copy(out.order, g.order)
	copy(out.edges, g.edges)
	for id, i := range g.index {
		out.index[id] = i
	}
	for id, arcs := range g.adjacency {
		if arcs == nil {
			out.adjacency[id] = nil
			continue
		}
		cp := make([]Edge[N], len(arcs))
		copy(cp, arcs)
		out.adjacency[id] = cp
	}

	return out
}
