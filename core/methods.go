// File: methods.go
// Role: Vertex/edge lifecycle and read-only queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//   - Neighbors() returns arcs in insertion order.
//
// Concurrency:
//   - All storage is guarded by mu; queries take the read lock and return copies.
package core

import (
	"fmt"
	"math"
)

// AddVertex inserts id if missing. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddVertex(id N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked registers id; the caller holds the write lock.
func (g *Graph[N]) addVertexLocked(id N) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.adjacency[id] = nil
}

// AddEdge connects from and to, adding missing endpoints.
//
// Undirected edges are inserted as a pair of arcs (from→to and to→from);
// directed edges as a single arc. On an unweighted graph weight must be 0
// and DefaultWeight is stored. Negative weights are accepted; choosing an
// algorithm that tolerates them is the caller's responsibility.
//
// Errors:
//   - ErrBadWeight:           weight is NaN/±Inf, or non-zero on an unweighted graph.
//   - ErrLoopNotAllowed:      from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: an arc from→to already exists without WithMultiEdges.
//
// Complexity: O(1) amortized, O(deg(from)) when multi-edges are disabled.
func (g *Graph[N]) AddEdge(from, to N, weight float64, opts ...EdgeOption) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrBadWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.cfg.weighted {
		if weight != 0 {
			return fmt.Errorf("%w: %v on unweighted graph", ErrBadWeight, weight)
		}
		weight = DefaultWeight
	}
	if from == to && !g.cfg.allowLoops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}

	ec := edgeConfig{directed: g.cfg.directed}
	for _, opt := range opts {
		opt(&ec)
	}

	if !g.cfg.allowMulti && g.hasArcLocked(from, to) {
		return fmt.Errorf("%w: %v→%v", ErrMultiEdgeNotAllowed, from, to)
	}

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	e := Edge[N]{From: from, To: to, Weight: weight, Directed: ec.directed}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	// Mirror arc for undirected edges; a loop is stored once.
	if !ec.directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], Edge[N]{From: to, To: from, Weight: weight})
	}

	return nil
}

// hasArcLocked reports whether an arc from→to exists; the caller holds a lock.
func (g *Graph[N]) hasArcLocked(from, to N) bool {
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// HasVertex reports whether id exists. Complexity: O(1).
func (g *Graph[N]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// HasEdge reports whether an arc from→to exists (for undirected edges, in
// either direction). Complexity: O(deg(from)).
func (g *Graph[N]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasArcLocked(from, to)
}

// Vertices returns a copy of all vertex IDs in insertion order. Complexity: O(V).
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns a copy of the outgoing arcs of id, in insertion order.
// An absent vertex yields nil. Complexity: O(deg(id)).
func (g *Graph[N]) Neighbors(id N) []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	arcs, ok := g.adjacency[id]
	if !ok || len(arcs) == 0 {
		return nil
	}
	out := make([]Edge[N], len(arcs))
	copy(out, arcs)

	return out
}

// Edges returns the logical edge catalog (one entry per successful AddEdge),
// in insertion order. Complexity: O(E).
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N], len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns |V|. Complexity: O(1).
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of logical edges. Complexity: O(1).
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Directed reports the default directedness of new edges.
func (g *Graph[N]) Directed() bool { return g.cfg.directed }

// Weighted reports whether caller-supplied weights are accepted.
func (g *Graph[N]) Weighted() bool { return g.cfg.weighted }

// HasDirectedEdges reports whether any stored edge is one-way. Complexity: O(E).
func (g *Graph[N]) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}

	return false
}
