// Package dfs provides topological sorting of directed graphs.
//
// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// directedness is implemented by core.Graph; other Adjacency values skip the check.
type directedness interface {
	Directed() bool
}

// frame is one vertex on the explicit DFS stack with its arc cursor.
type frame[N comparable] struct {
	id   N
	arcs []core.Edge[N]
	next int
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	graph core.Adjacency[N]
	opts  topoOptions
	state map[N]int // visitation state: White (absent), Gray, Black
	stack []frame[N]
	order []N // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
//
// Roots are taken in Vertices order. A vertex is appended after all its
// descendants finish; the result is the reverse of that post-order. Only
// arcs marked Directed are followed. The first back-edge (an arc into a Gray
// vertex) aborts the sort with ErrCycleDetected, wrapped with the cycle.
//
// Errors: ErrGraphNil, ErrNotDirected (for a *core.Graph built undirected),
// ErrCycleDetected, or the context error.
func TopologicalSort[N comparable](g core.Adjacency[N], options ...TopoOption) ([]N, error) {
	// 1. Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if d, ok := g.(directedness); ok && !d.Directed() {
		return nil, ErrNotDirected
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter[N]{
		graph: g,
		opts:  opts,
		state: make(map[N]int, len(verts)),
		order: make([]N, 0, len(verts)),
	}
	// 4. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	reverse(sorter.order)

	return sorter.order, nil
}

// push marks id Gray and opens a frame for it.
func (t *topoSorter[N]) push(id N) {
	t.state[id] = Gray
	t.stack = append(t.stack, frame[N]{id: id, arcs: t.graph.Neighbors(id)})
}

// visit runs the iterative three-colour DFS rooted at root.
func (t *topoSorter[N]) visit(root N) error {
	t.push(root)
	for len(t.stack) > 0 {
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := &t.stack[len(t.stack)-1]
		if top.next == len(top.arcs) {
			// All descendants done: Black, record post-order.
			t.state[top.id] = Black
			t.order = append(t.order, top.id)
			t.stack = t.stack[:len(t.stack)-1]
			continue
		}

		e := top.arcs[top.next]
		top.next++
		if !e.Directed {
			continue
		}
		switch t.state[e.To] {
		case White:
			t.push(e.To)
		case Gray:
			return fmt.Errorf("%w: %v", ErrCycleDetected, t.cycleTo(e.To))
		}
	}

	return nil
}

// cycleTo extracts the Gray path from v back to v for error reporting.
func (t *topoSorter[N]) cycleTo(v N) []N {
	path := make([]N, 0, len(t.stack))
	for _, f := range t.stack {
		path = append(path, f.id)
	}
	i := indexOf(path, v)
	if i < 0 {
		return []N{v}
	}

	return append(path[i:], v)
}
