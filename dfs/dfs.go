// Package dfs implements depth-first search, connected components and
// topological sorting over core.Adjacency with an explicit stack.
//
// Key features:
//   - DFS(g, start, opts...): pre-order traversal, never recursive
//   - Components/IsConnected: DFS forest over all vertices
//   - TopologicalSort: three-colour DFS with back-edge detection
//   - Cancellation via context.Context at every stack pop
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) for the stack (a vertex may be pushed once per incoming arc).
package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// stackItem is one pending visit: the vertex, its would-be parent and depth.
type stackItem[N comparable] struct {
	id     N
	parent N
	depth  int
	root   bool
}

// walker encapsulates state during DFS.
type walker[N comparable] struct {
	graph   core.Adjacency[N]
	opts    Options[N]
	stack   []stackItem[N]
	visited map[N]bool
	res     *Result[N]
}

// DFS performs an iterative depth-first search from start.
//
// Vertices are reported in pre-order. Neighbors are pushed in the order
// Neighbors returns them, so siblings are visited in reverse of that order.
// A start vertex absent from g yields an empty Result and a nil error.
// Returns ErrGraphNil, the context error, or a wrapped OnVisit error.
func DFS[N comparable](g core.Adjacency[N], start N, opts ...Option[N]) (*Result[N], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize walker
	w := newWalker(g, o)
	if !g.HasVertex(start) {
		return w.res, nil
	}

	// 4. Traverse the single tree
	return w.res, w.run(start)
}

func newWalker[N comparable](g core.Adjacency[N], o Options[N]) *walker[N] {
	return &walker[N]{
		graph:   g,
		opts:    o,
		visited: make(map[N]bool),
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}
}

// run drains the stack seeded with root. Visited state persists across
// calls so one walker can cover a forest.
func (w *walker[N]) run(root N) error {
	w.stack = append(w.stack[:0], stackItem[N]{id: root, root: true})
	for len(w.stack) > 0 {
		// 1. Cancellation check per pop
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Pop; skip entries for vertices reached through another path
		item := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited[item.id] {
			continue
		}

		// 3. Visit (pre-order)
		w.visited[item.id] = true
		w.res.Order = append(w.res.Order, item.id)
		w.res.Depth[item.id] = item.depth
		if !item.root {
			w.res.Parent[item.id] = item.parent
		}
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(item.id, item.depth); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %v: %w", item.id, err)
			}
		}

		// 4. Depth limit: do not expand beyond MaxDepth
		if w.opts.MaxDepth >= 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		// 5. Push unvisited neighbors
		for _, e := range w.graph.Neighbors(item.id) {
			if w.visited[e.To] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(item.id, e.To) {
				continue
			}
			w.stack = append(w.stack, stackItem[N]{id: e.To, parent: item.id, depth: item.depth + 1})
		}
	}

	return nil
}
