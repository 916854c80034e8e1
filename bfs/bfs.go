// Package bfs provides breadth-first search over a core.Adjacency,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from one or more start
// vertices, with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph   core.Adjacency[N]
	opts    Options[N]
	ctx     context.Context
	queue   []queueItem[N]
	head    int
	visited map[N]bool
	res     *Result[N]
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
//
// A start vertex absent from g yields an empty Result and a nil error:
// nothing is reachable from it.
// Returns ErrGraphNil, ErrOptionViolation for bad options, the context
// error on cancellation, or any wrapped OnVisit error.
func BFS[N comparable](g core.Adjacency[N], start N, opts ...Option[N]) (*Result[N], error) {
	return MultiSource(g, []N{start}, opts...)
}

// MultiSource runs one BFS seeded with every start at depth 0. Absent or
// repeated starts are skipped. Depth[v] is the hop distance from v to its
// nearest start.
func MultiSource[N comparable](g core.Adjacency[N], starts []N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[N]bool),
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}
	for _, s := range starts {
		if g.HasVertex(s) && !w.visited[s] {
			w.enqueue(s, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, and adds it to the queue.
// Marking happens here, not at dequeue, so no vertex is queued twice.
func (w *walker[N]) enqueue(id N, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[N]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Neighbors(item.id) {
		if w.visited[e.To] || !w.opts.FilterNeighbor(item.id, e.To) {
			continue
		}
		w.res.Parent[e.To] = item.id
		w.enqueue(e.To, nextDepth)
	}
}
