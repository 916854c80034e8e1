// Package shortestpath implements single-source shortest paths over
// core.Adjacency.
//
// Dijkstra processes vertices in order of increasing distance using a
// min-priority frontier with lazy decrease-key: every successful relaxation
// pushes a new entry, and a popped entry whose priority exceeds the table's
// current distance is stale and skipped.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E) (frontier may hold one entry per relaxation).
//
// Dijkstra does not check edge weights. With negative weights its output is
// undefined; use BellmanFord instead.
package shortestpath

import (
	"context"
	"math"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
)

// runner holds the mutable state of one Dijkstra run.
type runner[N comparable] struct {
	graph   core.Adjacency[N]
	opts    Options[N]
	ctx     context.Context
	table   *DistanceTable[N]
	settled map[N]bool
	pq      *frontier.Frontier[N]
	res     *Result[N]
}

// Dijkstra computes the cheapest path cost from src to every vertex of g.
//
// Every vertex of g gets a Dist entry. If src is not in g, every entry is
// +Inf and the error is nil: nothing is reachable.
//
// Errors: ErrGraphNil, ErrBadMaxDistance, or the context error.
func Dijkstra[N comparable](g core.Adjacency[N], src N, opts ...Option[N]) (*Result[N], error) {
	// 1) Validate input and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// 2) Every vertex starts at +Inf.
	verts := g.Vertices()
	r := &runner[N]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		table:   NewDistanceTable[N](),
		settled: make(map[N]bool, len(verts)),
		pq:      frontier.New[N](len(verts)),
		res: &Result[N]{
			Source: src,
			Dist:   make(map[N]float64, len(verts)),
			Prev:   make(map[N]N),
		},
	}
	for _, v := range verts {
		r.res.Dist[v] = math.Inf(1)
	}
	if !g.HasVertex(src) {
		return r.res, nil
	}

	// 3) Seed the source and run.
	r.table.Set(src, o.SourceCost)
	r.pq.Push(o.SourceCost, src)
	if err = r.process(); err != nil {
		return r.res, err
	}

	return r.res, nil
}

// process pops until the frontier is empty, the cap is exceeded,
// or the target is settled.
func (r *runner[N]) process() error {
	defer r.publish()

	for r.pq.Len() > 0 {
		// 1) Cancellation check per pop.
		select {
		case <-r.ctx.Done():
			return r.ctx.Err()
		default:
		}

		// 2) Pop; drop stale entries.
		item, _ := r.pq.Pop()
		u := item.Node
		if r.settled[u] || item.Priority > r.table.Get(u) {
			continue
		}
		// 3) Nothing cheaper remains below the cap.
		if item.Priority > r.opts.MaxDistance {
			break
		}
		r.settled[u] = true
		if r.opts.Target != nil && u == *r.opts.Target {
			break
		}

		// 4) Relax all outgoing arcs.
		r.relax(u)
	}

	return nil
}

// relax offers every arc u→v and pushes improved vertices.
func (r *runner[N]) relax(u N) {
	for _, e := range r.graph.Neighbors(u) {
		if r.settled[e.To] {
			continue
		}
		if r.table.Relax(u, e.To, e.Weight, r.opts.Cost) {
			r.res.Prev[e.To] = u
			r.pq.Push(r.table.Get(e.To), e.To)
		}
	}
}

// publish copies settled distances into the result. Vertices that were
// only tentatively reached (cap or target stop) stay at +Inf.
func (r *runner[N]) publish() {
	for v := range r.settled {
		r.res.Dist[v] = r.table.Get(v)
	}
	for v := range r.res.Prev {
		if !r.settled[v] {
			delete(r.res.Prev, v)
		}
	}
}
