package shortestpath

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgraph/core"
)

// KStopCheapest returns the cheapest cost from src to dst using at most k
// intermediate vertices (at most k+1 edges).
//
// It runs exactly k+1 relaxation rounds. Each round starts from a copy of
// the previous round's table and reads prefix costs only from that frozen
// snapshot, so a single round can extend a path by one edge and no more.
// Relaxing in place would let one round chain several hops and break the bound.
//
// ok is false when dst is unreachable within the budget (or src/dst is absent).
// Ctx, Cost and SourceCost apply; MaxDistance and Target are rejected.
//
// Errors: ErrGraphNil, ErrNegativeHops, ErrOptionNotSupported, or the
// context error.
func KStopCheapest[N comparable](g core.Adjacency[N], src, dst N, k int, opts ...Option[N]) (float64, bool, error) {
	if g == nil {
		return 0, false, ErrGraphNil
	}
	if k < 0 {
		return 0, false, fmt.Errorf("%w: %d", ErrNegativeHops, k)
	}
	o, err := buildRoundOptions(opts)
	if err != nil {
		return 0, false, err
	}
	if !g.HasVertex(src) {
		return math.Inf(1), false, nil
	}

	verts := g.Vertices()
	prices := NewDistanceTable[N]()
	prices.Set(src, o.SourceCost)
	for round := 0; round <= k; round++ {
		select {
		case <-o.Ctx.Done():
			return 0, false, o.Ctx.Err()
		default:
		}

		next := prices.Clone()
		for _, u := range verts {
			prefix := prices.Get(u)
			if math.IsInf(prefix, 1) {
				continue
			}
			for _, e := range g.Neighbors(u) {
				next.RelaxFrom(prefix, e.To, e.Weight, o.Cost)
			}
		}
		prices = next
	}

	d := prices.Get(dst)

	return d, !math.IsInf(d, 1), nil
}

// BellmanFord computes single-source shortest paths allowing negative
// weights. It relaxes every arc in place for up to V-1 rounds, stopping
// early once a round changes nothing, then runs one more round: any
// further improvement proves a reachable negative cycle.
//
// On an undirected graph a negative edge is itself a negative cycle.
//
// Ctx, Cost and SourceCost apply; MaxDistance and Target are rejected.
//
// Errors: ErrGraphNil, ErrNegativeCycle, ErrOptionNotSupported, or the
// context error.
// Complexity: O(V·E) time, O(V) memory.
func BellmanFord[N comparable](g core.Adjacency[N], src N, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildRoundOptions(opts)
	if err != nil {
		return nil, err
	}

	verts := g.Vertices()
	res := &Result[N]{
		Source: src,
		Dist:   make(map[N]float64, len(verts)),
		Prev:   make(map[N]N),
	}
	for _, v := range verts {
		res.Dist[v] = math.Inf(1)
	}
	if !g.HasVertex(src) {
		return res, nil
	}

	table := NewDistanceTable[N]()
	table.Set(src, o.SourceCost)
	pass := func() bool {
		changed := false
		for _, u := range verts {
			for _, e := range g.Neighbors(u) {
				if table.Relax(u, e.To, e.Weight, o.Cost) {
					res.Prev[e.To] = u
					changed = true
				}
			}
		}

		return changed
	}

	for round := 1; round < len(verts); round++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}
		if !pass() {
			break
		}
	}
	if pass() {
		return nil, ErrNegativeCycle
	}

	for _, v := range verts {
		res.Dist[v] = table.Get(v)
	}

	return res, nil
}
