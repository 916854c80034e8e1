package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/shortestpath"
)

// virtualSource is never a packed cell index.
const virtualSource = -1

// seeded adds virtualSource to an Adjacency, joined by zero-weight arcs
// to every seed, so a single-source search runs from all seeds at once.
type seeded struct {
	core.Adjacency[int]
	seeds []int
}

func (s seeded) HasVertex(id int) bool {
	return id == virtualSource || s.Adjacency.HasVertex(id)
}

func (s seeded) Vertices() []int {
	return append([]int{virtualSource}, s.Adjacency.Vertices()...)
}

func (s seeded) Neighbors(id int) []core.Edge[int] {
	if id != virtualSource {
		return s.Adjacency.Neighbors(id)
	}
	out := make([]core.Edge[int], len(s.seeds))
	for i, v := range s.seeds {
		out[i] = core.Edge[int]{From: virtualSource, To: v, Weight: 0, Directed: true}
	}

	return out
}

// ExpandIsland finds a minimum-conversion path of non-vertex ("water") cells
// connecting any cell of component srcComp to any cell of component dstComp,
// as numbered by ConnectedComponents. Each water cell on the path costs 1.
// Returns the cell indices of the path, both end cells included, and the
// number of conversions.
//
// Behavior:
//  1. Validate component indices.
//  2. Dijkstra over every cell from all srcComp cells at once:
//     stepping onto a vertex cell costs 0, onto a water cell costs 1.
//  3. Pick the cheapest dstComp cell, lowest index on ties.
//  4. Rebuild the path and drop the virtual source.
//
// Complexity: O(W·H·log(W·H)), Memory: O(W·H).
func (g *Grid) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := g.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}

	// Every cell is walkable; the price depends on whether it is land.
	all := &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  g.cells,
		opts: GridOptions{
			Conn: g.opts.Conn,
			Weight: func(_, to int) float64 {
				if g.accepts(to) {
					return 0
				}
				return 1
			},
		},
		offsets: g.offsets,
	}
	res, err := shortestpath.Dijkstra[int](seeded{Adjacency: all, seeds: comps[srcComp]}, virtualSource)
	if err != nil {
		return nil, 0, err
	}

	target, best := -1, math.Inf(1)
	for _, v := range comps[dstComp] {
		if d := res.DistanceTo(v); d < best {
			target, best = v, d
		}
	}
	if target < 0 {
		return nil, 0, ErrNoPath
	}
	full, err := res.PathTo(target)
	if err != nil {
		return nil, 0, ErrNoPath
	}

	return full[1:], int(best), nil
}
