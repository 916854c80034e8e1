package shortestpath

import (
	"math"

	"github.com/katalvlaran/lvlgraph/core"
)

// NetworkDelay returns how long a signal sent from node k takes to reach
// all n nodes (labelled 1..n) over directed, timed links [u, v, w].
// It returns -1 if some node never receives the signal.
func NetworkDelay(times [][3]int, n, k int) int {
	g := core.NewGraph[int](core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	for v := 1; v <= n; v++ {
		g.AddVertex(v)
	}
	for _, t := range times {
		if err := g.AddEdge(t[0], t[1], float64(t[2])); err != nil {
			return -1
		}
	}

	res, err := Dijkstra[int](g, k)
	if err != nil {
		return -1
	}
	longest := 0.0
	for v := 1; v <= n; v++ {
		d := res.DistanceTo(v)
		if math.IsInf(d, 1) {
			return -1
		}
		longest = math.Max(longest, d)
	}

	return int(longest)
}

// CheapestFlight returns the cheapest price from src to dst over n cities
// (labelled 0..n-1) with at most k stops, or -1 if there is no such route.
// Each flight is [from, to, price].
func CheapestFlight(n int, flights [][3]int, src, dst, k int) int {
	g := core.NewGraph[int](core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	for _, f := range flights {
		if err := g.AddEdge(f[0], f[1], float64(f[2])); err != nil {
			return -1
		}
	}

	cost, ok, err := KStopCheapest[int](g, src, dst, k)
	if err != nil || !ok {
		return -1
	}

	return int(cost)
}
