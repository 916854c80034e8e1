package runner

import (
	"context"
	"math"

	"github.com/katalvlaran/lvlgraph/bfs"
	"github.com/katalvlaran/lvlgraph/dfs"
	"github.com/katalvlaran/lvlgraph/gridgraph"
	"github.com/katalvlaran/lvlgraph/prim_kruskal"
	"github.com/katalvlaran/lvlgraph/shortestpath"
	"github.com/katalvlaran/lvlgraph/unionfind"
)

// input names the Job fields a kind reads.
type input int

const (
	inputEdges input = iota
	inputTimes // [from, to, time] triples, always weighted
	inputGrid
	inputPoints
)

type handler struct {
	input input
	about string
	run   func(ctx context.Context, j Job) (any, error)
}

var handlers = map[string]handler{
	"bfs":              {inputEdges, "breadth-first visit order from src", runBFS},
	"dfs":              {inputEdges, "depth-first pre-order from src", runDFS},
	"components":       {inputEdges, "vertex sets of each DFS tree", runComponents},
	"topo":             {inputEdges, "topological order of a directed graph", runTopo},
	"cycles":           {inputEdges, "cycles closed by DFS back-edges, each as [v, ..., v]", runCycles},
	"course_order":     {inputEdges, "course order for [course, prerequisite] pairs", runCourseOrder},
	"dijkstra":         {inputEdges, "cheapest distance from src to each reachable vertex", runDijkstra},
	"bellmanford":      {inputEdges, "distances from src allowing negative weights", runBellmanFord},
	"kstop":            {inputEdges, "cheapest src to dst cost with at most k stops, -1 if none", runKStop},
	"network_delay":    {inputTimes, "time for a signal from src to reach nodes 1..n, -1 if some never does", runNetworkDelay},
	"mst":              {inputEdges, "minimum spanning tree by method prim or kruskal", runMST},
	"valid_tree":       {inputEdges, "whether the edges form a tree on nodes vertices", runValidTree},
	"points":           {inputPoints, "minimum Manhattan cost to connect all points", runPoints},
	"islands":          {inputGrid, "number of 4-connected land regions", runIslands},
	"max_area":         {inputGrid, "cell count of the largest land region", runMaxArea},
	"flood_fill":       {inputGrid, "grid with the region at row, col recolored to color", runFloodFill},
	"oranges":          {inputGrid, "minutes until every fresh orange rots, -1 if never", runOranges},
	"walls_gates":      {inputGrid, "distance from each room to its nearest gate", runWallsGates},
	"pacific_atlantic": {inputGrid, "cells draining to both oceans", runPacificAtlantic},
	"swim":             {inputGrid, "least time to swim from top-left to bottom-right", runSwim},
}

func runBFS(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS[int](g, j.Src, bfs.WithContext[int](ctx))
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

func runDFS(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}
	res, err := dfs.DFS[int](g, j.Src, dfs.WithContext[int](ctx))
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

func runComponents(_ context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}

	return dfs.Components[int](g), nil
}

func runTopo(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}

	return dfs.TopologicalSort[int](g, dfs.WithCancelContext(ctx))
}

func runCycles(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}
	_, cycles, err := dfs.DetectCycles[int](g, dfs.WithContext[int](ctx))
	if err != nil {
		return nil, err
	}
	if cycles == nil {
		cycles = [][]int{}
	}

	return cycles, nil
}

func runCourseOrder(_ context.Context, j Job) (any, error) {
	return dfs.CourseOrder(j.Nodes, j.pairs())
}

// reachable drops +Inf entries, which JSON cannot carry.
func reachable(dist map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(dist))
	for v, d := range dist {
		if !math.IsInf(d, 0) {
			out[v] = d
		}
	}

	return out
}

func runDijkstra(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}
	res, err := shortestpath.Dijkstra[int](g, j.Src, shortestpath.WithContext[int](ctx))
	if err != nil {
		return nil, err
	}

	return reachable(res.Dist), nil
}

func runBellmanFord(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}
	res, err := shortestpath.BellmanFord[int](g, j.Src, shortestpath.WithContext[int](ctx))
	if err != nil {
		return nil, err
	}

	return reachable(res.Dist), nil
}

func runKStop(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}
	cost, ok, err := shortestpath.KStopCheapest[int](g, j.Src, j.Dst, j.K, shortestpath.WithContext[int](ctx))
	if err != nil {
		return nil, err
	}
	if !ok {
		return -1, nil
	}

	return cost, nil
}

func runNetworkDelay(_ context.Context, j Job) (any, error) {
	return shortestpath.NetworkDelay(j.triples(), j.Nodes, j.Src), nil
}

type treeOut struct {
	Cost  float64  `json:"cost"`
	Edges [][2]int `json:"edges"`
	Spans bool     `json:"spans"`
}

func runMST(ctx context.Context, j Job) (any, error) {
	g, err := j.graph()
	if err != nil {
		return nil, err
	}
	opts := []prim_kruskal.Option[int]{
		prim_kruskal.WithRoot(j.Src),
		prim_kruskal.WithContext[int](ctx),
	}
	if j.Method != "" {
		opts = append(opts, prim_kruskal.WithMethod[int](j.Method))
	}
	tree, err := prim_kruskal.Compute[int](g, opts...)
	if err != nil {
		return nil, err
	}

	out := treeOut{Cost: tree.Cost, Edges: make([][2]int, len(tree.Edges)), Spans: tree.Spans(g.VertexCount())}
	for i, e := range tree.Edges {
		out.Edges[i] = [2]int{e.From, e.To}
	}

	return out, nil
}

func runValidTree(_ context.Context, j Job) (any, error) {
	return unionfind.ValidTree(j.Nodes, j.pairs()), nil
}

func runPoints(_ context.Context, j Job) (any, error) {
	return prim_kruskal.KruskalOnPoints(j.points()), nil
}

func runIslands(_ context.Context, j Job) (any, error) {
	return gridgraph.NumIslands(j.Grid)
}

func runMaxArea(_ context.Context, j Job) (any, error) {
	return gridgraph.MaxAreaOfIsland(j.Grid)
}

func runFloodFill(_ context.Context, j Job) (any, error) {
	return gridgraph.FloodFill(j.Grid, j.Row, j.Col, j.Color)
}

func runOranges(_ context.Context, j Job) (any, error) {
	return gridgraph.OrangesRotting(j.Grid)
}

func runWallsGates(_ context.Context, j Job) (any, error) {
	return gridgraph.WallsAndGates(j.Grid)
}

func runPacificAtlantic(_ context.Context, j Job) (any, error) {
	return gridgraph.PacificAtlantic(j.Grid)
}

func runSwim(_ context.Context, j Job) (any, error) {
	return gridgraph.SwimInWater(j.Grid)
}
