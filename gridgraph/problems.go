package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/bfs"
	"github.com/katalvlaran/lvlgraph/dfs"
	"github.com/katalvlaran/lvlgraph/shortestpath"
)

// EmptyRoom marks an unfilled room in WallsAndGates input.
const EmptyRoom = 2147483647

// Cell values understood by WallsAndGates and OrangesRotting.
const (
	Wall   = -1
	Gate   = 0
	Empty  = 0
	Fresh  = 1
	Rotten = 2
)

// FloodFill recolors the 4-connected region of cells sharing the value at
// (sr, sc) and returns the recolored copy. The input is never modified.
// Returns ErrOutOfBounds if (sr, sc) is outside the image.
func FloodFill(image [][]int, sr, sc, color int) ([][]int, error) {
	out, err := copyCells(image)
	if err != nil {
		return nil, err
	}
	if sr < 0 || sr >= len(out) || sc < 0 || sc >= len(out[0]) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, sr, sc)
	}
	old := out[sr][sc]
	if old == color {
		return out, nil
	}

	g, _ := NewGrid(out, WithCells(func(v int) bool { return v == old }))
	res, err := dfs.DFS[int](g, g.Index(sc, sr))
	if err != nil {
		return nil, err
	}
	for _, idx := range res.Order {
		x, y := g.Coordinate(idx)
		out[y][x] = color
	}

	return out, nil
}

// OrangesRotting returns the minutes until no Fresh cell remains when every
// Rotten cell spreads to its 4 neighbors each minute, or -1 if some Fresh
// cell is never reached.
func OrangesRotting(grid [][]int) (int, error) {
	g, err := NewGrid(grid,
		WithCells(func(v int) bool { return v != Empty }),
		WithPassable(func(_, to int) bool { return to == Fresh }),
	)
	if err != nil {
		return 0, err
	}

	var rotten []int
	fresh := 0
	for _, v := range g.Vertices() {
		switch g.Value(v) {
		case Rotten:
			rotten = append(rotten, v)
		case Fresh:
			fresh++
		}
	}
	if fresh == 0 {
		return 0, nil
	}

	res, err := bfs.MultiSource[int](g, rotten)
	if err != nil {
		return 0, err
	}
	reached := 0
	for _, v := range res.Order {
		if g.Value(v) == Fresh {
			reached++
		}
	}
	if reached < fresh {
		return -1, nil
	}

	return res.MaxDepth(), nil
}

// WallsAndGates returns a copy of rooms where each EmptyRoom holds the hop
// distance to its nearest Gate. Rooms no gate reaches keep EmptyRoom.
func WallsAndGates(rooms [][]int) ([][]int, error) {
	g, err := NewGrid(rooms,
		WithCells(func(v int) bool { return v != Wall }),
		WithPassable(func(_, to int) bool { return to == EmptyRoom }),
	)
	if err != nil {
		return nil, err
	}

	var gates []int
	for _, v := range g.Vertices() {
		if g.Value(v) == Gate {
			gates = append(gates, v)
		}
	}
	res, err := bfs.MultiSource[int](g, gates)
	if err != nil {
		return nil, err
	}

	out, _ := copyCells(rooms)
	for v, d := range res.Depth {
		if d > 0 {
			x, y := g.Coordinate(v)
			out[y][x] = d
		}
	}

	return out, nil
}

// PacificAtlantic lists, row-major as [row, col], the cells from which water
// can flow to both the Pacific (top and left edges) and the Atlantic
// (bottom and right edges). Water flows to a neighbor of equal or lower height.
func PacificAtlantic(heights [][]int) ([][2]int, error) {
	// Search uphill from each ocean's shore.
	g, err := NewGrid(heights, WithPassable(func(from, to int) bool { return to >= from }))
	if err != nil {
		return nil, err
	}

	var pacific, atlantic []int
	for x := 0; x < g.Width; x++ {
		pacific = append(pacific, g.Index(x, 0))
		atlantic = append(atlantic, g.Index(x, g.Height-1))
	}
	for y := 0; y < g.Height; y++ {
		pacific = append(pacific, g.Index(0, y))
		atlantic = append(atlantic, g.Index(g.Width-1, y))
	}

	toPacific, err := bfs.MultiSource[int](g, pacific)
	if err != nil {
		return nil, err
	}
	toAtlantic, err := bfs.MultiSource[int](g, atlantic)
	if err != nil {
		return nil, err
	}

	var out [][2]int
	for _, v := range g.Vertices() {
		if toPacific.Visited(v) && toAtlantic.Visited(v) {
			x, y := g.Coordinate(v)
			out = append(out, [2]int{y, x})
		}
	}

	return out, nil
}

// SwimInWater returns the least time t at which one can swim from the
// top-left to the bottom-right cell, where a cell of elevation e is
// enterable once t >= e. It is a bottleneck shortest path: the cost of a
// route is its highest elevation.
func SwimInWater(grid [][]int) (int, error) {
	g, err := NewGrid(grid, WithWeight(func(_, to int) float64 { return float64(to) }))
	if err != nil {
		return 0, err
	}
	last := g.Index(g.Width-1, g.Height-1)

	res, err := shortestpath.Dijkstra[int](g, 0,
		shortestpath.WithCost[int](shortestpath.Bottleneck),
		shortestpath.WithSourceCost[int](float64(g.Value(0))),
		shortestpath.WithTarget(last),
	)
	if err != nil {
		return 0, err
	}

	return int(res.DistanceTo(last)), nil
}
