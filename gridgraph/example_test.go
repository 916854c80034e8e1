package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/gridgraph"
)

// ExampleNumIslands counts 4-connected land regions.
func ExampleNumIslands() {
	n, _ := gridgraph.NumIslands([][]int{
		{1, 1, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	fmt.Println("islands:", n)
	// Output:
	// islands: 2
}

// ExampleGrid_ExpandIsland computes the water cells to convert so two
// islands of a single row join.
func ExampleGrid_ExpandIsland() {
	g, _ := gridgraph.NewGrid([][]int{{1, 1, 0, 0, 1}}, gridgraph.WithLandThreshold(1))

	path, cost, _ := g.ExpandIsland(0, 1)
	fmt.Printf("convert %d cells along", cost)
	for _, idx := range path {
		x, y := g.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()
	// Output:
	// convert 2 cells along (1,0) (2,0) (3,0) (4,0)
}

// ExampleOrangesRotting spreads rot from the top-left corner.
func ExampleOrangesRotting() {
	minutes, _ := gridgraph.OrangesRotting([][]int{
		{2, 1, 1},
		{1, 1, 0},
		{0, 1, 1},
	})
	fmt.Println("minutes:", minutes)
	// Output:
	// minutes: 4
}
