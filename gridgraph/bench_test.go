package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgraph/gridgraph"
)

// BenchmarkConnectedComponents measures a random 1000×1000 grid, about half land.
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	rnd := rand.New(rand.NewSource(42))
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
		for x := range grid[y] {
			grid[y][x] = rnd.Intn(2)
		}
	}
	g, err := gridgraph.NewGrid(grid, gridgraph.WithLandThreshold(1))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}

// BenchmarkExpandIsland measures a 300×300 grid with one-cell islands at
// opposite corners.
// Complexity: O(W×H×log(W×H))
func BenchmarkExpandIsland(b *testing.B) {
	const n = 300
	grid := make([][]int, n)
	for y := range grid {
		grid[y] = make([]int, n)
	}
	grid[0][0] = 1
	grid[n-1][n-1] = 1

	g, err := gridgraph.NewGrid(grid, gridgraph.WithLandThreshold(1), gridgraph.WithConn(gridgraph.Conn8))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	if len(g.ConnectedComponents()) != 2 {
		b.Fatal("expected two islands in setup grid")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = g.ExpandIsland(0, 1)
	}
}
