package shortestpath_test

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/shortestpath"
)

func ExampleDijkstra() {
	g := core.NewGraph[string](core.WithWeighted())
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 1)
	_ = g.AddEdge("C", "B", 2)
	_ = g.AddEdge("B", "D", 5)

	res, _ := shortestpath.Dijkstra[string](g, "A")
	path, _ := res.PathTo("D")
	fmt.Println(res.DistanceTo("D"), path)

	// Output:
	// 8 [A C B D]
}

func ExampleKStopCheapest() {
	g := core.NewGraph[int](core.WithDirected(true), core.WithWeighted())
	_ = g.AddEdge(0, 1, 100)
	_ = g.AddEdge(1, 2, 100)
	_ = g.AddEdge(0, 2, 500)

	for k := 0; k <= 1; k++ {
		cost, ok, _ := shortestpath.KStopCheapest[int](g, 0, 2, k)
		fmt.Println(k, cost, ok)
	}

	// Output:
	// 0 500 true
	// 1 200 true
}
