package dfs_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
)

// ExampleDFS demonstrates a pre-order traversal on a diamond-shaped graph.
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// A pushes B then C, so C is popped first.
func ExampleDFS() {
	g := core.NewGraph[string](core.WithDirected(true))
	for _, edge := range []struct{ U, V string }{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"C", "D"},
		{"D", "E"}, {"D", "F"},
	} {
		_ = g.AddEdge(edge.U, edge.V, 0)
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)

	// Output:
	// [A C D F E B]
}

// ExampleCourseOrder schedules four courses; [c, p] means p before c.
func ExampleCourseOrder() {
	order, err := dfs.CourseOrder(4, [][2]int{{1, 0}, {2, 0}, {3, 1}, {3, 2}})
	fmt.Println(order, err)

	_, err = dfs.CourseOrder(2, [][2]int{{0, 1}, {1, 0}})
	fmt.Println(errors.Is(err, dfs.ErrCycleDetected))

	// Output:
	// [0 2 1 3] <nil>
	// true
}
