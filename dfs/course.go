package dfs

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// TopoSortN topologically sorts nodes 0..nodeCount-1 under the directed
// edges u→v given as pairs. Every node appears in the result, isolated ones
// included. Duplicate edges are tolerated; a self-loop is a cycle.
//
// Errors: ErrNodeOutOfRange, ErrCycleDetected.
func TopoSortN(nodeCount int, edges [][2]int) ([]int, error) {
	g, err := buildDirected(nodeCount, edges)
	if err != nil {
		return nil, err
	}

	return TopologicalSort[int](g)
}

// CourseOrder returns an order in which all numCourses courses can be taken.
// Each prerequisite pair is [course, required]: required comes first.
// A circular requirement yields ErrCycleDetected.
func CourseOrder(numCourses int, prerequisites [][2]int) ([]int, error) {
	edges := make([][2]int, len(prerequisites))
	for i, p := range prerequisites {
		edges[i] = [2]int{p[1], p[0]}
	}

	return TopoSortN(numCourses, edges)
}

// CanFinish reports whether every course can be completed.
func CanFinish(numCourses int, prerequisites [][2]int) bool {
	_, err := CourseOrder(numCourses, prerequisites)

	return err == nil
}

// buildDirected creates a directed graph over 0..n-1 in ascending vertex order.
func buildDirected(n int, edges [][2]int) (*core.Graph[int], error) {
	g := core.NewGraph[int](core.WithDirected(true), core.WithLoops(), core.WithMultiEdges())
	for v := 0; v < n; v++ {
		g.AddVertex(v)
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return nil, fmt.Errorf("%w: %d→%d with n=%d", ErrNodeOutOfRange, e[0], e[1], n)
		}
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			return nil, err
		}
	}

	return g, nil
}
