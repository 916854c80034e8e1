package prim_kruskal

import (
	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/frontier"
	"github.com/katalvlaran/lvlgraph/unionfind"
)

// manhattan returns |x1-x2| + |y1-y2|.
func manhattan(a, b [2]int) int {
	return abs(a[0]-b[0]) + abs(a[1]-b[1])
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// KruskalOnPoints returns the minimum cost to connect all points, where the
// cost of joining two points is their Manhattan distance.
//
// Edges are implicit: every pair goes into one global min-heap, and pairs
// are popped in ascending distance, skipping those whose endpoints already
// share a set, until n-1 unions succeed.
//
// Complexity: O(n² log n) time, O(n²) memory.
func KruskalOnPoints(points [][2]int) int {
	n := len(points)
	if n < 2 {
		return 0
	}

	pq := frontier.New[[2]int](n * (n - 1) / 2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pq.Push(float64(manhattan(points[i], points[j])), [2]int{i, j})
		}
	}

	dsu := unionfind.New[int]()
	total, added := 0, 0
	for added < n-1 {
		item, ok := pq.Pop()
		if !ok {
			break
		}
		if dsu.Union(item.Node[0], item.Node[1]) {
			total += int(item.Priority)
			added++
		}
	}

	return total
}

// PrimOnPoints solves the same problem by running Prim over the implicit
// complete graph of points. It needs no O(n²) edge heap up front.
//
// Complexity: O(n² log n) time, O(n²) memory in the worst case.
func PrimOnPoints(points [][2]int) int {
	if len(points) < 2 {
		return 0
	}
	tree, err := Prim[int](pointGraph(points), 0)
	if err != nil {
		return 0
	}

	return int(tree.Cost)
}

// pointGraph is the complete graph over point indices, weighted by Manhattan distance.
type pointGraph [][2]int

func (p pointGraph) HasVertex(id int) bool { return id >= 0 && id < len(p) }

func (p pointGraph) Vertices() []int {
	out := make([]int, len(p))
	for i := range out {
		out[i] = i
	}

	return out
}

func (p pointGraph) Neighbors(id int) []core.Edge[int] {
	if !p.HasVertex(id) {
		return nil
	}
	out := make([]core.Edge[int], 0, len(p)-1)
	for j := range p {
		if j != id {
			out = append(out, core.Edge[int]{From: id, To: j, Weight: float64(manhattan(p[id], p[j]))})
		}
	}

	return out
}
