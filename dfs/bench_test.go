package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/dfs"
)

// chain builds the directed chain 0 → 1 → ... → n.
func chain(n int) *core.Graph[int] {
	g := core.NewGraph[int](core.WithDirected(true))
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, i+1, 0)
	}

	return g
}

// BenchmarkDFS_Chain10000 measures DFS on a 10,001-vertex chain. The stack
// is explicit, so depth costs memory, not goroutine stack.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := chain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS[int](g, 0)
	}
}

// BenchmarkTopologicalSort_Chain10000 measures the three-colour sort on the same chain.
func BenchmarkTopologicalSort_Chain10000(b *testing.B) {
	g := chain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort[int](g)
	}
}

// BenchmarkDetectCycles_Ring measures cycle detection on one 10,000-vertex ring.
func BenchmarkDetectCycles_Ring(b *testing.B) {
	g := chain(9999)
	_ = g.AddEdge(9999, 0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dfs.DetectCycles[int](g)
	}
}
