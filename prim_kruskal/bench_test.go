package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvlgraph/prim_kruskal"
)

// BenchmarkKruskal measures a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal[string](g)
	}
}

// BenchmarkPrim runs Prim from "V0" on the same graph.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim[string](g, "V0")
	}
}
