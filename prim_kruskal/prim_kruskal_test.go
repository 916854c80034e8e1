package prim_kruskal_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/katalvlaran/lvlgraph/prim_kruskal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs a simple undirected, weighted triangle graph:
//
//	A-B (weight 1), B-C (weight 2), A-C (weight 3).
//
// This graph's MST consists of edges A-B and B-C with total weight 3.
func buildTriangle(t *testing.T) *core.Graph[string] {
	g := core.NewGraph[string](core.WithWeighted())
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount edges.
// A chain V0-V1-...-V(n-1) ensures connectivity; extra random edges follow.
// The generator is seeded so the graph is reproducible.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph[string] {
	g := core.NewGraph[string](core.WithWeighted())
	for i := 0; i < n; i++ {
		g.AddVertex(fmt.Sprintf("V%d", i))
	}

	r := rand.New(rand.NewSource(42))
	for i := 1; i < n; i++ {
		weight := float64(1 + r.Intn(10))
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), weight))
	}

	// Duplicates fail with ErrMultiEdgeNotAllowed and do not count.
	for added := n - 1; added < edgesCount; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		weight := float64(1 + r.Intn(100))
		if g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), weight) == nil {
			added++
		}
	}

	return g
}

func TestValidation(t *testing.T) {
	_, err := prim_kruskal.Prim[string](nil, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Kruskal[string](nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	directed := core.NewGraph[string](core.WithDirected(true), core.WithWeighted())
	require.NoError(t, directed.AddEdge("A", "B", 1))
	_, err = prim_kruskal.Prim[string](directed, "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	mixed := core.NewGraph[string](core.WithWeighted())
	require.NoError(t, mixed.AddEdge("A", "B", 1, core.WithEdgeDirected(true)))
	_, err = prim_kruskal.Kruskal[string](mixed)
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	_, err = prim_kruskal.Compute[string](buildTriangle(t), prim_kruskal.WithMethod[string]("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestValidation_View checks that read-only views keep the directedness checks.
func TestValidation_View(t *testing.T) {
	directed := core.NewGraph[string](core.WithDirected(true), core.WithWeighted())
	require.NoError(t, directed.AddEdge("A", "B", 1))
	require.NoError(t, directed.AddEdge("B", "C", 5))

	_, err := prim_kruskal.Kruskal[string](directed.View())
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)
	_, err = prim_kruskal.Prim[string](directed.View(), "A")
	assert.ErrorIs(t, err, prim_kruskal.ErrInvalidGraph)

	mst, err := prim_kruskal.Kruskal[string](buildTriangle(t).View())
	require.NoError(t, err)
	assert.Equal(t, 3.0, mst.Cost)
}

func TestTriangle(t *testing.T) {
	g := buildTriangle(t)

	prim, err := prim_kruskal.Prim[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, 3.0, prim.Cost)
	assert.Len(t, prim.Edges, 2)
	assert.True(t, prim.Spans(g.VertexCount()))

	kr, err := prim_kruskal.Kruskal[string](g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, kr.Cost)
	assert.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, kr.Edges)
}

// TestPrim_StartInvariance checks that the tree cost does not depend on the start vertex.
func TestPrim_StartInvariance(t *testing.T) {
	g := buildMediumGraph(t, 40, 150)
	kr, err := prim_kruskal.Kruskal[string](g)
	require.NoError(t, err)
	require.True(t, kr.Spans(40))

	for _, start := range g.Vertices() {
		tree, err := prim_kruskal.Prim[string](g, start)
		require.NoError(t, err)
		assert.Equal(t, kr.Cost, tree.Cost, "start %s", start)
		assert.True(t, tree.Spans(40))
	}
}

func TestDisconnectedPartial(t *testing.T) {
	g := core.NewGraph[int](core.WithWeighted())
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 4, 7))

	prim, err := prim_kruskal.Prim[int](g, 0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, prim.Cost)
	assert.ElementsMatch(t, []int{0, 1, 2}, prim.Vertices)
	assert.False(t, prim.Spans(g.VertexCount()))

	kr, err := prim_kruskal.Kruskal[int](g)
	require.NoError(t, err)
	assert.Equal(t, 13.0, kr.Cost)
	assert.Len(t, kr.Edges, 3)
	assert.False(t, kr.Spans(g.VertexCount()))

	empty, err := prim_kruskal.Prim[int](g, 99)
	require.NoError(t, err)
	assert.Zero(t, empty.Cost)
	assert.Empty(t, empty.Vertices)
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := prim_kruskal.Compute[string](buildTriangle(t),
		prim_kruskal.WithMethod[string](prim_kruskal.MethodPrim),
		prim_kruskal.WithRoot("A"),
		prim_kruskal.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOnPoints(t *testing.T) {
	cases := []struct {
		points [][2]int
		want   int
	}{
		{[][2]int{{0, 0}, {2, 2}, {3, 10}, {5, 2}, {7, 0}}, 20},
		{[][2]int{{3, 12}, {-2, 5}, {-4, 1}}, 18},
		{[][2]int{{0, 0}}, 0},
		{nil, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, prim_kruskal.KruskalOnPoints(tc.points), "kruskal %v", tc.points)
		assert.Equal(t, tc.want, prim_kruskal.PrimOnPoints(tc.points), "prim %v", tc.points)
	}
}

func TestOnPoints_RandomAgree(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		pts := make([][2]int, 2+r.Intn(30))
		for i := range pts {
			pts[i] = [2]int{r.Intn(200) - 100, r.Intn(200) - 100}
		}
		assert.Equal(t, prim_kruskal.KruskalOnPoints(pts), prim_kruskal.PrimOnPoints(pts))
	}
}

func BenchmarkKruskalOnPoints(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	pts := make([][2]int, 300)
	for i := range pts {
		pts[i] = [2]int{r.Intn(10000), r.Intn(10000)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = prim_kruskal.KruskalOnPoints(pts)
	}
}
