package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlgraph/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	g.AddVertex("A")
	g.AddVertex("B")

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("Z"))
	assert.Nil(t, g.Neighbors("A"), "isolated vertex has no arcs")
}

func TestAddEdge_UndirectedStoresTwoArcs(t *testing.T) {
	g := core.NewGraph[int](core.WithWeighted())
	require.NoError(t, g.AddEdge(1, 2, 3.5))

	fwd := g.Neighbors(1)
	back := g.Neighbors(2)
	require.Len(t, fwd, 1)
	require.Len(t, back, 1)
	assert.Equal(t, core.Edge[int]{From: 1, To: 2, Weight: 3.5}, fwd[0])
	assert.Equal(t, core.Edge[int]{From: 2, To: 1, Weight: 3.5}, back[0])
	assert.Equal(t, 1, g.EdgeCount(), "one logical edge")
	assert.Len(t, g.Edges(), 1)
}

func TestAddEdge_DirectedStoresOneArc(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	require.NoError(t, g.AddEdge(1, 2, 0))

	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1))
	assert.Nil(t, g.Neighbors(2))
	assert.True(t, g.HasDirectedEdges())
	assert.True(t, g.Directed())
}

func TestAddEdge_PerEdgeOverride(t *testing.T) {
	g := core.NewGraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 0, core.WithEdgeDirected(true)))
	require.NoError(t, g.AddEdge("B", "C", 0))

	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasEdge("C", "B"))
	assert.True(t, g.HasDirectedEdges())
}

func TestAddEdge_Weights(t *testing.T) {
	unweighted := core.NewGraph[int]()
	require.NoError(t, unweighted.AddEdge(1, 2, 0))
	assert.Equal(t, core.DefaultWeight, unweighted.Neighbors(1)[0].Weight)
	assert.ErrorIs(t, unweighted.AddEdge(2, 3, 7), core.ErrBadWeight)

	weighted := core.NewGraph[int](core.WithWeighted())
	require.NoError(t, weighted.AddEdge(1, 2, -4), "negative weights are stored")
	assert.Equal(t, -4.0, weighted.Neighbors(2)[0].Weight)
	assert.ErrorIs(t, weighted.AddEdge(1, 3, math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, weighted.AddEdge(1, 3, math.Inf(1)), core.ErrBadWeight)
	assert.False(t, weighted.HasVertex(3), "failed AddEdge must not add vertices")
}

func TestAddEdge_LoopsAndMultiEdges(t *testing.T) {
	g := core.NewGraph[int]()
	assert.ErrorIs(t, g.AddEdge(1, 1, 0), core.ErrLoopNotAllowed)
	require.NoError(t, g.AddEdge(1, 2, 0))
	assert.ErrorIs(t, g.AddEdge(1, 2, 0), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge(2, 1, 0), core.ErrMultiEdgeNotAllowed, "mirror arc counts as existing")

	multi := core.NewGraph[int](core.WithLoops(), core.WithMultiEdges())
	require.NoError(t, multi.AddEdge(1, 1, 0))
	require.NoError(t, multi.AddEdge(1, 2, 0))
	require.NoError(t, multi.AddEdge(1, 2, 0))
	assert.Len(t, multi.Neighbors(1), 3, "loop stored once plus two parallel arcs")
	assert.Equal(t, 3, multi.EdgeCount())
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	for _, to := range []string{"D", "B", "C", "A"} {
		require.NoError(t, g.AddEdge("S", to, 0))
	}

	var got []string
	for _, e := range g.Neighbors("S") {
		got = append(got, e.To)
	}
	assert.Equal(t, []string{"D", "B", "C", "A"}, got)
	assert.Equal(t, []string{"S", "D", "B", "C", "A"}, g.Vertices())
}

func TestClone_Independent(t *testing.T) {
	g := core.NewGraph[int](core.WithWeighted())
	require.NoError(t, g.AddEdge(1, 2, 5))

	c := g.Clone()
	require.NoError(t, c.AddEdge(2, 3, 1))

	assert.False(t, g.HasVertex(3))
	assert.True(t, c.HasVertex(3))
	assert.Equal(t, g.Neighbors(1), c.Neighbors(1))
	assert.True(t, c.Weighted())
}

func TestView_ReadOnly(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 0))

	view := g.View()
	_, mutable := view.(*core.Graph[int])
	assert.False(t, mutable, "view must not expose the graph")
	assert.Equal(t, g.Vertices(), view.Vertices())
	assert.True(t, view.HasVertex(2))

	require.NoError(t, g.AddEdge(2, 3, 0))
	assert.True(t, view.HasVertex(3), "view shares storage")
}

func TestView_ForwardsDirectedness(t *testing.T) {
	d := core.NewGraph[int](core.WithDirected(true))
	require.NoError(t, d.AddEdge(1, 2, 0))
	u := core.NewGraph[int]()
	require.NoError(t, u.AddEdge(1, 2, 0))

	type directedness interface {
		Directed() bool
		HasDirectedEdges() bool
	}
	dv, ok := d.View().(directedness)
	require.True(t, ok)
	assert.True(t, dv.Directed())
	assert.True(t, dv.HasDirectedEdges())

	uv, ok := u.View().(directedness)
	require.True(t, ok)
	assert.False(t, uv.Directed())
	assert.False(t, uv.HasDirectedEdges())
}
