package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/lvlgraph/unionfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnion_TriangleDetectsCycle unions (0,1), (1,2), (2,0): the third call
// closes a cycle and all three share one representative.
func TestUnion_TriangleDetectsCycle(t *testing.T) {
	d := unionfind.New(0, 1, 2)

	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(1, 2))
	assert.False(t, d.Union(2, 0), "third union must report a cycle")

	root := d.Find(0)
	assert.Equal(t, root, d.Find(1))
	assert.Equal(t, root, d.Find(2))
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 3, d.SizeOf(2))
}

func TestFind_LazyRegistration(t *testing.T) {
	d := unionfind.New[string]()
	assert.Equal(t, "x", d.Find("x"))
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 1, d.Len())

	require.True(t, d.Union("x", "y"))
	assert.True(t, d.Connected("y", "x"))
	assert.False(t, d.Connected("x", "z"))
	assert.Equal(t, 2, d.Count(), "{x,y} and {z}")
}

// TestUnion_BySize checks that the larger tree's root survives.
func TestUnion_BySize(t *testing.T) {
	d := unionfind.New(1, 2, 3, 4)
	require.True(t, d.Union(1, 2)) // tie: 2 becomes root
	assert.Equal(t, 2, d.Find(1))

	require.True(t, d.Union(2, 3)) // {1,2} larger than {3}
	assert.Equal(t, 2, d.Find(3))

	require.True(t, d.Union(4, 1)) // {4} smaller, goes under 2
	assert.Equal(t, 2, d.Find(4))
	assert.Equal(t, 4, d.SizeOf(4))
}

func TestFind_DeepChainCompresses(t *testing.T) {
	const n = 10000
	d := unionfind.New[int]()
	for i := 1; i < n; i++ {
		d.Union(i-1, i)
	}
	root := d.Find(0)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, d.Find(i))
	}
	assert.Equal(t, n, d.SizeOf(n-1))
}

func TestValidTree(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		want  bool
	}{
		{"Star", 5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}}, true},
		{"Cycle", 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {1, 3}, {1, 4}}, false},
		{"Single", 1, nil, true},
		{"TooFewEdges", 4, [][2]int{{0, 1}, {2, 3}}, false},
		{"OutOfRange", 2, [][2]int{{0, 5}}, false},
		{"Empty", 0, nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, unionfind.ValidTree(tc.n, tc.edges))
		})
	}
}

func TestHasCycle(t *testing.T) {
	cyc, at := unionfind.HasCycle([][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	assert.True(t, cyc)
	assert.Equal(t, [2]string{"c", "a"}, at)

	cyc, _ = unionfind.HasCycle([][2]int{{1, 2}, {3, 4}})
	assert.False(t, cyc)
}
