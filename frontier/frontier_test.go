package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvlgraph/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier_PopsInPriorityOrder(t *testing.T) {
	f := frontier.New[string](0)
	f.Push(5, "e")
	f.Push(1, "a")
	f.Push(3, "c")
	f.Push(2, "b")
	f.Push(4, "d")

	var got []string
	for f.Len() > 0 {
		e, ok := f.Pop()
		require.True(t, ok)
		got = append(got, e.Node)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)

	_, ok := f.Pop()
	assert.False(t, ok, "empty frontier")
	_, ok = f.Peek()
	assert.False(t, ok)
}

func TestFrontier_TiesFollowInsertionOrder(t *testing.T) {
	var f frontier.Frontier[int]
	for i := 0; i < 10; i++ {
		f.Push(7, i)
	}
	for want := 0; want < 10; want++ {
		e, _ := f.Pop()
		assert.Equal(t, want, e.Node)
	}
}

func TestFrontier_DuplicatesAndPeek(t *testing.T) {
	f := frontier.New[int](4)
	f.Push(10, 1)
	f.Push(2, 1)

	top, ok := f.Peek()
	require.True(t, ok)
	assert.Equal(t, 2.0, top.Priority)
	assert.Equal(t, 2, f.Len(), "stale entry is kept")
}

func TestFrontier_RandomAgainstSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	f := frontier.New[int](100)
	want := make([]float64, 0, 100)
	for i := 0; i < 100; i++ {
		p := r.Float64() * 100
		want = append(want, p)
		f.Push(p, i)
	}
	sort.Float64s(want)

	for _, p := range want {
		e, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, p, e.Priority)
	}
}
