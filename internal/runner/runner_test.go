package runner_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/lvlgraph/internal/runner"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var flights = [][]float64{{0, 1, 100}, {1, 2, 100}, {0, 2, 500}}

type countingObserver struct {
	mu   sync.Mutex
	seen map[string]int
}

func (c *countingObserver) Observe(kind, status string, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seen == nil {
		c.seen = make(map[string]int)
	}
	c.seen[kind+"/"+status]++
}

func TestRun_Batch(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	obs := &countingObserver{}
	r := runner.New(log, runner.WithWorkers(3), runner.WithTimeout(time.Second), runner.WithObserver(obs))

	jobs := []runner.Job{
		{Name: "k0", Kind: "kstop", Directed: true, Weighted: true, Edges: flights, Src: 0, Dst: 2, K: 0},
		{Name: "k1", Kind: "kstop", Directed: true, Weighted: true, Edges: flights, Src: 0, Dst: 2, K: 1},
		{Name: "walk", Kind: "bfs", Nodes: 4, Edges: [][]float64{{0, 1}, {0, 2}, {1, 3}}},
		{Name: "cycle", Kind: "topo", Directed: true, Edges: [][]float64{{0, 1}, {1, 2}, {2, 0}}},
		{Name: "map", Kind: "islands", Grid: [][]int{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}}},
		{Name: "tree", Kind: "mst", Method: "prim", Weighted: true, Edges: [][]float64{{0, 1, 1}, {1, 2, 2}, {0, 2, 3}}},
		{Name: "bogus", Kind: "astar"},
	}
	results, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))

	byName := map[string]runner.Result{}
	runID := results[0].RunID
	for _, res := range results {
		assert.Equal(t, runID, res.RunID, "one run id per batch")
		byName[res.Job] = res
	}
	assert.NotEmpty(t, runID)

	assert.Equal(t, 500.0, byName["k0"].Value)
	assert.Equal(t, 200.0, byName["k1"].Value)
	assert.Equal(t, []int{0, 1, 2, 3}, byName["walk"].Value)
	assert.Equal(t, 2, byName["map"].Value)

	assert.Equal(t, runner.StatusFailed, byName["cycle"].Status)
	assert.Contains(t, byName["cycle"].Error, "cycle")
	assert.Equal(t, runner.StatusFailed, byName["bogus"].Status)
	assert.Contains(t, byName["bogus"].Error, "unknown job kind")

	tree := byName["tree"]
	require.Equal(t, runner.StatusOK, tree.Status, tree.Error)
	raw, err := json.Marshal(tree.Value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cost":3,"edges":[[0,1],[1,2]],"spans":true}`, string(raw))

	assert.Equal(t, 2, obs.seen["kstop/ok"])
	assert.Equal(t, 1, obs.seen["topo/failed"])

	var tagged int
	for _, e := range hook.AllEntries() {
		if e.Data["run_id"] == runID {
			tagged++
		}
	}
	assert.Equal(t, len(hook.AllEntries()), tagged, "every log line carries the run id")
}

func TestRun_DistinctRunIDs(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := runner.New(log)
	jobs := []runner.Job{{Name: "n", Kind: "valid_tree", Nodes: 2, Edges: [][]float64{{0, 1}}}}

	a, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	b, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)

	assert.Equal(t, true, a[0].Value)
	assert.NotEqual(t, a[0].RunID, b[0].RunID)
}

func TestRun_Cancelled(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := runner.New(log)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.Run(ctx, []runner.Job{{Name: "late", Kind: "bfs", Nodes: 1}})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Equal(t, runner.StatusFailed, results[0].Status)
}

func TestKinds(t *testing.T) {
	kinds := runner.Kinds()
	assert.Contains(t, kinds, "dijkstra")
	assert.Contains(t, kinds, "swim")
	assert.IsIncreasing(t, kinds)
	for _, k := range kinds {
		assert.NotEmpty(t, runner.Describe(k), k)
	}
}
