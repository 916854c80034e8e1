package runner

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlgraph/core"
)

// ErrBadJob is returned for a job whose fields do not fit its kind.
var ErrBadJob = errors.New("runner: invalid job")

// ErrUnknownKind is returned for a job kind no handler serves.
var ErrUnknownKind = errors.New("runner: unknown job kind")

// Job is one algorithm invocation decoded from configuration.
//
// Graph kinds read Nodes, Edges, Directed and Weighted; vertices are the
// ints 0..Nodes-1 plus every edge endpoint. An edge is [from, to], or
// [from, to, weight] when Weighted is set. network_delay always reads
// [from, to, time]. Grid kinds read Grid, point kinds read Points.
type Job struct {
	Name     string      `koanf:"name" json:"name"`
	Kind     string      `koanf:"kind" json:"kind"`
	Directed bool        `koanf:"directed" json:"directed,omitempty"`
	Weighted bool        `koanf:"weighted" json:"weighted,omitempty"`
	Nodes    int         `koanf:"nodes" json:"nodes,omitempty"`
	Edges    [][]float64 `koanf:"edges" json:"edges,omitempty"`
	Grid     [][]int     `koanf:"grid" json:"grid,omitempty"`
	Points   [][]int     `koanf:"points" json:"points,omitempty"`
	Src      int         `koanf:"src" json:"src,omitempty"`
	Dst      int         `koanf:"dst" json:"dst,omitempty"`
	K        int         `koanf:"k" json:"k,omitempty"`
	Method   string      `koanf:"method" json:"method,omitempty"`
	Row      int         `koanf:"row" json:"row,omitempty"`
	Col      int         `koanf:"col" json:"col,omitempty"`
	Color    int         `koanf:"color" json:"color,omitempty"`
}

// Validate checks that the kind is known and the job carries the input its
// kind reads.
func (j Job) Validate() error {
	h, ok := handlers[j.Kind]
	if !ok {
		return fmt.Errorf("%w %q (job %q)", ErrUnknownKind, j.Kind, j.Name)
	}
	switch h.input {
	case inputGrid:
		if len(j.Grid) == 0 {
			return fmt.Errorf("%w: job %q: kind %s needs a grid", ErrBadJob, j.Name, j.Kind)
		}
	case inputPoints:
		for i, p := range j.Points {
			if len(p) != 2 {
				return fmt.Errorf("%w: job %q: point %d has %d coordinates", ErrBadJob, j.Name, i, len(p))
			}
		}
	case inputEdges, inputTimes:
		if j.Nodes < 0 {
			return fmt.Errorf("%w: job %q: negative nodes", ErrBadJob, j.Name)
		}
		for i, e := range j.Edges {
			if len(e) != 2 && len(e) != 3 {
				return fmt.Errorf("%w: job %q: edge %d has %d fields", ErrBadJob, j.Name, i, len(e))
			}
			// A weight on an unweighted graph would be dropped.
			if h.input == inputEdges && len(e) == 3 && !j.Weighted {
				return fmt.Errorf("%w: job %q: edge %d has a weight but weighted is not set", ErrBadJob, j.Name, i)
			}
		}
	}

	return nil
}

// Kinds lists every job kind in lexical order.
func Kinds() []string {
	out := make([]string, 0, len(handlers))
	for k := range handlers {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Describe returns the one-line description of kind.
func Describe(kind string) string {
	return handlers[kind].about
}

// graph builds the job's graph. Parallel edges and loops are kept so the
// input is taken as given.
func (j Job) graph() (*core.Graph[int], error) {
	opts := []core.GraphOption{core.WithDirected(j.Directed), core.WithMultiEdges(), core.WithLoops()}
	if j.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph[int](opts...)
	for v := 0; v < j.Nodes; v++ {
		g.AddVertex(v)
	}
	for i, e := range j.Edges {
		w := 0.0
		if j.Weighted {
			w = core.DefaultWeight
			if len(e) == 3 {
				w = e[2]
			}
		}
		if err := g.AddEdge(int(e[0]), int(e[1]), w); err != nil {
			return nil, fmt.Errorf("job %q edge %d: %w", j.Name, i, err)
		}
	}

	return g, nil
}

// pairs returns the edges as [from, to] int pairs.
func (j Job) pairs() [][2]int {
	out := make([][2]int, len(j.Edges))
	for i, e := range j.Edges {
		out[i] = [2]int{int(e[0]), int(e[1])}
	}

	return out
}

// triples returns the edges as [from, to, weight] ints; missing weights are 1.
func (j Job) triples() [][3]int {
	out := make([][3]int, len(j.Edges))
	for i, e := range j.Edges {
		w := 1
		if len(e) == 3 {
			w = int(e[2])
		}
		out[i] = [3]int{int(e[0]), int(e[1]), w}
	}

	return out
}

func (j Job) points() [][2]int {
	out := make([][2]int, len(j.Points))
	for i, p := range j.Points {
		out[i] = [2]int{p[0], p[1]}
	}

	return out
}
