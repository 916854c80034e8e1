package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGrid(values [][]int, opts ...Option) (*Grid, error) {
	cells, err := copyCells(values)
	if err != nil {
		return nil, err
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	offsets := conn4Offsets
	if o.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &Grid{
		Width:   len(cells[0]),
		Height:  len(cells),
		cells:   cells,
		opts:    o,
		offsets: offsets,
	}, nil
}

// copyCells validates the shape of values and returns a deep copy.
func copyCells(values [][]int) ([][]int, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(values[0])
	out := make([][]int, len(values))
	for y, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		out[y] = make([]int, w)
		copy(out[y], row)
	}

	return out, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index packs (x,y) into a vertex id.
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// Coordinate unpacks a vertex id into (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Value returns the cell value at idx. idx must be in range.
func (g *Grid) Value(idx int) int {
	x, y := g.Coordinate(idx)
	return g.cells[y][x]
}

// HasVertex reports whether idx is an in-range cell accepted by the Cells predicate.
func (g *Grid) HasVertex(idx int) bool {
	if idx < 0 || idx >= g.Width*g.Height {
		return false
	}

	return g.accepts(g.Value(idx))
}

func (g *Grid) accepts(v int) bool {
	return g.opts.Cells == nil || g.opts.Cells(v)
}

// Vertices lists accepted cells in row-major order.
func (g *Grid) Vertices() []int {
	out := make([]int, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.accepts(g.cells[y][x]) {
				out = append(out, g.Index(x, y))
			}
		}
	}

	return out
}

// Neighbors generates the arcs leaving idx on demand, in offset order.
// Returns nil when idx is not a vertex.
func (g *Grid) Neighbors(idx int) []core.Edge[int] {
	if !g.HasVertex(idx) {
		return nil
	}
	x, y := g.Coordinate(idx)
	from := g.cells[y][x]

	var out []core.Edge[int]
	for _, d := range g.offsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) {
			continue
		}
		to := g.cells[ny][nx]
		if !g.accepts(to) {
			continue
		}
		if g.opts.Passable != nil && !g.opts.Passable(from, to) {
			continue
		}
		w := core.DefaultWeight
		if g.opts.Weight != nil {
			w = g.opts.Weight(from, to)
		}
		out = append(out, core.Edge[int]{From: idx, To: g.Index(nx, ny), Weight: w, Directed: true})
	}

	return out
}

// ToCoreGraph materializes the grid into a directed, weighted *core.Graph.
// Every vertex is added, including isolated ones, and every generated arc
// becomes one directed edge. Use it when an algorithm must mutate or
// repeatedly scan the graph.
// A Weight function yielding NaN or ±Inf fails with core.ErrBadWeight,
// wrapped with the offending arc.
// Complexity: O(W×H×d) time and memory.
func (g *Grid) ToCoreGraph() (*core.Graph[int], error) {
	out := core.NewGraph[int](core.WithDirected(true), core.WithWeighted())
	verts := g.Vertices()
	for _, v := range verts {
		out.AddVertex(v)
	}
	for _, v := range verts {
		for _, e := range g.Neighbors(v) {
			if err := out.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, fmt.Errorf("gridgraph: arc %d→%d: %w", e.From, e.To, err)
			}
		}
	}

	return out, nil
}
