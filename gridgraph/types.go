package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
	// ErrOutOfBounds indicates a (row, col) pair outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Offsets are (dx, dy) pairs in clockwise order starting north.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Option configures a Grid.
type Option func(*GridOptions)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// Cells decides which cell values are vertices. Nil means every cell.
	Cells func(value int) bool

	// Passable filters an arc by the values of its endpoint cells.
	// Nil means every arc between two vertices is passable.
	Passable func(from, to int) bool

	// Weight prices an arc by the values of its endpoint cells.
	// Nil means unit weight.
	Weight func(from, to int) float64
}

// DefaultGridOptions returns Conn4 with every cell a vertex and unit weights.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// WithConn selects Conn4 or Conn8 neighborhoods.
func WithConn(c Connectivity) Option {
	return func(o *GridOptions) { o.Conn = c }
}

// WithCells keeps only cells whose value satisfies pred as vertices.
func WithCells(pred func(value int) bool) Option {
	return func(o *GridOptions) { o.Cells = pred }
}

// WithLandThreshold keeps only cells with value >= threshold.
func WithLandThreshold(threshold int) Option {
	return WithCells(func(v int) bool { return v >= threshold })
}

// WithPassable restricts arcs to those where pred(fromValue, toValue) holds.
func WithPassable(pred func(from, to int) bool) Option {
	return func(o *GridOptions) { o.Passable = pred }
}

// WithWeight prices each arc as fn(fromValue, toValue).
func WithWeight(fn func(from, to int) float64) Option {
	return func(o *GridOptions) { o.Weight = fn }
}

// Grid treats a 2D integer grid as a graph over packed cell indices.
// Cell (x, y) is vertex y*Width + x. It is immutable once built.
type Grid struct {
	Width, Height int
	cells         [][]int
	opts          GridOptions
	offsets       [][2]int
}
