// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-order hooks, depth limiting and neighbor filtering.
package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the DFS stack (in progress).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a back-edge was found during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by TopologicalSort for an undirected graph.
	ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")

	// ErrNodeOutOfRange is returned when an integer edge names a node outside 0..n-1.
	ErrNodeOutOfRange = errors.New("dfs: node out of range")
)

// Option configures optional behavior of DFS traversal.
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[N comparable] struct {
	// Ctx allows cancellation or timeouts; checked at every stack pop.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is visited (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id N, depth int) error

	// MaxDepth, if non-negative, limits the traversal to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each arc curr→next before it is pushed.
	FilterNeighbor func(curr, next N) bool
}

// DefaultOptions returns Options with a background context,
// no hook, no depth limit and no filtering.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits traversal depth. A negative limit means no limit.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips arcs for which fn(curr, next) == false.
func WithFilterNeighbor[N comparable](fn func(curr, next N) bool) Option[N] {
	return func(o *Options[N]) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[N comparable] struct {
	// Order records vertices in the sequence they were visited (pre-order).
	Order []N

	// Depth maps each vertex to the depth of the DFS tree edge that reached it.
	Depth map[N]int

	// Parent maps each vertex to the vertex it was reached from.
	// The start vertex does not appear.
	Parent map[N]N
}

// Visited reports whether id was reached.
func (r *Result[N]) Visited(id N) bool {
	_, ok := r.Depth[id]

	return ok
}
