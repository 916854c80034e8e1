// Package prim_kruskal defines configuration options, sentinel errors and
// the Tree result shared by Prim and Kruskal.
package prim_kruskal

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgraph/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or has directed arcs.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrUnknownMethod indicates that Compute was given an unsupported Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// Tree is a minimum spanning tree, or forest for Kruskal on a disconnected graph.
//
//	Cost     – sum of the chosen edge weights.
//	Edges    – chosen edges, in the order they were accepted.
//	Vertices – vertices covered: the reached component for Prim, every vertex for Kruskal.
type Tree[N comparable] struct {
	Cost     float64
	Edges    []core.Edge[N]
	Vertices []N
}

// Spans reports whether the tree connects vertexCount vertices, i.e. whether
// the graph was connected. Prim and Kruskal never fail on a disconnected
// graph; callers that need full coverage check it here.
func (t *Tree[N]) Spans(vertexCount int) bool {
	return len(t.Edges) == max(vertexCount-1, 0)
}

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method – one of MethodPrim or MethodKruskal.
//	Root   – start vertex for Prim; ignored by Kruskal.
//	Ctx    – cancellation, checked at every frontier pop.
type MSTOptions[N comparable] struct {
	Method string
	Root   N
	Ctx    context.Context
}

// Option configures MSTOptions.
type Option[N comparable] func(*MSTOptions[N])

// WithMethod sets the algorithm Method. Allowed values: MethodPrim, MethodKruskal.
func WithMethod[N comparable](m string) Option[N] {
	return func(opts *MSTOptions[N]) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm; Kruskal ignores it.
func WithRoot[N comparable](root N) Option[N] {
	return func(opts *MSTOptions[N]) {
		opts.Root = root
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(opts *MSTOptions[N]) {
		if ctx != nil {
			opts.Ctx = ctx
		}
	}
}

// DefaultOptions returns MSTOptions for Kruskal with a background context.
func DefaultOptions[N comparable]() MSTOptions[N] {
	return MSTOptions[N]{
		Method: MethodKruskal,
		Ctx:    context.Background(),
	}
}

// Compute selects and runs the MST algorithm named by the options.
//
//	– MethodKruskal: Kruskal(graph).
//	– MethodPrim:    Prim(graph, Root).
//	– otherwise:     ErrUnknownMethod.
func Compute[N comparable](graph core.Adjacency[N], opts ...Option[N]) (*Tree[N], error) {
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(graph, WithContext[N](o.Ctx))
	case MethodPrim:
		return Prim(graph, o.Root, WithContext[N](o.Ctx))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// directedness is implemented by core.Graph.
type directedness interface {
	Directed() bool
	HasDirectedEdges() bool
}

// validate rejects nil graphs and graphs carrying directed arcs.
func validate[N comparable](graph core.Adjacency[N]) error {
	if graph == nil {
		return ErrInvalidGraph
	}
	if d, ok := graph.(directedness); ok && (d.Directed() || d.HasDirectedEdges()) {
		return ErrInvalidGraph
	}

	return nil
}
