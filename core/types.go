// Package core defines the central Graph and Edge types shared by every
// algorithm package, together with the Adjacency contract they consume.
//
// This file declares Edge, Graph, GraphOption, EdgeOption, the Adjacency
// interface, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrBadWeight           - non-finite weight, or non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// DefaultWeight is the weight stored for every edge of an unweighted graph.
const DefaultWeight float64 = 1

// Sentinel errors for core graph operations.
var (
	// ErrBadWeight indicates a NaN/Inf weight, or a non-zero weight passed to an unweighted graph.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Adjacency is the read-only contract every traversal, shortest-path and
// MST routine is written against. *Graph, the value returned by Graph.View,
// and gridgraph.Grid all satisfy it.
//
// Neighbors must return nil for an absent vertex and must enumerate arcs
// in a deterministic order.
type Adjacency[N comparable] interface {
	// HasVertex reports whether id is a node of the graph.
	HasVertex(id N) bool

	// Vertices lists every node in a deterministic order.
	Vertices() []N

	// Neighbors lists the outgoing arcs of id. Every arc has From == id.
	Neighbors(id N) []Edge[N]
}

// Edge is a single connection between two vertices.
//
// For an undirected edge the graph stores two arcs, one per endpoint; each
// arc returned by Neighbors carries From equal to the queried vertex.
type Edge[N comparable] struct {
	// From is the source vertex.
	From N

	// To is the destination vertex.
	To N

	// Weight is the cost of traversing the edge. DefaultWeight on unweighted graphs.
	Weight float64

	// Directed reports whether the edge is one-way.
	Directed bool
}

// GraphOption configures a Graph before creation.
type GraphOption func(o *graphConfig)

// graphConfig holds construction-time flags; it is copied into Graph and never changes after.
type graphConfig struct {
	directed   bool // default directedness of new edges
	weighted   bool // allow arbitrary finite weights
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops
}

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(o *graphConfig) { o.directed = defaultDirected }
}

// WithWeighted allows caller-supplied edge weights.
func WithWeighted() GraphOption {
	return func(o *graphConfig) { o.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(o *graphConfig) { o.allowMulti = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(o *graphConfig) { o.allowLoops = true }
}

// EdgeOption configures an individual edge when added.
type EdgeOption func(e *edgeConfig)

type edgeConfig struct {
	directed bool
}

// WithEdgeDirected overrides the graph's default directedness for one edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *edgeConfig) { e.directed = directed }
}

// Graph is an in-memory adjacency-list graph over caller-supplied,
// comparable node identifiers.
//
// Vertices and arcs are kept in insertion order, so every enumeration is
// deterministic. mu guards all storage; algorithms only ever read.
type Graph[N comparable] struct {
	mu sync.RWMutex

	cfg graphConfig

	// order lists vertices in insertion order; index maps a vertex to its position.
	order []N
	index map[N]int

	// adjacency[v] holds the outgoing arcs of v in insertion order.
	adjacency map[N][]Edge[N]

	// edges is the logical edge catalog: one entry per AddEdge call.
	edges []Edge[N]
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is undirected, unweighted, without loops or multi-edges.
// Complexity: O(1).
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	g := &Graph[N]{
		index:     make(map[N]int),
		adjacency: make(map[N][]Edge[N]),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
