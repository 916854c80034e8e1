// Package shortestpath defines the relaxation primitives, options and result
// types shared by Dijkstra, hop-bounded Bellman-Ford and full Bellman-Ford.
package shortestpath

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the shortest-path implementations.
var (
	// ErrGraphNil indicates that a nil graph was passed.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrNegativeHops indicates a negative stop budget for KStopCheapest.
	ErrNegativeHops = errors.New("shortestpath: hop budget must be non-negative")

	// ErrNegativeCycle indicates that BellmanFord found a cycle of negative
	// total weight reachable from the source.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle reachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("shortestpath: MaxDistance must be non-negative")

	// ErrOptionNotSupported indicates a Dijkstra-only option (MaxDistance,
	// Target) passed to a Bellman-Ford routine.
	ErrOptionNotSupported = errors.New("shortestpath: option not supported by Bellman-Ford")

	// ErrNoPath indicates that the requested vertex is unreachable.
	ErrNoPath = errors.New("shortestpath: no path")
)

// CostFunc combines the cost of a path prefix with the weight of the next edge.
// It must be monotone non-decreasing in both arguments for non-negative weights.
type CostFunc func(prefix, weight float64) float64

// Additive is the classic path cost: the sum of edge weights.
func Additive(prefix, weight float64) float64 { return prefix + weight }

// Bottleneck is the minimax path cost: the largest edge weight along the path.
func Bottleneck(prefix, weight float64) float64 { return math.Max(prefix, weight) }

// Option configures Dijkstra, KStopCheapest and BellmanFord.
type Option[N comparable] func(*Options[N])

// Options holds the tunables shared by the shortest-path routines.
//
// Ctx          – cancellation, checked at every frontier pop or round.
// Cost         – path cost function (Additive by default).
// MaxDistance  – Dijkstra stops once the smallest frontier entry exceeds it.
// SourceCost   – initial distance of the source (0 by default).
// Target       – if set, Dijkstra stops as soon as Target is settled.
type Options[N comparable] struct {
	Ctx         context.Context
	Cost        CostFunc
	MaxDistance float64
	SourceCost  float64
	Target      *N

	err error
}

// DefaultOptions returns Options with a background context, Additive cost,
// no distance cap, source cost 0 and no early target.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:         context.Background(),
		Cost:        Additive,
		MaxDistance: math.Inf(1),
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCost replaces the path cost function. A nil function is ignored.
func WithCost[N comparable](fn CostFunc) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithMaxDistance caps exploration. Negative or NaN values cause ErrBadMaxDistance.
func WithMaxDistance[N comparable](max float64) Option[N] {
	return func(o *Options[N]) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithSourceCost sets the distance the source starts with.
func WithSourceCost[N comparable](c float64) Option[N] {
	return func(o *Options[N]) { o.SourceCost = c }
}

// WithTarget stops Dijkstra once target is settled. Other distances are then partial.
func WithTarget[N comparable](target N) Option[N] {
	return func(o *Options[N]) { o.Target = &target }
}

// buildOptions applies opts over the defaults and surfaces recorded errors.
func buildOptions[N comparable](opts []Option[N]) (Options[N], error) {
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// buildRoundOptions is buildOptions for the Bellman-Ford routines, which
// honor Ctx, Cost and SourceCost only.
func buildRoundOptions[N comparable](opts []Option[N]) (Options[N], error) {
	o, err := buildOptions(opts)
	if err != nil {
		return o, err
	}
	if o.Target != nil {
		return o, fmt.Errorf("%w: WithTarget", ErrOptionNotSupported)
	}
	if !math.IsInf(o.MaxDistance, 1) {
		return o, fmt.Errorf("%w: WithMaxDistance", ErrOptionNotSupported)
	}

	return o, nil
}

// Result is the outcome of a single-source run.
//
// Dist holds an entry for every vertex of the graph; unreachable vertices
// (and all vertices, when the source is absent) are +Inf.
// Prev maps each reached vertex other than the source to its predecessor.
type Result[N comparable] struct {
	Source N
	Dist   map[N]float64
	Prev   map[N]N
}

// DistanceTo returns the distance to v, +Inf if unknown or unreachable.
func (r *Result[N]) DistanceTo(v N) float64 {
	if d, ok := r.Dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// Reachable reports whether v has a finite distance.
func (r *Result[N]) Reachable(v N) bool {
	return !math.IsInf(r.DistanceTo(v), 1)
}

// PathTo rebuilds the path Source → v from Prev.
// Returns ErrNoPath if v is unreachable.
func (r *Result[N]) PathTo(v N) ([]N, error) {
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, v)
	}
	path := []N{v}
	for cur := v; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
