package shortestpath

import "math"

// DistanceTable maps vertices to their best-known cost. A missing entry
// means +Inf. Entries only ever decrease through Relax.
type DistanceTable[N comparable] struct {
	dist map[N]float64
}

// NewDistanceTable returns an empty table.
func NewDistanceTable[N comparable]() *DistanceTable[N] {
	return &DistanceTable[N]{dist: make(map[N]float64)}
}

// Get returns the best-known distance to v, +Inf if none.
func (t *DistanceTable[N]) Get(v N) float64 {
	if d, ok := t.dist[v]; ok {
		return d
	}

	return math.Inf(1)
}

// Set overwrites the distance to v.
func (t *DistanceTable[N]) Set(v N, d float64) { t.dist[v] = d }

// Relax offers the path ...→u→v of weight w. It returns true if the
// table entry for v decreased.
func (t *DistanceTable[N]) Relax(u, v N, w float64, cost CostFunc) bool {
	return t.RelaxFrom(t.Get(u), v, w, cost)
}

// RelaxFrom is Relax with an explicit prefix cost, so a round can read
// from a frozen snapshot while writing into t.
func (t *DistanceTable[N]) RelaxFrom(prefix float64, v N, w float64, cost CostFunc) bool {
	if math.IsInf(prefix, 1) {
		return false
	}
	cand := cost(prefix, w)
	if cand < t.Get(v) {
		t.dist[v] = cand

		return true
	}

	return false
}

// Clone returns an independent copy of the table.
func (t *DistanceTable[N]) Clone() *DistanceTable[N] {
	out := &DistanceTable[N]{dist: make(map[N]float64, len(t.dist))}
	for k, v := range t.dist {
		out.dist[k] = v
	}

	return out
}

// Len returns the number of vertices with an entry.
func (t *DistanceTable[N]) Len() int { return len(t.dist) }
