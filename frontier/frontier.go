// Package frontier provides the min-priority queue shared by Dijkstra,
// Prim, Kruskal-on-points and the grid problems that need a priority order.
//
// Frontier uses the "lazy decrease-key" approach: when a shorter priority
// for a node is found, the caller pushes a new Entry. The outdated entry
// stays in the heap and the caller skips it when it is popped (by checking
// a visited set or comparing against its distance table).
//
// Ties are broken by insertion order, so runs are reproducible.
//
// Complexity: Push/Pop O(log n), Peek/Len O(1), where n counts stale entries too.
package frontier

import "container/heap"

// Entry is one (priority, node) pair in the frontier.
type Entry[N any] struct {
	Priority float64
	Node     N

	seq uint64 // insertion sequence, breaks priority ties
}

// Frontier is a min-heap of Entry values ordered by Priority ascending.
// The zero value is ready to use. Not safe for concurrent use.
type Frontier[N any] struct {
	items entryHeap[N]
	next  uint64
}

// New returns an empty Frontier with room for capacity entries.
func New[N any](capacity int) *Frontier[N] {
	return &Frontier[N]{items: make(entryHeap[N], 0, capacity)}
}

// Push adds node with the given priority. Duplicates are allowed.
func (f *Frontier[N]) Push(priority float64, node N) {
	heap.Push(&f.items, Entry[N]{Priority: priority, Node: node, seq: f.next})
	f.next++
}

// Pop removes and returns the entry with the smallest priority.
// ok is false when the frontier is empty.
func (f *Frontier[N]) Pop() (e Entry[N], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}

	return heap.Pop(&f.items).(Entry[N]), true
}

// Peek returns the smallest entry without removing it.
func (f *Frontier[N]) Peek() (e Entry[N], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}

	return f.items[0], true
}

// Len returns the number of entries, stale ones included.
func (f *Frontier[N]) Len() int { return len(f.items) }

// entryHeap implements heap.Interface over Entry values.
type entryHeap[N any] []Entry[N]

// Len returns the number of items in the heap.
func (h entryHeap[N]) Len() int { return len(h) }

// Less defines the comparison: smaller priority first, then earlier push.
func (h entryHeap[N]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h entryHeap[N]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (h *entryHeap[N]) Push(x interface{}) { *h = append(*h, x.(Entry[N])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (h *entryHeap[N]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
