package unionfind

// DisjointSet is a union-find forest over comparable node identifiers.
// Not safe for concurrent use.
type DisjointSet[N comparable] struct {
	parent map[N]N
	size   map[N]int
	sets   int
}

// New creates a DisjointSet with every given node as its own singleton set.
func New[N comparable](nodes ...N) *DisjointSet[N] {
	d := &DisjointSet[N]{
		parent: make(map[N]N, len(nodes)),
		size:   make(map[N]int, len(nodes)),
	}
	for _, n := range nodes {
		d.add(n)
	}

	return d
}

// add registers n as a singleton if it is unknown.
func (d *DisjointSet[N]) add(n N) {
	if _, ok := d.parent[n]; ok {
		return
	}
	d.parent[n] = n
	d.size[n] = 1
	d.sets++
}

// Find returns the representative of x, registering x as a singleton if it
// was never seen. Every node on the path is re-pointed at the root.
func (d *DisjointSet[N]) Find(x N) N {
	d.add(x)

	// 1) Walk up to the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// 2) Second pass: compress the path to depth 1.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y. It returns false when they were already
// in the same set.
func (d *DisjointSet[N]) Union(x, y N) bool {
	p1, p2 := d.Find(x), d.Find(y)
	if p1 == p2 {
		return false
	}

	if d.size[p1] > d.size[p2] {
		d.parent[p2] = p1
		d.size[p1] += d.size[p2]
	} else {
		d.parent[p1] = p2
		d.size[p2] += d.size[p1]
	}
	d.sets--

	return true
}

// Connected reports whether x and y share a representative.
func (d *DisjointSet[N]) Connected(x, y N) bool {
	return d.Find(x) == d.Find(y)
}

// Count returns the number of disjoint sets.
func (d *DisjointSet[N]) Count() int { return d.sets }

// Len returns the number of registered nodes.
func (d *DisjointSet[N]) Len() int { return len(d.parent) }

// SizeOf returns the number of nodes in x's set.
func (d *DisjointSet[N]) SizeOf(x N) int {
	return d.size[d.Find(x)]
}
