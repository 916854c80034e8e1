package unionfind

// ValidTree reports whether the undirected edges over nodes 0..n-1 form a
// single tree: exactly n-1 edges, no cycle, everything connected.
func ValidTree(n int, edges [][2]int) bool {
	if n <= 0 || len(edges) != n-1 {
		return false
	}

	d := New[int]()
	for i := 0; i < n; i++ {
		d.add(i)
	}
	for _, e := range edges {
		if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
			return false
		}
		if !d.Union(e[0], e[1]) {
			return false
		}
	}

	return d.Count() == 1
}

// HasCycle reports whether the undirected edge list closes a cycle.
// The first edge whose endpoints already share a set is returned as witness.
func HasCycle[N comparable](edges [][2]N) (bool, [2]N) {
	d := New[N]()
	for _, e := range edges {
		if !d.Union(e[0], e[1]) {
			return true, e
		}
	}

	var none [2]N

	return false, none
}
