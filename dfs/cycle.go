package dfs

import (
	"sort"

	"github.com/katalvlaran/lvlgraph/core"
)

// cycleFrame is one Gray vertex on the cycle-detection stack.
type cycleFrame[N comparable] struct {
	id     N
	arcs   []core.Edge[N]
	next   int
	parent N
	root   bool
	// directed reports whether the arc that entered id was one-way.
	directed bool
	// mirrored is set once the undirected arc back to parent has been skipped.
	mirrored bool
}

// cycleFinder holds the state of one DetectCycles call.
type cycleFinder[N comparable] struct {
	graph  core.Adjacency[N]
	opts   Options[N]
	rank   map[N]int // position in Vertices, used to order cycles
	state  map[N]int
	pos    map[N]int // stack index of every Gray vertex
	stack  []cycleFrame[N]
	seen   map[string]struct{}
	cycles [][]N
}

// DetectCycles reports the cycles closed by back-edges of a DFS over g.
//
// Roots are taken in Vertices order. Directed arcs are followed from their
// source only; an undirected arc straight back to the parent is not a cycle,
// but a second parallel undirected edge is. Self-loops are reported as [v, v].
//
// Every cycle is closed (first == last) and canonical: it starts at the
// vertex that comes first in Vertices, and a cycle made only of undirected
// arcs is read in whichever direction visits the earlier vertex next.
// Cycles are deduplicated and sorted by that same vertex order.
//
// Only the Ctx and FilterNeighbor options apply. A nil graph has no cycles.
//
// Complexity: O(V + E + C·L) for C cycles of average length L.
func DetectCycles[N comparable](g core.Adjacency[N], opts ...Option[N]) (bool, [][]N, error) {
	// 1. Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2. Apply options
	o := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize state; rank fixes the canonical vertex order
	verts := g.Vertices()
	f := &cycleFinder[N]{
		graph: g,
		opts:  o,
		rank:  make(map[N]int, len(verts)),
		state: make(map[N]int, len(verts)),
		pos:   make(map[N]int, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for i, v := range verts {
		f.rank[v] = i
	}

	// 4. Drive the search from every White vertex
	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v); err != nil {
			return false, nil, err
		}
	}

	// 5. Deterministic output order
	sort.Slice(f.cycles, func(i, j int) bool {
		return f.compare(f.cycles[i], f.cycles[j]) < 0
	})
	if len(f.cycles) == 0 {
		return false, nil, nil
	}

	return true, f.cycles, nil
}

// push marks id Gray and opens its frame.
func (f *cycleFinder[N]) push(fr cycleFrame[N]) {
	f.state[fr.id] = Gray
	f.pos[fr.id] = len(f.stack)
	fr.arcs = f.graph.Neighbors(fr.id)
	f.stack = append(f.stack, fr)
}

// visit runs the iterative three-colour DFS rooted at root.
func (f *cycleFinder[N]) visit(root N) error {
	f.push(cycleFrame[N]{id: root, root: true})
	for len(f.stack) > 0 {
		select {
		case <-f.opts.Ctx.Done():
			return f.opts.Ctx.Err()
		default:
		}

		top := &f.stack[len(f.stack)-1]
		if top.next == len(top.arcs) {
			f.state[top.id] = Black
			delete(f.pos, top.id)
			f.stack = f.stack[:len(f.stack)-1]
			continue
		}

		e := top.arcs[top.next]
		top.next++
		if f.opts.FilterNeighbor != nil && !f.opts.FilterNeighbor(top.id, e.To) {
			continue
		}
		if !e.Directed && !top.root && !top.directed && !top.mirrored && e.To == top.parent {
			top.mirrored = true
			continue
		}

		switch f.state[e.To] {
		case White:
			f.push(cycleFrame[N]{id: e.To, parent: top.id, directed: e.Directed})
		case Gray:
			f.record(f.pos[e.To], e.Directed)
		}
	}

	return nil
}

// record stores the cycle from stack index i to the top, closed by an arc
// whose directedness is closing.
func (f *cycleFinder[N]) record(i int, closing bool) {
	seg := make([]N, 0, len(f.stack)-i)
	undirected := !closing
	for j := i; j < len(f.stack); j++ {
		seg = append(seg, f.stack[j].id)
		if j > i && f.stack[j].directed {
			undirected = false
		}
	}

	canon := f.canonical(seg, undirected)
	key := f.signature(canon)
	if _, dup := f.seen[key]; dup {
		return
	}
	f.seen[key] = struct{}{}
	f.cycles = append(f.cycles, canon)
}

// canonical rotates seg to start at its lowest-ranked vertex and closes it.
// An undirected cycle may also be read backwards.
func (f *cycleFinder[N]) canonical(seg []N, undirected bool) []N {
	n := len(seg)
	start := 0
	for j := 1; j < n; j++ {
		if f.rank[seg[j]] < f.rank[seg[start]] {
			start = j
		}
	}

	fwd := make([]N, 0, n+1)
	for j := 0; j < n; j++ {
		fwd = append(fwd, seg[(start+j)%n])
	}
	if undirected && n > 2 {
		back := make([]N, 0, n+1)
		for j := 0; j < n; j++ {
			back = append(back, seg[(start-j+n)%n])
		}
		if f.compare(back, fwd) < 0 {
			fwd = back
		}
	}

	return append(fwd, fwd[0])
}

// compare orders two vertex sequences by rank, shorter first on a tie.
func (f *cycleFinder[N]) compare(a, b []N) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if ra, rb := f.rank[a[i]], f.rank[b[i]]; ra != rb {
			return ra - rb
		}
	}

	return len(a) - len(b)
}

// signature encodes a canonical cycle by vertex ranks.
func (f *cycleFinder[N]) signature(c []N) string {
	b := make([]byte, 0, 4*len(c))
	for _, v := range c {
		r := f.rank[v]
		b = append(b, byte(r>>24), byte(r>>16), byte(r>>8), byte(r))
	}

	return string(b)
}
