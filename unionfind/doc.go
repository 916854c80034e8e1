// Package unionfind provides a generic disjoint-set forest used by Kruskal,
// Kruskal-on-points and cycle checks over undirected edge lists.
//
// What:
//
//   - Find(x) returns the canonical representative of x's set. The path from
//     x to the root is flattened to depth 1 on every call (iterative, no recursion).
//   - Union(x, y) merges two sets and returns true, or returns false when x
//     and y already share a root. A false result means the edge (x, y) would
//     close a cycle.
//   - Sets are merged by size: the smaller tree goes under the larger root;
//     on a tie y's root becomes the new root.
//
// Why:
//
//   - Every call builds its own DisjointSet, so nothing is shared between queries.
//   - Unknown nodes are registered lazily by Find, so callers can stream edges
//     without declaring the vertex set up front.
//
// Complexity:
//
//   - Find/Union: amortized O(α(n)).
//   - Space: O(n).
//
// Helpers ValidTree and HasCycle cover the usual edge-list questions.
package unionfind
