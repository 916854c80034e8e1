// Package gridgraph treats a 2D grid of cells as an implicit graph, so the
// bfs, dfs and shortestpath packages run over grids unmodified.
//
// What:
//
//   - Grid wraps a rectangular [][]int and implements core.Adjacency[int].
//     Cell (x, y) is vertex y*Width + x; neighbors are generated on demand.
//   - WithCells picks which cells are vertices, WithPassable filters arcs by
//     the values at both ends, WithWeight prices them.
//   - ConnectedComponents and ExpandIsland analyze land regions.
//   - ToCoreGraph materializes the grid as a *core.Graph.
//
// Problems built on the traversal packages, with no grid-specific search:
//
//   - NumIslands, MaxAreaOfIsland, Islands  (dfs.Components)
//   - FloodFill                             (dfs.DFS)
//   - OrangesRotting, WallsAndGates         (bfs.MultiSource)
//   - PacificAtlantic                       (two bfs.MultiSource, uphill)
//   - SwimInWater                           (shortestpath.Dijkstra, Bottleneck cost)
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland:        O(W×H×d×log(W×H)), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - ErrOutOfBounds: a start cell outside the grid.
//
// Input grids are always deep-copied; no function modifies its argument.
package gridgraph
