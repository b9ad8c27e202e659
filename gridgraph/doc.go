// Package gridgraph treats a 2D grid of cells as a terrain oracle for the
// incremental planner and the reference Dijkstra search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable WallThreshold.
//   - Cells with value ≥ WallThreshold are walls; entering an open cell costs 1 + value.
//   - Successors / Predecessors / Heuristic plug straight into dstarlite.Oracle;
//     Arcs plugs into dijkstra.Dijkstra.
//   - SetCell edits the grid and reports every edge whose cost changed, ready to
//     be queued into a planner.
//   - Identifies connected components of open cells, a cheap reachability check.
//   - Breach names the fewest walls to clear when the goal is sealed off.
//
// Why:
//
//   - Mazes and weighted cost maps are the smallest terrain on which incremental
//     replanning can be checked against a from-scratch search.
//
// Complexity:
//
//   - Successors, Predecessors:  O(d), d = 4 or 8.
//   - SetCell:                   O(d).
//   - ConnectedComponents:       O(W×H×d), Memory: O(W×H).
//   - Breach:                    O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.WallThreshold: minimum value considered a wall.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have different lengths.
//   - ErrNegativeValue:  a cell value is negative.
//   - ErrOutOfBounds:    SetCell or Breach coordinates lie outside the grid.
package gridgraph
