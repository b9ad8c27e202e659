// Package dijkstra provides a generic implementation of Dijkstra's
// shortest-path algorithm over graphs described by a neighbour function,
// with non-negative integer arc weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - The graph is given as func(N) []Arc[N], the same on-demand shape the
//     incremental planner consumes, so any terrain oracle can be checked against
//     a from-scratch search.
//   - Supports optional path reconstruction, distance caps, and “impassable” arc thresholds.
//
// When to use:
//
//   - As the reference answer when verifying incremental replanning: after any
//     sequence of cost changes the planner's route cost must equal the distance
//     reported here on the mutated graph.
//   - As a full-replanning baseline in benchmarks.
//
// Error handling (sentinel errors):
//
//   - ErrNilNeighbors:    the neighbour function is nil.
//   - ErrNegativeWeight:  a negative arc weight was met during relaxation.
//   - ErrBadMaxDistance:  raised (via panic) by WithMaxDistance for negative caps.
//   - ErrBadInfThreshold: raised (via panic) by WithInfEdgeThreshold for values ≤ 0.
//
// Thread safety:
//
//   - Dijkstra keeps all state local to one call. The neighbour function must
//     not be mutated concurrently with a call.
package dijkstra
