// Package dstarlite implements D* Lite, an incremental shortest-path planner
// that keeps a live route from a moving start vertex to a fixed goal over a
// graph whose edge costs change while the agent travels.
//
// Overview:
//
//   - The search runs backwards, from the goal towards the start, so every
//     vertex carries a g-score (cost-to-goal) and an rhs-score (one-step
//     lookahead built from its successors). A vertex is consistent when g == rhs;
//     the open queue holds exactly the inconsistent vertices.
//   - When the agent moves, the accumulated key modifier k_m absorbs the
//     heuristic drift, so keys already in the queue stay valid lower bounds.
//   - When edge costs change, only the rhs-scores of the affected vertices are
//     revised and the main loop repairs the estimate locally. This is what makes
//     the planner cheaper than running Dijkstra or A* again every tick.
//
// The planner never stores the graph. It asks a caller-supplied Oracle for
// successors, predecessors and heuristic values on demand, and keeps only the
// scores of the vertices it has discovered.
//
// Caller contract:
//
//   - The heuristic must be admissible and consistent (never overestimate, obey
//     the triangle inequality). This is not checked; an invalid heuristic breaks
//     optimality and may keep the main loop from terminating.
//   - Edge costs must be non-negative.
//   - Cost changes are queued with QueueEdgeUpdate after the oracle already
//     reports the new cost, and drained by UpdateFromUpdatedEdges in one call.
//   - A Planner is not safe for concurrent use. All calls must come from one
//     logical thread (e.g. the bot's control loop).
//
// Errors:
//
//   - ErrNoPath:          the goal is currently unreachable from the start.
//   - ErrNilHeuristic,
//     ErrNilSuccessors,
//     ErrNilPredecessors: the Oracle passed to New is incomplete.
//   - ErrNoSuccessors:    used as the panic value when the oracle reports no
//     successor at a non-goal start with a finite rhs. That is an oracle bug.
//
// Example usage:
//
//	p, err := dstarlite.New(start, goal, oracle)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for {
//	    next, ok, err := p.TryNext()
//	    if err != nil || !ok {
//	        break
//	    }
//	    walkTo(next)
//	}
//
// Reference: S. Koenig, M. Likhachev, "Fast Replanning for Navigation in
// Unknown Terrain", IEEE Transactions on Robotics, 2005 (optimized version).
package dstarlite
