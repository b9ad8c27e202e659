package dstarlite

// Planner maintains a shortest-path estimate from a moving start vertex to a
// fixed goal. Create it with New; it is not safe for concurrent use.
type Planner[N comparable, W Weight] struct {
	oracle Oracle[N, W]

	start     N // current agent vertex; advanced by TryNext
	startLast N // start at the last UpdateFromUpdatedEdges call
	goal      N

	queue  *openQueue[N, W]
	km     W
	scores map[N]VertexScore[W]

	// pending edge-cost changes, drained newest first; pendingAt indexes
	// them by (predecessor, successor)
	pending   []edgeUpdate[N, W]
	pendingAt map[edgeKey[N]]int

	inf      W
	tieBreak func(a, b N) bool
	stats    Stats
}

type edgeKey[N comparable] struct{ from, to N }

// edgeUpdate pairs an edge (carrying its old cost) with the new cost.
type edgeUpdate[N comparable, W Weight] struct {
	edge    Edge[N, W]
	newCost W
}

// New creates a planner for one goal, seeds rhs(goal) = 0 and runs the main
// loop to convergence before returning.
//
// Returns ErrNilHeuristic, ErrNilSuccessors or ErrNilPredecessors when the
// oracle is incomplete. An unreachable goal is not an error here; it shows up
// as ErrNoPath from TryNext.
//
// Complexity: O(V log V + E) for the initial search over the V vertices and E
// edges the search touches.
func New[N comparable, W Weight](start, goal N, oracle Oracle[N, W], opts ...Option[N, W]) (*Planner[N, W], error) {
	// 1) Validate the oracle before touching any state.
	if err := oracle.validate(); err != nil {
		return nil, err
	}

	// 2) Apply options over the defaults.
	cfg := DefaultOptions[N, W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Planner[N, W]{
		oracle:    oracle,
		start:     start,
		startLast: start,
		goal:      goal,
		queue:     newOpenQueue[N, W](cfg.QueueCapacity),
		scores:    make(map[N]VertexScore[W]),
		inf:       cfg.Infinity,
		tieBreak:  cfg.TieBreak,
	}

	// 3) rhs(goal) = 0, g(goal) = ∞; the goal is the only inconsistent vertex.
	var zero W
	p.scores[goal] = VertexScore[W]{G: p.inf, RHS: zero}
	p.queue.push(goal, Priority[W]{K1: p.clampHeuristic(oracle.Heuristic(start, goal)), K2: zero})

	// 4) Converge.
	p.computeShortestPath()

	return p, nil
}

// Start returns the vertex the agent currently occupies.
func (p *Planner[N, W]) Start() N { return p.start }

// Goal returns the fixed goal vertex.
func (p *Planner[N, W]) Goal() N { return p.goal }

// Infinity returns the sentinel used for unreachable scores.
func (p *Planner[N, W]) Infinity() W { return p.inf }

// Score returns the (g, rhs) pair of n; undiscovered vertices score (∞, ∞).
func (p *Planner[N, W]) Score(n N) VertexScore[W] {
	if s, ok := p.scores[n]; ok {
		return s
	}

	return VertexScore[W]{G: p.inf, RHS: p.inf}
}

// Consistent reports whether g(n) == rhs(n).
func (p *Planner[N, W]) Consistent(n N) bool {
	s := p.Score(n)
	return s.G == s.RHS
}

// Cost returns the current estimate of the cost from start to goal, or the
// infinity sentinel when the goal is unreachable.
func (p *Planner[N, W]) Cost() W { return p.Score(p.start).RHS }

// QueueLen returns the number of inconsistent vertices waiting in the open queue.
func (p *Planner[N, W]) QueueLen() int { return p.queue.Len() }

// Stats returns the work counters.
func (p *Planner[N, W]) Stats() Stats { return p.stats }

// ResetStats zeroes the work counters.
func (p *Planner[N, W]) ResetStats() { p.stats = Stats{} }

// CalculateKey returns the priority key of s under the current start and k_m.
func (p *Planner[N, W]) CalculateKey(s N) Priority[W] {
	score := p.Score(s)
	m := min(score.G, score.RHS)
	if m == p.inf {
		return Priority[W]{K1: p.inf, K2: p.inf}
	}

	return Priority[W]{
		K1: p.add(p.add(m, p.clampHeuristic(p.oracle.Heuristic(p.start, s))), p.km),
		K2: m,
	}
}

// UpdateVertex brings the queue membership of u in line with its consistency:
// inconsistent vertices are (re)keyed into the queue, consistent ones leave it.
func (p *Planner[N, W]) UpdateVertex(u N) {
	s := p.Score(u)
	switch {
	case s.G != s.RHS:
		// push inserts or re-keys in place.
		p.queue.push(u, p.CalculateKey(u))
	case p.queue.contains(u):
		p.queue.remove(u)
	}
}

// QueueEdgeUpdate buffers an edge-cost change. edge.Cost must be the cost the
// planner was previously shown for the edge (the infinity sentinel if the edge
// did not exist); newCost is what the oracle reports now.
// Nothing is recomputed until UpdateFromUpdatedEdges is called.
//
// Repeated changes to the same edge within one batch collapse into one: the
// first old cost is kept and the latest new cost wins. A change that ends where
// it started is dropped.
func (p *Planner[N, W]) QueueEdgeUpdate(edge Edge[N, W], newCost W) {
	if p.pendingAt == nil {
		p.pendingAt = make(map[edgeKey[N]]int)
	}
	key := edgeKey[N]{edge.Predecessor, edge.Successor}
	i, ok := p.pendingAt[key]
	if !ok {
		if edge.Cost == newCost {
			return
		}
		p.pendingAt[key] = len(p.pending)
		p.pending = append(p.pending, edgeUpdate[N, W]{edge: edge, newCost: newCost})
		return
	}
	if p.pending[i].edge.Cost != newCost {
		p.pending[i].newCost = newCost
		return
	}

	// Back to the cost the planner was shown: drop it, moving the newest
	// entry into the hole.
	delete(p.pendingAt, key)
	last := len(p.pending) - 1
	if i != last {
		moved := p.pending[last]
		p.pending[i] = moved
		p.pendingAt[edgeKey[N]{moved.edge.Predecessor, moved.edge.Successor}] = i
	}
	p.pending = p.pending[:last]
}

// PendingUpdates returns the number of buffered edge-cost changes.
func (p *Planner[N, W]) PendingUpdates() int { return len(p.pending) }

// UpdateFromUpdatedEdges absorbs the agent's movement since the last call into
// k_m, drains every buffered edge change (newest first), and re-runs the main
// loop to re-converge.
//
// For an edge u → v only rhs(u) can change, since rhs is built from outgoing
// edges:
//
//   - cost decreased: rhs(u) = min(rhs(u), c_new + g(v));
//   - cost increased and rhs(u) was derived through this edge
//     (rhs(u) == c_old + g(v)): rhs(u) is rebuilt from all successors of u.
//
// The goal keeps rhs = 0 in both cases.
func (p *Planner[N, W]) UpdateFromUpdatedEdges() {
	// 1) The start moved: every queued key is now an over-estimate by at most
	//    h(start_last, start), so accumulate that instead of re-keying the queue.
	p.km = p.add(p.km, p.clampHeuristic(p.oracle.Heuristic(p.start, p.startLast)))
	p.startLast = p.start

	// 2) Drain the buffer, newest submission first.
	for len(p.pending) > 0 {
		last := len(p.pending) - 1
		upd := p.pending[last]
		p.pending = p.pending[:last]
		delete(p.pendingAt, edgeKey[N]{upd.edge.Predecessor, upd.edge.Successor})
		p.stats.Updates++

		u, v := upd.edge.Predecessor, upd.edge.Successor
		cOld, cNew := upd.edge.Cost, upd.newCost
		if u != p.goal {
			gv := p.Score(v).G
			us := p.Score(u)
			if cOld > cNew {
				if cand := p.add(cNew, gv); cand < us.RHS {
					us.RHS = cand
					p.scores[u] = us
				}
			} else if us.RHS == p.add(cOld, gv) {
				p.setRHS(u, p.bestSuccessorCost(u))
			}
		}
		p.UpdateVertex(u)
	}

	// 3) Repair.
	p.computeShortestPath()
}

// TryNext moves the start one step along the current best route and returns
// the new start.
//
// Returns:
//
//   - (next, true, nil) after a successful step;
//   - (zero, false, nil) when start == goal (arrived);
//   - (zero, false, ErrNoPath) when rhs(start) is infinite; start is unchanged.
//
// Among successors s of start it picks the one minimising c(start, s) + g(s),
// keeping the first in oracle enumeration order on ties unless a TieBreak
// option was supplied. An empty successor list at a reachable non-goal start
// panics with ErrNoSuccessors.
func (p *Planner[N, W]) TryNext() (N, bool, error) {
	var zero N
	if p.start == p.goal {
		return zero, false, nil
	}
	if p.Score(p.start).RHS == p.inf {
		return zero, false, ErrNoPath
	}

	next, ok := p.bestSuccessor(p.start)
	if !ok {
		panic(ErrNoSuccessors)
	}
	p.start = next

	return next, true, nil
}

// MoveTo relocates the start to n without stepping along an edge, e.g. after
// the agent was pushed off its route. The next UpdateFromUpdatedEdges call
// folds the displacement into k_m and repairs the estimate; call it before the
// next TryNext.
func (p *Planner[N, W]) MoveTo(n N) { p.start = n }

// Path returns the remaining route from start to goal (start excluded) that
// repeated TryNext calls would follow, without moving the start.
// At most limit vertices are returned when limit > 0.
//
// Returns ErrNoPath if the goal is unreachable or the greedy walk revisits a
// vertex (the estimate is not converged along the route).
func (p *Planner[N, W]) Path(limit int) ([]N, error) {
	if p.start != p.goal && p.Score(p.start).RHS == p.inf {
		return nil, ErrNoPath
	}

	path := make([]N, 0)
	seen := map[N]struct{}{p.start: {}}
	cur := p.start
	for cur != p.goal {
		if limit > 0 && len(path) >= limit {
			break
		}
		next, ok := p.bestSuccessor(cur)
		if !ok || p.Score(next).G == p.inf {
			return path, ErrNoPath
		}
		if _, dup := seen[next]; dup {
			return path, ErrNoPath
		}
		seen[next] = struct{}{}
		path = append(path, next)
		cur = next
	}

	return path, nil
}

// computeShortestPath is the main loop. It runs while the top key is below
// key(start) or start is underconsistent, and always converges under an
// admissible, consistent heuristic.
func (p *Planner[N, W]) computeShortestPath() {
	for {
		// 1) Loop condition.
		_, kTop, ok := p.queue.peek()
		if !ok {
			return
		}
		ss := p.Score(p.start)
		if !kTop.Less(p.CalculateKey(p.start)) && !(ss.RHS > ss.G) {
			return
		}

		// 2) Pop u; if its key went stale since it was queued, re-key and retry.
		u, kOld := p.queue.pop()
		kNew := p.CalculateKey(u)
		if kOld.Less(kNew) {
			p.queue.push(u, kNew)
			p.stats.Reinserted++
			continue
		}
		p.stats.Expanded++

		us := p.Score(u)
		if us.G > us.RHS {
			// 3) Overconsistent: u becomes locally optimal.
			us.G = us.RHS
			p.scores[u] = us
			for _, e := range p.oracle.Predecessors(u) {
				s := e.Target
				if s != p.goal {
					ps := p.Score(s)
					if cand := p.add(e.Cost, us.G); cand < ps.RHS {
						ps.RHS = cand
						p.scores[s] = ps
					}
				}
				p.UpdateVertex(s)
			}
			continue
		}

		// 4) Underconsistent: drop g(u) to ∞ and re-derive every rhs that
		//    depended on the old g(u), u itself included.
		gOld := us.G
		us.G = p.inf
		p.scores[u] = us
		preds := p.oracle.Predecessors(u)
		preds = append(preds[:len(preds):len(preds)], EdgeTo[N, W]{Target: u})
		for _, e := range preds {
			s := e.Target
			if s != p.goal && (s == u || p.Score(s).RHS == p.add(e.Cost, gOld)) {
				p.setRHS(s, p.bestSuccessorCost(s))
			}
			p.UpdateVertex(s)
		}
	}
}

// bestSuccessor returns the successor of n minimising c(n, s) + g(s).
// ok is false when n has no successors.
func (p *Planner[N, W]) bestSuccessor(n N) (best N, ok bool) {
	bestCost := p.inf
	for _, e := range p.oracle.Successors(n) {
		c := p.add(e.Cost, p.Score(e.Target).G)
		switch {
		case !ok:
			best, bestCost, ok = e.Target, c, true
		case c < bestCost:
			best, bestCost = e.Target, c
		case c == bestCost && p.tieBreak != nil && p.tieBreak(e.Target, best):
			best = e.Target
		}
	}

	return best, ok
}

// bestSuccessorCost returns min over successors s' of n of c(n, s') + g(s').
func (p *Planner[N, W]) bestSuccessorCost(n N) W {
	p.stats.Recomputed++
	lowest := p.inf
	for _, e := range p.oracle.Successors(n) {
		if c := p.add(e.Cost, p.Score(e.Target).G); c < lowest {
			lowest = c
		}
	}

	return lowest
}

// setRHS stores rhs(n) keeping g(n).
func (p *Planner[N, W]) setRHS(n N, rhs W) {
	s := p.Score(n)
	s.RHS = rhs
	p.scores[n] = s
}

// add is saturating addition: ∞ absorbs everything and sums that would pass
// the sentinel clamp to it. Costs are non-negative.
func (p *Planner[N, W]) add(a, b W) W {
	if a == p.inf || b == p.inf {
		return p.inf
	}
	if b > 0 && a > p.inf-b {
		return p.inf
	}

	return a + b
}

// clampHeuristic keeps heuristic values within [0, ∞].
func (p *Planner[N, W]) clampHeuristic(h W) W {
	if h > p.inf {
		return p.inf
	}

	return h
}
