package movement

import (
	"github.com/katalvlaran/voxnav/dstarlite"
	"github.com/katalvlaran/voxnav/geom"
)

// Node is a planner vertex: the block an agent's feet occupy while standing.
type Node = geom.BlockPos

type edgeTo = dstarlite.EdgeTo[Node, int]

// EdgeChange is one planner edge whose cost changed. Edge.Cost is the cost the
// terrain last reported (Infinity if it never reported the edge).
type EdgeChange struct {
	Edge    dstarlite.Edge[Node, int]
	NewCost int
}

// Infinity is the cost of an impassable edge.
var Infinity = dstarlite.MaxWeight[int]()

type edgeKey struct{ from, to Node }

// Terrain is the voxel terrain oracle. A node is standable when its block and
// the one above are air and the block below is solid. From a standable node
// the agent may, towards each horizontal neighbour:
//
//   - walk onto it when it is standable;
//   - jump onto the block above it when that is standable and there is head
//     room above the agent;
//   - walk off an edge and fall at most MaxDrop blocks onto a standable block.
//
// Terrain remembers every edge it reported to the planner so that
// BlockChanged and Penalize can hand back the old cost with each change.
type Terrain struct {
	world World
	costs Costs

	known   map[Node][]edgeTo // last reported out-edges per source
	penalty map[edgeKey]int

	// queued changes, at most one per edge
	pending   []EdgeChange
	pendingAt map[edgeKey]int
}

// NewTerrain wraps world with the given move costs.
func NewTerrain(world World, costs Costs) *Terrain {
	return &Terrain{
		world:   world,
		costs:   costs,
		known:   make(map[Node][]edgeTo),
		penalty:   make(map[edgeKey]int),
		pendingAt: make(map[edgeKey]int),
	}
}

// Air reports whether pos has no collision shape.
func (t *Terrain) Air(pos Node) bool { return !Solid(t.world, pos) }

// Standable reports whether an agent can stand with its feet in pos.
func (t *Terrain) Standable(pos Node) bool {
	return t.Air(pos) && t.Air(pos.Above()) && Solid(t.world, pos.Below())
}

// Heuristic is the horizontal Manhattan distance times the cheapest move.
func (t *Terrain) Heuristic(a, b Node) int {
	return t.costs.minStep() * (abs(a.X-b.X) + abs(a.Z-b.Z))
}

// Successors lists the moves out of u and remembers them as reported.
func (t *Terrain) Successors(u Node) []edgeTo {
	out := t.moves(u)
	if len(out) > 0 || t.known[u] != nil {
		t.known[u] = out
	}

	return out
}

// Predecessors lists the nodes with a move into v.
func (t *Terrain) Predecessors(v Node) []edgeTo {
	if !t.Standable(v) {
		return nil
	}
	var out []edgeTo
	for _, d := range geom.Horizontal {
		col := v.Offset(d)
		// walk, ascend into v, then falls from 1..MaxDrop blocks above.
		cands := make([]Node, 0, 2+t.costs.MaxDrop)
		cands = append(cands, col, col.Below())
		for k := 1; k <= t.costs.MaxDrop; k++ {
			cands = append(cands, Node{X: col.X, Y: v.Y + k, Z: col.Z})
		}
		for _, u := range cands {
			for _, e := range t.moves(u) {
				if e.Target == v {
					out = append(out, edgeTo{Target: u, Cost: e.Cost})
					t.remember(u, e)
					break
				}
			}
		}
	}

	return out
}

// Oracle bundles Heuristic, Successors and Predecessors for dstarlite.New.
func (t *Terrain) Oracle() dstarlite.Oracle[Node, int] {
	return dstarlite.Oracle[Node, int]{
		Heuristic:    t.Heuristic,
		Successors:   t.Successors,
		Predecessors: t.Predecessors,
	}
}

// Cost returns the current cost of u → v, or Infinity when no move connects them.
func (t *Terrain) Cost(u, v Node) int {
	for _, e := range t.moves(u) {
		if e.Target == v {
			return e.Cost
		}
	}

	return Infinity
}

// BlockChanged re-derives every edge whose cost can depend on pos and queues
// a change for each one that differs from what was last reported. It returns
// the number of edges found changed; a change that undoes one still queued
// counts but leaves nothing behind.
func (t *Terrain) BlockChanged(pos Node) int {
	changed := 0
	cols := [5]Node{pos}
	for i, d := range geom.Horizontal {
		cols[i+1] = pos.Offset(d)
	}
	// A move out of u reads blocks from u.Y-MaxDrop-1 to u.Y+2 in the
	// column of u and of the neighbour it moves towards.
	for _, c := range cols {
		for y := pos.Y - 2; y <= pos.Y+t.costs.MaxDrop+1; y++ {
			changed += t.refresh(Node{X: c.X, Y: y, Z: c.Z})
		}
	}

	return changed
}

// Penalize adds extra to the cost of u → v, e.g. after the agent failed to
// follow it, and queues the change. Penalties accumulate until ClearPenalties.
func (t *Terrain) Penalize(u, v Node, extra int) {
	if extra <= 0 {
		return
	}
	t.penalty[edgeKey{u, v}] += extra
	t.refresh(u)
}

// ClearPenalties drops every penalty and queues the resulting changes.
func (t *Terrain) ClearPenalties() {
	sources := make([]Node, 0, len(t.penalty))
	for k := range t.penalty {
		sources = append(sources, k.from)
	}
	clear(t.penalty)
	for _, u := range sources {
		t.refresh(u)
	}
}

// Reset forgets every reported edge, penalty and queued change, ready for a
// new planner.
func (t *Terrain) Reset() {
	clear(t.known)
	clear(t.penalty)
	clear(t.pendingAt)
	t.pending = nil
}

// Pending returns the number of queued changes.
func (t *Terrain) Pending() int { return len(t.pending) }

// Changes returns and clears the queued changes.
func (t *Terrain) Changes() []EdgeChange {
	out := t.pending
	t.pending = nil
	clear(t.pendingAt)

	return out
}

// Drain hands every queued change to p and returns how many there were.
// The caller decides when to call p.UpdateFromUpdatedEdges.
func (t *Terrain) Drain(p *dstarlite.Planner[Node, int]) int {
	changes := t.Changes()
	for _, c := range changes {
		p.QueueEdgeUpdate(c.Edge, c.NewCost)
	}

	return len(changes)
}

// refresh compares the fresh out-edges of u with the reported ones and queues
// the differences. It returns how many edges differed.
func (t *Terrain) refresh(u Node) int {
	old := t.known[u]
	fresh := t.moves(u)
	if old == nil && len(fresh) == 0 {
		return 0
	}
	n := 0
	for _, o := range old {
		nc := Infinity
		for _, f := range fresh {
			if f.Target == o.Target {
				nc = f.Cost
				break
			}
		}
		if nc != o.Cost {
			t.queue(u, o.Target, o.Cost, nc)
			n++
		}
	}
	for _, f := range fresh {
		seen := false
		for _, o := range old {
			if o.Target == f.Target {
				seen = true
				break
			}
		}
		if !seen {
			t.queue(u, f.Target, Infinity, f.Cost)
			n++
		}
	}
	t.known[u] = fresh

	return n
}

// queue records u → v going from oldCost to newCost. A second change to an
// edge that is still queued folds into the first: its old cost stays, the new
// cost is replaced, and the entry goes away once both agree.
func (t *Terrain) queue(u, v Node, oldCost, newCost int) {
	key := edgeKey{u, v}
	i, ok := t.pendingAt[key]
	if !ok {
		t.pendingAt[key] = len(t.pending)
		t.pending = append(t.pending, EdgeChange{
			Edge:    dstarlite.Edge[Node, int]{Predecessor: u, Successor: v, Cost: oldCost},
			NewCost: newCost,
		})
		return
	}
	if t.pending[i].Edge.Cost != newCost {
		t.pending[i].NewCost = newCost
		return
	}

	delete(t.pendingAt, key)
	t.pending = append(t.pending[:i], t.pending[i+1:]...)
	for j := i; j < len(t.pending); j++ {
		e := t.pending[j].Edge
		t.pendingAt[edgeKey{e.Predecessor, e.Successor}] = j
	}
}

// remember records a single reported edge u → e.Target.
func (t *Terrain) remember(u Node, e edgeTo) {
	list := t.known[u]
	for i := range list {
		if list[i].Target == e.Target {
			list[i].Cost = e.Cost
			return
		}
	}
	t.known[u] = append(list, e)
}

// moves computes the out-edges of u from the current world, penalties included.
func (t *Terrain) moves(u Node) []edgeTo {
	if !t.Standable(u) {
		return nil
	}
	out := make([]edgeTo, 0, len(geom.Horizontal))
	for _, d := range geom.Horizontal {
		v, c, ok := t.step(u, u.Offset(d))
		if !ok {
			continue
		}
		out = append(out, edgeTo{Target: v, Cost: c + t.penalty[edgeKey{u, v}]})
	}

	return out
}

// step resolves the single move from standable u towards the horizontal
// neighbour n.
func (t *Terrain) step(u, n Node) (Node, int, bool) {
	switch {
	case t.Standable(n):
		return n, t.costs.Walk, true
	case !t.Air(n):
		up := n.Above()
		if t.Standable(up) && t.Air(u.Above().Above()) {
			return up, t.costs.Ascend, true
		}
		return Node{}, 0, false
	case !t.Air(n.Above()):
		return Node{}, 0, false
	}
	// n and the block above are air, the block below is air too: fall.
	for k := 1; k <= t.costs.MaxDrop; k++ {
		c := Node{X: n.X, Y: n.Y - k, Z: n.Z}
		if !t.Air(c) {
			break
		}
		if Solid(t.world, c.Below()) {
			return c, t.costs.Descend + k*t.costs.DescendPerBlock, true
		}
	}

	return Node{}, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
