package gridgraph

import (
	"container/list"
)

// Breach finds the fewest walls that must be cleared for from to reach to
// under gg.Conn. It returns those walls in route order; an empty result means
// to is already reachable. Clearing them (SetCell to any open value) and
// queueing the reported changes is enough to turn ErrNoPath into a route.
//
// Behavior:
//  1. Validate both endpoints.
//  2. 0–1 BFS from from over every in-bounds cell:
//     • entering an open cell costs 0 (pushed to the front);
//     • entering a wall costs 1 (pushed to the back).
//  3. Stop at the first pop of to and walk the predecessors back.
//
// Among routes with the same wall count the one found first wins; route
// length is not minimised.
//
// Complexity: O(W·H·d). Memory: O(W·H) for distance and predecessor slices.
func (gg *GridGraph) Breach(from, to Point) ([]Point, error) {
	if !gg.InBounds(from.X, from.Y) || !gg.InBounds(to.X, to.Y) {
		return nil, ErrOutOfBounds
	}

	const inf = int(^uint(0) >> 1)
	n := gg.Width * gg.Height
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := gg.index(from.X, from.Y), gg.index(to.X, to.Y)
	dist[src] = gg.wallCost(from)
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := gg.Coordinate(u)
		for _, d := range gg.neighborOffsets {
			v := Point{X: ux + d[0], Y: uy + d[1]}
			if !gg.InBounds(v.X, v.Y) {
				continue
			}
			vi := gg.index(v.X, v.Y)
			step := gg.wallCost(v)
			if nd := dist[u] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = u
				if step == 0 {
					dq.PushFront(vi)
				} else {
					dq.PushBack(vi)
				}
			}
		}
	}

	walls := make([]Point, 0, dist[dst])
	for at := dst; at >= 0; at = prev[at] {
		x, y := gg.Coordinate(at)
		if p := (Point{X: x, Y: y}); !gg.Passable(p) {
			walls = append(walls, p)
		}
	}
	for i, j := 0, len(walls)-1; i < j; i, j = i+1, j-1 {
		walls[i], walls[j] = walls[j], walls[i]
	}

	return walls, nil
}

// wallCost is 1 for a wall and 0 for an open cell.
func (gg *GridGraph) wallCost(p Point) int {
	if gg.Passable(p) {
		return 0
	}

	return 1
}
