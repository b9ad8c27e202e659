package gridgraph

import (
	"github.com/katalvlaran/voxnav/dijkstra"
	"github.com/katalvlaran/voxnav/dstarlite"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input so later edits go through SetCell only.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrNegativeValue for negative cells.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, v := range row {
			if v < 0 {
				return nil, ErrNegativeValue
			}
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallThreshold:   opts.WallThreshold,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// From2D is shorthand for NewGridGraph with the default WallThreshold.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Value returns the cell value at p; out-of-bounds cells read as walls.
func (gg *GridGraph) Value(p Point) int {
	if !gg.InBounds(p.X, p.Y) {
		return gg.WallThreshold
	}

	return gg.CellValues[p.Y][p.X]
}

// Passable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] < gg.WallThreshold
}

// Cost returns the cost of entering p: 1 + value, or Infinity for walls.
func (gg *GridGraph) Cost(p Point) int {
	if !gg.Passable(p) {
		return Infinity
	}

	return 1 + gg.CellValues[p.Y][p.X]
}

// Successors lists the passable neighbours of p with their entry cost, in
// NeighborOffsets order.
// Complexity: O(d).
func (gg *GridGraph) Successors(p Point) []dstarlite.EdgeTo[Point, int] {
	out := make([]dstarlite.EdgeTo[Point, int], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if !gg.Passable(n) {
			continue
		}
		out = append(out, dstarlite.EdgeTo[Point, int]{Target: n, Cost: gg.Cost(n)})
	}

	return out
}

// Predecessors lists the in-bounds neighbours of p from which p can be
// entered. A wall has no predecessors; the cost of every edge is Cost(p).
// Complexity: O(d).
func (gg *GridGraph) Predecessors(p Point) []dstarlite.EdgeTo[Point, int] {
	if !gg.Passable(p) {
		return nil
	}
	c := gg.Cost(p)
	out := make([]dstarlite.EdgeTo[Point, int], 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if !gg.InBounds(n.X, n.Y) {
			continue
		}
		out = append(out, dstarlite.EdgeTo[Point, int]{Target: n, Cost: c})
	}

	return out
}

// Arcs adapts Successors to the reference Dijkstra neighbour shape.
func (gg *GridGraph) Arcs(p Point) []dijkstra.Arc[Point] {
	succ := gg.Successors(p)
	out := make([]dijkstra.Arc[Point], len(succ))
	for i, e := range succ {
		out[i] = dijkstra.Arc[Point]{To: e.Target, Weight: int64(e.Cost)}
	}

	return out
}

// Heuristic returns an admissible, consistent estimate between a and b:
// Manhattan distance under Conn4, Chebyshev distance under Conn8. Every step
// costs at least 1, so neither overestimates.
func (gg *GridGraph) Heuristic(a, b Point) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if gg.Conn == Conn8 {
		return max(dx, dy)
	}

	return dx + dy
}

// Oracle bundles Heuristic, Successors and Predecessors for dstarlite.New.
func (gg *GridGraph) Oracle() dstarlite.Oracle[Point, int] {
	return dstarlite.Oracle[Point, int]{
		Heuristic:    gg.Heuristic,
		Successors:   gg.Successors,
		Predecessors: gg.Predecessors,
	}
}

// SetCell replaces the value of (x,y) and returns every edge whose cost
// changed. Since an edge's cost is the cost of entering its successor, those
// are the edges from each in-bounds neighbour into (x,y).
// Returns ErrOutOfBounds or ErrNegativeValue without modifying the grid.
// Complexity: O(d).
func (gg *GridGraph) SetCell(x, y, v int) ([]EdgeChange, error) {
	if !gg.InBounds(x, y) {
		return nil, ErrOutOfBounds
	}
	if v < 0 {
		return nil, ErrNegativeValue
	}

	p := Point{X: x, Y: y}
	oldCost := gg.Cost(p)
	gg.CellValues[y][x] = v
	newCost := gg.Cost(p)
	if oldCost == newCost {
		return nil, nil
	}

	changes := make([]EdgeChange, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Point{X: x + d[0], Y: y + d[1]}
		if !gg.InBounds(n.X, n.Y) {
			continue
		}
		changes = append(changes, EdgeChange{
			Edge:    dstarlite.Edge[Point, int]{Predecessor: n, Successor: p, Cost: oldCost},
			NewCost: newCost,
		})
	}

	return changes, nil
}

// QueueChanges hands every change to the planner's edge-update buffer.
// The caller still decides when to call UpdateFromUpdatedEdges.
func QueueChanges(p *dstarlite.Planner[Point, int], changes []EdgeChange) {
	for _, c := range changes {
		p.QueueEdgeUpdate(c.Edge, c.NewCost)
	}
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
