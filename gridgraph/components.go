package gridgraph

const unlabelled = -1

// ConnectedComponents groups the open cells into regions that reach each
// other under gg.Conn. Components are numbered in row-major order of their
// first cell; each lists row-major cell indices in breadth-first order from
// that cell. Use Coordinate to turn an index back into (x, y).
//
// Time: O(W·H·d), d = 4 or 8. Memory: O(W·H).
func (gg *GridGraph) ConnectedComponents() [][]int {
	comps, _ := gg.components()
	return comps
}

// Reachable reports whether a and b are open cells of the same component.
func (gg *GridGraph) Reachable(a, b Point) bool {
	if !gg.Passable(a) || !gg.Passable(b) {
		return false
	}
	_, label := gg.components()

	return label[gg.index(a.X, a.Y)] == label[gg.index(b.X, b.Y)]
}

// components floods every open cell once and returns the regions together
// with the component id of each cell (unlabelled for walls).
func (gg *GridGraph) components() ([][]int, []int) {
	label := make([]int, gg.Width*gg.Height)
	for i := range label {
		label[i] = unlabelled
	}

	var comps [][]int
	for i := range label {
		x, y := gg.Coordinate(i)
		if label[i] != unlabelled || !gg.Passable(Point{X: x, Y: y}) {
			continue
		}
		comps = append(comps, gg.flood(i, len(comps), label))
	}

	return comps, label
}

// flood labels the region around start with id and returns its cells.
func (gg *GridGraph) flood(start, id int, label []int) []int {
	label[start] = id
	region := []int{start}
	for head := 0; head < len(region); head++ {
		cx, cy := gg.Coordinate(region[head])
		for _, off := range gg.neighborOffsets {
			n := Point{X: cx + off[0], Y: cy + off[1]}
			if !gg.Passable(n) {
				continue
			}
			if ni := gg.index(n.X, n.Y); label[ni] == unlabelled {
				label[ni] = id
				region = append(region, ni)
			}
		}
	}

	return region
}
