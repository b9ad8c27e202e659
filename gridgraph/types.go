// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/voxnav.
package gridgraph

import "github.com/katalvlaran/voxnav/dstarlite"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a grid coordinate; it is the planner vertex type for grids.
type Point struct {
	X, Y int
}

// Less orders points row-major (Y, then X). Useful as a planner tie-break rule.
func (p Point) Less(o Point) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}

	return p.X < o.X
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// WallThreshold specifies the minimum cell value considered a wall.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=1 (0 = open, anything else = wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 1,
		Conn:          Conn4,
	}
}

// EdgeChange is one edge whose cost changed after SetCell. Edge.Cost holds the
// old cost (Infinity when the edge did not exist), NewCost the current one.
type EdgeChange struct {
	Edge    dstarlite.Edge[Point, int]
	NewCost int
}

// Infinity is the cost reported for edges into walls.
var Infinity = dstarlite.MaxWeight[int]()

// GridGraph treats a 2D integer grid as a graph.
// Width and Height define dimensions; CellValues[y][x] holds the current value.
// Conn and WallThreshold are set from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	WallThreshold   int
	neighborOffsets [][2]int
}
