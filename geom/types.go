package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used by Clip and Collide.
const Epsilon = 1.0e-7

// Axis selects one coordinate of a vector or box.
type Axis uint8

const (
	X Axis = iota
	Y
	Z
)

// Axes lists X, Y, Z in index order.
var Axes = [3]Axis{X, Y, Z}

// Choose returns the argument matching a.
func (a Axis) Choose(x, y, z float64) float64 {
	switch a {
	case X:
		return x
	case Y:
		return y
	default:
		return z
	}
}

// Others returns the two axes other than a, in index order.
func (a Axis) Others() (Axis, Axis) {
	switch a {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default:
		return X, Y
	}
}

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// Direction is one of the six face normals.
type Direction uint8

const (
	Down  Direction = iota // -Y
	Up                     // +Y
	North                  // +Z
	South                  // -Z
	West                   // -X
	East                   // +X
)

// Directions lists every face in declaration order.
var Directions = [6]Direction{Down, Up, North, South, West, East}

// Horizontal lists the four faces perpendicular to Y.
var Horizontal = [4]Direction{North, East, South, West}

// Axis returns the axis d is normal to.
func (d Direction) Axis() Axis {
	switch d {
	case Down, Up:
		return Y
	case North, South:
		return Z
	default:
		return X
	}
}

// Positive reports whether d points along the positive half of its axis.
func (d Direction) Positive() bool {
	return d == Up || d == North || d == East
}

// Normal returns the unit offset of d.
func (d Direction) Normal() BlockPos {
	s := -1
	if d.Positive() {
		s = 1
	}
	switch d.Axis() {
	case X:
		return BlockPos{X: s}
	case Y:
		return BlockPos{Y: s}
	default:
		return BlockPos{Z: s}
	}
}

// Opposite returns the face on the other side of the same axis.
func (d Direction) Opposite() Direction {
	return [...]Direction{Up, Down, South, North, East, West}[d]
}

func (d Direction) String() string {
	return [...]string{"down", "up", "north", "south", "west", "east"}[d]
}

// facing returns the face struck by a ray moving along axis with the sign of delta.
func facing(axis Axis, delta float64) Direction {
	pos := delta > 0
	switch axis {
	case X:
		if pos {
			return West
		}
		return East
	case Y:
		if pos {
			return Down
		}
		return Up
	default:
		if pos {
			return South
		}
		return North
	}
}

// BlockPos is an integer voxel coordinate. The block occupies
// [X, X+1) × [Y, Y+1) × [Z, Z+1).
type BlockPos struct {
	X, Y, Z int
}

// BlockPosOf returns the block containing v.
func BlockPosOf(v mgl64.Vec3) BlockPos {
	return BlockPos{
		X: int(math.Floor(v.X())),
		Y: int(math.Floor(v.Y())),
		Z: int(math.Floor(v.Z())),
	}
}

// Add returns p + o.
func (p BlockPos) Add(o BlockPos) BlockPos {
	return BlockPos{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Offset returns the neighbour of p across face d.
func (p BlockPos) Offset(d Direction) BlockPos { return p.Add(d.Normal()) }

// Below returns the block under p.
func (p BlockPos) Below() BlockPos { return BlockPos{X: p.X, Y: p.Y - 1, Z: p.Z} }

// Above returns the block over p.
func (p BlockPos) Above() BlockPos { return BlockPos{X: p.X, Y: p.Y + 1, Z: p.Z} }

// Center returns the centre of the block.
func (p BlockPos) Center() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X) + 0.5, float64(p.Y) + 0.5, float64(p.Z) + 0.5}
}

// BottomCenter returns the centre of the block's floor, where an entity standing
// in the block puts its feet.
func (p BlockPos) BottomCenter() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X) + 0.5, float64(p.Y), float64(p.Z) + 0.5}
}

// Vec returns the block's minimum corner.
func (p BlockPos) Vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(p.X), float64(p.Y), float64(p.Z)}
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// HitResult describes where a segment struck a block.
//
// Location is the impact point, Direction the face struck, BlockPos the block
// the boxes belong to and Box the index of the struck box within the slice
// passed to ClipIterable. Miss is set for a result that records only where the
// segment ended.
type HitResult struct {
	Location  mgl64.Vec3
	Direction Direction
	BlockPos  BlockPos
	Box       int
	Inside    bool
	Miss      bool
}

// MissResult builds the result of a segment that struck nothing; Location is
// the segment end and Direction the face it would have left through.
func MissResult(location mgl64.Vec3, d Direction, pos BlockPos) HitResult {
	return HitResult{Location: location, Direction: d, BlockPos: pos, Box: -1, Miss: true}
}
