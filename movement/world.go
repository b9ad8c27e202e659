package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/voxnav/geom"
)

// World exposes the collision shapes of blocks. Shapes returns boxes in
// block-local coordinates ([0,1]³); an empty result is passable air.
type World interface {
	Shapes(pos geom.BlockPos) []geom.AABB
}

// Solid reports whether pos has any collision shape.
func Solid(w World, pos geom.BlockPos) bool {
	return len(w.Shapes(pos)) > 0
}

// Obstacles returns the world-space boxes of every block overlapping region.
func Obstacles(w World, region geom.AABB) []geom.AABB {
	lo := geom.BlockPosOf(region.MinVec().Sub(epsVec))
	hi := geom.BlockPosOf(region.MaxVec().Add(epsVec))
	var out []geom.AABB
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				pos := geom.BlockPos{X: x, Y: y, Z: z}
				for _, s := range w.Shapes(pos) {
					out = append(out, s.MoveVec(pos.Vec()))
				}
			}
		}
	}

	return out
}

var epsVec = mgl64.Vec3{geom.Epsilon, geom.Epsilon, geom.Epsilon}

// MapWorld is an in-memory World keyed by block position.
type MapWorld struct {
	blocks map[geom.BlockPos][]geom.AABB
}

// NewMapWorld returns an empty world: air everywhere.
func NewMapWorld() *MapWorld {
	return &MapWorld{blocks: make(map[geom.BlockPos][]geom.AABB)}
}

// Shapes implements World.
func (w *MapWorld) Shapes(pos geom.BlockPos) []geom.AABB {
	return w.blocks[pos]
}

// Set replaces the shapes at pos; no shapes clears the block.
func (w *MapWorld) Set(pos geom.BlockPos, shapes ...geom.AABB) {
	if len(shapes) == 0 {
		delete(w.blocks, pos)
		return
	}
	w.blocks[pos] = append([]geom.AABB(nil), shapes...)
}

// SetSolid places a full block at pos.
func (w *MapWorld) SetSolid(pos geom.BlockPos) { w.Set(pos, geom.FullBlock()) }

// Clear turns pos into air.
func (w *MapWorld) Clear(pos geom.BlockPos) { w.Set(pos) }

// Fill places full blocks over the inclusive range [from, to].
func (w *MapWorld) Fill(from, to geom.BlockPos) {
	for x := min(from.X, to.X); x <= max(from.X, to.X); x++ {
		for y := min(from.Y, to.Y); y <= max(from.Y, to.Y); y++ {
			for z := min(from.Z, to.Z); z <= max(from.Z, to.Z); z++ {
				w.SetSolid(geom.BlockPos{X: x, Y: y, Z: z})
			}
		}
	}
}

// Len returns the number of non-air blocks.
func (w *MapWorld) Len() int { return len(w.blocks) }

// Bounds returns the smallest block range covering every non-air block.
// ok is false for an empty world.
func (w *MapWorld) Bounds() (lo, hi geom.BlockPos, ok bool) {
	lo = geom.BlockPos{X: math.MaxInt, Y: math.MaxInt, Z: math.MaxInt}
	hi = geom.BlockPos{X: math.MinInt, Y: math.MinInt, Z: math.MinInt}
	for p := range w.blocks {
		lo = geom.BlockPos{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = geom.BlockPos{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}

	return lo, hi, len(w.blocks) > 0
}
