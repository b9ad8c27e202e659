package movement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/voxnav/geom"
)

// Raycast finds the first block shape struck by the segment from → to, as
// used for look-ray block selection. When from starts inside a shape the
// result is that block with Inside set. On a miss it returns a Miss result at
// to and ok=false.
func Raycast(w World, from, to mgl64.Vec3) (geom.HitResult, bool) {
	if pos := geom.BlockPosOf(from); Solid(w, pos) {
		for _, s := range w.Shapes(pos) {
			if s.MoveVec(pos.Vec()).Contains(from) {
				return geom.HitResult{Location: from, BlockPos: pos, Inside: true}, true
			}
		}
	}

	span := geom.New(from, to)
	lo, hi := geom.BlockPosOf(span.MinVec()), geom.BlockPosOf(span.MaxVec())
	var (
		best     geom.HitResult
		bestDist = math.Inf(1)
		found    bool
	)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			for z := lo.Z; z <= hi.Z; z++ {
				pos := geom.BlockPos{X: x, Y: y, Z: z}
				shapes := w.Shapes(pos)
				if len(shapes) == 0 {
					continue
				}
				boxes := make([]geom.AABB, len(shapes))
				for i, s := range shapes {
					boxes[i] = s.MoveVec(pos.Vec())
				}
				hit, ok := geom.ClipIterable(boxes, from, to, pos)
				if !ok {
					continue
				}
				if d := hit.Location.Sub(from).Len(); d < bestDist {
					best, bestDist, found = hit, d, true
				}
			}
		}
	}
	if !found {
		return geom.MissResult(to, exitFace(to.Sub(from)), geom.BlockPosOf(to)), false
	}

	return best, true
}

// exitFace is the face a segment with the given delta leaves a block through
// along its dominant axis.
func exitFace(delta mgl64.Vec3) geom.Direction {
	axis := geom.X
	for _, a := range geom.Axes {
		if math.Abs(delta[a]) > math.Abs(delta[axis]) {
			axis = a
		}
	}
	pos := delta[axis] >= 0
	switch axis {
	case geom.X:
		if pos {
			return geom.East
		}
		return geom.West
	case geom.Y:
		if pos {
			return geom.Up
		}
		return geom.Down
	default:
		if pos {
			return geom.North
		}
		return geom.South
	}
}
