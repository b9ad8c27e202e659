package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CollideAxis clips a movement of offset along axis so that a, moving,
// stops flush against other. Obstacles that do not overlap a on the two other
// axes, or that lie behind the movement, leave offset unchanged.
func (a AABB) CollideAxis(other AABB, axis Axis, offset float64) float64 {
	u, v := axis.Others()
	if other.Max(u)-a.Min(u) <= Epsilon || a.Max(u)-other.Min(u) <= Epsilon ||
		other.Max(v)-a.Min(v) <= Epsilon || a.Max(v)-other.Min(v) <= Epsilon {
		return offset
	}
	switch {
	case offset > 0 && other.Min(axis) >= a.Max(axis)-Epsilon:
		if d := other.Min(axis) - a.Max(axis); d < offset {
			offset = d
		}
	case offset < 0 && other.Max(axis) <= a.Min(axis)+Epsilon:
		if d := other.Max(axis) - a.Min(axis); d > offset {
			offset = d
		}
	}

	return offset
}

// Collide resolves motion of box against static obstacles one axis at a time:
// Y first, then the horizontal axis with the larger component, then the other.
// It returns the motion actually allowed. Components smaller than Epsilon in
// magnitude are zeroed.
//
// Obstacles should cover box.ExpandTowards(motion); boxes outside that volume
// cannot affect the result.
func Collide(box AABB, motion mgl64.Vec3, obstacles []AABB) mgl64.Vec3 {
	order := [3]Axis{Y, X, Z}
	if math.Abs(motion.X()) < math.Abs(motion.Z()) {
		order = [3]Axis{Y, Z, X}
	}

	var out mgl64.Vec3
	for _, axis := range order {
		off := motion[axis]
		if off == 0 {
			continue
		}
		for _, o := range obstacles {
			off = box.CollideAxis(o, axis, off)
		}
		if math.Abs(off) < Epsilon {
			off = 0
		}
		out[axis] = off
		var step mgl64.Vec3
		step[axis] = off
		box = box.MoveVec(step)
	}

	return out
}
