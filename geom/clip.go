package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Clip intersects the segment from → to with a and returns the first impact
// point and the face struck. ok is false on a miss, including when from lies
// exactly on the face the segment would enter through.
//
// Every axis whose delta exceeds Epsilon in magnitude is tested against the
// face the segment approaches; the crossing with the smallest parameter
// t ∈ (0, 1) whose other two coordinates fall within the face (widened by
// Epsilon) wins.
func (a AABB) Clip(from, to mgl64.Vec3) (mgl64.Vec3, Direction, bool) {
	delta := to.Sub(from)
	t := 1.0
	dir, ok := a.clipFaces(from, delta, &t)
	if !ok {
		return mgl64.Vec3{}, 0, false
	}

	return from.Add(delta.Mul(t)), dir, true
}

// ClipIterable clips the segment against every box and returns the closest
// hit. The boxes are expected in world coordinates; pos is recorded as the
// block they belong to and HitResult.Box as the index of the struck box.
// It returns ok=false when no box is struck.
func ClipIterable(boxes []AABB, from, to mgl64.Vec3, pos BlockPos) (HitResult, bool) {
	delta := to.Sub(from)
	t := 1.0
	res := HitResult{BlockPos: pos, Box: -1}
	for i, box := range boxes {
		if d, ok := box.clipFaces(from, delta, &t); ok {
			res.Direction, res.Box = d, i
		}
	}
	if res.Box < 0 {
		return HitResult{}, false
	}
	res.Location = from.Add(delta.Mul(t))

	return res, true
}

// clipFaces tests the up to three faces of a that a segment starting at from
// with the given delta can enter through. When a crossing beats *t, *t is
// lowered and the struck face returned with ok=true.
func (a AABB) clipFaces(from, delta mgl64.Vec3, t *float64) (dir Direction, ok bool) {
	for _, axis := range Axes {
		d := delta[axis]
		if math.Abs(d) <= Epsilon {
			continue
		}
		plane := a.Min(axis)
		if d < 0 {
			plane = a.Max(axis)
		}
		if a.clipPlane(axis, plane, from, delta, t) {
			dir, ok = facing(axis, d), true
		}
	}

	return dir, ok
}

// clipPlane tests the crossing of the plane axis = plane at parameter
// tc = (plane - from[axis]) / delta[axis]; the crossing counts when
// 0 < tc < *t and the other two coordinates from + tc·delta lie within the
// box widened by Epsilon.
func (a AABB) clipPlane(axis Axis, plane float64, from, delta mgl64.Vec3, t *float64) bool {
	tc := (plane - from[axis]) / delta[axis]
	if !(0 < tc && tc < *t) {
		return false
	}
	u, v := axis.Others()
	pu := from[u] + tc*delta[u]
	pv := from[v] + tc*delta[v]
	if pu <= a.Min(u)-Epsilon || pu >= a.Max(u)+Epsilon ||
		pv <= a.Min(v)-Epsilon || pv >= a.Max(v)+Epsilon {
		return false
	}
	*t = tc

	return true
}
