package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned box. Boxes produced by Intersect on disjoint inputs
// may be inverted (Min > Max on some axis); check with Empty before relying on
// positive extents.
type AABB struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// New returns the box spanned by two opposite corners in any order.
func New(a, b mgl64.Vec3) AABB {
	return AABB{
		MinX: math.Min(a.X(), b.X()), MinY: math.Min(a.Y(), b.Y()), MinZ: math.Min(a.Z(), b.Z()),
		MaxX: math.Max(a.X(), b.X()), MaxY: math.Max(a.Y(), b.Y()), MaxZ: math.Max(a.Z(), b.Z()),
	}
}

// OfSize returns a box of extents (dx, dy, dz) centred on center.
func OfSize(center mgl64.Vec3, dx, dy, dz float64) AABB {
	return AABB{
		MinX: center.X() - dx/2, MinY: center.Y() - dy/2, MinZ: center.Z() - dz/2,
		MaxX: center.X() + dx/2, MaxY: center.Y() + dy/2, MaxZ: center.Z() + dz/2,
	}
}

// FullBlock returns the unit cube [0,1)³, the shape of a solid block in
// block-local coordinates.
func FullBlock() AABB {
	return AABB{MaxX: 1, MaxY: 1, MaxZ: 1}
}

// MinVec returns the minimum corner.
func (a AABB) MinVec() mgl64.Vec3 { return mgl64.Vec3{a.MinX, a.MinY, a.MinZ} }

// MaxVec returns the maximum corner.
func (a AABB) MaxVec() mgl64.Vec3 { return mgl64.Vec3{a.MaxX, a.MaxY, a.MaxZ} }

// Min returns the lower bound on axis.
func (a AABB) Min(axis Axis) float64 { return axis.Choose(a.MinX, a.MinY, a.MinZ) }

// Max returns the upper bound on axis.
func (a AABB) Max(axis Axis) float64 { return axis.Choose(a.MaxX, a.MaxY, a.MaxZ) }

// Contract shrinks the box from the side each component points to: a positive
// component lowers the max bound, a negative one raises the min bound.
func (a AABB) Contract(x, y, z float64) AABB {
	switch {
	case x < 0:
		a.MinX -= x
	case x > 0:
		a.MaxX -= x
	}
	switch {
	case y < 0:
		a.MinY -= y
	case y > 0:
		a.MaxY -= y
	}
	switch {
	case z < 0:
		a.MinZ -= z
	case z > 0:
		a.MaxZ -= z
	}

	return a
}

// ExpandTowards grows the box along the sign of each component of v. The
// result is the volume swept by a moving by v.
func (a AABB) ExpandTowards(v mgl64.Vec3) AABB {
	switch {
	case v.X() < 0:
		a.MinX += v.X()
	case v.X() > 0:
		a.MaxX += v.X()
	}
	switch {
	case v.Y() < 0:
		a.MinY += v.Y()
	case v.Y() > 0:
		a.MaxY += v.Y()
	}
	switch {
	case v.Z() < 0:
		a.MinZ += v.Z()
	case v.Z() > 0:
		a.MaxZ += v.Z()
	}

	return a
}

// Inflate grows the box by (x, y, z) on both sides of every axis.
func (a AABB) Inflate(x, y, z float64) AABB {
	return AABB{
		MinX: a.MinX - x, MinY: a.MinY - y, MinZ: a.MinZ - z,
		MaxX: a.MaxX + x, MaxY: a.MaxY + y, MaxZ: a.MaxZ + z,
	}
}

// Deflate is Inflate(-x, -y, -z).
func (a AABB) Deflate(x, y, z float64) AABB { return a.Inflate(-x, -y, -z) }

// Intersect returns the overlap of a and b. Disjoint inputs yield an
// inverted box.
func (a AABB) Intersect(b AABB) AABB {
	return AABB{
		MinX: math.Max(a.MinX, b.MinX), MinY: math.Max(a.MinY, b.MinY), MinZ: math.Max(a.MinZ, b.MinZ),
		MaxX: math.Min(a.MaxX, b.MaxX), MaxY: math.Min(a.MaxY, b.MaxY), MaxZ: math.Min(a.MaxZ, b.MaxZ),
	}
}

// MinMax returns the smallest box containing both a and b.
func (a AABB) MinMax(b AABB) AABB {
	return AABB{
		MinX: math.Min(a.MinX, b.MinX), MinY: math.Min(a.MinY, b.MinY), MinZ: math.Min(a.MinZ, b.MinZ),
		MaxX: math.Max(a.MaxX, b.MaxX), MaxY: math.Max(a.MaxY, b.MaxY), MaxZ: math.Max(a.MaxZ, b.MaxZ),
	}
}

// Move translates the box by (x, y, z).
func (a AABB) Move(x, y, z float64) AABB {
	return AABB{
		MinX: a.MinX + x, MinY: a.MinY + y, MinZ: a.MinZ + z,
		MaxX: a.MaxX + x, MaxY: a.MaxY + y, MaxZ: a.MaxZ + z,
	}
}

// MoveVec translates the box by v.
func (a AABB) MoveVec(v mgl64.Vec3) AABB { return a.Move(v.X(), v.Y(), v.Z()) }

// Intersects reports whether a and b overlap with positive volume.
// Boxes that only share a face do not intersect.
func (a AABB) Intersects(b AABB) bool {
	return a.MinX < b.MaxX && a.MaxX > b.MinX &&
		a.MinY < b.MaxY && a.MaxY > b.MinY &&
		a.MinZ < b.MaxZ && a.MaxZ > b.MinZ
}

// IntersectsSegment reports whether a overlaps the bounding box of the
// segment from p to q. It is a cheap broad-phase test ahead of Clip.
func (a AABB) IntersectsSegment(p, q mgl64.Vec3) bool {
	return a.Intersects(New(p, q))
}

// Contains reports whether p lies inside a, min bounds inclusive and max
// bounds exclusive. Adjacent boxes therefore never both contain a point.
func (a AABB) Contains(p mgl64.Vec3) bool {
	return p.X() >= a.MinX && p.X() < a.MaxX &&
		p.Y() >= a.MinY && p.Y() < a.MaxY &&
		p.Z() >= a.MinZ && p.Z() < a.MaxZ
}

// Empty reports whether the box has no positive extent on some axis.
func (a AABB) Empty() bool {
	return a.MaxX <= a.MinX || a.MaxY <= a.MinY || a.MaxZ <= a.MinZ
}

// AxisSize returns the extent along axis.
func (a AABB) AxisSize(axis Axis) float64 { return a.Max(axis) - a.Min(axis) }

// Size returns the mean extent over the three axes.
func (a AABB) Size() float64 {
	return (a.AxisSize(X) + a.AxisSize(Y) + a.AxisSize(Z)) / 3
}

// Center returns the midpoint of the box.
func (a AABB) Center() mgl64.Vec3 {
	return mgl64.Vec3{(a.MinX + a.MaxX) / 2, (a.MinY + a.MaxY) / 2, (a.MinZ + a.MaxZ) / 2}
}

// HasNaN reports whether any bound is NaN.
func (a AABB) HasNaN() bool {
	return math.IsNaN(a.MinX) || math.IsNaN(a.MinY) || math.IsNaN(a.MinZ) ||
		math.IsNaN(a.MaxX) || math.IsNaN(a.MaxY) || math.IsNaN(a.MaxZ)
}

// ApproxEqual compares every bound within eps.
func (a AABB) ApproxEqual(b AABB, eps float64) bool {
	return a.MinVec().ApproxEqualThreshold(b.MinVec(), eps) &&
		a.MaxVec().ApproxEqualThreshold(b.MaxVec(), eps)
}

func (a AABB) String() string {
	return fmt.Sprintf("[%g,%g,%g -> %g,%g,%g]", a.MinX, a.MinY, a.MinZ, a.MaxX, a.MaxY, a.MaxZ)
}
