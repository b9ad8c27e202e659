// Package geom provides the axis-aligned box algebra used for voxel collision
// and look-ray block selection.
//
// What:
//
//   - AABB is a value type with six float64 bounds; every operation returns a
//     new box and never mutates its receiver.
//   - Set algebra: Intersect, MinMax, Inflate/Deflate, Contract/ExpandTowards, Move.
//   - Predicates: Intersects (open intervals, touching faces don't count),
//     Contains (half-open: min inclusive, max exclusive), HasNaN.
//   - Clip / ClipIterable: parametric segment-vs-box intersection reporting the
//     impact point and the face struck.
//   - CollideAxis / Collide: swept per-axis collision resolution of a moving box
//     against static obstacles.
//
// Conventions:
//
//   - Vectors are mgl64.Vec3, indexed by Axis (X=0, Y=1, Z=2).
//   - A Direction names the outward normal of a face:
//     East=+X, West=-X, Up=+Y, Down=-Y, North=+Z, South=-Z.
//     A ray travelling +Z therefore strikes a box's South face.
//   - Epsilon (1e-7) widens face extents in Clip so grazing rays at
//     axis-aligned faces still register, and absorbs float drift in Collide.
//
// Complexity:
//
//   - All box operations: O(1).
//   - ClipIterable, Collide: O(n) over the candidate boxes.
//
// Misses are not errors: Clip and ClipIterable return ok=false.
package geom
