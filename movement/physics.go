package movement

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/voxnav/geom"
)

// feetNudge lifts the feet before flooring so float drift on a block top does
// not report the block below.
const feetNudge = 1e-5

// Body is the simulated agent: feet position, velocity and ground contact.
type Body struct {
	Pos      mgl64.Vec3
	Vel      mgl64.Vec3
	OnGround bool
	// HitWall is set when the last step lost horizontal motion to a collision.
	HitWall bool
}

// Box returns the agent's collision box for feet position pos.
func (p Physics) Box(pos mgl64.Vec3) geom.AABB {
	hw := p.Width / 2
	return geom.AABB{
		MinX: pos.X() - hw, MinY: pos.Y(), MinZ: pos.Z() - hw,
		MaxX: pos.X() + hw, MaxY: pos.Y() + p.Height, MaxZ: pos.Z() + hw,
	}
}

// FeetBlock returns the block containing the feet.
func (b Body) FeetBlock() geom.BlockPos {
	return geom.BlockPosOf(b.Pos.Add(mgl64.Vec3{0, feetNudge, 0}))
}

// Step advances b by one tick. walk is the requested horizontal displacement
// (its Y is ignored); jump starts a jump when on the ground.
//
// Vertical motion uses the current velocity, then velocity is updated as
// (v - gravity) * drag, and zeroed when the move was stopped by a collision.
func (p Physics) Step(w World, b *Body, walk mgl64.Vec3, jump bool) {
	if jump && b.OnGround {
		b.Vel[1] = p.JumpVelocity
	}
	motion := mgl64.Vec3{walk.X(), b.Vel.Y(), walk.Z()}
	box := p.Box(b.Pos)
	obstacles := Obstacles(w, box.ExpandTowards(motion))
	moved := geom.Collide(box, motion, obstacles)

	b.Pos = b.Pos.Add(moved)
	b.OnGround = motion.Y() < 0 && moved.Y() != motion.Y()
	b.HitWall = moved.X() != motion.X() || moved.Z() != motion.Z()
	vy := b.Vel.Y()
	if moved.Y() != motion.Y() {
		vy = 0
	}
	b.Vel = mgl64.Vec3{moved.X(), (vy - p.Gravity) * p.Drag, moved.Z()}
}
