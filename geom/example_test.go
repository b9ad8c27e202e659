package geom_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/voxnav/geom"
)

// ExampleAABB_Clip casts a segment along +Z through a box centred on the origin.
func ExampleAABB_Clip() {
	box := geom.New(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	loc, face, ok := box.Clip(mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 5})
	fmt.Println(ok, face, loc)
	// Output: true south [0 0 -1]
}

// ExampleCollide drops a player-sized box onto a block.
func ExampleCollide() {
	feet := mgl64.Vec3{0.5, 1.25, 0.5}
	body := geom.OfSize(feet.Add(mgl64.Vec3{0, 0.9, 0}), 0.6, 1.8, 0.6)
	move := geom.Collide(body, mgl64.Vec3{0, -0.5, 0}, []geom.AABB{geom.FullBlock()})
	fmt.Printf("%.2f\n", move.Y())
	// Output: -0.25
}
