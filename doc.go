// Package voxnav is a navigation toolkit for voxel-world bots: an incremental
// shortest-path planner, the box geometry that voxel collision and look-ray
// selection need, and a movement layer that ties both to a block world.
//
// What is in here:
//
//	dstarlite/    D* Lite: keeps a route from a moving start to a fixed goal
//	              alive while edge costs change, repairing it locally
//	geom/         AABB algebra, segment clipping (Clip, ClipIterable) and
//	              swept per-axis collision (Collide)
//	movement/     voxel terrain oracle, tick physics, Navigator, Raycast
//	gridgraph/    2D grid oracle for mazes and weighted cost maps
//	dijkstra/     from-scratch reference search used to cross-check plans
//	cmd/navsim/   run a scenario file tick by tick and record a trace
//
// Quick example: a 3×3 maze with a wall in the middle column.
//
//	. # .
//	. # .
//	. . .
//
//	gg, _ := gridgraph.From2D(maze, gridgraph.Conn4)
//	p, _ := dstarlite.New(gridgraph.Point{X: 0, Y: 0}, gridgraph.Point{X: 2, Y: 0}, gg.Oracle())
//	next, _, _ := p.TryNext() // {0 1}
//
// Changing the map is a two-step affair: edit it (gg.SetCell), queue the edge
// changes it reports (gridgraph.QueueChanges) and call
// p.UpdateFromUpdatedEdges before the next TryNext.
//
//	go get github.com/katalvlaran/voxnav
package voxnav
