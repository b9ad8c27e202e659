// Package movement drives a bot through a voxel world: a terrain oracle that
// feeds voxel standing positions to the incremental planner, a tick-based
// physics step built on geom.Collide, and a Navigator tying both together.
//
// The world is reached only through the World interface. Callers that change
// the world must report every changed block with Navigator.BlockChanged (or
// Terrain.BlockChanged) before the next Tick; the terrain turns those reports
// into planner edge updates.
//
// Nothing here is safe for concurrent use. Drive a Navigator from one loop.
package movement
