package geom_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/voxnav/geom"
)

// ClipSuite exercises segment clipping against the box (-1,-1,-1)-(1,1,1).
type ClipSuite struct {
	suite.Suite
	box geom.AABB
}

func (s *ClipSuite) SetupTest() {
	s.box = unit()
}

func (s *ClipSuite) hit(from, to mgl64.Vec3) (mgl64.Vec3, geom.Direction) {
	loc, dir, ok := s.box.Clip(from, to)
	require.True(s.T(), ok, "expected a hit for %v -> %v", from, to)

	return loc, dir
}

// TestAlongZ checks the reference ray strikes the South face at t = 0.4.
func (s *ClipSuite) TestAlongZ() {
	from, to := mgl64.Vec3{0, 0, -5}, mgl64.Vec3{0, 0, 5}
	loc, dir := s.hit(from, to)
	s.Equal(geom.South, dir)
	s.InDelta(-1.0, loc.Z(), 1e-12)
	s.InDelta(0.4, (loc.Z()-from.Z())/(to.Z()-from.Z()), 1e-12)

	loc, dir = s.hit(to, from)
	s.Equal(geom.North, dir)
	s.InDelta(1.0, loc.Z(), 1e-12)
}

func (s *ClipSuite) TestAlongXAndY() {
	_, dir := s.hit(mgl64.Vec3{-4, 0, 0}, mgl64.Vec3{4, 0, 0})
	s.Equal(geom.West, dir)
	_, dir = s.hit(mgl64.Vec3{4, 0.2, 0}, mgl64.Vec3{-4, 0.2, 0})
	s.Equal(geom.East, dir)

	loc, dir := s.hit(mgl64.Vec3{0.5, 3, 0.5}, mgl64.Vec3{0.5, -3, 0.5})
	s.Equal(geom.Up, dir)
	s.True(loc.ApproxEqual(mgl64.Vec3{0.5, 1, 0.5}))
	_, dir = s.hit(mgl64.Vec3{0, -3, 0}, mgl64.Vec3{0, 3, 0})
	s.Equal(geom.Down, dir)
}

// TestDiagonal_EntersThroughSecondAxis hits a face that is not on the first
// axis with motion: the X crossing falls outside the box, the Z crossing does not.
func (s *ClipSuite) TestDiagonal_EntersThroughSecondAxis() {
	loc, dir := s.hit(mgl64.Vec3{-3, 0, -6}, mgl64.Vec3{3, 0, 6})
	s.Equal(geom.South, dir)
	s.True(loc.ApproxEqualThreshold(mgl64.Vec3{-0.5, 0, -1}, 1e-9), "loc=%v", loc)
}

// TestDiagonal_Corner enters through the face with the later crossing.
func (s *ClipSuite) TestDiagonal_Corner() {
	// Crosses z=-1 at t=0.25 (x=-2.5, outside) and x=-1 at t=0.5 (z=0, inside).
	loc, dir := s.hit(mgl64.Vec3{-4, 0, -2}, mgl64.Vec3{2, 0, 2})
	s.Equal(geom.West, dir)
	s.True(loc.ApproxEqualThreshold(mgl64.Vec3{-1, 0, 0}, 1e-9), "loc=%v", loc)
}

func (s *ClipSuite) TestMisses() {
	cases := map[string][2]mgl64.Vec3{
		"Beside":     {{2, 0, -5}, {2, 0, 5}},
		"TooShort":   {{0, 0, -5}, {0, 0, -2}},
		"FromInside": {{0, 0, 0}, {0, 0, 5}},
		"Away":       {{0, 0, -2}, {0, 0, -5}},
		"ZeroLength": {{0, 0, -2}, {0, 0, -2}},
	}
	for name, seg := range cases {
		_, _, ok := s.box.Clip(seg[0], seg[1])
		s.Falsef(ok, "%s: expected miss", name)
	}
}

// TestGrazing counts a ray running exactly along a face edge as a hit.
func (s *ClipSuite) TestGrazing() {
	_, dir := s.hit(mgl64.Vec3{1, 0, -5}, mgl64.Vec3{1, 0, 5})
	s.Equal(geom.South, dir)

	_, _, ok := s.box.Clip(mgl64.Vec3{1 + 1e-6, 0, -5}, mgl64.Vec3{1 + 1e-6, 0, 5})
	s.False(ok)
}

func TestClipSuite(t *testing.T) {
	suite.Run(t, new(ClipSuite))
}

func TestClipIterable_Closest(t *testing.T) {
	pos := geom.BlockPos{X: 0, Y: 0, Z: 3}
	far := geom.FullBlock().Move(0, 0, 3)
	near := geom.AABB{MinX: 0, MinY: 0, MinZ: 3.5, MaxX: 1, MaxY: 0.5, MaxZ: 4}.Move(0, 0, -0.5)
	boxes := []geom.AABB{far.Move(0, 0, 0.25), near}

	res, ok := geom.ClipIterable(boxes, mgl64.Vec3{0.5, 0.25, 0}, mgl64.Vec3{0.5, 0.25, 10}, pos)
	require.True(t, ok)
	assert.Equal(t, 1, res.Box)
	assert.Equal(t, geom.South, res.Direction)
	assert.Equal(t, pos, res.BlockPos)
	assert.InDelta(t, 3.0, res.Location.Z(), 1e-12)
	assert.False(t, res.Miss)
	assert.False(t, res.Inside)

	// Order of the boxes does not matter.
	res2, ok := geom.ClipIterable([]geom.AABB{near, far.Move(0, 0, 0.25)}, mgl64.Vec3{0.5, 0.25, 0}, mgl64.Vec3{0.5, 0.25, 10}, pos)
	require.True(t, ok)
	assert.Equal(t, 0, res2.Box)
	assert.Equal(t, res.Location, res2.Location)
}

func TestClipIterable_Miss(t *testing.T) {
	_, ok := geom.ClipIterable(nil, mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, geom.BlockPos{})
	assert.False(t, ok)

	_, ok = geom.ClipIterable([]geom.AABB{geom.FullBlock().Move(5, 5, 5)}, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, geom.BlockPos{})
	assert.False(t, ok)
}
