package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/voxnav/geom"
	"github.com/katalvlaran/voxnav/internal/scenario"
	"github.com/katalvlaran/voxnav/movement"
)

const stepYAML = `
name: step
start: [0, 1, 0]
goal: [5, 2, 0]
max_ticks: 400
blocks:
  - {from: [0, 0, 0], to: [5, 0, 0]}
  - {from: [3, 1, 0], to: [5, 1, 0]}
events:
  - {tick: 30, action: clear, from: [5, 1, 0]}
  - {tick: 10, action: set, from: [4, 2, 0], to: [4, 3, 0]}
  - {tick: 10, action: clear, from: [4, 3, 0]}
rays:
  - {from: [0.5, 3.5, 0.5], to: [0.5, -2, 0.5]}
`

func TestParse(t *testing.T) {
	s, err := scenario.Parse([]byte(stepYAML))
	require.NoError(t, err)

	assert.Equal(t, "step", s.Name)
	assert.Equal(t, geom.BlockPos{X: 0, Y: 1, Z: 0}, s.StartBlock())
	assert.Equal(t, geom.BlockPos{X: 5, Y: 2, Z: 0}, s.GoalBlock())
	assert.Equal(t, mgl64.Vec3{0.5, 1, 0.5}, s.StartFeet())
	assert.Equal(t, 400, s.MaxTicks)

	require.Len(t, s.Events, 3)
	assert.Equal(t, []int{10, 10, 30}, []int{s.Events[0].Tick, s.Events[1].Tick, s.Events[2].Tick})
	assert.Equal(t, scenario.ActionSet, s.Events[0].Action, "file order kept within a tick")

	w := s.World()
	assert.Equal(t, 9, w.Len())
	assert.True(t, movement.Solid(w, geom.BlockPos{X: 4, Y: 1, Z: 0}))
	assert.False(t, movement.Solid(w, geom.BlockPos{X: 2, Y: 1, Z: 0}))

	require.Len(t, s.Rays, 1)
	from, to := s.Rays[0].Segment()
	assert.Equal(t, mgl64.Vec3{0.5, 3.5, 0.5}, from)
	assert.Equal(t, mgl64.Vec3{0.5, -2, 0.5}, to)
}

func TestDueAndApply(t *testing.T) {
	s, err := scenario.Parse([]byte(stepYAML))
	require.NoError(t, err)
	w := s.World()

	assert.Empty(t, s.Due(0))
	assert.Empty(t, s.Due(11))

	var touched []geom.BlockPos
	for _, e := range s.Due(10) {
		touched = append(touched, e.Apply(w)...)
	}
	assert.Equal(t, []geom.BlockPos{{X: 4, Y: 2, Z: 0}, {X: 4, Y: 3, Z: 0}, {X: 4, Y: 3, Z: 0}}, touched)
	assert.True(t, movement.Solid(w, geom.BlockPos{X: 4, Y: 2, Z: 0}))
	assert.False(t, movement.Solid(w, geom.BlockPos{X: 4, Y: 3, Z: 0}))

	due := s.Due(30)
	require.Len(t, due, 1)
	due[0].Apply(w)
	assert.False(t, movement.Solid(w, geom.BlockPos{X: 5, Y: 1, Z: 0}))
}

func TestRegion_Positions(t *testing.T) {
	r := scenario.Region{From: []int{1, 0, 1}, To: []int{0, 0, 0}}
	assert.Equal(t, []geom.BlockPos{
		{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1},
	}, r.Positions())

	single := scenario.Region{From: []int{2, 3, 4}}
	assert.Equal(t, []geom.BlockPos{{X: 2, Y: 3, Z: 4}}, single.Positions())
}

func TestParse_SchemaViolations(t *testing.T) {
	cases := map[string]string{
		"Empty":        ``,
		"NotAMapping":  `[1, 2, 3]`,
		"MissingGoal":  `start: [0, 1, 0]`,
		"ShortVector":  "start: [0, 1]\ngoal: [1, 1, 1]",
		"FloatBlock":   "start: [0, 1.5, 0]\ngoal: [1, 1, 1]",
		"UnknownKey":   "start: [0, 1, 0]\ngoal: [1, 1, 1]\nspeed: 3",
		"BadAction":    "start: [0, 1, 0]\ngoal: [1, 1, 1]\nevents:\n  - {tick: 1, action: break, from: [0, 0, 0]}",
		"NegativeTick": "start: [0, 1, 0]\ngoal: [1, 1, 1]\nevents:\n  - {tick: -1, action: set, from: [0, 0, 0]}",
		"ZeroTicks":    "start: [0, 1, 0]\ngoal: [1, 1, 1]\nmax_ticks: 0",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(body))
			assert.ErrorIs(t, err, scenario.ErrInvalid)
		})
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := scenario.Parse([]byte("start: [0, 1"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, scenario.ErrInvalid)
}

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "step.yaml")
	require.NoError(t, os.WriteFile(p, []byte(stepYAML), 0o644))
	s, err := scenario.Load(p)
	require.NoError(t, err)
	assert.Equal(t, "step", s.Name)

	require.NoError(t, os.WriteFile(p, []byte("goal: [1, 1, 1]"), 0o644))
	_, err = scenario.Load(p)
	assert.ErrorIs(t, err, scenario.ErrInvalid)
	assert.ErrorContains(t, err, p)
}
