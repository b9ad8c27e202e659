package movement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/voxnav/movement"
)

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, movement.DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*movement.Config){
		"ZeroWalk":        func(c *movement.Config) { c.Costs.Walk = 0 },
		"NegativePerDrop": func(c *movement.Config) { c.Costs.DescendPerBlock = -1 },
		"NegativeMaxDrop": func(c *movement.Config) { c.Costs.MaxDrop = -1 },
		"WideAgent":       func(c *movement.Config) { c.Physics.Width = 1 },
		"NoDrag":          func(c *movement.Config) { c.Physics.Drag = 0 },
		"NoWalkSpeed":     func(c *movement.Config) { c.Physics.WalkSpeed = 0 },
		"LooseArrive":     func(c *movement.Config) { c.Physics.ArriveTolerance = 0.5 },
		"NoStallTicks":    func(c *movement.Config) { c.Physics.StallTicks = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := movement.DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), movement.ErrBadConfig)
		})
	}
}
