package movement

import (
	"errors"
	"fmt"
)

// ErrBadConfig is wrapped by Config.Validate.
var ErrBadConfig = errors.New("movement: invalid config")

// Costs are the planner edge costs of the three move kinds. Every move crosses
// exactly one horizontal block.
type Costs struct {
	Walk            int // flat step to a neighbouring block
	Ascend          int // jump up one block
	Descend         int // walk off an edge; plus DescendPerBlock per block fallen
	DescendPerBlock int
	MaxDrop         int // highest fall the planner will route through
}

// Physics are the per-tick movement constants, Minecraft-like by default.
type Physics struct {
	Width, Height   float64 // agent box extents
	Gravity         float64 // subtracted from vertical velocity every tick
	Drag            float64 // vertical velocity multiplier after gravity
	JumpVelocity    float64
	WalkSpeed       float64 // horizontal distance per tick
	ArriveTolerance float64 // horizontal distance from a block centre that counts as there
	StallTicks      int     // ticks without progress before the edge is penalised
	StallPenalty    int     // cost added to a stalled edge
}

// Config bundles Costs and Physics.
type Config struct {
	Costs   Costs
	Physics Physics
}

// DefaultConfig returns the defaults used by the CLI without a tuning file.
func DefaultConfig() Config {
	return Config{
		Costs: Costs{
			Walk:            10,
			Ascend:          20,
			Descend:         12,
			DescendPerBlock: 3,
			MaxDrop:         3,
		},
		Physics: Physics{
			Width:           0.6,
			Height:          1.8,
			Gravity:         0.08,
			Drag:            0.98,
			JumpVelocity:    0.42,
			WalkSpeed:       0.2,
			ArriveTolerance: 0.1,
			StallTicks:      20,
			StallPenalty:    100,
		},
	}
}

// Validate reports the first out-of-range field, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.Costs.Walk <= 0 || c.Costs.Ascend <= 0 || c.Costs.Descend <= 0:
		return fmt.Errorf("%w: move costs must be positive", ErrBadConfig)
	case c.Costs.DescendPerBlock < 0:
		return fmt.Errorf("%w: descend_per_block must be non-negative", ErrBadConfig)
	case c.Costs.MaxDrop < 0:
		return fmt.Errorf("%w: max_drop must be non-negative", ErrBadConfig)
	case c.Physics.Width <= 0 || c.Physics.Width >= 1 || c.Physics.Height <= 0:
		return fmt.Errorf("%w: agent width must be in (0,1) and height positive", ErrBadConfig)
	case c.Physics.Gravity < 0 || c.Physics.Drag <= 0 || c.Physics.Drag > 1:
		return fmt.Errorf("%w: gravity must be non-negative and drag in (0,1]", ErrBadConfig)
	case c.Physics.WalkSpeed <= 0 || c.Physics.JumpVelocity <= 0:
		return fmt.Errorf("%w: walk speed and jump velocity must be positive", ErrBadConfig)
	case c.Physics.ArriveTolerance < 0 || c.Physics.ArriveTolerance >= 0.5:
		return fmt.Errorf("%w: arrive tolerance must be in [0,0.5)", ErrBadConfig)
	case c.Physics.StallTicks <= 0 || c.Physics.StallPenalty < 0:
		return fmt.Errorf("%w: stall ticks must be positive and penalty non-negative", ErrBadConfig)
	}

	return nil
}

// minStep is the cheapest possible move, the per-block factor of the heuristic.
func (c Costs) minStep() int {
	return min(c.Walk, c.Ascend, c.Descend+c.DescendPerBlock)
}
