// Package tuning loads the navigation constants: move costs, agent physics
// and planner knobs, from a YAML file over built-in defaults.
package tuning

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/voxnav/movement"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("tuning: invalid")

// Tuning is the contents of a tuning.yaml file. Sections left out keep
// their Default values.
type Tuning struct {
	Costs   Costs   `yaml:"costs"`
	Physics Physics `yaml:"physics"`
	Planner Planner `yaml:"planner"`
}

// Costs are the terrain move costs; see movement.Costs.
type Costs struct {
	Walk            int `yaml:"walk"`
	Ascend          int `yaml:"ascend"`
	Descend         int `yaml:"descend"`
	DescendPerBlock int `yaml:"descend_per_block"`
	MaxDrop         int `yaml:"max_drop"`
}

// Physics sizes the agent and drives its tick simulation and stall
// detection; see movement.Physics.
type Physics struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Gravity         float64 `yaml:"gravity"`
	Drag            float64 `yaml:"drag"`
	JumpVelocity    float64 `yaml:"jump_velocity"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	ArriveTolerance float64 `yaml:"arrive_tolerance"`
	StallTicks      int     `yaml:"stall_ticks"`
	StallPenalty    int     `yaml:"stall_penalty"`
}

// Planner holds the dstarlite knobs.
type Planner struct {
	QueueCapacity int `yaml:"queue_capacity"` // initial open-queue capacity, 0 for the default
	MaxTicks      int `yaml:"max_ticks"`      // simulation budget per goal
}

// Default mirrors movement.DefaultConfig.
func Default() Tuning {
	cfg := movement.DefaultConfig()
	return Tuning{
		Costs: Costs{
			Walk:            cfg.Costs.Walk,
			Ascend:          cfg.Costs.Ascend,
			Descend:         cfg.Costs.Descend,
			DescendPerBlock: cfg.Costs.DescendPerBlock,
			MaxDrop:         cfg.Costs.MaxDrop,
		},
		Physics: Physics{
			Width:           cfg.Physics.Width,
			Height:          cfg.Physics.Height,
			Gravity:         cfg.Physics.Gravity,
			Drag:            cfg.Physics.Drag,
			JumpVelocity:    cfg.Physics.JumpVelocity,
			WalkSpeed:       cfg.Physics.WalkSpeed,
			ArriveTolerance: cfg.Physics.ArriveTolerance,
			StallTicks:      cfg.Physics.StallTicks,
			StallPenalty:    cfg.Physics.StallPenalty,
		},
		Planner: Planner{MaxTicks: 2000},
	}
}

// Load reads path over Default; keys missing from the file keep their
// default value. The result is validated.
func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}

	return t, nil
}

// Config converts t to a movement.Config.
func (t Tuning) Config() movement.Config {
	return movement.Config{
		Costs: movement.Costs{
			Walk:            t.Costs.Walk,
			Ascend:          t.Costs.Ascend,
			Descend:         t.Costs.Descend,
			DescendPerBlock: t.Costs.DescendPerBlock,
			MaxDrop:         t.Costs.MaxDrop,
		},
		Physics: movement.Physics{
			Width:           t.Physics.Width,
			Height:          t.Physics.Height,
			Gravity:         t.Physics.Gravity,
			Drag:            t.Physics.Drag,
			JumpVelocity:    t.Physics.JumpVelocity,
			WalkSpeed:       t.Physics.WalkSpeed,
			ArriveTolerance: t.Physics.ArriveTolerance,
			StallTicks:      t.Physics.StallTicks,
			StallPenalty:    t.Physics.StallPenalty,
		},
	}
}

// Validate checks the planner knobs and the movement config.
func (t Tuning) Validate() error {
	if t.Planner.QueueCapacity < 0 {
		return fmt.Errorf("%w: planner.queue_capacity must be non-negative", ErrInvalid)
	}
	if t.Planner.MaxTicks <= 0 {
		return fmt.Errorf("%w: planner.max_ticks must be positive", ErrInvalid)
	}
	if err := t.Config().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}
