// Package scenario reads navsim scenario files: a voxel world built from
// block regions, a start and a goal, and timed block edits.
//
// A file is YAML. It is checked against an embedded JSON schema before it is
// decoded, so structural mistakes are reported with their JSON pointer:
//
//	name: step
//	start: [0, 1, 0]
//	goal: [5, 2, 0]
//	blocks:
//	  - {from: [0, 0, 0], to: [5, 0, 0]}
//	  - {from: [3, 1, 0], to: [5, 1, 0]}
//	events:
//	  - {tick: 20, action: set, from: [4, 2, 0]}
package scenario

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/voxnav/geom"
	"github.com/katalvlaran/voxnav/movement"
)

//go:embed scenario.schema.json
var schemaJSON string

var schema = jsonschema.MustCompileString("scenario.schema.json", schemaJSON)

// ErrInvalid is wrapped by every schema violation.
var ErrInvalid = errors.New("scenario: invalid")

// Action is the kind of a timed block edit.
type Action string

const (
	ActionSet   Action = "set"
	ActionClear Action = "clear"
)

// Region is an inclusive block range; To defaults to From.
type Region struct {
	From []int `yaml:"from"`
	To   []int `yaml:"to,omitempty"`
}

// Event edits a region of the world at the start of tick Tick.
type Event struct {
	Tick   int    `yaml:"tick"`
	Action Action `yaml:"action"`
	Region `yaml:",inline"`
}

// Ray is a look ray resolved against the final world.
type Ray struct {
	From []float64 `yaml:"from"`
	To   []float64 `yaml:"to"`
}

// Scenario is a validated scenario file: the world to build, the agent's
// start and goal blocks, the edits to replay at given ticks and the look
// rays to resolve when the run ends.
type Scenario struct {
	Name     string   `yaml:"name"`
	Start    []int    `yaml:"start"`
	Goal     []int    `yaml:"goal"`
	MaxTicks int      `yaml:"max_ticks"`
	Blocks   []Region `yaml:"blocks"`
	Events   []Event  `yaml:"events"`
	Rays     []Ray    `yaml:"rays"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse validates raw against the schema and decodes it. Events are sorted
// by tick, keeping file order within a tick.
func Parse(raw []byte) (*Scenario, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("scenario yaml: %w", err)
	}
	if err := validate(doc); err != nil {
		return nil, err
	}

	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("scenario yaml: %w", err)
	}
	sort.SliceStable(s.Events, func(i, j int) bool { return s.Events[i].Tick < s.Events[j].Tick })

	return &s, nil
}

// validate runs the YAML document through JSON so the schema sees the same
// value types it would for a JSON file.
func validate(doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// StartBlock returns the block the agent's feet start in.
func (s *Scenario) StartBlock() geom.BlockPos { return block(s.Start) }

// GoalBlock returns the goal block.
func (s *Scenario) GoalBlock() geom.BlockPos { return block(s.Goal) }

// StartFeet returns the agent's initial feet position: the bottom centre of
// the start block.
func (s *Scenario) StartFeet() mgl64.Vec3 { return s.StartBlock().BottomCenter() }

// World builds the initial world from Blocks.
func (s *Scenario) World() *movement.MapWorld {
	w := movement.NewMapWorld()
	for _, r := range s.Blocks {
		lo, hi := r.Bounds()
		w.Fill(lo, hi)
	}

	return w
}

// Due returns the events scheduled for tick.
func (s *Scenario) Due(tick int) []Event {
	i := sort.Search(len(s.Events), func(i int) bool { return s.Events[i].Tick >= tick })
	j := i
	for j < len(s.Events) && s.Events[j].Tick == tick {
		j++
	}

	return s.Events[i:j]
}

// Bounds returns the region's corners, To defaulting to From.
func (r Region) Bounds() (lo, hi geom.BlockPos) {
	lo = block(r.From)
	hi = lo
	if len(r.To) == 3 {
		hi = block(r.To)
	}

	return lo, hi
}

// Positions lists every block of the region, x outermost.
func (r Region) Positions() []geom.BlockPos {
	lo, hi := r.Bounds()
	var out []geom.BlockPos
	for x := min(lo.X, hi.X); x <= max(lo.X, hi.X); x++ {
		for y := min(lo.Y, hi.Y); y <= max(lo.Y, hi.Y); y++ {
			for z := min(lo.Z, hi.Z); z <= max(lo.Z, hi.Z); z++ {
				out = append(out, geom.BlockPos{X: x, Y: y, Z: z})
			}
		}
	}

	return out
}

// Apply performs e on w and returns the blocks it touched.
func (e Event) Apply(w *movement.MapWorld) []geom.BlockPos {
	ps := e.Positions()
	for _, p := range ps {
		switch e.Action {
		case ActionSet:
			w.SetSolid(p)
		case ActionClear:
			w.Clear(p)
		}
	}

	return ps
}

// Segment returns the ray end points.
func (r Ray) Segment() (from, to mgl64.Vec3) {
	return mgl64.Vec3{r.From[0], r.From[1], r.From[2]}, mgl64.Vec3{r.To[0], r.To[1], r.To[2]}
}

func block(v []int) geom.BlockPos {
	return geom.BlockPos{X: v[0], Y: v[1], Z: v[2]}
}
