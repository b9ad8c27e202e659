package movement

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/voxnav/dstarlite"
	"github.com/katalvlaran/voxnav/geom"
)

// ErrNoGoal is returned by Tick before SetGoal was called.
var ErrNoGoal = errors.New("movement: no goal set")

// Status is the outcome of one Tick.
type Status int

const (
	StatusMoving Status = iota
	StatusArrived
	StatusNoPath
)

func (s Status) String() string {
	switch s {
	case StatusMoving:
		return "moving"
	case StatusArrived:
		return "arrived"
	case StatusNoPath:
		return "no-path"
	}

	return fmt.Sprintf("status(%d)", int(s))
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithPlannerOptions passes options to every planner the Navigator creates.
func WithPlannerOptions(opts ...dstarlite.Option[Node, int]) Option {
	return func(n *Navigator) {
		n.plannerOpts = append(n.plannerOpts, opts...)
	}
}

// Navigator walks a Body to a goal block. It owns one planner per goal and
// a Terrain over the world.
type Navigator struct {
	world   World
	terrain *Terrain
	phys    Physics
	logger  *slog.Logger

	plannerOpts []dstarlite.Option[Node, int]
	planner     *dstarlite.Planner[Node, int]
	goal        Node

	body        Body
	waypoint    Node
	hasWaypoint bool
	from        Node // node the current waypoint is approached from

	best    float64 // closest approach to the waypoint so far
	stall   int
	ticks   int
	replans int
	status  Status
}

// NewNavigator places an agent with its feet at feet. cfg is validated.
func NewNavigator(world World, feet mgl64.Vec3, cfg Config, opts ...Option) (*Navigator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := &Navigator{
		world:   world,
		terrain: NewTerrain(world, cfg.Costs),
		phys:    cfg.Physics,
		logger:  slog.Default(),
		body:    Body{Pos: feet},
	}
	for _, opt := range opts {
		opt(n)
	}

	return n, nil
}

// SetGoal plans from the agent's current block to goal, replacing any
// previous plan and clearing penalties.
func (n *Navigator) SetGoal(goal Node) error {
	n.terrain.Reset()
	start := n.body.FeetBlock()
	p, err := dstarlite.New(start, goal, n.terrain.Oracle(), n.plannerOpts...)
	if err != nil {
		return fmt.Errorf("movement: plan %v -> %v: %w", start, goal, err)
	}
	n.planner, n.goal = p, goal
	n.hasWaypoint = false
	n.replans = 0
	n.status = StatusMoving
	n.logger.Info("goal set", "start", start.String(), "goal", goal.String(), "cost", p.Cost())

	return nil
}

// BlockChanged must be called after every change to the block at pos.
func (n *Navigator) BlockChanged(pos geom.BlockPos) {
	if c := n.terrain.BlockChanged(pos); c > 0 {
		n.logger.Debug("block changed", "pos", pos.String(), "edges", c)
	}
}

// Tick runs one step: absorb terrain changes, pick the next waypoint when the
// current one is reached, steer and simulate physics.
func (n *Navigator) Tick() (Status, error) {
	if n.planner == nil {
		return StatusNoPath, ErrNoGoal
	}
	n.ticks++

	if n.terrain.Pending() > 0 {
		n.replan("terrain changed")
	}

	if n.body.OnGround && n.atWaypoint() {
		if n.body.FeetBlock() == n.goal {
			n.setStatus(StatusArrived)
			n.phys.Step(n.world, &n.body, mgl64.Vec3{}, false)
			return n.status, nil
		}
		n.advance()
	}

	if !n.hasWaypoint {
		n.phys.Step(n.world, &n.body, mgl64.Vec3{}, false)
		return n.status, nil
	}

	n.steer()
	n.checkStall()

	return n.status, nil
}

// advance asks the planner for the next waypoint.
func (n *Navigator) advance() {
	feet := n.body.FeetBlock()
	if !n.hasWaypoint && feet != n.planner.Start() && n.terrain.Standable(feet) {
		n.planner.MoveTo(feet)
		n.planner.UpdateFromUpdatedEdges()
	}
	from := n.planner.Start()
	next, ok, err := n.planner.TryNext()
	switch {
	case errors.Is(err, dstarlite.ErrNoPath):
		n.hasWaypoint = false
		n.setStatus(StatusNoPath)
		return
	case !ok:
		// Planner is at the goal but the agent is not centred on it yet.
		next = n.goal
	}
	n.from, n.waypoint, n.hasWaypoint = from, next, true
	n.best, n.stall = math.Inf(1), 0
	n.setStatus(StatusMoving)
	n.logger.Debug("waypoint", "tick", n.ticks, "from", from.String(), "to", next.String())
}

// replan re-anchors the planner on the agent's block if it stands on one,
// feeds the terrain changes and repairs the plan.
func (n *Navigator) replan(reason string) {
	feet := n.body.FeetBlock()
	if n.body.OnGround && n.terrain.Standable(feet) && feet != n.planner.Start() {
		n.planner.MoveTo(feet)
		n.hasWaypoint = false
	}
	changes := n.terrain.Drain(n.planner)
	n.planner.UpdateFromUpdatedEdges()
	n.replans++
	if n.status == StatusNoPath {
		n.status = StatusMoving
	}
	n.logger.Debug("replanned", "reason", reason, "tick", n.ticks, "changes", changes, "cost", n.planner.Cost())
}

func (n *Navigator) target() mgl64.Vec3 { return n.waypoint.BottomCenter() }

// atWaypoint reports whether the agent stands on the waypoint block close to
// its centre. Without a waypoint it is trivially true.
func (n *Navigator) atWaypoint() bool {
	if !n.hasWaypoint {
		return true
	}
	if n.body.FeetBlock() != n.waypoint {
		return false
	}
	d := n.target().Sub(n.body.Pos)

	return math.Hypot(d.X(), d.Z()) <= n.phys.ArriveTolerance
}

// steer walks towards the waypoint centre, snapping onto it when within one
// step, and jumps when the waypoint is higher than the feet.
func (n *Navigator) steer() {
	d := n.target().Sub(n.body.Pos)
	walk := mgl64.Vec3{d.X(), 0, d.Z()}
	if l := walk.Len(); l > n.phys.WalkSpeed {
		walk = walk.Mul(n.phys.WalkSpeed / l)
	}
	jump := n.waypoint.Y > n.body.FeetBlock().Y
	n.phys.Step(n.world, &n.body, walk, jump)
}

// checkStall penalises the current edge when the agent has not got closer to
// the waypoint for StallTicks ticks.
func (n *Navigator) checkStall() {
	dist := n.target().Sub(n.body.Pos).Len()
	if dist < n.best-1e-3 {
		n.best, n.stall = dist, 0
		return
	}
	n.stall++
	if n.stall < n.phys.StallTicks {
		return
	}
	n.logger.Warn("stalled", "tick", n.ticks, "from", n.from.String(), "to", n.waypoint.String(), "penalty", n.phys.StallPenalty)
	n.terrain.Penalize(n.from, n.waypoint, n.phys.StallPenalty)
	n.hasWaypoint = false
	n.stall = 0
	n.replan("stalled")
}

func (n *Navigator) setStatus(s Status) {
	if s == n.status {
		return
	}
	switch s {
	case StatusArrived:
		n.logger.Info("arrived", "tick", n.ticks, "goal", n.goal.String())
	case StatusNoPath:
		n.logger.Warn("no path", "tick", n.ticks, "from", n.planner.Start().String(), "goal", n.goal.String())
	}
	n.status = s
}

// Status returns the status reported by the last Tick.
func (n *Navigator) Status() Status { return n.status }

// Body returns a copy of the simulated agent.
func (n *Navigator) Body() Body { return n.body }

// Waypoint returns the block currently steered towards.
func (n *Navigator) Waypoint() (Node, bool) { return n.waypoint, n.hasWaypoint }

// Goal returns the goal block.
func (n *Navigator) Goal() Node { return n.goal }

// Ticks returns the number of Tick calls since creation.
func (n *Navigator) Ticks() int { return n.ticks }

// Replans returns the number of plan repairs since the last SetGoal.
func (n *Navigator) Replans() int { return n.replans }

// Terrain returns the terrain oracle.
func (n *Navigator) Terrain() *Terrain { return n.terrain }

// Planner returns the current planner, nil before SetGoal.
func (n *Navigator) Planner() *dstarlite.Planner[Node, int] { return n.planner }
