package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/voxnav/dstarlite"
	"github.com/katalvlaran/voxnav/geom"
	"github.com/katalvlaran/voxnav/internal/scenario"
	"github.com/katalvlaran/voxnav/internal/trace"
	"github.com/katalvlaran/voxnav/internal/tuning"
	"github.com/katalvlaran/voxnav/movement"
)

type result struct {
	name     string
	runID    string
	status   movement.Status
	ticks    int
	replans  int
	feet     geom.BlockPos
	goal     geom.BlockPos
	timedOut bool
	hits     []rayHit
}

type rayHit struct {
	hit geom.HitResult
	ok  bool
}

func (r result) arrived() bool { return r.status == movement.StatusArrived }

func (r result) print(w io.Writer) {
	status := r.status.String()
	if r.timedOut {
		status = "timeout"
	}
	fmt.Fprintf(w, "scenario=%s status=%s ticks=%d replans=%d feet=%v goal=%v\n",
		r.name, status, r.ticks, r.replans, r.feet, r.goal)
	if r.runID != "" {
		fmt.Fprintf(w, "trace run_id=%s\n", r.runID)
	}
	for i, h := range r.hits {
		if !h.ok {
			fmt.Fprintf(w, "ray %d: miss at %v\n", i, h.hit.BlockPos)
			continue
		}
		fmt.Fprintf(w, "ray %d: hit %v face=%v at [%.3f %.3f %.3f] inside=%t\n", i,
			h.hit.BlockPos, h.hit.Direction, h.hit.Location.X(), h.hit.Location.Y(), h.hit.Location.Z(), h.hit.Inside)
	}
}

// simulate runs the scenario of o until arrival, the tick budget, or a
// no-path status with no world edits left that could open a route.
func simulate(o options, logger *slog.Logger) (res result, err error) {
	sc, err := scenario.Load(o.scenario)
	if err != nil {
		return result{}, err
	}
	tun := tuning.Default()
	if o.tuning != "" {
		if tun, err = tuning.Load(o.tuning); err != nil {
			return result{}, err
		}
	}
	budget := tun.Planner.MaxTicks
	switch {
	case o.maxTicks > 0:
		budget = o.maxTicks
	case sc.MaxTicks > 0:
		budget = sc.MaxTicks
	}

	world := sc.World()
	navOpts := []movement.Option{movement.WithLogger(logger.With("scenario", sc.Name))}
	if c := tun.Planner.QueueCapacity; c > 0 {
		navOpts = append(navOpts, movement.WithPlannerOptions(dstarlite.WithQueueCapacity[movement.Node, int](c)))
	}
	nav, err := movement.NewNavigator(world, sc.StartFeet(), tun.Config(), navOpts...)
	if err != nil {
		return result{}, err
	}
	if err := nav.SetGoal(sc.GoalBlock()); err != nil {
		return result{}, err
	}

	var rec *recorder
	if o.trace != "" {
		tw, terr := trace.Create(o.trace)
		if terr != nil {
			return result{}, terr
		}
		rec = &recorder{w: tw}
		defer func() {
			if cerr := rec.close(); err == nil && cerr != nil {
				err = fmt.Errorf("trace: %w", cerr)
			}
		}()
		rec.start(sc)
	}

	lastEvent := -1
	if n := len(sc.Events); n > 0 {
		lastEvent = sc.Events[n-1].Tick
	}

	res = result{name: sc.Name, goal: sc.GoalBlock()}
	st := movement.StatusMoving
	for tick := 0; tick < budget; tick++ {
		for _, e := range sc.Due(tick) {
			for _, p := range e.Apply(world) {
				nav.BlockChanged(p)
			}
			rec.event(tick, e)
		}
		if st, err = nav.Tick(); err != nil {
			return res, err
		}
		rec.tick(tick, nav)
		res.ticks = tick + 1
		if st == movement.StatusArrived || (st == movement.StatusNoPath && tick >= lastEvent) {
			break
		}
	}

	res.status = st
	res.timedOut = st == movement.StatusMoving
	res.replans = nav.Replans()
	res.feet = nav.Body().FeetBlock()
	for _, r := range sc.Rays {
		from, to := r.Segment()
		hit, ok := movement.Raycast(world, from, to)
		res.hits = append(res.hits, rayHit{hit: hit, ok: ok})
	}
	if rec != nil {
		res.runID = rec.w.RunID()
		rec.end(res.ticks, res)
	}

	return res, nil
}
