package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/voxnav/geom"
	"github.com/katalvlaran/voxnav/internal/scenario"
	"github.com/katalvlaran/voxnav/internal/trace"
	"github.com/katalvlaran/voxnav/movement"
)

// recorder writes trace records and keeps the first write error; a nil
// recorder drops everything.
type recorder struct {
	w   *trace.Writer
	err error
}

func (r *recorder) write(rec trace.Record) {
	if r == nil || r.err != nil {
		return
	}
	r.err = r.w.Write(rec)
}

func (r *recorder) start(sc *scenario.Scenario) {
	start, goal := triple(sc.StartBlock()), triple(sc.GoalBlock())
	r.write(trace.Record{Kind: trace.KindRun, Scenario: sc.Name, Start: &start, Goal: &goal})
}

func (r *recorder) event(tick int, e scenario.Event) {
	lo, hi := e.Bounds()
	r.write(trace.Record{Kind: trace.KindEvent, Tick: tick, Event: fmt.Sprintf("%s %v..%v", e.Action, lo, hi)})
}

func (r *recorder) tick(tick int, nav *movement.Navigator) {
	if r == nil {
		return
	}
	b := nav.Body()
	rec := trace.Record{
		Kind:    trace.KindTick,
		Tick:    tick,
		Pos:     [3]float64{b.Pos.X(), b.Pos.Y(), b.Pos.Z()},
		Status:  nav.Status().String(),
		Replans: nav.Replans(),
	}
	if wp, ok := nav.Waypoint(); ok {
		t := triple(wp)
		rec.Waypoint = &t
	}
	if c := nav.Planner().Cost(); c != movement.Infinity {
		rec.Cost = &c
	}
	r.write(rec)
}

func (r *recorder) end(tick int, res result) {
	status := res.status.String()
	if res.timedOut {
		status = "timeout"
	}
	r.write(trace.Record{Kind: trace.KindEnd, Tick: tick, Status: status})
}

// close flushes the trace and returns the first error seen.
func (r *recorder) close() error {
	if err := r.w.Close(); err != nil && r.err == nil {
		r.err = err
	}

	return r.err
}

func triple(p geom.BlockPos) [3]int { return [3]int{p.X, p.Y, p.Z} }

// replay prints the summary of the trace at path.
func replay(path string, w io.Writer) error {
	recs, err := trace.ReadFile(path)
	if err != nil {
		return err
	}
	s, err := trace.Summarize(recs)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "run_id=%s scenario=%s status=%s ticks=%d events=%d replans=%d distance=%.2f\n",
		s.RunID, s.Scenario, s.Status, s.Ticks, s.Events, s.Replans, s.Distance)

	return nil
}
