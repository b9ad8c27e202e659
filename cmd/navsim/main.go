// Command navsim drives a simulated agent through a scenario file tick by
// tick, optionally recording a trace, or summarises a recorded trace.
//
//	navsim -scenario step.yaml [-tuning tuning.yaml] [-trace run.jsonl.zst] [-max-ticks N] [-v]
//	navsim -replay run.jsonl.zst
//
// The exit status is 0 on arrival, 1 when the agent runs out of ticks, finds
// no path or a file cannot be read, and 2 on bad usage.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	scenario string
	tuning   string
	trace    string
	replay   string
	maxTicks int
	verbose  bool
	jsonLogs bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("navsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.scenario, "scenario", "", "scenario YAML file")
	fs.StringVar(&o.tuning, "tuning", "", "tuning YAML file (optional)")
	fs.StringVar(&o.trace, "trace", "", "write a .jsonl.zst trace to this path (optional)")
	fs.StringVar(&o.replay, "replay", "", "summarise a recorded trace and exit")
	fs.IntVar(&o.maxTicks, "max-ticks", 0, "tick budget; overrides scenario and tuning")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	fs.BoolVar(&o.jsonLogs, "log-json", false, "log as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(stderr, hopts)
	if o.jsonLogs {
		h = slog.NewJSONHandler(stderr, hopts)
	}
	logger := slog.New(h)

	switch {
	case o.replay != "":
		if err := replay(o.replay, stdout); err != nil {
			fmt.Fprintln(stderr, "replay:", err)
			return 1
		}
		return 0
	case o.scenario == "":
		fmt.Fprintln(stderr, "missing -scenario or -replay")
		fs.Usage()
		return 2
	case o.maxTicks < 0:
		fmt.Fprintln(stderr, "-max-ticks must be non-negative")
		return 2
	}

	res, err := simulate(o, logger)
	if err != nil {
		fmt.Fprintln(stderr, "navsim:", err)
		return 1
	}
	res.print(stdout)
	if !res.arrived() {
		return 1
	}

	return 0
}
