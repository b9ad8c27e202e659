// Package dstarlite defines the weight constraint, vertex scores, priority
// keys, edges, the terrain Oracle, options and sentinel errors used by the
// incremental planner.
package dstarlite

import (
	"errors"
	"math"
	"reflect"
)

// Sentinel errors returned by the planner.
var (
	// ErrNoPath indicates the goal is currently unreachable from the start
	// (rhs(start) is infinite). The planner state is left untouched.
	ErrNoPath = errors.New("dstarlite: no path to goal")

	// ErrNilHeuristic indicates the Oracle has no Heuristic function.
	ErrNilHeuristic = errors.New("dstarlite: oracle heuristic is nil")

	// ErrNilSuccessors indicates the Oracle has no Successors function.
	ErrNilSuccessors = errors.New("dstarlite: oracle successors is nil")

	// ErrNilPredecessors indicates the Oracle has no Predecessors function.
	ErrNilPredecessors = errors.New("dstarlite: oracle predecessors is nil")

	// ErrNoSuccessors is the panic value raised by TryNext when the oracle
	// returns no successor for a non-goal start. It marks a broken oracle.
	ErrNoSuccessors = errors.New("dstarlite: oracle returned no successors for start")

	// ErrBadInfinity indicates WithInfinity was given a non-positive sentinel.
	ErrBadInfinity = errors.New("dstarlite: infinity sentinel must be positive")

	// ErrBadQueueCapacity indicates WithQueueCapacity was given a negative value.
	ErrBadQueueCapacity = errors.New("dstarlite: queue capacity must be non-negative")
)

// Weight is the numeric edge-cost type. It is totally ordered, its zero value
// is the additive identity, and MaxWeight provides the "infinity" sentinel.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// MaxWeight returns the default infinity sentinel for W: the largest
// representable value for integer kinds and +Inf for floating-point kinds.
func MaxWeight[W Weight]() W {
	var w W
	v := reflect.ValueOf(&w).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(math.MaxInt64 >> (64 - v.Type().Bits()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v.SetUint(math.MaxUint64 >> (64 - v.Type().Bits()))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(math.Inf(1))
	}

	return w
}

// VertexScore is the per-vertex pair of estimates.
// G is the best known cost-to-goal, RHS the one-step lookahead from successors.
// An absent vertex scores (∞, ∞).
type VertexScore[W Weight] struct {
	G   W
	RHS W
}

// Priority is the lexicographically ordered queue key (K1, K2) with
// K1 = min(g, rhs) + h(start, s) + k_m and K2 = min(g, rhs).
type Priority[W Weight] struct {
	K1 W
	K2 W
}

// Less reports whether p orders strictly before o.
func (p Priority[W]) Less(o Priority[W]) bool {
	if p.K1 != o.K1 {
		return p.K1 < o.K1
	}

	return p.K2 < o.K2
}

// EdgeTo is one entry of an oracle adjacency list: the neighbouring vertex and
// the cost of the edge between it and the queried vertex.
//
// For Successors(u) the edge is u → Target; for Predecessors(v) it is Target → v.
type EdgeTo[N comparable, W Weight] struct {
	Target N
	Cost   W
}

// Edge is a directed edge Predecessor → Successor together with the cost the
// planner assumed for it before a change. It is handed to QueueEdgeUpdate.
type Edge[N comparable, W Weight] struct {
	Predecessor N
	Successor   N
	Cost        W
}

// Oracle is the caller-supplied view of the traversal graph.
// The planner holds the function values but never owns the state they close over.
type Oracle[N comparable, W Weight] struct {
	// Heuristic estimates the cost between two vertices. Admissible and consistent.
	Heuristic func(a, b N) W
	// Successors lists the vertices reachable from n in one step.
	Successors func(n N) []EdgeTo[N, W]
	// Predecessors lists the vertices from which n is reachable in one step.
	Predecessors func(n N) []EdgeTo[N, W]
}

// validate reports the first missing oracle function.
func (o Oracle[N, W]) validate() error {
	switch {
	case o.Heuristic == nil:
		return ErrNilHeuristic
	case o.Successors == nil:
		return ErrNilSuccessors
	case o.Predecessors == nil:
		return ErrNilPredecessors
	}

	return nil
}

// Stats counts the work done by the planner since creation or the last ResetStats.
type Stats struct {
	Expanded   int // vertices popped and expanded by the main loop
	Reinserted int // stale keys pushed back without expansion
	Recomputed int // rhs values rebuilt from a full successor scan
	Updates    int // edge-cost changes absorbed
}

// Options configures a Planner.
type Options[N comparable, W Weight] struct {
	Infinity      W                 // "unreachable" sentinel; defaults to MaxWeight[W]()
	TieBreak      func(a, b N) bool // strict order between equal-cost successors; nil keeps oracle order
	QueueCapacity int               // initial capacity hint for the open queue
}

// Option represents a functional option for configuring a Planner.
type Option[N comparable, W Weight] func(*Options[N, W])

// WithInfinity overrides the infinity sentinel. It must be positive; costs
// whose sum reaches it are treated as unreachable.
func WithInfinity[N comparable, W Weight](inf W) Option[N, W] {
	return func(o *Options[N, W]) {
		if inf <= 0 {
			panic(ErrBadInfinity.Error())
		}
		o.Infinity = inf
	}
}

// WithTieBreak installs a deterministic rule for TryNext: among successors with
// equal cost, a is preferred over b when less(a, b) is true.
func WithTieBreak[N comparable, W Weight](less func(a, b N) bool) Option[N, W] {
	return func(o *Options[N, W]) {
		o.TieBreak = less
	}
}

// WithQueueCapacity presizes the open queue.
func WithQueueCapacity[N comparable, W Weight](n int) Option[N, W] {
	return func(o *Options[N, W]) {
		if n < 0 {
			panic(ErrBadQueueCapacity.Error())
		}
		o.QueueCapacity = n
	}
}

// DefaultOptions returns the defaults: Infinity = MaxWeight[W](), no tie-break
// rule, and a queue capacity hint of 16.
func DefaultOptions[N comparable, W Weight]() Options[N, W] {
	return Options[N, W]{
		Infinity:      MaxWeight[W](),
		TieBreak:      nil,
		QueueCapacity: 16,
	}
}
