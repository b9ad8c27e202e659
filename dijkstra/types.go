package dijkstra

import (
	"errors"
	"math"
)

var (
	// ErrNilNeighbors is returned when Dijkstra gets no neighbour function.
	ErrNilNeighbors = errors.New("dijkstra: neighbour function is nil")

	// ErrNegativeWeight is returned as soon as relaxation meets a negative arc.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance is the panic value of WithMaxDistance(limit < 0).
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold is the panic value of WithInfEdgeThreshold(threshold <= 0).
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the distance reported for vertices the search never reached.
const Unreachable int64 = math.MaxInt64

// Arc is one outgoing edge of a vertex: the head vertex and the arc weight.
type Arc[N comparable] struct {
	To     N
	Weight int64
}

// Options tunes one search. Build it through the With* options; the zero
// value is not usable, start from DefaultOptions.
type Options struct {
	ReturnPath       bool  // fill and return the predecessor map
	MaxDistance      int64 // vertices farther than this stay undiscovered
	InfEdgeThreshold int64 // arcs at or above this weight count as walls
}

// Option mutates Options before the search starts.
type Option func(*Options)

// WithReturnPath asks Dijkstra for the predecessor map, for use with PathTo.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance bounds the search radius. It panics with ErrBadMaxDistance
// on a negative radius.
func WithMaxDistance(limit int64) Option {
	if limit < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = limit }
}

// WithInfEdgeThreshold sets the weight from which an arc is impassable, so a
// planner's saturated costs can be fed in unchanged. It panics with
// ErrBadInfThreshold unless threshold > 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions explores everything reachable, treats no arc as a wall and
// returns no predecessor map.
func DefaultOptions() Options {
	return Options{MaxDistance: Unreachable, InfEdgeThreshold: Unreachable}
}
