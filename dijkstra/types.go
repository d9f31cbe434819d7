package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed to NewSearch.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates that a path was requested to a vertex that
	// has no recorded distance from the start vertex.
	ErrUnreachable = errors.New("dijkstra: target is unreachable")

	// ErrBadMaxDistance indicates that MaxDistance is negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold is zero, negative or NaN,
	// which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// NoTarget disables early exit.
const NoTarget = -1

// VertexState is the lifecycle position of a vertex during one run.
type VertexState uint8

const (
	// Unvisited vertices have no recorded distance.
	Unvisited VertexState = iota

	// Frontier vertices have a tentative distance and are waiting in the queue.
	Frontier

	// Finalized vertices have been extracted; their distance will not change.
	Finalized
)

// String returns the lower-case state name.
func (s VertexState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Frontier:
		return "frontier"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Options configures a Search.
//
// MaxDistance      – candidates whose total cost exceeds it are not recorded.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is +Inf (no obstacles).
//
// Target           – vertex whose finalization ends the run; NoTarget runs to exhaustion.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
	Target           int
}

// Option represents a functional option for configuring a Search.
type Option func(*Options)

// DefaultOptions returns the configuration of a plain, exhaustive search.
//
// Defaults:
//   - MaxDistance:      +Inf
//   - InfEdgeThreshold: +Inf
//   - Target:           NoTarget
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
		Target:           NoTarget,
	}
}

// WithMaxDistance sets a maximum total distance to explore.
// Invalid values are reported by NewSearch as ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as impassable.
// Invalid values are reported by NewSearch as ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithTarget stops the run as soon as target is finalized. The result then
// holds final distances for every finalized vertex and tentative ones for the
// frontier.
func WithTarget(target int) Option {
	return func(o *Options) {
		o.Target = target
	}
}

// validate checks option domains; the graph-dependent Target check lives in NewSearch.
func (o Options) validate() error {
	if o.MaxDistance < 0 || math.IsNaN(o.MaxDistance) {
		return ErrBadMaxDistance
	}
	if o.InfEdgeThreshold <= 0 || math.IsNaN(o.InfEdgeThreshold) {
		return ErrBadInfThreshold
	}

	return nil
}
