// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/algs4/indexpq"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.EdgeWeightedDigraph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is not in [0, V).
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative or NaN value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero, a
	// negative value or NaN, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Queue            – indexed priority queue used as the frontier. Default KindFibonacci.
// Arity            – branching factor when Queue is KindMultiway. Default indexpq.DefaultArity.
// MaxDistance      – vertices whose distance would exceed this value are left unreached.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Queue            indexpq.Kind
	Arity            int
	MaxDistance      float64
	InfEdgeThreshold float64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithQueue selects the frontier implementation. An unknown kind panics.
func WithQueue(kind indexpq.Kind) Option {
	k, err := indexpq.ParseKind(string(kind))
	if err != nil {
		panic(err.Error())
	}

	return func(o *Options) {
		o.Queue = k
	}
}

// WithArity sets the branching factor of a KindMultiway frontier.
// Values below 2 panic.
func WithArity(d int) Option {
	if d < 2 {
		panic("dijkstra: arity must be at least 2")
	}

	return func(o *Options) {
		o.Arity = d
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative or NaN values panic with ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are treated as impassable. Zero, negative or NaN values panic with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	if !(threshold > 0) {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the defaults:
//   - Queue:            indexpq.KindFibonacci.
//   - Arity:            indexpq.DefaultArity.
//   - MaxDistance:      +Inf (explore everything reachable).
//   - InfEdgeThreshold: +Inf (no edge is impassable).
func DefaultOptions() Options {
	return Options{
		Queue:            indexpq.KindFibonacci,
		Arity:            indexpq.DefaultArity,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
