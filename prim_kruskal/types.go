// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/algs4/graph"
	"github.com/katalvlaran/algs4/indexpq"
)

// ErrInvalidGraph indicates a nil graph or an unknown MSTOptions.Method.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil undirected graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. It also applies to a graph with no vertices.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// MethodPrim selects Prim's algorithm (grow from a root with an indexed priority queue).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and, for Prim, where it
// starts and which priority queue it grows with.
//
// Fields:
//
//	Method string      : one of MethodPrim or MethodKruskal.
//	Root   int         : start vertex for Prim; ignored by Kruskal.
//	Queue  indexpq.Kind: Prim's frontier; ignored by Kruskal.
//	Arity  int         : branching factor when Queue is KindMultiway.
type MSTOptions struct {
	Method string
	Root   int
	Queue  indexpq.Kind
	Arity  int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithQueue selects Prim's frontier implementation.
func WithQueue(kind indexpq.Kind) Option {
	return func(opts *MSTOptions) {
		opts.Queue = kind
	}
}

// WithArity sets the branching factor of a KindMultiway frontier.
func WithArity(d int) Option {
	return func(opts *MSTOptions) {
		opts.Arity = d
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = 0
//	– Queue  = indexpq.KindFibonacci, Arity = indexpq.DefaultArity.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
		Queue:  indexpq.KindFibonacci,
		Arity:  indexpq.DefaultArity,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– If opts.Method == MethodKruskal: calls Kruskal(g).
//	– If opts.Method == MethodPrim:    calls Prim(g, opts.Root) with opts.Queue and opts.Arity.
//	– Otherwise:                        returns ErrInvalidGraph.
func Compute(g *graph.EdgeWeightedGraph, opts MSTOptions) ([]graph.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		return Prim(g, opts.Root, WithQueue(opts.Queue), WithArity(opts.Arity))
	default:
		return nil, 0, ErrInvalidGraph
	}
}
