// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/algs4/graph"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is not in [0, V).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by result queries for a vertex the search never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex and its depth from the start.
	OnEnqueue func(v, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(v, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterEdge can skip edges by returning false.
	FilterEdge func(e graph.DirectedEdge) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all edges followed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(int, int) {},
		OnDequeue:  func(int, int) {},
		OnVisit:    func(int, int) error { return nil },
		MaxDepth:   0,
		FilterEdge: func(graph.DirectedEdge) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(v, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterEdge skips edges for which fn returns false.
func WithFilterEdge(fn func(e graph.DirectedEdge) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterEdge = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: edge count from the start, -1 for unreached vertices.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached vertices.
type BFSResult struct {
	Source int
	Order  []int
	Depth  []int
	Parent []int
}

// HasPathTo reports whether v was reached. Out-of-range vertices are not.
func (r *BFSResult) HasPathTo(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the vertex sequence from the start to dest, both included.
// Returns ErrNotReached if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if !r.HasPathTo(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
