// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/algs4/graph"
	"github.com/katalvlaran/algs4/indexpq"
)

// Dijkstra computes shortest paths from source to every vertex of g that
// can be reached within the configured limits.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in [0, V) (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// The frontier is an indexed priority queue keyed by vertex, so a shorter
// path found for a queued vertex is a DecreaseKey rather than a duplicate
// entry. With the default Fibonacci heap this gives O(E + V log V).
func Dijkstra(g *graph.EdgeWeightedDigraph, source int, opts ...Option) (*ShortestPaths, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	V := g.V()
	if source < 0 || source >= V {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrVertexNotFound, source, V)
	}

	// Pre-scan all edges to fail fast on negative weights.
	for _, e := range g.Edges() {
		if e.Weight() < 0 {
			return nil, fmt.Errorf("%w: edge %s", ErrNegativeWeight, e)
		}
	}

	pq, err := indexpq.New[float64](cfg.Queue, V, indexpq.WithArity(cfg.Arity))
	if err != nil {
		return nil, fmt.Errorf("dijkstra: building frontier: %w", err)
	}

	r := &runner{
		g:       g,
		options: cfg,
		pq:      pq,
		sp: &ShortestPaths{
			source: source,
			distTo: make([]float64, V),
			edgeTo: make([]graph.DirectedEdge, V),
		},
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.sp, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *graph.EdgeWeightedDigraph
	options Options
	pq      indexpq.Interface[float64]
	sp      *ShortestPaths
}

// init sets every distance to +Inf except the source and queues the source.
func (r *runner) init() error {
	for v := range r.sp.distTo {
		r.sp.distTo[v] = math.Inf(1)
	}
	r.sp.distTo[r.sp.source] = 0

	return r.pq.Insert(r.sp.source, 0)
}

// process extracts the closest queued vertex until the frontier is empty.
// A vertex leaves the queue exactly once; its distance is final then.
func (r *runner) process() error {
	for !r.pq.IsEmpty() {
		u, err := r.pq.DelMin()
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u and improves the distance of its head
// when a strictly shorter path is found. Edges at or above InfEdgeThreshold
// are skipped, and so are paths longer than MaxDistance.
func (r *runner) relax(u int) error {
	adj, err := r.g.Adj(u)
	if err != nil {
		return fmt.Errorf("dijkstra: edges of %d: %w", u, err)
	}

	for _, e := range adj {
		w := e.Weight()
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		v := e.To()
		newDist := r.sp.distTo[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.sp.distTo[v] {
			continue
		}
		r.sp.distTo[v] = newDist
		r.sp.edgeTo[v] = e

		queued, err := r.pq.Contains(v)
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
		if queued {
			err = r.pq.DecreaseKey(v, newDist)
		} else {
			err = r.pq.Insert(v, newDist)
		}
		if err != nil {
			return fmt.Errorf("dijkstra: %w", err)
		}
	}

	return nil
}

// ShortestPaths is the shortest-path tree computed by Dijkstra.
type ShortestPaths struct {
	source int
	distTo []float64
	edgeTo []graph.DirectedEdge // last edge on the path to v; zero for the source and unreached vertices
}

// Source returns the source vertex.
func (sp *ShortestPaths) Source() int { return sp.source }

// DistTo returns the length of a shortest path from the source to v, or
// +Inf when v is unreached.
//
// Errors: graph.ErrVertexOutOfRange.
func (sp *ShortestPaths) DistTo(v int) (float64, error) {
	if err := sp.validate(v); err != nil {
		return 0, err
	}

	return sp.distTo[v], nil
}

// HasPathTo reports whether v was reached. It is false for vertices
// outside [0, V).
func (sp *ShortestPaths) HasPathTo(v int) bool {
	return v >= 0 && v < len(sp.distTo) && !math.IsInf(sp.distTo[v], 1)
}

// PathTo returns the edges of a shortest path from the source to v, in
// order. It is empty for the source itself and nil when v is unreached.
//
// Errors: graph.ErrVertexOutOfRange.
func (sp *ShortestPaths) PathTo(v int) ([]graph.DirectedEdge, error) {
	if err := sp.validate(v); err != nil {
		return nil, err
	}
	if !sp.HasPathTo(v) {
		return nil, nil
	}

	path := []graph.DirectedEdge{}
	for x := v; x != sp.source; {
		e := sp.edgeTo[x]
		path = append(path, e)
		x = e.From()
	}
	slices.Reverse(path)

	return path, nil
}

// Tree returns the edge into every reached vertex other than the source,
// ordered by head vertex.
func (sp *ShortestPaths) Tree() []graph.DirectedEdge {
	var tree []graph.DirectedEdge
	for v := range sp.edgeTo {
		if v != sp.source && sp.HasPathTo(v) {
			tree = append(tree, sp.edgeTo[v])
		}
	}

	return tree
}

func (sp *ShortestPaths) validate(v int) error {
	if v < 0 || v >= len(sp.distTo) {
		return fmt.Errorf("%w: %d not in [0, %d)", graph.ErrVertexOutOfRange, v, len(sp.distTo))
	}

	return nil
}
