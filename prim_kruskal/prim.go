// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algs4/graph"
	"github.com/katalvlaran/algs4/indexpq"
)

// Prim computes the Minimum Spanning Tree (MST) of an undirected weighted
// graph by growing it from root. This is the eager variant: the frontier
// holds one entry per outside vertex, keyed by the lightest known edge into
// the tree, and a lighter edge is a DecreaseKey.
//
// Only Queue and Arity of the options are used.
//
// Error Conditions:
//   - ErrInvalidGraph          : graph is nil.
//   - ErrDisconnected          : |V| == 0, or some vertex cannot be reached from root.
//   - graph.ErrVertexOutOfRange: root is not in [0, V).
//
// Edges are returned in the order their far endpoints joined the tree.
//
// Complexity: O(E + V log V) with the default Fibonacci frontier, O(V) memory.
func Prim(g *graph.EdgeWeightedGraph, root int, opts ...Option) ([]graph.Edge, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Queue == "" {
		cfg.Queue = indexpq.KindFibonacci
	}
	if cfg.Arity == 0 {
		cfg.Arity = indexpq.DefaultArity
	}

	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.V()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if root < 0 || root >= n {
		return nil, 0, fmt.Errorf("%w: root %d not in [0, %d)", graph.ErrVertexOutOfRange, root, n)
	}

	pq, err := indexpq.New[float64](cfg.Queue, n, indexpq.WithArity(cfg.Arity))
	if err != nil {
		return nil, 0, fmt.Errorf("prim_kruskal: building frontier: %w", err)
	}

	edgeTo := make([]graph.Edge, n)
	distTo := make([]float64, n)
	marked := make([]bool, n)
	for v := range distTo {
		distTo[v] = math.Inf(1)
	}
	distTo[root] = 0
	if err := pq.Insert(root, 0); err != nil {
		return nil, 0, err
	}

	mst := make([]graph.Edge, 0, n-1)
	var totalWeight float64
	for !pq.IsEmpty() {
		v, err := pq.DelMin()
		if err != nil {
			return nil, 0, err
		}
		marked[v] = true
		if v != root {
			mst = append(mst, edgeTo[v])
			totalWeight += edgeTo[v].Weight()
		}

		adj, err := g.Adj(v)
		if err != nil {
			return nil, 0, err
		}
		for _, e := range adj {
			w, err := e.Other(v)
			if err != nil {
				return nil, 0, err
			}
			if marked[w] || e.Weight() >= distTo[w] {
				continue
			}
			edgeTo[w] = e
			distTo[w] = e.Weight()
			queued, err := pq.Contains(w)
			if err != nil {
				return nil, 0, err
			}
			if queued {
				err = pq.DecreaseKey(w, distTo[w])
			} else {
				err = pq.Insert(w, distTo[w])
			}
			if err != nil {
				return nil, 0, err
			}
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
