// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math/rand"
)

// NewRandomDigraph returns a digraph with V vertices and E edges whose
// endpoints are drawn uniformly from r and whose weights are multiples of
// 0.01 in [0, 1).
//
// Errors: ErrBadVertexCount if V or E is negative, or if E > 0 and V == 0.
func NewRandomDigraph(V, E int, r *rand.Rand) (*EdgeWeightedDigraph, error) {
	if err := checkRandomCounts(V, E); err != nil {
		return nil, err
	}
	g, err := NewEdgeWeightedDigraph(V)
	if err != nil {
		return nil, err
	}
	for range E {
		v, w := r.Intn(V), r.Intn(V)
		g.adj[v].Add(DirectedEdge{v: v, w: w, weight: 0.01 * float64(r.Intn(100))})
		g.indegree[w]++
		g.e++
	}

	return g, nil
}

// NewRandomGraph is the undirected counterpart of NewRandomDigraph.
func NewRandomGraph(V, E int, r *rand.Rand) (*EdgeWeightedGraph, error) {
	if err := checkRandomCounts(V, E); err != nil {
		return nil, err
	}
	g, err := NewEdgeWeightedGraph(V)
	if err != nil {
		return nil, err
	}
	for range E {
		e := Edge{v: r.Intn(V), w: r.Intn(V), weight: 0.01 * float64(r.Intn(100))}
		g.adj[e.v].Add(e)
		g.adj[e.w].Add(e)
		g.e++
	}

	return g, nil
}

func checkRandomCounts(V, E int) error {
	if V < 0 || E < 0 {
		return fmt.Errorf("%w: V = %d, E = %d", ErrBadVertexCount, V, E)
	}
	if E > 0 && V == 0 {
		return fmt.Errorf("%w: cannot place %d edges on an empty vertex set", ErrBadVertexCount, E)
	}

	return nil
}
