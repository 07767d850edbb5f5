// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/algs4/graph"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected weighted graph.
// It uses a disjoint-set (union-find) data structure with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrDisconnected : |V| == 0 or |V| > 1 but graph is not fully connected.
//
// Steps:
//  1. Collect all edges via g.Edges(), skipping self-loops.
//  2. Stable-sort them by ascending weight, so ties keep the g.Edges() order.
//  3. Take each edge whose endpoints are still in different components.
//  4. Stop at |V|-1 edges; fewer means the graph is disconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *graph.EdgeWeightedGraph) ([]graph.Edge, float64, error) {
	if g == nil {
		return nil, 0, ErrInvalidGraph
	}
	n := g.V()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []graph.Edge{}, 0, nil
	}

	edges := slices.DeleteFunc(g.Edges(), func(e graph.Edge) bool {
		w, _ := e.Other(e.Either())
		return w == e.Either()
	})
	slices.SortStableFunc(edges, graph.Edge.Compare)

	uf := newUnionFind(n)
	mst := make([]graph.Edge, 0, n-1)
	var totalWeight float64
	for _, e := range edges {
		u := e.Either()
		v, _ := e.Other(u)
		if !uf.union(u, v) {
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight()
		if len(mst) == n-1 {
			break
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}

// unionFind is a disjoint-set forest over 0..n-1.
type unionFind struct {
	parent []int
	rank   []byte
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	return &unionFind{parent: parent, rank: make([]byte, n)}
}

// find returns the root of u, halving the path on the way.
func (uf *unionFind) find(u int) int {
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (uf *unionFind) union(u, v int) bool {
	ru, rv := uf.find(u), uf.find(v)
	if ru == rv {
		return false
	}
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}

	return true
}
