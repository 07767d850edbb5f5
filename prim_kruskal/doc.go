// SPDX-License-Identifier: MIT

// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, edge-weighted *graph.EdgeWeightedGraph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that connects
//     every vertex and has the least total weight.
//   - MSTs are used in network design, clustering (cut the heaviest tree edges) and as
//     subroutines of approximation algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g) ([]graph.Edge, float64, error)
//
//   - Sort all edges by weight and take each one that joins two different components,
//     tracked with a union-find forest (path halving, union by rank).
//
//   - Time O(E log E); space O(V + E). The sort is stable, so equal weights keep
//     the g.Edges() order.
//
//   - Prim(g, root, opts...) ([]graph.Edge, float64, error)
//
//   - Grow one tree from root. The frontier is an indexed priority queue from package
//     indexpq with one entry per outside vertex, keyed by its lightest edge into the
//     tree; a lighter edge found later is a DecreaseKey.
//
//   - Time O(E + V log V) with the default Fibonacci frontier, O(E log V) with the
//     binary or binomial ones; space O(V).
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// When to Choose Which Algorithm
//
//   - Prim suits dense graphs: its cost is driven by decrease-key, which the Fibonacci
//     frontier makes amortized O(1).
//   - Kruskal suits sparse graphs and one-off computations: one sort, no priority queue.
//
// Error Conditions
//
//   - ErrInvalidGraph: g is nil, or Compute got an unknown Method.
//   - graph.ErrVertexOutOfRange (Prim only): root is not in [0, V).
//   - ErrDisconnected: |V| == 0, or the graph is not connected.
//
// Self-loops never enter a spanning tree; of parallel edges only the lightest can.
package prim_kruskal
