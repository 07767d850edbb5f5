// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a graph.EdgeWeightedDigraph,
// returning hop-count distances, parent links, and visit order. Edge weights
// are ignored: every edge counts as one hop.
//
// Use it to find the fewest-edge path or the set of vertices reachable from
// a source; the dijkstra package answers the weighted question.
//
// Determinism
//
//	Neighbors are taken in graph.Adj order, so the visit sequence is
//	reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterEdge(func(e graph.DirectedEdge) bool { return e.Weight() < 1 }),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the source is not in [0, V).
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached           from PathTo for an unreached vertex.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
