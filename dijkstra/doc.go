// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on edge-weighted digraphs with non-negative weights.
//
// Overview:
//
//   - Dijkstra grows a shortest-path tree from the source, always extracting
//     the queued vertex with the smallest tentative distance and relaxing the
//     edges that leave it.
//   - The frontier is an indexed minimum priority queue from package indexpq,
//     keyed by vertex id. Finding a shorter path to a queued vertex is a
//     DecreaseKey, so the queue never holds more than V entries.
//
// Frontier choice:
//
//   - WithQueue(indexpq.KindFibonacci) (default): O(E + V log V); decrease-key
//     is amortized O(1), which pays off on dense graphs.
//   - WithQueue(indexpq.KindBinary) or KindBinomial: O(E log V).
//   - WithQueue(indexpq.KindMultiway) with WithArity(d): O(E log_d V + V d log_d V).
//
// Every frontier produces the same distances.
//
// Limits:
//
//   - WithMaxDistance(x): paths longer than x are not followed; vertices
//     beyond the cap report HasPathTo == false.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable walls.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        g is nil.
//   - ErrVertexNotFound:  source is outside [0, V).
//   - ErrNegativeWeight:  some edge has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  panic message of WithMaxDistance for negative values.
//   - ErrBadInfThreshold: panic message of WithInfEdgeThreshold for values ≤ 0.
//
// Results:
//
// ShortestPaths answers DistTo, HasPathTo and PathTo per vertex and returns
// the whole tree through Tree.
//
// Complexity:
//
//   - Time:  O(E + V log V) with the Fibonacci frontier.
//   - Space: O(V) for distances, tree edges and the frontier.
package dijkstra
