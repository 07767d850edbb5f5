// SPDX-License-Identifier: MIT

// Package graph defines the weighted graph types consumed by the dijkstra
// and prim_kruskal packages.
//
// Vertices are the integers 0..V-1. Edge and DirectedEdge are immutable
// values; EdgeWeightedGraph and EdgeWeightedDigraph keep one adjacency bag
// per vertex and allow parallel edges and self-loops.
//
// Input format (ReadGraph, ReadDigraph):
//
//	8          number of vertices V
//	16         number of edges E
//	4 5 0.35   E triples "v w weight", whitespace separated
//	4 7 0.37
//	...
//
// Errors:
//
//	ErrVertexOutOfRange - a vertex outside [0, V) or a negative endpoint.
//	ErrBadVertexCount   - a negative V or E.
//	ErrBadWeight        - a NaN weight.
//	ErrIllegalEndpoint  - Edge.Other called with a foreign vertex.
//	ErrMalformedInput   - text that does not follow the input format.
//
// Graphs guard their adjacency lists with a sync.RWMutex; Adj and Edges
// return copies that callers may keep.
package graph
