// SPDX-License-Identifier: MIT

// Package algs4 is a collection of indexed priority queues and the graph
// algorithms built on them.
//
// The centerpiece is indexpq.IndexFibonacciMinPQ, an indexed Fibonacci heap
// with amortized O(1) Insert and DecreaseKey. It shares indexpq.Interface
// with binary, d-ary and binomial siblings, so every algorithm can swap its
// frontier by naming an indexpq.Kind.
//
// Subpackages:
//
//	indexpq/       indexed min/max priority queues (Fibonacci, binomial, binary, d-ary)
//	graph/         edge-weighted graphs and digraphs, algs4 text format reader, random graphs
//	dijkstra/      single-source shortest paths with a selectable frontier
//	prim_kruskal/  minimum spanning trees (eager Prim, Kruskal)
//	bfs/           fewest-edge paths
//	bag/, queue/   the linked containers the graphs and searches are built on
//	stats/         running mean and standard deviation
//	render/        Graphviz DOT and SVG output
//	cmd/algs4      command-line clients (sp, mst, hops, merge, pq)
//
// Quick example:
//
//	sp, _ := dijkstra.Dijkstra(g, 0, dijkstra.WithQueue(indexpq.KindFibonacci))
//	path, _ := sp.PathTo(6)
//
// Library packages never log and report failures as wrapped sentinel errors
// matched with errors.Is. None of the priority queues are safe for
// concurrent use; graphs guard their adjacency lists with a sync.RWMutex.
package algs4
