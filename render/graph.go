// SPDX-License-Identifier: MIT

package render

import "github.com/katalvlaran/algs4/graph"

// DigraphArcs lists every edge of g as an Arc, highlighting those in tree.
// Parallel edges equal to a tree edge are highlighted too.
func DigraphArcs(g *graph.EdgeWeightedDigraph, tree []graph.DirectedEdge) []Arc {
	marked := make(map[graph.DirectedEdge]bool, len(tree))
	for _, e := range tree {
		marked[e] = true
	}

	edges := g.Edges()
	arcs := make([]Arc, 0, len(edges))
	for _, e := range edges {
		arcs = append(arcs, Arc{From: e.From(), To: e.To(), Weight: e.Weight(), Highlight: marked[e]})
	}
	return arcs
}

// GraphArcs lists every edge of g once as an Arc, highlighting those in tree.
func GraphArcs(g *graph.EdgeWeightedGraph, tree []graph.Edge) []Arc {
	marked := make(map[graph.Edge]bool, len(tree))
	for _, e := range tree {
		marked[e] = true
	}

	edges := g.Edges()
	arcs := make([]Arc, 0, len(edges))
	for _, e := range edges {
		v := e.Either()
		w, _ := e.Other(v)
		arcs = append(arcs, Arc{From: v, To: w, Weight: e.Weight(), Highlight: marked[e]})
	}
	return arcs
}
