// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/algs4/bag"
)

// EdgeWeightedGraph is an undirected graph on vertices 0..V-1 with weighted
// edges, stored as one adjacency bag per vertex. Parallel edges and
// self-loops are allowed.
//
// Reads and writes are guarded by a sync.RWMutex, so a graph can be filled
// from several goroutines.
type EdgeWeightedGraph struct {
	mu  sync.RWMutex
	v   int
	e   int
	adj []*bag.Bag[Edge]
}

// NewEdgeWeightedGraph returns a graph with V vertices and no edges.
//
// Errors: ErrBadVertexCount if V < 0.
func NewEdgeWeightedGraph(V int) (*EdgeWeightedGraph, error) {
	if V < 0 {
		return nil, fmt.Errorf("%w: V = %d", ErrBadVertexCount, V)
	}
	adj := make([]*bag.Bag[Edge], V)
	for v := range adj {
		adj[v] = bag.New[Edge]()
	}

	return &EdgeWeightedGraph{v: V, adj: adj}, nil
}

// V returns the number of vertices.
func (g *EdgeWeightedGraph) V() int { return g.v }

// E returns the number of edges.
func (g *EdgeWeightedGraph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// AddEdge adds the undirected edge e.
//
// Errors: ErrVertexOutOfRange if an endpoint is not in [0, V).
func (g *EdgeWeightedGraph) AddEdge(e Edge) error {
	if err := validateVertex(e.v, g.v); err != nil {
		return err
	}
	if err := validateVertex(e.w, g.v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.adj[e.v].Add(e)
	g.adj[e.w].Add(e)
	g.e++

	return nil
}

// Connect builds the edge v-w and adds it.
func (g *EdgeWeightedGraph) Connect(v, w int, weight float64) error {
	e, err := NewEdge(v, w, weight)
	if err != nil {
		return err
	}

	return g.AddEdge(e)
}

// Adj returns the edges incident to v. A self-loop appears twice.
//
// Errors: ErrVertexOutOfRange.
func (g *EdgeWeightedGraph) Adj(v int) ([]Edge, error) {
	if err := validateVertex(v, g.v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Collect(g.adj[v].All()), nil
}

// Degree returns the number of edges incident to v, counting a self-loop
// twice.
//
// Errors: ErrVertexOutOfRange.
func (g *EdgeWeightedGraph) Degree(v int) (int, error) {
	if err := validateVertex(v, g.v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v].Size(), nil
}

// Edges returns every edge once, grouped by their smaller endpoint.
func (g *EdgeWeightedGraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, g.e)
	for v := range g.adj {
		loops := 0
		for e := range g.adj[v].All() {
			w := e.v
			if w == v {
				w = e.w
			}
			switch {
			case w > v:
				edges = append(edges, e)
			case w == v:
				// A self-loop sits in adj[v] twice; keep every other copy.
				if loops%2 == 0 {
					edges = append(edges, e)
				}
				loops++
			}
		}
	}

	return edges
}

// Digraph returns the directed view of g: each edge v-w becomes v->w and
// w->v, and a self-loop becomes a single directed loop.
func (g *EdgeWeightedGraph) Digraph() *EdgeWeightedDigraph {
	d, _ := NewEdgeWeightedDigraph(g.v)
	for _, e := range g.Edges() {
		d.adj[e.v].Add(DirectedEdge{v: e.v, w: e.w, weight: e.weight})
		d.indegree[e.w]++
		d.e++
		if e.v != e.w {
			d.adj[e.w].Add(DirectedEdge{v: e.w, w: e.v, weight: e.weight})
			d.indegree[e.v]++
			d.e++
		}
	}

	return d
}

// String renders "V E" followed by one line per vertex listing its edges.
func (g *EdgeWeightedGraph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d %d\n", g.v, g.e)
	for v := range g.adj {
		fmt.Fprintf(&sb, "%d:", v)
		for e := range g.adj[v].All() {
			sb.WriteString("  ")
			sb.WriteString(e.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
