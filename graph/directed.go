// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/algs4/bag"
)

// EdgeWeightedDigraph is a directed graph on vertices 0..V-1 with weighted
// edges. Each vertex keeps a bag of the edges leaving it and a count of the
// edges entering it. Parallel edges and self-loops are allowed.
//
// Reads and writes are guarded by a sync.RWMutex.
type EdgeWeightedDigraph struct {
	mu       sync.RWMutex
	v        int
	e        int
	adj      []*bag.Bag[DirectedEdge]
	indegree []int
}

// NewEdgeWeightedDigraph returns a digraph with V vertices and no edges.
//
// Errors: ErrBadVertexCount if V < 0.
func NewEdgeWeightedDigraph(V int) (*EdgeWeightedDigraph, error) {
	if V < 0 {
		return nil, fmt.Errorf("%w: V = %d", ErrBadVertexCount, V)
	}
	adj := make([]*bag.Bag[DirectedEdge], V)
	for v := range adj {
		adj[v] = bag.New[DirectedEdge]()
	}

	return &EdgeWeightedDigraph{v: V, adj: adj, indegree: make([]int, V)}, nil
}

// V returns the number of vertices.
func (g *EdgeWeightedDigraph) V() int { return g.v }

// E returns the number of edges.
func (g *EdgeWeightedDigraph) E() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// AddEdge adds the directed edge e.
//
// Errors: ErrVertexOutOfRange if an endpoint is not in [0, V).
func (g *EdgeWeightedDigraph) AddEdge(e DirectedEdge) error {
	if err := validateVertex(e.v, g.v); err != nil {
		return err
	}
	if err := validateVertex(e.w, g.v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.adj[e.v].Add(e)
	g.indegree[e.w]++
	g.e++

	return nil
}

// Connect builds the edge v->w and adds it.
func (g *EdgeWeightedDigraph) Connect(v, w int, weight float64) error {
	e, err := NewDirectedEdge(v, w, weight)
	if err != nil {
		return err
	}

	return g.AddEdge(e)
}

// Adj returns the edges leaving v.
//
// Errors: ErrVertexOutOfRange.
func (g *EdgeWeightedDigraph) Adj(v int) ([]DirectedEdge, error) {
	if err := validateVertex(v, g.v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Collect(g.adj[v].All()), nil
}

// OutDegree returns the number of edges leaving v.
//
// Errors: ErrVertexOutOfRange.
func (g *EdgeWeightedDigraph) OutDegree(v int) (int, error) {
	if err := validateVertex(v, g.v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adj[v].Size(), nil
}

// InDegree returns the number of edges entering v.
//
// Errors: ErrVertexOutOfRange.
func (g *EdgeWeightedDigraph) InDegree(v int) (int, error) {
	if err := validateVertex(v, g.v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.indegree[v], nil
}

// Edges returns every edge, grouped by tail vertex.
func (g *EdgeWeightedDigraph) Edges() []DirectedEdge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]DirectedEdge, 0, g.e)
	for v := range g.adj {
		for e := range g.adj[v].All() {
			edges = append(edges, e)
		}
	}

	return edges
}

// String renders "V E" followed by one line per vertex listing its
// outgoing edges.
func (g *EdgeWeightedDigraph) String() string {
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
