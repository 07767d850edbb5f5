// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexOutOfRange indicates a vertex outside [0, V) or a negative
	// edge endpoint.
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrBadVertexCount indicates a negative number of vertices or edges.
	ErrBadVertexCount = errors.New("graph: number of vertices and edges must be non-negative")

	// ErrBadWeight indicates a NaN edge weight.
	ErrBadWeight = errors.New("graph: edge weight is NaN")

	// ErrIllegalEndpoint indicates Other was called with a vertex that is
	// not an endpoint of the edge.
	ErrIllegalEndpoint = errors.New("graph: illegal endpoint")

	// ErrMalformedInput indicates text that does not follow the
	// "V E then E lines of v w weight" format.
	ErrMalformedInput = errors.New("graph: malformed input")
)

// Edge is an undirected weighted edge between v and w. Edges are immutable
// values.
type Edge struct {
	v, w   int
	weight float64
}

// NewEdge returns the edge v-w with the given weight.
//
// Errors: ErrVertexOutOfRange for a negative endpoint, ErrBadWeight for NaN.
func NewEdge(v, w int, weight float64) (Edge, error) {
	if err := checkEndpoints(v, w, weight); err != nil {
		return Edge{}, err
	}

	return Edge{v: v, w: w, weight: weight}, nil
}

// Weight returns the weight of the edge.
func (e Edge) Weight() float64 { return e.weight }

// Either returns one endpoint of the edge.
func (e Edge) Either() int { return e.v }

// Other returns the endpoint of the edge that is not vertex.
//
// Errors: ErrIllegalEndpoint if vertex is not an endpoint.
func (e Edge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("%w: %d is not on edge %s", ErrIllegalEndpoint, vertex, e)
	}
}

// Compare orders edges by weight.
func (e Edge) Compare(other Edge) int { return cmp.Compare(e.weight, other.weight) }

// String formats the edge as "v-w weight".
func (e Edge) String() string { return fmt.Sprintf("%d-%d %.5f", e.v, e.w, e.weight) }

// DirectedEdge is a weighted edge from v to w.
type DirectedEdge struct {
	v, w   int
	weight float64
}

// NewDirectedEdge returns the edge v->w with the given weight.
//
// Errors: ErrVertexOutOfRange for a negative endpoint, ErrBadWeight for NaN.
func NewDirectedEdge(v, w int, weight float64) (DirectedEdge, error) {
	if err := checkEndpoints(v, w, weight); err != nil {
		return DirectedEdge{}, err
	}

	return DirectedEdge{v: v, w: w, weight: weight}, nil
}

// From returns the tail vertex.
func (e DirectedEdge) From() int { return e.v }

// To returns the head vertex.
func (e DirectedEdge) To() int { return e.w }

// Weight returns the weight of the edge.
func (e DirectedEdge) Weight() float64 { return e.weight }

// String formats the edge as "v->w weight".
func (e DirectedEdge) String() string { return fmt.Sprintf("%d->%d %5.2f", e.v, e.w, e.weight) }

func checkEndpoints(v, w int, weight float64) error {
	if v < 0 || w < 0 {
		return fmt.Errorf("%w: endpoints %d and %d must be non-negative", ErrVertexOutOfRange, v, w)
	}
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: edge %d-%d", ErrBadWeight, v, w)
	}

	return nil
}

func validateVertex(v, n int) error {
	if v < 0 || v >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrVertexOutOfRange, v, n)
	}

	return nil
}
