// SPDX-License-Identifier: MIT

package graph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// tokens reads whitespace-separated fields and remembers how many it has
// consumed, so parse errors can name the offending token.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

func (t *tokens) next(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", fmt.Errorf("%w: reading %s: %w", ErrMalformedInput, what, err)
		}
		return "", fmt.Errorf("%w: token %d: missing %s", ErrMalformedInput, t.pos+1, what)
	}
	t.pos++

	return t.sc.Text(), nil
}

func (t *tokens) readInt(what string) (int, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %s %q is not an integer", ErrMalformedInput, t.pos, what, s)
	}

	return n, nil
}

func (t *tokens) readFloat(what string) (float64, error) {
	s, err := t.next(what)
	if err != nil {
		return 0, err
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d: %s %q is not a number", ErrMalformedInput, t.pos, what, s)
	}

	return x, nil
}

// header reads V and E.
func (t *tokens) header() (int, int, error) {
	V, err := t.readInt("vertex count")
	if err != nil {
		return 0, 0, err
	}
	E, err := t.readInt("edge count")
	if err != nil {
		return 0, 0, err
	}
	if V < 0 || E < 0 {
		return 0, 0, fmt.Errorf("%w: %w: V = %d, E = %d", ErrMalformedInput, ErrBadVertexCount, V, E)
	}

	return V, E, nil
}

// edge reads one "v w weight" triple.
func (t *tokens) edge() (int, int, float64, error) {
	v, err := t.readInt("edge tail")
	if err != nil {
		return 0, 0, 0, err
	}
	w, err := t.readInt("edge head")
	if err != nil {
		return 0, 0, 0, err
	}
	weight, err := t.readFloat("edge weight")
	if err != nil {
		return 0, 0, 0, err
	}

	return v, w, weight, nil
}

// ReadGraph parses an undirected graph: the vertex count V, the edge count
// E, then E lines of "v w weight".
//
// Errors: ErrMalformedInput wrapping the position of the bad token, or the
// vertex error of an edge outside [0, V).
func ReadGraph(r io.Reader) (*EdgeWeightedGraph, error) {
	t := newTokens(r)
	V, E, err := t.header()
	if err != nil {
		return nil, err
	}
	g, err := NewEdgeWeightedGraph(V)
	if err != nil {
		return nil, err
	}
	for i := range E {
		v, w, weight, err := t.edge()
		if err != nil {
			return nil, err
		}
		if err := g.Connect(v, w, weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformedInput, i, err)
		}
	}

	return g, nil
}

// ReadDigraph parses a directed graph in the same format as ReadGraph;
// each line "v w weight" is the edge v->w.
func ReadDigraph(r io.Reader) (*EdgeWeightedDigraph, error) {
	t := newTokens(r)
	V, E, err := t.header()
	if err != nil {
		return nil, err
	}
	g, err := NewEdgeWeightedDigraph(V)
	if err != nil {
		return nil, err
	}
	for i := range E {
		v, w, weight, err := t.edge()
		if err != nil {
			return nil, err
		}
		if err := g.Connect(v, w, weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrMalformedInput, i, err)
		}
	}

	return g, nil
}
