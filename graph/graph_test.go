// SPDX-License-Identifier: MIT

package graph_test

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algs4/graph"
)

func TestEdge(t *testing.T) {
	e, err := graph.NewEdge(3, 7, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 3, e.Either())
	w, err := e.Other(3)
	require.NoError(t, err)
	assert.Equal(t, 7, w)
	v, err := e.Other(7)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	_, err = e.Other(4)
	require.ErrorIs(t, err, graph.ErrIllegalEndpoint)
	assert.Equal(t, "3-7 0.25000", e.String())

	f, _ := graph.NewEdge(0, 1, 0.5)
	assert.Negative(t, e.Compare(f))
	assert.Positive(t, f.Compare(e))
	assert.Zero(t, e.Compare(e))

	_, err = graph.NewEdge(-1, 2, 1)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	_, err = graph.NewEdge(1, 2, math.NaN())
	require.ErrorIs(t, err, graph.ErrBadWeight)
}

func TestDirectedEdge(t *testing.T) {
	e, err := graph.NewDirectedEdge(4, 5, 0.35)
	require.NoError(t, err)
	assert.Equal(t, 4, e.From())
	assert.Equal(t, 5, e.To())
	assert.InDelta(t, 0.35, e.Weight(), 1e-12)
	assert.Equal(t, "4->5  0.35", e.String())

	_, err = graph.NewDirectedEdge(0, -3, 1)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestEdgeWeightedGraph(t *testing.T) {
	_, err := graph.NewEdgeWeightedGraph(-1)
	require.ErrorIs(t, err, graph.ErrBadVertexCount)

	g, err := graph.NewEdgeWeightedGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1, 1.5))
	require.NoError(t, g.Connect(1, 2, 2.5))
	require.NoError(t, g.Connect(2, 2, 0.5))
	require.ErrorIs(t, g.Connect(0, 3, 1), graph.ErrVertexOutOfRange)

	assert.Equal(t, 3, g.V())
	assert.Equal(t, 3, g.E())
	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 3, d, "a self-loop counts twice")
	_, err = g.Degree(5)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	adj, err := g.Adj(1)
	require.NoError(t, err)
	assert.Len(t, adj, 2)

	edges := g.Edges()
	require.Len(t, edges, 3)
	total := 0.0
	for _, e := range edges {
		total += e.Weight()
	}
	assert.InDelta(t, 4.5, total, 1e-12)

	assert.Equal(t, "3 3\n0:  0-1 1.50000\n1:  1-2 2.50000  0-1 1.50000\n2:  2-2 0.50000  2-2 0.50000  1-2 2.50000\n", g.String())
}

func TestEdgeWeightedGraph_Digraph(t *testing.T) {
	g, _ := graph.NewEdgeWeightedGraph(3)
	require.NoError(t, g.Connect(0, 1, 1))
	require.NoError(t, g.Connect(2, 2, 1))

	d := g.Digraph()
	assert.Equal(t, 3, d.E())
	out, _ := d.OutDegree(1)
	in, _ := d.InDegree(1)
	assert.Equal(t, 1, out)
	assert.Equal(t, 1, in)
	loops, _ := d.OutDegree(2)
	assert.Equal(t, 1, loops)
}

func TestEdgeWeightedDigraph(t *testing.T) {
	g, err := graph.NewEdgeWeightedDigraph(4)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1, 0.5))
	require.NoError(t, g.Connect(0, 2, 0.25))
	require.NoError(t, g.Connect(2, 1, 0.1))
	require.ErrorIs(t, g.Connect(4, 1, 0.1), graph.ErrVertexOutOfRange)

	out, err := g.OutDegree(0)
	require.NoError(t, err)
	assert.Equal(t, 2, out)
	in, err := g.InDegree(1)
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	_, err = g.InDegree(-1)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	adj, err := g.Adj(3)
	require.NoError(t, err)
	assert.Empty(t, adj)
	assert.Len(t, g.Edges(), 3)
	assert.Equal(t, "4 3\n0:  0->2  0.25  0->1  0.50\n1:\n2:  2->1  0.10\n3:\n", g.String())
}

func TestReadGraph(t *testing.T) {
	f, err := os.Open("testdata/tinyEWG.txt")
	require.NoError(t, err)
	defer f.Close()

	g, err := graph.ReadGraph(f)
	require.NoError(t, err)
	assert.Equal(t, 8, g.V())
	assert.Equal(t, 16, g.E())
	assert.Len(t, g.Edges(), 16)
	d, _ := g.Degree(7)
	assert.Equal(t, 5, d)
}

func TestReadDigraph(t *testing.T) {
	f, err := os.Open("testdata/tinyEWD.txt")
	require.NoError(t, err)
	defer f.Close()

	g, err := graph.ReadDigraph(f)
	require.NoError(t, err)
	assert.Equal(t, 8, g.V())
	assert.Equal(t, 15, g.E())
	in, _ := g.InDegree(4)
	assert.Equal(t, 3, in)
}

func TestRead_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"missing edges":  "3 2\n0 1 0.5\n",
		"bad count":      "x 1",
		"negative":       "-2 0",
		"bad weight":     "2 1\n0 1 heavy",
		"vertex too big": "2 1\n0 2 0.5",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := graph.ReadGraph(strings.NewReader(in))
			require.ErrorIs(t, err, graph.ErrMalformedInput)
			_, err = graph.ReadDigraph(strings.NewReader(in))
			require.ErrorIs(t, err, graph.ErrMalformedInput)
		})
	}
}
