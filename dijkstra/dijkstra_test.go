// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algs4/bfs"
	"github.com/katalvlaran/algs4/dijkstra"
	"github.com/katalvlaran/algs4/graph"
	"github.com/katalvlaran/algs4/indexpq"
)

// tinyEWD is the eight-vertex digraph used throughout the tests.
const tinyEWD = `8 15
4 5 0.35
5 4 0.35
4 7 0.37
5 7 0.28
7 5 0.28
5 1 0.32
0 4 0.38
0 2 0.26
7 3 0.39
1 3 0.29
2 7 0.34
6 2 0.40
3 6 0.52
6 0 0.58
6 4 0.93
`

func readTiny(t testing.TB) *graph.EdgeWeightedDigraph {
	t.Helper()
	g, err := graph.ReadDigraph(strings.NewReader(tinyEWD))
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, 0)
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := readTiny(t)
	_, err := dijkstra.Dijkstra(g, 8)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra(g, -1)
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeight(t *testing.T) {
	g, _ := graph.NewEdgeWeightedDigraph(2)
	require.NoError(t, g.Connect(0, 1, -5))
	_, err := dijkstra.Dijkstra(g, 0)
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "0->1")
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, dijkstra.ErrBadMaxDistance.Error(), func() { dijkstra.WithMaxDistance(-1) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.PanicsWithValue(t, dijkstra.ErrBadInfThreshold.Error(), func() { dijkstra.WithInfEdgeThreshold(math.NaN()) })
	assert.Panics(t, func() { dijkstra.WithArity(1) })
	assert.Panics(t, func() { dijkstra.WithQueue("pairing") })
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_TinyEWD(t *testing.T) {
	want := []float64{0, 1.05, 0.26, 0.99, 0.38, 0.73, 1.51, 0.60}

	for _, kind := range indexpq.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			sp, err := dijkstra.Dijkstra(readTiny(t), 0, dijkstra.WithQueue(kind))
			require.NoError(t, err)
			assert.Equal(t, 0, sp.Source())
			for v, d := range want {
				got, err := sp.DistTo(v)
				require.NoError(t, err)
				assert.InDelta(t, d, got, 1e-9, "vertex %d", v)
			}

			path, err := sp.PathTo(6)
			require.NoError(t, err)
			var hops []string
			for _, e := range path {
				hops = append(hops, e.String())
			}
			assert.Equal(t, []string{"0->2  0.26", "2->7  0.34", "7->3  0.39", "3->6  0.52"}, hops)
			assert.Len(t, sp.Tree(), 7)
		})
	}
}

func TestDijkstra_SourcePath(t *testing.T) {
	sp, err := dijkstra.Dijkstra(readTiny(t), 3)
	require.NoError(t, err)
	path, err := sp.PathTo(3)
	require.NoError(t, err)
	assert.NotNil(t, path)
	assert.Empty(t, path)

	_, err = sp.PathTo(9)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	_, err = sp.DistTo(-1)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	assert.False(t, sp.HasPathTo(9))
}

func TestDijkstra_Unreachable(t *testing.T) {
	g, _ := graph.NewEdgeWeightedDigraph(3)
	require.NoError(t, g.Connect(0, 1, 1))
	require.NoError(t, g.Connect(2, 0, 1))

	sp, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.True(t, sp.HasPathTo(1))
	assert.False(t, sp.HasPathTo(2))
	d, _ := sp.DistTo(2)
	assert.True(t, math.IsInf(d, 1))
	path, err := sp.PathTo(2)
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestDijkstra_SelfLoopAndParallel(t *testing.T) {
	g, _ := graph.NewEdgeWeightedDigraph(2)
	require.NoError(t, g.Connect(0, 0, 0))
	require.NoError(t, g.Connect(0, 1, 3))
	require.NoError(t, g.Connect(0, 1, 2))

	sp, err := dijkstra.Dijkstra(g, 0)
	require.NoError(t, err)
	d, _ := sp.DistTo(1)
	assert.InDelta(t, 2.0, d, 0)
}

// ------------------------------------------------------------------------
// 3. Limits
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	sp, err := dijkstra.Dijkstra(readTiny(t), 0, dijkstra.WithMaxDistance(0.7))
	require.NoError(t, err)
	for v, reached := range []bool{true, false, true, false, true, false, false, true} {
		assert.Equal(t, reached, sp.HasPathTo(v), "vertex %d", v)
	}
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	// Walls at 0.35 and above cut 0->4 and 4->5, so 5 is reached via 2->7->5.
	sp, err := dijkstra.Dijkstra(readTiny(t), 0, dijkstra.WithInfEdgeThreshold(0.35))
	require.NoError(t, err)
	assert.False(t, sp.HasPathTo(4))
	d, _ := sp.DistTo(5)
	assert.InDelta(t, 0.26+0.34+0.28, d, 1e-9)
}

// ------------------------------------------------------------------------
// 4. Cross-check every frontier on random digraphs
// ------------------------------------------------------------------------

func TestDijkstra_FrontiersAgree(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := range 20 {
		g, err := graph.NewRandomDigraph(60, 400, r)
		require.NoError(t, err)
		src := r.Intn(60)

		base, err := dijkstra.Dijkstra(g, src, dijkstra.WithQueue(indexpq.KindBinary))
		require.NoError(t, err)
		for _, kind := range indexpq.Kinds() {
			sp, err := dijkstra.Dijkstra(g, src, dijkstra.WithQueue(kind), dijkstra.WithArity(3))
			require.NoError(t, err)
			for v := range g.V() {
				want, _ := base.DistTo(v)
				got, _ := sp.DistTo(v)
				if math.IsInf(want, 1) {
					assert.True(t, math.IsInf(got, 1), "round %d kind %s vertex %d", round, kind, v)
					continue
				}
				assert.InDelta(t, want, got, 1e-9, "round %d kind %s vertex %d", round, kind, v)
			}
		}

		// Dijkstra reaches exactly what a breadth-first search reaches.
		hops, err := bfs.BFS(g, src)
		require.NoError(t, err)
		for v := range g.V() {
			assert.Equal(t, hops.HasPathTo(v), base.HasPathTo(v), "round %d vertex %d", round, v)
		}

		// Every tree edge must be tight.
		for _, e := range base.Tree() {
			du, _ := base.DistTo(e.From())
			dv, _ := base.DistTo(e.To())
			assert.InDelta(t, du+e.Weight(), dv, 1e-9)
		}
	}
}
