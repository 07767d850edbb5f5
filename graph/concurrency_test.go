// SPDX-License-Identifier: MIT

package graph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algs4/graph"
)

// TestConcurrentConnect ensures that concurrent Connect calls all land.
func TestConcurrentConnect(t *testing.T) {
	const num = 200
	g, err := graph.NewEdgeWeightedGraph(num + 1)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.Connect(0, id, float64(id)))
		}(i)
	}
	wg.Wait()

	d, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, num, d)
	require.Equal(t, num, g.E())
}

// TestConcurrentReadWrite mixes writers with Adj, Edges and String readers
// on a digraph; the race detector flags any unguarded access.
func TestConcurrentReadWrite(t *testing.T) {
	const rounds = 100
	g, err := graph.NewEdgeWeightedDigraph(10)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := range rounds {
		go func(id int) {
			defer wg.Done()
			_ = g.Connect(id%10, (id*7)%10, float64(id))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = g.Adj(3)
			_ = g.Edges()
			_ = g.String()
		}()
	}
	wg.Wait()

	require.Len(t, g.Edges(), rounds)
}
