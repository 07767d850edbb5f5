// SPDX-License-Identifier: MIT

package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/algs4/indexpq"
	"github.com/katalvlaran/algs4/prim_kruskal"
)

// BenchmarkKruskal measures performance on a random graph with 500 vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000) // pre‐build graph once
	b.ResetTimer()                      // reset timer to exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

// BenchmarkPrim measures Prim from vertex 0 on the same graph, once per frontier kind.
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(b, 500, 2000)
	for _, kind := range indexpq.Kinds() {
		b.Run(string(kind), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _, _ = prim_kruskal.Prim(g, 0, prim_kruskal.WithQueue(kind))
			}
		})
	}
}
