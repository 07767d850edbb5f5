// SPDX-License-Identifier: MIT

package indexpq_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algs4/indexpq"
)

// BenchmarkDecreaseKeyWorkload mimics a shortest-path frontier: fill the
// queue, then interleave decrease-key bursts with extractions.
func BenchmarkDecreaseKeyWorkload(b *testing.B) {
	const n = 4096
	r := rand.New(rand.NewSource(1))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = r.Intn(1 << 20)
	}

	for _, kind := range indexpq.Kinds() {
		b.Run(string(kind), func(b *testing.B) {
			for range b.N {
				pq, _ := indexpq.New[int](kind, n)
				for i, k := range keys {
					_ = pq.Insert(i, k)
				}
				for step := 0; !pq.IsEmpty(); step++ {
					top, _ := pq.DelMin()
					for j := 1; j <= 4; j++ {
						v := (top + j*step) % n
						if ok, _ := pq.Contains(v); ok {
							cur, _ := pq.KeyOf(v)
							_ = pq.DecreaseKey(v, cur-1)
						}
					}
				}
			}
		})
	}
}

// BenchmarkInsertDrain measures a plain heap sort through each kind.
func BenchmarkInsertDrain(b *testing.B) {
	const n = 4096
	perm := rand.New(rand.NewSource(2)).Perm(n)

	for _, kind := range indexpq.Kinds() {
		b.Run(string(kind), func(b *testing.B) {
			for range b.N {
				pq, _ := indexpq.New[int](kind, n)
				for i, k := range perm {
					_ = pq.Insert(i, k)
				}
				for !pq.IsEmpty() {
					_, _ = pq.DelMin()
				}
			}
		})
	}
}
