// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/algs4/stats"
)

func TestAccumulator_Empty(t *testing.T) {
	var a stats.Accumulator
	assert.Equal(t, 0, a.Count())
	assert.True(t, math.IsNaN(a.Mean()))
	assert.True(t, math.IsNaN(a.Var()))

	a.Add(3)
	assert.InDelta(t, 3.0, a.Mean(), 1e-12)
	assert.True(t, math.IsNaN(a.Var()), "one value has no sample variance")
}

func TestAccumulator_Known(t *testing.T) {
	var a stats.Accumulator
	for _, x := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		a.Add(x)
	}
	assert.Equal(t, 8, a.Count())
	assert.InDelta(t, 5.0, a.Mean(), 1e-12)
	assert.InDelta(t, 32.0/7.0, a.Var(), 1e-12)
	assert.InDelta(t, math.Sqrt(32.0/7.0), a.Stddev(), 1e-12)
	assert.Equal(t, "n = 8, mean = 5.00000, stddev = 2.13809", a.String())
}

// TestAccumulator_LargeOffset checks stability where summing squares fails.
func TestAccumulator_LargeOffset(t *testing.T) {
	var a stats.Accumulator
	r := rand.New(rand.NewSource(3))
	const offset = 1e9
	for range 10000 {
		a.Add(offset + r.Float64())
	}
	assert.InDelta(t, offset+0.5, a.Mean(), 0.01)
	assert.InDelta(t, 1.0/12.0, a.Var(), 0.005)
}
