// SPDX-License-Identifier: MIT

// Package stats provides Accumulator, a one-pass running mean and sample
// variance over a stream of float64 values.
//
// Accumulator uses Welford's update, which is far less sensitive to
// round-off than summing squares. Memory is constant; values are not kept.
package stats

import (
	"fmt"
	"math"
)

// Accumulator tracks count, mean and sample variance. The zero value is an
// empty accumulator.
type Accumulator struct {
	n   int
	mu  float64 // running mean
	sum float64 // sample variance * (n - 1)
}

// Add folds x into the statistics.
func (a *Accumulator) Add(x float64) {
	a.n++
	delta := x - a.mu
	a.mu += delta / float64(a.n)
	a.sum += float64(a.n-1) / float64(a.n) * delta * delta
}

// Count returns the number of values added.
func (a *Accumulator) Count() int { return a.n }

// Mean returns the sample mean, or NaN when nothing was added.
func (a *Accumulator) Mean() float64 {
	if a.n == 0 {
		return math.NaN()
	}

	return a.mu
}

// Var returns the sample variance, or NaN with fewer than two values.
func (a *Accumulator) Var() float64 {
	if a.n < 2 {
		return math.NaN()
	}

	return a.sum / float64(a.n-1)
}

// Stddev returns the sample standard deviation.
func (a *Accumulator) Stddev() float64 { return math.Sqrt(a.Var()) }

// String reports the count, mean and standard deviation.
func (a *Accumulator) String() string {
	return fmt.Sprintf("n = %d, mean = %.5f, stddev = %.5f", a.n, a.Mean(), a.Stddev())
}
