// SPDX-License-Identifier: MIT

package indexpq

import (
	"cmp"
	"fmt"
)

// IndexMultiwayMinPQ is an indexed minimum priority queue backed by a d-ary
// heap. A wider heap is shallower, so Insert and DecreaseKey get cheaper
// (O(log_d n)) while DelMin pays O(d log_d n) to pick among d children.
type IndexMultiwayMinPQ[K any] struct {
	heapCore[K]
}

// NewIndexMultiwayMinPQ returns an empty d-ary heap queue for indices in
// [0, capacity), ordering keys by their natural order.
//
// Errors: ErrInvalidArgument if capacity is negative or d < 2.
func NewIndexMultiwayMinPQ[K cmp.Ordered](capacity, d int) (*IndexMultiwayMinPQ[K], error) {
	return NewIndexMultiwayMinPQFunc(capacity, d, cmp.Compare[K])
}

// NewIndexMultiwayMinPQFunc is like NewIndexMultiwayMinPQ but orders keys
// with compare.
func NewIndexMultiwayMinPQFunc[K any](capacity, d int, compare func(a, b K) int) (*IndexMultiwayMinPQ[K], error) {
	if err := validateCapacity(capacity, compare); err != nil {
		return nil, err
	}
	if d < 2 {
		return nil, fmt.Errorf("%w: arity %d, need at least 2", ErrInvalidArgument, d)
	}

	return &IndexMultiwayMinPQ[K]{heapCore: newHeapCore(capacity, d, compare, false)}, nil
}

// Arity returns the branching factor d.
func (pq *IndexMultiwayMinPQ[K]) Arity() int { return pq.d }

// MinIndex returns the index associated with a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMultiwayMinPQ[K]) MinIndex() (int, error) { return pq.top() }

// MinKey returns a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMultiwayMinPQ[K]) MinKey() (K, error) { return pq.topKey() }

// DelMin removes a minimum key and returns its index.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMultiwayMinPQ[K]) DelMin() (int, error) { return pq.delTop() }

// Clone returns an independent copy of the queue.
func (pq *IndexMultiwayMinPQ[K]) Clone() *IndexMultiwayMinPQ[K] {
	return &IndexMultiwayMinPQ[K]{heapCore: pq.clone()}
}
