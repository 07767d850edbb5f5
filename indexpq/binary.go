// SPDX-License-Identifier: MIT

package indexpq

import "cmp"

// IndexMinPQ is an indexed minimum priority queue backed by a binary heap.
// Insert, DelMin, Delete and every key change run in O(log n); MinIndex,
// MinKey and KeyOf run in O(1).
type IndexMinPQ[K any] struct {
	heapCore[K]
}

// NewIndexMinPQ returns an empty binary-heap queue for indices in
// [0, capacity), ordering keys by their natural order.
//
// Errors: ErrInvalidArgument if capacity is negative.
func NewIndexMinPQ[K cmp.Ordered](capacity int) (*IndexMinPQ[K], error) {
	return NewIndexMinPQFunc(capacity, cmp.Compare[K])
}

// NewIndexMinPQFunc is like NewIndexMinPQ but orders keys with compare.
func NewIndexMinPQFunc[K any](capacity int, compare func(a, b K) int) (*IndexMinPQ[K], error) {
	if err := validateCapacity(capacity, compare); err != nil {
		return nil, err
	}

	return &IndexMinPQ[K]{heapCore: newHeapCore(capacity, 2, compare, false)}, nil
}

// MinIndex returns the index associated with a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMinPQ[K]) MinIndex() (int, error) { return pq.top() }

// MinKey returns a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMinPQ[K]) MinKey() (K, error) { return pq.topKey() }

// DelMin removes a minimum key and returns its index.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMinPQ[K]) DelMin() (int, error) { return pq.delTop() }

// Clone returns an independent copy of the queue.
func (pq *IndexMinPQ[K]) Clone() *IndexMinPQ[K] {
	return &IndexMinPQ[K]{heapCore: pq.clone()}
}

// IndexMaxPQ is an indexed maximum priority queue backed by a binary heap.
// It mirrors IndexMinPQ with the order reversed: MaxIndex, MaxKey and
// DelMax address a maximum key and All yields keys in descending order.
// DecreaseKey and IncreaseKey keep their literal meaning on key values.
type IndexMaxPQ[K any] struct {
	heapCore[K]
}

// NewIndexMaxPQ returns an empty maximum queue for indices in [0, capacity).
//
// Errors: ErrInvalidArgument if capacity is negative.
func NewIndexMaxPQ[K cmp.Ordered](capacity int) (*IndexMaxPQ[K], error) {
	return NewIndexMaxPQFunc(capacity, cmp.Compare[K])
}

// NewIndexMaxPQFunc is like NewIndexMaxPQ but orders keys with compare.
func NewIndexMaxPQFunc[K any](capacity int, compare func(a, b K) int) (*IndexMaxPQ[K], error) {
	if err := validateCapacity(capacity, compare); err != nil {
		return nil, err
	}

	return &IndexMaxPQ[K]{heapCore: newHeapCore(capacity, 2, compare, true)}, nil
}

// MaxIndex returns the index associated with a maximum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMaxPQ[K]) MaxIndex() (int, error) { return pq.top() }

// MaxKey returns a maximum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMaxPQ[K]) MaxKey() (K, error) { return pq.topKey() }

// DelMax removes a maximum key and returns its index.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexMaxPQ[K]) DelMax() (int, error) { return pq.delTop() }

// Clone returns an independent copy of the queue.
func (pq *IndexMaxPQ[K]) Clone() *IndexMaxPQ[K] {
	return &IndexMaxPQ[K]{heapCore: pq.clone()}
}
