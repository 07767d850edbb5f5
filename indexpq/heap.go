// SPDX-License-Identifier: MIT

package indexpq

import (
	"iter"
	"slices"
)

// heapCore is an indexed d-ary heap stored in arrays. It backs IndexMinPQ,
// IndexMaxPQ and IndexMultiwayMinPQ; reverse flips the key order for the
// max variant.
//
//	pq[p] = index stored at heap position p (0-based)
//	qp[i] = heap position of index i, or none
//	keys[i] = key of index i
type heapCore[K any] struct {
	d       int
	n       int
	pq      []int
	qp      []int
	keys    []K
	compare func(a, b K) int
	reverse bool
}

func newHeapCore[K any](capacity, d int, compare func(a, b K) int, reverse bool) heapCore[K] {
	qp := make([]int, capacity)
	for i := range qp {
		qp[i] = none
	}

	return heapCore[K]{
		d:       d,
		pq:      make([]int, capacity),
		qp:      qp,
		keys:    make([]K, capacity),
		compare: compare,
		reverse: reverse,
	}
}

// IsEmpty reports whether the queue holds no keys.
func (h *heapCore[K]) IsEmpty() bool { return h.n == 0 }

// Size returns the number of keys in the queue.
func (h *heapCore[K]) Size() int { return h.n }

// Capacity returns the exclusive upper bound on indices.
func (h *heapCore[K]) Capacity() int { return len(h.qp) }

// Contains reports whether index i currently has a key.
//
// Errors: ErrInvalidArgument if i is outside [0, capacity).
func (h *heapCore[K]) Contains(i int) (bool, error) {
	if err := validateIndex(i, len(h.qp)); err != nil {
		return false, err
	}

	return h.qp[i] != none, nil
}

// Insert associates key with index i.
//
// Errors: ErrInvalidArgument if i is out of range or already present.
func (h *heapCore[K]) Insert(i int, key K) error {
	if err := validateIndex(i, len(h.qp)); err != nil {
		return err
	}
	if h.qp[i] != none {
		return errDuplicate(i)
	}
	h.keys[i] = key
	h.pq[h.n] = i
	h.qp[i] = h.n
	h.n++
	h.swim(h.n - 1)

	return nil
}

// KeyOf returns the key associated with index i.
//
// Errors: ErrInvalidArgument if i is out of range, ErrAbsentKey if i has no key.
func (h *heapCore[K]) KeyOf(i int) (K, error) {
	if err := h.lookup(i); err != nil {
		var zero K
		return zero, err
	}

	return h.keys[i], nil
}

// DecreaseKey lowers the key of index i.
//
// Errors: ErrInvalidArgument if i is out of range or key is not strictly
// less than the current key, ErrAbsentKey if i has no key.
func (h *heapCore[K]) DecreaseKey(i int, key K) error {
	if err := h.lookup(i); err != nil {
		return err
	}
	if h.compare(key, h.keys[i]) >= 0 {
		return errNotDecrease(i)
	}
	h.keys[i] = key
	h.fix(h.qp[i])

	return nil
}

// IncreaseKey raises the key of index i.
//
// Errors: ErrInvalidArgument if i is out of range or key is not strictly
// greater than the current key, ErrAbsentKey if i has no key.
func (h *heapCore[K]) IncreaseKey(i int, key K) error {
	if err := h.lookup(i); err != nil {
		return err
	}
	if h.compare(key, h.keys[i]) <= 0 {
		return errNotIncrease(i)
	}
	h.keys[i] = key
	h.fix(h.qp[i])

	return nil
}

// ChangeKey sets the key of index i to a different value.
//
// Errors: ErrInvalidArgument if i is out of range or key equals the current
// key, ErrAbsentKey if i has no key.
func (h *heapCore[K]) ChangeKey(i int, key K) error {
	if err := h.lookup(i); err != nil {
		return err
	}
	if h.compare(key, h.keys[i]) == 0 {
		return errUnchanged(i)
	}
	h.keys[i] = key
	h.fix(h.qp[i])

	return nil
}

// Delete removes index i and its key.
//
// Errors: ErrInvalidArgument if i is out of range, ErrAbsentKey if i has no key.
func (h *heapCore[K]) Delete(i int) error {
	if err := h.lookup(i); err != nil {
		return err
	}
	h.removeAt(h.qp[i])

	return nil
}

// All yields (index, key) pairs in priority order: ascending for minimum
// queues, descending for IndexMaxPQ. The sequence drains a copy taken when
// iteration starts; the queue itself is never modified.
func (h *heapCore[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		c := h.clone()
		for c.n > 0 {
			i := c.pq[0]
			key := c.keys[i]
			c.removeAt(0)
			if !yield(i, key) {
				return
			}
		}
	}
}

func (h *heapCore[K]) clone() heapCore[K] {
	c := *h
	c.pq = slices.Clone(h.pq)
	c.qp = slices.Clone(h.qp)
	c.keys = slices.Clone(h.keys)

	return c
}

func (h *heapCore[K]) lookup(i int) error {
	if err := validateIndex(i, len(h.qp)); err != nil {
		return err
	}
	if h.qp[i] == none {
		return errAbsent(i)
	}

	return nil
}

func (h *heapCore[K]) top() (int, error) {
	if h.n == 0 {
		return none, ErrEmptyStructure
	}

	return h.pq[0], nil
}

func (h *heapCore[K]) topKey() (K, error) {
	if h.n == 0 {
		var zero K
		return zero, ErrEmptyStructure
	}

	return h.keys[h.pq[0]], nil
}

func (h *heapCore[K]) delTop() (int, error) {
	if h.n == 0 {
		return none, ErrEmptyStructure
	}
	i := h.pq[0]
	h.removeAt(0)

	return i, nil
}

// above reports whether heap position p belongs above position q. Ties on
// the key go to the smaller index.
func (h *heapCore[K]) above(p, q int) bool {
	i, j := h.pq[p], h.pq[q]
	c := h.compare(h.keys[i], h.keys[j])
	if h.reverse {
		c = -c
	}
	if c != 0 {
		return c < 0
	}

	return i < j
}

func (h *heapCore[K]) swap(p, q int) {
	h.pq[p], h.pq[q] = h.pq[q], h.pq[p]
	h.qp[h.pq[p]] = p
	h.qp[h.pq[q]] = q
}

func (h *heapCore[K]) swim(p int) {
	for p > 0 {
		parent := (p - 1) / h.d
		if !h.above(p, parent) {
			return
		}
		h.swap(p, parent)
		p = parent
	}
}

// sink reports whether the entry at p moved.
func (h *heapCore[K]) sink(p int) bool {
	start := p
	for {
		first := h.d*p + 1
		if first >= h.n {
			break
		}
		best := first
		for c := first + 1; c < first+h.d && c < h.n; c++ {
			if h.above(c, best) {
				best = c
			}
		}
		if !h.above(best, p) {
			break
		}
		h.swap(p, best)
		p = best
	}

	return p != start
}

// fix restores heap order after the key at position p changed.
func (h *heapCore[K]) fix(p int) {
	if !h.sink(p) {
		h.swim(p)
	}
}

// removeAt removes the entry at heap position p.
func (h *heapCore[K]) removeAt(p int) {
	i := h.pq[p]
	h.n--
	if p != h.n {
		h.swap(p, h.n)
		h.fix(p)
	}
	h.qp[i] = none
	h.pq[h.n] = none
	var zero K
	h.keys[i] = zero
}
