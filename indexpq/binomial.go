// SPDX-License-Identifier: MIT

package indexpq

import (
	"cmp"
	"iter"
	"slices"
)

// binNode is one node of the binomial forest. Nodes live in a pool apart
// from the caller's indices because DecreaseKey and Delete swap contents
// along a root path; where maps each index to the node holding it.
type binNode[K any] struct {
	key     K
	slot    int
	degree  int
	parent  int
	child   int // highest-degree child; children are linked by sibling in decreasing degree
	sibling int
}

// IndexBinomialMinPQ is an indexed minimum priority queue backed by a
// binomial heap: a root list of heap-ordered binomial trees with distinct
// degrees, kept sorted by increasing degree. Every operation except Contains
// and KeyOf runs in O(log n).
type IndexBinomialMinPQ[K any] struct {
	nodes   []binNode[K]
	where   []int // index -> node, or none
	free    []int // stack of unused nodes
	head    int
	n       int
	compare func(a, b K) int
}

// NewIndexBinomialMinPQ returns an empty binomial-heap queue for indices in
// [0, capacity), ordering keys by their natural order.
//
// Errors: ErrInvalidArgument if capacity is negative.
func NewIndexBinomialMinPQ[K cmp.Ordered](capacity int) (*IndexBinomialMinPQ[K], error) {
	return NewIndexBinomialMinPQFunc(capacity, cmp.Compare[K])
}

// NewIndexBinomialMinPQFunc is like NewIndexBinomialMinPQ but orders keys
// with compare.
func NewIndexBinomialMinPQFunc[K any](capacity int, compare func(a, b K) int) (*IndexBinomialMinPQ[K], error) {
	if err := validateCapacity(capacity, compare); err != nil {
		return nil, err
	}

	where := make([]int, capacity)
	free := make([]int, capacity)
	for i := range where {
		where[i] = none
		free[i] = capacity - 1 - i
	}

	return &IndexBinomialMinPQ[K]{
		nodes:   make([]binNode[K], capacity),
		where:   where,
		free:    free,
		head:    none,
		compare: compare,
	}, nil
}

// IsEmpty reports whether the queue holds no keys.
func (pq *IndexBinomialMinPQ[K]) IsEmpty() bool { return pq.n == 0 }

// Size returns the number of keys in the queue.
func (pq *IndexBinomialMinPQ[K]) Size() int { return pq.n }

// Capacity returns the exclusive upper bound on indices.
func (pq *IndexBinomialMinPQ[K]) Capacity() int { return len(pq.where) }

// Contains reports whether index i currently has a key.
//
// Errors: ErrInvalidArgument if i is outside [0, capacity).
func (pq *IndexBinomialMinPQ[K]) Contains(i int) (bool, error) {
	if err := validateIndex(i, len(pq.where)); err != nil {
		return false, err
	}

	return pq.where[i] != none, nil
}

// Insert associates key with index i.
//
// Errors: ErrInvalidArgument if i is out of range or already present.
func (pq *IndexBinomialMinPQ[K]) Insert(i int, key K) error {
	if err := validateIndex(i, len(pq.where)); err != nil {
		return err
	}
	if pq.where[i] != none {
		return errDuplicate(i)
	}
	pq.insert(i, key)

	return nil
}

// MinIndex returns the index associated with a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexBinomialMinPQ[K]) MinIndex() (int, error) {
	if pq.n == 0 {
		return none, ErrEmptyStructure
	}

	return pq.nodes[pq.minRoot()].slot, nil
}

// MinKey returns a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexBinomialMinPQ[K]) MinKey() (K, error) {
	if pq.n == 0 {
		var zero K
		return zero, ErrEmptyStructure
	}

	return pq.nodes[pq.minRoot()].key, nil
}

// KeyOf returns the key associated with index i.
//
// Errors: ErrInvalidArgument if i is out of range, ErrAbsentKey if i has no key.
func (pq *IndexBinomialMinPQ[K]) KeyOf(i int) (K, error) {
	x, err := pq.lookup(i)
	if err != nil {
		var zero K
		return zero, err
	}

	return pq.nodes[x].key, nil
}

// DecreaseKey lowers the key of index i.
//
// Errors: ErrInvalidArgument if i is out of range or key is not strictly
// less than the current key, ErrAbsentKey if i has no key.
func (pq *IndexBinomialMinPQ[K]) DecreaseKey(i int, key K) error {
	x, err := pq.lookup(i)
	if err != nil {
		return err
	}
	if pq.compare(key, pq.nodes[x].key) >= 0 {
		return errNotDecrease(i)
	}
	pq.nodes[x].key = key
	pq.bubble(x, false)

	return nil
}

// IncreaseKey raises the key of index i. The entry is removed and inserted
// again with the new key.
//
// Errors: ErrInvalidArgument if i is out of range or key is not strictly
// greater than the current key, ErrAbsentKey if i has no key.
func (pq *IndexBinomialMinPQ[K]) IncreaseKey(i int, key K) error {
	x, err := pq.lookup(i)
	if err != nil {
		return err
	}
	if pq.compare(key, pq.nodes[x].key) <= 0 {
		return errNotIncrease(i)
	}
	pq.remove(x)
	pq.insert(i, key)

	return nil
}

// ChangeKey sets the key of index i to a different value.
//
// Errors: ErrInvalidArgument if i is out of range or key equals the current
// key, ErrAbsentKey if i has no key.
func (pq *IndexBinomialMinPQ[K]) ChangeKey(i int, key K) error {
	x, err := pq.lookup(i)
	if err != nil {
		return err
	}
	switch c := pq.compare(key, pq.nodes[x].key); {
	case c < 0:
		return pq.DecreaseKey(i, key)
	case c > 0:
		return pq.IncreaseKey(i, key)
	default:
		return errUnchanged(i)
	}
}

// DelMin removes a minimum key and returns its index.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexBinomialMinPQ[K]) DelMin() (int, error) {
	if pq.n == 0 {
		return none, ErrEmptyStructure
	}
	x := pq.minRoot()
	i := pq.nodes[x].slot
	pq.eraseRoot(x)

	return i, nil
}

// Delete removes index i and its key.
//
// Errors: ErrInvalidArgument if i is out of range, ErrAbsentKey if i has no key.
func (pq *IndexBinomialMinPQ[K]) Delete(i int) error {
	x, err := pq.lookup(i)
	if err != nil {
		return err
	}
	pq.remove(x)

	return nil
}

// Clone returns an independent copy of the queue.
func (pq *IndexBinomialMinPQ[K]) Clone() *IndexBinomialMinPQ[K] {
	c := *pq
	c.nodes = slices.Clone(pq.nodes)
	c.where = slices.Clone(pq.where)
	c.free = slices.Clone(pq.free)

	return &c
}

// All yields (index, key) pairs in ascending key order. The sequence drains
// a clone taken when iteration starts; the queue itself is never modified.
func (pq *IndexBinomialMinPQ[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		c := pq.Clone()
		for c.n > 0 {
			x := c.minRoot()
			i, key := c.nodes[x].slot, c.nodes[x].key
			c.eraseRoot(x)
			if !yield(i, key) {
				return
			}
		}
	}
}

func (pq *IndexBinomialMinPQ[K]) lookup(i int) (int, error) {
	if err := validateIndex(i, len(pq.where)); err != nil {
		return none, err
	}
	x := pq.where[i]
	if x == none {
		return none, errAbsent(i)
	}

	return x, nil
}

// less orders nodes by key, then by index.
func (pq *IndexBinomialMinPQ[K]) less(a, b int) bool {
	if c := pq.compare(pq.nodes[a].key, pq.nodes[b].key); c != 0 {
		return c < 0
	}

	return pq.nodes[a].slot < pq.nodes[b].slot
}

func (pq *IndexBinomialMinPQ[K]) insert(i int, key K) {
	x := pq.free[len(pq.free)-1]
	pq.free = pq.free[:len(pq.free)-1]
	pq.nodes[x] = binNode[K]{key: key, slot: i, parent: none, child: none, sibling: none}
	pq.where[i] = x
	pq.head = pq.union(pq.head, x)
	pq.n++
}

func (pq *IndexBinomialMinPQ[K]) minRoot() int {
	best := pq.head
	for x := pq.nodes[best].sibling; x != none; x = pq.nodes[x].sibling {
		if pq.less(x, best) {
			best = x
		}
	}

	return best
}

// bubble moves the contents of x toward the root while they are smaller
// than the parent's, or all the way up when force is set. It returns the
// node that ends up holding them.
func (pq *IndexBinomialMinPQ[K]) bubble(x int, force bool) int {
	for p := pq.nodes[x].parent; p != none; p = pq.nodes[x].parent {
		if !force && !pq.less(x, p) {
			break
		}
		nx, np := &pq.nodes[x], &pq.nodes[p]
		nx.key, np.key = np.key, nx.key
		nx.slot, np.slot = np.slot, nx.slot
		pq.where[nx.slot] = x
		pq.where[np.slot] = p
		x = p
	}

	return x
}

func (pq *IndexBinomialMinPQ[K]) remove(x int) {
	pq.eraseRoot(pq.bubble(x, true))
}

// eraseRoot unlinks root x, returns its children to the root list and
// releases the node.
func (pq *IndexBinomialMinPQ[K]) eraseRoot(x int) {
	prev := none
	for r := pq.head; r != x; r = pq.nodes[r].sibling {
		prev = r
	}
	if prev == none {
		pq.head = pq.nodes[x].sibling
	} else {
		pq.nodes[prev].sibling = pq.nodes[x].sibling
	}

	// Children are in decreasing degree; reverse them into a root list.
	rev := none
	for c := pq.nodes[x].child; c != none; {
		next := pq.nodes[c].sibling
		pq.nodes[c].parent = none
		pq.nodes[c].sibling = rev
		rev = c
		c = next
	}
	pq.head = pq.union(pq.head, rev)

	pq.where[pq.nodes[x].slot] = none
	pq.nodes[x] = binNode[K]{}
	pq.free = append(pq.free, x)
	pq.n--
}

// merge interleaves two root lists by increasing degree.
func (pq *IndexBinomialMinPQ[K]) merge(a, b int) int {
	head, tail := none, none
	for a != none || b != none {
		var x int
		if b == none || (a != none && pq.nodes[a].degree <= pq.nodes[b].degree) {
			x, a = a, pq.nodes[a].sibling
		} else {
			x, b = b, pq.nodes[b].sibling
		}
		if tail == none {
			head = x
		} else {
			pq.nodes[tail].sibling = x
		}
		tail = x
	}
	if tail != none {
		pq.nodes[tail].sibling = none
	}

	return head
}

// union merges two root lists and links trees of equal degree so that
// every degree occurs at most once.
func (pq *IndexBinomialMinPQ[K]) union(a, b int) int {
	head := pq.merge(a, b)
	if head == none {
		return none
	}

	prev, x := none, head
	for next := pq.nodes[x].sibling; next != none; next = pq.nodes[x].sibling {
		after := pq.nodes[next].sibling
		switch {
		case pq.nodes[x].degree != pq.nodes[next].degree,
			after != none && pq.nodes[after].degree == pq.nodes[x].degree:
			prev, x = x, next
		case pq.less(x, next):
			pq.nodes[x].sibling = after
			pq.link(next, x)
		default:
			if prev == none {
				head = next
			} else {
				pq.nodes[prev].sibling = next
			}
			pq.link(x, next)
			x = next
		}
	}

	return head
}

// link makes root y the first child of root z; both have the same degree.
func (pq *IndexBinomialMinPQ[K]) link(y, z int) {
	pq.nodes[y].parent = z
	pq.nodes[y].sibling = pq.nodes[z].child
	pq.nodes[z].child = y
	pq.nodes[z].degree++
}
