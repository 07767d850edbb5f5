// SPDX-License-Identifier: MIT

package indexpq

import (
	"cmp"
	"iter"
	"slices"
)

// fibNode is one entry of the node arena. The arena is indexed by the
// caller's index, so a node's position in the slice is its index and the
// slice doubles as the index-to-node map.
//
// All links are arena positions; none means "no link".
type fibNode[K any] struct {
	key    K
	parent int // none for roots
	child  int // any one child; entry point into the child ring
	next   int // sibling ring (root ring for roots)
	prev   int
	degree int  // number of children
	mark   bool // lost a child since it last became a child; always false for roots
	live   bool
}

// IndexFibonacciMinPQ is an indexed minimum priority queue backed by a
// Fibonacci heap.
//
// Insert, DecreaseKey and every accessor run in (amortized) constant time.
// DelMin, Delete, IncreaseKey and ChangeKey run in amortized O(log n).
// Construction allocates the node arena up front and takes time proportional
// to the capacity.
//
// Keys are ordered by the compare function given at construction, with ties
// broken by the smaller index, so MinIndex is deterministic when several
// indices share the minimum key.
//
// IndexFibonacciMinPQ is not safe for concurrent use.
type IndexFibonacciMinPQ[K any] struct {
	nodes   []fibNode[K]
	compare func(a, b K) int
	min     int // root with the minimum key, or none when empty
	n       int

	// scratch space reused by consolidate
	roots []int
	table []int
}

// NewIndexFibonacciMinPQ returns an empty queue for indices in [0, capacity)
// whose keys are ordered naturally.
//
// Errors: ErrInvalidArgument if capacity < 0.
func NewIndexFibonacciMinPQ[K cmp.Ordered](capacity int) (*IndexFibonacciMinPQ[K], error) {
	return NewIndexFibonacciMinPQFunc(capacity, cmp.Compare[K])
}

// NewIndexFibonacciMinPQFunc returns an empty queue for indices in
// [0, capacity) whose keys are ordered by compare.
//
// Errors: ErrInvalidArgument if capacity < 0 or compare is nil.
func NewIndexFibonacciMinPQFunc[K any](capacity int, compare func(a, b K) int) (*IndexFibonacciMinPQ[K], error) {
	if err := validateCapacity(capacity, compare); err != nil {
		return nil, err
	}

	return &IndexFibonacciMinPQ[K]{
		nodes:   make([]fibNode[K], capacity),
		compare: compare,
		min:     none,
	}, nil
}

// IsEmpty reports whether the queue holds no keys.
func (pq *IndexFibonacciMinPQ[K]) IsEmpty() bool { return pq.n == 0 }

// Size returns the number of keys in the queue.
func (pq *IndexFibonacciMinPQ[K]) Size() int { return pq.n }

// Capacity returns the exclusive upper bound on indices.
func (pq *IndexFibonacciMinPQ[K]) Capacity() int { return len(pq.nodes) }

// Contains reports whether index i currently has a key.
//
// Errors: ErrInvalidArgument if i is outside [0, capacity).
func (pq *IndexFibonacciMinPQ[K]) Contains(i int) (bool, error) {
	if err := validateIndex(i, len(pq.nodes)); err != nil {
		return false, err
	}

	return pq.nodes[i].live, nil
}

// Insert associates key with index i.
//
// Errors: ErrInvalidArgument if i is out of range or already present.
func (pq *IndexFibonacciMinPQ[K]) Insert(i int, key K) error {
	if err := validateIndex(i, len(pq.nodes)); err != nil {
		return err
	}
	if pq.nodes[i].live {
		return errDuplicate(i)
	}
	pq.insert(i, key)

	return nil
}

// MinIndex returns the index associated with a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexFibonacciMinPQ[K]) MinIndex() (int, error) {
	if pq.n == 0 {
		return none, ErrEmptyStructure
	}

	return pq.min, nil
}

// MinKey returns a minimum key.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexFibonacciMinPQ[K]) MinKey() (K, error) {
	if pq.n == 0 {
		var zero K
		return zero, ErrEmptyStructure
	}

	return pq.nodes[pq.min].key, nil
}

// KeyOf returns the key associated with index i.
//
// Errors: ErrInvalidArgument if i is out of range, ErrAbsentKey if i has no key.
func (pq *IndexFibonacciMinPQ[K]) KeyOf(i int) (K, error) {
	if err := pq.lookup(i); err != nil {
		var zero K
		return zero, err
	}

	return pq.nodes[i].key, nil
}

// DecreaseKey lowers the key of index i. A node that now precedes its parent
// is cut into the root ring, followed by a cascading cut of its marked
// ancestors.
//
// Errors: ErrInvalidArgument if i is out of range or key is not strictly
// less than the current key, ErrAbsentKey if i has no key.
func (pq *IndexFibonacciMinPQ[K]) DecreaseKey(i int, key K) error {
	if err := pq.lookup(i); err != nil {
		return err
	}
	if pq.compare(key, pq.nodes[i].key) >= 0 {
		return errNotDecrease(i)
	}
	pq.decrease(i, key)

	return nil
}

// IncreaseKey raises the key of index i by removing the node and inserting
// it again with the new key.
//
// Errors: ErrInvalidArgument if i is out of range or key is not strictly
// greater than the current key, ErrAbsentKey if i has no key.
func (pq *IndexFibonacciMinPQ[K]) IncreaseKey(i int, key K) error {
	if err := pq.lookup(i); err != nil {
		return err
	}
	if pq.compare(key, pq.nodes[i].key) <= 0 {
		return errNotIncrease(i)
	}
	pq.remove(i)
	pq.insert(i, key)

	return nil
}

// ChangeKey sets the key of index i, dispatching to the decrease or
// increase path.
//
// Errors: ErrInvalidArgument if i is out of range or key equals the current
// key, ErrAbsentKey if i has no key.
func (pq *IndexFibonacciMinPQ[K]) ChangeKey(i int, key K) error {
	if err := pq.lookup(i); err != nil {
		return err
	}
	switch c := pq.compare(key, pq.nodes[i].key); {
	case c < 0:
		pq.decrease(i, key)
	case c > 0:
		pq.remove(i)
		pq.insert(i, key)
	default:
		return errUnchanged(i)
	}

	return nil
}

// DelMin removes a minimum key and returns its index.
//
// Errors: ErrEmptyStructure if the queue is empty.
func (pq *IndexFibonacciMinPQ[K]) DelMin() (int, error) {
	if pq.n == 0 {
		return none, ErrEmptyStructure
	}
	x := pq.min
	pq.remove(x)

	return x, nil
}

// Delete removes index i and its key.
//
// Errors: ErrInvalidArgument if i is out of range, ErrAbsentKey if i has no key.
func (pq *IndexFibonacciMinPQ[K]) Delete(i int) error {
	if err := pq.lookup(i); err != nil {
		return err
	}
	pq.remove(i)

	return nil
}

// Clone returns an independent copy of the queue.
func (pq *IndexFibonacciMinPQ[K]) Clone() *IndexFibonacciMinPQ[K] {
	return &IndexFibonacciMinPQ[K]{
		nodes:   slices.Clone(pq.nodes),
		compare: pq.compare,
		min:     pq.min,
		n:       pq.n,
	}
}

// All yields (index, key) pairs in ascending key order. The sequence drains
// a clone taken when iteration starts; the queue itself is never modified.
func (pq *IndexFibonacciMinPQ[K]) All() iter.Seq2[int, K] {
	return func(yield func(int, K) bool) {
		c := pq.Clone()
		for c.n > 0 {
			x := c.min
			key := c.nodes[x].key
			c.remove(x)
			if !yield(x, key) {
				return
			}
		}
	}
}

// lookup validates i and requires it to be present.
func (pq *IndexFibonacciMinPQ[K]) lookup(i int) error {
	if err := validateIndex(i, len(pq.nodes)); err != nil {
		return err
	}
	if !pq.nodes[i].live {
		return errAbsent(i)
	}

	return nil
}

// less orders nodes by (key, index).
func (pq *IndexFibonacciMinPQ[K]) less(a, b int) bool {
	if c := pq.compare(pq.nodes[a].key, pq.nodes[b].key); c != 0 {
		return c < 0
	}

	return a < b
}

func (pq *IndexFibonacciMinPQ[K]) insert(i int, key K) {
	pq.nodes[i] = fibNode[K]{
		key:    key,
		parent: none,
		child:  none,
		next:   i,
		prev:   i,
		live:   true,
	}
	if pq.min == none {
		pq.min = i
	} else {
		pq.meld(pq.min, i)
		if pq.less(i, pq.min) {
			pq.min = i
		}
	}
	pq.n++
}

func (pq *IndexFibonacciMinPQ[K]) decrease(i int, key K) {
	pq.nodes[i].key = key
	if p := pq.nodes[i].parent; p != none && pq.less(i, p) {
		pq.cut(i)
		pq.cascadingCut(p)
	}
	if pq.less(i, pq.min) {
		pq.min = i
	}
}

// remove detaches live node x from the forest and clears its slot.
func (pq *IndexFibonacciMinPQ[K]) remove(x int) {
	if p := pq.nodes[x].parent; p != none {
		pq.cut(x)
		pq.cascadingCut(p)
	}
	pq.promoteChildren(x)

	if next := pq.nodes[x].next; next == x {
		// x was the last node.
		pq.min = none
	} else {
		pq.unlink(x)
		if pq.min == x {
			pq.min = next
			pq.consolidate()
		}
	}
	pq.nodes[x] = fibNode[K]{}
	pq.n--
}

// meld joins the ring containing a with the ring containing b.
func (pq *IndexFibonacciMinPQ[K]) meld(a, b int) {
	an := pq.nodes[a].next
	bp := pq.nodes[b].prev
	pq.nodes[a].next = b
	pq.nodes[b].prev = a
	pq.nodes[bp].next = an
	pq.nodes[an].prev = bp
}

// unlink removes x from its ring and leaves it as a singleton ring.
func (pq *IndexFibonacciMinPQ[K]) unlink(x int) {
	nd := &pq.nodes[x]
	pq.nodes[nd.prev].next = nd.next
	pq.nodes[nd.next].prev = nd.prev
	nd.next, nd.prev = x, x
}

// cut moves x from its parent's child ring into the root ring.
func (pq *IndexFibonacciMinPQ[K]) cut(x int) {
	nd := &pq.nodes[x]
	p := &pq.nodes[nd.parent]
	if nd.next == x {
		p.child = none
	} else {
		if p.child == x {
			p.child = nd.next
		}
		pq.unlink(x)
	}
	p.degree--
	nd.parent = none
	nd.mark = false
	pq.meld(pq.min, x)
}

// cascadingCut walks up from y: a marked non-root is cut and the walk
// continues with its parent; the first unmarked non-root is marked.
func (pq *IndexFibonacciMinPQ[K]) cascadingCut(y int) {
	for {
		z := pq.nodes[y].parent
		if z == none {
			return
		}
		if !pq.nodes[y].mark {
			pq.nodes[y].mark = true
			return
		}
		pq.cut(y)
		y = z
	}
}

// promoteChildren moves every child of x into x's ring as a root.
func (pq *IndexFibonacciMinPQ[K]) promoteChildren(x int) {
	c := pq.nodes[x].child
	if c == none {
		return
	}
	y := c
	for {
		pq.nodes[y].parent = none
		pq.nodes[y].mark = false
		y = pq.nodes[y].next
		if y == c {
			break
		}
	}
	pq.meld(x, c)
	pq.nodes[x].child = none
	pq.nodes[x].degree = 0
}

// link makes root y a child of root x. y's root-ring links are discarded;
// consolidate rebuilds the root ring afterwards.
func (pq *IndexFibonacciMinPQ[K]) link(y, x int) {
	ny := &pq.nodes[y]
	ny.next, ny.prev = y, y
	ny.parent = x
	ny.mark = false

	nx := &pq.nodes[x]
	if nx.child == none {
		nx.child = y
	} else {
		pq.meld(nx.child, y)
	}
	nx.degree++
}

// consolidate links roots of equal degree until all root degrees are
// distinct, then rebuilds the root ring and recomputes min. pq.min must
// point at any root on entry.
func (pq *IndexFibonacciMinPQ[K]) consolidate() {
	pq.roots = pq.roots[:0]
	x := pq.min
	for {
		pq.roots = append(pq.roots, x)
		x = pq.nodes[x].next
		if x == pq.min {
			break
		}
	}

	for i := range pq.table {
		pq.table[i] = none
	}
	for _, x := range pq.roots {
		d := pq.nodes[x].degree
		for {
			for d >= len(pq.table) {
				pq.table = append(pq.table, none)
			}
			y := pq.table[d]
			if y == none {
				break
			}
			if pq.less(y, x) {
				x, y = y, x
			}
			pq.link(y, x)
			pq.table[d] = none
			d++
		}
		pq.table[d] = x
	}

	pq.min = none
	for _, x := range pq.table {
		if x == none {
			continue
		}
		pq.nodes[x].next, pq.nodes[x].prev = x, x
		if pq.min == none {
			pq.min = x
			continue
		}
		pq.meld(pq.min, x)
		if pq.less(x, pq.min) {
			pq.min = x
		}
	}
}
