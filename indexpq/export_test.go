// SPDX-License-Identifier: MIT

package indexpq

import "fmt"

// White-box bridge for indexpq_test: structural invariant checkers that need
// the unexported node arenas. Each returns nil when the structure is sound
// and a description of the first violation otherwise.

// CheckFibonacci verifies the Fibonacci forest of pq:
//   - every sibling ring is a consistent circular doubly-linked list;
//   - parent links and degrees agree with the child rings;
//   - heap order holds on every parent/child pair;
//   - roots are unmarked and min names the smallest root;
//   - the live count matches Size and the index map;
//   - when consolidated is set, root degrees are distinct and every node of
//     degree d has at least F(d+2) nodes in its subtree.
func CheckFibonacci[K any](pq *IndexFibonacciMinPQ[K], consolidated bool) error {
	if pq.n == 0 {
		if pq.min != none {
			return fmt.Errorf("empty queue has min %d", pq.min)
		}
		for i, nd := range pq.nodes {
			if nd.live {
				return fmt.Errorf("empty queue has live index %d", i)
			}
		}
		return nil
	}
	if pq.min == none || !pq.nodes[pq.min].live {
		return fmt.Errorf("min %d is not a live node", pq.min)
	}

	seen := make(map[int]bool, pq.n)
	degrees := make(map[int]bool)
	var walk func(x, parent int) (int, error)
	walk = func(x, parent int) (int, error) {
		nd := pq.nodes[x]
		if !nd.live {
			return 0, fmt.Errorf("node %d reachable but not live", x)
		}
		if seen[x] {
			return 0, fmt.Errorf("node %d reached twice", x)
		}
		seen[x] = true
		if nd.parent != parent {
			return 0, fmt.Errorf("node %d parent %d, want %d", x, nd.parent, parent)
		}
		if parent == none && nd.mark {
			return 0, fmt.Errorf("root %d is marked", x)
		}
		if parent != none && pq.less(x, parent) {
			return 0, fmt.Errorf("heap order broken between %d and parent %d", x, parent)
		}

		size, kids := 1, 0
		if c := nd.child; c != none {
			y := c
			for {
				if pq.nodes[pq.nodes[y].next].prev != y {
					return 0, fmt.Errorf("child ring of %d broken at %d", x, y)
				}
				s, err := walk(y, x)
				if err != nil {
					return 0, err
				}
				size += s
				kids++
				y = pq.nodes[y].next
				if y == c {
					break
				}
			}
		}
		if kids != nd.degree {
			return 0, fmt.Errorf("node %d degree %d, has %d children", x, nd.degree, kids)
		}
		if consolidated && size < fib(nd.degree+2) {
			return 0, fmt.Errorf("node %d of degree %d has only %d descendants", x, nd.degree, size)
		}

		return size, nil
	}

	total := 0
	x := pq.min
	for {
		if pq.nodes[pq.nodes[x].next].prev != x {
			return fmt.Errorf("root ring broken at %d", x)
		}
		if pq.less(x, pq.min) {
			return fmt.Errorf("root %d precedes min %d", x, pq.min)
		}
		if consolidated {
			if degrees[pq.nodes[x].degree] {
				return fmt.Errorf("two roots of degree %d", pq.nodes[x].degree)
			}
			degrees[pq.nodes[x].degree] = true
		}
		s, err := walk(x, none)
		if err != nil {
			return err
		}
		total += s
		x = pq.nodes[x].next
		if x == pq.min {
			break
		}
	}
	if total != pq.n {
		return fmt.Errorf("forest holds %d nodes, size is %d", total, pq.n)
	}
	for i, nd := range pq.nodes {
		if nd.live != seen[i] {
			return fmt.Errorf("index %d live=%v but reachable=%v", i, nd.live, seen[i])
		}
	}

	return nil
}

// fib returns the n-th Fibonacci number with F(0)=0, F(1)=1.
func fib(n int) int {
	a, b := 0, 1
	for range n {
		a, b = b, a+b
	}

	return a
}

// CheckBinomial verifies that the root list of pq is sorted by strictly
// increasing degree, every tree is heap ordered with consistent parent links,
// and the index map agrees with the node contents.
func CheckBinomial[K any](pq *IndexBinomialMinPQ[K]) error {
	total := 0
	var walk func(x, parent int) (int, error)
	walk = func(x, parent int) (int, error) {
		nd := pq.nodes[x]
		if nd.parent != parent {
			return 0, fmt.Errorf("node %d parent %d, want %d", x, nd.parent, parent)
		}
		if parent != none && pq.less(x, parent) {
			return 0, fmt.Errorf("heap order broken between %d and parent %d", x, parent)
		}
		if pq.where[nd.slot] != x {
			return 0, fmt.Errorf("index %d maps to node %d, found in %d", nd.slot, pq.where[nd.slot], x)
		}
		size, kids := 1, 0
		for c := nd.child; c != none; c = pq.nodes[c].sibling {
			if want := nd.degree - 1 - kids; pq.nodes[c].degree != want {
				return 0, fmt.Errorf("child %d of %d has degree %d, want %d", c, x, pq.nodes[c].degree, want)
			}
			s, err := walk(c, x)
			if err != nil {
				return 0, err
			}
			size += s
			kids++
		}
		if kids != nd.degree {
			return 0, fmt.Errorf("node %d degree %d, has %d children", x, nd.degree, kids)
		}
		if size != 1<<nd.degree {
			return 0, fmt.Errorf("tree at %d of degree %d has %d nodes", x, nd.degree, size)
		}

		return size, nil
	}

	last := -1
	for r := pq.head; r != none; r = pq.nodes[r].sibling {
		if pq.nodes[r].degree <= last {
			return fmt.Errorf("root list not strictly increasing at %d", r)
		}
		last = pq.nodes[r].degree
		s, err := walk(r, none)
		if err != nil {
			return err
		}
		total += s
	}
	if total != pq.n {
		return fmt.Errorf("forest holds %d nodes, size is %d", total, pq.n)
	}
	if len(pq.free)+pq.n != len(pq.nodes) {
		return fmt.Errorf("%d free nodes with %d live, capacity %d", len(pq.free), pq.n, len(pq.nodes))
	}

	return nil
}

// CheckHeap verifies the d-ary heap behind IndexMinPQ, IndexMaxPQ and
// IndexMultiwayMinPQ.
func CheckHeap[K any](h *heapCore[K]) error {
	for p := range h.n {
		if h.qp[h.pq[p]] != p {
			return fmt.Errorf("position %d holds index %d mapped to %d", p, h.pq[p], h.qp[h.pq[p]])
		}
		if p > 0 && h.above(p, (p-1)/h.d) {
			return fmt.Errorf("heap order broken at position %d", p)
		}
	}
	live := 0
	for _, p := range h.qp {
		if p != none {
			live++
		}
	}
	if live != h.n {
		return fmt.Errorf("%d indices mapped, size is %d", live, h.n)
	}

	return nil
}

// Core exposes the shared heap of the array-backed queues.
func (pq *IndexMinPQ[K]) Core() *heapCore[K]         { return &pq.heapCore }
func (pq *IndexMaxPQ[K]) Core() *heapCore[K]         { return &pq.heapCore }
func (pq *IndexMultiwayMinPQ[K]) Core() *heapCore[K] { return &pq.heapCore }

// Check dispatches to the checker matching the dynamic type of pq.
func Check[K any](pq Interface[K]) error {
	switch q := pq.(type) {
	case *IndexFibonacciMinPQ[K]:
		return CheckFibonacci(q, false)
	case *IndexBinomialMinPQ[K]:
		return CheckBinomial(q)
	case *IndexMinPQ[K]:
		return CheckHeap(q.Core())
	case *IndexMultiwayMinPQ[K]:
		return CheckHeap(q.Core())
	default:
		return fmt.Errorf("no checker for %T", pq)
	}
}
