// SPDX-License-Identifier: MIT

// Package bag provides Bag, an unordered collection that supports adding
// items and iterating over them. Graph adjacency lists are bags.
package bag

import "iter"

type node[T any] struct {
	item T
	next *node[T]
}

// Bag is a multiset backed by a singly linked list. Add, IsEmpty and Size
// run in constant time; iteration visits the most recently added item first.
// The zero value is an empty bag ready to use.
type Bag[T any] struct {
	first *node[T]
	n     int
}

// New returns an empty bag.
func New[T any]() *Bag[T] { return &Bag[T]{} }

// Add inserts item.
func (b *Bag[T]) Add(item T) {
	b.first = &node[T]{item: item, next: b.first}
	b.n++
}

// IsEmpty reports whether the bag holds no items.
func (b *Bag[T]) IsEmpty() bool { return b.first == nil }

// Size returns the number of items.
func (b *Bag[T]) Size() int { return b.n }

// All yields every item, most recently added first.
func (b *Bag[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := b.first; x != nil; x = x.next {
			if !yield(x.item) {
				return
			}
		}
	}
}
