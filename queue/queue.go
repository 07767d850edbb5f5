// SPDX-License-Identifier: MIT

// Package queue provides Queue, a first-in first-out collection backed by a
// linked list. Shortest-path and spanning-tree results hand their edges back
// in queues.
package queue

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrUnderflow is returned by Dequeue and Peek on an empty queue.
var ErrUnderflow = errors.New("queue: underflow")

type node[T any] struct {
	item T
	next *node[T]
}

// Queue is a FIFO queue. Every operation except iteration runs in constant
// time. The zero value is an empty queue ready to use.
type Queue[T any] struct {
	first *node[T]
	last  *node[T]
	n     int
}

// New returns an empty queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.first == nil }

// Size returns the number of items.
func (q *Queue[T]) Size() int { return q.n }

// Peek returns the least recently added item without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.first == nil {
		var zero T
		return zero, ErrUnderflow
	}

	return q.first.item, nil
}

// Enqueue appends item.
func (q *Queue[T]) Enqueue(item T) {
	x := &node[T]{item: item}
	if q.last == nil {
		q.first = x
	} else {
		q.last.next = x
	}
	q.last = x
	q.n++
}

// Dequeue removes and returns the least recently added item.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.first == nil {
		var zero T
		return zero, ErrUnderflow
	}
	x := q.first
	q.first = x.next
	if q.first == nil {
		q.last = nil
	}
	q.n--

	return x.item, nil
}

// All yields the items in FIFO order without removing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := q.first; x != nil; x = x.next {
			if !yield(x.item) {
				return
			}
		}
	}
}

// String returns the items separated by single spaces.
func (q *Queue[T]) String() string {
	var sb strings.Builder
	for x := q.first; x != nil; x = x.next {
		if x != q.first {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, x.item)
	}

	return sb.String()
}
