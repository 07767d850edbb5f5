// SPDX-License-Identifier: MIT

// Package indexpq provides indexed minimum priority queues: associative
// heaps keyed by caller-chosen integer indices in [0, capacity).
//
// Overview:
//
//   - Each index holds at most one key. Callers Insert an index with a key,
//     repeatedly DelMin to visit indices in ascending key order, and call
//     DecreaseKey, IncreaseKey, ChangeKey or Delete as their data changes.
//   - This is the frontier a shortest-path or minimum-spanning-tree solver
//     needs: vertex ids are the indices, tentative distances are the keys.
//
// Implementations:
//
//   - IndexFibonacciMinPQ: a Fibonacci heap. Insert and DecreaseKey run in
//     amortized O(1); DelMin and Delete in amortized O(log n).
//   - IndexMinPQ: a binary heap; every mutation in O(log n).
//   - IndexMultiwayMinPQ: a d-ary heap; cheaper DecreaseKey for wide d.
//   - IndexBinomialMinPQ: a binomial heap; every mutation in O(log n).
//   - IndexMaxPQ: the descending binary heap, with MaxIndex/MaxKey/DelMax.
//
// All minimum queues satisfy Interface. New and NewFunc select one by Kind,
// which is how the dijkstra and prim_kruskal packages let callers swap the
// frontier without touching algorithm code.
//
// Fibonacci heap layout:
//
// Nodes live in an arena addressed by index, so the arena doubles as the
// index-to-node map. Sibling rings (the root ring and every child ring) are
// circular doubly-linked lists stored as next/prev positions; parent and
// child are positions too. Consolidation links roots of equal degree through
// a degree-indexed table and rebuilds the root ring from the survivors.
// IncreaseKey is a Delete followed by an Insert.
//
// Ordering:
//
// Keys are ordered by cmp.Compare for cmp.Ordered types, or by a caller
// compare function via the *Func constructors. Ties break by the smaller
// index, so every result is deterministic.
//
// Error handling (sentinel errors, match with errors.Is):
//
//   - ErrInvalidArgument: negative capacity, index out of range, duplicate
//     insert, or a key change that does not move the key in the required
//     direction. Key changes are strict: an equal key is rejected.
//   - ErrEmptyStructure: MinIndex, MinKey or DelMin on an empty queue.
//   - ErrAbsentKey: an in-range index that holds no key.
//
// A rejected call leaves the queue unchanged.
//
// Iteration:
//
// All returns an iter.Seq2 that drains a clone, yielding (index, key) pairs
// in priority order. The live queue is never modified by iteration.
//
// Concurrency:
//
// The queues are not safe for concurrent use; guard them externally.
package indexpq
