// SPDX-License-Identifier: MIT

package indexpq

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Sentinel errors returned by every priority queue in this package.
// Callers match them with errors.Is; the returned error carries the
// offending index or key as context.
var (
	// ErrInvalidArgument indicates a negative capacity, an index outside
	// [0, capacity), a duplicate insert, or a key change that does not move
	// the key in the required direction.
	ErrInvalidArgument = errors.New("indexpq: invalid argument")

	// ErrEmptyStructure indicates a peek or extraction on an empty queue.
	ErrEmptyStructure = errors.New("indexpq: priority queue underflow")

	// ErrAbsentKey indicates an in-range index that currently has no key.
	ErrAbsentKey = errors.New("indexpq: index is not in the priority queue")
)

// none marks a missing link or an absent heap position.
const none = -1

// Interface is the contract shared by all indexed minimum priority queues.
//
// Indices are caller-chosen integers in [0, Capacity()). At most one key is
// associated with an index at any time.
type Interface[K any] interface {
	// IsEmpty reports whether the queue holds no keys.
	IsEmpty() bool
	// Size returns the number of keys in the queue.
	Size() int
	// Capacity returns the exclusive upper bound on indices.
	Capacity() int
	// Contains reports whether index i currently has a key.
	Contains(i int) (bool, error)
	// Insert associates key with index i.
	Insert(i int, key K) error
	// MinIndex returns the index associated with a minimum key.
	MinIndex() (int, error)
	// MinKey returns a minimum key.
	MinKey() (K, error)
	// KeyOf returns the key associated with index i.
	KeyOf(i int) (K, error)
	// DecreaseKey lowers the key of index i; key must be strictly smaller.
	DecreaseKey(i int, key K) error
	// IncreaseKey raises the key of index i; key must be strictly greater.
	IncreaseKey(i int, key K) error
	// ChangeKey sets the key of index i to a different value.
	ChangeKey(i int, key K) error
	// DelMin removes a minimum key and returns its index.
	DelMin() (int, error)
	// Delete removes index i and its key.
	Delete(i int) error
	// All yields (index, key) pairs in ascending key order without
	// modifying the queue.
	All() iter.Seq2[int, K]
}

// Kind names an Interface implementation.
type Kind string

const (
	// KindFibonacci selects IndexFibonacciMinPQ: amortized O(1) decrease-key.
	KindFibonacci Kind = "fibonacci"
	// KindBinary selects IndexMinPQ, a binary heap.
	KindBinary Kind = "binary"
	// KindMultiway selects IndexMultiwayMinPQ, a d-ary heap.
	KindMultiway Kind = "multiway"
	// KindBinomial selects IndexBinomialMinPQ, a binomial heap.
	KindBinomial Kind = "binomial"
)

// Kinds lists every supported Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindFibonacci, KindBinary, KindMultiway, KindBinomial}
}

// ParseKind converts a case-insensitive name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: unknown priority queue kind %q", ErrInvalidArgument, s)
}

// DefaultArity is the branching factor used by KindMultiway unless
// WithArity overrides it.
const DefaultArity = 4

// Options configures the factory functions New and NewFunc.
type Options struct {
	// Arity is the branching factor of KindMultiway heaps (>= 2).
	Arity int
}

// Option is a functional option for New and NewFunc.
type Option func(*Options)

// WithArity sets the branching factor of a KindMultiway heap.
// Values below 2 are rejected by the constructor.
func WithArity(d int) Option {
	return func(o *Options) {
		o.Arity = d
	}
}

// DefaultOptions returns the factory defaults.
func DefaultOptions() Options {
	return Options{Arity: DefaultArity}
}

// New returns an empty indexed minimum priority queue of the given kind,
// ordering keys by their natural order.
func New[K cmp.Ordered](kind Kind, capacity int, opts ...Option) (Interface[K], error) {
	return NewFunc[K](kind, capacity, cmp.Compare[K], opts...)
}

// NewFunc is like New but orders keys with compare, which must return a
// negative number, zero or a positive number as a < b, a == b or a > b.
func NewFunc[K any](kind Kind, capacity int, compare func(a, b K) int, opts ...Option) (Interface[K], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		pq  Interface[K]
		err error
	)
	switch kind {
	case KindFibonacci:
		pq, err = NewIndexFibonacciMinPQFunc(capacity, compare)
	case KindBinary:
		pq, err = NewIndexMinPQFunc(capacity, compare)
	case KindMultiway:
		pq, err = NewIndexMultiwayMinPQFunc(capacity, cfg.Arity, compare)
	case KindBinomial:
		pq, err = NewIndexBinomialMinPQFunc(capacity, compare)
	default:
		err = fmt.Errorf("%w: unknown priority queue kind %q", ErrInvalidArgument, kind)
	}
	if err != nil {
		// Drop the typed nil the constructor returned.
		return nil, err
	}

	return pq, nil
}

// validateCapacity rejects negative capacities and nil comparators.
func validateCapacity[K any](capacity int, compare func(a, b K) int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidArgument, capacity)
	}
	if compare == nil {
		return fmt.Errorf("%w: nil compare function", ErrInvalidArgument)
	}

	return nil
}

// validateIndex rejects indices outside [0, capacity).
func validateIndex(i, capacity int) error {
	if i < 0 || i >= capacity {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, i, capacity)
	}

	return nil
}

func errAbsent(i int) error {
	return fmt.Errorf("%w: index %d", ErrAbsentKey, i)
}

func errDuplicate(i int) error {
	return fmt.Errorf("%w: index %d is already in the priority queue", ErrInvalidArgument, i)
}

func errNotDecrease(i int) error {
	return fmt.Errorf("%w: new key for index %d is not strictly less than the current key", ErrInvalidArgument, i)
}

func errNotIncrease(i int) error {
	return fmt.Errorf("%w: new key for index %d is not strictly greater than the current key", ErrInvalidArgument, i)
}

func errUnchanged(i int) error {
	return fmt.Errorf("%w: new key for index %d equals the current key", ErrInvalidArgument, i)
}
