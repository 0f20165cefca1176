// Package pqueue implements a binary min-heap ordered by a caller supplied comparator.
package pqueue

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

var (
	// ErrCapacityExceeded is returned by Push on a full fixed-capacity queue.
	ErrCapacityExceeded = errors.New("priority queue capacity exceeded")
	// ErrEmpty is returned by Pop on an empty queue.
	ErrEmpty = errors.New("priority queue is empty")
)

// Queue is a min-heap of T. The element for which less reports true against every other is popped first.
// Elements that compare equal are popped in an order determined by the push/pop sequence only,
// so the same sequence of operations always yields the same result.
type Queue[T any] struct {
	tree  []T
	less  func(a, b T) bool
	fixed bool
}

type Option func(*config)

type config struct {
	fixed bool
}

// Fixed disables growth: pushing past the initial capacity fails with ErrCapacityExceeded.
func Fixed() Option {
	return func(c *config) { c.fixed = true }
}

// New returns an empty queue with room for capacity elements.
func New[T any](capacity int, less func(a, b T) bool, opts ...Option) *Queue[T] {
	var c config
	for _, o := range opts {
		o(&c)
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Queue[T]{
		tree:  make([]T, 0, capacity),
		less:  less,
		fixed: c.fixed,
	}
}

// NewOrdered returns a queue ordered by the natural order of T.
func NewOrdered[T constraints.Ordered](capacity int, opts ...Option) *Queue[T] {
	return New(capacity, func(a, b T) bool { return a < b }, opts...)
}

func parent(child int) int { return (child - 1) / 2 }
func leftChild(p int) int  { return 2*p + 1 }
func rightChild(p int) int { return 2*p + 2 }

// Len is the number of queued elements.
func (q *Queue[T]) Len() int {
	return len(q.tree)
}

// Cap is the number of elements the queue can hold without growing.
func (q *Queue[T]) Cap() int {
	return cap(q.tree)
}

// Reset empties the queue, keeping its storage.
func (q *Queue[T]) Reset() {
	clear(q.tree)
	q.tree = q.tree[:0]
}

// Push inserts x and restores the heap order by sifting it up.
func (q *Queue[T]) Push(x T) error {
	if len(q.tree) == cap(q.tree) {
		if q.fixed {
			return errors.WithStack(ErrCapacityExceeded)
		}
		grown := make([]T, len(q.tree), max(2*cap(q.tree), 4))
		copy(grown, q.tree)
		q.tree = grown
	}
	q.tree = append(q.tree, x)

	child := len(q.tree) - 1
	for child > 0 {
		p := parent(child)
		if !q.less(q.tree[child], q.tree[p]) {
			break
		}
		q.tree[child], q.tree[p] = q.tree[p], q.tree[child]
		child = p
	}
	return nil
}

// Pop removes and returns the minimum element.
func (q *Queue[T]) Pop() (T, error) {
	var zero T
	n := len(q.tree)
	if n == 0 {
		return zero, errors.WithStack(ErrEmpty)
	}

	res := q.tree[0]
	q.tree[0] = q.tree[n-1]
	q.tree[n-1] = zero // do not retain popped elements
	q.tree = q.tree[:n-1]
	n--

	// sift down: swap with the smaller child as long as it is smaller than the current element
	for i := 0; ; {
		smallest := i
		if l := leftChild(i); l < n && q.less(q.tree[l], q.tree[smallest]) {
			smallest = l
		}
		if r := rightChild(i); r < n && q.less(q.tree[r], q.tree[smallest]) {
			smallest = r
		}
		if smallest == i {
			break
		}
		q.tree[i], q.tree[smallest] = q.tree[smallest], q.tree[i]
		i = smallest
	}

	return res, nil
}

// Peek returns the minimum element without removing it.
// ok is false if the queue is empty.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if len(q.tree) == 0 {
		return x, false
	}
	return q.tree[0], true
}
