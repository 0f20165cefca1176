package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestPushPopSorted(t *testing.T) {
	q := NewOrdered[int](4)
	in := []int{5, 3, 8, 1, 9, 2, 2, 7}
	for _, x := range in {
		require.NoError(t, q.Push(x))
	}
	require.Equal(t, len(in), q.Len())

	sorted := slices.Clone(in)
	slices.Sort(sorted)

	for _, want := range sorted {
		got, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, q.Len())
}

func TestPopEmpty(t *testing.T) {
	q := NewOrdered[uint64](0)
	_, err := q.Pop()
	require.ErrorIs(t, err, ErrEmpty)

	x, ok := q.Peek()
	require.False(t, ok)
	require.Zero(t, x)
}

func TestFixedCapacity(t *testing.T) {
	q := NewOrdered[int](2, Fixed())
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(2))
	err := q.Push(3)
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.Equal(t, 2, q.Len())
	require.Equal(t, 2, q.Cap())

	// the failed push left the queue intact
	x, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, 1, x)
	require.NoError(t, q.Push(3))
}

func TestPeekIsMinimumAfterEveryPush(t *testing.T) {
	q := NewOrdered[int](0)
	queued := []int{}
	for range 1000 {
		x := rand.Intn(100) //nolint:gosec
		require.NoError(t, q.Push(x))
		queued = append(queued, x)

		top, ok := q.Peek()
		require.True(t, ok)
		require.Equal(t, slices.Min(queued), top)
	}
}

// many simultaneous entries, well past the initial capacity
func TestGrowthKeepsHeapOrder(t *testing.T) {
	const n = 5000
	q := NewOrdered[int](8)
	ref := make([]int, 0, n)

	for i := range n {
		x := rand.Intn(n) //nolint:gosec
		require.NoError(t, q.Push(x))
		ref = append(ref, x)
		if i%7 == 6 { // interleave pops
			got, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, slices.Min(ref), got)
			ref = slices.Delete(ref, slices.Index(ref, got), slices.Index(ref, got)+1)
		}
	}
	require.Greater(t, q.Cap(), 8)

	slices.Sort(ref)
	for _, want := range ref {
		got, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

type item struct {
	key, seq int
}

func TestComparator(t *testing.T) {
	// ties on key are broken by seq, making the pop order a total order
	q := New(0, func(a, b item) bool {
		if a.key != b.key {
			return a.key < b.key
		}
		return a.seq < b.seq
	})
	for i, k := range []int{3, 1, 3, 1, 2} {
		require.NoError(t, q.Push(item{key: k, seq: i}))
	}

	var got []item
	for q.Len() > 0 {
		x, err := q.Pop()
		require.NoError(t, err)
		got = append(got, x)
	}
	require.Equal(t, []item{{1, 1}, {1, 3}, {2, 4}, {3, 0}, {3, 2}}, got)
}

func TestReset(t *testing.T) {
	q := NewOrdered[int](4)
	require.NoError(t, q.Push(1))
	require.NoError(t, q.Push(0))
	q.Reset()
	require.Equal(t, 0, q.Len())
	require.Equal(t, 4, q.Cap())
	_, ok := q.Peek()
	require.False(t, ok)
}
