package pqueue_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/pqueue"
)

func TestExtractMin_EmptyQueue(t *testing.T) {
	q := pqueue.New[float64, int](0)
	require.True(t, q.IsEmpty())

	_, _, err := q.ExtractMin()
	require.True(t, errors.Is(err, pqueue.ErrEmptyQueue), "got %v", err)

	_, _, err = q.Peek()
	require.ErrorIs(t, err, pqueue.ErrEmptyQueue)
}

func TestZeroValueQueue(t *testing.T) {
	var q pqueue.Queue[int, string]
	q.Insert(2, "b")
	q.Insert(1, "a")

	p, item, err := q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 1, p)
	assert.Equal(t, "a", item)
	assert.Equal(t, 1, q.Len())
}

func TestExtractMin_AscendingOrder(t *testing.T) {
	q := pqueue.New[float64, int](8)
	for i, p := range []float64{5, 3, 8, 1, 9, 2} {
		q.Insert(p, i)
	}

	var got []float64
	for !q.IsEmpty() {
		p, _, err := q.ExtractMin()
		require.NoError(t, err)
		got = append(got, p)
	}
	assert.Equal(t, []float64{1, 2, 3, 5, 8, 9}, got)
}

// Equal priorities must come out in insertion order.
func TestExtractMin_FIFOTieBreak(t *testing.T) {
	q := pqueue.New[int, string](0)
	q.Insert(1, "first")
	q.Insert(0, "zero")
	q.Insert(1, "second")
	q.Insert(1, "third")
	q.Insert(0, "zero-later")

	want := []string{"zero", "zero-later", "first", "second", "third"}
	for _, w := range want {
		_, item, err := q.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, w, item)
	}
	assert.True(t, q.IsEmpty())
}

// Duplicates for the same item are kept; the cheaper one surfaces first.
func TestInsert_DuplicatesAllowed(t *testing.T) {
	q := pqueue.New[float64, int](0)
	q.Insert(10, 7)
	q.Insert(4, 7)

	require.Equal(t, 2, q.Len())
	p, item, err := q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 4.0, p)
	assert.Equal(t, 7, item)

	p, item, err = q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 10.0, p)
	assert.Equal(t, 7, item)
}

func TestPeek_DoesNotRemove(t *testing.T) {
	q := pqueue.New[int, int](0)
	q.Insert(3, 30)
	q.Insert(1, 10)

	p, item, err := q.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, p)
	assert.Equal(t, 10, item)
	assert.Equal(t, 2, q.Len())
}

func TestReset(t *testing.T) {
	q := pqueue.New[int, int](4)
	q.Insert(1, 1)
	q.Insert(2, 2)
	q.Reset()
	require.True(t, q.IsEmpty())

	q.Insert(5, 50)
	q.Insert(5, 51)
	_, item, err := q.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, 50, item)
}

// Random interleavings of Insert/ExtractMin agree with a sorted reference.
func TestRandomized_MatchesStableSort(t *testing.T) {
	type rec struct {
		p   int
		seq int
	}
	r := rand.New(rand.NewSource(42))
	q := pqueue.New[int, int](0)
	var ref []rec
	seq := 0

	for step := 0; step < 2000; step++ {
		if r.Intn(3) > 0 || len(ref) == 0 {
			p := r.Intn(20)
			q.Insert(p, seq)
			ref = append(ref, rec{p: p, seq: seq})
			seq++
			continue
		}
		sort.SliceStable(ref, func(i, j int) bool {
			if ref[i].p != ref[j].p {
				return ref[i].p < ref[j].p
			}
			return ref[i].seq < ref[j].seq
		})
		want := ref[0]
		ref = ref[1:]

		p, item, err := q.ExtractMin()
		require.NoError(t, err)
		require.Equal(t, want.p, p)
		require.Equal(t, want.seq, item)
	}
	require.Equal(t, len(ref), q.Len())
}

func BenchmarkInsertExtract(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	q := pqueue.New[float64, int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Insert(r.Float64(), i)
		if q.Len() > 512 {
			_, _, _ = q.ExtractMin()
		}
	}
}
