// Package pqueue implements a generic min-priority queue used to drive the
// frontier of the metro shortest-path search.
//
// Ordering:
//
//   - Entries are ordered by ascending priority.
//   - Among equal priorities the earliest inserted entry is extracted first
//     (FIFO tie-break). Every Insert stamps the entry with a monotonically
//     increasing sequence number that acts as the secondary key.
//
// Decrease-key is not provided. Callers that need to lower the priority of an
// item insert it again and discard stale entries themselves when they are
// extracted ("lazy decrease-key").
//
// Complexity:
//
//   - Insert:     O(log n)
//   - ExtractMin: O(log n)
//   - Peek, Len, IsEmpty: O(1)
//
// A Queue is not safe for concurrent use; each search owns its own queue.
package pqueue

import (
	"container/heap"
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyQueue is returned by ExtractMin and Peek on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// entry is one (priority, item) pair plus its insertion stamp.
type entry[P constraints.Ordered, T any] struct {
	priority P
	seq      uint64
	item     T
}

// entries is the heap.Interface backing store.
type entries[P constraints.Ordered, T any] []entry[P, T]

func (h entries[P, T]) Len() int { return len(h) }

// Less orders by priority, then by insertion stamp.
func (h entries[P, T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

func (h entries[P, T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entries[P, T]) Push(x any) { *h = append(*h, x.(entry[P, T])) }

func (h *entries[P, T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[P, T]{} // release references held by item
	*h = old[:n-1]

	return e
}

// Queue is a min-priority queue of items of type T keyed by priorities of type P.
// The zero value is an empty, ready-to-use queue.
type Queue[P constraints.Ordered, T any] struct {
	h       entries[P, T]
	nextSeq uint64
}

// New returns an empty queue with room for capacityHint entries before the
// first reallocation. A negative hint is treated as zero.
func New[P constraints.Ordered, T any](capacityHint int) *Queue[P, T] {
	if capacityHint < 0 {
		capacityHint = 0
	}

	return &Queue[P, T]{h: make(entries[P, T], 0, capacityHint)}
}

// Insert adds item with the given priority. It always succeeds.
func (q *Queue[P, T]) Insert(priority P, item T) {
	heap.Push(&q.h, entry[P, T]{priority: priority, seq: q.nextSeq, item: item})
	q.nextSeq++
}

// ExtractMin removes and returns the entry with the smallest priority.
// Ties are resolved in favor of the earliest insertion.
// Returns ErrEmptyQueue if the queue holds no entries.
func (q *Queue[P, T]) ExtractMin() (P, T, error) {
	if len(q.h) == 0 {
		var (
			p P
			t T
		)

		return p, t, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[P, T])

	return e.priority, e.item, nil
}

// Peek returns the entry ExtractMin would return, without removing it.
func (q *Queue[P, T]) Peek() (P, T, error) {
	if len(q.h) == 0 {
		var (
			p P
			t T
		)

		return p, t, ErrEmptyQueue
	}

	return q.h[0].priority, q.h[0].item, nil
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[P, T]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of entries, stale duplicates included.
func (q *Queue[P, T]) Len() int { return len(q.h) }

// Reset drops every entry but keeps the allocated storage.
// The insertion counter restarts so a reused queue behaves like a new one.
func (q *Queue[P, T]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
	q.nextSeq = 0
}
