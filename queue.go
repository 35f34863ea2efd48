// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

package linear

// A Queue is a FIFO view over a [Seq]: [Queue.Add] appends, [Queue.Peek] and
// [Queue.Pop] operate on the front. The zero value is an empty, unbounded
// queue that allows duplicates.
type Queue[T comparable] struct {
	Seq[T]
}

// Add enqueues `x` at the back of the queue.
func (q *Queue[T]) Add(x T) bool {
	return q.Insert(q.Len(), x)
}

// Peek returns the front element without removing it, or false if the queue
// is empty.
func (q *Queue[T]) Peek() (T, bool) {
	return q.Get(0)
}

// Pop removes and returns the front element, or false if the queue is empty.
// A successful Pop notifies via the underlying removal.
func (q *Queue[T]) Pop() (T, bool) {
	x, ok := q.Get(0)
	if !ok || !q.Remove(0) {
		return zero[T](), false
	}
	return x, true
}
