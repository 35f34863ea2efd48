// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

package linear

import "golang.org/x/exp/constraints"

// A List is a [Seq] of ordered values with positional editing, reversal, and
// sorting. The element type must be ordered to support [List.Sort]; the
// remaining operations only require equality. The zero value is an empty,
// unbounded list that allows duplicates.
//
// [Seq.Insert] and [Seq.Remove] are promoted unchanged; List adds no
// invariants of its own.
type List[T constraints.Ordered] struct {
	Seq[T]
}

// Append inserts `x` at the end of the list.
func (l *List[T]) Append(x T) bool {
	return l.Insert(l.Len(), x)
}

// Reverse rebuilds the list back to front, replacing the stored sequence with
// the reconstruction. Reversing fewer than two elements succeeds without any
// effect or notification; otherwise the notifier fires once.
func (l *List[T]) Reverse() bool {
	n := l.Len()
	if n < 2 {
		return true
	}

	rev := make([]T, 0, n)
	for i := n; i > 0; i-- {
		x, _ := l.Get(i - 1)
		rev = append(rev, x)
	}
	l.elems = rev

	l.notify()
	return true
}
