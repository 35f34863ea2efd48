// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package linear provides bounded, order-preserving containers intended for
// memory-constrained environments. The shared engine is [Seq]; [List],
// [Queue], and [Stack] are thin, role-specific views over it.
//
// Every container in this package accounts for its size and capacity in a
// single unsigned byte, so no container ever holds more than [MaxLen]
// elements. Fallible operations report success with a boolean (paired with a
// value for reads); nothing in this package panics or returns an error.
//
// No container in this package is safe for concurrent use.
package linear

import (
	"math"
	"slices"
)

// MaxLen is the largest number of elements any container in this package can
// hold, bounded or not. Sizes and capacities fit in an unsigned byte; this is
// a documented constraint of the container family, not an incidental limit.
const MaxLen = math.MaxUint8

// A Seq is a bounded, order-preserving sequence of values with optional
// duplicate suppression and change notification. Index 0 is the first
// element. The zero value is an empty, unbounded sequence that allows
// duplicates.
type Seq[T comparable] struct {
	elems    []T
	capacity uint8 // 0 means unbounded
	noDup    bool  // inverted so the zero value allows duplicates
	notifier ChangeNotifier
}

func zero[T any]() (z T) { return }

// Len returns the number of elements in the sequence.
func (s *Seq[T]) Len() int {
	return len(s.elems)
}

// Empty reports whether the sequence holds no elements.
func (s *Seq[T]) Empty() bool {
	return len(s.elems) == 0
}

// Full reports whether the sequence has reached its capacity. An unbounded
// sequence (capacity 0) is never full.
func (s *Seq[T]) Full() bool {
	if s.capacity == 0 {
		return false
	}
	return len(s.elems) == int(s.capacity)
}

// Capacity returns the current capacity bound; 0 means unbounded.
func (s *Seq[T]) Capacity() uint8 {
	return s.capacity
}

// AllowsDuplicates reports whether equal elements may coexist in the
// sequence.
func (s *Seq[T]) AllowsDuplicates() bool {
	return !s.noDup
}

// Contains reports whether an element equal to `x` is in the sequence.
func (s *Seq[T]) Contains(x T) bool {
	return slices.Contains(s.elems, x)
}

// Get returns a copy of the i'th element. It returns false, with an undefined
// value, if `i` is not in `[0,s.Len())`.
func (s *Seq[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.elems) {
		return zero[T](), false
	}
	return s.elems[i], true
}

// Values returns a copy of the sequence. The returned slice never aliases
// internal storage.
func (s *Seq[T]) Values() []T {
	return slices.Clone(s.elems)
}

// bound returns the effective limit on [Seq.Len]: the capacity if one is set,
// otherwise [MaxLen].
func (s *Seq[T]) bound() int {
	if s.capacity == 0 {
		return MaxLen
	}
	return int(s.capacity)
}

// Insert places `x` at index `i`, shifting later elements up by one;
// `i == s.Len()` appends. It returns false, without mutating or notifying, if
// the sequence is full (including the [MaxLen] ceiling of an unbounded
// sequence), if duplicates are disallowed and an equal element exists, or if
// `i` is out of range. The new length is verified to be exactly one greater
// before the notifier fires.
func (s *Seq[T]) Insert(i int, x T) bool {
	if i < 0 || i > len(s.elems) {
		return false
	}
	if s.Full() || len(s.elems) == MaxLen {
		return false
	}
	if s.noDup && s.Contains(x) {
		return false
	}

	before := len(s.elems)
	s.elems = slices.Insert(s.elems, i, x)
	if len(s.elems) != before+1 {
		return false
	}

	s.notify()
	return true
}

// Set replaces the element at index `i` with `x`, returning false if `i` is
// out of range. The stored value is re-read and compared against `x` before
// the notifier fires; a mismatch reports false without rollback, so a false
// return from Set, unlike from [Seq.Insert] or [Seq.Remove], does not
// guarantee the sequence is unchanged.
func (s *Seq[T]) Set(i int, x T) bool {
	if i < 0 || i >= len(s.elems) {
		return false
	}

	s.elems[i] = x
	if s.elems[i] != x {
		return false
	}

	s.notify()
	return true
}

// Remove deletes the element at index `i`, shifting later elements down by
// one. It returns false, without mutating or notifying, if `i` is not in
// `[0,s.Len())`. The new length is verified to be exactly one less before the
// notifier fires.
func (s *Seq[T]) Remove(i int) bool {
	if i < 0 || i >= len(s.elems) {
		return false
	}

	before := len(s.elems)
	s.elems = slices.Delete(s.elems, i, i+1)
	if len(s.elems) != before-1 {
		return false
	}

	s.notify()
	return true
}

// Clear removes all elements and releases their storage. Clearing an already
// empty sequence succeeds without notifying; clearing a non-empty one
// notifies exactly once.
func (s *Seq[T]) Clear() bool {
	before := len(s.elems)
	s.elems = nil
	if !s.Empty() {
		return false
	}
	if before == 0 {
		return true
	}

	s.notify()
	return true
}

// SetCapacity sets the capacity bound; 0 removes it. If the sequence already
// holds more than `n` elements, trailing elements are evicted one at a time,
// each eviction being an individually notifying [Seq.Remove] of the last
// index.
func (s *Seq[T]) SetCapacity(n uint8) {
	s.capacity = n
	if n == 0 {
		return
	}
	for len(s.elems) > int(n) {
		s.Remove(len(s.elems) - 1)
	}
}

// SetAllowDuplicates sets whether equal elements may coexist. Transitioning
// to false immediately removes every later duplicate, keeping the first
// occurrence of each value and preserving order. The sweep is one logical
// event: it notifies at most once overall, and only if it removed anything.
func (s *Seq[T]) SetAllowDuplicates(allow bool) {
	s.noDup = !allow
	if allow {
		return
	}
	if s.removeDuplicates() {
		s.notify()
	}
}

// removeDuplicates deletes later duplicates in place, reporting whether it
// removed anything. O(n²) time, no allocation.
func (s *Seq[T]) removeDuplicates() bool {
	removed := false
	for i := 0; i < len(s.elems)-1; i++ {
		for j := i + 1; j < len(s.elems); {
			if s.elems[j] == s.elems[i] {
				s.elems = slices.Delete(s.elems, j, j+1)
				removed = true
				continue
			}
			j++
		}
	}
	return removed
}

// Extend appends all of `other`'s elements, in order, to the sequence. It
// returns false without any partial effect if the combined length would
// exceed the bound; otherwise each element is appended via [Seq.Insert],
// notifying per element.
func (s *Seq[T]) Extend(other *Seq[T]) bool {
	if len(s.elems)+other.Len() > s.bound() {
		return false
	}
	for i := range other.Len() {
		x, _ := other.Get(i)
		s.Insert(len(s.elems), x)
	}
	return true
}

// Copy replaces the sequence's contents with `other`'s, in order. It returns
// false, leaving the sequence untouched, if `other` is larger than the bound;
// otherwise the sequence is cleared and each element appended via
// [Seq.Insert].
func (s *Seq[T]) Copy(other *Seq[T]) bool {
	if other.Len() > s.bound() {
		return false
	}
	s.Clear()
	for i := range other.Len() {
		x, _ := other.Get(i)
		s.Insert(len(s.elems), x)
	}
	return true
}
