// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

package linear

// A Stack is a LIFO view over a [Seq]: [Stack.Add] pushes, [Stack.Peek] and
// [Stack.Pop] operate on the top, which is the end of the sequence. The zero
// value is an empty, unbounded stack that allows duplicates.
type Stack[T comparable] struct {
	Seq[T]
}

// Add pushes `x` onto the top of the stack.
func (s *Stack[T]) Add(x T) bool {
	return s.Insert(s.Len(), x)
}

// Peek returns the top element without removing it, or false if the stack is
// empty.
func (s *Stack[T]) Peek() (T, bool) {
	return s.Get(s.Len() - 1)
}

// Pop removes and returns the top element, or false if the stack is empty. A
// successful Pop notifies via the underlying removal.
func (s *Stack[T]) Pop() (T, bool) {
	x, ok := s.Get(s.Len() - 1)
	if !ok || !s.Remove(s.Len()-1) {
		return zero[T](), false
	}
	return x, true
}
