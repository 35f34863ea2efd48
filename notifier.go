// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

package linear

// A ChangeNotifier is a user-injected observation point, invoked
// synchronously at most once per successful mutating operation on the
// container it is attached to. It is never invoked for a failed operation.
type ChangeNotifier interface {
	// OnChange is called after the mutation has been applied and verified.
	// It MUST NOT mutate the container it observes; reentrant mutation from
	// inside the callback is unsupported.
	OnChange()
}

// SetNotifier attaches `n` as the sequence's sole notifier, replacing any
// previous one; nil disables notification. The sequence borrows the notifier
// and never manages its lifetime.
func (s *Seq[T]) SetNotifier(n ChangeNotifier) {
	s.notifier = n
}

func (s *Seq[T]) notify() {
	if s.notifier != nil {
		s.notifier.OnChange()
	}
}
