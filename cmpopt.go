// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

package linear

import "github.com/google/go-cmp/cmp"

// CmpOpt returns a configuration for [cmp.Diff] to compare sequences (and the
// facades embedding them) by their element values alone, ignoring capacity,
// duplicate policy, and notifier.
func CmpOpt[T comparable]() cmp.Option {
	return cmp.Transformer("linear.Values", func(s Seq[T]) []T {
		return s.Values()
	})
}
