// Copyright (C) 2026, the tinyseq authors. All rights reserved.
// See the file LICENSE for licensing terms.

package linear

// Sort sorts the list in ascending order using an iterative, bottom-up merge
// sort: runs of width 1, 2, 4, … are merged pairwise until a single run
// remains. Ties always take the left run, so equal elements keep their
// relative order. O(n log n) comparisons with a single O(n) buffer reused
// across merges.
//
// Sorting fewer than two elements succeeds without any effect or
// notification; otherwise the notifier fires exactly once, after the whole
// sort, never per merge or per pass.
func (l *List[T]) Sort() bool {
	n := l.Len()
	if n < 2 {
		return true
	}

	buf := make([]T, 0, n)
	for width := 1; width < n; width *= 2 {
		for left := 0; left < n; left += 2 * width {
			mid := min(left+width, n)
			right := min(left+2*width, n)

			buf = buf[:0]
			i, j := left, mid
			for i < mid && j < right {
				if l.elems[i] <= l.elems[j] {
					buf = append(buf, l.elems[i])
					i++
				} else {
					buf = append(buf, l.elems[j])
					j++
				}
			}
			buf = append(buf, l.elems[i:mid]...)
			buf = append(buf, l.elems[j:right]...)
			copy(l.elems[left:], buf)
		}
	}

	l.notify()
	return true
}
