// SPDX-License-Identifier: MIT
package entitylist

import (
	"sort"

	"github.com/katalvlaran/edakernel/internal/errkind"
)

// IndexOfName returns the index of the first element whose Name matches,
// and whether one was found. Only available for element types that
// implement Named, unlike IndexOfUuid which every List supports.
func IndexOfName[T Named](l *List[T], name string) (int, bool) {
	for i, it := range l.Values() {
		if it.Name() == name {
			return i, true
		}
	}
	return 0, false
}

// GetByName returns the first element with the given name, or a NotFound
// error.
func GetByName[T Named](l *List[T], name string) (T, error) {
	var zero T
	vs := l.Values()
	i, ok := IndexOfName(l, name)
	if !ok {
		return zero, errkind.New(errkind.NotFound, "no element named "+name)
	}
	return vs[i], nil
}

// SortedBy returns a new List holding the same elements as l, ordered by
// less. l itself is untouched: canonical serialization never reorders,
// so callers needing a display or report ordering take a sorted copy
// rather than mutating the authored order in place.
func SortedBy[T Identifiable](l *List[T], less func(a, b T) bool) *List[T] {
	vs := l.Values()
	sort.SliceStable(vs, func(i, j int) bool { return less(vs[i], vs[j]) })
	out := New[T]()
	for _, v := range vs {
		out.Append(v)
	}
	return out
}

// SortedByUuid is SortedBy ordered by the raw byte value of each
// element's Uuid, giving a stable, content-independent canonical order.
func SortedByUuid[T Identifiable](l *List[T]) *List[T] {
	return SortedBy(l, func(a, b T) bool {
		return a.Uuid().Cmp(b.Uuid()) < 0
	})
}
