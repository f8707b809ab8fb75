// SPDX-License-Identifier: MIT
package entitylist

import (
	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/model"
)

// Identifiable is the one capability List requires of its element type: a
// stable identity to look elements up by. List does not reject or remove
// elements that share an identity.
type Identifiable interface {
	Uuid() model.Uuid
}

// Named is implemented by element types that also carry a display name,
// unlocking the name-keyed lookups (IndexOfName, GetByName) below. Not
// every listable entity has one (a Junction has none), so this is kept
// separate from Identifiable rather than folded into it.
type Named interface {
	Identifiable
	Name() string
}

// editNotifier is implemented by the element types that expose an
// OnEdited signal (Junction, NetLine, Trace, PadHole, Pad's Via/Zone/
// Polygon siblings, ...) via their NotifyOnEdited/StopNotify pair. List
// type-asserts against it at Insert/Append/Take/Remove time so it can
// forward child edits without needing to know any element's concrete
// edit-event type — those differ per type (JunctionEdit, TraceEdit, ...)
// and Go has no way to express "a Signal[E] for some E I don't care
// about" as a single interface method.
type editNotifier interface {
	NotifyOnEdited(func()) model.SignalHandle
	StopNotify(model.SignalHandle)
}

// ElementAdded, ElementRemoved and ElementEdited are the events List's own
// signals deliver, each naming the index at the time of the event.
type ElementAdded struct{ Index int }
type ElementRemoved struct{ Index int }
type ElementEdited struct{ Index int }

// List is a uniform, insertion-ordered container of elements keyed by
// Uuid. It is the one collection type every aggregate in this kernel
// uses for its children (a footprint's pads, a board's traces, a
// project's net signals), replacing what would otherwise be one
// hand-written slice-plus-index-map per element type.
type List[T Identifiable] struct {
	items   []T
	handles map[model.Uuid]model.SignalHandle

	onAdded   model.Signal[ElementAdded]
	onRemoved model.Signal[ElementRemoved]
	onEdited  model.Signal[ElementEdited]
}

// New builds an empty List.
func New[T Identifiable]() *List[T] {
	return &List[T]{}
}

// OnAdded, OnRemoved and OnEdited expose the list's own signals.
// OnEdited fires whenever an element that implements editNotifier
// reports a change to itself, with the element's current index.
func (l *List[T]) OnAdded() *model.Signal[ElementAdded]     { return &l.onAdded }
func (l *List[T]) OnRemoved() *model.Signal[ElementRemoved] { return &l.onRemoved }
func (l *List[T]) OnEdited() *model.Signal[ElementEdited]   { return &l.onEdited }

// Len reports the number of elements.
func (l *List[T]) Len() int { return len(l.items) }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// At returns the element at index i. Like a slice index, an out-of-range
// i is a programmer error and panics rather than returning an error.
func (l *List[T]) At(i int) T { return l.items[i] }

// First returns the first element, or the zero value and false if empty.
func (l *List[T]) First() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[0], true
}

// Last returns the last element, or the zero value and false if empty.
func (l *List[T]) Last() (T, bool) {
	var zero T
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

// IndexOfUuid returns the index of the element with the given uuid, and
// whether one was found.
func (l *List[T]) IndexOfUuid(u model.Uuid) (int, bool) {
	for i, it := range l.items {
		if it.Uuid() == u {
			return i, true
		}
	}
	return 0, false
}

// Contains reports whether an element with the given uuid is present.
func (l *List[T]) Contains(u model.Uuid) bool {
	_, ok := l.IndexOfUuid(u)
	return ok
}

// GetByUuid returns the element with the given uuid, or a NotFound error.
// Unlike At, a missing uuid is an ordinary, recoverable condition (the
// caller may simply not know whether the element still exists), so this
// reports it through the error return instead of panicking.
func (l *List[T]) GetByUuid(u model.Uuid) (T, error) {
	var zero T
	i, ok := l.IndexOfUuid(u)
	if !ok {
		return zero, errkind.New(errkind.NotFound, "no element with uuid "+u.String())
	}
	return l.items[i], nil
}

// Values returns a copy of the element slice, in list order. Mutating the
// returned slice does not affect the list; mutating an element through
// its own setters does (and, for elements implementing editNotifier,
// raises the list's own OnEdited).
func (l *List[T]) Values() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds item at the end of the list.
func (l *List[T]) Append(item T) {
	l.Insert(len(l.items), item)
}

// Insert places item at index, shifting later elements up by one.
func (l *List[T]) Insert(index int, item T) {
	l.items = append(l.items, item)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
	l.subscribe(item)
	l.onAdded.Emit(ElementAdded{Index: index})
}

// Take removes and returns the element at index.
func (l *List[T]) Take(index int) T {
	item := l.items[index]
	l.unsubscribe(item)
	l.items = append(l.items[:index], l.items[index+1:]...)
	l.onRemoved.Emit(ElementRemoved{Index: index})
	return item
}

// RemoveByUuid removes the element with the given uuid, reporting whether
// one was found and removed.
func (l *List[T]) RemoveByUuid(u model.Uuid) bool {
	i, ok := l.IndexOfUuid(u)
	if !ok {
		return false
	}
	l.Take(i)
	return true
}

// Swap exchanges the elements at i and j.
func (l *List[T]) Swap(i, j int) {
	l.items[i], l.items[j] = l.items[j], l.items[i]
}

// Clear removes every element, in reverse order, emitting ElementRemoved
// for each — matching the order a caller iterating the list backwards and
// removing as it goes would observe.
func (l *List[T]) Clear() {
	for len(l.items) > 0 {
		l.Take(len(l.items) - 1)
	}
}

func (l *List[T]) subscribe(item T) {
	en, ok := any(item).(editNotifier)
	if !ok {
		return
	}
	u := item.Uuid()
	h := en.NotifyOnEdited(func() {
		if i, found := l.IndexOfUuid(u); found {
			l.onEdited.Emit(ElementEdited{Index: i})
		}
	})
	if l.handles == nil {
		l.handles = make(map[model.Uuid]model.SignalHandle)
	}
	l.handles[u] = h
}

func (l *List[T]) unsubscribe(item T) {
	en, ok := any(item).(editNotifier)
	if !ok {
		return
	}
	u := item.Uuid()
	if h, ok := l.handles[u]; ok {
		en.StopNotify(h)
		delete(l.handles, u)
	}
}
