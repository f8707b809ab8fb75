// SPDX-License-Identifier: MIT
package model

import "sort"

// SignalHandle identifies one connected listener, returned by Signal.Connect
// so the caller can later Disconnect it. The zero value never matches a
// connected listener.
type SignalHandle uint64

// Signal is a synchronous, single-threaded observer list: one event type E,
// any number of connected listeners, called in connection order by Emit.
// This replaces the signal/slot wiring of the source material, which relied
// on the host framework to disconnect a slot automatically when either side
// was destroyed; here a listener must Disconnect itself explicitly, which is
// the honest Go equivalent of "detach on destroy" since there is no
// destructor to hook.
type Signal[E any] struct {
	next      SignalHandle
	listeners map[SignalHandle]func(E)
}

// Connect registers fn and returns a handle that can later be passed to
// Disconnect. fn is called synchronously, in registration order, every time
// Emit runs.
func (s *Signal[E]) Connect(fn func(E)) SignalHandle {
	if s.listeners == nil {
		s.listeners = make(map[SignalHandle]func(E))
	}
	s.next++
	h := s.next
	s.listeners[h] = fn
	return h
}

// Disconnect removes the listener registered under h, if any. Disconnecting
// an unknown or already-disconnected handle is a no-op.
func (s *Signal[E]) Disconnect(h SignalHandle) {
	delete(s.listeners, h)
}

// Emit calls every currently connected listener with e, in connection
// order. A listener connected from inside Emit is not called by that Emit;
// one disconnected from inside Emit before its turn is skipped.
func (s *Signal[E]) Emit(e E) {
	handles := make([]SignalHandle, 0, len(s.listeners))
	for h := range s.listeners {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		if fn, ok := s.listeners[h]; ok {
			fn(e)
		}
	}
}

// Len reports how many listeners are currently connected.
func (s *Signal[E]) Len() int {
	return len(s.listeners)
}

// connectDetached wraps fn so it can be registered on a Signal[E] without
// the caller needing to know E. Used by entities to expose a uniform
// "something about me changed" notification (see each entity's
// NotifyOnEdited) to generic containers such as entitylist.List, which
// hold elements of many different concrete types and so cannot depend on
// any one type's edit-event shape.
func connectDetached[E any](s *Signal[E], fn func()) SignalHandle {
	return s.Connect(func(E) { fn() })
}
