// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/units"

// TraceEdit describes what changed about a Trace.
type TraceEdit struct {
	WidthChanged   bool
	LayerChanged   bool
	AnchorsChanged bool
}

// Trace is a board copper segment: an identity, a layer, a width, and two
// anchors held in canonical order (Testable Property 8: p1() <= p2() in
// the anchors' total order). The original source material left a Trace's
// endpoints in caller-given order; canonicalizing them here is a deliberate
// change so that two structurally identical traces serialize identically
// regardless of which endpoint was passed first.
type Trace struct {
	uuid  Uuid
	layer Layer
	width units.PositiveLength
	p1    TraceAnchor
	p2    TraceAnchor

	onEdited Signal[TraceEdit]
}

// NewTrace builds a Trace with a fresh identity, canonicalizing a and b
// into p1 <= p2 order.
func NewTrace(layer Layer, width units.PositiveLength, a, b TraceAnchor) *Trace {
	p1, p2 := canonicalizeTraceAnchors(a, b)
	return &Trace{uuid: NewUuid(), layer: layer, width: width, p1: p1, p2: p2}
}

func canonicalizeTraceAnchors(a, b TraceAnchor) (TraceAnchor, TraceAnchor) {
	if b.Cmp(a) < 0 {
		return b, a
	}
	return a, b
}

func (t *Trace) Uuid() Uuid                   { return t.uuid }
func (t *Trace) Layer() Layer                 { return t.layer }
func (t *Trace) Width() units.PositiveLength  { return t.width }
func (t *Trace) P1() TraceAnchor              { return t.p1 }
func (t *Trace) P2() TraceAnchor              { return t.p2 }
func (t *Trace) OnEdited() *Signal[TraceEdit] { return &t.onEdited }

// NotifyOnEdited registers fn to be called (with no detail) on any
// edit, for generic containers that hold elements of differing edit-
// event types and so cannot subscribe to OnEdited directly.
func (t *Trace) NotifyOnEdited(fn func()) SignalHandle {
	return connectDetached(&t.onEdited, fn)
}

// StopNotify disconnects a handle returned by NotifyOnEdited.
func (t *Trace) StopNotify(h SignalHandle) {
	t.onEdited.Disconnect(h)
}

// SetWidth changes t's width, reporting whether it actually changed.
func (t *Trace) SetWidth(w units.PositiveLength) bool {
	if t.width.Value() == w.Value() {
		return false
	}
	t.width = w
	t.onEdited.Emit(TraceEdit{WidthChanged: true})
	return true
}

// SetLayer moves t to a different layer, reporting whether it actually
// changed.
func (t *Trace) SetLayer(l Layer) bool {
	if t.layer == l {
		return false
	}
	t.layer = l
	t.onEdited.Emit(TraceEdit{LayerChanged: true})
	return true
}

// SetAnchors replaces t's endpoints, re-canonicalizing them into p1 <= p2
// order, and reports whether either endpoint actually changed.
func (t *Trace) SetAnchors(a, b TraceAnchor) bool {
	p1, p2 := canonicalizeTraceAnchors(a, b)
	if p1.Cmp(t.p1) == 0 && p2.Cmp(t.p2) == 0 {
		return false
	}
	t.p1, t.p2 = p1, p2
	t.onEdited.Emit(TraceEdit{AnchorsChanged: true})
	return true
}
