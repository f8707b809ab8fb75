// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/units"

// NetLineEdit describes what changed about a NetLine.
type NetLineEdit struct {
	WidthChanged   bool
	AnchorsChanged bool
}

// NetLine is a schematic wire segment: an identity, a width, and two
// anchors held in canonical order (Testable Property 8: p1() <= p2() in
// the anchors' total order).
type NetLine struct {
	uuid  Uuid
	width units.UnsignedLength
	p1    NetLineAnchor
	p2    NetLineAnchor

	onEdited Signal[NetLineEdit]
}

// NewNetLine builds a NetLine with a fresh identity, canonicalizing a and b
// into p1 <= p2 order.
func NewNetLine(width units.UnsignedLength, a, b NetLineAnchor) *NetLine {
	p1, p2 := canonicalizeNetLineAnchors(a, b)
	return &NetLine{uuid: NewUuid(), width: width, p1: p1, p2: p2}
}

func canonicalizeNetLineAnchors(a, b NetLineAnchor) (NetLineAnchor, NetLineAnchor) {
	if b.Cmp(a) < 0 {
		return b, a
	}
	return a, b
}

func (l *NetLine) Uuid() Uuid                   { return l.uuid }
func (l *NetLine) Width() units.UnsignedLength  { return l.width }
func (l *NetLine) P1() NetLineAnchor            { return l.p1 }
func (l *NetLine) P2() NetLineAnchor            { return l.p2 }
func (l *NetLine) OnEdited() *Signal[NetLineEdit] { return &l.onEdited }

// NotifyOnEdited registers fn to be called (with no detail) on any
// edit, for generic containers that hold elements of differing edit-
// event types and so cannot subscribe to OnEdited directly.
func (l *NetLine) NotifyOnEdited(fn func()) SignalHandle {
	return connectDetached(&l.onEdited, fn)
}

// StopNotify disconnects a handle returned by NotifyOnEdited.
func (l *NetLine) StopNotify(h SignalHandle) {
	l.onEdited.Disconnect(h)
}

// SetWidth changes l's width, reporting whether it actually changed.
func (l *NetLine) SetWidth(w units.UnsignedLength) bool {
	if l.width.Value() == w.Value() {
		return false
	}
	l.width = w
	l.onEdited.Emit(NetLineEdit{WidthChanged: true})
	return true
}

// SetAnchors replaces l's endpoints, re-canonicalizing them into p1 <= p2
// order, and reports whether either endpoint actually changed.
func (l *NetLine) SetAnchors(a, b NetLineAnchor) bool {
	p1, p2 := canonicalizeNetLineAnchors(a, b)
	if p1.Cmp(l.p1) == 0 && p2.Cmp(l.p2) == 0 {
		return false
	}
	l.p1, l.p2 = p1, p2
	l.onEdited.Emit(NetLineEdit{AnchorsChanged: true})
	return true
}
