// SPDX-License-Identifier: MIT
package model

import (
	"slices"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

// PadHoleEdit describes what changed about a PadHole.
type PadHoleEdit struct {
	UuidChanged     bool
	DiameterChanged bool
	PathChanged     bool
}

// PadHole is a drilled hole within a Pad. A non-empty hole path with more
// than one vertex describes a slot rather than a round hole.
type PadHole struct {
	uuid     Uuid
	diameter units.PositiveLength
	path     geometry.Path

	onEdited Signal[PadHoleEdit]
}

// NewPadHole builds a PadHole with a fresh identity. path must be non-empty.
func NewPadHole(diameter units.PositiveLength, path geometry.Path) *PadHole {
	return &PadHole{uuid: NewUuid(), diameter: diameter, path: path}
}

func (h *PadHole) Uuid() Uuid                   { return h.uuid }
func (h *PadHole) Diameter() units.PositiveLength { return h.diameter }
func (h *PadHole) Path() geometry.Path          { return h.path }
func (h *PadHole) OnEdited() *Signal[PadHoleEdit] { return &h.onEdited }

// NotifyOnEdited registers fn to be called (with no detail) on any
// edit, for generic containers that hold elements of differing edit-
// event types and so cannot subscribe to OnEdited directly.
func (h *PadHole) NotifyOnEdited(fn func()) SignalHandle {
	return connectDetached(&h.onEdited, fn)
}

// StopNotify disconnects a handle returned by NotifyOnEdited.
func (h *PadHole) StopNotify(handle SignalHandle) {
	h.onEdited.Disconnect(handle)
}

// IsSlot reports whether the hole is a slot rather than a round hole.
func (h *PadHole) IsSlot() bool { return len(h.path.Vertices()) > 1 }

// IsMultiSegmentSlot reports whether the slot has more than one segment.
func (h *PadHole) IsMultiSegmentSlot() bool { return len(h.path.Vertices()) > 2 }

// IsCurvedSlot reports whether any segment of the slot is an arc.
func (h *PadHole) IsCurvedSlot() bool { return h.path.IsCurved() }

// SetDiameter changes h's diameter, reporting whether it actually changed.
func (h *PadHole) SetDiameter(d units.PositiveLength) bool {
	if h.diameter.Value() == d.Value() {
		return false
	}
	h.diameter = d
	h.onEdited.Emit(PadHoleEdit{DiameterChanged: true})
	return true
}

// SetPath replaces h's path, reporting whether it actually changed.
func (h *PadHole) SetPath(p geometry.Path) bool {
	if slices.Equal(h.path.Vertices(), p.Vertices()) {
		return false
	}
	h.path = p
	h.onEdited.Emit(PadHoleEdit{PathChanged: true})
	return true
}
