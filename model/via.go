// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

// ViaEdit describes what changed about a Via.
type ViaEdit struct {
	PositionChanged bool
	SizeChanged     bool
	DrillChanged    bool
	StopMaskChanged bool
}

// Via is a plated hole connecting board layers vertically. Its full pad
// shape belongs to the rendering/footprint layer; this kernel only needs
// its identity and position to place it as a Trace anchor.
type Via struct {
	uuid     Uuid
	position geometry.Point
	size     units.PositiveLength
	drill    units.PositiveLength
	stopMask MaskConfig

	onEdited Signal[ViaEdit]
}

// NewVia builds a Via with a fresh identity.
func NewVia(position geometry.Point, size, drill units.PositiveLength, stopMask MaskConfig) *Via {
	return &Via{uuid: NewUuid(), position: position, size: size, drill: drill, stopMask: stopMask}
}

func (v *Via) Uuid() Uuid                   { return v.uuid }
func (v *Via) Position() geometry.Point     { return v.position }
func (v *Via) Size() units.PositiveLength   { return v.size }
func (v *Via) Drill() units.PositiveLength  { return v.drill }
func (v *Via) StopMaskConfig() MaskConfig   { return v.stopMask }
func (v *Via) OnEdited() *Signal[ViaEdit]   { return &v.onEdited }

// NotifyOnEdited registers fn to be called (with no detail) on any
// edit, for generic containers that hold elements of differing edit-
// event types and so cannot subscribe to OnEdited directly.
func (v *Via) NotifyOnEdited(fn func()) SignalHandle {
	return connectDetached(&v.onEdited, fn)
}

// StopNotify disconnects a handle returned by NotifyOnEdited.
func (v *Via) StopNotify(h SignalHandle) {
	v.onEdited.Disconnect(h)
}

// SetPosition moves v, reporting whether it actually changed.
func (v *Via) SetPosition(p geometry.Point) bool {
	if v.position == p {
		return false
	}
	v.position = p
	v.onEdited.Emit(ViaEdit{PositionChanged: true})
	return true
}

// SetSize changes v's pad size, reporting whether it actually changed.
func (v *Via) SetSize(size units.PositiveLength) bool {
	if v.size.Value() == size.Value() {
		return false
	}
	v.size = size
	v.onEdited.Emit(ViaEdit{SizeChanged: true})
	return true
}

// SetDrill changes v's drill diameter, reporting whether it actually
// changed.
func (v *Via) SetDrill(drill units.PositiveLength) bool {
	if v.drill.Value() == drill.Value() {
		return false
	}
	v.drill = drill
	v.onEdited.Emit(ViaEdit{DrillChanged: true})
	return true
}
