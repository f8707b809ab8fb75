// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/geometry"

// JunctionEdit describes what changed about a Junction, delivered to
// listeners connected via Junction.OnEdited.
type JunctionEdit struct {
	UuidChanged     bool
	PositionChanged bool
}

// Junction is a point where wires or traces meet with no other component
// attached: just an identity and a position.
type Junction struct {
	uuid     Uuid
	position geometry.Point

	onEdited Signal[JunctionEdit]
}

// NewJunction builds a Junction at position with a fresh identity.
func NewJunction(position geometry.Point) *Junction {
	return &Junction{uuid: NewUuid(), position: position}
}

func (j *Junction) Uuid() Uuid                 { return j.uuid }
func (j *Junction) Position() geometry.Point   { return j.position }
func (j *Junction) OnEdited() *Signal[JunctionEdit] { return &j.onEdited }

// NotifyOnEdited registers fn to be called (with no detail) on any
// edit, for generic containers that hold elements of differing edit-
// event types and so cannot subscribe to OnEdited directly.
func (j *Junction) NotifyOnEdited(fn func()) SignalHandle {
	return connectDetached(&j.onEdited, fn)
}

// StopNotify disconnects a handle returned by NotifyOnEdited.
func (j *Junction) StopNotify(h SignalHandle) {
	j.onEdited.Disconnect(h)
}

// SetUuid replaces j's identity, reporting whether it actually changed.
func (j *Junction) SetUuid(u Uuid) bool {
	if j.uuid == u {
		return false
	}
	j.uuid = u
	j.onEdited.Emit(JunctionEdit{UuidChanged: true})
	return true
}

// SetPosition moves j, reporting whether the position actually changed.
func (j *Junction) SetPosition(p geometry.Point) bool {
	if j.position == p {
		return false
	}
	j.position = p
	j.onEdited.Emit(JunctionEdit{PositionChanged: true})
	return true
}
