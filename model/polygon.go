// SPDX-License-Identifier: MIT
package model

import (
	"slices"

	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

// PolygonEdit describes what changed about a Polygon.
type PolygonEdit struct {
	LayerChanged   bool
	WidthChanged   bool
	FilledChanged  bool
	GrabAreaChanged bool
	PathChanged    bool
}

// Polygon is an outline artwork element on a single layer.
type Polygon struct {
	uuid      Uuid
	layer     Layer
	width     units.UnsignedLength
	filled    bool
	grabArea  bool
	path      geometry.Path

	onEdited Signal[PolygonEdit]
}

// NewPolygon builds a Polygon with a fresh identity.
func NewPolygon(layer Layer, width units.UnsignedLength, filled, grabArea bool, path geometry.Path) *Polygon {
	return &Polygon{uuid: NewUuid(), layer: layer, width: width, filled: filled, grabArea: grabArea, path: path}
}

func (p *Polygon) Uuid() Uuid                      { return p.uuid }
func (p *Polygon) Layer() Layer                    { return p.layer }
func (p *Polygon) Width() units.UnsignedLength     { return p.width }
func (p *Polygon) IsFilled() bool                  { return p.filled }
func (p *Polygon) IsGrabArea() bool                { return p.grabArea }
func (p *Polygon) Path() geometry.Path             { return p.path }
func (p *Polygon) OnEdited() *Signal[PolygonEdit]  { return &p.onEdited }

// NotifyOnEdited registers fn to be called (with no detail) on any
// edit, for generic containers that hold elements of differing edit-
// event types and so cannot subscribe to OnEdited directly.
func (p *Polygon) NotifyOnEdited(fn func()) SignalHandle {
	return connectDetached(&p.onEdited, fn)
}

// StopNotify disconnects a handle returned by NotifyOnEdited.
func (p *Polygon) StopNotify(h SignalHandle) {
	p.onEdited.Disconnect(h)
}

// SetLayer moves p to a different layer, reporting whether it changed.
func (p *Polygon) SetLayer(l Layer) bool {
	if p.layer == l {
		return false
	}
	p.layer = l
	p.onEdited.Emit(PolygonEdit{LayerChanged: true})
	return true
}

// SetPath replaces p's outline, reporting whether it actually changed.
func (p *Polygon) SetPath(path geometry.Path) bool {
	if slices.Equal(p.path.Vertices(), path.Vertices()) {
		return false
	}
	p.path = path
	p.onEdited.Emit(PolygonEdit{PathChanged: true})
	return true
}
