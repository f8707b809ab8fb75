// SPDX-License-Identifier: MIT
package model

import (
	"slices"

	"github.com/katalvlaran/edakernel/geometry"
)

// ZoneLayer is one bit of a Zone's layer set: which board layer groups the
// zone applies to.
type ZoneLayer int

const (
	ZoneLayerTop ZoneLayer = 1 << iota
	ZoneLayerInner
	ZoneLayerBottom
)

// ZoneRule is one bit of a Zone's rule set: what the zone keeps out of its
// outline.
type ZoneRule int

const (
	ZoneRuleNoCopper ZoneRule = 1 << iota
	ZoneRuleNoPlanes
	ZoneRuleNoExposure
	ZoneRuleNoDevices
)

// ZoneEdit describes what changed about a Zone.
type ZoneEdit struct {
	LayersChanged  bool
	RulesChanged   bool
	OutlineChanged bool
}

// Zone is a keep-out region on one or more board layers.
type Zone struct {
	uuid    Uuid
	layers  ZoneLayer
	rules   ZoneRule
	outline geometry.Path

	onEdited Signal[ZoneEdit]
}

// NewZone builds a Zone with a fresh identity.
func NewZone(layers ZoneLayer, rules ZoneRule, outline geometry.Path) *Zone {
	return &Zone{uuid: NewUuid(), layers: layers, rules: rules, outline: outline}
}

func (z *Zone) Uuid() Uuid                { return z.uuid }
func (z *Zone) Layers() ZoneLayer         { return z.layers }
func (z *Zone) Rules() ZoneRule           { return z.rules }
func (z *Zone) Outline() geometry.Path    { return z.outline }
func (z *Zone) OnEdited() *Signal[ZoneEdit] { return &z.onEdited }

// NotifyOnEdited registers fn to be called (with no detail) on any
// edit, for generic containers that hold elements of differing edit-
// event types and so cannot subscribe to OnEdited directly.
func (z *Zone) NotifyOnEdited(fn func()) SignalHandle {
	return connectDetached(&z.onEdited, fn)
}

// StopNotify disconnects a handle returned by NotifyOnEdited.
func (z *Zone) StopNotify(h SignalHandle) {
	z.onEdited.Disconnect(h)
}

// HasLayer reports whether l is set in z's layer flags.
func (z *Zone) HasLayer(l ZoneLayer) bool { return z.layers&l != 0 }

// HasRule reports whether r is set in z's rule flags.
func (z *Zone) HasRule(r ZoneRule) bool { return z.rules&r != 0 }

// SetLayers replaces z's layer flags, reporting whether they actually
// changed.
func (z *Zone) SetLayers(layers ZoneLayer) bool {
	if z.layers == layers {
		return false
	}
	z.layers = layers
	z.onEdited.Emit(ZoneEdit{LayersChanged: true})
	return true
}

// SetRules replaces z's rule flags, reporting whether they actually
// changed.
func (z *Zone) SetRules(rules ZoneRule) bool {
	if z.rules == rules {
		return false
	}
	z.rules = rules
	z.onEdited.Emit(ZoneEdit{RulesChanged: true})
	return true
}

// SetOutline replaces z's outline, reporting whether it actually changed.
func (z *Zone) SetOutline(outline geometry.Path) bool {
	if slices.Equal(z.outline.Vertices(), outline.Vertices()) {
		return false
	}
	z.outline = outline
	z.onEdited.Emit(ZoneEdit{OutlineChanged: true})
	return true
}
