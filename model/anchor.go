// SPDX-License-Identifier: MIT
package model

// NetLineAnchorKind discriminates the variants of NetLineAnchor. Values are
// ordered Pin before Junction, matching the "pin/pad ranks before junction"
// convention the simplifier uses for its own anchor bucket sort (§ on the
// netsimplify pipeline) — kept consistent here even though canonicalizing a
// NetLine's endpoints has no other ordering requirement to satisfy.
type NetLineAnchorKind int

const (
	NetLineAnchorPin NetLineAnchorKind = iota
	NetLineAnchorJunction
)

// NetLineAnchor is the tagged union of what a schematic wire segment can
// connect to: a Junction, or a symbol pin identified by the owning symbol
// instance and the pin within it.
type NetLineAnchor struct {
	kind       NetLineAnchorKind
	junction   Uuid
	symbolUuid Uuid
	pinUuid    Uuid
}

// NetLineAnchorJunctionOf builds a Junction-variant anchor.
func NetLineAnchorJunctionOf(junction Uuid) NetLineAnchor {
	return NetLineAnchor{kind: NetLineAnchorJunction, junction: junction}
}

// NetLineAnchorPinOf builds a Pin-variant anchor.
func NetLineAnchorPinOf(symbolUuid, pinUuid Uuid) NetLineAnchor {
	return NetLineAnchor{kind: NetLineAnchorPin, symbolUuid: symbolUuid, pinUuid: pinUuid}
}

// Kind reports which variant a is.
func (a NetLineAnchor) Kind() NetLineAnchorKind { return a.kind }

// Junction returns the junction uuid and true iff a is the Junction variant.
func (a NetLineAnchor) Junction() (Uuid, bool) {
	return a.junction, a.kind == NetLineAnchorJunction
}

// Pin returns the (symbol, pin) uuid pair and true iff a is the Pin variant.
func (a NetLineAnchor) Pin() (symbolUuid, pinUuid Uuid, ok bool) {
	return a.symbolUuid, a.pinUuid, a.kind == NetLineAnchorPin
}

// Cmp gives NetLineAnchor a total order: by kind first, then by identity
// within the kind. Used solely to canonicalize a NetLine's two endpoints.
func (a NetLineAnchor) Cmp(b NetLineAnchor) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case NetLineAnchorJunction:
		return a.junction.Cmp(b.junction)
	default: // NetLineAnchorPin
		if c := a.symbolUuid.Cmp(b.symbolUuid); c != 0 {
			return c
		}
		return a.pinUuid.Cmp(b.pinUuid)
	}
}

// TraceAnchorKind discriminates the variants of TraceAnchor. The ordering
// Via < Pad < FootprintPad < Junction mirrors the "Via/Pad wins over
// Junction" rule the simplifier's duplicate-junction-removal step relies on
// when picking which anchor in a position bucket survives.
type TraceAnchorKind int

const (
	TraceAnchorVia TraceAnchorKind = iota
	TraceAnchorPad
	TraceAnchorFootprintPad
	TraceAnchorJunction
)

// TraceAnchor is the tagged union of what a board trace segment can connect
// to: a Junction, a Via, a board-level Pad, or a footprint pad identified by
// the owning device instance and the pad within it.
type TraceAnchor struct {
	kind        TraceAnchorKind
	junction    Uuid
	via         Uuid
	pad         Uuid
	deviceUuid  Uuid
	footPadUuid Uuid
}

func TraceAnchorJunctionOf(junction Uuid) TraceAnchor {
	return TraceAnchor{kind: TraceAnchorJunction, junction: junction}
}

func TraceAnchorViaOf(via Uuid) TraceAnchor {
	return TraceAnchor{kind: TraceAnchorVia, via: via}
}

func TraceAnchorPadOf(pad Uuid) TraceAnchor {
	return TraceAnchor{kind: TraceAnchorPad, pad: pad}
}

func TraceAnchorFootprintPadOf(deviceUuid, padUuid Uuid) TraceAnchor {
	return TraceAnchor{kind: TraceAnchorFootprintPad, deviceUuid: deviceUuid, footPadUuid: padUuid}
}

func (a TraceAnchor) Kind() TraceAnchorKind { return a.kind }

func (a TraceAnchor) Junction() (Uuid, bool) { return a.junction, a.kind == TraceAnchorJunction }

func (a TraceAnchor) Via() (Uuid, bool) { return a.via, a.kind == TraceAnchorVia }

func (a TraceAnchor) Pad() (Uuid, bool) { return a.pad, a.kind == TraceAnchorPad }

func (a TraceAnchor) FootprintPad() (deviceUuid, padUuid Uuid, ok bool) {
	return a.deviceUuid, a.footPadUuid, a.kind == TraceAnchorFootprintPad
}

// Cmp gives TraceAnchor a total order: by kind first, then by identity
// within the kind. Used to canonicalize a Trace's two endpoints.
func (a TraceAnchor) Cmp(b TraceAnchor) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case TraceAnchorJunction:
		return a.junction.Cmp(b.junction)
	case TraceAnchorVia:
		return a.via.Cmp(b.via)
	case TraceAnchorPad:
		return a.pad.Cmp(b.pad)
	default: // TraceAnchorFootprintPad
		if c := a.deviceUuid.Cmp(b.deviceUuid); c != 0 {
			return c
		}
		return a.footPadUuid.Cmp(b.footPadUuid)
	}
}
