// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/sexpr"
)

// encodeNetLineAnchor renders a as one of:
//
//	(junction <uuid>)
//	(pin <symbol-uuid> <pin-uuid>)
func encodeNetLineAnchor(a NetLineAnchor) *sexpr.Node {
	if junction, ok := a.Junction(); ok {
		return sexpr.NewList("junction", encodeUuid(junction))
	}
	symbolUuid, pinUuid, _ := a.Pin()
	return sexpr.NewList("pin", encodeUuid(symbolUuid), encodeUuid(pinUuid))
}

func decodeNetLineAnchor(n *sexpr.Node) (NetLineAnchor, error) {
	head, ok := n.Head()
	if !ok {
		return NetLineAnchor{}, errkind.New(errkind.InvalidSExpression, "expected a net line anchor list")
	}
	switch head {
	case "junction":
		u, err := decodeUuidAt(n, 0)
		if err != nil {
			return NetLineAnchor{}, err
		}
		return NetLineAnchorJunctionOf(u), nil
	case "pin":
		symbolUuid, err := decodeUuidAt(n, 0)
		if err != nil {
			return NetLineAnchor{}, err
		}
		pinUuid, err := decodeUuidAt(n, 1)
		if err != nil {
			return NetLineAnchor{}, err
		}
		return NetLineAnchorPinOf(symbolUuid, pinUuid), nil
	default:
		return NetLineAnchor{}, errkind.New(errkind.UnknownToken, "unknown net line anchor: "+head)
	}
}

// encodeTraceAnchor renders a as one of:
//
//	(junction <uuid>)
//	(via <uuid>)
//	(pad <uuid>)
//	(footprint_pad <device-uuid> <pad-uuid>)
func encodeTraceAnchor(a TraceAnchor) *sexpr.Node {
	if junction, ok := a.Junction(); ok {
		return sexpr.NewList("junction", encodeUuid(junction))
	}
	if via, ok := a.Via(); ok {
		return sexpr.NewList("via", encodeUuid(via))
	}
	if pad, ok := a.Pad(); ok {
		return sexpr.NewList("pad", encodeUuid(pad))
	}
	deviceUuid, padUuid, _ := a.FootprintPad()
	return sexpr.NewList("footprint_pad", encodeUuid(deviceUuid), encodeUuid(padUuid))
}

func decodeTraceAnchor(n *sexpr.Node) (TraceAnchor, error) {
	head, ok := n.Head()
	if !ok {
		return TraceAnchor{}, errkind.New(errkind.InvalidSExpression, "expected a trace anchor list")
	}
	switch head {
	case "junction":
		u, err := decodeUuidAt(n, 0)
		if err != nil {
			return TraceAnchor{}, err
		}
		return TraceAnchorJunctionOf(u), nil
	case "via":
		u, err := decodeUuidAt(n, 0)
		if err != nil {
			return TraceAnchor{}, err
		}
		return TraceAnchorViaOf(u), nil
	case "pad":
		u, err := decodeUuidAt(n, 0)
		if err != nil {
			return TraceAnchor{}, err
		}
		return TraceAnchorPadOf(u), nil
	case "footprint_pad":
		deviceUuid, err := decodeUuidAt(n, 0)
		if err != nil {
			return TraceAnchor{}, err
		}
		padUuid, err := decodeUuidAt(n, 1)
		if err != nil {
			return TraceAnchor{}, err
		}
		return TraceAnchorFootprintPadOf(deviceUuid, padUuid), nil
	default:
		return TraceAnchor{}, errkind.New(errkind.UnknownToken, "unknown trace anchor: "+head)
	}
}
