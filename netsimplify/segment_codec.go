// SPDX-License-Identifier: MIT
package netsimplify

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/internal/errkind"
	"github.com/katalvlaran/edakernel/model"
	"github.com/katalvlaran/edakernel/sexpr"
	"github.com/katalvlaran/edakernel/units"
)

// EncodeSegment renders seg as a (netsegment (anchor ...)* (line ...)*)
// S-expression, one entry per line.
func EncodeSegment(seg *Segment) *sexpr.Node {
	root := sexpr.NewList("netsegment")
	for _, a := range seg.Anchors {
		root.AppendChild(sexpr.EnsureLineBreak(encodeAnchor(a)))
	}
	for _, ln := range seg.Lines {
		root.AppendChild(sexpr.EnsureLineBreak(encodeLine(ln)))
	}
	return root
}

func encodeAnchor(a Anchor) *sexpr.Node {
	return sexpr.NewList("anchor",
		sexpr.NewToken(a.ID.String()),
		sexpr.NewToken(a.Kind.String()),
		sexpr.NewToken(a.Position.X().String()),
		sexpr.NewToken(a.Position.Y().String()),
		sexpr.NewToken(a.Layers.Start.String()),
		sexpr.NewToken(a.Layers.End.String()),
	)
}

func encodeLine(ln Line) *sexpr.Node {
	return sexpr.NewList("line",
		sexpr.NewToken(ln.ID.String()),
		sexpr.NewToken(ln.A.String()),
		sexpr.NewToken(ln.B.String()),
		sexpr.NewToken(ln.Layer.String()),
		sexpr.NewToken(ln.Width.Value().String()),
	)
}

// DecodeSegment parses the inverse of EncodeSegment.
func DecodeSegment(root *sexpr.Node) (*Segment, error) {
	if head, ok := root.Head(); !ok || head != "netsegment" {
		return nil, errkind.New(errkind.InvalidSExpression, "expected a netsegment list")
	}

	seg := &Segment{}
	for _, child := range root.Children() {
		head, ok := child.Head()
		if !ok {
			return nil, errkind.New(errkind.InvalidSExpression, "expected a list child")
		}
		switch head {
		case "anchor":
			a, err := decodeAnchor(child)
			if err != nil {
				return nil, err
			}
			seg.Anchors = append(seg.Anchors, a)
		case "line":
			ln, err := decodeLine(child)
			if err != nil {
				return nil, err
			}
			seg.Lines = append(seg.Lines, ln)
		default:
			return nil, errkind.New(errkind.InvalidSExpression, "unknown netsegment child: "+head)
		}
	}
	return seg, nil
}

func decodeAnchor(n *sexpr.Node) (Anchor, error) {
	id, err := tokenAt(n, 0)
	if err != nil {
		return Anchor{}, err
	}
	kindTok, err := tokenAt(n, 1)
	if err != nil {
		return Anchor{}, err
	}
	xTok, err := tokenAt(n, 2)
	if err != nil {
		return Anchor{}, err
	}
	yTok, err := tokenAt(n, 3)
	if err != nil {
		return Anchor{}, err
	}
	startTok, err := tokenAt(n, 4)
	if err != nil {
		return Anchor{}, err
	}
	endTok, err := tokenAt(n, 5)
	if err != nil {
		return Anchor{}, err
	}

	uuid, err := model.ParseUuid(id)
	if err != nil {
		return Anchor{}, err
	}
	kind, err := ParseAnchorKind(kindTok)
	if err != nil {
		return Anchor{}, err
	}
	x, err := units.ParseLength(xTok)
	if err != nil {
		return Anchor{}, err
	}
	y, err := units.ParseLength(yTok)
	if err != nil {
		return Anchor{}, err
	}
	start, err := model.ParseLayer(startTok)
	if err != nil {
		return Anchor{}, err
	}
	end, err := model.ParseLayer(endTok)
	if err != nil {
		return Anchor{}, err
	}

	return Anchor{
		ID:       uuid,
		Kind:     kind,
		Position: geometry.NewPoint(x, y),
		Layers:   model.NewLayerInterval(start, end),
	}, nil
}

func decodeLine(n *sexpr.Node) (Line, error) {
	id, err := tokenAt(n, 0)
	if err != nil {
		return Line{}, err
	}
	aTok, err := tokenAt(n, 1)
	if err != nil {
		return Line{}, err
	}
	bTok, err := tokenAt(n, 2)
	if err != nil {
		return Line{}, err
	}
	layerTok, err := tokenAt(n, 3)
	if err != nil {
		return Line{}, err
	}
	widthTok, err := tokenAt(n, 4)
	if err != nil {
		return Line{}, err
	}

	idUuid, err := model.ParseUuid(id)
	if err != nil {
		return Line{}, err
	}
	aUuid, err := model.ParseUuid(aTok)
	if err != nil {
		return Line{}, err
	}
	bUuid, err := model.ParseUuid(bTok)
	if err != nil {
		return Line{}, err
	}
	layer, err := model.ParseLayer(layerTok)
	if err != nil {
		return Line{}, err
	}
	widthLen, err := units.ParseLength(widthTok)
	if err != nil {
		return Line{}, err
	}
	width, err := units.NewPositiveLength(widthLen)
	if err != nil {
		return Line{}, err
	}

	return Line{ID: idUuid, A: aUuid, B: bUuid, Layer: layer, Width: width}, nil
}

func tokenAt(n *sexpr.Node, i int) (string, error) {
	child, err := n.At(i)
	if err != nil {
		return "", err
	}
	tok, ok := child.TokenValue()
	if !ok {
		return "", errkind.New(errkind.InvalidSExpression, "expected a token child")
	}
	return tok, nil
}
