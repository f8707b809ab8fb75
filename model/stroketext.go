// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

// StrokeText is a piece of vector-font artwork on a board layer: position,
// rotation, height, stroke width, spacing, alignment, and the mirrored /
// auto-rotate flags that together decide its final on-screen orientation.
type StrokeText struct {
	uuid          Uuid
	layer         Layer
	text          string
	position      geometry.Point
	rotation      units.Angle
	height        units.PositiveLength
	strokeWidth   units.UnsignedLength
	letterSpacing StrokeTextSpacing
	lineSpacing   StrokeTextSpacing
	alignment     geometry.Alignment
	mirrored      bool
	autoRotate    bool
}

// NewStrokeText builds a StrokeText with a fresh identity.
func NewStrokeText(
	layer Layer, text string, position geometry.Point, rotation units.Angle,
	height units.PositiveLength, strokeWidth units.UnsignedLength,
	letterSpacing, lineSpacing StrokeTextSpacing, alignment geometry.Alignment,
	mirrored, autoRotate bool,
) *StrokeText {
	return &StrokeText{
		uuid: NewUuid(), layer: layer, text: text, position: position, rotation: rotation,
		height: height, strokeWidth: strokeWidth, letterSpacing: letterSpacing,
		lineSpacing: lineSpacing, alignment: alignment, mirrored: mirrored, autoRotate: autoRotate,
	}
}

func (s *StrokeText) Uuid() Uuid                           { return s.uuid }
func (s *StrokeText) Layer() Layer                         { return s.layer }
func (s *StrokeText) Text() string                         { return s.text }
func (s *StrokeText) Position() geometry.Point             { return s.position }
func (s *StrokeText) Rotation() units.Angle                { return s.rotation }
func (s *StrokeText) Height() units.PositiveLength         { return s.height }
func (s *StrokeText) StrokeWidth() units.UnsignedLength    { return s.strokeWidth }
func (s *StrokeText) LetterSpacing() StrokeTextSpacing     { return s.letterSpacing }
func (s *StrokeText) LineSpacing() StrokeTextSpacing       { return s.lineSpacing }
func (s *StrokeText) Alignment() geometry.Alignment        { return s.alignment }
func (s *StrokeText) Mirrored() bool                       { return s.mirrored }
func (s *StrokeText) AutoRotate() bool                     { return s.autoRotate }

// IsUpsideDown reports whether rotation, as mapped into [-180°, 180°), lies
// upside-down for legible text: [-180°, -90°) ∪ [90°, 180°) normally, or
// [-180°, -90°) ∪ (90°, 180°) when mirrored (the 90° boundary itself flips
// to "not upside down" once mirrored, since mirroring already reverses
// reading direction at exactly that angle).
func IsUpsideDown(rotation units.Angle, mirrored bool) bool {
	mapped := rotation.MapTo180()
	lower := mapped < units.FromDeg(-90)
	if mirrored {
		return lower || mapped > units.FromDeg(90)
	}
	return lower || mapped >= units.FromDeg(90)
}

// ResolvedRotationAndAlignment returns the rotation and alignment this text
// should actually be rendered with: unchanged, unless AutoRotate is set and
// Rotation is upside-down, in which case the rotation is turned 180° and
// the alignment mirrored to keep the text readable.
func (s *StrokeText) ResolvedRotationAndAlignment() (units.Angle, geometry.Alignment) {
	if !s.autoRotate || !IsUpsideDown(s.rotation, s.mirrored) {
		return s.rotation, s.alignment
	}
	return s.rotation.Add(units.FromDeg(180)), s.alignment.Mirror()
}
