// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/edakernel/geometry"
	"github.com/katalvlaran/edakernel/units"
)

// SymbolPin is a schematic symbol's connection point: the pin line itself,
// plus the independent placement of its printed name.
type SymbolPin struct {
	uuid         Uuid
	name         string
	position     geometry.Point
	length       units.UnsignedLength
	rotation     units.Angle
	namePosition geometry.Point
	nameRotation units.Angle
	nameHeight   units.PositiveLength
	nameAlignment geometry.Alignment
}

// NewSymbolPin builds a SymbolPin with a fresh identity.
func NewSymbolPin(
	name string, position geometry.Point, length units.UnsignedLength, rotation units.Angle,
	namePosition geometry.Point, nameRotation units.Angle, nameHeight units.PositiveLength,
	nameAlignment geometry.Alignment,
) *SymbolPin {
	return &SymbolPin{
		uuid: NewUuid(), name: name, position: position, length: length, rotation: rotation,
		namePosition: namePosition, nameRotation: nameRotation, nameHeight: nameHeight, nameAlignment: nameAlignment,
	}
}

func (p *SymbolPin) Uuid() Uuid                         { return p.uuid }
func (p *SymbolPin) Name() string                       { return p.name }
func (p *SymbolPin) Position() geometry.Point           { return p.position }
func (p *SymbolPin) Length() units.UnsignedLength       { return p.length }
func (p *SymbolPin) Rotation() units.Angle              { return p.rotation }
func (p *SymbolPin) NamePosition() geometry.Point       { return p.namePosition }
func (p *SymbolPin) NameRotation() units.Angle          { return p.nameRotation }
func (p *SymbolPin) NameHeight() units.PositiveLength   { return p.nameHeight }
func (p *SymbolPin) NameAlignment() geometry.Alignment  { return p.nameAlignment }
