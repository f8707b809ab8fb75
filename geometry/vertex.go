// SPDX-License-Identifier: MIT
package geometry

import "github.com/katalvlaran/edakernel/units"

// Vertex is one point of a Path plus the sweep angle of the segment that
// follows it. A zero angle means the segment to the next vertex is
// straight; any other angle means it is an arc of that sweep. The angle
// on the last vertex of a Path is never meaningful (there is no segment
// after it).
type Vertex struct {
	pos   Point
	angle units.Angle
}

// NewVertex builds a Vertex at pos with outgoing-segment angle angle.
func NewVertex(pos Point, angle units.Angle) Vertex {
	return Vertex{pos: pos, angle: angle}
}

// Pos returns the vertex position.
func (v Vertex) Pos() Point { return v.pos }

// Angle returns the outgoing-segment sweep angle.
func (v Vertex) Angle() units.Angle { return v.angle }

// WithPos returns a copy of v at a new position.
func (v Vertex) WithPos(pos Point) Vertex { return Vertex{pos: pos, angle: v.angle} }

// WithAngle returns a copy of v with a new outgoing-segment angle.
func (v Vertex) WithAngle(angle units.Angle) Vertex { return Vertex{pos: v.pos, angle: angle} }
