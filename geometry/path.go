// SPDX-License-Identifier: MIT
package geometry

import (
	"math"

	"github.com/katalvlaran/edakernel/units"
)

// Path is an ordered sequence of vertices describing a polyline whose
// segments may be straight or circular arcs. Grounded on Path in
// LibrePCB's core/geometry/path.cpp; Go value semantics replace the
// source's copy-on-write QVector, so every mutating method here returns a
// new Path rather than modifying the receiver.
type Path struct {
	vertices []Vertex
}

// NewPath builds a Path from an explicit vertex sequence.
func NewPath(vertices ...Vertex) Path {
	cp := make([]Vertex, len(vertices))
	copy(cp, vertices)
	return Path{vertices: cp}
}

// Vertices returns a copy of the path's vertices.
func (p Path) Vertices() []Vertex {
	cp := make([]Vertex, len(p.vertices))
	copy(cp, p.vertices)
	return cp
}

// AddVertex returns a copy of p with vertex appended.
func (p Path) AddVertex(pos Point, angle units.Angle) Path {
	return Path{vertices: append(p.Vertices(), NewVertex(pos, angle))}
}

// IsClosed reports whether the first and last vertex share a position.
func (p Path) IsClosed() bool {
	if len(p.vertices) < 2 {
		return false
	}
	return p.vertices[0].pos == p.vertices[len(p.vertices)-1].pos
}

// IsCurved reports whether any segment but the last carries a nonzero
// angle. The angle stored on the final vertex is never meaningful.
func (p Path) IsCurved() bool {
	for i := 0; i < len(p.vertices)-1; i++ {
		if p.vertices[i].angle.MicroDeg() != 0 {
			return true
		}
	}
	return false
}

// TotalStraightLength sums the straight-line distance between consecutive
// vertices, ignoring arc curvature.
func (p Path) TotalStraightLength() units.UnsignedLength {
	total := units.Zero
	for i := 1; i < len(p.vertices); i++ {
		total = total.Add(Distance(p.vertices[i-1].pos, p.vertices[i].pos).Value())
	}
	v, _ := units.NewUnsignedLength(total)
	return v
}

// AreaOfStraightSegments returns the area enclosed by the path's straight
// segments via the shoelace formula, ignoring arcs. Grounded on
// Path::calcAreaOfStraightSegments.
func (p Path) AreaOfStraightSegments() float64 {
	n := len(p.vertices)
	if p.IsClosed() {
		n--
	}
	if n < 3 {
		return 0
	}
	area := 0.0
	j := n - 1
	for i := 0; i < n; i++ {
		pj := p.vertices[j].pos
		pi := p.vertices[i].pos
		area += (pj.x.ToMillimeters() + pi.x.ToMillimeters()) * (pj.y.ToMillimeters() - pi.y.ToMillimeters())
		j = i
	}
	return math.Abs(area / 2)
}

// NearestPointBetweenVertices returns the closest point to p lying on any
// straight segment of the path (arcs are not taken into account, matching
// the source this is grounded on). Returns the origin for an empty path.
func (p Path) NearestPointBetweenVertices(target Point) Point {
	if len(p.vertices) == 0 {
		return Origin
	}
	nearest := p.vertices[0].pos
	for i := 1; i < len(p.vertices); i++ {
		candidate := NearestPointOnLine(target, p.vertices[i-1].pos, p.vertices[i].pos)
		if Distance(candidate, target).Value().Cmp(Distance(nearest, target).Value()) < 0 {
			nearest = candidate
		}
	}
	return nearest
}

// Clean removes consecutive duplicate vertices and reports whether
// anything was removed.
func (p Path) Clean() (Path, bool) {
	if len(p.vertices) == 0 {
		return p, false
	}
	out := make([]Vertex, 0, len(p.vertices))
	out = append(out, p.vertices[0])
	modified := false
	for i := 1; i < len(p.vertices); i++ {
		if p.vertices[i].pos == out[len(out)-1].pos {
			modified = true
			continue
		}
		out = append(out, p.vertices[i])
	}
	return Path{vertices: out}, modified
}

// Cleaned returns a cleaned copy of p, discarding whether anything
// changed.
func (p Path) Cleaned() Path {
	cleaned, _ := p.Clean()
	return cleaned
}

// Close appends a closing vertex equal to the first vertex's position,
// unless the path is already closed or has fewer than two vertices.
// Reports whether a vertex was appended.
func (p Path) Close() (Path, bool) {
	if p.IsClosed() || len(p.vertices) <= 1 {
		return p, false
	}
	return p.AddVertex(p.vertices[0].pos, units.AngleZero), true
}

// ToClosedPath returns a closed copy of p.
func (p Path) ToClosedPath() Path {
	closed, _ := p.Close()
	return closed
}

// Open removes the closing vertex if the path is closed and has more than
// two vertices. Reports whether a vertex was removed.
func (p Path) Open() (Path, bool) {
	if len(p.vertices) > 2 && p.IsClosed() {
		return Path{vertices: p.vertices[:len(p.vertices)-1]}, true
	}
	return p, false
}

// ToOpenPath returns an open copy of p.
func (p Path) ToOpenPath() Path {
	opened, _ := p.Open()
	return opened
}

// Translate shifts every vertex by offset.
func (p Path) Translate(offset Point) Path {
	out := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.WithPos(v.pos.Add(offset))
	}
	return Path{vertices: out}
}

// MapToGrid snaps every vertex to the given grid interval.
func (p Path) MapToGrid(interval units.PositiveLength) Path {
	out := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.WithPos(v.pos.MappedToGrid(interval))
	}
	return Path{vertices: out}
}

// Rotate rotates every vertex around center by angle.
func (p Path) Rotate(angle units.Angle, center Point) Path {
	out := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.WithPos(v.pos.Rotated(angle, center))
	}
	return Path{vertices: out}
}

// Mirror reflects every vertex across axis through center, negating each
// segment's sweep angle to preserve winding.
func (p Path) Mirror(axis Axis, center Point) Path {
	out := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		out[i] = NewVertex(v.pos.Mirrored(axis, center), v.angle.Neg())
	}
	return Path{vertices: out}
}

// Reverse reverses vertex order. The sweep angle carried forward to each
// reversed vertex is the negated angle of the segment that used to
// precede it, so arcs keep their geometric shape under reversal.
func (p Path) Reverse() Path {
	n := len(p.vertices)
	out := make([]Vertex, n)
	for i := 0; i < n; i++ {
		src := p.vertices[n-1-i]
		var prevAngle units.Angle
		if n-1-i-1 >= 0 {
			prevAngle = p.vertices[n-1-i-1].angle
		}
		out[i] = NewVertex(src.pos, prevAngle.Neg())
	}
	return Path{vertices: out}
}

// FlattenArcs replaces every arc segment with a run of straight segments
// approximating it to within maxTolerance. Grounded on Path::flattenArcs.
func (p Path) FlattenArcs(maxTolerance units.PositiveLength) Path {
	if len(p.vertices) == 0 {
		return p
	}
	vertices := p.Vertices()
	vertices[len(vertices)-1] = vertices[len(vertices)-1].WithAngle(units.AngleZero)
	for i := len(vertices) - 2; i >= 0; i-- {
		if vertices[i].angle.MicroDeg() == 0 {
			continue
		}
		arc := flatArc(vertices[i].pos, vertices[i+1].pos, vertices[i].angle, maxTolerance)
		replacement := arc.Vertices()
		tail := append([]Vertex{}, vertices[i+2:]...)
		vertices = append(vertices[:i], replacement...)
		vertices = append(vertices, tail...)
	}
	return Path{vertices: vertices}
}

// ToOutlineStrokes returns one obround (or arc-obround) Path per segment,
// each representing the stroke outline of that segment at the given
// width. A single-vertex path returns a single circle. Grounded on
// Path::toOutlineStrokes.
func (p Path) ToOutlineStrokes(width units.PositiveLength) []Path {
	if len(p.vertices) == 1 {
		return []Path{Circle(width).Translate(p.vertices[0].pos)}
	}
	out := make([]Path, 0, len(p.vertices)-1)
	for i := 1; i < len(p.vertices); i++ {
		v0, v1 := p.vertices[i-1], p.vertices[i]
		if v0.angle.MicroDeg() == 0 {
			out = append(out, ObroundBetween(v0.pos, v1.pos, width))
		} else {
			out = append(out, ArcObround(v0.pos, v1.pos, v0.angle, width))
		}
	}
	return out
}

// Line returns a two-vertex path from p1 to p2; angle sets the sweep of
// the single segment (zero for a straight line).
func Line(p1, p2 Point, angle units.Angle) Path { return line(p1, p2, angle) }

func line(p1, p2 Point, angle units.Angle) Path {
	return Path{vertices: []Vertex{NewVertex(p1, angle), NewVertex(p2, units.AngleZero)}}
}

// Circle returns a path approximating a circle of the given diameter as
// two 180-degree arcs, centered on the origin.
func Circle(diameter units.PositiveLength) Path {
	return Obround(diameter, diameter)
}

// Obround returns a stadium shape (rectangle capped by semicircles) of the
// given width and height, centered on the origin. Grounded on
// Path::obround(width, height).
func Obround(width, height units.PositiveLength) Path {
	rx := width.Value().DivInt64(2)
	ry := height.Value().DivInt64(2)
	p := Path{}
	deg180 := mustAngleFromDeg(180)
	switch width.Value().Cmp(height.Value()) {
	case 1:
		p = p.AddVertex(NewPoint(ry.Sub(rx), ry), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Sub(ry), ry), deg180.Neg())
		p = p.AddVertex(NewPoint(rx.Sub(ry), ry.Neg()), units.AngleZero)
		p = p.AddVertex(NewPoint(ry.Sub(rx), ry.Neg()), deg180.Neg())
		p = p.AddVertex(NewPoint(ry.Sub(rx), ry), units.AngleZero)
	case -1:
		p = p.AddVertex(NewPoint(rx, ry.Sub(rx)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx, rx.Sub(ry)), deg180.Neg())
		p = p.AddVertex(NewPoint(rx.Neg(), rx.Sub(ry)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Neg(), ry.Sub(rx)), deg180.Neg())
		p = p.AddVertex(NewPoint(rx, ry.Sub(rx)), units.AngleZero)
	default:
		p = p.AddVertex(NewPoint(rx, 0), deg180.Neg())
		p = p.AddVertex(NewPoint(rx.Neg(), 0), deg180.Neg())
		p = p.AddVertex(NewPoint(rx, 0), units.AngleZero)
	}
	return p
}

// ObroundBetween returns the obround of the given width, stretched between
// p1 and p2. Grounded on Path::obround(p1, p2, width).
func ObroundBetween(p1, p2 Point, width units.PositiveLength) Path {
	diff := p2.Sub(p1)
	lengthened, _ := units.NewUnsignedLength(diff.Length().Value().Add(width.Value()))
	obroundWidth, _ := units.NewPositiveLength(lengthened.Value())
	p := Obround(obroundWidth, width)
	angle := units.FromRad(math.Atan2(diff.y.ToMillimeters(), diff.x.ToMillimeters()))
	p = p.Rotate(angle, Origin)
	return p.Translate(Midpoint(p1, p2))
}

// ArcObround returns the stroke outline of an arc segment from p1 to p2
// sweeping through angle, at the given width. Falls back to
// ObroundBetween for a degenerate (zero-angle or coincident-endpoint)
// segment. Grounded on Path::arcObround.
func ArcObround(p1, p2 Point, angle units.Angle, width units.PositiveLength) Path {
	if p1 == p2 {
		return Circle(width).Translate(p1)
	}
	center, ok := ArcCenter(p1, p2, angle)
	if !ok {
		return ObroundBetween(p1, p2, width)
	}
	d1 := p1.Sub(center)
	d2 := p2.Sub(center)
	angle1 := math.Atan2(d1.y.ToMillimeters(), d1.x.ToMillimeters())
	angle2 := math.Atan2(d2.y.ToMillimeters(), d2.x.ToMillimeters())
	radius := Distance(p1, center)
	innerRadius := radius.Value().Sub(width.Value().DivInt64(2))
	outerRadius := radius.Value().Add(width.Value().DivInt64(2))

	p1Inner := center.Add(NewPoint(innerRadius, 0).Rotated(units.FromRad(angle1), Origin))
	p1Outer := center.Add(NewPoint(outerRadius, 0).Rotated(units.FromRad(angle1), Origin))
	p2Inner := center.Add(NewPoint(innerRadius, 0).Rotated(units.FromRad(angle2), Origin))
	p2Outer := center.Add(NewPoint(outerRadius, 0).Rotated(units.FromRad(angle2), Origin))

	deg180 := mustAngleFromDeg(180)
	sideSweep := deg180.Neg()
	if angle.MicroDeg() < 0 {
		sideSweep = deg180
	}

	out := Path{}
	out = out.AddVertex(p1Inner, angle)
	out = out.AddVertex(p2Inner, sideSweep)
	out = out.AddVertex(p2Outer, angle.Neg())
	out = out.AddVertex(p1Outer, sideSweep)
	out = out.AddVertex(p1Inner, units.AngleZero)
	return out
}

// Rect returns an axis-aligned rectangle with opposite corners p1 and p2.
func Rect(p1, p2 Point) Path {
	p := Path{}
	p = p.AddVertex(NewPoint(p1.x, p1.y), units.AngleZero)
	p = p.AddVertex(NewPoint(p2.x, p1.y), units.AngleZero)
	p = p.AddVertex(NewPoint(p2.x, p2.y), units.AngleZero)
	p = p.AddVertex(NewPoint(p1.x, p2.y), units.AngleZero)
	p = p.AddVertex(NewPoint(p1.x, p1.y), units.AngleZero)
	return p
}

// CenteredRect returns a rectangle of the given width/height centered on
// the origin, with optionally rounded corners. A cornerRadius at least as
// large as half the smaller dimension degrades to Obround, matching the
// source's behavior for an over-large radius. Grounded on
// Path::centeredRect.
func CenteredRect(width, height units.PositiveLength, cornerRadius units.UnsignedLength) Path {
	rx := width.Value().DivInt64(2)
	ry := height.Value().DivInt64(2)
	p := Path{}
	cr := cornerRadius.Value()
	minHalf := rx
	if ry.Cmp(rx) < 0 {
		minHalf = ry
	}
	deg90 := mustAngleFromDeg(90)
	switch {
	case cr == 0:
		p = p.AddVertex(NewPoint(rx.Neg(), ry), units.AngleZero)
		p = p.AddVertex(NewPoint(rx, ry), units.AngleZero)
		p = p.AddVertex(NewPoint(rx, ry.Neg()), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Neg(), ry.Neg()), units.AngleZero)
	case cr.Cmp(minHalf) >= 0:
		return Obround(width, height)
	default:
		p = p.AddVertex(NewPoint(rx.Neg().Add(cr), ry), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Sub(cr), ry), deg90.Neg())
		p = p.AddVertex(NewPoint(rx, ry.Sub(cr)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx, ry.Neg().Add(cr)), deg90.Neg())
		p = p.AddVertex(NewPoint(rx.Sub(cr), ry.Neg()), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Neg().Add(cr), ry.Neg()), deg90.Neg())
		p = p.AddVertex(NewPoint(rx.Neg(), ry.Neg().Add(cr)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Neg(), ry.Sub(cr)), deg90.Neg())
	}
	closed, _ := p.Close()
	return closed
}

// Octagon returns an octagonal pad shape of the given width/height, with
// optionally chamfered-and-rounded corners. Grounded on Path::octagon.
func Octagon(width, height units.PositiveLength, cornerRadius units.UnsignedLength) Path {
	rx := width.Value().DivInt64(2)
	ry := height.Value().DivInt64(2)
	cr := cornerRadius.Value()
	minHalf := rx
	if ry.Cmp(rx) < 0 {
		minHalf = ry
	}
	minRxRyMinusCr := rx.Sub(cr)
	if ry.Sub(cr).Cmp(minRxRyMinusCr) < 0 {
		minRxRyMinusCr = ry.Sub(cr)
	}
	innerChamfer := units.FromMillimeters(minRxRyMinusCr.ToMillimeters() * (2 - math.Sqrt2)).Add(cr)

	p := Path{}
	deg45 := mustAngleFromDeg(45)
	switch {
	case cr == 0:
		p = p.AddVertex(NewPoint(rx, ry.Sub(innerChamfer)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Sub(innerChamfer), ry), units.AngleZero)
		p = p.AddVertex(NewPoint(innerChamfer.Sub(rx), ry), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Neg(), ry.Sub(innerChamfer)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Neg(), innerChamfer.Sub(ry)), units.AngleZero)
		p = p.AddVertex(NewPoint(innerChamfer.Sub(rx), ry.Neg()), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Sub(innerChamfer), ry.Neg()), units.AngleZero)
		p = p.AddVertex(NewPoint(rx, innerChamfer.Sub(ry)), units.AngleZero)
	case innerChamfer.Cmp(minHalf) >= 0:
		return Obround(width, height)
	default:
		chamferOffset := units.FromMillimeters(cr.ToMillimeters() * (1 - 1/math.Sqrt2))
		outerChamfer := innerChamfer.Sub(cr).Add(chamferOffset)
		p = p.AddVertex(NewPoint(rx, ry.Sub(innerChamfer)), deg45)
		p = p.AddVertex(NewPoint(rx.Sub(chamferOffset), ry.Sub(outerChamfer)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Sub(outerChamfer), ry.Sub(chamferOffset)), deg45)
		p = p.AddVertex(NewPoint(rx.Sub(innerChamfer), ry), units.AngleZero)
		p = p.AddVertex(NewPoint(innerChamfer.Sub(rx), ry), deg45)
		p = p.AddVertex(NewPoint(outerChamfer.Sub(rx), ry.Sub(chamferOffset)), units.AngleZero)
		p = p.AddVertex(NewPoint(chamferOffset.Sub(rx), ry.Sub(outerChamfer)), deg45)
		p = p.AddVertex(NewPoint(rx.Neg(), ry.Sub(innerChamfer)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Neg(), innerChamfer.Sub(ry)), deg45)
		p = p.AddVertex(NewPoint(chamferOffset.Sub(rx), outerChamfer.Sub(ry)), units.AngleZero)
		p = p.AddVertex(NewPoint(outerChamfer.Sub(rx), chamferOffset.Sub(ry)), deg45)
		p = p.AddVertex(NewPoint(innerChamfer.Sub(rx), ry.Neg()), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Sub(innerChamfer), ry.Neg()), deg45)
		p = p.AddVertex(NewPoint(rx.Sub(outerChamfer), chamferOffset.Sub(ry)), units.AngleZero)
		p = p.AddVertex(NewPoint(rx.Sub(chamferOffset), outerChamfer.Sub(ry)), deg45)
		p = p.AddVertex(NewPoint(rx, innerChamfer.Sub(ry)), units.AngleZero)
	}
	closed, _ := p.Close()
	return closed
}

func mustAngleFromDeg(deg float64) units.Angle {
	return units.FromDeg(deg)
}
