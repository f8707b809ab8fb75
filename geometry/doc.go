// SPDX-License-Identifier: MIT

// Package geometry implements the exact-integer 2D primitives the kernel
// builds footprints, symbols, and board outlines from: Point, Vertex,
// Path (a mixed sequence of straight and arc segments), the arc math that
// backs them, text Alignment, and derived shape constructors (rectangles,
// obrounds, circles, octagons).
//
// Every coordinate is a units.Length (nanometers) and every rotation a
// units.Angle (microdegrees); there is no floating-point type anywhere in
// a Point or Path's public representation. Floating-point only appears as
// a scratch intermediate inside arc math, the same way the source this
// package is grounded on uses qreal internally while keeping its stored
// state integer.
package geometry
