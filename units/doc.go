// Package units implements the kernel's exact numeric value types.
//
// Three families live here:
//
//	Length  — signed count of nanometers, the fundamental distance unit.
//	Angle   — signed count of microdegrees, normalized to (-360, +360).
//	Ratio   — signed count of parts-per-million.
//
// Every operator returns a new value; nothing here mutates its receiver
// in place. Conversion to floating-point is exact on the nanometer /
// microdegree / ppm grid; conversion from floating-point rounds to nearest,
// ties away from zero.
//
// Refined variants (UnsignedLength, PositiveLength, UnsignedRatio,
// UnsignedLimitedRatio, BoundedUnsignedRatio) wrap these raw types behind
// checked constructors in refined.go: the only way to obtain one is through
// a constructor that validates the predicate and returns an error, following
// the same errkind.Kind taxonomy used across the rest of the kernel.
//
//	go get github.com/katalvlaran/edakernel/units
package units
