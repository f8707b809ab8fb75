// SPDX-License-Identifier: MIT
//
// refined.go implements the range-constrained refinements of Length and
// Ratio. Each refinement wraps a raw value behind a checked constructor:
// the checked constructor is the only way to obtain a refined value, so
// there is no way to silently clamp a value into range — construction
// fails with an *errkind.Error{Kind: InvalidValue} instead.
package units

import "github.com/katalvlaran/edakernel/internal/errkind"

// UnsignedLength is a Length constrained to be >= 0.
type UnsignedLength struct{ v Length }

// NewUnsignedLength validates l >= 0.
func NewUnsignedLength(l Length) (UnsignedLength, error) {
	if l < 0 {
		return UnsignedLength{}, errkind.New(errkind.InvalidValue, "length must be >= 0")
	}
	return UnsignedLength{l}, nil
}

// MustUnsignedLength panics if l < 0. Reserved for literal constants where
// the precondition is obviously satisfied by inspection.
func MustUnsignedLength(l Length) UnsignedLength {
	v, err := NewUnsignedLength(l)
	if err != nil {
		panic(err)
	}
	return v
}

// Value returns the underlying Length.
func (u UnsignedLength) Value() Length { return u.v }

// PositiveLength is a Length constrained to be > 0.
type PositiveLength struct{ v Length }

// NewPositiveLength validates l > 0.
func NewPositiveLength(l Length) (PositiveLength, error) {
	if l <= 0 {
		return PositiveLength{}, errkind.New(errkind.InvalidValue, "length must be > 0")
	}
	return PositiveLength{l}, nil
}

// MustPositiveLength panics if l <= 0.
func MustPositiveLength(l Length) PositiveLength {
	v, err := NewPositiveLength(l)
	if err != nil {
		panic(err)
	}
	return v
}

// Value returns the underlying Length.
func (p PositiveLength) Value() Length { return p.v }

// UnsignedRatio is a Ratio constrained to be >= 0.
type UnsignedRatio struct{ v Ratio }

// NewUnsignedRatio validates r >= 0.
func NewUnsignedRatio(r Ratio) (UnsignedRatio, error) {
	if r < 0 {
		return UnsignedRatio{}, errkind.New(errkind.InvalidValue, "ratio must be >= 0")
	}
	return UnsignedRatio{r}, nil
}

// Value returns the underlying Ratio.
func (u UnsignedRatio) Value() Ratio { return u.v }

// UnsignedLimitedRatio is a Ratio constrained to [0%, 100%].
type UnsignedLimitedRatio struct{ v Ratio }

const hundredPercentPpm = Ratio(100 * ppmPerPercent)

// NewUnsignedLimitedRatio validates 0 <= r <= 100%.
func NewUnsignedLimitedRatio(r Ratio) (UnsignedLimitedRatio, error) {
	if r < 0 || r > hundredPercentPpm {
		return UnsignedLimitedRatio{}, errkind.New(errkind.InvalidValue, "ratio must be in [0%, 100%]")
	}
	return UnsignedLimitedRatio{r}, nil
}

// Value returns the underlying Ratio.
func (u UnsignedLimitedRatio) Value() Ratio { return u.v }

// BoundedUnsignedRatio is a triple (ratio, min, max) with min <= max.
// calcValue(x) = clamp(min, ratio*x, max). Grounded on LibrePCB's
// core/types/boundedunsignedratio.cpp.
type BoundedUnsignedRatio struct {
	ratio UnsignedRatio
	min   UnsignedLength
	max   UnsignedLength
}

// NewBoundedUnsignedRatio validates min <= max.
func NewBoundedUnsignedRatio(ratio UnsignedRatio, min, max UnsignedLength) (BoundedUnsignedRatio, error) {
	if min.Value() > max.Value() {
		return BoundedUnsignedRatio{}, errkind.New(errkind.InvalidValue, "minimum value must not be greater than maximum value")
	}
	return BoundedUnsignedRatio{ratio: ratio, min: min, max: max}, nil
}

// Ratio returns the configured ratio.
func (b BoundedUnsignedRatio) Ratio() UnsignedRatio { return b.ratio }

// Min returns the configured minimum.
func (b BoundedUnsignedRatio) Min() UnsignedLength { return b.min }

// Max returns the configured maximum.
func (b BoundedUnsignedRatio) Max() UnsignedLength { return b.max }

// CalcValue returns clamp(min, ratio*input, max).
func (b BoundedUnsignedRatio) CalcValue(input Length) UnsignedLength {
	scaled := FromMillimeters(input.ToMillimeters() * b.ratio.Value().Normalized())
	switch {
	case scaled < b.min.Value():
		return b.min
	case scaled > b.max.Value():
		return b.max
	default:
		// scaled is guaranteed >= 0 here because ratio and input sign
		// follow UnsignedRatio/the caller's contract on pad geometry
		// inputs; NewUnsignedLength never fails in practice.
		v, _ := NewUnsignedLength(scaled)
		return v
	}
}
