// SPDX-License-Identifier: MIT
package units

import (
	"math"

	"github.com/katalvlaran/edakernel/internal/errkind"
)

const microDegPerDeg = 1_000_000
const fullTurnMicroDeg = 360 * microDegPerDeg

// Angle is an exact count of microdegrees, normalized to the open range
// (-360°, +360°) on every mutation by taking the remainder against
// 360_000_000. Construction always normalizes; there is no unnormalized
// state to observe.
type Angle int32

// AngleZero is 0°.
const AngleZero Angle = 0

// AngleFromMicroDeg normalizes a raw microdegree count into (-360, +360).
func AngleFromMicroDeg(microDeg int32) Angle {
	m := int64(microDeg) % fullTurnMicroDeg
	return Angle(m)
}

// MicroDeg returns the normalized microdegree count.
func (a Angle) MicroDeg() int32 { return int32(a) }

// ParseAngle parses a decimal degree string exact to 6 decimal places.
func ParseAngle(s string) (Angle, error) {
	microDeg, err := parseFixedPoint(s, 6)
	if err != nil {
		return 0, err
	}
	if microDeg > math.MaxInt32 || microDeg < math.MinInt32 {
		return 0, errkind.New(errkind.OutOfRange, "angle out of int32 range: "+s)
	}
	return AngleFromMicroDeg(int32(microDeg)), nil
}

// String renders the canonical decimal degree form.
func (a Angle) String() string {
	return formatFixedPoint(int64(a), 6)
}

// Add returns the normalized sum a+other.
func (a Angle) Add(other Angle) Angle {
	return AngleFromMicroDeg(int32(int64(a) + int64(other)))
}

// Sub returns the normalized difference a-other.
func (a Angle) Sub(other Angle) Angle {
	return AngleFromMicroDeg(int32(int64(a) - int64(other)))
}

// Abs returns the absolute value, still within (-360, +360).
func (a Angle) Abs() Angle {
	if a < 0 {
		return -a
	}
	return a
}

// Neg returns -a. Unlike Invert, this is a plain sign flip: it does not
// take the 360°-complement, so it changes the magnitude of rotation
// represented, not just which side of zero it sits on.
func (a Angle) Neg() Angle { return -a }

// Invert flips the sign while preserving the represented rotation: a
// positive angle becomes its 360°-complement on the opposite side, a
// negative angle likewise, and 0° stays 0°. Grounded on Angle::invert in
// LibrePCB's core/types/angle.cpp.
func (a Angle) Invert() Angle {
	switch {
	case a > 0:
		return a - fullTurnMicroDeg
	case a < 0:
		return a + fullTurnMicroDeg
	default:
		return 0
	}
}

// RoundTo rounds a to the nearest multiple of interval, adding half the
// interval toward the sign of a before truncating — the same "round half
// away from zero, then snap" construction as Angle::round in the original
// source. interval must be > 0.
func (a Angle) RoundTo(interval Angle) Angle {
	if interval <= 0 {
		return a
	}
	value := int64(a)
	step := int64(interval)
	if value >= 0 {
		value += step / 2
	} else {
		value -= step / 2
	}
	return AngleFromMicroDeg(int32(step * (value / step)))
}

// MapTo0360 maps a into [0°, 360°).
func (a Angle) MapTo0360() Angle {
	if a < 0 {
		return a + fullTurnMicroDeg
	}
	return a
}

// MapTo180 maps a into the half-open interval [-180°, +180°).
func (a Angle) MapTo180() Angle {
	const half = fullTurnMicroDeg / 2
	switch {
	case a < -half:
		return a + fullTurnMicroDeg
	case a >= half:
		return a - fullTurnMicroDeg
	default:
		return a
	}
}

// ToRad converts to radians.
func (a Angle) ToRad() float64 {
	return float64(a) * math.Pi / (180 * microDegPerDeg)
}

// FromRad converts a radian value to the nearest microdegree, then
// normalizes.
func FromRad(rad float64) Angle {
	microDeg := rad * (180 * microDegPerDeg) / math.Pi
	return AngleFromMicroDeg(int32(roundTiesAwayToInt64(microDeg)))
}

// FromDeg converts a float degree value to the nearest microdegree, then
// normalizes.
func FromDeg(deg float64) Angle {
	return AngleFromMicroDeg(int32(roundTiesAwayToInt64(deg * microDegPerDeg)))
}
