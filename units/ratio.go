// SPDX-License-Identifier: MIT
package units

// Ratio is an exact count of parts-per-million (ppm).
type Ratio int32

// RatioZero is 0%.
const RatioZero Ratio = 0

const ppmPerPercent = 10_000
const ppmPerUnit = 1_000_000

// RatioFromPpm wraps a raw ppm count.
func RatioFromPpm(ppm int32) Ratio { return Ratio(ppm) }

// Ppm returns the raw ppm count.
func (r Ratio) Ppm() int32 { return int32(r) }

// RatioFromPercent converts a percent value (0..100 nominal, not clamped)
// to the nearest ppm.
func RatioFromPercent(percent float64) Ratio {
	return Ratio(roundTiesAwayToInt64(percent * ppmPerPercent))
}

// Percent converts to a percent float value.
func (r Ratio) Percent() float64 { return float64(r) / ppmPerPercent }

// RatioFromNormalized converts a unitless 0..1 value to the nearest ppm.
func RatioFromNormalized(normalized float64) Ratio {
	return Ratio(roundTiesAwayToInt64(normalized * ppmPerUnit))
}

// Normalized converts to a unitless 0..1 float value.
func (r Ratio) Normalized() float64 { return float64(r) / ppmPerUnit }

// ParseRatio parses a normalized (unitless) decimal string exact to 6
// decimal places, e.g. "0.5" for 50%.
func ParseRatio(s string) (Ratio, error) {
	ppm, err := parseFixedPoint(s, 6)
	if err != nil {
		return 0, err
	}
	return Ratio(ppm), nil
}

// String renders the canonical normalized decimal form.
func (r Ratio) String() string {
	return formatFixedPoint(int64(r), 6)
}

// Add returns r+other.
func (r Ratio) Add(other Ratio) Ratio { return r + other }

// Sub returns r-other.
func (r Ratio) Sub(other Ratio) Ratio { return r - other }

// Cmp returns -1, 0 or 1 as r is less than, equal to, or greater than other.
func (r Ratio) Cmp(other Ratio) int {
	switch {
	case r < other:
		return -1
	case r > other:
		return 1
	default:
		return 0
	}
}
