// SPDX-License-Identifier: MIT
package units

import "github.com/katalvlaran/edakernel/internal/errkind"

// LengthUnit names a presentation unit for formatting a Length. It carries
// no semantics of its own — Length is always stored in nanometers — this
// exists purely so editors can show the same value in the user's preferred
// unit. Grounded on LibrePCB's core/types/lengthunit.cpp.
type LengthUnit int

const (
	Millimeters LengthUnit = iota
	Micrometers
	Nanometers
	Inches
	Mils
)

// String returns the lowercase token used by the serialized file format.
func (u LengthUnit) String() string {
	switch u {
	case Millimeters:
		return "millimeters"
	case Micrometers:
		return "micrometers"
	case Nanometers:
		return "nanometers"
	case Inches:
		return "inches"
	case Mils:
		return "mils"
	default:
		return "millimeters"
	}
}

// ShortSymbol returns the compact unit suffix shown next to formatted
// numbers ("mm", "µm", "nm", "in", "mil").
func (u LengthUnit) ShortSymbol() string {
	switch u {
	case Millimeters:
		return "mm"
	case Micrometers:
		return "µm"
	case Nanometers:
		return "nm"
	case Inches:
		return "in"
	case Mils:
		return "mil"
	default:
		return "mm"
	}
}

// ParseLengthUnit maps the lowercase serialized token back to a LengthUnit.
func ParseLengthUnit(token string) (LengthUnit, error) {
	switch token {
	case "millimeters":
		return Millimeters, nil
	case "micrometers":
		return Micrometers, nil
	case "nanometers":
		return Nanometers, nil
	case "inches":
		return Inches, nil
	case "mils":
		return Mils, nil
	default:
		return 0, errkind.New(errkind.UnknownToken, "unknown length unit: "+token)
	}
}

// ConvertTo converts l to a float64 value expressed in this unit.
func (u LengthUnit) ConvertTo(l Length) float64 {
	switch u {
	case Micrometers:
		return l.ToMillimeters() * 1000
	case Nanometers:
		return float64(l.Nanometers())
	case Inches:
		return l.ToInches()
	case Mils:
		return l.ToMils()
	default:
		return l.ToMillimeters()
	}
}

// ReasonableDecimals returns the number of fractional digits typically shown
// for this unit in an editor field.
func (u LengthUnit) ReasonableDecimals() int {
	switch u {
	case Millimeters:
		return 3
	case Micrometers:
		return 1
	case Nanometers:
		return 0
	case Inches:
		return 5
	case Mils:
		return 2
	default:
		return 3
	}
}
