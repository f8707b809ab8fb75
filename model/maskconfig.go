// SPDX-License-Identifier: MIT
package model

import "github.com/katalvlaran/edakernel/units"

// MaskConfig controls whether a stop-mask or solder-paste opening is
// generated automatically for a pad, and by how much it is enlarged or
// shrunk relative to the copper outline. A disabled config means no
// automatic opening is generated at all (the editor leaves that layer for
// manual artwork); Offset is only meaningful when Enabled is true, and a
// nil Offset means "use the default enlargement for this layer".
type MaskConfig struct {
	Enabled bool
	Offset  *units.Length
}

// MaskConfigOff returns a disabled config.
func MaskConfigOff() MaskConfig { return MaskConfig{} }

// MaskConfigAuto returns an enabled config using the default offset.
func MaskConfigAuto() MaskConfig { return MaskConfig{Enabled: true} }

// MaskConfigWithOffset returns an enabled config with an explicit offset.
func MaskConfigWithOffset(offset units.Length) MaskConfig {
	return MaskConfig{Enabled: true, Offset: &offset}
}
