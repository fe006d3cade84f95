// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

// BlendMode selects how a layer combines with what is below it.
// It is stored and reported only; compositing always uses normal
// source-over.
type BlendMode uint8

// Blend modes.
const (
	BlendIgnore BlendMode = iota
	BlendReplace
	BlendNormal
	BlendAdd
	BlendMultiply
	BlendLighterColor
	BlendDarkerColor
	BlendKeepColor
	BlendKeepLightness
	BlendKeepSaturation
	BlendReplaceColor
	BlendReplaceLightness
	BlendReplaceSaturation
)

var blendModeNames = [...]string{
	BlendIgnore:            "Ignore",
	BlendReplace:           "Replace",
	BlendNormal:            "Normal",
	BlendAdd:               "Add",
	BlendMultiply:          "Multiply",
	BlendLighterColor:      "LighterColor",
	BlendDarkerColor:       "DarkerColor",
	BlendKeepColor:         "KeepColor",
	BlendKeepLightness:     "KeepLightness",
	BlendKeepSaturation:    "KeepSaturation",
	BlendReplaceColor:      "ReplaceColor",
	BlendReplaceLightness:  "ReplaceLightness",
	BlendReplaceSaturation: "ReplaceSaturation",
}

// String returns the mode name.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

// Valid reports whether m is a known blend mode.
func (m BlendMode) Valid() bool {
	return int(m) < len(blendModeNames)
}
