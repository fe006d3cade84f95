// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphID is a glyph index within a font.
type GlyphID uint16

// Style is the slant of a font face.
type Style int

const (
	// StyleNormal is an upright face.
	StyleNormal Style = iota
	// StyleItalic is a cursive slanted face.
	StyleItalic
	// StyleOblique is a mechanically slanted face. Families without an
	// oblique face resolve it to their italic face.
	StyleOblique
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	case StyleOblique:
		return "Oblique"
	default:
		return unknownStr
	}
}

// slanted reports whether the style asks for a slanted face.
func (s Style) slanted() bool {
	return s == StyleItalic || s == StyleOblique
}

// ParseStyle converts a style name ("normal", "italic", "oblique") to a
// Style. Unknown names map to StyleNormal and ok is false.
func ParseStyle(name string) (style Style, ok bool) {
	switch name {
	case "normal", "Normal", "":
		return StyleNormal, true
	case "italic", "Italic":
		return StyleItalic, true
	case "oblique", "Oblique":
		return StyleOblique, true
	default:
		return StyleNormal, false
	}
}

// Weight is a font weight on the usual 100..950 scale.
type Weight int

// Common weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
	WeightExtraBlack Weight = 950
)
