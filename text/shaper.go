// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shaper shapes runs of one text at one size with HarfBuzz.
// It is created per layout: gotext.Face and HarfbuzzShaper both carry
// mutable state and are not safe for concurrent use.
type shaper struct {
	face *gotext.Face
	hb   shaping.HarfbuzzShaper
	size fixed.Int26_6
}

func newShaper(f *Font, size float64) *shaper {
	return &shaper{
		face: gotext.NewFace(f.shaped),
		size: floatToFixed(size),
	}
}

// shape shapes runes[start:end] with the whole slice as context and returns
// glyphs positioned from x=0 plus the total advance. Cluster values index
// into runes.
func (s *shaper) shape(runes []rune, start, end int) ([]Glyph, float64) {
	if start >= end {
		return nil, 0
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.size,
		Script:    detectScript(runes[start:end]),
		Language:  language.NewLanguage("en"),
	}
	output := s.hb.Shape(input)

	glyphs := make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph indices fit uint16 in TrueType/OpenType
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
			Cluster: g.TextIndex(),
		}
		x += adv
	}
	return glyphs, x
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// users should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
