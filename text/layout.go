// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Glyph is a shaped glyph positioned within its line.
type Glyph struct {
	// ID is the glyph index in the layout's font.
	ID GlyphID

	// X is the pen position from the start of the line, including any
	// shaping offset.
	X float64

	// Y is the offset from the baseline; positive values move down.
	Y float64

	// Advance is the horizontal advance of the glyph.
	Advance float64

	// Cluster is the index of the first rune of the glyph's cluster in
	// the normalized layout text.
	Cluster int
}

// Line is one laid-out line of text.
type Line struct {
	// Glyphs are the glyphs of the line in visual order.
	Glyphs []Glyph

	// Text is the line's text without the terminating line break.
	Text string

	// Width is the advance width of the line, excluding trailing spaces.
	Width float64

	// Y is the baseline position of the line from the top of the layout.
	Y float64
}

// Layout is shaped and wrapped text, ready to be painted.
// A Layout is immutable; rebuild it when any input changes.
type Layout struct {
	// Lines holds the lines that fit the layout box, top to bottom.
	Lines []Line

	// Width is the widest line.
	Width float64

	// Height is the total height of the kept lines.
	Height float64

	// MaxWidth and MaxHeight are the box the text was laid out in.
	// Zero means unbounded.
	MaxWidth, MaxHeight float64

	// Font is the face the glyph IDs refer to.
	Font *Font

	// Size is the font size in pixels per em.
	Size float64

	// Metrics are the font metrics at Size.
	Metrics Metrics

	// Text is the NFC-normalized input text.
	Text string
}

// GlyphCount returns the number of glyphs over all lines.
func (l *Layout) GlyphCount() int {
	n := 0
	for i := range l.Lines {
		n += len(l.Lines[i].Glyphs)
	}
	return n
}

// LayoutText shapes s with f at size and wraps it to maxWidth.
//
// Lines break at UAX #14 opportunities; mandatory breaks (newlines) always
// start a new line. A segment wider than maxWidth is kept whole on its own
// line. Lines whose top edge falls at or below maxHeight are dropped, but
// the first line is always kept. A zero maxWidth or maxHeight is unbounded.
func LayoutText(s string, f *Font, size, maxWidth, maxHeight float64) (*Layout, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	metrics, err := f.Metrics(size)
	if err != nil {
		return nil, err
	}

	s = norm.NFC.String(s)
	layout := &Layout{
		MaxWidth:  maxWidth,
		MaxHeight: maxHeight,
		Font:      f,
		Size:      size,
		Metrics:   metrics,
		Text:      s,
	}
	if s == "" {
		return layout, nil
	}

	runes := []rune(s)
	sh := newShaper(f, size)

	var lines []Line
	var cur lineBuilder
	flush := func() {
		lines = append(lines, cur.finish())
		cur = lineBuilder{}
	}

	rest := s
	state := -1
	pos := 0
	for len(rest) > 0 {
		var seg string
		var mustBreak bool
		seg, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		body := strings.TrimRight(seg, "\r\n\v\f\u0085\u2028\u2029")
		bodyLen := utf8.RuneCountInString(body)
		visibleLen := utf8.RuneCountInString(strings.TrimRightFunc(body, unicode.IsSpace))

		glyphs, adv := sh.shape(runes, pos, pos+bodyLen)
		visible := visibleAdvance(glyphs, pos+visibleLen)

		if maxWidth > 0 && !cur.empty() && cur.pen+visible > maxWidth {
			flush()
		}
		cur.add(glyphs, body, adv, visible)

		if mustBreak && len(rest) > 0 {
			flush()
		}
		pos += utf8.RuneCountInString(seg)
	}
	if !cur.empty() || len(lines) == 0 {
		flush()
	}

	for i := range lines {
		top := float64(i) * metrics.LineHeight
		if maxHeight > 0 && i > 0 && top >= maxHeight {
			lines = lines[:i]
			break
		}
		lines[i].Y = top + metrics.Ascent
		layout.Width = max(layout.Width, lines[i].Width)
	}
	layout.Lines = lines
	layout.Height = float64(len(lines)) * metrics.LineHeight
	return layout, nil
}

// visibleAdvance sums the advances of glyphs whose cluster starts before
// end, which excludes trailing whitespace.
func visibleAdvance(glyphs []Glyph, end int) float64 {
	var w float64
	for _, g := range glyphs {
		if g.Cluster < end {
			w = max(w, g.X+g.Advance)
		}
	}
	return w
}

// lineBuilder accumulates segments into one line.
type lineBuilder struct {
	glyphs []Glyph
	text   strings.Builder
	pen    float64
	width  float64
	used   bool
}

func (b *lineBuilder) empty() bool { return !b.used }

func (b *lineBuilder) add(glyphs []Glyph, body string, adv, visible float64) {
	for _, g := range glyphs {
		g.X += b.pen
		b.glyphs = append(b.glyphs, g)
	}
	b.text.WriteString(body)
	if visible > 0 {
		b.width = b.pen + visible
	}
	b.pen += adv
	b.used = true
}

func (b *lineBuilder) finish() Line {
	return Line{
		Glyphs: b.glyphs,
		Text:   b.text.String(),
		Width:  b.width,
	}
}
