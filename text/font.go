// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	lru "github.com/hashicorp/golang-lru/v2"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is one parsed face of a family: a single weight and style.
//
// The same font data is parsed twice: go-text/typesetting owns shaping and
// golang.org/x/image/font/sfnt owns metrics and outlines. Glyph IDs agree
// between the two because both index the font's own glyph table.
//
// Font is safe for concurrent use.
type Font struct {
	family string
	weight Weight
	style  Style

	data   []byte
	outl   *sfnt.Font
	shaped *gotext.Font

	// mu guards buf; sfnt.Buffer is scratch space and not concurrent-safe.
	mu  sync.Mutex
	buf sfnt.Buffer

	// outlines is an LRU of scaled glyph outlines.
	outlines *lru.Cache[outlineKey, []OutlineSegment]
}

// outlineCacheLimit bounds the number of cached glyph outlines per font.
const outlineCacheLimit = 2048

type outlineKey struct {
	gid  GlyphID
	size fixed.Int26_6
}

// Metrics holds vertical font metrics scaled to a font size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of a line.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a line.
	Descent float64

	// LineHeight is the recommended baseline-to-baseline distance.
	LineHeight float64
}

// NewFont parses TTF or OTF data as one face of family.
// The data slice is copied and can be reused after this call.
func NewFont(data []byte, family string, weight Weight, style Style) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if family == "" {
		return nil, ErrEmptyFamily
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outl, err := sfnt.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: parse %s outlines: %w", family, err)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	face, err := gotext.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: parse %s for shaping: %w", family, err)
	}

	outlines, err := lru.New[outlineKey, []OutlineSegment](outlineCacheLimit)
	if err != nil {
		return nil, fmt.Errorf("text: outline cache: %w", err)
	}

	return &Font{
		family:   family,
		weight:   weight,
		style:    style,
		data:     dataCopy,
		outl:     outl,
		shaped:   face.Font,
		outlines: outlines,
	}, nil
}

// Family returns the family name the font was registered under.
func (f *Font) Family() string { return f.family }

// Weight returns the face weight.
func (f *Font) Weight() Weight { return f.weight }

// Style returns the face style.
func (f *Font) Style() Style { return f.style }

// String returns "Family Weight Style", e.g. "Go 700 Italic".
func (f *Font) String() string {
	return fmt.Sprintf("%s %d %s", f.family, f.weight, f.style)
}

// Metrics returns the vertical metrics at size (in pixels per em).
func (f *Font) Metrics(size float64) (Metrics, error) {
	if size <= 0 {
		return Metrics{}, ErrInvalidSize
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	m, err := f.outl.Metrics(&f.buf, floatToFixed(size), xfont.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: metrics for %s: %w", f, err)
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}, nil
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits, so we multiply by 64.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
