// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"log/slog"

	"github.com/gogpu/brush/surface"
	"github.com/gogpu/brush/text"
)

// Text layer defaults.
const (
	DefaultText     = "This is the text"
	DefaultFontSize = 14
)

// TextDefaults are the initial properties of new text layers.
type TextDefaults struct {
	Text   string
	Family string
	Weight text.Weight
	Style  text.Style
	Size   float64
	Color  RGBA
}

// DefaultTextDefaults returns the built-in text layer defaults.
func DefaultTextDefaults() TextDefaults {
	return TextDefaults{
		Text:   DefaultText,
		Family: text.DefaultFamily,
		Weight: text.WeightNormal,
		Style:  text.StyleNormal,
		Size:   DefaultFontSize,
		Color:  Black,
	}
}

// TextLayer draws wrapped text inside its placement.
//
// The shaped layout and the resolved paint are cached. Changing text,
// font family, weight, style, size or placement drops the layout; changing
// color or opacity drops the paint. Both are rebuilt on the next draw.
type TextLayer struct {
	node

	text   string
	family string
	weight text.Weight
	style  text.Style
	size   float64
	color  RGBA

	layout *text.Layout
	paint  *surface.Paint
}

// NewTextLayer creates a detached text layer with the built-in defaults.
func NewTextLayer(name string, placement Rect) *TextLayer {
	return newTextLayer(name, placement, DefaultTextDefaults())
}

func newTextLayer(name string, placement Rect, d TextDefaults) *TextLayer {
	l := &TextLayer{
		text:   d.Text,
		family: d.Family,
		weight: d.Weight,
		style:  d.Style,
		size:   d.Size,
		color:  d.Color,
	}
	l.init(l, name, placement)
	return l
}

// Kind returns KindText.
func (l *TextLayer) Kind() Kind { return KindText }

// Text returns the text content.
func (l *TextLayer) Text() string { return l.text }

// SetText replaces the text content.
func (l *TextLayer) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.layout = nil
	l.notify(AttrText)
}

// Family returns the font family name.
func (l *TextLayer) Family() string { return l.family }

// SetFamily sets the font family. Unknown families fall back to the
// registry default when the layout is built.
func (l *TextLayer) SetFamily(family string) {
	if family == l.family {
		return
	}
	l.family = family
	l.layout = nil
	l.notify(AttrFont)
}

// Weight returns the requested font weight.
func (l *TextLayer) Weight() text.Weight { return l.weight }

// SetWeight sets the requested font weight. The closest available face is
// used; ties prefer the heavier face.
func (l *TextLayer) SetWeight(w text.Weight) {
	if w == l.weight {
		return
	}
	l.weight = w
	l.layout = nil
	l.notify(AttrFont)
}

// Style returns the font style.
func (l *TextLayer) Style() text.Style { return l.style }

// SetStyle sets the font style.
func (l *TextLayer) SetStyle(s text.Style) {
	if s == l.style {
		return
	}
	l.style = s
	l.layout = nil
	l.notify(AttrFont)
}

// Size returns the font size in pixels per em.
func (l *TextLayer) Size() float64 { return l.size }

// SetSize sets the font size. Non-positive sizes return ErrInvalidFontSize.
func (l *TextLayer) SetSize(size float64) error {
	if !(size > 0) {
		return ErrInvalidFontSize
	}
	if size == l.size {
		return nil
	}
	l.size = size
	l.layout = nil
	l.notify(AttrFont)
	return nil
}

// Color returns the text color.
func (l *TextLayer) Color() RGBA { return l.color }

// SetColor sets the text color.
func (l *TextLayer) SetColor(c RGBA) {
	if c == l.color {
		return
	}
	l.color = c
	l.paint = nil
	l.notify(AttrColor)
}

// SetOpacity sets the opacity and drops the cached paint.
func (l *TextLayer) SetOpacity(opacity float64) {
	if clamp01(opacity) == l.opacity {
		return
	}
	l.paint = nil
	l.node.SetOpacity(opacity)
}

// SetPlacement sets the placement and drops the cached layout.
func (l *TextLayer) SetPlacement(r Rect) {
	if r == l.placement {
		return
	}
	l.layout = nil
	l.node.SetPlacement(r)
}

// Layout returns the cached layout, or nil when it has not been built
// since the last invalidation.
func (l *TextLayer) Layout() *text.Layout { return l.layout }

// Paint returns the cached paint, or nil when it has not been built since
// the last invalidation.
func (l *TextLayer) Paint() *surface.Paint { return l.paint }

// ensureLayout returns the cached layout, building it if needed. On error
// the cache stays empty.
func (l *TextLayer) ensureLayout(fonts *text.Registry) (*text.Layout, error) {
	if l.layout != nil {
		return l.layout, nil
	}

	f, err := fonts.Resolve(l.family, l.weight, l.style)
	if err != nil {
		return nil, err
	}
	r := l.placement
	layout, err := text.LayoutText(l.text, f, l.size, max(r.Width(), 0), max(r.Height(), 0))
	if err != nil {
		return nil, err
	}

	Logger().Debug("brush: text layout rebuilt",
		slog.String("layer", l.name),
		slog.String("font", f.String()),
		slog.Int("lines", len(layout.Lines)))
	l.layout = layout
	return layout, nil
}

// ensurePaint returns the cached paint, building it if needed.
func (l *TextLayer) ensurePaint() surface.Paint {
	if l.paint == nil {
		p := l.color.paint(l.opacity)
		l.paint = &p
	}
	return *l.paint
}
