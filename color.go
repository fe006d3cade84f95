// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/brush/surface"
)

// RGBA represents a straight-alpha color.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// ParseHex parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
// The leading '#' is optional.
func ParseHex(s string) (RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("brush: invalid hex color %q", s)
	}

	var r, g, b, a uint64
	switch len(hex) {
	case 3:
		r, g, b, a = v>>8&0xf*17, v>>4&0xf*17, v&0xf*17, 255
	case 4:
		r, g, b, a = v>>12&0xf*17, v>>8&0xf*17, v>>4&0xf*17, v&0xf*17
	case 6:
		r, g, b, a = v>>16&0xff, v>>8&0xff, v&0xff, 255
	case 8:
		r, g, b, a = v>>24&0xff, v>>16&0xff, v>>8&0xff, v&0xff
	default:
		return RGBA{}, fmt.Errorf("brush: invalid hex color %q", s)
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// Hex is like ParseHex but returns opaque black for malformed input.
func Hex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return Black
	}
	return c
}

// String returns the color as "#RRGGBBAA".
func (c RGBA) String() string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// paint resolves the color with a layer opacity into a surface paint.
func (c RGBA) paint(opacity float64) surface.Paint {
	return surface.Paint{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A) * clamp01(opacity),
	}
}

// clamp01 restricts a value to the [0, 1] range. NaN maps to 0.
func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
