// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle in canvas coordinates.
// Origin (0,0) is the top-left corner of the canvas and Y grows down.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// NewRect creates a rectangle from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectWH creates a rectangle at (x, y) with the given size.
func RectWH(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the horizontal extent. It is negative for inverted rects.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent. It is negative for inverted rects.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle covers no area.
func (r Rect) IsEmpty() bool { return r.Right <= r.Left || r.Bottom <= r.Top }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.Left, Y: r.Top} }

// Bounds returns the smallest integer rectangle containing r.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
}

// String returns "(l,t)-(r,b)".
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Left, r.Top, r.Right, r.Bottom)
}

// Paint is a solid text paint: a straight-alpha color whose alpha already
// includes the layer opacity. Components are in [0, 1].
type Paint struct {
	R, G, B, A float64
}

// RGBA returns the paint as premultiplied 8-bit color.
func (p Paint) RGBA() color.RGBA {
	a := clamp01(p.A)
	return color.RGBA{
		R: uint8(clamp01(p.R)*a*255 + 0.5),
		G: uint8(clamp01(p.G)*a*255 + 0.5),
		B: uint8(clamp01(p.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Options configures surface creation through the registry.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// Background is the color each frame starts from.
	// Nil means fully transparent.
	Background color.Color
}
