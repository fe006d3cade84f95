// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/brush/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// Images are resampled with bilinear filtering and glyph outlines are
// filled with an anti-aliasing rasterizer. Every frame starts by clearing
// to the background color.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	_ = s.BeginFrame()
//	_ = s.DrawImage(surface.RectWH(0, 0, 800, 600), img, 0.5)
//	_ = s.EndFrame()
//
//	out := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	background color.Color

	// raster is reused across text draws; Reset clears its accumulation buffer.
	raster *vector.Rasterizer

	inFrame bool
	closed  bool
	frames  int
}

// NewImageSurface creates a new CPU-based surface with the given dimensions
// and a transparent background.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceWithOptions(Options{Width: width, Height: height})
}

// NewImageSurfaceWithOptions creates a CPU-based surface from options.
// Non-positive dimensions are clamped to 1.
func NewImageSurfaceWithOptions(opts Options) *ImageSurface {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return NewImageSurfaceFromImage(image.NewRGBA(image.Rect(0, 0, width, height)), opts.Background)
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA, background color.Color) *ImageSurface {
	if background == nil {
		background = color.Transparent
	}
	bounds := img.Bounds()
	return &ImageSurface{
		width:      bounds.Dx(),
		height:     bounds.Dy(),
		img:        img,
		background: background,
		raster:     vector.NewRasterizer(bounds.Dx(), bounds.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// BeginFrame clears the surface to its background and opens a frame.
func (s *ImageSurface) BeginFrame() error {
	if s.closed {
		return ErrClosed
	}
	if s.inFrame {
		return ErrFrameInProgress
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
	s.inFrame = true
	return nil
}

// EndFrame closes the current frame.
func (s *ImageSurface) EndFrame() error {
	if err := s.checkFrame(); err != nil {
		return err
	}
	s.inFrame = false
	s.frames++
	return nil
}

// Frames returns the number of completed frames.
func (s *ImageSurface) Frames() int {
	return s.frames
}

// DrawImage scales img into rect and composites it over the surface with
// the given opacity.
func (s *ImageSurface) DrawImage(rect Rect, img image.Image, opacity float64) error {
	if err := s.checkFrame(); err != nil {
		return err
	}
	if img == nil {
		return ErrNilImage
	}

	dr := rect.Bounds()
	if dr.Empty() || opacity <= 0 {
		return nil
	}

	var opts *xdraw.Options
	if opacity < 1 {
		opts = &xdraw.Options{
			SrcMask: image.NewUniform(color.Alpha16{A: uint16(opacity*0xffff + 0.5)}),
		}
	}
	xdraw.BiLinear.Scale(s.img, dr, img, img.Bounds(), xdraw.Over, opts)
	return nil
}

// DrawShapedText fills every glyph outline of layout with paint.
// pos is the top-left corner of the layout box.
func (s *ImageSurface) DrawShapedText(pos Point, layout *text.Layout, paint Paint) error {
	if err := s.checkFrame(); err != nil {
		return err
	}
	if layout == nil {
		return ErrNilLayout
	}
	if paint.A <= 0 || layout.GlyphCount() == 0 {
		return nil
	}

	r := s.raster
	r.Reset(s.width, s.height)

	filled := false
	for _, line := range layout.Lines {
		baseline := pos.Y + line.Y
		for _, g := range line.Glyphs {
			segments, err := layout.Font.Outline(g.ID, layout.Size)
			if err != nil {
				return fmt.Errorf("surface: draw text: %w", err)
			}
			if len(segments) == 0 {
				continue
			}
			addOutline(r, segments, float32(pos.X+g.X), float32(baseline+g.Y))
			filled = true
		}
	}

	if filled {
		r.Draw(s.img, s.img.Bounds(), image.NewUniform(paint.RGBA()), image.Point{})
	}
	return nil
}

// addOutline appends one glyph's contours to the rasterizer, translated
// to the glyph origin (ox, oy).
func addOutline(r *vector.Rasterizer, segments []text.OutlineSegment, ox, oy float32) {
	open := false
	for _, seg := range segments {
		p := seg.Points
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(ox+p[0].X, oy+p[0].Y)
			open = true
		case text.OutlineOpLineTo:
			r.LineTo(ox+p[0].X, oy+p[0].Y)
		case text.OutlineOpQuadTo:
			r.QuadTo(ox+p[0].X, oy+p[0].Y, ox+p[1].X, oy+p[1].Y)
		case text.OutlineOpCubicTo:
			r.CubeTo(ox+p[0].X, oy+p[0].Y, ox+p[1].X, oy+p[1].Y, ox+p[2].X, oy+p[2].Y)
		}
	}
	if open {
		r.ClosePath()
	}
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(result.Pix, s.img.Pix)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.inFrame = false
	s.img = nil
	s.raster = nil
	return nil
}

func (s *ImageSurface) checkFrame() error {
	if s.closed {
		return ErrClosed
	}
	if !s.inFrame {
		return ErrNoFrame
	}
	return nil
}
