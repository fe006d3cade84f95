// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gogpu/brush/surface"
	"github.com/gogpu/brush/text"
)

// Draw paints every layer onto s: each layer's own content first, then its
// children in order. Draw does not begin or end a frame.
//
// The first failing layer aborts the traversal; its error is returned as a
// *LayerError. Caches of layers drawn before the failure are kept.
func (d *Document) Draw(s surface.Surface) error {
	for _, c := range d.children {
		if err := drawLayer(s, c, d.fonts); err != nil {
			return err
		}
	}
	return nil
}

func drawLayer(s surface.Surface, l Layer, fonts *text.Registry) error {
	switch v := l.(type) {
	case *BitmapLayer:
		if v.img != nil {
			if err := s.DrawImage(v.placement, v.img, v.opacity); err != nil {
				return &LayerError{Op: "draw image", Layer: v.name, Err: err}
			}
		}
	case *TextLayer:
		if v.text != "" {
			layout, err := v.ensureLayout(fonts)
			if err != nil {
				return &LayerError{Op: "layout text", Layer: v.name, Err: err}
			}
			if err := s.DrawShapedText(v.placement.Min(), layout, v.ensurePaint()); err != nil {
				return &LayerError{Op: "draw text", Layer: v.name, Err: err}
			}
		}
	case *BackgroundLayer, *CombinerLayer, *Document:
		// No content of their own.
	}

	for _, c := range l.base().children {
		if err := drawLayer(s, c, fonts); err != nil {
			return err
		}
	}
	return nil
}

// SurfaceFactory creates the render target for a canvas size.
type SurfaceFactory func(width, height int) (surface.Surface, error)

// ImageSurfaceFactory creates CPU image surfaces with a transparent
// background.
func ImageSurfaceFactory(width, height int) (surface.Surface, error) {
	return surface.NewImageSurface(width, height), nil
}

// Renderer draws a document onto a target surface at most once per tick.
//
// Any document change requests a frame. A canvas resize additionally
// closes the target so the next frame creates one at the new size.
// Requests arriving during a tick that already rendered are served on the
// next tick.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	doc     *Document
	factory SurfaceFactory
	target  surface.Surface
	cancel  func()

	pending  bool
	rendered bool
	lastTick time.Duration
	frames   int
}

// NewRenderer creates a renderer for doc. A nil factory uses
// ImageSurfaceFactory.
func NewRenderer(doc *Document, factory SurfaceFactory) *Renderer {
	if factory == nil {
		factory = ImageSurfaceFactory
	}
	r := &Renderer{factory: factory}
	r.SetDocument(doc)
	return r
}

// SetDocument replaces the rendered document. The target surface is
// dropped and a frame is requested.
func (r *Renderer) SetDocument(doc *Document) {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.dropTarget()
	r.doc = doc
	if doc != nil {
		r.cancel = doc.ObserveTree(r.onChange)
		r.pending = true
	}
}

// Document returns the rendered document.
func (r *Renderer) Document() *Document { return r.doc }

// Target returns the current target surface, or nil before the first frame
// and after a resize.
func (r *Renderer) Target() surface.Surface { return r.target }

// Frames returns the number of frames rendered.
func (r *Renderer) Frames() int { return r.frames }

// Pending reports whether a frame has been requested.
func (r *Renderer) Pending() bool { return r.pending }

// RequestFrame asks for a frame on the next Tick.
func (r *Renderer) RequestFrame() { r.pending = true }

func (r *Renderer) onChange(c Change) {
	if c.Attr == AttrCanvasSize {
		r.dropTarget()
	}
	r.pending = true
}

func (r *Renderer) dropTarget() {
	if r.target == nil {
		return
	}
	if err := r.target.Close(); err != nil {
		Logger().Warn("brush: close render target", slog.Any("error", err))
	}
	r.target = nil
}

// Tick renders one frame if one was requested and none was rendered during
// this tick yet. It reports whether a frame was rendered.
//
// A render error is presented through the document's reporter and
// returned; EndFrame is always called once BeginFrame succeeded.
func (r *Renderer) Tick(tick time.Duration) (bool, error) {
	if r.rendered && tick == r.lastTick {
		return false, nil
	}
	if !r.pending || r.doc == nil {
		return false, nil
	}

	// Requests raised while drawing are kept for the next tick.
	r.pending = false
	err := r.render()
	r.rendered = true
	r.lastTick = tick
	if err != nil {
		Present(r.doc.reporter, err)
		return false, err
	}
	r.frames++
	return true, nil
}

func (r *Renderer) render() error {
	if r.target == nil {
		t, err := r.factory(r.doc.width, r.doc.height)
		if err != nil {
			return err
		}
		Logger().Debug("brush: render target created",
			slog.Int("width", r.doc.width),
			slog.Int("height", r.doc.height))
		r.target = t
	}

	if err := r.target.BeginFrame(); err != nil {
		return err
	}
	drawErr := r.doc.Draw(r.target)
	endErr := r.target.EndFrame()
	return errors.Join(drawErr, endErr)
}

// Close unsubscribes from the document and closes the target surface.
func (r *Renderer) Close() error {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	var err error
	if r.target != nil {
		err = r.target.Close()
		r.target = nil
	}
	return err
}
