// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/brush/text"
)

// Sentinel errors for surfaces.
var (
	// ErrFrameInProgress is returned by BeginFrame when a frame is open.
	ErrFrameInProgress = errors.New("surface: frame already in progress")

	// ErrNoFrame is returned by draw calls and EndFrame outside a frame.
	ErrNoFrame = errors.New("surface: no frame in progress")

	// ErrClosed is returned when a closed surface is used.
	ErrClosed = errors.New("surface: surface is closed")

	// ErrNilImage is returned by DrawImage for a nil image.
	ErrNilImage = errors.New("surface: nil image")

	// ErrNilLayout is returned by DrawShapedText for a nil layout.
	ErrNilLayout = errors.New("surface: nil text layout")

	// ErrNoBackendAvailable is returned when no registered backend can
	// create a surface.
	ErrNoBackendAvailable = errors.New("surface: no backend available")

	// ErrUnknownBackend is returned when opening a backend that is not
	// registered.
	ErrUnknownBackend = errors.New("surface: unknown backend")
)

// Surface is the rendering target of one document frame.
//
// Every draw call must happen between BeginFrame and EndFrame. A draw error
// is returned to the caller; the surface stays usable and the caller is
// expected to end the frame.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// BeginFrame starts a new frame.
	BeginFrame() error

	// EndFrame finishes the current frame.
	EndFrame() error

	// DrawImage draws img scaled into rect, multiplied by opacity.
	DrawImage(rect Rect, img image.Image, opacity float64) error

	// DrawShapedText paints layout with its top-left corner at pos.
	DrawShapedText(pos Point, layout *text.Layout, paint Paint) error

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// SnapshotSurface is an optional interface for surfaces whose pixels can be
// read back.
type SnapshotSurface interface {
	Surface

	// Snapshot returns a copy of the current surface contents.
	Snapshot() *image.RGBA
}
