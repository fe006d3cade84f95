// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import "image"

// BackgroundLayer is a layer without content whose transparency can never
// be locked.
type BackgroundLayer struct {
	node
}

// NewBackgroundLayer creates a detached background layer.
func NewBackgroundLayer(name string, placement Rect) *BackgroundLayer {
	l := &BackgroundLayer{}
	l.init(l, name, placement)
	return l
}

// Kind returns KindBackground.
func (l *BackgroundLayer) Kind() Kind { return KindBackground }

// CanToggleTransparencyLock reports false.
func (l *BackgroundLayer) CanToggleTransparencyLock() bool { return false }

// TransparencyLocked always reports false.
func (l *BackgroundLayer) TransparencyLocked() bool { return false }

// SetTransparencyLocked returns ErrUnsupported and changes nothing.
func (l *BackgroundLayer) SetTransparencyLocked(bool) error { return ErrUnsupported }

// BitmapLayer draws one image scaled into its placement.
type BitmapLayer struct {
	node
	img image.Image
}

// NewBitmapLayer creates a detached bitmap layer. img may be nil.
func NewBitmapLayer(name string, placement Rect, img image.Image) *BitmapLayer {
	l := &BitmapLayer{img: img}
	l.init(l, name, placement)
	return l
}

// Kind returns KindBitmap.
func (l *BitmapLayer) Kind() Kind { return KindBitmap }

// Image returns the layer image, or nil.
func (l *BitmapLayer) Image() image.Image { return l.img }

// SetImage replaces the layer image. Nil clears it.
func (l *BitmapLayer) SetImage(img image.Image) {
	l.img = img
	l.notify(AttrImage)
}

// CombinerLayer groups child layers. It has no content of its own.
type CombinerLayer struct {
	node
}

// NewCombinerLayer creates a detached, empty group.
func NewCombinerLayer(name string, placement Rect) *CombinerLayer {
	l := &CombinerLayer{}
	l.init(l, name, placement)
	return l
}

// Kind returns KindCombiner.
func (l *CombinerLayer) Kind() Kind { return KindCombiner }

// IsContainer reports true.
func (l *CombinerLayer) IsContainer() bool { return true }
