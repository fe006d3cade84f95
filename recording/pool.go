// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"

	"github.com/gogpu/brush/text"
)

// ResourcePool stores resources referenced by recording commands.
//
// Layouts are deduplicated by identity: the same *text.Layout always maps
// to the same LayoutRef. Images are not deduplicated because image.Image
// values need not be comparable.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	images  []image.Image
	layouts []*text.Layout
	byPtr   map[*text.Layout]LayoutRef
}

// NewResourcePool creates an empty resource pool with pre-allocated capacity.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		images:  make([]image.Image, 0, 8),
		layouts: make([]*text.Layout, 0, 8),
		byPtr:   make(map[*text.Layout]LayoutRef),
	}
}

// AddImage adds an image to the pool and returns its reference.
func (p *ResourcePool) AddImage(img image.Image) ImageRef {
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return ImageRef(uint32(len(p.images) - 1))
}

// GetImage returns the image for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetImage(ref ImageRef) image.Image {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// ImageCount returns the number of images in the pool.
func (p *ResourcePool) ImageCount() int {
	return len(p.images)
}

// AddLayout adds a layout to the pool, or returns the existing reference
// if the same layout was added before.
func (p *ResourcePool) AddLayout(l *text.Layout) LayoutRef {
	if ref, ok := p.byPtr[l]; ok {
		return ref
	}
	p.layouts = append(p.layouts, l)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := LayoutRef(uint32(len(p.layouts) - 1))
	p.byPtr[l] = ref
	return ref
}

// GetLayout returns the layout for the given reference.
// Returns nil if the reference is invalid.
func (p *ResourcePool) GetLayout(ref LayoutRef) *text.Layout {
	if int(ref) >= len(p.layouts) {
		return nil
	}
	return p.layouts[ref]
}

// LayoutCount returns the number of distinct layouts in the pool.
func (p *ResourcePool) LayoutCount() int {
	return len(p.layouts)
}
