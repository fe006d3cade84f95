// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"image"
	"testing"

	"github.com/gogpu/brush/text"
)

func TestResourcePool_Images(t *testing.T) {
	p := NewResourcePool()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	a := p.AddImage(img)
	b := p.AddImage(img)
	if a == b {
		t.Errorf("images are not deduplicated, got the same ref %d twice", a)
	}
	if p.ImageCount() != 2 {
		t.Errorf("ImageCount() = %d, want 2", p.ImageCount())
	}
	if p.GetImage(a) != img {
		t.Error("GetImage returned a different image")
	}
	if p.GetImage(ImageRef(99)) != nil {
		t.Error("GetImage with invalid ref should return nil")
	}
}

func TestResourcePool_LayoutsDeduplicated(t *testing.T) {
	p := NewResourcePool()
	l1 := &text.Layout{Text: "a"}
	l2 := &text.Layout{Text: "a"}

	r1 := p.AddLayout(l1)
	if again := p.AddLayout(l1); again != r1 {
		t.Errorf("AddLayout(same) = %d, want %d", again, r1)
	}
	r2 := p.AddLayout(l2)
	if r2 == r1 {
		t.Error("distinct layouts share a ref")
	}
	if p.LayoutCount() != 2 {
		t.Errorf("LayoutCount() = %d, want 2", p.LayoutCount())
	}
	if p.GetLayout(r2) != l2 {
		t.Error("GetLayout returned a different layout")
	}
	if p.GetLayout(LayoutRef(7)) != nil {
		t.Error("GetLayout with invalid ref should return nil")
	}
}
