// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"errors"
	"testing"
)

func TestFont_Outline(t *testing.T) {
	f := layoutTestFont(t)

	layout, err := LayoutText("H ", f, 32, 0, 0)
	if err != nil {
		t.Fatalf("LayoutText() error = %v", err)
	}
	glyphs := layout.Lines[0].Glyphs
	if len(glyphs) != 2 {
		t.Fatalf("expected 2 glyphs, got %d", len(glyphs))
	}

	h, err := f.Outline(glyphs[0].ID, 32)
	if err != nil {
		t.Fatalf("Outline(H) error = %v", err)
	}
	if len(h) == 0 {
		t.Fatal("Outline(H) is empty")
	}
	if h[0].Op != OutlineOpMoveTo {
		t.Errorf("first op = %v, want %v", h[0].Op, OutlineOpMoveTo)
	}
	// The H sits above the baseline, so its points have negative Y.
	for _, seg := range h {
		if seg.Points[0].Y > 0.5 {
			t.Errorf("point %v lies below the baseline", seg.Points[0])
		}
	}

	space, err := f.Outline(glyphs[1].ID, 32)
	if err != nil {
		t.Fatalf("Outline(space) error = %v", err)
	}
	if len(space) != 0 {
		t.Errorf("Outline(space) has %d segments, want 0", len(space))
	}

	if _, err := f.Outline(glyphs[0].ID, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Outline(size 0) error = %v, want %v", err, ErrInvalidSize)
	}
}

func TestFont_Metrics(t *testing.T) {
	f := layoutTestFont(t)

	m, err := f.Metrics(16)
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 || m.LineHeight < m.Ascent {
		t.Errorf("Metrics() = %+v, want positive ascent/descent and line height >= ascent", m)
	}
}

func TestOutlineOp_String(t *testing.T) {
	tests := []struct {
		op   OutlineOp
		want string
	}{
		{OutlineOpMoveTo, "MoveTo"},
		{OutlineOpLineTo, "LineTo"},
		{OutlineOpQuadTo, "QuadTo"},
		{OutlineOpCubicTo, "CubicTo"},
		{OutlineOp(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("OutlineOp.String() = %v, want %v", got, tt.want)
		}
	}
}
