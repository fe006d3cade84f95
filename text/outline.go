// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"fmt"

	"golang.org/x/image/font/sfnt"
)

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	// OutlineOpMoveTo moves to a new point without drawing.
	OutlineOpMoveTo OutlineOp = iota

	// OutlineOpLineTo draws a line to the target point.
	OutlineOpLineTo

	// OutlineOpQuadTo draws a quadratic bezier curve.
	OutlineOpQuadTo

	// OutlineOpCubicTo draws a cubic bezier curve.
	OutlineOpCubicTo
)

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	switch op {
	case OutlineOpMoveTo:
		return "MoveTo"
	case OutlineOpLineTo:
		return "LineTo"
	case OutlineOpQuadTo:
		return "QuadTo"
	case OutlineOpCubicTo:
		return "CubicTo"
	default:
		return unknownStr
	}
}

// OutlinePoint is a point of a glyph outline in pixels, relative to the
// glyph origin on the baseline. Y grows downwards.
type OutlinePoint struct {
	X, Y float32
}

// OutlineSegment represents a segment of a glyph outline.
type OutlineSegment struct {
	// Op is the segment operation type.
	Op OutlineOp

	// Points contains the control and end points for this segment.
	// - MoveTo: Points[0] is the target point
	// - LineTo: Points[0] is the target point
	// - QuadTo: Points[0] is control, Points[1] is target
	// - CubicTo: Points[0], Points[1] are controls, Points[2] is target
	Points [3]OutlinePoint
}

// Outline returns the outline of gid scaled to size.
// Glyphs without contours (spaces) return an empty outline.
//
// Outlines are cached per font; the returned slice is shared and must not
// be modified.
func (f *Font) Outline(gid GlyphID, size float64) ([]OutlineSegment, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	key := outlineKey{gid: gid, size: floatToFixed(size)}
	if out, ok := f.outlines.Get(key); ok {
		return out, nil
	}
	out, err := f.loadOutline(key)
	if err != nil {
		return nil, err
	}
	f.outlines.Add(key, out)
	return out, nil
}

func (f *Font) loadOutline(key outlineKey) ([]OutlineSegment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	segments, err := f.outl.LoadGlyph(&f.buf, sfnt.GlyphIndex(key.gid), key.size, nil)
	if err != nil {
		return nil, fmt.Errorf("text: outline of glyph %d in %s: %w", key.gid, f, err)
	}

	out := make([]OutlineSegment, len(segments))
	for i, seg := range segments {
		var op OutlineOp
		n := 1
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			op, n = OutlineOpQuadTo, 2
		case sfnt.SegmentOpCubeTo:
			op, n = OutlineOpCubicTo, 3
		}
		out[i].Op = op
		for j := 0; j < n; j++ {
			out[i].Points[j] = OutlinePoint{
				X: float32(fixedToFloat(seg.Args[j].X)),
				Y: float32(fixedToFloat(seg.Args[j].Y)),
			}
		}
	}
	return out, nil
}
