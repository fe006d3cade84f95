// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/brush/recording"
	"github.com/gogpu/brush/surface"
	"github.com/gogpu/brush/text"
)

func TestTextLayerDefaults(t *testing.T) {
	l := NewTextLayer("t", RectWH(0, 0, 100, 50))
	assert.Equal(t, DefaultText, l.Text())
	assert.Equal(t, text.DefaultFamily, l.Family())
	assert.Equal(t, text.WeightNormal, l.Weight())
	assert.Equal(t, text.StyleNormal, l.Style())
	assert.Equal(t, float64(DefaultFontSize), l.Size())
	assert.Equal(t, Black, l.Color())
	assert.Nil(t, l.Layout())
	assert.Nil(t, l.Paint())
}

func TestTextLayerSetSize(t *testing.T) {
	l := NewTextLayer("t", RectWH(0, 0, 100, 50))
	assert.ErrorIs(t, l.SetSize(0), ErrInvalidFontSize)
	assert.ErrorIs(t, l.SetSize(-3), ErrInvalidFontSize)
	assert.ErrorIs(t, l.SetSize(math.NaN()), ErrInvalidFontSize)
	assert.Equal(t, float64(DefaultFontSize), l.Size())

	require.NoError(t, l.SetSize(32))
	assert.Equal(t, 32.0, l.Size())
}

// primed draws doc once so that its first text layer has both caches.
func primed(t *testing.T) (*Document, *TextLayer, *recording.Recorder) {
	t.Helper()
	doc, _ := newTestDoc(t)
	tl := doc.Children()[0].(*TextLayer)
	rec := recording.NewRecorder(doc.CanvasWidth(), doc.CanvasHeight())
	drawFrame(t, doc, rec)
	require.NotNil(t, tl.Layout())
	require.NotNil(t, tl.Paint())
	return doc, tl, rec
}

func TestTextLayerCacheReusedAcrossFrames(t *testing.T) {
	doc, tl, rec := primed(t)
	layout := tl.Layout()

	drawFrame(t, doc, rec)
	assert.Same(t, layout, tl.Layout())
	assert.Equal(t, 1, rec.Resources().LayoutCount(), "both frames reference one layout")
}

func TestTextLayerPaintInvalidation(t *testing.T) {
	tests := []struct {
		name   string
		change func(*TextLayer)
	}{
		{"color", func(l *TextLayer) { l.SetColor(Red) }},
		{"opacity", func(l *TextLayer) { l.SetOpacity(0.5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, tl, rec := primed(t)
			layout, paint := tl.Layout(), tl.Paint()

			tt.change(tl)
			assert.Nil(t, tl.Paint())
			assert.Same(t, layout, tl.Layout(), "layout is kept")

			drawFrame(t, doc, rec)
			assert.Same(t, layout, tl.Layout(), "layout is not rebuilt")
			require.NotNil(t, tl.Paint())
			assert.NotSame(t, paint, tl.Paint(), "paint is rebuilt")
		})
	}
}

func TestTextLayerLayoutInvalidation(t *testing.T) {
	tests := []struct {
		name   string
		change func(*TextLayer)
	}{
		{"text", func(l *TextLayer) { l.SetText("Other") }},
		{"family", func(l *TextLayer) { l.SetFamily(text.FamilyGoMono) }},
		{"weight", func(l *TextLayer) { l.SetWeight(text.WeightBold) }},
		{"style", func(l *TextLayer) { l.SetStyle(text.StyleItalic) }},
		{"size", func(l *TextLayer) { _ = l.SetSize(30) }},
		{"placement", func(l *TextLayer) { l.SetPlacement(RectWH(10, 10, 200, 100)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, tl, rec := primed(t)
			layout, paint := tl.Layout(), tl.Paint()

			tt.change(tl)
			assert.Nil(t, tl.Layout())
			assert.Same(t, paint, tl.Paint(), "paint is kept")

			drawFrame(t, doc, rec)
			assert.Same(t, paint, tl.Paint(), "paint is not rebuilt")
			require.NotNil(t, tl.Layout())
			assert.NotSame(t, layout, tl.Layout(), "layout is rebuilt")
		})
	}
}

func TestTextLayerUnchangedKeepsCaches(t *testing.T) {
	_, tl, _ := primed(t)
	layout, paint := tl.Layout(), tl.Paint()

	tl.SetText(tl.Text())
	tl.SetColor(tl.Color())
	tl.SetOpacity(tl.Opacity())
	tl.SetPlacement(tl.Placement())
	require.NoError(t, tl.SetSize(tl.Size()))

	assert.Same(t, layout, tl.Layout())
	assert.Same(t, paint, tl.Paint())
}

func TestTextLayerPaintUsesOpacity(t *testing.T) {
	doc, tl, rec := primed(t)
	tl.SetColor(Red)
	tl.SetOpacity(0.5)

	cmds := drawFrame(t, doc, rec)
	require.Len(t, cmds, 1)
	cmd := cmds[0].(recording.DrawTextCommand)
	assert.Equal(t, surface.Paint{R: 1, G: 0, B: 0, A: 0.5}, cmd.Paint)
	assert.Equal(t, *tl.Paint(), cmd.Paint)
}

func TestTextLayerLayoutFailure(t *testing.T) {
	doc, _ := newTestDoc(t, WithFonts(text.NewEmptyRegistry()))
	tl := doc.Children()[0].(*TextLayer)
	rec := recording.NewRecorder(doc.CanvasWidth(), doc.CanvasHeight())

	require.NoError(t, rec.BeginFrame())
	err := doc.Draw(rec)
	require.Error(t, err)

	var le *LayerError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "layout text", le.Op)
	assert.Equal(t, "Layer 1", le.Layer)
	assert.ErrorIs(t, err, text.ErrNoFont)
	assert.Nil(t, tl.Layout(), "failed build leaves the cache empty")
	assert.Empty(t, rec.LastFrame())
}
