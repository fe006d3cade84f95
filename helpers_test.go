// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gogpu/brush/recording"
)

// captureReporter collects reports.
type captureReporter struct {
	summaries []string
	details   []string
}

func (r *captureReporter) Report(summary, details string) {
	r.summaries = append(r.summaries, summary)
	r.details = append(r.details, details)
}

func newTestDoc(t *testing.T, opts ...DocumentOption) (*Document, *captureReporter) {
	t.Helper()
	rep := &captureReporter{}
	doc, err := NewDocument(800, 600, append([]DocumentOption{WithReporter(rep)}, opts...)...)
	require.NoError(t, err)
	return doc, rep
}

// snapshot renders the tree as nested names, e.g. "[Layer 1 Group 1[Layer 2]]".
func snapshot(l Layer) string {
	var b strings.Builder
	var rec func(Layer)
	rec = func(l Layer) {
		b.WriteString("[")
		for i, c := range l.Children() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(c.Name())
			if c.HasChildren() {
				rec(c)
			}
		}
		b.WriteString("]")
	}
	rec(l)
	return b.String()
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// drawFrame draws doc onto rec inside one frame and returns the draw
// commands of that frame.
func drawFrame(t *testing.T, doc *Document, rec *recording.Recorder) []recording.Command {
	t.Helper()
	require.NoError(t, rec.BeginFrame())
	drawErr := doc.Draw(rec)
	require.NoError(t, rec.EndFrame())
	require.NoError(t, drawErr)
	return rec.LastFrame()
}
