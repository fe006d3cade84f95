// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text resolves font families, shapes text and lays it out into
// wrapped lines for text layers.
//
// The pipeline has three stages:
//
//   - Registry: maps a family name, weight and style to a parsed Font.
//     The built-in families are the Go fonts from golang.org/x/image.
//   - Shaping: go-text/typesetting (HarfBuzz) turns runes into positioned
//     glyphs, including kerning and ligatures.
//   - Layout: text is normalized to NFC, split at UAX #14 line break
//     opportunities (github.com/rivo/uniseg), and packed greedily into lines
//     no wider than the requested box.
//
// # Example
//
//	reg := text.NewRegistry()
//	f, _ := reg.Resolve("Go", text.WeightBold, text.StyleNormal)
//	layout, err := text.LayoutText("Hello, layers!", f, 24, 300, 200)
//	if err != nil {
//	    return err
//	}
//	for _, line := range layout.Lines {
//	    fmt.Println(line.Text, line.Width)
//	}
//
// A Layout is immutable once built. Surfaces read glyph outlines from the
// layout's Font when they rasterize it.
package text
