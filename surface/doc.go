// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the drawing target a document renders onto.
//
// The document model never creates or owns hardware surfaces. It is handed
// a Surface per frame and issues exactly three kinds of calls against it:
//
//   - BeginFrame / EndFrame bracket one traversal of the layer tree,
//   - DrawImage blits a raster layer into its placement,
//   - DrawShapedText paints a pre-shaped text layout with a paint.
//
// # Surface Types
//
//   - ImageSurface: CPU compositing onto an *image.RGBA. Images are scaled
//     with golang.org/x/image/draw and glyphs are rasterized with
//     golang.org/x/image/vector.
//   - recording.Recorder (package recording): captures the draw sequence.
//
// # Registry
//
// Backends register a factory by name so hosts can pick one at runtime.
// Package surface registers "image"; importing package recording adds
// "recording".
//
//	s, err := surface.Open("image", surface.Options{Width: 800, Height: 600})
//
// An empty name opens the highest priority backend whose factory succeeds.
//
// Surfaces are NOT thread-safe. Each surface should be used from the
// goroutine that renders the document.
package surface
