// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording captures the draw sequence of document frames.
//
// A Recorder is a surface.Surface that stores every call it receives as a
// typed command instead of rasterizing it. The result is the ordered draw
// sequence of a traversal, which can be inspected, compared between
// frames, or played back onto any other surface.
//
// Design follows Cairo's approach of typed command structs for inspectability
// and debuggability, rather than an opaque binary format.
//
// # Architecture
//
//   - Commands: BeginFrame, DrawImage, DrawText, EndFrame
//   - ResourcePool: images and text layouts referenced by typed handles
//     (ImageRef, LayoutRef). A layout drawn twice keeps the same handle,
//     which makes cache reuse across frames visible.
//   - Recording: an immutable snapshot that can Playback onto a surface.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	if err := doc.Draw(rec); err != nil { ... }
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd.Type())
//	}
//
//	out := surface.NewImageSurface(800, 600)
//	err := rec.FinishRecording().Playback(out)
//
// The Recorder also registers itself with the surface registry under the
// name "recording".
package recording
