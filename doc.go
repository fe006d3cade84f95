// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package brush is a layered image document model.
//
// # Overview
//
// A Document is a tree of layers composited onto a canvas. Every structural
// edit and most property edits are recorded in a linear undo/redo History.
// A Renderer walks the tree once per frame and issues draw calls on a
// surface.Surface, rebuilding per-layer cached resources (shaped text,
// resolved paint) only when an input changed.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/brush"
//	    "github.com/gogpu/brush/surface"
//	)
//
//	doc, err := brush.NewDocument(800, 600)
//	if err != nil { ... }
//
//	layer, err := doc.NewBitmapLayer()
//	layer.SetImage(img)
//
//	r := brush.NewRenderer(doc, nil) // draws onto a surface.ImageSurface
//	r.RequestFrame()
//	if _, err := r.Tick(1); err != nil { ... }
//
//	doc.Undo()
//
// # Layers
//
// The layer set is closed: BackgroundLayer, BitmapLayer, TextLayer,
// CombinerLayer (a group) and the Document itself, which is the root
// container. Children are painted back to front, each layer before its own
// children.
//
// # History
//
// Entry 0 of a History is the baseline ("Document Created" or
// "Document Loaded") and can never be reverted. Recording a command after
// an undo discards the redo tail.
//
// # Coordinate System
//
// Canvas coordinates put the origin at the top-left, X increasing right and
// Y increasing down, in pixels.
package brush

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
