// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package asset loads raster images for bitmap layers.
//
// The document model consumes the Loader contract; Decoder is the bundled
// implementation. It decodes PNG, JPEG and GIF through the standard library
// and BMP, TIFF and WebP through golang.org/x/image.
//
//	img, err := asset.NewDecoder().Load(data)
//	doc, err := brush.NewDocumentFromImage(img)
package asset
