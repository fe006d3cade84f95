// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoFont is returned when a layout is requested without a font.
	ErrNoFont = errors.New("text: no font")

	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrEmptyFamily is returned when a font is registered without a family name.
	ErrEmptyFamily = errors.New("text: empty family name")
)
