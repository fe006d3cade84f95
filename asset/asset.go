// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Register decoders with image.Decode.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Asset errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("asset: empty data")

	// ErrDecode wraps every decoder failure.
	ErrDecode = errors.New("asset: decode failed")

	// ErrTooLarge is returned when an image exceeds the decoder's pixel limit.
	ErrTooLarge = errors.New("asset: image too large")
)

// DefaultMaxPixels is the default pixel limit of a Decoder (16384 x 16384).
const DefaultMaxPixels = 1 << 28

// Image is a decoded raster image.
type Image struct {
	// Image holds the pixels.
	Image image.Image

	// Width and Height are the pixel dimensions.
	Width, Height int

	// Format is the name of the format it was decoded from, e.g. "png".
	Format string
}

// Loader decodes raster images from bytes.
type Loader interface {
	Load(data []byte) (*Image, error)
}

// Decoder is a Loader backed by the registered image decoders.
type Decoder struct {
	// MaxPixels bounds width*height checked from the header before the
	// pixels are decoded. Zero means DefaultMaxPixels.
	MaxPixels int
}

var _ Loader = (*Decoder)(nil)

// NewDecoder returns a Decoder with the default pixel limit.
func NewDecoder() *Decoder {
	return &Decoder{MaxPixels: DefaultMaxPixels}
}

// Formats returns the format names the Decoder understands.
func (d *Decoder) Formats() []string {
	return []string{"bmp", "gif", "jpeg", "png", "tiff", "webp"}
}

// Load decodes data, auto-detecting the format.
func (d *Decoder) Load(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if limit := d.maxPixels(); cfg.Width*cfg.Height > limit {
		return nil, fmt.Errorf("%w: %s image is %dx%d", ErrTooLarge, format, cfg.Width, cfg.Height)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s image has no pixels", ErrDecode, format)
	}
	return &Image{
		Image:  img,
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: format,
	}, nil
}

func (d *Decoder) maxPixels() int {
	if d.MaxPixels <= 0 {
		return DefaultMaxPixels
	}
	return d.MaxPixels
}

// LoadFile reads the file at path and decodes it with l.
func LoadFile(l Loader, path string) (*Image, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("asset: read file: %w", err)
	}
	return l.Load(data)
}

// EncodePNG encodes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("asset: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves img as a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("asset: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
