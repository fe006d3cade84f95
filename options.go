// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"sync"

	"github.com/gogpu/brush/text"
)

// DocumentOption configures a Document during creation.
//
// Example:
//
//	doc, err := brush.NewDocument(800, 600,
//	    brush.WithReporter(dialogReporter),
//	    brush.WithTextDefaults(defaults))
type DocumentOption func(*documentOptions)

// documentOptions holds optional configuration for Document creation.
type documentOptions struct {
	reporter    Reporter
	fonts       *text.Registry
	text        TextDefaults
	layerPrefix string
	groupPrefix string
}

// defaultFonts is the registry shared by documents created without
// WithFonts. Built on first use.
var defaultFonts = sync.OnceValue(text.NewRegistry)

// defaultOptions returns the default document options.
func defaultOptions() documentOptions {
	return documentOptions{
		reporter:    nil, // DefaultReporter
		fonts:       nil, // defaultFonts
		text:        DefaultTextDefaults(),
		layerPrefix: "Layer",
		groupPrefix: "Group",
	}
}

// resolveOptions applies opts over the defaults.
func resolveOptions(opts []DocumentOption) documentOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = defaultFonts()
	}
	return o
}

// WithReporter sets the Reporter that presents history and render errors.
func WithReporter(r Reporter) DocumentOption {
	return func(o *documentOptions) {
		o.reporter = r
	}
}

// WithFonts sets the font registry text layers resolve families against.
func WithFonts(r *text.Registry) DocumentOption {
	return func(o *documentOptions) {
		o.fonts = r
	}
}

// WithTextDefaults sets the properties of new text layers.
// Zero fields keep the built-in defaults.
func WithTextDefaults(d TextDefaults) DocumentOption {
	return func(o *documentOptions) {
		def := DefaultTextDefaults()
		if d.Text == "" {
			d.Text = def.Text
		}
		if d.Family == "" {
			d.Family = def.Family
		}
		if d.Weight == 0 {
			d.Weight = def.Weight
		}
		if !(d.Size > 0) {
			d.Size = def.Size
		}
		if d.Color == (RGBA{}) {
			d.Color = def.Color
		}
		o.text = d
	}
}

// WithLayerNamePrefix sets the prefix of synthesized layer names
// (default "Layer").
func WithLayerNamePrefix(prefix string) DocumentOption {
	return func(o *documentOptions) {
		if prefix != "" {
			o.layerPrefix = prefix
		}
	}
}

// WithGroupNamePrefix sets the prefix of synthesized group names
// (default "Group").
func WithGroupNamePrefix(prefix string) DocumentOption {
	return func(o *documentOptions) {
		if prefix != "" {
			o.groupPrefix = prefix
		}
	}
}
