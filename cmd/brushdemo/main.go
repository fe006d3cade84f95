// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command brushdemo builds a small layered document and renders it to PNG.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/brush"
	"github.com/gogpu/brush/asset"
	"github.com/gogpu/brush/config"
	"github.com/gogpu/brush/recording"
	"github.com/gogpu/brush/surface"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML config file (defaults are embedded)")
		imagePath  = flag.String("image", "", "open this image instead of creating a new document")
		output     = flag.String("output", "brush.png", "output file")
		caption    = flag.String("text", "", "add a text layer with this content")
		backend    = flag.String("backend", "image", "surface backend (image, recording; empty picks the preferred one)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if level, enabled, err := cfg.LogLevel(); err == nil && enabled {
		brush.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	doc, err := openDocument(cfg, *imagePath)
	if err != nil {
		log.Fatalf("Failed to create document: %v", err)
	}

	if *caption != "" {
		l, err := doc.NewTextLayer()
		if err != nil {
			log.Fatalf("Failed to add text layer: %v", err)
		}
		if err := doc.SetLayerText(l, *caption); err != nil {
			log.Fatalf("Failed to set text: %v", err)
		}
	}

	background := brush.Hex(cfg.Canvas.Background).Color()
	r := brush.NewRenderer(doc, func(w, h int) (surface.Surface, error) {
		return surface.Open(*backend, surface.Options{Width: w, Height: h, Background: background})
	})
	defer func() { _ = r.Close() }()

	if _, err := r.Tick(1); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	switch target := r.Target().(type) {
	case *surface.ImageSurface:
		save(target, *output)
	case *recording.Recorder:
		printTrace(target)
		img := surface.NewImageSurfaceWithOptions(surface.Options{
			Width:      doc.CanvasWidth(),
			Height:     doc.CanvasHeight(),
			Background: background,
		})
		if err := target.FinishRecording().Playback(img); err != nil {
			log.Fatalf("Failed to play back: %v", err)
		}
		save(img, *output)
	default:
		log.Printf("Backend %q rendered %T, nothing to save", *backend, target)
	}
}

func openDocument(cfg *config.Config, imagePath string) (*brush.Document, error) {
	color, err := brush.ParseHex(cfg.Text.Color)
	if err != nil {
		return nil, err
	}
	opts := []brush.DocumentOption{
		brush.WithTextDefaults(brush.TextDefaults{
			Text:   cfg.Text.Content,
			Family: cfg.Text.Family,
			Weight: cfg.Text.Weight,
			Style:  cfg.TextStyle(),
			Size:   cfg.Text.Size,
			Color:  color,
		}),
	}

	if imagePath == "" {
		return brush.NewDocument(cfg.Canvas.Width, cfg.Canvas.Height, opts...)
	}
	img, err := asset.LoadFile(asset.NewDecoder(), imagePath)
	if err != nil {
		return nil, err
	}
	return brush.NewDocumentFromImage(img, opts...)
}

func printTrace(rec *recording.Recorder) {
	for i, cmd := range rec.Commands() {
		switch c := cmd.(type) {
		case recording.DrawImageCommand:
			fmt.Printf("%3d %s %v opacity=%.2f\n", i, c.Type(), c.Rect, c.Opacity)
		case recording.DrawTextCommand:
			l := rec.Resources().GetLayout(c.Layout)
			fmt.Printf("%3d %s at (%g,%g) lines=%d %q\n", i, c.Type(), c.Pos.X, c.Pos.Y, len(l.Lines), l.Text)
		default:
			fmt.Printf("%3d %s\n", i, cmd.Type())
		}
	}
}

func save(s *surface.ImageSurface, path string) {
	if err := asset.SavePNG(path, s.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Document saved to %s (%dx%d)\n", path, s.Width(), s.Height())
}
