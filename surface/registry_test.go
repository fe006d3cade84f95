// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"slices"
	"testing"
)

func imageFactory(opts Options) (Surface, error) {
	return NewImageSurface(opts.Width, opts.Height), nil
}

func backendNames(list []Backend) []string {
	names := make([]string, len(list))
	for i, b := range list {
		names[i] = b.Name
	}
	return names
}

func TestRegistry_PriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 1, imageFactory)
	r.Register("high", 100, imageFactory)
	r.Register("mid", 50, imageFactory)
	r.Register("also-mid", 50, imageFactory)

	want := []string{"high", "also-mid", "mid", "low"}
	if got := backendNames(r.Backends()); !slices.Equal(got, want) {
		t.Errorf("Backends() = %v, want %v", got, want)
	}

	r.Unregister("mid")
	r.Unregister("also-mid")
	if got, want := backendNames(r.Backends()), []string{"high", "low"}; !slices.Equal(got, want) {
		t.Errorf("Backends() after Unregister = %v, want %v", got, want)
	}
}

func TestRegistry_OpenFallsThrough(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("no device")
	r.Register("gpu", 100, func(Options) (Surface, error) { return nil, boom })
	r.Register("image", 10, imageFactory)

	s, err := r.Open("", Options{Width: 8, Height: 6})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()
	if s.Width() != 8 || s.Height() != 6 {
		t.Errorf("surface is %dx%d, want 8x6", s.Width(), s.Height())
	}

	r.Unregister("image")
	if _, err := r.Open("", Options{Width: 1, Height: 1}); !errors.Is(err, boom) {
		t.Errorf("Open() error = %v, want %v", err, boom)
	}
}

func TestRegistry_Empty(t *testing.T) {
	if _, err := NewRegistry().Open("", Options{Width: 1, Height: 1}); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("Open() error = %v, want %v", err, ErrNoBackendAvailable)
	}
}

func TestOpen(t *testing.T) {
	s, err := Open("image", Options{Width: 16, Height: 9})
	if err != nil {
		t.Fatalf("Open(image) error = %v", err)
	}
	defer s.Close()
	if _, ok := s.(*ImageSurface); !ok {
		t.Errorf("Open(image) = %T, want *ImageSurface", s)
	}
	if s.Width() != 16 || s.Height() != 9 {
		t.Errorf("surface is %dx%d, want 16x9", s.Width(), s.Height())
	}

	if _, err := Open("vulkan", Options{Width: 1, Height: 1}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(vulkan) error = %v, want %v", err, ErrUnknownBackend)
	}

	if !slices.Contains(backendNames(Backends()), "image") {
		t.Errorf("Backends() = %v, want it to include image", backendNames(Backends()))
	}
}
