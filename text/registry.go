// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Built-in family names.
const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoSmallcaps = "Go Smallcaps"

	// DefaultFamily is the fallback family of a new Registry.
	DefaultFamily = FamilyGo
)

// faceEntry is one registered face. Font data is parsed on first use.
type faceEntry struct {
	weight Weight
	style  Style
	data   []byte
	font   *Font
}

type family struct {
	name  string
	faces []*faceEntry
}

// Registry maps family names to font faces and picks the closest face for
// a requested weight and style. Family names are matched case-insensitively.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.Mutex
	families map[string]*family
	fallback string
}

// NewRegistry creates a registry holding the Go font families
// ("Go", "Go Mono", "Go Smallcaps") with "Go" as the fallback.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	builtin := []struct {
		family string
		weight Weight
		style  Style
		data   []byte
	}{
		{FamilyGo, WeightNormal, StyleNormal, goregular.TTF},
		{FamilyGo, WeightNormal, StyleItalic, goitalic.TTF},
		{FamilyGo, WeightMedium, StyleNormal, gomedium.TTF},
		{FamilyGo, WeightMedium, StyleItalic, gomediumitalic.TTF},
		{FamilyGo, WeightBold, StyleNormal, gobold.TTF},
		{FamilyGo, WeightBold, StyleItalic, gobolditalic.TTF},
		{FamilyGoMono, WeightNormal, StyleNormal, gomono.TTF},
		{FamilyGoMono, WeightNormal, StyleItalic, gomonoitalic.TTF},
		{FamilyGoMono, WeightBold, StyleNormal, gomonobold.TTF},
		{FamilyGoMono, WeightBold, StyleItalic, gomonobolditalic.TTF},
		{FamilyGoSmallcaps, WeightNormal, StyleNormal, gosmallcaps.TTF},
		{FamilyGoSmallcaps, WeightNormal, StyleItalic, gosmallcapsitalic.TTF},
	}
	for _, b := range builtin {
		r.add(b.family, &faceEntry{weight: b.weight, style: b.style, data: b.data})
	}
	r.fallback = DefaultFamily
	return r
}

// NewEmptyRegistry creates a registry with no families and no fallback.
func NewEmptyRegistry() *Registry {
	return &Registry{families: make(map[string]*family)}
}

// Register parses data and adds it to family as a face of the given weight
// and style. Parsing happens immediately so bad data fails here rather than
// at draw time.
func (r *Registry) Register(familyName string, weight Weight, style Style, data []byte) error {
	f, err := NewFont(data, familyName, weight, style)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.add(familyName, &faceEntry{weight: weight, style: style, data: f.data, font: f})
	return nil
}

func (r *Registry) add(name string, e *faceEntry) {
	key := strings.ToLower(name)
	fam, ok := r.families[key]
	if !ok {
		fam = &family{name: name}
		r.families[key] = fam
	}
	fam.faces = append(fam.faces, e)
}

// SetFallback sets the family used when a requested family is unknown.
func (r *Registry) SetFallback(familyName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = familyName
}

// Families returns the registered family names in sorted order.
func (r *Registry) Families() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.families))
	for _, fam := range r.families {
		names = append(names, fam.name)
	}
	slices.Sort(names)
	return names
}

// Has reports whether familyName is registered.
func (r *Registry) Has(familyName string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.families[strings.ToLower(familyName)]
	return ok
}

// Resolve returns the face of familyName closest to weight and style.
//
// Faces with the requested slant are preferred; among them the face with
// the nearest weight wins, and a tie goes to the heavier face. Unknown
// families resolve against the fallback family.
func (r *Registry) Resolve(familyName string, weight Weight, style Style) (*Font, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fam, ok := r.families[strings.ToLower(familyName)]
	if !ok {
		fam, ok = r.families[strings.ToLower(r.fallback)]
		if !ok {
			return nil, fmt.Errorf("%w: family %q not registered", ErrNoFont, familyName)
		}
		Logger().Debug("text: font family fallback",
			slog.String("requested", familyName),
			slog.String("fallback", fam.name))
	}

	e := closestFace(fam.faces, weight, style)
	if e == nil {
		return nil, fmt.Errorf("%w: family %q has no faces", ErrNoFont, fam.name)
	}
	if e.font == nil {
		f, err := NewFont(e.data, fam.name, e.weight, e.style)
		if err != nil {
			return nil, err
		}
		e.font = f
	}
	return e.font, nil
}

// closestFace picks the face nearest to weight among those matching the
// slant of style, or among all faces when none match.
func closestFace(faces []*faceEntry, weight Weight, style Style) *faceEntry {
	candidates := make([]*faceEntry, 0, len(faces))
	for _, e := range faces {
		if e.style.slanted() == style.slanted() {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		candidates = faces
	}

	var best *faceEntry
	bestDiff := 0
	for _, e := range candidates {
		diff := absInt(int(e.weight) - int(weight))
		if best == nil || diff < bestDiff || (diff == bestDiff && e.weight > best.weight) {
			best, bestDiff = e, diff
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
