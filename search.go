// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"iter"

	"github.com/sahilm/fuzzy"
)

// FindLayer returns the first layer named exactly name. The document's own
// children are checked first, then each container child is searched
// recursively in order.
func (d *Document) FindLayer(name string) (Layer, bool) {
	l := findLayer(d, name)
	return l, l != nil
}

func findLayer(parent Layer, name string) Layer {
	children := parent.base().children
	for _, l := range children {
		if l.Name() == name {
			return l
		}
	}
	for _, l := range children {
		if !l.IsContainer() {
			continue
		}
		if found := findLayer(l, name); found != nil {
			return found
		}
	}
	return nil
}

// All iterates over every layer below the document in pre-order, which is
// also paint order. The document itself is not included.
func (d *Document) All() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for _, c := range d.children {
			if !walk(c, yield) {
				return
			}
		}
	}
}

// Len returns the number of layers below the document.
func (d *Document) Len() int {
	n := 0
	for range d.All() {
		n++
	}
	return n
}

// layerNames adapts a layer slice to fuzzy.Source.
type layerNames []Layer

func (s layerNames) String(i int) string { return s[i].Name() }
func (s layerNames) Len() int            { return len(s) }

// FindLayers returns the layers whose names fuzzy-match pattern, best
// match first. An empty pattern returns nil.
func (d *Document) FindLayers(pattern string) []Layer {
	if pattern == "" {
		return nil
	}
	var all layerNames
	for l := range d.All() {
		all = append(all, l)
	}
	matches := fuzzy.FindFrom(pattern, all)
	out := make([]Layer, len(matches))
	for i, m := range matches {
		out[i] = all[m.Index]
	}
	return out
}
