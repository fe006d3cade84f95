// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"slices"

	"github.com/gogpu/brush/surface"
)

// Rect is a rectangle in canvas coordinates.
type Rect = surface.Rect

// NewRect creates a rectangle from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return surface.NewRect(left, top, right, bottom)
}

// RectWH creates a rectangle from its origin and size.
func RectWH(x, y, w, h float64) Rect {
	return surface.RectWH(x, y, w, h)
}

// Kind identifies the concrete type of a Layer.
type Kind uint8

// Layer kinds.
const (
	KindDocument Kind = iota
	KindBackground
	KindBitmap
	KindText
	KindCombiner
)

var kindNames = [...]string{
	KindDocument:   "Document",
	KindBackground: "Background",
	KindBitmap:     "Bitmap",
	KindText:       "Text",
	KindCombiner:   "Combiner",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Layer is a node of the document tree.
//
// The set of implementations is closed: *BackgroundLayer, *BitmapLayer,
// *TextLayer, *CombinerLayer and *Document. Structural changes go through
// the owning Document; the setters below change a single attribute and
// notify observers, without recording history.
type Layer interface {
	// Kind returns the concrete layer kind.
	Kind() Kind

	Name() string
	SetName(name string)

	// Placement is the drawing rectangle in canvas coordinates.
	Placement() Rect
	SetPlacement(r Rect)

	// Opacity is in [0, 1]; SetOpacity clamps.
	Opacity() float64
	SetOpacity(opacity float64)

	BlendMode() BlendMode
	SetBlendMode(m BlendMode)

	// IsContainer reports whether new layers are added inside this layer
	// rather than after it.
	IsContainer() bool

	// CanToggleTransparencyLock reports whether SetTransparencyLocked is
	// supported.
	CanToggleTransparencyLock() bool
	TransparencyLocked() bool
	SetTransparencyLocked(locked bool) error

	IsExpanded() bool
	SetExpanded(expanded bool)
	IsSelected() bool
	SetSelected(selected bool)

	// Parent returns the parent layer, or nil for the root and detached
	// layers.
	Parent() Layer

	// Children returns a copy of the child list in paint order, back to
	// front.
	Children() []Layer
	HasChildren() bool

	// Observe registers fn for changes of this layer and returns a
	// function that unregisters it.
	Observe(fn func(Change)) (cancel func())

	base() *node
}

// node holds the state shared by every layer kind.
type node struct {
	self Layer

	name      string
	placement Rect
	opacity   float64
	blend     BlendMode
	locked    bool
	expanded  bool
	selected  bool

	parent   Layer
	children []Layer

	obs observers
}

func (n *node) init(self Layer, name string, placement Rect) {
	n.self = self
	n.name = name
	n.placement = placement
	n.opacity = 1
	n.blend = BlendNormal
	n.expanded = true
}

func (n *node) base() *node { return n }

// Name returns the layer name.
func (n *node) Name() string { return n.name }

// SetName renames the layer. Names are not required to be unique.
func (n *node) SetName(name string) {
	if name == n.name {
		return
	}
	n.name = name
	n.notify(AttrName)
}

// Placement returns the drawing rectangle.
func (n *node) Placement() Rect { return n.placement }

// SetPlacement moves or resizes the layer.
func (n *node) SetPlacement(r Rect) {
	if r == n.placement {
		return
	}
	n.placement = r
	n.notify(AttrPlacement)
}

// Opacity returns the layer opacity.
func (n *node) Opacity() float64 { return n.opacity }

// SetOpacity sets the opacity, clamped to [0, 1].
func (n *node) SetOpacity(opacity float64) {
	opacity = clamp01(opacity)
	if opacity == n.opacity {
		return
	}
	n.opacity = opacity
	n.notify(AttrOpacity)
}

// BlendMode returns the layer blend mode.
func (n *node) BlendMode() BlendMode { return n.blend }

// SetBlendMode sets the blend mode. Unknown modes are ignored.
func (n *node) SetBlendMode(m BlendMode) {
	if m == n.blend || !m.Valid() {
		return
	}
	n.blend = m
	n.notify(AttrBlendMode)
}

// IsContainer reports false; containers override it.
func (n *node) IsContainer() bool { return false }

// CanToggleTransparencyLock reports true; kinds without the capability
// override it.
func (n *node) CanToggleTransparencyLock() bool { return true }

// TransparencyLocked reports the transparency lock flag.
func (n *node) TransparencyLocked() bool { return n.locked }

// SetTransparencyLocked sets the transparency lock flag.
func (n *node) SetTransparencyLocked(locked bool) error {
	if locked == n.locked {
		return nil
	}
	n.locked = locked
	n.notify(AttrTransparencyLock)
	return nil
}

// IsExpanded reports whether the layer is expanded in a layer panel.
func (n *node) IsExpanded() bool { return n.expanded }

// SetExpanded sets the expanded flag.
func (n *node) SetExpanded(expanded bool) {
	if expanded == n.expanded {
		return
	}
	n.expanded = expanded
	n.notify(AttrExpanded)
}

// IsSelected reports the selection flag.
func (n *node) IsSelected() bool { return n.selected }

// SetSelected sets the selection flag. It does not clear other selections;
// use Document.Select for single selection.
func (n *node) SetSelected(selected bool) {
	if selected == n.selected {
		return
	}
	n.selected = selected
	n.notify(AttrSelected)
}

// Parent returns the parent layer.
func (n *node) Parent() Layer { return n.parent }

// Children returns a copy of the child list.
func (n *node) Children() []Layer { return slices.Clone(n.children) }

// HasChildren reports whether the layer has children.
func (n *node) HasChildren() bool { return len(n.children) > 0 }

// Observe registers fn for changes of this layer.
func (n *node) Observe(fn func(Change)) (cancel func()) {
	return n.obs.add(fn)
}

// notify delivers a change to this layer's observers and to the tree
// observers of the owning document.
func (n *node) notify(attr Attr) {
	c := Change{Source: n.self, Attr: attr}
	n.obs.notify(c)
	if d := documentOf(n.self); d != nil {
		d.tree.notify(c)
	}
}
