// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/brush/asset"
	"github.com/gogpu/brush/text"
)

// Baseline labels.
const (
	LabelCreated = "Document Created"
	LabelLoaded  = "Document Loaded"
)

// Document is the root of a layer tree. It owns the canvas size, the
// command history and the naming counters.
//
// A Document is not safe for concurrent use.
type Document struct {
	node

	width, height int
	history       *History

	reporter Reporter
	fonts    *text.Registry
	textDefs TextDefaults

	layerPrefix, groupPrefix string
	lastLayer, lastGroup     int

	// tree receives every change in the document.
	tree observers
}

func newDocument(width, height int, baseline string, opts []DocumentOption) (*Document, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	o := resolveOptions(opts)

	d := &Document{
		width:       width,
		height:      height,
		reporter:    o.reporter,
		fonts:       o.fonts,
		textDefs:    o.text,
		layerPrefix: o.layerPrefix,
		groupPrefix: o.groupPrefix,
	}
	d.init(d, "", RectWH(0, 0, float64(width), float64(height)))
	d.history = newHistory(d, baseline)
	return d, nil
}

// NewDocument creates a document with one text layer covering the canvas.
// The history holds only the "Document Created" baseline.
func NewDocument(width, height int, opts ...DocumentOption) (*Document, error) {
	d, err := newDocument(width, height, LabelCreated, opts)
	if err != nil {
		return nil, err
	}
	insertChild(d, d.createTextLayer(), 0)

	Logger().Info("brush: document created",
		slog.Int("width", width),
		slog.Int("height", height))
	return d, nil
}

// NewDocumentFromImage creates a document sized to img with a single bitmap
// layer holding it. The history holds only the "Document Loaded" baseline.
func NewDocumentFromImage(img *asset.Image, opts ...DocumentOption) (*Document, error) {
	if img == nil || img.Image == nil {
		return nil, ErrNilImage
	}
	d, err := newDocument(img.Width, img.Height, LabelLoaded, opts)
	if err != nil {
		return nil, err
	}
	insertChild(d, NewBitmapLayer(d.NextLayerName(), d.placement, img.Image), 0)

	Logger().Info("brush: document loaded",
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
		slog.String("format", img.Format))
	return d, nil
}

// LoadDocument decodes data with loader and creates a document from it.
// A decode failure is presented through the configured reporter and
// returned.
func LoadDocument(data []byte, loader asset.Loader, opts ...DocumentOption) (*Document, error) {
	if loader == nil {
		loader = asset.NewDecoder()
	}
	img, err := loader.Load(data)
	if err != nil {
		err = fmt.Errorf("brush: load document: %w", err)
		Present(resolveOptions(opts).reporter, err)
		return nil, err
	}
	return NewDocumentFromImage(img, opts...)
}

// Kind returns KindDocument.
func (d *Document) Kind() Kind { return KindDocument }

// IsContainer reports true.
func (d *Document) IsContainer() bool { return true }

// CanToggleTransparencyLock reports false.
func (d *Document) CanToggleTransparencyLock() bool { return false }

// SetTransparencyLocked returns ErrUnsupported.
func (d *Document) SetTransparencyLocked(bool) error { return ErrUnsupported }

// CanvasWidth returns the canvas width in pixels.
func (d *Document) CanvasWidth() int { return d.width }

// CanvasHeight returns the canvas height in pixels.
func (d *Document) CanvasHeight() int { return d.height }

// History returns the document history.
func (d *Document) History() *History { return d.history }

// Fonts returns the font registry used by text layers.
func (d *Document) Fonts() *text.Registry { return d.fonts }

// Reporter returns the configured reporter, or DefaultReporter.
func (d *Document) Reporter() Reporter {
	if d.reporter == nil {
		return DefaultReporter()
	}
	return d.reporter
}

// ObserveTree registers fn for every change in the document: layer
// attributes, tree structure, canvas size and history.
func (d *Document) ObserveTree(fn func(Change)) (cancel func()) {
	return d.tree.add(fn)
}

// Undo reverts the last applied command.
func (d *Document) Undo() error { return d.history.WalkBack() }

// Redo applies the next command.
func (d *Document) Redo() error { return d.history.WalkForward() }

// checkInsert validates inserting layer as a child of parent.
func (d *Document) checkInsert(parent, layer Layer) error {
	switch {
	case parent == nil || layer == nil:
		return ErrNilLayer
	case layer.Kind() == KindDocument:
		return ErrRootLayer
	case isAncestor(layer, parent):
		return ErrCycle
	case layer.Parent() != nil:
		return ErrAttached
	case rootOf(parent) != Layer(d):
		return ErrForeignLayer
	}
	return nil
}

// AddLayer inserts layer into parent directly after the child after, or
// appends it when after is nil, and records the insertion.
//
// Any layer of the document may be a parent; grouping semantics are left
// to IsContainer-aware callers such as AddNewLayer. On error the tree is
// unchanged.
func (d *Document) AddLayer(parent, layer, after Layer) error {
	if err := d.checkInsert(parent, layer); err != nil {
		return err
	}
	index := len(parent.base().children)
	if after != nil {
		i := indexOf(parent, after)
		if i < 0 {
			return ErrNotChild
		}
		index = i + 1
	}

	insertChild(parent, layer, index)
	d.history.Record(&InsertCommand{Parent: parent, Layer: layer, Index: index})
	return nil
}

// RemoveLayer detaches layer from its parent and records the removal.
func (d *Document) RemoveLayer(layer Layer) error {
	switch {
	case layer == nil:
		return ErrNilLayer
	case layer.Kind() == KindDocument:
		return ErrRootLayer
	case layer.Parent() == nil:
		return ErrNotChild
	case documentOf(layer) != d:
		return ErrForeignLayer
	}

	parent := layer.Parent()
	index, err := detach(parent, layer)
	if err != nil {
		return err
	}
	d.history.Record(&RemoveCommand{Parent: parent, Layer: layer, Index: index})
	return nil
}

// MoveLayer moves layer into parent directly after the child after, or to
// the end when after is nil, and records the move.
func (d *Document) MoveLayer(layer, parent, after Layer) error {
	switch {
	case layer == nil || parent == nil:
		return ErrNilLayer
	case layer.Kind() == KindDocument:
		return ErrRootLayer
	case layer.Parent() == nil:
		return ErrNotChild
	case documentOf(layer) != d || rootOf(parent) != Layer(d):
		return ErrForeignLayer
	case isAncestor(layer, parent):
		return ErrCycle
	case after == layer:
		return ErrNotChild
	}
	if after != nil && indexOf(parent, after) < 0 {
		return ErrNotChild
	}

	from := layer.Parent()
	fromIndex := indexOf(from, layer)
	if _, err := removeChild(from, layer); err != nil {
		return err
	}
	toIndex := len(parent.base().children)
	if after != nil {
		toIndex = indexOf(parent, after) + 1
	}
	insertChild(parent, layer, toIndex)

	d.history.Record(&MoveCommand{
		Layer:     layer,
		From:      from,
		FromIndex: fromIndex,
		To:        parent,
		ToIndex:   toIndex,
	})
	return nil
}

// relocate moves an attached layer from one parent to another index.
func (d *Document) relocate(layer, from, to Layer, index int) error {
	if indexOf(from, layer) < 0 {
		return ErrNotChild
	}
	if rootOf(to) != Layer(d) {
		return ErrForeignLayer
	}
	if isAncestor(layer, to) {
		return ErrCycle
	}
	if _, err := removeChild(from, layer); err != nil {
		return err
	}
	if index < 0 || index > len(to.base().children) {
		index = len(to.base().children)
	}
	insertChild(to, layer, index)
	return nil
}

// checkOwned validates that layer is attached to d.
func (d *Document) checkOwned(layer Layer) error {
	switch {
	case layer == nil:
		return ErrNilLayer
	case documentOf(layer) != d:
		return ErrForeignLayer
	}
	return nil
}

// RenameLayer renames layer and records the change.
func (d *Document) RenameLayer(layer Layer, name string) error {
	if err := d.checkOwned(layer); err != nil {
		return err
	}
	old := layer.Name()
	if old == name {
		return nil
	}
	layer.SetName(name)
	d.history.Record(&RenameCommand{Layer: layer, Old: old, New: name})
	return nil
}

// SetLayerOpacity sets the opacity of layer and records the change.
func (d *Document) SetLayerOpacity(layer Layer, opacity float64) error {
	if err := d.checkOwned(layer); err != nil {
		return err
	}
	old := layer.Opacity()
	layer.SetOpacity(opacity)
	if layer.Opacity() == old {
		return nil
	}
	d.history.Record(&OpacityCommand{Layer: layer, Old: old, New: layer.Opacity()})
	return nil
}

// SetLayerPlacement sets the placement of layer and records the change.
func (d *Document) SetLayerPlacement(layer Layer, r Rect) error {
	if err := d.checkOwned(layer); err != nil {
		return err
	}
	if layer == Layer(d) {
		return ErrUnsupported
	}
	old := layer.Placement()
	if old == r {
		return nil
	}
	layer.SetPlacement(r)
	d.history.Record(&PlacementCommand{Layer: layer, Old: old, New: r})
	return nil
}

// SetLayerText sets the content of a text layer and records the change.
func (d *Document) SetLayerText(layer *TextLayer, s string) error {
	if layer == nil {
		return ErrNilLayer
	}
	if err := d.checkOwned(layer); err != nil {
		return err
	}
	old := layer.Text()
	if old == s {
		return nil
	}
	layer.SetText(s)
	d.history.Record(&TextCommand{Layer: layer, Old: old, New: s})
	return nil
}

// SetCanvasSize resizes the canvas and records the change. Layer
// placements are not rescaled.
func (d *Document) SetCanvasSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == d.width && height == d.height {
		return nil
	}
	cmd := &CanvasCommand{
		OldWidth:  d.width,
		OldHeight: d.height,
		NewWidth:  width,
		NewHeight: height,
	}
	if err := d.resize(width, height); err != nil {
		return err
	}
	d.history.Record(cmd)
	return nil
}

// resize changes the canvas size and the root placement.
func (d *Document) resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	d.width, d.height = width, height
	d.placement = RectWH(0, 0, float64(width), float64(height))
	d.notify(AttrCanvasSize)
	return nil
}
