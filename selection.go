// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

// AddNewLayer inserts layer relative to the selection and makes it the only
// selected layer:
//   - a selected container receives layer as its last child,
//   - a selected non-container gets layer inserted right after it,
//   - with nothing selected, layer is appended to the document.
func (d *Document) AddNewLayer(layer Layer) error {
	parent, after := Layer(d), Layer(nil)
	if sel := d.Selected(); sel != nil {
		if sel.IsContainer() {
			parent = sel
		} else {
			parent, after = sel.Parent(), sel
		}
	}
	if err := d.AddLayer(parent, layer, after); err != nil {
		return err
	}
	d.Select(layer)
	return nil
}

// Selected returns the first selected layer in pre-order, or nil.
func (d *Document) Selected() Layer {
	for l := range d.All() {
		if l.IsSelected() {
			return l
		}
	}
	return nil
}

// Select makes layer the only selected layer. A nil layer clears the
// selection.
func (d *Document) Select(layer Layer) {
	for l := range d.All() {
		if l != layer {
			l.SetSelected(false)
		}
	}
	if layer != nil && documentOf(layer) == d {
		layer.SetSelected(true)
	}
}

// ClearSelection deselects every layer.
func (d *Document) ClearSelection() {
	d.Select(nil)
}
