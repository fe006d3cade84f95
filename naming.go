// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import "strconv"

// NextLayerName returns "Layer n" for the next n not reported by FindLayer.
// The counter only increases, so names are never reused within a document
// even after the named layer was removed.
func (d *Document) NextLayerName() string {
	return d.nextName(d.layerPrefix, &d.lastLayer)
}

// NextGroupName is NextLayerName for groups ("Group n").
func (d *Document) NextGroupName() string {
	return d.nextName(d.groupPrefix, &d.lastGroup)
}

func (d *Document) nextName(prefix string, counter *int) string {
	for {
		*counter++
		name := prefix + " " + strconv.Itoa(*counter)
		if _, taken := d.FindLayer(name); !taken {
			return name
		}
	}
}

// createTextLayer returns a detached text layer with a synthesized name,
// the document defaults and the canvas placement.
func (d *Document) createTextLayer() *TextLayer {
	return newTextLayer(d.NextLayerName(), d.placement, d.textDefs)
}

// NewTextLayer creates a text layer covering the canvas and adds it with
// AddNewLayer.
func (d *Document) NewTextLayer() (*TextLayer, error) {
	l := d.createTextLayer()
	if err := d.AddNewLayer(l); err != nil {
		return nil, err
	}
	return l, nil
}

// NewBitmapLayer creates an empty bitmap layer covering the canvas and
// adds it with AddNewLayer.
func (d *Document) NewBitmapLayer() (*BitmapLayer, error) {
	l := NewBitmapLayer(d.NextLayerName(), d.placement, nil)
	if err := d.AddNewLayer(l); err != nil {
		return nil, err
	}
	return l, nil
}

// NewGroup creates an empty group covering the canvas and adds it with
// AddNewLayer.
func (d *Document) NewGroup() (*CombinerLayer, error) {
	l := NewCombinerLayer(d.NextGroupName(), d.placement)
	if err := d.AddNewLayer(l); err != nil {
		return nil, err
	}
	return l, nil
}
