// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNewLayerNothingSelected(t *testing.T) {
	doc, _ := newTestDoc(t)
	require.Nil(t, doc.Selected())

	l, err := doc.NewBitmapLayer()
	require.NoError(t, err)
	assert.Equal(t, "[Layer 1 Layer 2]", snapshot(doc))
	assert.Equal(t, Layer(l), doc.Selected())
}

func TestAddNewLayerContainerSelected(t *testing.T) {
	doc, _ := newTestDoc(t)
	group, err := doc.NewGroup()
	require.NoError(t, err)
	require.NoError(t, doc.AddLayer(group, NewBitmapLayer("inner", doc.Placement(), nil), nil))
	doc.Select(group)

	l, err := doc.NewTextLayer()
	require.NoError(t, err)
	assert.Equal(t, "[Layer 1 Group 1[inner Layer 2]]", snapshot(doc))
	assert.Equal(t, Layer(group), l.Parent())
	assert.False(t, group.IsSelected())
	assert.True(t, l.IsSelected())
}

func TestAddNewLayerAfterSelected(t *testing.T) {
	doc, _ := newTestDoc(t)
	group, err := doc.NewGroup()
	require.NoError(t, err)
	a := NewBitmapLayer("a", doc.Placement(), nil)
	b := NewBitmapLayer("b", doc.Placement(), nil)
	require.NoError(t, doc.AddLayer(group, a, nil))
	require.NoError(t, doc.AddLayer(group, b, nil))
	doc.Select(a)

	l, err := doc.NewBitmapLayer()
	require.NoError(t, err)
	assert.Equal(t, "[Layer 1 Group 1[a Layer 2 b]]", snapshot(doc))
	assert.Equal(t, Layer(l), doc.Selected())
}

func TestSelect(t *testing.T) {
	doc, _ := newTestDoc(t)
	first := doc.Children()[0]
	second, err := doc.NewBitmapLayer()
	require.NoError(t, err)

	first.SetSelected(true)
	assert.Equal(t, first, doc.Selected(), "first selected layer in pre-order")

	doc.Select(second)
	assert.False(t, first.IsSelected())
	assert.True(t, second.IsSelected())

	other, _ := newTestDoc(t)
	doc.Select(other.Children()[0])
	assert.Nil(t, doc.Selected(), "foreign layers are not selected")
	assert.False(t, other.Children()[0].IsSelected())

	second.SetSelected(true)
	doc.ClearSelection()
	assert.Nil(t, doc.Selected())
}

func TestRedoDoesNotDuplicateSelection(t *testing.T) {
	doc, _ := newTestDoc(t)
	first := doc.Children()[0]
	l, err := doc.NewBitmapLayer()
	require.NoError(t, err)
	require.True(t, l.IsSelected())

	require.NoError(t, doc.Undo())
	assert.False(t, l.IsSelected(), "undone layer is deselected")
	doc.Select(first)
	require.NoError(t, doc.Redo())

	selected := 0
	for c := range doc.All() {
		if c.IsSelected() {
			selected++
		}
	}
	assert.Equal(t, 1, selected)
	assert.Equal(t, first, doc.Selected())
	assert.False(t, l.IsSelected())

	_, err = doc.NewGroup()
	require.NoError(t, err)
	assert.Equal(t, "[Layer 1 Group 1 Layer 2]", snapshot(doc))
}

func TestRemoveLayerClearsSubtreeSelection(t *testing.T) {
	doc, _ := newTestDoc(t)
	group, err := doc.NewGroup()
	require.NoError(t, err)
	inner := NewBitmapLayer("inner", doc.Placement(), nil)
	require.NoError(t, doc.AddLayer(group, inner, nil))
	doc.Select(inner)

	require.NoError(t, doc.RemoveLayer(group))
	assert.False(t, inner.IsSelected())
	assert.Nil(t, doc.Selected())

	require.NoError(t, doc.Undo())
	assert.Nil(t, doc.Selected(), "restored subtree comes back unselected")
}
