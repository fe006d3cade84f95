// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryBaseline(t *testing.T) {
	doc, rep := newTestDoc(t)
	h := doc.History()

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	require.NoError(t, h.WalkBack(), "undo on the baseline is a no-op")
	require.NoError(t, h.WalkForward(), "redo at the end is a no-op")
	assert.Equal(t, 0, h.Current())
	assert.Empty(t, rep.summaries)

	assert.ErrorIs(t, h.At(0).(*BaselineCommand).apply(doc), ErrBaseline)
	assert.ErrorIs(t, h.replay(h.At(0), h.At(0).revert), ErrBaseline)
	assert.Nil(t, h.At(-1))
	assert.Nil(t, h.At(1))
}

func TestHistoryTruncatesRedoTail(t *testing.T) {
	doc, _ := newTestDoc(t)
	h := doc.History()

	for range 3 {
		_, err := doc.NewBitmapLayer()
		require.NoError(t, err)
	}
	assert.Equal(t, 4, h.Len())

	require.NoError(t, doc.Undo())
	require.NoError(t, doc.Undo())
	assert.Equal(t, 1, h.Current())
	assert.True(t, h.CanRedo())

	_, err := doc.NewGroup()
	require.NoError(t, err)
	assert.Equal(t, 3, h.Len(), "entries after the current one are discarded")
	assert.Equal(t, 2, h.Current())
	assert.False(t, h.CanRedo())
	assert.Equal(t, "Create Layer Group 1", h.CurrentCommand().Name())
}

func TestHistoryRoundTrip(t *testing.T) {
	doc, _ := newTestDoc(t)
	h := doc.History()

	var states []string
	states = append(states, snapshot(doc))
	group, err := doc.NewGroup()
	require.NoError(t, err)
	states = append(states, snapshot(doc))
	_, err = doc.NewTextLayer()
	require.NoError(t, err)
	states = append(states, snapshot(doc))
	require.NoError(t, doc.MoveLayer(doc.Children()[0], group, nil))
	states = append(states, snapshot(doc))
	require.NoError(t, doc.RemoveLayer(group))
	states = append(states, snapshot(doc))

	assert.Equal(t, []string{
		"[Layer 1]",
		"[Layer 1 Group 1]",
		"[Layer 1 Group 1[Layer 2]]",
		"[Group 1[Layer 2 Layer 1]]",
		"[]",
	}, states)

	for i := len(states) - 2; i >= 0; i-- {
		require.NoError(t, doc.Undo())
		assert.Equal(t, states[i], snapshot(doc), "after undo to %d", i)
		assert.Equal(t, i, h.Current())
	}
	for i := 1; i < len(states); i++ {
		require.NoError(t, doc.Redo())
		assert.Equal(t, states[i], snapshot(doc), "after redo to %d", i)
	}
	assert.Equal(t, len(states), h.Len())
}

func TestHistoryReplayFailure(t *testing.T) {
	doc, rep := newTestDoc(t)
	h := doc.History()

	a := NewBitmapLayer("A", doc.Placement(), nil)
	require.NoError(t, doc.AddLayer(doc, a, nil))
	_, err := removeChild(doc, a)
	require.NoError(t, err)

	err = doc.Undo()
	require.ErrorIs(t, err, ErrNotChild)
	assert.Contains(t, err.Error(), `undo "Create Layer A"`)
	assert.Equal(t, 1, h.Current(), "index is unchanged after a failed undo")

	require.Len(t, rep.summaries, 1)
	assert.True(t, strings.HasPrefix(rep.summaries[0], "The operation ended because of an error:\n"))
	assert.Contains(t, rep.details[0], "*fmt.wrapError")
	assert.False(t, h.replaying)
}

func TestHistoryIgnoresRecordsDuringReplay(t *testing.T) {
	doc, _ := newTestDoc(t)
	h := doc.History()
	_, err := doc.NewBitmapLayer()
	require.NoError(t, err)

	doc.ObserveTree(func(c Change) {
		if c.Attr == AttrChildren {
			h.Record(&RenameCommand{Layer: doc, Old: "", New: "x"})
		}
	})

	require.NoError(t, doc.Undo())
	require.NoError(t, doc.Redo())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Current())

	h.Record(nil)
	assert.Equal(t, 2, h.Len())
}

func TestHistoryObserve(t *testing.T) {
	doc, _ := newTestDoc(t)
	h := doc.History()

	var attrs []Attr
	cancel := h.Observe(func(c Change) {
		assert.Same(t, h, c.Source)
		assert.Nil(t, c.Layer())
		attrs = append(attrs, c.Attr)
	})
	defer cancel()

	_, err := doc.NewBitmapLayer()
	require.NoError(t, err)
	require.NoError(t, doc.Undo())
	require.NoError(t, doc.Redo())

	assert.Equal(t, []Attr{AttrHistory, AttrCurrentIndex, AttrCurrentIndex, AttrCurrentIndex}, attrs)
}

func TestCommandNames(t *testing.T) {
	l := NewTextLayer("Title", RectWH(0, 0, 1, 1))
	tests := []struct {
		cmd  Command
		kind CommandKind
		name string
	}{
		{&BaselineCommand{Label: LabelCreated}, CmdBaseline, "Document Created"},
		{&InsertCommand{Layer: l}, CmdInsert, "Create Layer Title"},
		{&RemoveCommand{Layer: l}, CmdRemove, "Delete Layer Title"},
		{&MoveCommand{Layer: l}, CmdMove, "Move Layer Title"},
		{&RenameCommand{Layer: l, Old: "a", New: "b"}, CmdRename, "Rename Layer a to b"},
		{&OpacityCommand{Layer: l}, CmdOpacity, "Change Opacity of Title"},
		{&PlacementCommand{Layer: l}, CmdPlacement, "Transform Layer Title"},
		{&TextCommand{Layer: l}, CmdText, "Edit Text of Title"},
		{&CanvasCommand{NewWidth: 10, NewHeight: 20}, CmdCanvas, "Resize Canvas to 10x20"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.cmd.Kind())
		assert.Equal(t, tt.name, tt.cmd.Name())
	}
}

func TestHistoryLabelsFrozenOnRecord(t *testing.T) {
	doc, _ := newTestDoc(t)
	l, err := doc.NewBitmapLayer()
	require.NoError(t, err)
	require.NoError(t, doc.RenameLayer(l, "Title"))

	h := doc.History()
	require.Equal(t, 3, h.Len())
	assert.Equal(t, "Create Layer Layer 2", h.At(1).Name())
	assert.Equal(t, "Rename Layer Layer 2 to Title", h.At(2).Name())
}
