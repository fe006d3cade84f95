// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"fmt"
)

// CommandKind identifies the type of a Command.
type CommandKind uint8

// Command kinds.
const (
	CmdBaseline CommandKind = iota
	CmdInsert
	CmdRemove
	CmdMove
	CmdRename
	CmdOpacity
	CmdPlacement
	CmdText
	CmdCanvas
)

var commandKindNames = [...]string{
	CmdBaseline:  "Baseline",
	CmdInsert:    "Insert",
	CmdRemove:    "Remove",
	CmdMove:      "Move",
	CmdRename:    "Rename",
	CmdOpacity:   "Opacity",
	CmdPlacement: "Placement",
	CmdText:      "Text",
	CmdCanvas:    "Canvas",
}

// String returns the kind name.
func (k CommandKind) String() string {
	if int(k) < len(commandKindNames) {
		return commandKindNames[k]
	}
	return "Unknown"
}

// Command is one undoable document edit.
//
// Commands are values describing the edit; apply and revert perform it on
// the document without recording anything.
type Command interface {
	// Kind returns the command kind.
	Kind() CommandKind

	// Name returns the label shown in a history list. Once recorded, the
	// label no longer follows later renames of the layer.
	Name() string

	apply(d *Document) error
	revert(d *Document) error
	freeze(name string)
}

// label holds the name a command was recorded under.
type label struct {
	frozen string
	set    bool
}

func (l *label) freeze(name string) { l.frozen, l.set = name, true }

func (l *label) or(live string) string {
	if l.set {
		return l.frozen
	}
	return live
}

// BaselineCommand is the first history entry. It is never applied or
// reverted.
type BaselineCommand struct {
	label

	Label string
}

func (c *BaselineCommand) Kind() CommandKind { return CmdBaseline }
func (c *BaselineCommand) Name() string      { return c.or(c.Label) }

func (c *BaselineCommand) apply(*Document) error  { return ErrBaseline }
func (c *BaselineCommand) revert(*Document) error { return ErrBaseline }

// InsertCommand inserts Layer into Parent at Index.
type InsertCommand struct {
	label

	Parent Layer
	Layer  Layer
	Index  int
}

func (c *InsertCommand) Kind() CommandKind { return CmdInsert }
func (c *InsertCommand) Name() string      { return c.or("Create Layer " + c.Layer.Name()) }

func (c *InsertCommand) apply(d *Document) error {
	if err := d.checkInsert(c.Parent, c.Layer); err != nil {
		return err
	}
	if c.Index < 0 || c.Index > len(c.Parent.base().children) {
		return fmt.Errorf("%w: index %d out of range", ErrNotChild, c.Index)
	}
	insertChild(c.Parent, c.Layer, c.Index)
	return nil
}

func (c *InsertCommand) revert(*Document) error {
	_, err := detach(c.Parent, c.Layer)
	return err
}

// RemoveCommand removes Layer from Parent, where it was at Index.
type RemoveCommand struct {
	label

	Parent Layer
	Layer  Layer
	Index  int
}

func (c *RemoveCommand) Kind() CommandKind { return CmdRemove }
func (c *RemoveCommand) Name() string      { return c.or("Delete Layer " + c.Layer.Name()) }

func (c *RemoveCommand) apply(*Document) error {
	_, err := detach(c.Parent, c.Layer)
	return err
}

func (c *RemoveCommand) revert(d *Document) error {
	return (&InsertCommand{Parent: c.Parent, Layer: c.Layer, Index: c.Index}).apply(d)
}

// MoveCommand moves Layer from (From, FromIndex) to (To, ToIndex).
// ToIndex is the index after the layer left From.
type MoveCommand struct {
	label

	Layer     Layer
	From      Layer
	FromIndex int
	To        Layer
	ToIndex   int
}

func (c *MoveCommand) Kind() CommandKind { return CmdMove }
func (c *MoveCommand) Name() string      { return c.or("Move Layer " + c.Layer.Name()) }

func (c *MoveCommand) apply(d *Document) error {
	return d.relocate(c.Layer, c.From, c.To, c.ToIndex)
}

func (c *MoveCommand) revert(d *Document) error {
	return d.relocate(c.Layer, c.To, c.From, c.FromIndex)
}

// RenameCommand changes the name of Layer.
type RenameCommand struct {
	label

	Layer    Layer
	Old, New string
}

func (c *RenameCommand) Kind() CommandKind { return CmdRename }
func (c *RenameCommand) Name() string {
	return c.or(fmt.Sprintf("Rename Layer %s to %s", c.Old, c.New))
}

func (c *RenameCommand) apply(*Document) error  { c.Layer.SetName(c.New); return nil }
func (c *RenameCommand) revert(*Document) error { c.Layer.SetName(c.Old); return nil }

// OpacityCommand changes the opacity of Layer.
type OpacityCommand struct {
	label

	Layer    Layer
	Old, New float64
}

func (c *OpacityCommand) Kind() CommandKind { return CmdOpacity }
func (c *OpacityCommand) Name() string      { return c.or("Change Opacity of " + c.Layer.Name()) }

func (c *OpacityCommand) apply(*Document) error  { c.Layer.SetOpacity(c.New); return nil }
func (c *OpacityCommand) revert(*Document) error { c.Layer.SetOpacity(c.Old); return nil }

// PlacementCommand changes the placement of Layer.
type PlacementCommand struct {
	label

	Layer    Layer
	Old, New Rect
}

func (c *PlacementCommand) Kind() CommandKind { return CmdPlacement }
func (c *PlacementCommand) Name() string      { return c.or("Transform Layer " + c.Layer.Name()) }

func (c *PlacementCommand) apply(*Document) error  { c.Layer.SetPlacement(c.New); return nil }
func (c *PlacementCommand) revert(*Document) error { c.Layer.SetPlacement(c.Old); return nil }

// TextCommand changes the content of a text layer.
type TextCommand struct {
	label

	Layer    *TextLayer
	Old, New string
}

func (c *TextCommand) Kind() CommandKind { return CmdText }
func (c *TextCommand) Name() string      { return c.or("Edit Text of " + c.Layer.Name()) }

func (c *TextCommand) apply(*Document) error  { c.Layer.SetText(c.New); return nil }
func (c *TextCommand) revert(*Document) error { c.Layer.SetText(c.Old); return nil }

// CanvasCommand resizes the canvas.
type CanvasCommand struct {
	label

	OldWidth, OldHeight int
	NewWidth, NewHeight int
}

func (c *CanvasCommand) Kind() CommandKind { return CmdCanvas }
func (c *CanvasCommand) Name() string {
	return c.or(fmt.Sprintf("Resize Canvas to %dx%d", c.NewWidth, c.NewHeight))
}

func (c *CanvasCommand) apply(d *Document) error {
	return d.resize(c.NewWidth, c.NewHeight)
}

func (c *CanvasCommand) revert(d *Document) error {
	return d.resize(c.OldWidth, c.OldHeight)
}
