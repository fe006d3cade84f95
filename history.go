// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package brush

import (
	"fmt"
	"log/slog"
	"slices"
)

// History is a linear undo/redo log.
//
// Entry 0 is always a baseline. Current is the index of the last applied
// command, so 0 <= Current() < Len(). Recording after an undo discards
// every entry after Current.
type History struct {
	doc     *Document
	entries []Command
	current int

	// replaying is set while a command is applied or reverted.
	replaying bool

	obs observers
}

func newHistory(doc *Document, baseline string) *History {
	return &History{
		doc:     doc,
		entries: []Command{&BaselineCommand{Label: baseline}},
	}
}

// Len returns the number of entries, including the baseline.
func (h *History) Len() int { return len(h.entries) }

// Current returns the index of the last applied command.
func (h *History) Current() int { return h.current }

// At returns entry i, or nil when i is out of range.
func (h *History) At(i int) Command {
	if i < 0 || i >= len(h.entries) {
		return nil
	}
	return h.entries[i]
}

// Entries returns a copy of all entries.
func (h *History) Entries() []Command { return slices.Clone(h.entries) }

// CurrentCommand returns the last applied command.
func (h *History) CurrentCommand() Command { return h.entries[h.current] }

// CanUndo reports whether WalkBack would revert a command.
func (h *History) CanUndo() bool {
	return h.current > 0 && h.entries[h.current].Kind() != CmdBaseline
}

// CanRedo reports whether WalkForward would apply a command.
func (h *History) CanRedo() bool { return h.current < len(h.entries)-1 }

// Record appends an already applied command, discarding the redo tail.
// Commands recorded while the history is replaying are ignored.
func (h *History) Record(cmd Command) {
	if cmd == nil || h.replaying {
		return
	}
	cmd.freeze(cmd.Name())
	h.entries = append(slices.Delete(h.entries, h.current+1, len(h.entries)), cmd)
	h.current = len(h.entries) - 1
	h.notify(AttrHistory)
	h.notify(AttrCurrentIndex)
}

// WalkBack reverts the current command and moves one entry back.
// It does nothing on the baseline. If the revert fails, the index stays,
// the error is presented through the document's reporter and returned.
func (h *History) WalkBack() error {
	if !h.CanUndo() {
		return nil
	}
	cmd := h.entries[h.current]
	if err := h.replay(cmd, cmd.revert); err != nil {
		return h.fail("undo", cmd, err)
	}
	h.current--
	h.notify(AttrCurrentIndex)
	return nil
}

// WalkForward applies the next command and moves one entry forward.
// It does nothing at the last entry. Failures are handled as in WalkBack.
func (h *History) WalkForward() error {
	if !h.CanRedo() {
		return nil
	}
	cmd := h.entries[h.current+1]
	if err := h.replay(cmd, cmd.apply); err != nil {
		return h.fail("redo", cmd, err)
	}
	h.current++
	h.notify(AttrCurrentIndex)
	return nil
}

func (h *History) replay(cmd Command, fn func(*Document) error) error {
	if cmd.Kind() == CmdBaseline {
		return ErrBaseline
	}
	h.replaying = true
	defer func() { h.replaying = false }()
	return fn(h.doc)
}

func (h *History) fail(op string, cmd Command, err error) error {
	err = fmt.Errorf("brush: %s %q: %w", op, cmd.Name(), err)
	Logger().Warn("brush: history replay failed",
		slog.String("op", op),
		slog.String("command", cmd.Name()),
		slog.Int("index", h.current),
		slog.Any("error", err))
	Present(h.doc.reporter, err)
	return err
}

// Observe registers fn for AttrHistory and AttrCurrentIndex changes.
func (h *History) Observe(fn func(Change)) (cancel func()) {
	return h.obs.add(fn)
}

func (h *History) notify(attr Attr) {
	c := Change{Source: h, Attr: attr}
	h.obs.notify(c)
	h.doc.tree.notify(c)
}
