// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"github.com/gogpu/brush/surface"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdBeginFrame CommandType = iota // Start of a frame
	CmdEndFrame                      // End of a frame
	CmdDrawImage                     // Draw an image
	CmdDrawText                      // Draw shaped text
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdBeginFrame: "BeginFrame",
	CmdEndFrame:   "EndFrame",
	CmdDrawImage:  "DrawImage",
	CmdDrawText:   "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ImageRef is a reference to an image in the resource pool.
type ImageRef uint32

// LayoutRef is a reference to a text layout in the resource pool.
type LayoutRef uint32

// BeginFrameCommand opens a frame.
type BeginFrameCommand struct {
	// Width and Height are the surface size when the frame started.
	Width, Height int
}

// Type implements Command.
func (BeginFrameCommand) Type() CommandType { return CmdBeginFrame }

// EndFrameCommand closes a frame.
type EndFrameCommand struct{}

// Type implements Command.
func (EndFrameCommand) Type() CommandType { return CmdEndFrame }

// DrawImageCommand draws an image scaled into a rectangle.
type DrawImageCommand struct {
	// Rect is the destination rectangle in canvas coordinates.
	Rect surface.Rect
	// Image references the image in the resource pool.
	Image ImageRef
	// Opacity is the multiplier applied to the image alpha.
	Opacity float64
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// DrawTextCommand paints a shaped text layout.
type DrawTextCommand struct {
	// Pos is the top-left corner of the layout box.
	Pos surface.Point
	// Layout references the layout in the resource pool.
	Layout LayoutRef
	// Paint is the resolved text paint.
	Paint surface.Paint
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
