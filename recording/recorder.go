// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"fmt"
	"image"

	"github.com/gogpu/brush/surface"
	"github.com/gogpu/brush/text"
)

// Recorder captures surface calls as commands.
// It implements surface.Surface but stores commands instead of rasterizing
// pixels. Use FinishRecording to obtain an immutable Recording that can be
// replayed onto a different surface.
//
// Frame bracketing is enforced exactly like surface.ImageSurface, so a
// traversal that is valid against a Recorder is valid against any surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	// frameStart is the index of the last BeginFrame command.
	frameStart int

	inFrame bool
	closed  bool
	frames  int
}

var _ surface.Surface = (*Recorder)(nil)

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 64),
		resources: NewResourcePool(),
	}
}

// Width returns the recorder width.
func (r *Recorder) Width() int { return r.width }

// Height returns the recorder height.
func (r *Recorder) Height() int { return r.height }

// BeginFrame records the start of a frame.
func (r *Recorder) BeginFrame() error {
	if r.closed {
		return surface.ErrClosed
	}
	if r.inFrame {
		return surface.ErrFrameInProgress
	}
	r.inFrame = true
	r.frameStart = len(r.commands)
	r.commands = append(r.commands, BeginFrameCommand{Width: r.width, Height: r.height})
	return nil
}

// EndFrame records the end of a frame.
func (r *Recorder) EndFrame() error {
	if err := r.checkFrame(); err != nil {
		return err
	}
	r.inFrame = false
	r.frames++
	r.commands = append(r.commands, EndFrameCommand{})
	return nil
}

// DrawImage records an image draw.
func (r *Recorder) DrawImage(rect surface.Rect, img image.Image, opacity float64) error {
	if err := r.checkFrame(); err != nil {
		return err
	}
	if img == nil {
		return surface.ErrNilImage
	}
	r.commands = append(r.commands, DrawImageCommand{
		Rect:    rect,
		Image:   r.resources.AddImage(img),
		Opacity: opacity,
	})
	return nil
}

// DrawShapedText records a text draw.
func (r *Recorder) DrawShapedText(pos surface.Point, layout *text.Layout, paint surface.Paint) error {
	if err := r.checkFrame(); err != nil {
		return err
	}
	if layout == nil {
		return surface.ErrNilLayout
	}
	r.commands = append(r.commands, DrawTextCommand{
		Pos:    pos,
		Layout: r.resources.AddLayout(layout),
		Paint:  paint,
	})
	return nil
}

// Close marks the recorder closed. Recorded commands stay readable.
func (r *Recorder) Close() error {
	r.closed = true
	r.inFrame = false
	return nil
}

// Closed reports whether Close has been called.
func (r *Recorder) Closed() bool { return r.closed }

// Frames returns the number of completed frames.
func (r *Recorder) Frames() int { return r.frames }

// Commands returns a copy of all recorded commands.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// LastFrame returns the draw commands of the most recent frame, without
// the BeginFrame and EndFrame brackets. An open frame is included.
func (r *Recorder) LastFrame() []Command {
	if len(r.commands) == 0 {
		return nil
	}
	var out []Command
	for _, cmd := range r.commands[r.frameStart:] {
		switch cmd.Type() {
		case CmdBeginFrame, CmdEndFrame:
			continue
		}
		out = append(out, cmd)
	}
	return out
}

// Resources returns the resource pool.
func (r *Recorder) Resources() *ResourcePool { return r.resources }

// Reset discards all recorded commands and resources.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.resources = NewResourcePool()
	r.frameStart = 0
	r.inFrame = false
	r.frames = 0
}

// FinishRecording returns an immutable Recording of the commands so far.
// The Recorder may continue to be used; later commands are not visible in
// the returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.Commands(),
		resources: r.resources,
	}
}

func (r *Recorder) checkFrame() error {
	if r.closed {
		return surface.ErrClosed
	}
	if !r.inFrame {
		return surface.ErrNoFrame
	}
	return nil
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the recording width.
func (rec *Recording) Width() int { return rec.width }

// Height returns the recording height.
func (rec *Recording) Height() int { return rec.height }

// Commands returns the recorded commands.
func (rec *Recording) Commands() []Command { return rec.commands }

// Resources returns the resource pool.
func (rec *Recording) Resources() *ResourcePool { return rec.resources }

// Playback replays all commands onto dst in order.
// The first failing command stops playback; the error names its index.
func (rec *Recording) Playback(dst surface.Surface) error {
	for i, cmd := range rec.commands {
		if err := rec.playCommand(dst, cmd); err != nil {
			return fmt.Errorf("recording: playback command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}

func (rec *Recording) playCommand(dst surface.Surface, cmd Command) error {
	switch c := cmd.(type) {
	case BeginFrameCommand:
		return dst.BeginFrame()
	case EndFrameCommand:
		return dst.EndFrame()
	case DrawImageCommand:
		return dst.DrawImage(c.Rect, rec.resources.GetImage(c.Image), c.Opacity)
	case DrawTextCommand:
		return dst.DrawShapedText(c.Pos, rec.resources.GetLayout(c.Layout), c.Paint)
	default:
		return fmt.Errorf("unknown command type %T", cmd)
	}
}

func init() {
	surface.Register("recording", 1, func(opts surface.Options) (surface.Surface, error) {
		return NewRecorder(opts.Width, opts.Height), nil
	})
}
