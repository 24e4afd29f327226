// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/paint/ppath"
)

// CommandKinds are the kinds of drawing [Command]s.
type CommandKinds int32

const (
	// FillCommand fills a closed path.
	FillCommand CommandKinds = iota

	// StrokeCommand strokes a path.
	StrokeCommand
)

func (k CommandKinds) String() string {
	switch k {
	case FillCommand:
		return "fill"
	case StrokeCommand:
		return "stroke"
	}
	return "unknown"
}

// Command is one recorded drawing operation.
type Command struct {
	Kind CommandKinds

	// Path is a private copy of the path, in device coordinates.
	Path ppath.Path

	Color color.RGBA

	// Alpha is the additional opacity; always 1 for fills.
	Alpha float32

	// Stroke is only set for stroke commands.
	Stroke StrokeStyle
}

// Recorder is a [Surface] that records the commands drawn onto it.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) Fill(p ppath.Path, c color.Color) {
	r.Commands = append(r.Commands, Command{Kind: FillCommand, Path: p.Clone(), Color: colors.AsRGBA(c), Alpha: 1})
}

func (r *Recorder) Stroke(p ppath.Path, st StrokeStyle, c color.Color, alpha float32) {
	r.Commands = append(r.Commands, Command{Kind: StrokeCommand, Path: p.Clone(), Color: colors.AsRGBA(c), Alpha: alpha, Stroke: st})
}

// Reset clears the recorded commands, keeping the memory.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay draws all of the recorded commands onto the given surface, in order.
func (r *Recorder) Replay(s Surface) {
	for _, c := range r.Commands {
		switch c.Kind {
		case FillCommand:
			s.Fill(c.Path, c.Color)
		case StrokeCommand:
			s.Stroke(c.Path, c.Stroke, c.Color, c.Alpha)
		}
	}
}
