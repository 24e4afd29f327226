// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Animator drives the repaints of a [Widget] at the repaint
// interval of its throbber.
type Animator struct {

	// Widget is the widget to animate. It must be set, with a Throbber.
	Widget *Widget

	// OnFrame is called for every repaint tick with the frame number
	// and the current phase of the widget. A nil OnFrame only advances
	// the frame count.
	OnFrame func(frame int, phase float32)

	// MaxFrames stops the animation after that many frames if > 0.
	MaxFrames int

	// Interval overrides the repaint interval of the throbber if > 0.
	Interval time.Duration
}

// Run runs the animation on the calling goroutine until the context
// is done or MaxFrames frames have been painted. It returns the context
// error if the context ended the animation. No frame is painted after
// the context is done. It returns an error if there is no widget or
// throbber to animate.
func (an *Animator) Run(ctx context.Context) error {
	if an.Widget == nil || an.Widget.Throbber == nil {
		return errors.New("throbber.Animator.Run: no widget throbber to animate")
	}
	iv := an.Interval
	if iv <= 0 {
		iv = an.Widget.Throbber.RepaintInterval()
	}
	name := an.Widget.Throbber.Name()
	slog.Debug("throbber: animation started", "throbber", name, "interval", iv)

	tick := time.NewTicker(iv)
	defer tick.Stop()
	for frame := 0; ; frame++ {
		if err := ctx.Err(); err != nil {
			slog.Debug("throbber: animation stopped", "throbber", name, "frames", frame, "err", err)
			return err
		}
		if an.OnFrame != nil {
			an.OnFrame(frame, an.Widget.Phase())
		}
		if an.MaxFrames > 0 && frame+1 >= an.MaxFrames {
			slog.Debug("throbber: animation done", "throbber", name, "frames", frame+1)
			return nil
		}
		select {
		case <-ctx.Done():
		case <-tick.C:
		}
	}
}
