// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"image"
	"image/color"
	"time"

	"cogentcore.org/core/math32"
)

// Component is the host component that a throbber is painted for.
type Component interface {

	// Foreground returns the color to paint with, or nil
	// to use the default foreground of the throbber.
	Foreground() color.Color

	// Period returns the animation period,
	// given the default period of the throbber.
	Period(def time.Duration) time.Duration

	// Now returns the current time, used to derive the phase.
	Now() time.Time
}

// Paint paints the throbber onto the surface for the given host component
// and size. If fixed is non-nil, it is used as the phase fraction;
// otherwise the phase is derived from the time of the component modulo
// its period. A nil component paints with the default foreground,
// the default period, and the system clock.
func Paint(t Throbber, s Surface, c Component, size math32.Vector2, fixed *float32) {
	var fg color.Color = t.DefaultForeground()
	if c != nil {
		if cfg := c.Foreground(); cfg != nil {
			fg = cfg
		}
	}
	var phase float32
	switch {
	case fixed != nil:
		phase = *fixed
	case c != nil:
		phase = Fraction(c.Now(), c.Period(t.DefaultPeriod()))
	default:
		phase = Fraction(time.Now(), t.DefaultPeriod())
	}
	t.Render(s, size, fg, phase)
}

// Widget is a [Component] that shows a [Throbber].
type Widget struct {

	// Throbber is the animation shown by the widget.
	Throbber Throbber

	// Color is the foreground color; nil means the throbber default.
	Color color.Color

	// BasePeriod overrides the default period of the throbber if > 0.
	BasePeriod time.Duration

	// PeriodMultiplier scales the period if > 0.
	PeriodMultiplier float32

	// Clock is the time source; nil means the system clock.
	Clock Clock
}

// NewWidget returns a new widget showing the given throbber.
func NewWidget(t Throbber) *Widget {
	return &Widget{Throbber: t}
}

// SetColor sets the [Widget.Color]:
// Color is the foreground color; nil means the throbber default.
func (w *Widget) SetColor(v color.Color) *Widget { w.Color = v; return w }

// SetBasePeriod sets the [Widget.BasePeriod]:
// BasePeriod overrides the default period of the throbber if > 0.
func (w *Widget) SetBasePeriod(v time.Duration) *Widget { w.BasePeriod = v; return w }

// SetPeriodMultiplier sets the [Widget.PeriodMultiplier]:
// PeriodMultiplier scales the period if > 0.
func (w *Widget) SetPeriodMultiplier(v float32) *Widget { w.PeriodMultiplier = v; return w }

// SetClock sets the [Widget.Clock]:
// Clock is the time source; nil means the system clock.
func (w *Widget) SetClock(v Clock) *Widget { w.Clock = v; return w }

func (w *Widget) Foreground() color.Color {
	return w.Color
}

func (w *Widget) Period(def time.Duration) time.Duration {
	base := def
	if w.BasePeriod > 0 {
		base = w.BasePeriod
	}
	return ScalePeriod(base, w.PeriodMultiplier)
}

func (w *Widget) Now() time.Time {
	if w.Clock == nil {
		return time.Now()
	}
	return w.Clock.Now()
}

// PreferredSize returns the preferred size of the throbber.
func (w *Widget) PreferredSize() image.Point {
	return w.Throbber.PreferredSize()
}

// Phase returns the current phase fraction of the widget animation.
func (w *Widget) Phase() float32 {
	return Fraction(w.Now(), w.Period(w.Throbber.DefaultPeriod()))
}

// Paint paints the widget onto the surface at the given size;
// see the package-level [Paint] function.
func (w *Widget) Paint(s Surface, size math32.Vector2, fixed *float32) {
	Paint(w.Throbber, s, w, size, fixed)
}
