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

// DarkGray is the default foreground color of all throbbers,
// used when the host component does not provide one.
// Note that this is darker than the CSS darkgray named color.
var DarkGray = color.RGBA{64, 64, 64, 255}

// preferredSize is the size that every throbber reports to layout.
var preferredSize = image.Pt(16, 16)

// Throbber is a looping busy-indicator animation.
type Throbber interface {

	// Name returns the registered name of the throbber.
	Name() string

	// DefaultPeriod returns the time it takes to complete
	// one animation cycle when the host does not override it.
	DefaultPeriod() time.Duration

	// RepaintInterval returns how often the host should repaint
	// to get a smooth animation.
	RepaintInterval() time.Duration

	// PreferredSize returns the size the throbber asks for in layout.
	// It is always 16x16; other sizes are honored by scaling.
	PreferredSize() image.Point

	// DefaultForeground returns the color used when
	// the host component provides none.
	DefaultForeground() color.RGBA

	// Render draws the throbber onto the surface for the given
	// size, foreground color, and phase fraction in [0, 1).
	// It is a pure function of its arguments.
	Render(s Surface, size math32.Vector2, fg color.Color, phase float32)
}
