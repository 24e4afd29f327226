// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package throbber provides small looping busy-indicator animations
("throbbers") as pure vector renderers.

Each [Throbber] maps a phase fraction in [0, 1) to a sequence of fill and
stroke operations on a [Surface]. Two throbbers are provided:

  - [ChasingArrows]: two arrows chasing each other around a circle.
  - [Star]: pivoting lines along the outline of a five-point star,
    faded like a comet trail.

A host component drives the animation by calling [Paint] on every repaint
tick, which derives the phase from a [Clock] and the animation period, or
uses a fixed fraction for deterministic rendering. [Widget] is a ready-made
host component and [Animator] schedules repaints for it.

Surfaces live in their own packages: the raster package draws into an
[image.RGBA] and the svgout package writes SVG. [Recorder] keeps the
commands in memory, which is mostly useful for testing.
*/
package throbber
