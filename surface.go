// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"image/color"

	"cogentcore.org/core/paint/ppath"
)

// StrokeStyle specifies how a path is stroked.
type StrokeStyle struct {

	// Width is the stroke width in device units.
	Width float32

	// Cap is the style of the open ends of the path.
	Cap ppath.Caps

	// Join is the style of the corners of the path.
	Join ppath.Joins
}

// Surface is a drawing target for throbbers.
// Paths are given in device coordinates. Throbbers reuse their path
// buffers, so a Surface must copy any path that it keeps after
// the call returns.
type Surface interface {

	// Fill fills the closed path with the given color.
	Fill(p ppath.Path, c color.Color)

	// Stroke strokes the path with the given style and color,
	// composited with the additional alpha in [0, 1].
	Stroke(p ppath.Path, st StrokeStyle, c color.Color, alpha float32)
}

// Degenerate returns whether all points of the path coincide, which
// happens for throbbers rendered at zero size. Surfaces draw nothing
// for degenerate paths, so that square caps do not show up as dots.
func Degenerate(p ppath.Path) bool {
	pts := p.Coords()
	if len(pts) < 2 {
		return true
	}
	for _, pt := range pts[1:] {
		if !ppath.EqualPoint(pt, pts[0]) {
			return false
		}
	}
	return true
}
