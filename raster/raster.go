// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster provides a throbber surface that rasterizes
// fills and strokes into an [image.RGBA].
package raster

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/core/paint/ppath/intersect"
	"cogentcore.org/core/paint/ppath/stroke"
	"cogentcore.org/throbber"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Surface is a [throbber.Surface] that draws into an [image.RGBA],
// compositing source-over.
type Surface struct {

	// Image is the image being drawn into.
	Image *image.RGBA

	ras vector.Rasterizer
}

// New returns a new surface drawing into a new transparent
// image of the given size in pixels.
func New(width, height int) *Surface {
	return NewFromImage(image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))))
}

// NewForSize returns a new surface for the given throbber render size,
// rounded up to whole pixels.
func NewForSize(size math32.Vector2) *Surface {
	pt := size.ToPointCeil()
	return New(pt.X, pt.Y)
}

// NewFromImage returns a new surface that draws directly into the given image.
func NewFromImage(img *image.RGBA) *Surface {
	return &Surface{Image: img}
}

// Clear fills the whole image with the given color, replacing its contents.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.Image, s.Image.Bounds(), colors.Uniform(c), image.Point{}, draw.Src)
}

func (s *Surface) Fill(p ppath.Path, c color.Color) {
	if throbber.Degenerate(p) {
		return
	}
	s.draw(p, colors.AsRGBA(c))
}

func (s *Surface) Stroke(p ppath.Path, st throbber.StrokeStyle, c color.Color, alpha float32) {
	if throbber.Degenerate(p) || st.Width <= 0 || alpha <= 0 {
		return
	}
	// the stroker expects arcs to be flattened
	fp := intersect.Flatten(p, ppath.PixelTolerance)
	sp := stroke.Stroke(fp, st.Width, stroke.CapFromStyle(st.Cap), stroke.JoinFromStyle(st.Join), ppath.PixelTolerance)
	s.draw(sp, colors.ApplyOpacity(c, min(alpha, 1)))
}

// draw rasterizes the path and composites the color through it.
func (s *Surface) draw(p ppath.Path, c color.RGBA) {
	b := s.Image.Bounds()
	if c.A == 0 || b.Empty() || p.Empty() {
		return
	}
	s.ras.Reset(b.Dx(), b.Dy())
	s.ras.DrawOp = draw.Over
	p = intersect.Flatten(p, ppath.PixelTolerance)
	// the rasterizer needs every subpath closed, including the
	// open outlines that the stroker returns
	open := false
	for sc := p.Scanner(); sc.Scan(); {
		end := sc.End()
		switch sc.Cmd() {
		case ppath.MoveTo:
			if open {
				s.ras.ClosePath()
			}
			s.ras.MoveTo(end.X, end.Y)
			open = true
		case ppath.LineTo:
			s.ras.LineTo(end.X, end.Y)
		case ppath.Close:
			s.ras.LineTo(end.X, end.Y)
			s.ras.ClosePath()
			open = false
		}
	}
	if open {
		s.ras.ClosePath()
	}
	s.ras.Draw(s.Image, b, image.NewUniform(c), b.Min)
}
