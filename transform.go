// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
)

// Transformed returns a [Surface] that transforms every path by m
// before drawing it onto s. Stroke widths are scaled by the mean scale
// of m, so a magnified throbber keeps its proportions.
func Transformed(s Surface, m math32.Matrix2) Surface {
	return &transformed{Surface: s, m: m}
}

type transformed struct {
	Surface
	m math32.Matrix2
	p ppath.Path
}

func (t *transformed) Fill(p ppath.Path, c color.Color) {
	t.p = p.CopyTo(t.p)
	t.Surface.Fill(t.p.Transform(t.m), c)
}

func (t *transformed) Stroke(p ppath.Path, st StrokeStyle, c color.Color, alpha float32) {
	t.p = p.CopyTo(t.p)
	sx, sy := t.m.ExtractScale()
	st.Width *= (math32.Abs(sx) + math32.Abs(sy)) / 2
	t.Surface.Stroke(t.p.Transform(t.m), st, c, alpha)
}
