// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgout provides a throbber surface that writes an SVG document.
package svgout

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
	"cogentcore.org/throbber"
)

// Surface is a [throbber.Surface] that accumulates SVG path elements.
type Surface struct {

	// Size is the size of the SVG viewport.
	Size math32.Vector2

	// Background is filled behind everything if non-nil.
	Background color.Color

	body bytes.Buffer
}

// New returns a new SVG surface of the given size.
func New(size math32.Vector2) *Surface {
	return &Surface{Size: size}
}

func (s *Surface) Fill(p ppath.Path, c color.Color) {
	if throbber.Degenerate(p) {
		return
	}
	fmt.Fprintf(&s.body, "<path d=%q fill=%q/>\n", p.ToSVG(), colors.AsHex(opaque(c)))
}

func (s *Surface) Stroke(p ppath.Path, st throbber.StrokeStyle, c color.Color, alpha float32) {
	if throbber.Degenerate(p) {
		return
	}
	fmt.Fprintf(&s.body, "<path d=%q fill=\"none\" stroke=%q stroke-width=%q stroke-linecap=%q stroke-linejoin=%q",
		p.ToSVG(), colors.AsHex(opaque(c)), num(st.Width), st.Cap.String(), st.Join.String())
	if op := opacity(c) * alpha; op < 1 {
		fmt.Fprintf(&s.body, " stroke-opacity=%q", num(op))
	}
	s.body.WriteString("/>\n")
}

// Reset removes all drawn elements.
func (s *Surface) Reset() {
	s.body.Reset()
}

// WriteTo writes the complete SVG document to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=%q height=%q viewBox=\"0 0 %s %s\">\n",
		num(s.Size.X), num(s.Size.Y), num(s.Size.X), num(s.Size.Y))
	if s.Background != nil {
		fmt.Fprintf(&b, "<rect width=\"100%%\" height=\"100%%\" fill=%q/>\n", colors.AsHex(opaque(s.Background)))
	}
	b.Write(s.body.Bytes())
	b.WriteString("</svg>\n")
	return b.WriteTo(w)
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// opacity returns the alpha of c in [0, 1].
func opacity(c color.Color) float32 {
	return float32(colors.AsRGBA(c).A) / 255
}

// opaque returns c without its alpha, un-premultiplied.
func opaque(c color.Color) color.RGBA {
	r := colors.AsRGBA(c)
	if r.A == 0 || r.A == 255 {
		r.A = 255
		return r
	}
	un := func(v uint8) uint8 { return uint8(uint16(v) * 255 / uint16(r.A)) }
	return color.RGBA{un(r.R), un(r.G), un(r.B), 255}
}
