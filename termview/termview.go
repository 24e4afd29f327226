// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termview shows rasterized throbber frames in a terminal,
// two pixels per character cell using upper half blocks.
package termview

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"cogentcore.org/core/colors"
	"github.com/muesli/termenv"
)

// upperHalf is drawn with the upper pixel as foreground
// and the lower pixel as background.
const upperHalf = "▀"

// View shows successive frames at the same position of a terminal.
type View struct {
	out *termenv.Output
}

// New returns a new view writing to w, with the color profile
// detected from w.
func New(w io.Writer, opts ...termenv.OutputOption) *View {
	return &View{out: termenv.NewOutput(w, opts...)}
}

// Start clears the screen and hides the cursor.
func (v *View) Start() {
	v.out.HideCursor()
	v.out.ClearScreen()
}

// Stop shows the cursor again.
func (v *View) Stop() {
	v.out.ShowCursor()
}

// Show draws the image at the top left of the terminal,
// overwriting the previous frame.
func (v *View) Show(img image.Image) {
	v.out.MoveCursor(1, 1)
	for _, ln := range Lines(v.out, img) {
		fmt.Fprintln(v.out, ln)
	}
}

// Lines returns the terminal lines for the image, styled for the
// color profile of out. An image of height h gives (h+1)/2 lines.
func Lines(out *termenv.Output, img image.Image) []string {
	b := img.Bounds()
	var lines []string
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		sb.Reset()
		for x := b.Min.X; x < b.Max.X; x++ {
			st := out.String(upperHalf).Foreground(out.Color(hex(img.At(x, y))))
			if y+1 < b.Max.Y {
				st = st.Background(out.Color(hex(img.At(x, y+1))))
			}
			sb.WriteString(st.String())
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// hex returns the #rrggbb form of the color composited over black.
func hex(c color.Color) string {
	r := colors.AsRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", r.R, r.G, r.B)
}
