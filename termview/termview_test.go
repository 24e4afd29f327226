// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package termview

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
		}
	}
	return img
}

func TestLines(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))
	img := testImage(4, 3)
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	lines := Lines(out, img)
	require.Len(t, lines, 2)
	assert.Equal(t, 4, strings.Count(lines[0], upperHalf))
	assert.Contains(t, lines[0], "38;2;255;0;0")
	assert.Contains(t, lines[0], "48;2;0;0;255")
	// the odd last row has no lower pixel
	assert.NotContains(t, lines[1], "48;2")
}

func TestLinesAscii(t *testing.T) {
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	lines := Lines(out, testImage(3, 4))
	assert.Equal(t, []string{"▀▀▀", "▀▀▀"}, lines)
}

func TestView(t *testing.T) {
	var b bytes.Buffer
	v := New(&b, termenv.WithProfile(termenv.TrueColor))
	v.Start()
	v.Show(testImage(2, 2))
	v.Stop()
	s := b.String()
	assert.Contains(t, s, "\x1b[?25l")
	assert.Contains(t, s, "\x1b[1;1H")
	assert.Contains(t, s, "38;2;255;0;0")
	assert.True(t, strings.HasSuffix(s, "\x1b[?25h"))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", hex(color.RGBA{255, 128, 0, 255}))
	assert.Equal(t, "#000000", hex(color.RGBA{}))
}
