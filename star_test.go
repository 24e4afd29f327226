// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"image"
	"testing"
	"time"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderStar(phase float32) *Recorder {
	r := &Recorder{}
	NewStar().Render(r, math32.Vec2(16, 16), black, phase)
	return r
}

func TestStarTrailStride(t *testing.T) {
	// phase 0 gives f = 1, so k = 1 + j/14 and a = floor(5 + 5j/14)
	steps := []int{5, 5, 5, 6, 6, 6, 7, 7, 7, 8, 8, 8, 9, 9}
	tips := []int{0, 0, 0, 3, 3, 3, 1, 1, 1, 4, 4, 4, 2, 2}
	tr := StarTrail(0)
	for j, seg := range tr {
		assert.Equal(t, j, seg.Index)
		assert.Equal(t, steps[j], seg.Step, "step %d", j)
		assert.Equal(t, tips[j], seg.Tip, "tip %d", j)
		assert.Equal(t, (seg.Step*3)%StarTips, seg.Tip)
		tolassert.EqualTol(t, 1+float32(j)/14, seg.Position, testTol)
		assert.GreaterOrEqual(t, seg.Fraction, float32(0))
		assert.Less(t, seg.Fraction, float32(1))
	}
	assert.Equal(t, float32(0), tr[0].Fraction)
	tolassert.EqualTol(t, 0.5, tr[7].Fraction, testTol)
}

func TestStarTrailAlpha(t *testing.T) {
	for _, phase := range []float32{0, 0.4, 0.95} {
		tr := StarTrail(phase)
		prev := float32(0)
		for j, seg := range tr {
			want := math32.Pow(float32(j+1)/14, 1.5)
			tolassert.EqualTol(t, want, seg.Alpha, 1e-6)
			assert.Greater(t, seg.Alpha, float32(0))
			assert.LessOrEqual(t, seg.Alpha, float32(1))
			assert.GreaterOrEqual(t, seg.Alpha, prev)
			prev = seg.Alpha
		}
		tolassert.EqualTol(t, 1, tr[StarTrailLength-1].Alpha, 1e-6)
	}
}

func TestStarTipPoints(t *testing.T) {
	tips := StarTipPoints(math32.Vec2(16, 16))
	tolAssertEqualVector(t, testTol, math32.Vec2(8, 7), tips[0])
	for _, tip := range tips {
		// radius 1, not scaled by the size
		tolassert.EqualTol(t, 1, tip.Sub(math32.Vec2(8, 8)).Length(), testTol)
	}
	m := StarTransform(math32.Vec2(16, 16))
	tolAssertEqualVector(t, testTol, math32.Vec2(8, 0), m.MulVector2AsPoint(tips[0]))
	tolAssertEqualVector(t, testTol, math32.Vec2(8, 8), m.MulVector2AsPoint(math32.Vec2(8, 8)))
}

func TestStarCommands(t *testing.T) {
	r := renderStar(0)
	require.Len(t, r.Commands, StarTrailLength)
	tr := StarTrail(0)
	for j, cmd := range r.Commands {
		assert.Equal(t, StrokeCommand, cmd.Kind)
		assert.Equal(t, StarStroke, cmd.Stroke)
		assert.Equal(t, black, cmd.Color)
		assert.Equal(t, tr[j].Alpha, cmd.Alpha)
	}

	// first segment runs from tip 3 to tip 0, scaled to radius 8
	s216, c216 := math32.Sincos(6 * math32.Pi / 5)
	first := r.Commands[0].Path
	tolAssertEqualVector(t, 1e-3, math32.Vec2(8-8*s216, 8-8*c216), first.StartPos())
	tolAssertEqualVector(t, 1e-3, math32.Vec2(8, 0), first.Pos())

	// all points lie within the scaled circle
	for _, cmd := range r.Commands {
		for _, pt := range cmd.Path.Coords() {
			assert.LessOrEqual(t, pt.Sub(math32.Vec2(8, 8)).Length(), float32(8.001))
		}
	}
}

func TestStarDeterministic(t *testing.T) {
	for _, phase := range []float32{0, 0.21, 0.5, 0.999} {
		assert.Equal(t, renderStar(phase).Commands, renderStar(phase).Commands)
	}
}

func TestStarWrap(t *testing.T) {
	a := renderStar(0)
	b := renderStar(1 - 1e-6)
	require.Len(t, b.Commands, len(a.Commands))
	for i := range a.Commands {
		tolAssertEqualVector(t, 1e-3, a.Commands[i].Path.StartPos(), b.Commands[i].Path.StartPos())
		tolAssertEqualVector(t, 1e-3, a.Commands[i].Path.Pos(), b.Commands[i].Path.Pos())
	}
}

func TestStarScales(t *testing.T) {
	r := &Recorder{}
	NewStar().Render(r, math32.Vec2(32, 32), black, 0)
	tolAssertEqualVector(t, 1e-3, math32.Vec2(16, 0), r.Commands[0].Path.Pos())
}

func TestStarZeroSize(t *testing.T) {
	r := &Recorder{}
	assert.NotPanics(t, func() {
		NewStar().Render(r, math32.Vector2{}, black, 0.3)
	})
	for _, cmd := range r.Commands {
		for _, pt := range cmd.Path.Coords() {
			tolAssertEqualVector(t, testTol, math32.Vector2{}, pt)
		}
	}
}

func TestStarInfo(t *testing.T) {
	st := NewStar()
	assert.Equal(t, "star", st.Name())
	assert.Equal(t, 900*time.Millisecond, st.DefaultPeriod())
	assert.Equal(t, 10*time.Millisecond, st.RepaintInterval())
	assert.Equal(t, DarkGray, st.DefaultForeground())
	assert.Equal(t, image.Pt(16, 16), st.PreferredSize())
}
