// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"image"
	"image/color"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
)

const (
	// StarPeriod is the default period of [Star].
	StarPeriod = 900 * time.Millisecond

	// StarRepaint is the repaint interval of [Star] (100 fps).
	StarRepaint = time.Second / 100

	// StarTrailLength is the number of line segments drawn per frame.
	StarTrailLength = 14

	// StarTips is the number of tips of the star.
	StarTips = 5
)

// StarStroke is the stroke used for the lines of [Star].
var StarStroke = StrokeStyle{Width: 1, Cap: ppath.CapSquare, Join: ppath.JoinMiter}

// Star is a [Throbber] of pivoting lines along the outline of a
// five-point star. Every frame draws [StarTrailLength] lines with
// increasing opacity, so the star is never fully drawn but is still
// recognizable. It only uses local state and is safe for concurrent use.
type Star struct{}

// NewStar returns a new [Star] throbber.
func NewStar() *Star {
	return &Star{}
}

func (st *Star) Name() string                   { return "star" }
func (st *Star) DefaultPeriod() time.Duration   { return StarPeriod }
func (st *Star) RepaintInterval() time.Duration { return StarRepaint }
func (st *Star) PreferredSize() image.Point     { return preferredSize }
func (st *Star) DefaultForeground() color.RGBA  { return DarkGray }

// TrailSegment is the plan for one line of the [Star] trail.
type TrailSegment struct {

	// Index is the position in the trail: older lines come first.
	Index int

	// Position is the cyclic position along the star outline,
	// in units of a full traversal of the five tips.
	Position float32

	// Step is the integer tip step: floor(Position * StarTips).
	Step int

	// Tip is the tip that the line pivots toward: (Step * 3) mod StarTips.
	// The stride of 3 visits the tips in star order rather than around
	// the pentagon.
	Tip int

	// Fraction is the remainder of Position * StarTips after Step,
	// used to interpolate between Tip and the next tip.
	Fraction float32

	// Alpha is the opacity: ((Index + 1) / StarTrailLength)^1.5.
	Alpha float32
}

// StarTrail returns the trail segments for the given phase fraction.
// The phase is inverted so the trail travels against the raw phase.
func StarTrail(phase float32) [StarTrailLength]TrailSegment {
	var tr [StarTrailLength]TrailSegment
	f := 1 - phase
	for j := range tr {
		k := f + float32(j)/StarTrailLength
		a := math32.Floor(k * StarTips)
		step := int(a)
		tr[j] = TrailSegment{
			Index:    j,
			Position: k,
			Step:     step,
			Tip:      ((step*3)%StarTips + StarTips) % StarTips,
			Fraction: k*StarTips - a,
			Alpha:    math32.Pow(float32(j+1)/StarTrailLength, 1.5),
		}
	}
	return tr
}

// StarTipPoints returns the five tips of the star, evenly spaced on a
// circle of radius 1 about the center of the given size. The radius is
// not scaled by the size: that is done by [StarTransform].
func StarTipPoints(size math32.Vector2) [StarTips]math32.Vector2 {
	var tips [StarTips]math32.Vector2
	for a := range tips {
		sin, cos := math32.Sincos(float32(a) * 2 * math32.Pi / StarTips)
		tips[a] = math32.Vec2(size.X/2-sin, size.Y/2-cos)
	}
	return tips
}

// StarTransform returns the transform that scales the star tips by
// half the width about the center of the given size.
func StarTransform(size math32.Vector2) math32.Matrix2 {
	w, h := size.X, size.Y
	return math32.Translate2D(w/2, h/2).Mul(math32.Scale2D(w/2, w/2)).Mul(math32.Translate2D(-w/2, -h/2))
}

func (st *Star) Render(s Surface, size math32.Vector2, fg color.Color, phase float32) {
	tips := StarTipPoints(size)
	m := StarTransform(size)
	for _, seg := range StarTrail(phase) {
		start := tips[(seg.Tip+StarTips-2)%StarTips]
		end := tween(tips[seg.Tip], tips[(seg.Tip+1)%StarTips], seg.Fraction)

		p := ppath.Path{}
		p.MoveTo(start.X, start.Y)
		p.LineTo(end.X, end.Y)
		s.Stroke(p.Transform(m), StarStroke, fg, seg.Alpha)
	}
}

// tween linearly interpolates from a to b by f.
func tween(a, b math32.Vector2, f float32) math32.Vector2 {
	return a.MulScalar(1 - f).Add(b.MulScalar(f))
}
