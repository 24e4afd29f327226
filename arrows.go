// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"image"
	"image/color"
	"sync"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint/ppath"
)

const (
	// ArrowsPeriod is the default period of [ChasingArrows].
	ArrowsPeriod = 2000 * time.Millisecond

	// ArrowsRepaint is the repaint interval of [ChasingArrows] (24 fps).
	ArrowsRepaint = time.Second / 24
)

// ArrowStroke is the stroke used for the arcs of [ChasingArrows].
var ArrowStroke = StrokeStyle{Width: 1, Cap: ppath.CapButt, Join: ppath.JoinBevel}

// arrowHead is the arrow-head triangle, in the 16x16 local space.
var arrowHead = [3]math32.Vector2{{X: 8, Y: 0}, {X: 8, Y: 6}, {X: 11, Y: 3}}

// arrow shaft: an open arc of a circle, with angles in degrees
// counter-clockwise on the screen.
const (
	arcCenterX = 8
	arcCenterY = 8
	arcRadius  = 5
	arcStart   = 65
	arcExtent  = 140
)

// ChasingArrows is a [Throbber] of two arrows that rotate clockwise
// around the center, each made of an arrow head and a partial ring.
// The geometry is defined in a 16x16 space that is rotated about the
// center of the render size, but not scaled.
type ChasingArrows struct {

	// mu serializes Render, which reuses the path buffers.
	mu sync.Mutex

	head ppath.Path
	arc  ppath.Path
}

// NewChasingArrows returns a new [ChasingArrows] throbber.
func NewChasingArrows() *ChasingArrows {
	return &ChasingArrows{}
}

func (ca *ChasingArrows) Name() string                   { return "arrows" }
func (ca *ChasingArrows) DefaultPeriod() time.Duration   { return ArrowsPeriod }
func (ca *ChasingArrows) RepaintInterval() time.Duration { return ArrowsRepaint }
func (ca *ChasingArrows) PreferredSize() image.Point     { return preferredSize }
func (ca *ChasingArrows) DefaultForeground() color.RGBA  { return DarkGray }

// ArrowAngles returns the rotation angles in radians of the two arrows
// for the given phase fraction. The second arrow is always π ahead.
func ArrowAngles(phase float32) [2]float32 {
	theta := phase * 2 * math32.Pi
	return [2]float32{theta, theta + math32.Pi}
}

// RotateAbout returns the transform that rotates by the given angle
// in radians about the given center point.
func RotateAbout(angle float32, center math32.Vector2) math32.Matrix2 {
	return math32.Translate2D(center.X, center.Y).Mul(math32.Rotate2D(angle)).Mul(math32.Translate2D(-center.X, -center.Y))
}

func (ca *ChasingArrows) Render(s Surface, size math32.Vector2, fg color.Color, phase float32) {
	ca.mu.Lock()
	defer ca.mu.Unlock()

	center := size.MulScalar(0.5)
	for _, angle := range ArrowAngles(phase) {
		m := RotateAbout(angle, center)

		ca.head.Reset()
		ca.head.MoveTo(arrowHead[0].X, arrowHead[0].Y)
		ca.head.LineTo(arrowHead[1].X, arrowHead[1].Y)
		ca.head.LineTo(arrowHead[2].X, arrowHead[2].Y)
		ca.head.Close()
		s.Fill(ca.head.Transform(m), fg)

		// y points down, so screen angles are negated
		ca.arc.Reset()
		ca.arc.CircularArc(arcCenterX, arcCenterY, arcRadius, math32.DegToRad(-arcStart), math32.DegToRad(-(arcStart + arcExtent)))
		s.Stroke(ca.arc.Transform(m), ArrowStroke, fg, 1)
	}
}
