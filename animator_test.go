// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnimatorMaxFrames(t *testing.T) {
	w := NewWidget(NewStar()).SetClock(FixedClock(time.UnixMilli(450)))
	var frames []int
	var phases []float32
	an := &Animator{Widget: w, MaxFrames: 3, Interval: time.Millisecond, OnFrame: func(frame int, phase float32) {
		frames = append(frames, frame)
		phases = append(phases, phase)
	}}
	assert.NoError(t, an.Run(context.Background()))
	assert.Equal(t, []int{0, 1, 2}, frames)
	assert.Equal(t, []float32{0.5, 0.5, 0.5}, phases)
}

func TestAnimatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	an := &Animator{Widget: NewWidget(NewChasingArrows()), OnFrame: func(int, float32) { n++ }}
	assert.ErrorIs(t, an.Run(ctx), context.Canceled)
	assert.Zero(t, n)
}

func TestAnimatorCancelDuringRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	an := &Animator{Widget: NewWidget(NewStar()), OnFrame: func(frame int, _ float32) {
		n++
		if frame == 4 {
			cancel()
		}
	}}
	assert.ErrorIs(t, an.Run(ctx), context.Canceled)
	assert.Equal(t, 5, n)
}

func TestAnimatorNilOnFrame(t *testing.T) {
	w := NewWidget(NewStar()).SetClock(FixedClock(time.UnixMilli(0)))
	an := &Animator{Widget: w, MaxFrames: 2, Interval: time.Millisecond}
	assert.NotPanics(t, func() {
		assert.NoError(t, an.Run(context.Background()))
	})
}

func TestAnimatorNoWidget(t *testing.T) {
	assert.Error(t, (&Animator{}).Run(context.Background()))
	assert.Error(t, (&Animator{Widget: &Widget{}}).Run(context.Background()))
}
