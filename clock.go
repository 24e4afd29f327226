// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import "time"

// Clock is a source of the current time, used to derive the animation phase.
type Clock interface {
	Now() time.Time
}

// SystemClock is a [Clock] that returns the wall-clock time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock is a [Clock] that always returns the same time.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// Fraction returns the phase fraction in [0, 1) of the given time within
// an animation cycle of the given period, at millisecond resolution.
// Periods under one millisecond are treated as one millisecond.
func Fraction(now time.Time, period time.Duration) float32 {
	p := period.Milliseconds()
	if p < 1 {
		p = 1
	}
	t := now.UnixMilli() % p
	if t < 0 {
		t += p
	}
	return float32(t) / float32(p)
}

// ScalePeriod returns the base period scaled by the given multiplier.
// Multipliers <= 0 leave the period unchanged.
func ScalePeriod(base time.Duration, multiplier float32) time.Duration {
	if multiplier <= 0 || multiplier == 1 {
		return base
	}
	return time.Duration(float64(base) * float64(multiplier))
}
