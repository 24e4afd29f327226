// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command throbber renders busy-indicator animations to image files,
// SVG, and the terminal.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/throbber"
	"cogentcore.org/throbber/raster"
	"cogentcore.org/throbber/svgout"
	"cogentcore.org/throbber/termview"
	"golang.org/x/image/draw"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration for the throbber command.
type Config struct {

	// Name is the name of the throbber: arrows or star.
	Name string `default:"arrows" flag:"n,name"`

	// Fraction is the phase fraction in [0, 1) for single frames.
	Fraction float32 `default:"0" flag:"f,fraction"`

	// Size is the render size in throbber units.
	Size int `default:"16"`

	// Scale magnifies the output pixels per throbber unit.
	Scale int `default:"4"`

	// Frames is the number of frames of an animated GIF.
	Frames int `default:"30"`

	// Color is the foreground color; empty means the throbber default.
	Color string `flag:"c,color"`

	// Background is the background color; empty means transparent
	// (white for the GIF and terminal outputs).
	Background string `flag:"b,background"`

	// Output is the output file name. It defaults to the throbber
	// name with the extension of the output format.
	Output string `flag:"o,output"`

	// Period is the animation period in milliseconds; 0 means the throbber default.
	Period int

	// Multiplier scales the animation period.
	Multiplier float32 `default:"1"`

	// Format is the output format of the dump command: yaml or toml.
	Format string `cmd:"dump" default:"yaml"`

	// Verbose shows debug log messages.
	Verbose bool `flag:"v,verbose"`

	// Quiet only shows error log messages.
	Quiet bool `flag:"q,quiet"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("throbber", "Throbber renders busy-indicator animations to images, SVG, and the terminal.")
	cli.Run(opts, &Config{}, Render, GIF, SVG, Preview, Dump)
}

// Render renders one frame at the configured fraction to a PNG file.
func Render(c *Config) error { //cli:cmd -root
	w, err := setup(c)
	if err != nil {
		return err
	}
	img := frame(c, w, &c.Fraction, c.Background)
	fn := output(c, ".png")
	if err := imagex.Save(img, fn); err != nil {
		return fmt.Errorf("throbber: saving %s: %w", fn, err)
	}
	slog.Info("throbber: saved frame", "file", fn, "fraction", c.Fraction)
	return nil
}

// GIF renders one full animation cycle to an animated GIF file.
func GIF(c *Config) error {
	w, err := setup(c)
	if err != nil {
		return err
	}
	n := max(c.Frames, 1)
	period := w.Period(w.Throbber.DefaultPeriod())
	delay := max(int(period/time.Duration(n)/(10*time.Millisecond)), 1)
	bg := c.Background
	if bg == "" {
		bg = "white"
	}
	anim := &gif.GIF{}
	for i := range n {
		phase := float32(i) / float32(n)
		img := frame(c, w, &phase, bg)
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, img.Bounds(), img, image.Point{})
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}
	fn := output(c, ".gif")
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := gif.EncodeAll(f, anim); err != nil {
		return fmt.Errorf("throbber: encoding %s: %w", fn, err)
	}
	slog.Info("throbber: saved animation", "file", fn, "frames", n, "period", period)
	return nil
}

// SVG renders one frame at the configured fraction to an SVG file.
func SVG(c *Config) error {
	w, err := setup(c)
	if err != nil {
		return err
	}
	sc := float32(max(c.Scale, 1))
	s := svgout.New(renderSize(c).MulScalar(sc))
	if c.Background != "" {
		s.Background = errors.Log1(colors.FromString(c.Background))
	}
	w.Paint(throbber.Transformed(s, math32.Scale2D(sc, sc)), renderSize(c), &c.Fraction)
	fn := output(c, ".svg")
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("throbber: writing %s: %w", fn, err)
	}
	slog.Info("throbber: saved svg", "file", fn, "fraction", c.Fraction)
	return nil
}

// Preview shows the live animation in the terminal until interrupted.
func Preview(c *Config) error {
	w, err := setup(c)
	if err != nil {
		return err
	}
	bg := c.Background
	if bg == "" {
		bg = "white"
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	v := termview.New(os.Stdout)
	v.Start()
	defer v.Stop()
	an := &throbber.Animator{Widget: w, OnFrame: func(_ int, phase float32) {
		v.Show(frame(c, w, &phase, bg))
	}}
	if err := an.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// setup configures logging and returns the widget for the config.
func setup(c *Config) (*throbber.Widget, error) {
	logx.UserLevel = logx.LevelFromFlags(c.Verbose, !c.Quiet, c.Quiet)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logx.UserLevel})))

	t, err := throbber.New(c.Name)
	if err != nil {
		return nil, err
	}
	w := throbber.NewWidget(t).SetPeriodMultiplier(c.Multiplier)
	if c.Period > 0 {
		w.SetBasePeriod(time.Duration(c.Period) * time.Millisecond)
	}
	if c.Color != "" {
		fg, err := colors.FromString(c.Color)
		if err != nil {
			return nil, fmt.Errorf("throbber: invalid color %q: %w", c.Color, err)
		}
		w.SetColor(fg)
	}
	slog.Debug("throbber: configured", "name", c.Name, "period", w.Period(t.DefaultPeriod()), "size", c.Size, "scale", c.Scale)
	return w, nil
}

func renderSize(c *Config) math32.Vector2 {
	return math32.Vec2(float32(c.Size), float32(c.Size))
}

// frame renders one magnified frame over the given background color name.
func frame(c *Config, w *throbber.Widget, fixed *float32, bg string) *image.RGBA {
	sc := max(c.Scale, 1)
	s := raster.New(c.Size*sc, c.Size*sc)
	if bg != "" {
		s.Clear(errors.Log1(colors.FromString(bg)))
	}
	w.Paint(throbber.Transformed(s, math32.Scale2D(float32(sc), float32(sc))), renderSize(c), fixed)
	return s.Image
}

// output returns the output file name, with the default extension.
func output(c *Config, ext string) string {
	if c.Output != "" {
		return c.Output
	}
	return c.Name + ext
}
