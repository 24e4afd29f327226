// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"cogentcore.org/core/colors"
	"cogentcore.org/throbber"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// frameDump is the serialized form of the draw commands of one frame.
type frameDump struct {
	Throbber string        `yaml:"throbber" toml:"throbber"`
	Fraction float32       `yaml:"fraction" toml:"fraction"`
	Size     int           `yaml:"size" toml:"size"`
	Commands []commandDump `yaml:"commands" toml:"commands"`
}

type commandDump struct {
	Kind  string  `yaml:"kind" toml:"kind"`
	Path  string  `yaml:"path" toml:"path"`
	Color string  `yaml:"color" toml:"color"`
	Alpha float32 `yaml:"alpha" toml:"alpha"`
	Width float32 `yaml:"width,omitempty" toml:"width,omitempty"`
	Cap   string  `yaml:"cap,omitempty" toml:"cap,omitempty"`
	Join  string  `yaml:"join,omitempty" toml:"join,omitempty"`
}

// Dump prints the draw commands of one frame at the configured fraction,
// in the configured format (yaml or toml).
func Dump(c *Config) error {
	w, err := setup(c)
	if err != nil {
		return err
	}
	rec := &throbber.Recorder{}
	w.Paint(rec, renderSize(c), &c.Fraction)
	d := newFrameDump(c, rec)

	var out io.Writer = os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return writeDump(out, d, c.Format)
}

func newFrameDump(c *Config, rec *throbber.Recorder) *frameDump {
	d := &frameDump{Throbber: c.Name, Fraction: c.Fraction, Size: c.Size}
	for _, cmd := range rec.Commands {
		cd := commandDump{Kind: cmd.Kind.String(), Path: cmd.Path.ToSVG(), Color: colors.AsHex(cmd.Color), Alpha: cmd.Alpha}
		if cmd.Kind == throbber.StrokeCommand {
			cd.Width = cmd.Stroke.Width
			cd.Cap = cmd.Stroke.Cap.String()
			cd.Join = cmd.Stroke.Join.String()
		}
		d.Commands = append(d.Commands, cd)
	}
	return d
}

func writeDump(w io.Writer, d *frameDump, format string) error {
	switch format {
	case "", "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(d)
	}
	return fmt.Errorf("throbber: unknown dump format %q (must be yaml or toml)", format)
}
