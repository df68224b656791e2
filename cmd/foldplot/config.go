// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wuyao1997/go-foldaxis/fold"
)

// config describes one plot. See the package comment for an example.
type config struct {
	Width  int
	Height int
	Title  string
	XLabel string `toml:"xlabel"`
	YLabel string `toml:"ylabel"`
	Grid   bool

	XLim   []float64 `toml:"xlim"`
	YLim   []float64 `toml:"ylim"`
	XTicks []float64 `toml:"xticks"`
	YTicks []float64 `toml:"yticks"`

	Series []seriesConfig
	XFold  *foldConfig `toml:"xfold"`
	YFold  *foldConfig `toml:"yfold"`
}

type seriesConfig struct {
	Kind     string // "line" (default) or "bar"
	X        []float64
	Y        []float64
	Color    string
	BarWidth float64 `toml:"bar_width"`
}

type foldConfig struct {
	Intervals [][]float64 // [low, high, factor] triples
	Spine     string      // "lower" (default), "upper" or "both"
	Mode      string      // "linear" (default) or "log"

	// Marker cosmetics; zero values keep the defaults.
	LineWidth  float64 `toml:"line_width"`
	Slope      float64
	Color      string
	CoverColor string `toml:"cover_color"`
	Size       int
}

func loadConfig(path string) (*config, error) {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Width == 0 {
		cfg.Width = 640
	}
	if cfg.Height == 0 {
		cfg.Height = 480
	}
	return &cfg, nil
}

func (f *foldConfig) intervals() ([]fold.Interval, error) {
	out := make([]fold.Interval, len(f.Intervals))
	for i, t := range f.Intervals {
		if len(t) != 3 {
			return nil, fmt.Errorf("interval %d: want [low, high, factor], got %v", i, t)
		}
		out[i] = fold.Interval{Low: t[0], High: t[1], Factor: t[2]}
	}
	return out, nil
}

func (f *foldConfig) options(axis fold.Axis) (*fold.Options, error) {
	opts := &fold.Options{Axis: axis, Style: fold.DefaultMarkerStyle()}

	switch f.Spine {
	case "", "lower":
		opts.Spine = fold.SpineLower
	case "upper":
		opts.Spine = fold.SpineUpper
	case "both":
		opts.Spine = fold.SpineBoth
	default:
		return nil, fmt.Errorf("unknown spine %q", f.Spine)
	}

	switch f.Mode {
	case "", "linear":
		opts.Mode = fold.ModeLinear
	case "log":
		opts.Mode = fold.ModeLog
	default:
		return nil, fmt.Errorf("unknown mode %q", f.Mode)
	}

	if f.LineWidth != 0 {
		opts.Style.LineWidth = f.LineWidth
	}
	if f.Slope != 0 {
		opts.Style.Slope = f.Slope
	}
	if f.Size != 0 {
		opts.Style.Size = f.Size
	}
	if f.Color != "" {
		col, err := parseColor(f.Color)
		if err != nil {
			return nil, err
		}
		opts.Style.Color = col
	}
	if f.CoverColor != "" {
		col, err := parseColor(f.CoverColor)
		if err != nil {
			return nil, err
		}
		opts.Style.CoverColor = col
	}
	return opts, nil
}

// parseColor accepts a few named colors and #rrggbb hex. An empty
// string means black.
func parseColor(s string) (color.Color, error) {
	switch strings.ToLower(s) {
	case "", "k", "black":
		return color.Black, nil
	case "w", "white":
		return color.White, nil
	case "r", "red":
		return color.NRGBA{0xd6, 0x27, 0x28, 0xff}, nil
	case "g", "green":
		return color.NRGBA{0x2c, 0xa0, 0x2c, 0xff}, nil
	case "b", "blue":
		return color.NRGBA{0x1f, 0x77, 0xb4, 0xff}, nil
	case "gray", "grey":
		return color.NRGBA{0x7f, 0x7f, 0x7f, 0xff}, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad color %q", s)
		}
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
