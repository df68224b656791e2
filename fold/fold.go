// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fold compresses selected sub-ranges of a plotted axis so
// that an outlier-dominated range and a region of interest can share
// a readable scale. This is the "broken axis" idiom: each declared
// interval is scaled by its own factor in display space, the regions
// between and outside intervals keep unit slope, and the rendering
// surface draws diagonal break markers over the compressed gaps.
//
// The mathematical core is Transform, a pair of mutually inverse
// piecewise-linear functions built from a validated interval list.
// Fold is the high-level entry point: it builds the transform,
// installs it on a Renderer, and requests one break marker per
// interval.
package fold

import "image/color"

// Mode selects the coordinate space a fold scale operates in.
type Mode int

const (
	// ModeLinear folds raw data coordinates.
	ModeLinear Mode = iota

	// ModeLog folds base-10 logarithmic coordinates. The
	// Transform always receives already-logged values; the
	// renderer applies log10 before Forward and pow10 after
	// Inverse when this mode is set.
	ModeLog
)

func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeLog:
		return "log"
	}
	return "unknown"
}

// Axis selects which axis of a rendering surface a fold applies to.
type Axis int

const (
	XAxis Axis = iota
	YAxis
)

func (a Axis) String() string {
	if a == XAxis {
		return "x"
	}
	return "y"
}

// Spine selects which side or sides of the plot frame get the
// diagonal break markers for a folded interval.
type Spine int

const (
	SpineLower Spine = iota
	SpineUpper
	SpineBoth
)

func (s Spine) String() string {
	switch s {
	case SpineLower:
		return "lower"
	case SpineUpper:
		return "upper"
	case SpineBoth:
		return "both"
	}
	return "unknown"
}

// A Scale pairs a Transform with the coordinate space it operates
// in. The transform itself is identical in both modes; Mode only
// tells the rendering surface which space to feed it.
type Scale struct {
	*Transform
	Mode Mode
}

// A MarkerStyle holds the cosmetic parameters for drawing the
// diagonal break markers and the rectangle that hides a folded gap.
type MarkerStyle struct {
	LineWidth  float64     // stroke width of the break lines
	Slope      float64     // slope of the break lines
	Color      color.Color // break line color
	CoverColor color.Color // color of the covering rectangle
	Size       int         // break line extent in pixels
}

// DefaultMarkerStyle returns the default marker cosmetics: thin
// black break lines with unit slope and a white cover.
func DefaultMarkerStyle() MarkerStyle {
	return MarkerStyle{
		LineWidth:  1,
		Slope:      1,
		Color:      color.Black,
		CoverColor: color.White,
		Size:       10,
	}
}

// A Renderer is a plotting surface that folds can be installed on.
//
// SetScale registers s as the active coordinate mapping for one axis
// direction; the surface calls s.Forward and s.Inverse whenever it
// converts between data and display space. DrawFoldMarker requests
// diagonal break markers on the selected spines and a rectangle
// covering the folded range [low, high]; it needs only the raw
// interval bounds, not the mapping.
type Renderer interface {
	SetScale(axis Axis, s *Scale)
	DrawFoldMarker(axis Axis, spine Spine, low, high float64, style MarkerStyle)
}

// Options configures Fold. The zero value folds the X axis in
// linear mode with markers on the lower spine in the default style.
type Options struct {
	Axis  Axis
	Spine Spine
	Mode  Mode
	Style MarkerStyle // zero value means DefaultMarkerStyle
}

// Fold compresses each declared interval on one axis of r. It
// validates the intervals, installs the resulting scale on r, and
// then requests one fold marker per interval. An empty interval
// list is a no-op. If validation fails, nothing is installed or
// drawn.
func Fold(r Renderer, intervals []Interval, opts *Options) error {
	if len(intervals) == 0 {
		return nil
	}
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Style == (MarkerStyle{}) {
		o.Style = DefaultMarkerStyle()
	}

	t, err := NewTransform(intervals)
	if err != nil {
		return err
	}
	r.SetScale(o.Axis, &Scale{Transform: t, Mode: o.Mode})
	for _, iv := range t.Intervals() {
		r.DrawFoldMarker(o.Axis, o.Spine, iv.Low, iv.High, o.Style)
	}
	return nil
}
