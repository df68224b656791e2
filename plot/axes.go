// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot is a minimal in-memory plotting surface for folded
// ("broken") axes. An Axes collects data series, limits, ticks and
// labels, accepts a fold scale on either axis, and rasterizes the
// result to an image.
//
// Axes implements fold.Renderer, so a fold is installed simply by
// passing the axes to fold.Fold.
package plot

import (
	"image/color"
	"math"

	"github.com/wuyao1997/go-foldaxis/fold"
)

type seriesKind int

const (
	lineSeries seriesKind = iota
	barSeries
)

type series struct {
	kind     seriesKind
	xs, ys   []float64
	color    color.Color
	barWidth float64 // data-space width, bar series only
}

type marker struct {
	axis      fold.Axis
	spine     fold.Spine
	low, high float64
	style     fold.MarkerStyle
}

// An Axes is a single plotting surface: one frame with data limits,
// optional fold scales per axis, and a list of plotted series.
//
// With a fold scale in ModeLog installed on an axis, every data
// value and limit on that axis must be positive.
type Axes struct {
	title, xlabel, ylabel string
	xlim, ylim            [2]float64
	haveXLim, haveYLim    bool
	xticks, yticks        []float64
	grid                  bool
	scales                [2]*fold.Scale // indexed by fold.Axis
	series                []series
	markers               []marker
}

var _ fold.Renderer = (*Axes)(nil)

func NewAxes() *Axes {
	return &Axes{}
}

// SetScale installs s as the active coordinate mapping for one axis
// direction. It implements fold.Renderer.
func (a *Axes) SetScale(axis fold.Axis, s *fold.Scale) {
	a.scales[axis] = s
}

// Scale returns the mapping installed on axis, or nil.
func (a *Axes) Scale(axis fold.Axis) *fold.Scale {
	return a.scales[axis]
}

// DrawFoldMarker records a break-marker request. The markers are
// drawn when the axes are rendered. It implements fold.Renderer.
func (a *Axes) DrawFoldMarker(axis fold.Axis, spine fold.Spine, low, high float64, style fold.MarkerStyle) {
	a.markers = append(a.markers, marker{axis, spine, low, high, style})
}

// Plot adds a line series connecting successive (x, y) points.
// xs and ys must have the same length.
func (a *Axes) Plot(xs, ys []float64, c color.Color) {
	a.series = append(a.series, series{kind: lineSeries, xs: xs, ys: ys, color: c})
}

// Bar adds a bar series with bars of the given data-space width
// centered on each x, rising from y=0.
func (a *Axes) Bar(xs, ys []float64, width float64, c color.Color) {
	a.series = append(a.series, series{kind: barSeries, xs: xs, ys: ys, color: c, barWidth: width})
}

func (a *Axes) SetTitle(s string)  { a.title = s }
func (a *Axes) SetXLabel(s string) { a.xlabel = s }
func (a *Axes) SetYLabel(s string) { a.ylabel = s }

// Grid enables or disables grid lines at the major ticks.
func (a *Axes) Grid(on bool) {
	a.grid = on
}

// SetXLim fixes the x data limits instead of deriving them from the
// plotted series.
func (a *Axes) SetXLim(lo, hi float64) {
	a.xlim = [2]float64{lo, hi}
	a.haveXLim = true
}

// SetYLim fixes the y data limits.
func (a *Axes) SetYLim(lo, hi float64) {
	a.ylim = [2]float64{lo, hi}
	a.haveYLim = true
}

// SetXTicks fixes the x tick positions, given in data space.
func (a *Axes) SetXTicks(ticks []float64) {
	a.xticks = ticks
}

// SetYTicks fixes the y tick positions.
func (a *Axes) SetYTicks(ticks []float64) {
	a.yticks = ticks
}

// project maps a data coordinate on axis to display space, applying
// the installed fold scale if there is one.
func (a *Axes) project(axis fold.Axis, v float64) float64 {
	s := a.scales[axis]
	if s == nil {
		return v
	}
	if s.Mode == fold.ModeLog {
		v = math.Log10(v)
	}
	return s.Forward(v)
}

// unproject is the inverse of project.
func (a *Axes) unproject(axis fold.Axis, v float64) float64 {
	s := a.scales[axis]
	if s == nil {
		return v
	}
	v = s.Inverse(v)
	if s.Mode == fold.ModeLog {
		v = math.Pow(10, v)
	}
	return v
}

// limits returns the data limits for axis, computed from the plotted
// series when not set explicitly. Bar series always extend the y
// limits to their zero baseline.
func (a *Axes) limits(axis fold.Axis) (lo, hi float64) {
	if axis == fold.XAxis && a.haveXLim {
		return a.xlim[0], a.xlim[1]
	}
	if axis == fold.YAxis && a.haveYLim {
		return a.ylim[0], a.ylim[1]
	}

	first := true
	for _, s := range a.series {
		vs := s.xs
		if axis == fold.YAxis {
			vs = s.ys
		}
		for _, v := range vs {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		if axis == fold.YAxis && s.kind == barSeries {
			lo = math.Min(lo, 0)
			hi = math.Max(hi, 0)
		}
	}
	if first {
		return 0, 1
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}
