// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image/color"
	"math"
	"testing"

	"github.com/wuyao1997/go-foldaxis/fold"
)

func aeq(x, y float64) bool {
	tol := 1e-9 * math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	return math.Abs(x-y) <= tol
}

func TestProjectWithoutScaleIsIdentity(t *testing.T) {
	a := NewAxes()
	for _, v := range []float64{-3, 0, 42} {
		if got := a.project(fold.XAxis, v); got != v {
			t.Errorf("project(%v) = %v", v, got)
		}
	}
}

func TestProjectRoundTrip(t *testing.T) {
	a := NewAxes()
	err := fold.Fold(a, []fold.Interval{{Low: -28, High: -2, Factor: 0.015}, {Low: 2, High: 28, Factor: 0.015}}, nil)
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if a.Scale(fold.XAxis) == nil {
		t.Fatal("no x scale installed")
	}
	for _, v := range []float64{-40, -28, -5, 0, 5, 28, 40} {
		d := a.project(fold.XAxis, v)
		if back := a.unproject(fold.XAxis, d); !aeq(back, v) {
			t.Errorf("unproject(project(%v)) = %v", v, back)
		}
	}
}

func TestProjectLogMode(t *testing.T) {
	a := NewAxes()
	err := fold.Fold(a, []fold.Interval{{Low: 1, High: 2, Factor: 0.5}}, &fold.Options{
		Axis: fold.YAxis,
		Mode: fold.ModeLog,
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	// Below the folded range the transform is the identity in log
	// space, so project must reduce to log10.
	if got := a.project(fold.YAxis, 10); !aeq(got, 1) {
		t.Errorf("project(10) = %v, want 1", got)
	}
	if back := a.unproject(fold.YAxis, a.project(fold.YAxis, 5000)); !aeq(back, 5000) {
		t.Errorf("log round trip = %v, want 5000", back)
	}
}

func TestAutoLimits(t *testing.T) {
	a := NewAxes()
	a.Plot([]float64{-3, 1, 7}, []float64{5, 2, 9}, color.Black)
	if lo, hi := a.limits(fold.XAxis); lo != -3 || hi != 7 {
		t.Errorf("x limits = (%v, %v), want (-3, 7)", lo, hi)
	}
	if lo, hi := a.limits(fold.YAxis); lo != 2 || hi != 9 {
		t.Errorf("y limits = (%v, %v), want (2, 9)", lo, hi)
	}
}

func TestBarLimitsIncludeBaseline(t *testing.T) {
	a := NewAxes()
	a.Bar([]float64{1, 2}, []float64{5, 9}, 0.8, color.Black)
	if lo, _ := a.limits(fold.YAxis); lo != 0 {
		t.Errorf("bar y limit = %v, want 0 baseline", lo)
	}
}

func TestExplicitLimitsAndTicks(t *testing.T) {
	a := NewAxes()
	a.Plot([]float64{0, 100}, []float64{0, 100}, color.Black)
	a.SetXLim(-5, 5)
	if lo, hi := a.limits(fold.XAxis); lo != -5 || hi != 5 {
		t.Errorf("x limits = (%v, %v), want (-5, 5)", lo, hi)
	}
	want := []float64{0, 25, 50}
	a.SetYTicks(want)
	major, minor := a.ticks(fold.YAxis, 0, 100)
	if len(minor) != 0 || len(major) != len(want) {
		t.Fatalf("ticks = %v, %v; want explicit %v", major, minor, want)
	}
	for i := range want {
		if major[i] != want[i] {
			t.Errorf("major[%d] = %v, want %v", i, major[i], want[i])
		}
	}
}

func TestAutoTicksOrdered(t *testing.T) {
	a := NewAxes()
	major, _ := a.ticks(fold.XAxis, -31, 31)
	if len(major) < 2 {
		t.Fatalf("got %d major ticks", len(major))
	}
	for i := 1; i < len(major); i++ {
		if major[i] <= major[i-1] {
			t.Errorf("ticks not ascending: %v", major)
		}
	}
}

func TestRenderSmoke(t *testing.T) {
	a := NewAxes()
	xs := []float64{-31, -30, -29, -1, 0, 1, 29, 30, 31}
	ys := []float64{22, 41, 13, 8, 172, 30, 19, 44, 25}
	a.Bar(xs, ys, 0.8, color.NRGBA{0x1f, 0x77, 0xb4, 0xff})
	a.SetTitle("Broken Axis Example")
	a.Grid(true)

	err := fold.Fold(a, []fold.Interval{{Low: -28, High: -2, Factor: 0.015}, {Low: 2, High: 28, Factor: 0.015}}, nil)
	if err != nil {
		t.Fatalf("Fold x: %v", err)
	}
	err = fold.Fold(a, []fold.Interval{{Low: 55, High: 145, Factor: 0.05}}, &fold.Options{
		Axis:  fold.YAxis,
		Spine: fold.SpineBoth,
	})
	if err != nil {
		t.Fatalf("Fold y: %v", err)
	}

	img, err := a.Render(400, 300)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds().Dx(); got != 400 {
		t.Errorf("width = %d, want 400", got)
	}
	if got := img.At(1, 1); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("background pixel = %v, want white", got)
	}
	// The frame's top edge is outside both folds and must be drawn.
	if got := img.At(marginLeft+1, marginTop); got != (color.NRGBA{0, 0, 0, 0xff}) {
		t.Errorf("frame pixel = %v, want black", got)
	}
}
