// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fold

import (
	"errors"
	"image/color"
	"testing"
)

// recorder is a Renderer that records the calls made to it.
type recorder struct {
	scales  map[Axis]*Scale
	markers []recordedMarker
}

type recordedMarker struct {
	axis      Axis
	spine     Spine
	low, high float64
	style     MarkerStyle
}

func newRecorder() *recorder {
	return &recorder{scales: make(map[Axis]*Scale)}
}

func (r *recorder) SetScale(axis Axis, s *Scale) {
	r.scales[axis] = s
}

func (r *recorder) DrawFoldMarker(axis Axis, spine Spine, low, high float64, style MarkerStyle) {
	r.markers = append(r.markers, recordedMarker{axis, spine, low, high, style})
}

func TestFoldEmptyIsNoOp(t *testing.T) {
	r := newRecorder()
	if err := Fold(r, nil, nil); err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if len(r.scales) != 0 || len(r.markers) != 0 {
		t.Errorf("Fold with no intervals touched the renderer: %d scales, %d markers",
			len(r.scales), len(r.markers))
	}
}

func TestFoldInstallsScaleAndMarkers(t *testing.T) {
	r := newRecorder()
	intervals := []Interval{{-28, -2, 0.015}, {2, 28, 0.015}}
	opts := &Options{Axis: YAxis, Spine: SpineBoth, Mode: ModeLog}
	if err := Fold(r, intervals, opts); err != nil {
		t.Fatalf("Fold: %v", err)
	}

	s := r.scales[YAxis]
	if s == nil {
		t.Fatal("no scale installed on y axis")
	}
	if s.Mode != ModeLog {
		t.Errorf("scale mode = %v, want log", s.Mode)
	}
	if got := s.Forward(40); !aeq(got, -11.22) {
		t.Errorf("installed Forward(40) = %v, want -11.22", got)
	}

	if len(r.markers) != len(intervals) {
		t.Fatalf("got %d markers, want %d", len(r.markers), len(intervals))
	}
	for i, m := range r.markers {
		if m.axis != YAxis || m.spine != SpineBoth {
			t.Errorf("marker %d on axis %v spine %v", i, m.axis, m.spine)
		}
		if m.low != intervals[i].Low || m.high != intervals[i].High {
			t.Errorf("marker %d bounds (%v, %v), want (%v, %v)",
				i, m.low, m.high, intervals[i].Low, intervals[i].High)
		}
		if m.style != DefaultMarkerStyle() {
			t.Errorf("marker %d style = %+v, want default", i, m.style)
		}
	}
}

func TestFoldKeepsExplicitStyle(t *testing.T) {
	r := newRecorder()
	style := MarkerStyle{LineWidth: 2, Slope: 0.5, Color: color.White, CoverColor: color.Black, Size: 6}
	err := Fold(r, []Interval{{2, 8, 0.1}}, &Options{Style: style})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if r.markers[0].style != style {
		t.Errorf("marker style = %+v, want %+v", r.markers[0].style, style)
	}
}

func TestFoldFailsFast(t *testing.T) {
	r := newRecorder()
	err := Fold(r, []Interval{{-5, 5, 1}, {0, 10, 1}}, nil)
	var oerr *UnsortedOrOverlappingError
	if !errors.As(err, &oerr) {
		t.Fatalf("error = %v, want UnsortedOrOverlappingError", err)
	}
	if len(r.scales) != 0 || len(r.markers) != 0 {
		t.Error("renderer touched after validation failure")
	}
}
