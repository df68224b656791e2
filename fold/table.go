// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fold

// A table holds the interleaved breakpoint coordinates of an
// IntervalSet, the slope of each segment between consecutive
// breakpoints, and the display coordinate of each breakpoint. It is
// built once by newTable and never mutated.
//
// For k intervals there are 2k breakpoints. Even-indexed segments
// are the declared intervals and carry their factors as slopes;
// odd-indexed segments are the gaps between intervals and have unit
// slope.
type table struct {
	x0    []float64 // breakpoints, ascending
	slope []float64 // per-segment slope: f1, 1, f2, 1, ...
	yoff  []float64 // display coordinate of each breakpoint
}

func newTable(set IntervalSet) *table {
	k := set.Len()
	tab := &table{
		x0:    make([]float64, 0, 2*k),
		slope: make([]float64, 0, 2*k),
		yoff:  make([]float64, 2*k),
	}
	for _, iv := range set.intervals {
		tab.x0 = append(tab.x0, iv.Low, iv.High)
		tab.slope = append(tab.slope, iv.Factor, 1)
	}
	// Below the first breakpoint the mapping is the identity, so
	// the first breakpoint maps to itself. Each later breakpoint
	// adds the preceding segment's width times its slope.
	tab.yoff[0] = tab.x0[0]
	for n := 1; n < 2*k; n++ {
		tab.yoff[n] = tab.yoff[n-1] + (tab.x0[n]-tab.x0[n-1])*tab.slope[n-1]
	}
	return tab
}

// forward maps a data coordinate to its display coordinate. Segments
// are half-open on the left: x0[n-1] < x <= x0[n] selects segment
// n-1. Beyond the last breakpoint the slope is 1.
func (t *table) forward(x float64) float64 {
	if x <= t.x0[0] {
		return x
	}
	for n := 1; n < len(t.x0); n++ {
		if x <= t.x0[n] {
			return (x-t.x0[n-1])*t.slope[n-1] + t.yoff[n-1]
		}
	}
	last := len(t.x0) - 1
	return (x - t.x0[last]) + t.yoff[last]
}

// inverse maps a display coordinate back to its data coordinate. It
// walks the same segments as forward against the yoff column, so
// inverse(forward(x)) == x up to floating-point error.
func (t *table) inverse(y float64) float64 {
	if y <= t.yoff[0] {
		return y
	}
	for n := 1; n < len(t.yoff); n++ {
		if y <= t.yoff[n] {
			return (y-t.yoff[n-1])/t.slope[n-1] + t.x0[n-1]
		}
	}
	last := len(t.yoff) - 1
	return (y - t.yoff[last]) + t.x0[last]
}
