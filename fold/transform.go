// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fold

import "github.com/aclements/go-moremath/vec"

// A Transform is a strictly monotonic piecewise-linear mapping
// between data coordinates and display coordinates. Inside each fold
// interval the slope is the interval's factor; everywhere else the
// slope is 1, shifted by the cumulative compression of all preceding
// intervals. Below the first breakpoint the mapping is the identity.
//
// A Transform is immutable after construction and safe for
// concurrent use without synchronization.
type Transform struct {
	set IntervalSet
	tab *table // nil for an empty set; identity mapping
}

// NewTransform validates intervals and builds their fold transform.
// With no intervals the transform is the identity.
func NewTransform(intervals []Interval) (*Transform, error) {
	set, err := NewIntervalSet(intervals)
	if err != nil {
		return nil, err
	}
	t := &Transform{set: set}
	if set.Len() > 0 {
		t.tab = newTable(set)
	}
	return t, nil
}

// Forward maps a data coordinate to its display coordinate.
func (t *Transform) Forward(x float64) float64 {
	if t.tab == nil {
		return x
	}
	return t.tab.forward(x)
}

// Inverse maps a display coordinate back to its data coordinate.
// Inverse is the exact inverse of Forward up to floating-point
// error.
func (t *Transform) Inverse(y float64) float64 {
	if t.tab == nil {
		return y
	}
	return t.tab.inverse(y)
}

// ForwardAll returns Forward applied to each element of xs.
func (t *Transform) ForwardAll(xs []float64) []float64 {
	return vec.Map(t.Forward, xs)
}

// InverseAll returns Inverse applied to each element of ys.
func (t *Transform) InverseAll(ys []float64) []float64 {
	return vec.Map(t.Inverse, ys)
}

// Intervals returns a copy of the fold intervals the transform was
// built from, in ascending order.
func (t *Transform) Intervals() []Interval {
	return t.set.Intervals()
}
