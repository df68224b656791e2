// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fold

import (
	"fmt"
	"math"
)

// An Interval declares one folded sub-range of an axis. Data
// coordinates in (Low, High] are compressed by Factor in display
// space. A Factor below 1 shrinks the range on screen; a Factor
// above 1 expands it.
type Interval struct {
	Low, High float64
	Factor    float64
}

// An IntervalSet is a validated, immutable, ascending list of
// disjoint fold intervals. The zero value is an empty set.
type IntervalSet struct {
	intervals []Interval
}

// An UnsortedOrOverlappingError reports an interval list that is not
// strictly increasing and non-overlapping.
type UnsortedOrOverlappingError struct {
	Index int // index of the offending interval
}

func (e *UnsortedOrOverlappingError) Error() string {
	return fmt.Sprintf("fold: interval %d is unsorted or overlaps its predecessor", e.Index)
}

// A NonPositiveFactorError reports a declared scale factor that is
// not positive.
type NonPositiveFactorError struct {
	Index  int
	Factor float64
}

func (e *NonPositiveFactorError) Error() string {
	return fmt.Sprintf("fold: interval %d has non-positive factor %v", e.Index, e.Factor)
}

// NewIntervalSet validates intervals and returns them as an
// IntervalSet. Each interval must satisfy Low < High and Factor > 0,
// and each interval's Low must strictly exceed the previous
// interval's High. The input slice is copied; the caller may reuse
// it.
func NewIntervalSet(intervals []Interval) (IntervalSet, error) {
	prevHigh := math.Inf(-1)
	for i, iv := range intervals {
		if !(iv.Low < iv.High && prevHigh < iv.Low) {
			return IntervalSet{}, &UnsortedOrOverlappingError{Index: i}
		}
		if iv.Factor <= 0 {
			return IntervalSet{}, &NonPositiveFactorError{Index: i, Factor: iv.Factor}
		}
		prevHigh = iv.High
	}
	set := IntervalSet{intervals: make([]Interval, len(intervals))}
	copy(set.intervals, intervals)
	return set, nil
}

// Len returns the number of intervals in the set.
func (s IntervalSet) Len() int {
	return len(s.intervals)
}

// Intervals returns a copy of the intervals in ascending order.
func (s IntervalSet) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}
