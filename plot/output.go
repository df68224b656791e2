// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "math"

// An OutputScale maps the normalized [0, 1] range produced by an
// axis scale onto a pixel range. Min may exceed Max, which flips
// the direction; the y axis uses this because image coordinates
// grow downward.
type OutputScale struct {
	Min, Max float64
	clamp    clampMode
}

type clampMode int

const (
	clampCrop clampMode = iota
	clampNone
	clampClamp
)

func NewOutputScale(min, max float64) OutputScale {
	return OutputScale{Min: min, Max: max}
}

// Crop makes Of reject inputs outside [0, 1]. This is the default.
func (s *OutputScale) Crop() {
	s.clamp = clampCrop
}

// Unclamp makes Of extrapolate inputs outside [0, 1].
func (s *OutputScale) Unclamp() {
	s.clamp = clampNone
}

// Clamp makes Of pin inputs outside [0, 1] to the range ends.
func (s *OutputScale) Clamp() {
	s.clamp = clampClamp
}

// Of maps x in [0, 1] to the output range. The bool result is false
// if x was cropped.
func (s OutputScale) Of(x float64) (float64, bool) {
	switch s.clamp {
	case clampCrop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case clampClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(s.Max-s.Min) + s.Min, true
}

// Px is Of rounded to the nearest integer pixel.
func (s OutputScale) Px(x float64) (int, bool) {
	y, ok := s.Of(x)
	return int(math.Round(y)), ok
}
