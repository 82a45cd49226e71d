// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import "math"

// SolutionDimension describes one axis of the search space: a closed
// interval [Min,Max] and an optional quantization step Granularity. It is
// immutable over the lifetime of a run and may carry an opaque Payload set
// by the caller (e.g. a label or a back-pointer into problem-specific data).
type SolutionDimension struct {
	Min         float64 // lower bound, inclusive
	Max         float64 // upper bound, inclusive
	Granularity float64 // quantization step; <= 0 means "no granularity"
	Payload     any     // opaque, caller-owned
}

// NewSolutionDimension builds a dimension, checking min < max. Pass
// granularity <= 0 to leave the axis continuous.
func NewSolutionDimension(min, max, granularity float64, payload any) (*SolutionDimension, error) {
	if !(min < max) {
		return nil, &ConfigError{Msg: "dimension has min >= max: zero-width or inverted interval"}
	}
	return &SolutionDimension{Min: min, Max: max, Granularity: granularity, Payload: payload}, nil
}

// hasGranularity reports whether this dimension snaps to a value grid.
func (d *SolutionDimension) hasGranularity() bool {
	return d.Granularity > 0
}

// Bind clamps x to [Min,Max] then, if a granularity is set, snaps it to the
// nearest multiple of Granularity measured from zero, rounded to 10 decimal
// digits to suppress floating-point drift.
func (d *SolutionDimension) Bind(x float64) float64 {
	if x > d.Max {
		x = d.Max
	} else if x < d.Min {
		x = d.Min
	}
	if !d.hasGranularity() {
		return x
	}
	snapped := d.Granularity * math.Round(x/d.Granularity)
	return roundTo(snapped, 10)
}

// roundTo rounds x to n decimal digits.
func roundTo(x float64, n int) float64 {
	scale := math.Pow(10, float64(n))
	return math.Round(x*scale) / scale
}
