// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

// ReferenceDirection is an immutable point on the unit simplex: a tuple of
// non-negative reals summing to 1, used to spread selection across
// trade-off regions.
type ReferenceDirection []float64

// GenerateReferenceDirections enumerates the Das & Dennis simplex-lattice
// reference directions for m objectives with h increments (divisor
// p = h-1). It generates integer lattice points first and divides by p
// only once, avoiding floating accumulation error.
func GenerateReferenceDirections(m, h int) ([]ReferenceDirection, error) {
	if m < 1 {
		return nil, &ConfigError{Msg: "objective count must be >= 1"}
	}
	if h < 2 {
		return nil, &ConfigError{Msg: "reference-point increments must be >= 2"}
	}
	p := h - 1
	var points []ReferenceDirection
	k := make([]int, m)
	var recurse func(dim, remaining int)
	recurse = func(dim, remaining int) {
		if dim == m-1 {
			k[dim] = remaining
			point := make([]float64, m)
			inv := 1.0 / float64(p)
			for i, ki := range k {
				point[i] = float64(ki) * inv
			}
			points = append(points, ReferenceDirection(point))
			return
		}
		for i := 0; i <= remaining; i++ {
			k[dim] = i
			recurse(dim+1, remaining-i)
		}
	}
	recurse(0, p)
	return points, nil
}
