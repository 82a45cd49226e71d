// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Associate maps every candidate in population to its nearest reference
// direction by perpendicular distance in normalized fitness space, storing
// the association and distance on each candidate. The first minimum
// encountered wins on ties.
func Associate(population []*Candidate, directions []ReferenceDirection) {
	for _, c := range population {
		bestIdx := 0
		bestDist := math.Inf(1)
		for i, dir := range directions {
			dist := perpendicularDistance(dir, c.NormalizedFitness)
			if dist < bestDist {
				bestDist = dist
				bestIdx = i
			}
		}
		c.setClosestReferenceDirection(directions[bestIdx], bestDist)
	}
}

// perpendicularDistance computes the perpendicular distance from point p
// to the line through the origin along vector w: d = ||p - (<w,p>/||w||^2) w||.
func perpendicularDistance(w ReferenceDirection, p Fitness) float64 {
	wv := []float64(w)
	pv := []float64(p)
	k := la.VecDot(wv, pv) / la.VecDot(wv, wv)
	var sum float64
	for i := range pv {
		diff := pv[i] - k*wv[i]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
