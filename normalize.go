// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import (
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// NormalizeFitnesses translates the population by its per-objective minima
// and rescales by the hyperplane intercepts of its extreme points,
// following Deb & Jain (2014) part 4.C, storing the result on each
// candidate's NormalizedFitness. The population's active
// fitness (training or validation, whichever each candidate currently has
// selected) is what gets normalized.
func NormalizeFitnesses(population []*Candidate, numObjectives int) {
	if len(population) == 0 {
		return
	}
	minPoint := make([]float64, numObjectives)
	column := make([]float64, len(population))
	for m := 0; m < numObjectives; m++ {
		for i, c := range population {
			column[i] = c.Fitness()[m]
		}
		minPoint[m], _ = la.VecMinMax(column)
	}

	translated := make([]Fitness, len(population))
	for i, c := range population {
		t := make(Fitness, numObjectives)
		for m := 0; m < numObjectives; m++ {
			t[m] = c.Fitness()[m] - minPoint[m]
		}
		translated[i] = t
	}

	extremes := extremePoints(translated, numObjectives)
	intercepts := hyperplaneIntercepts(extremes, numObjectives)

	for i, c := range population {
		norm := make(Fitness, numObjectives)
		for m := 0; m < numObjectives; m++ {
			if intercepts[m] != 0 {
				norm[m] = translated[i][m] / intercepts[m]
			} else {
				norm[m] = 1
			}
		}
		c.NormalizedFitness = norm
	}
}

// extremePoints returns, for each objective m, the translated fitness with
// the largest value in objective m; ties resolve to the last such fitness
// under an ascending sort (matching the Python original's
// sorted(...)[-1]).
func extremePoints(translated []Fitness, numObjectives int) []Fitness {
	extremes := make([]Fitness, numObjectives)
	for m := 0; m < numObjectives; m++ {
		best := translated[0]
		for _, t := range translated[1:] {
			if t[m] == utl.Max(best[m], t[m]) {
				best = t
			}
		}
		extremes[m] = best
	}
	return extremes
}

// hyperplaneIntercepts solves A x = 1 for the hyperplane whose rows are the
// extreme points, returning 1/x as the intercepts. Falls back to the
// diagonal of the extreme-point matrix when the system is degenerate
// (duplicate extreme rows).
func hyperplaneIntercepts(extremes []Fitness, n int) []float64 {
	if duplicateRows(extremes) {
		diag := make([]float64, n)
		for i := 0; i < n; i++ {
			diag[i] = extremes[i][i]
		}
		return diag
	}
	a := la.MatAlloc(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j] = extremes[i][j]
		}
	}
	x, ok := solveLinearSystemOnes(a)
	if !ok {
		diag := make([]float64, n)
		for i := 0; i < n; i++ {
			diag[i] = extremes[i][i]
		}
		return diag
	}
	intercepts := make([]float64, n)
	for i := range x {
		intercepts[i] = 1.0 / x[i]
	}
	return intercepts
}

// duplicateRows reports whether any two extreme points are element-wise
// equal, the degeneracy signal that triggers the diagonal fallback above.
func duplicateRows(extremes []Fitness) bool {
	for i := 0; i < len(extremes); i++ {
		for j := i + 1; j < len(extremes); j++ {
			if equalSlice(extremes[i], extremes[j], len(extremes[i])) {
				return true
			}
		}
	}
	return false
}

// solveLinearSystemOnes solves a*x = 1 (a vector of ones) via Gaussian
// elimination with partial pivoting. n here is always the small objective
// count, so a hand-rolled dense solve (rather than reaching for a
// LAPACK-backed solver) keeps this self-contained.
func solveLinearSystemOnes(a [][]float64) (x []float64, ok bool) {
	n := len(a)
	m := la.MatAlloc(n, n+1)
	for i := 0; i < n; i++ {
		copy(m[i], a[i])
		m[i][n] = 1
	}
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if abs64(m[r][col]) > abs64(m[pivot][col]) {
				pivot = r
			}
		}
		if abs64(m[pivot][col]) < 1e-14 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}
	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = m[i][n] / m[i][i]
	}
	return x, true
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
