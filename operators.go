// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import (
	"math"

	"github.com/cpmech/gosl/rnd"
)

// NichingTournament runs the binary tournament selection,
// producing n selected parents from the supplied population. Index pairs
// 0,2,4,... paired with 1,3,5,... guarantee every parent is used at least
// once; the remaining n/2 tournaments draw both indices uniformly at
// random with replacement.
func NichingTournament(population []*Candidate, n int) []*Candidate {
	p1 := make([]int, 0, n)
	p2 := make([]int, 0, n)
	for i := 0; i < len(population); i += 2 {
		p1 = append(p1, i)
	}
	for i := 1; i < len(population); i += 2 {
		p2 = append(p2, i)
	}
	for len(p1) < n {
		p1 = append(p1, rnd.Int(0, len(population)-1))
	}
	for len(p2) < n {
		p2 = append(p2, rnd.Int(0, len(population)-1))
	}

	selected := make([]*Candidate, n)
	for i := 0; i < n; i++ {
		selected[i] = tournamentWinner(population[p1[i]], population[p2[i]])
	}
	return selected
}

// tournamentWinner resolves a single niching tournament between p1 and p2.
// A candidate lacking an association falls to the random-choice branch.
func tournamentWinner(p1, p2 *Candidate) *Candidate {
	sameDirection := p1.hasClosestReferenceDirection && p2.hasClosestReferenceDirection &&
		Fitness(p1.ClosestReferenceDirection).key() == Fitness(p2.ClosestReferenceDirection).key()
	if sameDirection {
		if p1.NonDominatedRank < p2.NonDominatedRank {
			return p1
		}
		if p2.NonDominatedRank < p1.NonDominatedRank {
			return p2
		}
		if p1.DistanceToClosestReferenceDirection < p2.DistanceToClosestReferenceDirection {
			return p1
		}
		return p2
	}
	if rnd.FlipCoin(0.5) {
		return p1
	}
	return p2
}

// SimulatedBinaryCrossover performs SBX on successive parent pairs,
// producing two children per pairing. etaC is the SBX
// distribution index.
func SimulatedBinaryCrossover(parents []*Candidate, dimensions []*SolutionDimension, etaC float64, populationSize int) []*Candidate {
	pairs := populationSize / 2
	p1 := make([]int, 0, pairs)
	p2 := make([]int, 0, pairs)
	for i := 0; i < len(parents) && len(p1) < pairs; i += 2 {
		p1 = append(p1, i)
	}
	for i := 1; i < len(parents) && len(p2) < pairs; i += 2 {
		p2 = append(p2, i)
	}
	for len(p1) < pairs {
		p1 = append(p1, rnd.Int(0, len(parents)-1))
	}
	for len(p2) < pairs {
		p2 = append(p2, rnd.Int(0, len(parents)-1))
	}

	children := make([]*Candidate, 0, 2*len(p1))
	for idx := range p1 {
		parent1, parent2 := parents[p1[idx]], parents[p2[idx]]
		child1 := parent1.CloneSolution()
		child2 := parent2.CloneSolution()
		for i, dim := range dimensions {
			c1, c2 := sbx(parent1.Solution[i], parent2.Solution[i], etaC, dim.Min, dim.Max)
			child1.Solution[i] = c1
			child2.Solution[i] = c2
		}
		children = append(children, child1, child2)
	}
	return children
}

// sbx performs per-coordinate simulated binary crossover.
func sbx(y1, y2, etaC, lower, upper float64) (c1, c2 float64) {
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if math.Abs(y1-y2) < 1e-14 {
		return y1, y2
	}
	beta := 1 + (2/(y2-y1))*math.Min(y1-lower, upper-y2)
	alpha := 2 - math.Pow(beta, -(etaC + 1))
	u := rnd.Float64(0, 1)
	var betaQ float64
	if u <= 1/alpha {
		betaQ = math.Pow(u*alpha, 1/(etaC+1))
	} else {
		betaQ = math.Pow(1/(2-u*alpha), 1/(etaC+1))
	}
	c1 = 0.5 * ((y1 + y2) - betaQ*(y2-y1))
	c2 = 0.5 * ((y1 + y2) + betaQ*(y2-y1))
	c1 = clamp(c1, lower, upper)
	c2 = clamp(c2, lower, upper)
	if rnd.FlipCoin(0.5) {
		c1, c2 = c2, c1
	}
	return c1, c2
}

// MutateBoundedPolynomial mutates each candidate's solution in place.
// Mutation probability and the distribution index both depend on the
// current generation.
func MutateBoundedPolynomial(children []*Candidate, dimensions []*SolutionDimension, generation, maxGenerations, populationSize int) {
	oneOverN := 1.0 / float64(populationSize)
	pm := oneOverN + (float64(generation)/float64(maxGenerations))*(1-oneOverN)
	etaM := 100 + float64(generation)
	for _, child := range children {
		for i, dim := range dimensions {
			if rnd.Float64(0, 1) <= pm {
				child.Solution[i] = polynomialMutate(child.Solution[i], dim.Min, dim.Max, etaM)
			}
		}
	}
}

// polynomialMutate mutates a single coordinate.
func polynomialMutate(y, lower, upper, etaM float64) float64 {
	u := rnd.Float64(0, 1)
	delta := math.Min(y-lower, upper-y) / (upper - lower)
	var deltaQ float64
	if u <= 0.5 {
		deltaQ = math.Pow(2*u+(1-2*u)*math.Pow(1-delta, etaM+1), 1/(etaM+1)) - 1
	} else {
		deltaQ = 1 - math.Pow(2*(1-u)+2*(u-0.5)*math.Pow(1-delta, etaM+1), 1/(etaM+1))
	}
	c := y + deltaQ*(upper-lower)
	return clamp(c, lower, upper)
}

func clamp(x, lower, upper float64) float64 {
	if x < lower {
		return lower
	}
	if x > upper {
		return upper
	}
	return x
}
