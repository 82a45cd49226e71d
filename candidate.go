// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Fitness is an immutable, ordered vector of objective values under
// minimization semantics throughout. Callers wishing to maximize an
// objective must invert or negate it themselves before handing it to the
// optimizer. Treat a Fitness as a value once constructed: nothing in this
// package mutates one after assignment, since fitness vectors double as
// map keys in the non-dominated sort.
type Fitness []float64

// empty reports whether this fitness vector signals "needs evaluation".
func (f Fitness) empty() bool { return len(f) == 0 }

// Dominates reports whether f Pareto-dominates other: no worse in every
// objective, and strictly better in at least one.
func (f Fitness) Dominates(other Fitness) bool {
	return dominatesSlice(f, other, len(f))
}

// dominatesSlice reports whether a dominates b considering only the first
// n objectives of each, via the teacher's Pareto-min comparator.
func dominatesSlice(a, b Fitness, n int) bool {
	aDominates, _ := utl.DblsParetoMin([]float64(a[:n]), []float64(b[:n]))
	return aDominates
}

// key returns a string uniquely identifying this fitness vector's value,
// used to intern identical tuples together for non-dominated sorting
// (tuples are used as hash keys per the design notes).
func (f Fitness) key() string {
	var b strings.Builder
	for i, v := range f {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

// activeKind selects which of a Candidate's two fitness vectors is
// currently used for dominance comparisons and normalization.
type activeKind int

const (
	activeTraining activeKind = iota
	activeValidation
)

// Candidate represents one solution in the search space.
type Candidate struct {
	Solution []float64 // ordered sequence of real values, one per dimension

	TrainingFitness   Fitness // immutable; empty means "needs evaluation"
	ValidationFitness Fitness // optional; nil when the problem has no validation dataset
	active            activeKind

	NormalizedFitness Fitness // set by the normalizer; invalid once active/generation changes

	ClosestReferenceDirection             ReferenceDirection // set by the associator
	DistanceToClosestReferenceDirection   float64
	hasClosestReferenceDirection          bool

	NonDominatedRank int // 0 = leading front; set by non-dominated sort

	Payload any // opaque, caller-owned
}

// NewCandidate wraps a solution vector in a fresh, unevaluated Candidate.
func NewCandidate(solution []float64) *Candidate {
	return &Candidate{Solution: solution, active: activeTraining}
}

// Fitness returns whichever of training/validation fitness is currently
// active (exactly one is active at a time).
func (c *Candidate) Fitness() Fitness {
	if c.active == activeValidation {
		return c.ValidationFitness
	}
	return c.TrainingFitness
}

// ActivateTrainingFitness makes dominance/normalization use training data.
func (c *Candidate) ActivateTrainingFitness() { c.active = activeTraining }

// ActivateValidationFitness makes dominance/normalization use validation data.
func (c *Candidate) ActivateValidationFitness() { c.active = activeValidation }

// NeedsEvaluation reports whether this candidate's training fitness has
// not yet been assigned.
func (c *Candidate) NeedsEvaluation() bool { return c.TrainingFitness.empty() }

// CloneSolution copies only the solution vector into a new Candidate; all
// derived fields (fitnesses, rank, association, normalized fitness) start
// fresh, matching the lifecycle rule that mutation/crossover invalidates
// everything downstream of the solution.
func (c *Candidate) CloneSolution() *Candidate {
	solution := make([]float64, len(c.Solution))
	copy(solution, c.Solution)
	return NewCandidate(solution)
}

// Bind clamps and (if applicable) quantizes every coordinate of this
// candidate's solution against the supplied dimensions.
func (c *Candidate) Bind(dimensions []*SolutionDimension) {
	for i, dim := range dimensions {
		c.Solution[i] = dim.Bind(c.Solution[i])
	}
}

// setClosestReferenceDirection records this candidate's association,
// performed by the associator.
func (c *Candidate) setClosestReferenceDirection(dir ReferenceDirection, dist float64) {
	c.ClosestReferenceDirection = dir
	c.DistanceToClosestReferenceDirection = dist
	c.hasClosestReferenceDirection = true
}

// String renders a one-line summary of this candidate, used in reports and
// test failure messages.
func (c *Candidate) String() string {
	line := io.Sf("Candidate. Training: %v", []float64(c.TrainingFitness))
	if c.ValidationFitness != nil {
		line += io.Sf("; validation: %v", []float64(c.ValidationFitness))
	}
	line += io.Sf("; solution: %v", c.Solution)
	return line
}
