// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unsga3

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// Evaluator is the caller-supplied fitness contract: given the
// candidates needing evaluation and the current generation, it returns
// training fitness vectors in the same order as candidates, and optionally
// a parallel slice of validation fitness vectors. A nil validation slice
// means the run carries no validation front.
type Evaluator func(candidates []*Candidate, generation int) (training []Fitness, validation []Fitness, err error)

// Inspector is invoked once per completed generation with a read view of
// the optimizer's state. It must not retain or mutate the slices it is
// given beyond the call.
type Inspector func(generation int, trainingFront, validationFront []*Candidate)

// Optimizer drives the U-NSGA-III generational loop
type Optimizer struct {
	Dimensions      []*SolutionDimension
	NumObjectives   int
	MaxGenerations  int
	H               int
	PopulationSize  int
	OverfitThreshold float64
	hasOverfitThreshold bool
	EtaC            float64
	Evaluate        Evaluator
	OnGeneration    Inspector

	directions []ReferenceDirection

	// OverfitHistory records the overfitting metric computed at every
	// generation that had a validation front; it is the
	// exported substitute for the original implementation's
	// plot_overfitted, which plotting is out of scope for this package.
	OverfitHistory []float64

	// Report accumulates a human-readable per-generation trace, in the
	// style of the teacher's Island.Report.
	Report bytes.Buffer

	terminated bool
}

// NewOptimizer validates configuration and builds the reference directions
//. populationSize <= 0 means "derive the smallest
// valid size automatically".
func NewOptimizer(dimensions []*SolutionDimension, numObjectives, maxGenerations, h, populationSize int, etaC float64, evaluate Evaluator) (*Optimizer, error) {
	if len(dimensions) == 0 {
		return nil, &ConfigError{Msg: "at least one solution dimension is required"}
	}
	if numObjectives < 1 {
		return nil, &ConfigError{Msg: "numObjectives must be >= 1"}
	}
	if maxGenerations < 1 {
		return nil, &ConfigError{Msg: "maxGenerations must be >= 1"}
	}
	if evaluate == nil {
		return nil, &ConfigError{Msg: "fitness evaluator must be non nil"}
	}

	directions, err := GenerateReferenceDirections(numObjectives, h)
	if err != nil {
		return nil, err
	}

	n := populationSize
	if n <= 0 {
		n = len(directions)
		if n%4 != 0 {
			n += 4 - n%4
		}
	} else {
		if n <= len(directions) {
			return nil, &ConfigError{Msg: io.Sf("population size %d must exceed the reference-direction count %d", n, len(directions))}
		}
		if n%4 != 0 {
			return nil, &ConfigError{Msg: io.Sf("population size %d must be a multiple of 4", n)}
		}
	}

	if etaC < 0 {
		return nil, &ConfigError{Msg: "etaC (SBX distribution index) must be >= 0"}
	}

	return &Optimizer{
		Dimensions:     dimensions,
		NumObjectives:  numObjectives,
		MaxGenerations: maxGenerations,
		H:              h,
		PopulationSize: n,
		EtaC:           etaC,
		Evaluate:       evaluate,
		directions:     directions,
	}, nil
}

// SetOverfitThreshold arms early termination on the overfitting metric;
// threshold must lie in [0,1].
func (o *Optimizer) SetOverfitThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return &ConfigError{Msg: "overfit threshold must lie in [0,1]"}
	}
	o.OverfitThreshold = threshold
	o.hasOverfitThreshold = true
	return nil
}

// seedPopulation builds the initial population by uniform random sampling
// within each dimension's bounds, then binds every candidate. The teacher's
// ecosystem (gosl/rnd) exposes no Latin-hypercube sampler among the call
// sites this module is grounded on, so this always takes the uniform-random
// path described as the fallback
func (o *Optimizer) seedPopulation() []*Candidate {
	population := make([]*Candidate, o.PopulationSize)
	for i := 0; i < o.PopulationSize; i++ {
		solution := make([]float64, len(o.Dimensions))
		for j, dim := range o.Dimensions {
			solution[j] = rnd.Float64(dim.Min, dim.Max)
		}
		c := NewCandidate(solution)
		c.Bind(o.Dimensions)
		population[i] = c
	}
	return population
}

// Run executes the generational loop and returns the number
// of completed generations, the terminal training Pareto front, and the
// terminal validation Pareto front (nil if the evaluator never supplied
// validation fitnesses). seed initializes the shared random source so the
// run is reproducible.
func (o *Optimizer) Run(seed int) (generationsCompleted int, trainingFront, validationFront []*Candidate, err error) {
	rnd.Init(seed)

	population := o.seedPopulation()
	if err := o.assignFitness(population, 0); err != nil {
		return 0, nil, nil, err
	}
	activateAll(population, activeTraining)
	population = SelectNextPopulation(population, o.PopulationSize, o.directions, o.NumObjectives)
	trainingFront = rankZero(population)

	var previousValidationFront []*Candidate
	hasValidation := false

	for g := 0; g < o.MaxGenerations; g++ {
		parents := NichingTournament(population, o.PopulationSize)
		children := SimulatedBinaryCrossover(parents, o.Dimensions, o.EtaC, o.PopulationSize)
		MutateBoundedPolynomial(children, o.Dimensions, g, o.MaxGenerations, o.PopulationSize)
		for _, c := range children {
			c.Bind(o.Dimensions)
		}

		pending := needingEvaluation(children)
		if err := o.assignFitness(pending, g+1); err != nil {
			return g, trainingFront, validationFront, err
		}

		pool := append(append([]*Candidate(nil), population...), children...)
		activateAll(pool, activeTraining)
		population = SelectNextPopulation(pool, o.PopulationSize, o.directions, o.NumObjectives)
		trainingFront = rankZero(population)

		hasMetric := false
		var metric float64
		if candidatesHaveValidation(population) {
			hasValidation = true
			extended := append(append([]*Candidate(nil), population...), previousValidationFront...)
			activateAll(extended, activeValidation)
			selected := SelectNextPopulation(extended, o.PopulationSize, o.directions, o.NumObjectives)
			validationFront = rankZero(selected)
			previousValidationFront = validationFront

			metric = OverfittingMetric(trainingFront, validationFront, o.NumObjectives)
			hasMetric = true
			o.OverfitHistory = append(o.OverfitHistory, metric)
			if o.hasOverfitThreshold && metric > o.OverfitThreshold {
				o.terminated = true
			}
		}

		o.Report.WriteString(Sprint(g, len(trainingFront), len(validationFront), metric, hasMetric))

		generationsCompleted = g + 1
		if o.OnGeneration != nil {
			o.OnGeneration(generationsCompleted, trainingFront, validationFront)
		}
		if o.terminated {
			break
		}
	}

	if hasValidation && validationFront == nil {
		validationFront = previousValidationFront
	}
	return generationsCompleted, trainingFront, validationFront, nil
}

// assignFitness invokes the evaluator on candidates, enforces the fitness
// contract, and assigns the returned vectors.
func (o *Optimizer) assignFitness(candidates []*Candidate, generation int) error {
	if len(candidates) == 0 {
		return nil
	}
	training, validation, err := o.Evaluate(candidates, generation)
	if err != nil {
		return err
	}
	if len(training) != len(candidates) {
		return &ContractError{Msg: io.Sf("evaluator returned %d training fitnesses for %d candidates", len(training), len(candidates))}
	}
	if validation != nil && len(validation) != len(candidates) {
		return &ContractError{Msg: io.Sf("evaluator returned %d validation fitnesses for %d candidates", len(validation), len(candidates))}
	}
	for i, c := range candidates {
		if len(training[i]) != o.NumObjectives {
			return &ContractError{Msg: io.Sf("training fitness arity %d does not match configured objective count %d", len(training[i]), o.NumObjectives)}
		}
		c.TrainingFitness = training[i]
		if validation != nil {
			if len(validation[i]) != o.NumObjectives {
				return &ContractError{Msg: io.Sf("validation fitness arity %d does not match configured objective count %d", len(validation[i]), o.NumObjectives)}
			}
			c.ValidationFitness = validation[i]
		}
	}
	return nil
}

// needingEvaluation returns the subset of candidates whose training fitness
// has not yet been assigned.
func needingEvaluation(candidates []*Candidate) []*Candidate {
	var pending []*Candidate
	for _, c := range candidates {
		if c.NeedsEvaluation() {
			pending = append(pending, c)
		}
	}
	return pending
}

func activateAll(candidates []*Candidate, kind activeKind) {
	for _, c := range candidates {
		switch kind {
		case activeTraining:
			c.ActivateTrainingFitness()
		case activeValidation:
			c.ActivateValidationFitness()
		}
	}
}

func candidatesHaveValidation(candidates []*Candidate) bool {
	for _, c := range candidates {
		if c.ValidationFitness == nil {
			return false
		}
	}
	return len(candidates) > 0
}

func rankZero(population []*Candidate) []*Candidate {
	var front []*Candidate
	for _, c := range population {
		if c.NonDominatedRank == 0 {
			front = append(front, c)
		}
	}
	return front
}

// OverfittingMetric combines the training and
// validation fronts, activates validation fitnesses on the union, runs NDS,
// and measure how much of the training front falls outside the resulting
// leading front.
func OverfittingMetric(trainingFront, validationFront []*Candidate, numObjectives int) float64 {
	if len(trainingFront) == 0 {
		chk.Panic("overfitting metric requires a non-empty training front")
	}
	combined := make([]*Candidate, 0, len(trainingFront)+len(validationFront))
	for _, c := range trainingFront {
		combined = append(combined, c)
	}
	combined = append(combined, validationFront...)
	activateAll(combined, activeValidation)

	fronts := NonDominatedSort(combined)
	var leading []*Candidate
	if len(fronts) > 0 {
		leading = fronts[0]
	}
	leadingSet := make(map[*Candidate]bool, len(leading))
	for _, c := range leading {
		leadingSet[c] = true
	}
	inLeading := 0
	for _, c := range trainingFront {
		if leadingSet[c] {
			inLeading++
		}
	}
	return 1 - float64(inLeading)/float64(len(trainingFront))
}
