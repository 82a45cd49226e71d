package unsga3_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cpmech/unsga3"
)

type OptimizerSuite struct {
	suite.Suite
}

func biObjectiveDimension(t require.TestingT) []*unsga3.SolutionDimension {
	d, err := unsga3.NewSolutionDimension(0, 1, 0, nil)
	require.NoError(t, err)
	return []*unsga3.SolutionDimension{d}
}

// TestS6EndToEndMinimization is scenario S6: f(x) = (x, (x-1)^2) on [0,1]
// should converge to a training front spanning the extremes with a
// monotone trade-off between the two objectives.
func (s *OptimizerSuite) TestS6EndToEndMinimization() {
	evaluate := func(candidates []*unsga3.Candidate, generation int) ([]unsga3.Fitness, []unsga3.Fitness, error) {
		training := make([]unsga3.Fitness, len(candidates))
		for i, c := range candidates {
			x := c.Solution[0]
			training[i] = unsga3.Fitness{x, (x - 1) * (x - 1)}
		}
		return training, nil, nil
	}

	opt, err := unsga3.NewOptimizer(biObjectiveDimension(s.T()), 2, 50, 12, 0, 20, evaluate)
	require.NoError(s.T(), err)

	generations, trainingFront, validationFront, err := opt.Run(1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 50, generations)
	require.Nil(s.T(), validationFront)
	require.NotEmpty(s.T(), trainingFront)

	minX, maxX := trainingFront[0].Solution[0], trainingFront[0].Solution[0]
	for _, c := range trainingFront {
		x := c.Solution[0]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}
	require.Less(s.T(), minX, 0.15)
	require.Greater(s.T(), maxX, 0.85)

	for i := range trainingFront {
		for j := range trainingFront {
			if i == j {
				continue
			}
			require.False(s.T(), trainingFront[i].Fitness().Dominates(trainingFront[j].Fitness()))
		}
	}
}

func (s *OptimizerSuite) TestRejectsBadPopulationSize() {
	evaluate := func(candidates []*unsga3.Candidate, generation int) ([]unsga3.Fitness, []unsga3.Fitness, error) {
		return nil, nil, nil
	}
	_, err := unsga3.NewOptimizer(biObjectiveDimension(s.T()), 2, 10, 4, 3, 20, evaluate)
	require.Error(s.T(), err)

	_, err = unsga3.NewOptimizer(biObjectiveDimension(s.T()), 2, 10, 4, 13, 20, evaluate)
	require.Error(s.T(), err)
}

func withValidation(candidates []*unsga3.Candidate, validation ...unsga3.Fitness) []*unsga3.Candidate {
	for i, c := range candidates {
		c.ValidationFitness = validation[i]
	}
	return candidates
}

// TestOverfittingMetricRange covers invariant 7: the overfitting metric
// always lies in [0,1].
func (s *OptimizerSuite) TestOverfittingMetricRange() {
	training := withValidation(candidatesFrom(unsga3.Fitness{0, 1}, unsga3.Fitness{1, 0}, unsga3.Fitness{0.5, 0.6}),
		unsga3.Fitness{0, 1}, unsga3.Fitness{1, 0}, unsga3.Fitness{0.5, 0.6})
	validation := withValidation(candidatesFrom(unsga3.Fitness{0, 1}, unsga3.Fitness{1, 0}),
		unsga3.Fitness{0, 1}, unsga3.Fitness{1, 0})
	metric := unsga3.OverfittingMetric(training, validation, 2)
	require.GreaterOrEqual(s.T(), metric, 0.0)
	require.LessOrEqual(s.T(), metric, 1.0)
}

func (s *OptimizerSuite) TestOverfittingMetricZeroWhenFullyOverlapping() {
	training := withValidation(candidatesFrom(unsga3.Fitness{0, 1}, unsga3.Fitness{1, 0}),
		unsga3.Fitness{0, 1}, unsga3.Fitness{1, 0})
	metric := unsga3.OverfittingMetric(training, nil, 2)
	require.Equal(s.T(), 0.0, metric)
}

func TestOptimizerSuite(t *testing.T) {
	suite.Run(t, new(OptimizerSuite))
}
