package unsga3_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cpmech/unsga3"
)

type NormalizeSuite struct {
	suite.Suite
}

func (s *NormalizeSuite) TestTranslatesByMinimum() {
	population := candidatesFrom(
		unsga3.Fitness{2, 5}, unsga3.Fitness{4, 1}, unsga3.Fitness{1, 3},
	)
	unsga3.NormalizeFitnesses(population, 2)
	for _, c := range population {
		require.Len(s.T(), c.NormalizedFitness, 2)
		for _, v := range c.NormalizedFitness {
			require.GreaterOrEqual(s.T(), v, 0.0)
		}
	}
}

// TestDegenerateExtremesFallsBackToDiagonal covers the duplicate-extreme-row
// recovery path, which must not panic or divide by zero.
func (s *NormalizeSuite) TestDegenerateExtremesFallsBackToDiagonal() {
	population := candidatesFrom(
		unsga3.Fitness{0, 0}, unsga3.Fitness{1, 0}, unsga3.Fitness{0, 1}, unsga3.Fitness{2, 2},
	)
	require.NotPanics(s.T(), func() {
		unsga3.NormalizeFitnesses(population, 2)
	})
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeSuite))
}
