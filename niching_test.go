package unsga3_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/unsga3"
)

type NichingSuite struct {
	suite.Suite
}

func (s *NichingSuite) SetupTest() {
	rnd.Init(3)
}

// TestSelectNextPopulationReturnsExactSize covers invariant 5: population
// size stays constant through selection.
func (s *NichingSuite) TestSelectNextPopulationReturnsExactSize() {
	directions, err := unsga3.GenerateReferenceDirections(2, 6)
	require.NoError(s.T(), err)

	pool := make([]*unsga3.Candidate, 0, 20)
	for i := 0; i < 20; i++ {
		x := float64(i) / 19.0
		c := unsga3.NewCandidate([]float64{x})
		c.TrainingFitness = unsga3.Fitness{x, 1 - x}
		c.ActivateTrainingFitness()
		pool = append(pool, c)
	}

	selected := unsga3.SelectNextPopulation(pool, 10, directions, 2)
	require.Len(s.T(), selected, 10)
}

func TestNichingSuite(t *testing.T) {
	suite.Run(t, new(NichingSuite))
}
