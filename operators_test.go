package unsga3_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cpmech/gosl/rnd"

	"github.com/cpmech/unsga3"
)

type OperatorsSuite struct {
	suite.Suite
}

func twoDimensions(t require.TestingT) []*unsga3.SolutionDimension {
	d0, err := unsga3.NewSolutionDimension(0, 1, 0, nil)
	require.NoError(t, err)
	d1, err := unsga3.NewSolutionDimension(0, 1, 0, nil)
	require.NoError(t, err)
	return []*unsga3.SolutionDimension{d0, d1}
}

// TestS5SBXReproducibility is scenario S5: with a fixed RNG seed, SBX on the
// same parent pair and bounds produces identical children across runs.
func (s *OperatorsSuite) TestS5SBXReproducibility() {
	dims := twoDimensions(s.T())
	run := func() []float64 {
		rnd.Init(42)
		p1 := unsga3.NewCandidate([]float64{0.2, 0.8})
		p2 := unsga3.NewCandidate([]float64{0.6, 0.4})
		parents := []*unsga3.Candidate{p1, p2}
		children := unsga3.SimulatedBinaryCrossover(parents, dims, 2, 2)
		require.Len(s.T(), children, 2)
		out := make([]float64, 0, 4)
		out = append(out, children[0].Solution...)
		out = append(out, children[1].Solution...)
		return out
	}
	first := run()
	second := run()
	require.Equal(s.T(), first, second)
}

func (s *OperatorsSuite) TestSBXChildrenRespectBounds() {
	dims := twoDimensions(s.T())
	rnd.Init(7)
	p1 := unsga3.NewCandidate([]float64{0.0, 1.0})
	p2 := unsga3.NewCandidate([]float64{1.0, 0.0})
	parents := []*unsga3.Candidate{p1, p2}
	children := unsga3.SimulatedBinaryCrossover(parents, dims, 2, 2)
	for _, c := range children {
		for _, v := range c.Solution {
			require.GreaterOrEqual(s.T(), v, 0.0)
			require.LessOrEqual(s.T(), v, 1.0)
		}
	}
}

func (s *OperatorsSuite) TestMutationRespectsBounds() {
	dims := twoDimensions(s.T())
	rnd.Init(11)
	c := unsga3.NewCandidate([]float64{0.5, 0.5})
	children := []*unsga3.Candidate{c}
	unsga3.MutateBoundedPolynomial(children, dims, 5, 50, 20)
	for _, v := range c.Solution {
		require.GreaterOrEqual(s.T(), v, 0.0)
		require.LessOrEqual(s.T(), v, 1.0)
	}
}

func TestOperatorsSuite(t *testing.T) {
	suite.Run(t, new(OperatorsSuite))
}
