package unsga3_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/cpmech/unsga3"
)

type ReferencePointsSuite struct {
	suite.Suite
}

// TestS4ThreeObjectivesFourIncrements is scenario S4: M=3, H=4 produces
// exactly C(3+4-2, 4-1) = 10 points, including the corners and the centroid.
func (s *ReferencePointsSuite) TestS4ThreeObjectivesFourIncrements() {
	directions, err := unsga3.GenerateReferenceDirections(3, 4)
	require.NoError(s.T(), err)
	require.Len(s.T(), directions, 10)

	requireHasPoint(s.T(), directions, []float64{1, 0, 0})
	requireHasPoint(s.T(), directions, []float64{0, 1, 0})
	requireHasPoint(s.T(), directions, []float64{0, 0, 1})
	requireHasPoint(s.T(), directions, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
}

// TestComponentsSumToOne covers invariant 6: every direction's components
// are non-negative and sum to 1 within floating tolerance.
func (s *ReferencePointsSuite) TestComponentsSumToOne() {
	directions, err := unsga3.GenerateReferenceDirections(4, 6)
	require.NoError(s.T(), err)
	for _, d := range directions {
		sum := 0.0
		for _, v := range d {
			require.GreaterOrEqual(s.T(), v, 0.0)
			sum += v
		}
		require.InDelta(s.T(), 1.0, sum, 1e-9)
	}
}

func (s *ReferencePointsSuite) TestRejectsInvalidConfiguration() {
	_, err := unsga3.GenerateReferenceDirections(0, 4)
	require.Error(s.T(), err)
	_, err = unsga3.GenerateReferenceDirections(3, 1)
	require.Error(s.T(), err)
}

func requireHasPoint(t require.TestingT, directions []unsga3.ReferenceDirection, want []float64) {
	for _, d := range directions {
		if len(d) != len(want) {
			continue
		}
		match := true
		for i := range want {
			if math.Abs(d[i]-want[i]) > 1e-9 {
				match = false
				break
			}
		}
		if match {
			return
		}
	}
	require.Fail(t, "expected point not found", "%v", want)
}

func TestReferencePointsSuite(t *testing.T) {
	suite.Run(t, new(ReferencePointsSuite))
}
