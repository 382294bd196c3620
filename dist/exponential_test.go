package dist

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
)

func TestExponential_CDFMonotoneAndBounded(t *testing.T) {
	for _, lambda := range []float64{0.1, 0.5, 1, 2.5, 5} {
		res, err := NewExponential().Compute(map[string]float64{"lambda": lambda}, 500, 0)
		require.NoError(t, err)

		require.Equal(t, format.TypeExponential, res.Type)
		prev := -1.0
		for i, c := range res.CDF {
			require.GreaterOrEqual(t, c, prev, "cdf must be non-decreasing at index %d", i)
			require.GreaterOrEqual(t, c, 0.0)
			require.LessOrEqual(t, c, 1.0)
			prev = c
		}

		// The cdf approaches 1 at the truncated upper bound.
		require.InDelta(t, 1.0, res.CDF[len(res.CDF)-1], 1e-5)
	}
}

func TestExponential_ClosedFormMoments(t *testing.T) {
	for _, lambda := range []float64{0.25, 1, 3} {
		res, err := NewExponential().Compute(map[string]float64{"lambda": lambda}, 100, 0)
		require.NoError(t, err)

		require.InDelta(t, 1/lambda, res.Mean, 1e-9)
		require.InDelta(t, 1/(lambda*lambda), res.Variance, 1e-9)
		require.InDelta(t, 1/lambda, res.StdDev, 1e-9)
	}
}

func TestExponential_DensityIntegratesToOne(t *testing.T) {
	res, err := NewExponential().Compute(map[string]float64{"lambda": 1.5}, 1000, 0)
	require.NoError(t, err)

	// Trapezoid error shrinks with point count; the truncated tail mass is
	// e^-14 and does not dominate this tolerance.
	require.InDelta(t, 1.0, trapezoid(res.X, res.PDF), 1e-3)
}

func TestExponential_GridStartsAtZero(t *testing.T) {
	res, err := NewExponential().Compute(map[string]float64{"lambda": 2}, 100, 0)
	require.NoError(t, err)

	require.Equal(t, 0.0, res.X[0])
	require.Equal(t, ExponentialTailMultiplier/2, res.X[len(res.X)-1])
	require.Len(t, res.X, 100)
}

func TestExponential_Validate(t *testing.T) {
	var ve *errs.ValidationError

	err := NewExponential().Validate(map[string]float64{"lambda": 0})
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "lambda", ve.Param)

	err = NewExponential().Validate(map[string]float64{"lambda": -1})
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "lambda", ve.Param)

	require.NoError(t, NewExponential().Validate(map[string]float64{"lambda": 0.1}))
}
