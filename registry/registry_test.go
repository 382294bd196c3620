package registry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/metrics"
	"github.com/probviz/distlab/schema"
)

// stubCalculator lets the tests register arbitrary metadata and results.
type stubCalculator struct {
	info    schema.CalculatorInfo
	result  schema.CalculationResult
	compute func(params map[string]float64, points int, seed uint64) (schema.CalculationResult, error)
}

func (s *stubCalculator) Describe() schema.CalculatorInfo { return s.info }

func (*stubCalculator) Validate(map[string]float64) error { return nil }

func (s *stubCalculator) Compute(params map[string]float64, points int, seed uint64) (schema.CalculationResult, error) {
	if s.compute != nil {
		return s.compute(params, points, seed)
	}

	return s.result, nil
}

func stubInfo(t format.CalculatorType) schema.CalculatorInfo {
	return schema.CalculatorInfo{
		Type:        t,
		Name:        "Stub",
		Description: "Stub calculator for registry tests.",
		Category:    format.CategoryContinuous,
		FormulaPDF:  `f(x) = 1`,
		Parameters: []schema.ParameterSpec{
			{Name: "a", Label: "a", Description: "a", Default: 0, Min: -1, Max: 1, Step: 0.1},
		},
	}
}

func TestRegistry_Register(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&stubCalculator{info: stubInfo(format.TypeUniform)}))

	err := r.Register(&stubCalculator{info: stubInfo(format.TypeUniform)})
	require.ErrorIs(t, err, errs.ErrTypeAlreadyRegistered)

	bad := stubInfo(format.TypeExponential)
	bad.Name = ""
	require.Error(t, r.Register(&stubCalculator{info: bad}))
}

func TestRegistry_ListOrdered(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&stubCalculator{info: stubInfo(format.TypeLinearRegression)}))
	require.NoError(t, r.Register(&stubCalculator{info: stubInfo(format.TypeUniform)}))

	require.Equal(t,
		[]format.CalculatorType{format.TypeUniform, format.TypeLinearRegression},
		r.Types())

	infos := r.List()
	require.Len(t, infos, 2)
	require.Equal(t, format.TypeUniform, infos[0].Type)
	require.Equal(t, format.TypeLinearRegression, infos[1].Type)
}

func TestRegistry_DescribeUnknown(t *testing.T) {
	r := New()
	_, err := r.Describe(format.TypeNormal)
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestRegistry_DispatchParamChecks(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&stubCalculator{
		info:   stubInfo(format.TypeUniform),
		result: schema.CalculationResult{Type: format.TypeUniform, X: []float64{0, 1}},
	}))

	tests := []struct {
		name    string
		req     schema.CalculationRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			req:     schema.CalculationRequest{Type: format.TypeNormal, Params: map[string]float64{"a": 0}},
			wantErr: errs.ErrUnknownType,
		},
		{
			name:    "missing parameter",
			req:     schema.CalculationRequest{Type: format.TypeUniform, Params: map[string]float64{"other": 0}},
			wantErr: errs.ErrMissingParameter,
		},
		{
			name:    "unexpected parameter",
			req:     schema.CalculationRequest{Type: format.TypeUniform, Params: map[string]float64{"a": 0, "extra": 1}},
			wantErr: errs.ErrUnexpectedParameter,
		},
		{
			name:    "out of range",
			req:     schema.CalculationRequest{Type: format.TypeUniform, Params: map[string]float64{"a": 2}},
			wantErr: errs.ErrInvalidParameter,
		},
		{
			name:    "point count too low",
			req:     schema.CalculationRequest{Type: format.TypeUniform, Params: map[string]float64{"a": 0}, Points: 1},
			wantErr: errs.ErrInvalidPointCount,
		},
		{
			name:    "point count too high",
			req:     schema.CalculationRequest{Type: format.TypeUniform, Params: map[string]float64{"a": 0}, Points: 10001},
			wantErr: errs.ErrInvalidPointCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Dispatch(tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_DispatchUnknownTypeWinsOverBadShape(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&stubCalculator{info: stubInfo(format.TypeUniform)}))

	// Lookup is sequenced before request-shape validation, so a request that
	// is wrong in both ways reports the unknown type.
	_, err := r.Dispatch(schema.CalculationRequest{
		Type:   format.TypeNormal,
		Params: map[string]float64{"a": 0},
		Points: 1,
	})
	require.ErrorIs(t, err, errs.ErrUnknownType)
	require.NotErrorIs(t, err, errs.ErrInvalidPointCount)
}

func TestRegistry_DispatchOutOfRangeNamesParam(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&stubCalculator{info: stubInfo(format.TypeUniform)}))

	_, err := r.Dispatch(schema.CalculationRequest{
		Type:   format.TypeUniform,
		Params: map[string]float64{"a": 5},
	})

	var verr *errs.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "a", verr.Param)
}

func TestRegistry_DispatchRejectsNonFiniteResult(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&stubCalculator{
		info: stubInfo(format.TypeUniform),
		result: schema.CalculationResult{
			Type: format.TypeUniform,
			X:    []float64{0, 1},
			PDF:  []float64{1, math.NaN()},
		},
	}))

	_, err := r.Dispatch(schema.CalculationRequest{
		Type:   format.TypeUniform,
		Params: map[string]float64{"a": 0},
	})
	require.ErrorIs(t, err, errs.ErrNumericInstability)
}

func TestRegistry_DispatchRejectsNonFiniteRegressionScalars(t *testing.T) {
	// Every serialized numeric field is scanned, not just the curves: a NaN
	// slope in a strategy report must fail the request even when all value
	// sequences are finite.
	result := schema.CalculationResult{
		Type: format.TypeUniform,
		X:    []float64{0, 1},
		Regression: &schema.RegressionResult{
			YTrue:     []float64{0, 1},
			YObserved: []float64{0, 1},
			YFitted:   []float64{0, 1},
			Selected:  format.FitAnalytical,
			Fits: []schema.FitReport{
				{Method: format.FitAnalytical, Slope: 1},
				{Method: format.FitMatrix, Slope: math.NaN()},
			},
		},
	}

	r := New()
	require.NoError(t, r.Register(&stubCalculator{
		info:   stubInfo(format.TypeUniform),
		result: result,
	}))

	_, err := r.Dispatch(schema.CalculationRequest{
		Type:   format.TypeUniform,
		Params: map[string]float64{"a": 0},
	})
	require.ErrorIs(t, err, errs.ErrNumericInstability)

	infMetric := result
	infMetric.Regression = &schema.RegressionResult{
		YTrue:     []float64{0, 1},
		YObserved: []float64{0, 1},
		YFitted:   []float64{0, 1},
		Selected:  format.FitAnalytical,
		Metrics:   metrics.Regression{RMSE: math.Inf(1)},
	}
	r2 := New()
	require.NoError(t, r2.Register(&stubCalculator{
		info:   stubInfo(format.TypeUniform),
		result: infMetric,
	}))

	_, err = r2.Dispatch(schema.CalculationRequest{
		Type:   format.TypeUniform,
		Params: map[string]float64{"a": 0},
	})
	require.ErrorIs(t, err, errs.ErrNumericInstability)
}

func TestRegistry_DispatchNormalizesDefaults(t *testing.T) {
	r := New()
	var gotPoints int
	var gotSeed uint64
	require.NoError(t, r.Register(&stubCalculator{
		info: stubInfo(format.TypeUniform),
		compute: func(_ map[string]float64, points int, seed uint64) (schema.CalculationResult, error) {
			gotPoints = points
			gotSeed = seed

			return schema.CalculationResult{Type: format.TypeUniform, X: []float64{0, 1}}, nil
		},
	}))

	_, err := r.Dispatch(schema.CalculationRequest{
		Type:   format.TypeUniform,
		Params: map[string]float64{"a": 0},
	})
	require.NoError(t, err)
	require.Equal(t, schema.DefaultPoints, gotPoints)
	require.Equal(t, uint64(schema.DefaultSeed), gotSeed)
}

func TestDefault_Registry(t *testing.T) {
	r := Default()
	require.Equal(t, []format.CalculatorType{
		format.TypeUniform,
		format.TypeExponential,
		format.TypeNormal,
		format.TypeLinearRegression,
	}, r.Types())

	res, err := r.Dispatch(schema.CalculationRequest{
		Type:   format.TypeUniform,
		Params: map[string]float64{"a": 0, "b": 1},
		Points: 5,
	})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, res.X)

	res, err = r.Dispatch(schema.CalculationRequest{
		Type: format.TypeLinearRegression,
		Params: map[string]float64{
			"slope": 2, "intercept": 1, "noise_std": 0, "pattern": 0,
		},
		Points: 50,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Regression)
	require.InDelta(t, 2.0, res.Regression.Slope, 1e-6)
}
