package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
)

func validSpec() ParameterSpec {
	return ParameterSpec{
		Name:        "lambda",
		Label:       "Rate (lambda)",
		Description: "Rate parameter of the distribution.",
		Default:     1.0,
		Min:         0.1,
		Max:         5.0,
		Step:        0.1,
	}
}

func TestParameterSpec_Validate(t *testing.T) {
	require.NoError(t, validSpec().Validate())

	tests := []struct {
		name   string
		mutate func(*ParameterSpec)
	}{
		{"default below min", func(s *ParameterSpec) { s.Default = 0.05 }},
		{"default above max", func(s *ParameterSpec) { s.Default = 6.0 }},
		{"zero step", func(s *ParameterSpec) { s.Step = 0 }},
		{"negative step", func(s *ParameterSpec) { s.Step = -0.1 }},
		{"min equals max", func(s *ParameterSpec) { s.Min = 5.0; s.Default = 5.0 }},
		{"empty name", func(s *ParameterSpec) { s.Name = "" }},
		{"name with spaces", func(s *ParameterSpec) { s.Name = "noise std" }},
		{"name starting with digit", func(s *ParameterSpec) { s.Name = "1lambda" }},
		{"empty label", func(s *ParameterSpec) { s.Label = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSpec()
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrInvalidParameterSpec)
		})
	}
}

func TestCalculatorInfo_Validate(t *testing.T) {
	info := CalculatorInfo{
		Type:        format.TypeExponential,
		Name:        "Exponential distribution",
		Description: "Waiting times between events of a Poisson process.",
		Category:    format.CategoryContinuous,
		Tags:        []string{"continuous", "basic"},
		FormulaPDF:  `f(x) = \lambda e^{-\lambda x}`,
		Parameters:  []ParameterSpec{validSpec()},
	}
	require.NoError(t, info.Validate())

	dup := info
	dup.Parameters = []ParameterSpec{validSpec(), validSpec()}
	err := dup.Validate()
	require.ErrorIs(t, err, errs.ErrInvalidParameterSpec)
	require.Contains(t, err.Error(), "duplicate parameter name")

	untyped := info
	untyped.Type = format.TypeInvalid
	require.ErrorIs(t, untyped.Validate(), errs.ErrInvalidParameterSpec)

	empty := info
	empty.Parameters = nil
	require.ErrorIs(t, empty.Validate(), errs.ErrInvalidParameterSpec)
}

func TestCalculationRequest_Validate(t *testing.T) {
	req := CalculationRequest{
		Type:   format.TypeUniform,
		Params: map[string]float64{"a": 0, "b": 1},
		Points: 100,
	}
	require.NoError(t, req.Validate())

	tooFew := req
	tooFew.Points = 1
	require.ErrorIs(t, tooFew.Validate(), errs.ErrInvalidPointCount)

	tooMany := req
	tooMany.Points = MaxPoints + 1
	require.ErrorIs(t, tooMany.Validate(), errs.ErrInvalidPointCount)

	nan := req
	nan.Params = map[string]float64{"a": math.NaN(), "b": 1}
	err := nan.Validate()
	require.ErrorIs(t, err, errs.ErrInvalidParameter)
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Equal(t, "a", ve.Param)

	inf := req
	inf.Params = map[string]float64{"a": 0, "b": math.Inf(1)}
	require.ErrorIs(t, inf.Validate(), errs.ErrInvalidParameter)

	noParams := req
	noParams.Params = nil
	require.ErrorIs(t, noParams.Validate(), errs.ErrInvalidParameter)
}

func TestCalculationRequest_Normalized(t *testing.T) {
	req := CalculationRequest{Type: format.TypeUniform, Params: map[string]float64{"a": 0, "b": 1}}
	n := req.Normalized()
	require.Equal(t, DefaultPoints, n.Points)
	require.Equal(t, uint64(DefaultSeed), n.Seed)

	// The original request stays untouched.
	require.Zero(t, req.Points)
	require.Zero(t, req.Seed)
}

func TestFingerprint(t *testing.T) {
	req := CalculationRequest{
		Type:   format.TypeLinearRegression,
		Params: map[string]float64{"slope": 2, "intercept": 1, "noise_std": 0.5, "pattern": 0},
		Points: 50,
		Seed:   42,
	}

	// Deterministic across calls (map iteration order must not leak in).
	for range 16 {
		require.Equal(t, req.Fingerprint(), req.Fingerprint())
	}

	other := req
	other.Params = map[string]float64{"slope": 2.1, "intercept": 1, "noise_std": 0.5, "pattern": 0}
	require.NotEqual(t, req.Fingerprint(), other.Fingerprint())

	seeded := req
	seeded.Seed = 43
	require.NotEqual(t, req.Fingerprint(), seeded.Fingerprint())

	// Normalization folds defaults into the fingerprint.
	implicit := req
	implicit.Seed = 0
	explicit := req
	explicit.Seed = DefaultSeed
	require.Equal(t, explicit.Fingerprint(), implicit.Fingerprint())
}

func TestCalculatorInfo_ParameterSpecs_Copies(t *testing.T) {
	info := CalculatorInfo{
		Type:        format.TypeUniform,
		Name:        "Uniform distribution",
		Description: "Equal density on [a, b].",
		Category:    format.CategoryContinuous,
		FormulaPDF:  `f(x) = \frac{1}{b-a}`,
		Parameters:  []ParameterSpec{validSpec()},
	}

	specs := info.ParameterSpecs()
	specs[0].Name = "mutated"
	require.Equal(t, "lambda", info.Parameters[0].Name)

	_, ok := info.Spec("lambda")
	require.True(t, ok)
	_, ok = info.Spec("mutated")
	require.False(t, ok)
}
