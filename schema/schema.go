// Package schema defines the data model shared between the calculators, the
// registry and the consuming UI layer: parameter specifications, calculator
// metadata, calculation requests and calculation results.
//
// ParameterSpec and CalculatorInfo values are created once at registry
// initialization and never mutated afterwards. CalculationRequest and
// CalculationResult are ephemeral, created and discarded per invocation.
package schema

import (
	"slices"

	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/metrics"
)

const (
	// MinPoints is the smallest usable sample grid. Two points are required
	// to form an ordered grid or fit a line.
	MinPoints = 2
	// MaxPoints caps the sample grid size for a single request.
	MaxPoints = 10000
	// DefaultPoints is the grid size used when a request leaves Points zero.
	DefaultPoints = 1000
	// DefaultSeed is the seed used when a request leaves Seed zero, so
	// identical requests reproduce identical datasets.
	DefaultSeed = 42
)

// ParameterSpec describes one tunable parameter of a calculator: its stable
// key, display metadata, bounds and slider step. Specs are immutable and owned
// by their calculator.
type ParameterSpec struct {
	Name        string  `json:"name" validate:"required,max=50,identifier"`
	Label       string  `json:"label" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=500"`
	Default     float64 `json:"default" validate:"gtefield=Min,ltefield=Max"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max" validate:"gtfield=Min"`
	Step        float64 `json:"step" validate:"gt=0"`
}

// CalculatorInfo is the read-only metadata of one registered calculator.
type CalculatorInfo struct {
	Type        format.CalculatorType `json:"type"`
	Name        string                `json:"name" validate:"required,max=100"`
	Description string                `json:"description" validate:"required,max=1000"`
	Category    format.Category       `json:"category"`
	Tags        []string              `json:"tags" validate:"max=20,dive,required,max=30"`
	// FormulaPDF holds the density (or model) formula in LaTeX form for the
	// UI's formula renderer.
	FormulaPDF string `json:"formula_pdf" validate:"required"`
	// FormulaCDF holds the cumulative formula in LaTeX form, when one exists.
	FormulaCDF string          `json:"formula_cdf,omitempty"`
	Parameters []ParameterSpec `json:"parameters" validate:"required,min=1,max=20,dive"`
}

// ParameterSpecs returns a copy of the ordered parameter list so callers
// cannot mutate registered metadata.
func (i CalculatorInfo) ParameterSpecs() []ParameterSpec {
	return slices.Clone(i.Parameters)
}

// Spec returns the parameter spec with the given name, if declared.
func (i CalculatorInfo) Spec(name string) (ParameterSpec, bool) {
	for _, p := range i.Parameters {
		if p.Name == name {
			return p, true
		}
	}

	return ParameterSpec{}, false
}

// CalculationRequest carries one calculation invocation: the calculator type,
// the raw parameter map and the requested sample grid size. Seed feeds the
// explicit random source of the regression data generator; distribution
// calculators ignore it.
type CalculationRequest struct {
	Type   format.CalculatorType `json:"type"`
	Params map[string]float64    `json:"params" validate:"required,min=1,max=20,dive,finite"`
	Points int                   `json:"points" validate:"gte=2,lte=10000"`
	Seed   uint64                `json:"seed,omitempty"`
}

// Normalized returns a copy of the request with zero-valued Points and Seed
// replaced by their defaults. The original request is not modified.
func (r CalculationRequest) Normalized() CalculationRequest {
	if r.Points == 0 {
		r.Points = DefaultPoints
	}
	if r.Seed == 0 {
		r.Seed = DefaultSeed
	}

	return r
}

// FitReport describes the outcome of one fitting strategy. Degenerate fits
// are reported as a flag rather than failing the whole request, so the other
// strategies' results remain usable.
type FitReport struct {
	Method     format.FitMethod `json:"method"`
	Slope      float64          `json:"slope"`
	Intercept  float64          `json:"intercept"`
	Degenerate bool             `json:"degenerate,omitempty"`
	// Detail carries the degeneracy reason when Degenerate is set.
	Detail string `json:"detail,omitempty"`
}

// RegressionResult holds the regression-specific portion of a calculation
// result. YFitted is derived only from YObserved, never from YTrue.
type RegressionResult struct {
	YTrue     []float64 `json:"y_true"`
	YObserved []float64 `json:"y_observed"`
	YFitted   []float64 `json:"y_fitted"`
	// Slope and Intercept are the estimates of the selected strategy, the one
	// whose fitted line and metrics are reported.
	Slope     float64            `json:"slope"`
	Intercept float64            `json:"intercept"`
	Selected  format.FitMethod   `json:"selected"`
	Fits      []FitReport        `json:"fits"`
	Metrics   metrics.Regression `json:"metrics"`
}

// CalculationResult is the single result object handed to the UI layer.
//
// X is always present and strictly increasing with length equal to the
// requested point count. PDF/CDF and the distribution moments are set for
// distribution calculators; Regression is set for the linear model. For
// regression, Mean/Variance/StdDev describe the observed values.
type CalculationResult struct {
	Type format.CalculatorType `json:"type"`
	X    []float64             `json:"x"`

	PDF []float64 `json:"pdf,omitempty"`
	CDF []float64 `json:"cdf,omitempty"`

	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`

	Regression *RegressionResult `json:"regression,omitempty"`
}
