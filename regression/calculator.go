package regression

import (
	"errors"
	"fmt"
	"math"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/metrics"
	"github.com/probviz/distlab/schema"
)

// Calculator is the linear-regression calculator. It generates a synthetic
// dataset from the requested true line, fits it with all three strategies and
// scores the selected fit with the metrics module.
//
// The fitted values are derived only from the observed data, never from the
// true model values, so the fit cannot leak information it would not have on
// real data.
type Calculator struct {
	fitters []Fitter
}

// NewCalculator creates the regression calculator with the three canonical
// fitting strategies.
func NewCalculator() *Calculator {
	return &Calculator{fitters: Fitters()}
}

// Describe returns the static metadata for the linear model.
func (*Calculator) Describe() schema.CalculatorInfo {
	return schema.CalculatorInfo{
		Type:        format.TypeLinearRegression,
		Name:        "Simple linear regression",
		Description: "Single-variable linear regression on synthetic data. Adjust the true line and the noise level, then watch three independent fitting algorithms recover the coefficients.",
		Category:    format.CategoryRegression,
		Tags:        []string{"regression", "machine-learning", "statistics"},
		FormulaPDF:  `y = ax + b + \epsilon, \quad \epsilon \sim N(0, \sigma^2)`,
		Parameters: []schema.ParameterSpec{
			{
				Name:        "slope",
				Label:       "Slope (a)",
				Description: "Slope of the true regression line used to generate data.",
				Default:     1.0,
				Min:         -5.0,
				Max:         5.0,
				Step:        0.1,
			},
			{
				Name:        "intercept",
				Label:       "Intercept (b)",
				Description: "Intercept of the true regression line used to generate data.",
				Default:     0.0,
				Min:         -5.0,
				Max:         5.0,
				Step:        0.1,
			},
			{
				Name:        "noise_std",
				Label:       "Noise (sigma)",
				Description: "Standard deviation of the Gaussian noise added to the observations.",
				Default:     1.0,
				Min:         0.0,
				Max:         5.0,
				Step:        0.1,
			},
			{
				Name:        "pattern",
				Label:       "Data pattern",
				Description: "0: linear, 1: quadratic perturbation, 2: outlier injection.",
				Default:     0.0,
				Min:         0.0,
				Max:         2.0,
				Step:        1.0,
			},
		},
	}
}

// Validate checks the domain constraints: a non-negative noise level and an
// integral, known data pattern.
func (*Calculator) Validate(params map[string]float64) error {
	for _, name := range []string{"slope", "intercept"} {
		if _, ok := params[name]; !ok {
			return fmt.Errorf("%w: %s", errs.ErrMissingParameter, name)
		}
	}

	noiseStd, ok := params["noise_std"]
	if !ok {
		return fmt.Errorf("%w: noise_std", errs.ErrMissingParameter)
	}
	if noiseStd < 0 {
		return errs.Invalid("noise_std", "noise level must be non-negative, got %g", noiseStd)
	}

	pattern, ok := params["pattern"]
	if !ok {
		return fmt.Errorf("%w: pattern", errs.ErrMissingParameter)
	}
	if pattern != math.Trunc(pattern) || !format.DataPattern(pattern).Valid() {
		return errs.Invalid("pattern", "pattern must be 0 (linear), 1 (quadratic) or 2 (outlier), got %g", pattern)
	}

	return nil
}

// Compute generates the dataset, runs every strategy and assembles the result.
//
// One strategy failing degenerately does not abort the request: its report
// carries the degenerate flag and the other strategies' results stay usable.
// Only when no strategy at all produces a fit does Compute return an error.
func (c *Calculator) Compute(params map[string]float64, points int, seed uint64) (schema.CalculationResult, error) {
	if err := c.Validate(params); err != nil {
		return schema.CalculationResult{}, err
	}

	ds, err := Generate(GeneratorConfig{
		Slope:     params["slope"],
		Intercept: params["intercept"],
		NoiseStd:  params["noise_std"],
		Pattern:   format.DataPattern(params["pattern"]),
		Points:    points,
		Seed:      seed,
	})
	if err != nil {
		return schema.CalculationResult{}, err
	}

	reports := make([]schema.FitReport, 0, len(c.fitters))
	var selected *Fit
	for _, fitter := range c.fitters {
		fit, fitErr := fitter.Fit(ds.X, ds.YObserved)
		if fitErr != nil {
			if !errors.Is(fitErr, errs.ErrDegenerateFit) {
				return schema.CalculationResult{}, fitErr
			}
			reports = append(reports, schema.FitReport{
				Method:     fitter.Method(),
				Degenerate: true,
				Detail:     fitErr.Error(),
			})

			continue
		}

		reports = append(reports, schema.FitReport{
			Method:    fit.Method,
			Slope:     fit.Slope,
			Intercept: fit.Intercept,
		})
		// The analytical fit comes first and is preferred; otherwise keep the
		// first strategy that produced an answer.
		if selected == nil {
			f := fit
			selected = &f
		}
	}

	if selected == nil {
		return schema.CalculationResult{}, fmt.Errorf("%w: no fitting strategy produced a usable fit", errs.ErrDegenerateFit)
	}

	fitted := selected.Predict(ds.X)
	m, err := metrics.Evaluate(ds.YObserved, fitted)
	if err != nil {
		return schema.CalculationResult{}, err
	}

	mean, variance := popMeanVariance(ds.YObserved)

	return schema.CalculationResult{
		Type:     format.TypeLinearRegression,
		X:        ds.X,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Regression: &schema.RegressionResult{
			YTrue:     ds.YTrue,
			YObserved: ds.YObserved,
			YFitted:   fitted,
			Slope:     selected.Slope,
			Intercept: selected.Intercept,
			Selected:  selected.Method,
			Fits:      reports,
			Metrics:   m,
		},
	}, nil
}

// popMeanVariance computes the population mean and variance of vs.
func popMeanVariance(vs []float64) (mean, variance float64) {
	for _, v := range vs {
		mean += v
	}
	mean /= float64(len(vs))

	for _, v := range vs {
		dev := v - mean
		variance += dev * dev
	}
	variance /= float64(len(vs))

	return mean, variance
}
