package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/schema"
)

// ExponentialTailMultiplier fixes the sampling window of the exponential
// calculator at [0, k/lambda] with k = 14. The density at the cutoff is
// lambda*e^-14 (< 1e-6 of the peak) so the truncated tail mass is negligible
// for rendering; the density itself still integrates to 1 over [0, inf).
const ExponentialTailMultiplier = 14.0

// Exponential is the exponential distribution calculator with rate lambda.
type Exponential struct{}

// NewExponential creates the exponential distribution calculator.
func NewExponential() Exponential {
	return Exponential{}
}

// Describe returns the static metadata for the exponential distribution.
func (Exponential) Describe() schema.CalculatorInfo {
	return schema.CalculatorInfo{
		Type:        format.TypeExponential,
		Name:        "Exponential distribution",
		Description: "Continuous distribution of waiting times between events of a Poisson process. Memoryless: the remaining wait never depends on how long you have already waited.",
		Category:    format.CategoryContinuous,
		Tags:        []string{"basic", "continuous", "memoryless", "waiting-time"},
		FormulaPDF:  `f(x) = \lambda e^{-\lambda x} \quad (x \geq 0)`,
		FormulaCDF:  `F(x) = 1 - e^{-\lambda x} \quad (x \geq 0)`,
		Parameters: []schema.ParameterSpec{
			{
				Name:        "lambda",
				Label:       "Rate (lambda)",
				Description: "Rate parameter. The mean waiting time is 1/lambda.",
				Default:     1.0,
				Min:         0.1,
				Max:         5.0,
				Step:        0.1,
			},
		},
	}
}

// Validate checks the domain constraint lambda > 0.
func (Exponential) Validate(params map[string]float64) error {
	lambda, err := need(params, "lambda")
	if err != nil {
		return err
	}

	if lambda <= 0 {
		return errs.Invalid("lambda", "rate must be strictly positive, got %g", lambda)
	}

	return nil
}

// Compute evaluates the density and cumulative curves on a grid over
// [0, ExponentialTailMultiplier/lambda] and fills in the closed-form moments.
func (e Exponential) Compute(params map[string]float64, points int, _ uint64) (schema.CalculationResult, error) {
	if err := e.Validate(params); err != nil {
		return schema.CalculationResult{}, err
	}
	lambda := params["lambda"]

	d := distuv.Exponential{Rate: lambda}
	upper := ExponentialTailMultiplier / lambda
	res := curveResult(sampleGrid(0, upper, points), d.Prob, d.CDF, d.Mean(), d.Variance(), d.StdDev())
	res.Type = format.TypeExponential

	return res, nil
}
