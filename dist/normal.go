package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/schema"
)

// NormalTailMultiplier fixes the sampling window of the normal calculator at
// [mu - k*sigma, mu + k*sigma] with k = 6. The density at the cutoff is below
// 1e-8 of the peak and the mass beyond it below 1e-8 per side.
const NormalTailMultiplier = 6.0

// Normal is the normal (Gaussian) distribution calculator with location mu
// and scale sigma.
type Normal struct{}

// NewNormal creates the normal distribution calculator.
func NewNormal() Normal {
	return Normal{}
}

// Describe returns the static metadata for the normal distribution.
func (Normal) Describe() schema.CalculatorInfo {
	return schema.CalculatorInfo{
		Type:        format.TypeNormal,
		Name:        "Normal distribution",
		Description: "The bell-shaped continuous distribution. Sums of many small independent effects tend towards it, which makes it the default model for measurement noise.",
		Category:    format.CategoryContinuous,
		Tags:        []string{"basic", "continuous", "gaussian", "bell-curve"},
		FormulaPDF:  `f(x) = \frac{1}{\sigma\sqrt{2\pi}} e^{-\frac{(x-\mu)^2}{2\sigma^2}}`,
		FormulaCDF:  `F(x) = \frac{1}{2}\left[1 + \operatorname{erf}\left(\frac{x-\mu}{\sigma\sqrt{2}}\right)\right]`,
		Parameters: []schema.ParameterSpec{
			{
				Name:        "mu",
				Label:       "Mean (mu)",
				Description: "Location of the peak.",
				Default:     0.0,
				Min:         -10.0,
				Max:         10.0,
				Step:        0.1,
			},
			{
				Name:        "sigma",
				Label:       "Standard deviation (sigma)",
				Description: "Spread of the curve. Must be strictly positive.",
				Default:     1.0,
				Min:         0.1,
				Max:         5.0,
				Step:        0.1,
			},
		},
	}
}

// Validate checks the domain constraint sigma > 0.
func (Normal) Validate(params map[string]float64) error {
	if _, err := need(params, "mu"); err != nil {
		return err
	}
	sigma, err := need(params, "sigma")
	if err != nil {
		return err
	}

	if sigma <= 0 {
		return errs.Invalid("sigma", "standard deviation must be strictly positive, got %g", sigma)
	}

	return nil
}

// Compute evaluates the density and cumulative curves on a grid over
// [mu - k*sigma, mu + k*sigma] and fills in the closed-form moments.
func (n Normal) Compute(params map[string]float64, points int, _ uint64) (schema.CalculationResult, error) {
	if err := n.Validate(params); err != nil {
		return schema.CalculationResult{}, err
	}
	mu, sigma := params["mu"], params["sigma"]

	d := distuv.Normal{Mu: mu, Sigma: sigma}
	lo := mu - NormalTailMultiplier*sigma
	hi := mu + NormalTailMultiplier*sigma
	res := curveResult(sampleGrid(lo, hi, points), d.Prob, d.CDF, d.Mean(), d.Variance(), d.StdDev())
	res.Type = format.TypeNormal

	return res, nil
}
