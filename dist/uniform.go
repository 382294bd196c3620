package dist

import (
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/schema"
)

// Uniform is the continuous uniform distribution calculator over [a, b].
//
// The sample grid spans exactly [a, b]; the support is finite, so no
// truncation is involved. The calculator never sees a == b: the Validator
// rejects a >= b before compute runs.
type Uniform struct{}

// NewUniform creates the uniform distribution calculator.
func NewUniform() Uniform {
	return Uniform{}
}

// Describe returns the static metadata for the uniform distribution.
func (Uniform) Describe() schema.CalculatorInfo {
	return schema.CalculatorInfo{
		Type:        format.TypeUniform,
		Name:        "Uniform distribution",
		Description: "Continuous distribution with equal probability density on the interval [a, b]. Every value in the interval is equally likely.",
		Category:    format.CategoryContinuous,
		Tags:        []string{"basic", "continuous", "uniform"},
		FormulaPDF:  `f(x) = \begin{cases} \frac{1}{b-a} & \text{if } a \leq x \leq b \\ 0 & \text{otherwise} \end{cases}`,
		FormulaCDF:  `F(x) = \begin{cases} 0 & \text{if } x < a \\ \frac{x-a}{b-a} & \text{if } a \leq x \leq b \\ 1 & \text{if } x > b \end{cases}`,
		Parameters: []schema.ParameterSpec{
			{
				Name:        "a",
				Label:       "Lower bound (a)",
				Description: "Lower bound of the distribution. Must be strictly below b.",
				Default:     0.0,
				Min:         -10.0,
				Max:         10.0,
				Step:        0.1,
			},
			{
				Name:        "b",
				Label:       "Upper bound (b)",
				Description: "Upper bound of the distribution. Must be strictly above a.",
				Default:     1.0,
				Min:         -10.0,
				Max:         10.0,
				Step:        0.1,
			},
		},
	}
}

// Validate checks the domain constraint a < b. The violation names parameter
// "b" so the UI can highlight the offending control.
func (Uniform) Validate(params map[string]float64) error {
	a, err := need(params, "a")
	if err != nil {
		return err
	}
	b, err := need(params, "b")
	if err != nil {
		return err
	}

	if a >= b {
		return errs.Invalid("b", "upper bound must be strictly greater than lower bound a (%g >= %g)", a, b)
	}

	return nil
}

// Compute evaluates the density and cumulative curves on a grid over [a, b]
// and fills in the closed-form moments.
func (u Uniform) Compute(params map[string]float64, points int, _ uint64) (schema.CalculationResult, error) {
	if err := u.Validate(params); err != nil {
		return schema.CalculationResult{}, err
	}
	a, b := params["a"], params["b"]

	d := distuv.Uniform{Min: a, Max: b}
	res := curveResult(sampleGrid(a, b, points), d.Prob, d.CDF, d.Mean(), d.Variance(), d.StdDev())
	res.Type = format.TypeUniform

	return res, nil
}
