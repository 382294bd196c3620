package regression

import (
	"github.com/probviz/distlab/format"
)

// Fit holds the estimated coefficients of one fitting strategy for the line
// y = Slope*x + Intercept.
type Fit struct {
	Method    format.FitMethod
	Slope     float64
	Intercept float64
}

// Predict evaluates the fitted line at every x.
func (f Fit) Predict(x []float64) []float64 {
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = f.Slope*xi + f.Intercept
	}

	return y
}

// Fitter is one least-squares strategy. All implementations solve the same
// objective from the same observed data and are interchangeable; they differ
// only in how they get there.
//
// Fit returns an error wrapping errs.ErrDegenerateFit when the data admits no
// meaningful unique solution, e.g. when all x values coincide.
type Fitter interface {
	Method() format.FitMethod
	Fit(x, y []float64) (Fit, error)
}

// Fitters returns the three peer strategies in their canonical order:
// analytical first (it is also the default source of the reported fitted
// line), then matrix, then gradient descent.
func Fitters() []Fitter {
	return []Fitter{
		NewAnalyticalFitter(),
		NewMatrixFitter(),
		NewGradientFitter(),
	}
}
