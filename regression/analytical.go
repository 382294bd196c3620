package regression

import (
	"fmt"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
)

// AnalyticalFitter solves ordinary least squares in closed form:
//
//	slope     = Σ(x-x̄)(y-ȳ) / Σ(x-x̄)²
//	intercept = ȳ - slope*x̄
type AnalyticalFitter struct{}

// NewAnalyticalFitter creates the closed-form strategy.
func NewAnalyticalFitter() AnalyticalFitter {
	return AnalyticalFitter{}
}

// Method returns format.FitAnalytical.
func (AnalyticalFitter) Method() format.FitMethod {
	return format.FitAnalytical
}

// Fit estimates the coefficients. Zero variance in x makes the slope
// denominator vanish; that is reported as a degenerate fit, never as a
// silent zero or infinity.
func (AnalyticalFitter) Fit(x, y []float64) (Fit, error) {
	n := len(x)
	if n < 2 || len(y) != n {
		return Fit{}, fmt.Errorf("%w: analytical fit needs at least 2 paired points, got %d x / %d y", errs.ErrDegenerateFit, n, len(y))
	}

	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	if sxx == 0 {
		return Fit{}, fmt.Errorf("%w: all x values identical, slope is undetermined", errs.ErrDegenerateFit)
	}

	slope := sxy / sxx

	return Fit{
		Method:    format.FitAnalytical,
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}
