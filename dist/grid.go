package dist

import (
	"fmt"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/schema"
)

// sampleGrid returns n evenly spaced values over [lo, hi], inclusive of both
// endpoints. The result is strictly increasing; callers guarantee lo < hi and
// n >= schema.MinPoints.
func sampleGrid(lo, hi float64, n int) []float64 {
	x := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range x {
		x[i] = lo + float64(i)*step
	}
	// Pin the last sample to the exact upper bound so accumulated rounding
	// never pushes it past hi.
	x[n-1] = hi

	return x
}

// need reads a required parameter from the raw map. The dispatcher checks
// presence up front; this guards direct calculator use.
func need(params map[string]float64, name string) (float64, error) {
	v, ok := params[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.ErrMissingParameter, name)
	}

	return v, nil
}

// curveResult assembles the common distribution result shape: the grid, the
// pointwise pdf/cdf curves and the closed-form moments.
type pointFunc func(x float64) float64

func curveResult(x []float64, pdf, cdf pointFunc, mean, variance, stdDev float64) schema.CalculationResult {
	pdfVals := make([]float64, len(x))
	cdfVals := make([]float64, len(x))
	for i, xi := range x {
		pdfVals[i] = pdf(xi)
		cdfVals[i] = cdf(xi)
	}

	return schema.CalculationResult{
		X:        x,
		PDF:      pdfVals,
		CDF:      cdfVals,
		Mean:     mean,
		Variance: variance,
		StdDev:   stdDev,
	}
}
