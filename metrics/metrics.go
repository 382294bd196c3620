// Package metrics computes goodness-of-fit statistics from observed versus
// fitted value sequences.
package metrics

import (
	"fmt"
	"math"
)

// Regression bundles the goodness-of-fit statistics for a regression fit.
//
// RSquared is nil when the observed values are constant (SS_tot == 0): the
// coefficient of determination is undefined in that case and is reported as
// such rather than divided by zero. It serializes to JSON null.
type Regression struct {
	// RSquared is the coefficient of determination, 1 - SS_res / SS_tot.
	RSquared *float64 `json:"r_squared"`
	// MAE is the mean absolute error.
	MAE float64 `json:"mae"`
	// MSE is the mean squared error.
	MSE float64 `json:"mse"`
	// RMSE is the root mean squared error.
	RMSE float64 `json:"rmse"`
}

// Evaluate computes MAE, MSE, RMSE and R² for the given sequences.
//
// Both sequences must be non-empty and of equal length. The computation is a
// single pass over the data.
func Evaluate(observed, fitted []float64) (Regression, error) {
	n := len(observed)
	if n == 0 {
		return Regression{}, fmt.Errorf("metrics: empty observed sequence")
	}
	if len(fitted) != n {
		return Regression{}, fmt.Errorf("metrics: length mismatch: %d observed vs %d fitted", n, len(fitted))
	}

	mean := 0.0
	for _, v := range observed {
		mean += v
	}
	mean /= float64(n)

	var sumAbs, ssRes, ssTot float64
	for i := range observed {
		diff := observed[i] - fitted[i]
		sumAbs += math.Abs(diff)
		ssRes += diff * diff

		dev := observed[i] - mean
		ssTot += dev * dev
	}

	mse := ssRes / float64(n)
	reg := Regression{
		MAE:  sumAbs / float64(n),
		MSE:  mse,
		RMSE: math.Sqrt(mse),
	}

	if ssTot != 0 {
		r2 := 1.0 - ssRes/ssTot
		reg.RSquared = &r2
	}

	return reg, nil
}
