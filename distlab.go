// Package distlab computes probability-distribution curves and regression
// fits for interactive exploration.
//
// Each supported calculation is a registered calculator: continuous
// distributions (uniform, exponential, normal) that produce PDF/CDF curves
// over an adaptive sample grid with closed-form moments, and a linear
// regression model that generates synthetic data and recovers the
// coefficients with three independent fitting strategies (closed-form,
// matrix least squares, gradient descent).
//
// # Basic Usage
//
// Listing calculators and computing a distribution:
//
//	import "github.com/probviz/distlab"
//
//	for _, info := range distlab.ListCalculators() {
//	    fmt.Printf("%s: %s\n", info.Type, info.Name)
//	}
//
//	res, err := distlab.Calculate(schema.CalculationRequest{
//	    Type:   format.TypeNormal,
//	    Params: map[string]float64{"mu": 0, "sigma": 1},
//	    Points: 500,
//	})
//
// Running a regression and serializing the result:
//
//	res, err := distlab.Calculate(schema.CalculationRequest{
//	    Type: format.TypeLinearRegression,
//	    Params: map[string]float64{
//	        "slope": 2, "intercept": 1, "noise_std": 0.5, "pattern": 0,
//	    },
//	})
//	payload, err := distlab.MarshalResult(res, format.CompressionZstd)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around a shared default
// registry. For custom calculator sets, build a registry.Registry directly.
package distlab

import (
	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/registry"
	"github.com/probviz/distlab/resultenc"
	"github.com/probviz/distlab/schema"
)

// defaultRegistry holds the built-in calculators shared by the top-level
// functions. It is populated once at init and treated as read-only after.
var defaultRegistry = registry.Default()

// ListCalculators returns the metadata of every built-in calculator, ordered
// by type.
func ListCalculators() []schema.CalculatorInfo {
	return defaultRegistry.List()
}

// Describe returns the metadata of one built-in calculator.
func Describe(t format.CalculatorType) (schema.CalculatorInfo, error) {
	return defaultRegistry.Describe(t)
}

// Calculate validates the request and runs the matching built-in calculator.
func Calculate(req schema.CalculationRequest) (schema.CalculationResult, error) {
	return defaultRegistry.Dispatch(req)
}

// RequestID returns the deterministic 64-bit fingerprint of a request,
// suitable as a cache key: structurally identical requests share an ID
// regardless of parameter order or defaulted fields.
func RequestID(req schema.CalculationRequest) uint64 {
	return req.Fingerprint()
}

// MarshalResult serializes a result to JSON, compressed with the given
// algorithm. Use format.CompressionNone for plain JSON.
func MarshalResult(res schema.CalculationResult, compression format.CompressionType) ([]byte, error) {
	return resultenc.Marshal(res, compression)
}

// UnmarshalResult reverses MarshalResult.
func UnmarshalResult(data []byte, compression format.CompressionType) (schema.CalculationResult, error) {
	return resultenc.Unmarshal(data, compression)
}
