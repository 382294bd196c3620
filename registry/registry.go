// Package registry maps calculator types to their implementations and
// dispatches calculation requests to them.
//
// Dispatch owns the request-level validation pipeline: structural checks on
// the request, the missing/unexpected/out-of-range parameter checks against
// the calculator's declared metadata, the calculator's own domain checks and
// a final non-finite scan of the produced curves. Calculators stay free of
// request plumbing and only see validated parameter maps.
package registry

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/probviz/distlab/dist"
	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
	"github.com/probviz/distlab/regression"
	"github.com/probviz/distlab/schema"
)

// Calculator is a single registered computation backend. Implementations are
// stateless and safe for concurrent use.
type Calculator interface {
	// Describe returns the static metadata: display strings, formulas and
	// the declared parameter specs Dispatch validates against.
	Describe() schema.CalculatorInfo
	// Validate checks cross-parameter domain constraints the flat range
	// checks cannot express, such as a < b.
	Validate(params map[string]float64) error
	// Compute produces the result for a validated parameter map.
	Compute(params map[string]float64, points int, seed uint64) (schema.CalculationResult, error)
}

// Registry holds the registered calculators keyed by type.
type Registry struct {
	mu          sync.RWMutex
	calculators map[format.CalculatorType]Calculator
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{calculators: make(map[format.CalculatorType]Calculator)}
}

// Register adds a calculator under its declared type. The declared metadata
// must validate, and a type can only be registered once.
func (r *Registry) Register(calc Calculator) error {
	info := calc.Describe()
	if err := info.Validate(); err != nil {
		return fmt.Errorf("register %s: %w", info.Type, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.calculators[info.Type]; exists {
		return fmt.Errorf("%w: %s", errs.ErrTypeAlreadyRegistered, info.Type)
	}
	r.calculators[info.Type] = calc

	return nil
}

// MustRegister is Register that panics on error, for building the default
// registry at startup.
func (r *Registry) MustRegister(calc Calculator) {
	if err := r.Register(calc); err != nil {
		panic(err)
	}
}

// Types returns the registered calculator types in ascending order.
func (r *Registry) Types() []format.CalculatorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]format.CalculatorType, 0, len(r.calculators))
	for t := range r.calculators {
		types = append(types, t)
	}
	slices.Sort(types)

	return types
}

// List returns the metadata of every registered calculator, ordered by type.
func (r *Registry) List() []schema.CalculatorInfo {
	types := r.Types()

	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]schema.CalculatorInfo, 0, len(types))
	for _, t := range types {
		infos = append(infos, r.calculators[t].Describe())
	}

	return infos
}

// Describe returns the metadata of one calculator type.
func (r *Registry) Describe(t format.CalculatorType) (schema.CalculatorInfo, error) {
	calc, err := r.lookup(t)
	if err != nil {
		return schema.CalculatorInfo{}, err
	}

	return calc.Describe(), nil
}

// Dispatch validates the request end to end and runs the matching calculator.
//
// The request is normalized first, so zero Points and Seed fall back to the
// defaults. Validation failures identify the offending parameter by name;
// they never reach the calculator.
func (r *Registry) Dispatch(req schema.CalculationRequest) (schema.CalculationResult, error) {
	req = req.Normalized()

	// Lookup happens first: an unregistered type is reported as such even
	// when the request shape is also bad.
	calc, err := r.lookup(req.Type)
	if err != nil {
		return schema.CalculationResult{}, err
	}
	if err := req.Validate(); err != nil {
		return schema.CalculationResult{}, err
	}

	info := calc.Describe()
	if err := validateParams(info, req.Params); err != nil {
		return schema.CalculationResult{}, err
	}
	if err := calc.Validate(req.Params); err != nil {
		return schema.CalculationResult{}, err
	}

	res, err := calc.Compute(req.Params, req.Points, req.Seed)
	if err != nil {
		return schema.CalculationResult{}, fmt.Errorf("compute %s: %w", req.Type, err)
	}
	if err := checkFinite(res); err != nil {
		return schema.CalculationResult{}, err
	}

	return res, nil
}

func (r *Registry) lookup(t format.CalculatorType) (Calculator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	calc, ok := r.calculators[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownType, t)
	}

	return calc, nil
}

// validateParams checks the request parameters against the calculator's
// declared specs: every declared parameter present, nothing undeclared, and
// every value inside its declared range.
func validateParams(info schema.CalculatorInfo, params map[string]float64) error {
	for _, spec := range info.Parameters {
		value, ok := params[spec.Name]
		if !ok {
			return fmt.Errorf("%w: %s", errs.ErrMissingParameter, spec.Name)
		}
		if value < spec.Min || value > spec.Max {
			return errs.Invalid(spec.Name, "value %g out of range [%g, %g]", value, spec.Min, spec.Max)
		}
	}

	for name := range params {
		if _, ok := info.Spec(name); !ok {
			return fmt.Errorf("%w: %s", errs.ErrUnexpectedParameter, name)
		}
	}

	return nil
}

// checkFinite rejects results containing NaN or infinite values, so numeric
// breakdowns surface as errors instead of malformed payloads.
func checkFinite(res schema.CalculationResult) error {
	check := func(name string, vs []float64) error {
		for i, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s[%d] is %g", errs.ErrNumericInstability, name, i, v)
			}
		}

		return nil
	}

	checkScalar := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %g", errs.ErrNumericInstability, name, v)
		}

		return nil
	}

	series := map[string][]float64{
		"x":   res.X,
		"pdf": res.PDF,
		"cdf": res.CDF,
	}
	scalars := map[string]float64{
		"mean":     res.Mean,
		"variance": res.Variance,
		"std_dev":  res.StdDev,
	}

	if reg := res.Regression; reg != nil {
		series["y_true"] = reg.YTrue
		series["y_observed"] = reg.YObserved
		series["y_fitted"] = reg.YFitted

		scalars["slope"] = reg.Slope
		scalars["intercept"] = reg.Intercept
		scalars["mae"] = reg.Metrics.MAE
		scalars["mse"] = reg.Metrics.MSE
		scalars["rmse"] = reg.Metrics.RMSE
		if reg.Metrics.RSquared != nil {
			scalars["r_squared"] = *reg.Metrics.RSquared
		}
		for _, fit := range reg.Fits {
			scalars[fmt.Sprintf("fits[%s].slope", fit.Method)] = fit.Slope
			scalars[fmt.Sprintf("fits[%s].intercept", fit.Method)] = fit.Intercept
		}
	}

	for name, vs := range series {
		if err := check(name, vs); err != nil {
			return err
		}
	}
	for name, v := range scalars {
		if err := checkScalar(name, v); err != nil {
			return err
		}
	}

	return nil
}

// Default returns a registry with every built-in calculator registered.
func Default() *Registry {
	r := New()
	r.MustRegister(dist.NewUniform())
	r.MustRegister(dist.NewExponential())
	r.MustRegister(dist.NewNormal())
	r.MustRegister(regression.NewCalculator())

	return r
}
