package schema

import (
	"fmt"
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
)

// validate is the shared validator instance, initialized with the custom
// rules used by the schema structs.
var validate *validator.Validate

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("identifier", validateIdentifier)
	_ = validate.RegisterValidation("finite", validateFinite)
}

// validateIdentifier enforces that parameter keys are stable machine-readable
// identifiers (letters, digits, underscore; no leading digit).
func validateIdentifier(fl validator.FieldLevel) bool {
	return identifierPattern.MatchString(fl.Field().String())
}

// validateFinite rejects NaN and infinite parameter values before any
// numeric work happens.
func validateFinite(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the spec invariants: min ≤ default ≤ max, step > 0 and a
// well-formed name. Calculators call this at registration time.
func (s ParameterSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %q: %w", errs.ErrInvalidParameterSpec, s.Name, err)
	}

	return nil
}

// Validate checks the metadata invariants of a calculator: a known type,
// valid parameter specs and unique parameter names.
func (i CalculatorInfo) Validate() error {
	if i.Type == format.TypeInvalid {
		return fmt.Errorf("%w: calculator info has no type", errs.ErrInvalidParameterSpec)
	}
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s: %w", errs.ErrInvalidParameterSpec, i.Type, err)
	}

	seen := make(map[string]struct{}, len(i.Parameters))
	for _, p := range i.Parameters {
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("%w: %s: duplicate parameter name %q", errs.ErrInvalidParameterSpec, i.Type, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return nil
}

// Validate checks the request shape: a parameter map with finite values and a
// point count within [MinPoints, MaxPoints]. Per-calculator constraints are
// checked later by the dispatcher.
func (r CalculationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		for _, fe := range unwrapFieldErrors(err) {
			switch {
			case fe.Tag() == "finite":
				return errs.Invalid(paramKey(fe), "value must be finite")
			case fe.StructField() == "Points":
				return fmt.Errorf("%w: %d not in [%d, %d]", errs.ErrInvalidPointCount, r.Points, MinPoints, MaxPoints)
			}
		}

		return fmt.Errorf("%w: %w", errs.ErrInvalidParameter, err)
	}

	return nil
}

func unwrapFieldErrors(err error) validator.ValidationErrors {
	if ve, ok := err.(validator.ValidationErrors); ok {
		return ve
	}

	return nil
}

// paramKey extracts the map key from a namespace like "CalculationRequest.Params[noise_std]".
func paramKey(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	open := -1
	for i, c := range ns {
		if c == '[' {
			open = i
			break
		}
	}
	if open < 0 || ns[len(ns)-1] != ']' {
		return "params"
	}

	return ns[open+1 : len(ns)-1]
}
