// Package errs defines the error taxonomy shared across the distlab engine.
//
// All errors are local to a single request; the engine holds no state that
// could become corrupted across requests, so no recovery machinery exists.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType indicates the requested calculator identifier is not registered.
	ErrUnknownType = errors.New("unknown calculator type")

	// ErrInvalidParameter indicates one or more parameter constraints were violated.
	// Concrete violations are ValidationError values wrapping this sentinel.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrMissingParameter indicates a required parameter was absent from the request.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrUnexpectedParameter indicates the request carried a parameter the
	// calculator does not declare.
	ErrUnexpectedParameter = errors.New("unexpected parameter")

	// ErrInvalidPointCount indicates the requested sample count is out of range.
	ErrInvalidPointCount = errors.New("invalid point count")

	// ErrDegenerateFit indicates a fitting strategy cannot produce a meaningful
	// unique answer for the given data (e.g. zero-variance x).
	ErrDegenerateFit = errors.New("degenerate fit")

	// ErrNumericInstability indicates non-finite values were produced internally.
	// This is fatal for the request; results are never clamped or coerced.
	ErrNumericInstability = errors.New("numeric instability")

	// ErrInvalidParameterSpec indicates a calculator declared a malformed
	// parameter specification at registration time.
	ErrInvalidParameterSpec = errors.New("invalid parameter spec")

	// ErrTypeAlreadyRegistered indicates two calculators claimed the same type.
	ErrTypeAlreadyRegistered = errors.New("calculator type already registered")
)

// ValidationError describes a single parameter constraint violation. It carries
// the parameter name and a human-readable reason so the caller can render a
// precise message next to the offending control.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("parameter %q: %s", e.Param, e.Reason)
}

// Unwrap makes every ValidationError match ErrInvalidParameter via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParameter
}

// Invalid constructs a ValidationError for the named parameter.
func Invalid(param, format string, args ...any) error {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
