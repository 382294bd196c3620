// Package regression implements the linear-model calculator: a seeded
// synthetic data generator and three peer fitting strategies that solve the
// same ordinary-least-squares objective from the same observed dataset.
//
// The three strategies exist to let the UI demonstrate that independent
// algorithms converge to the same answer:
//
//   - analytical: closed-form slope/intercept from sample covariance/variance
//   - matrix: design-matrix least squares via a QR solve
//   - gradient_descent: iterative minimization of the mean squared error
//
// All strategies are pattern-agnostic: the data pattern selector only shapes
// the generated y values, never the fitting itself. A strategy that cannot
// produce a meaningful unique answer (zero-variance x) reports a degenerate
// fit rather than fabricating coefficients.
package regression
