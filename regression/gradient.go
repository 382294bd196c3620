package regression

import (
	"fmt"
	"math"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
)

const (
	// DefaultLearningRate is the gradient step size. With x drawn from
	// [XMin, XMax] the loss curvature stays well below 2/lr, so the descent
	// is stable at this rate.
	DefaultLearningRate = 0.01
	// DefaultMaxSteps bounds the iteration count.
	DefaultMaxSteps = 5000
	// DefaultTolerance is the per-step parameter delta below which the
	// descent is considered converged.
	DefaultTolerance = 1e-9

	// divergenceStreak is the number of consecutive loss increases treated
	// as divergence.
	divergenceStreak = 5
)

// GradientFitter solves ordinary least squares by iterative gradient descent
// on the mean squared error, θ ← θ - α·∇L(θ), from a zero initial guess.
//
// If the loss diverges (increases for several consecutive steps, or turns
// non-finite) the fitter halves the learning rate once and restarts; a second
// divergence is reported as a degenerate fit. This bounds runaway iteration
// without an unbounded retry loop.
type GradientFitter struct {
	learningRate float64
	maxSteps     int
	tolerance    float64
}

// GradientOption overrides one knob of the gradient strategy.
type GradientOption func(*GradientFitter)

// WithLearningRate sets the initial step size.
func WithLearningRate(alpha float64) GradientOption {
	return func(f *GradientFitter) {
		f.learningRate = alpha
	}
}

// WithMaxSteps sets the iteration cap.
func WithMaxSteps(steps int) GradientOption {
	return func(f *GradientFitter) {
		f.maxSteps = steps
	}
}

// WithTolerance sets the convergence threshold on the per-step parameter delta.
func WithTolerance(tol float64) GradientOption {
	return func(f *GradientFitter) {
		f.tolerance = tol
	}
}

// NewGradientFitter creates the gradient-descent strategy with the default
// learning rate, step cap and tolerance, optionally overridden.
func NewGradientFitter(opts ...GradientOption) *GradientFitter {
	f := &GradientFitter{
		learningRate: DefaultLearningRate,
		maxSteps:     DefaultMaxSteps,
		tolerance:    DefaultTolerance,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Method returns format.FitGradient.
func (*GradientFitter) Method() format.FitMethod {
	return format.FitGradient
}

// Fit runs the descent. For well-conditioned inputs the result lands within a
// small tolerance of the analytical solution.
func (f *GradientFitter) Fit(x, y []float64) (Fit, error) {
	n := len(x)
	if n < 2 || len(y) != n {
		return Fit{}, fmt.Errorf("%w: gradient fit needs at least 2 paired points, got %d x / %d y", errs.ErrDegenerateFit, n, len(y))
	}

	alpha := f.learningRate
	slope, intercept, ok := f.descend(x, y, alpha)
	if !ok {
		// One retry at half the rate, then give up.
		slope, intercept, ok = f.descend(x, y, alpha/2)
		if !ok {
			return Fit{}, fmt.Errorf("%w: gradient descent diverged at learning rates %g and %g", errs.ErrDegenerateFit, alpha, alpha/2)
		}
	}

	return Fit{
		Method:    format.FitGradient,
		Slope:     slope,
		Intercept: intercept,
	}, nil
}

// descend runs one full descent at a fixed learning rate. ok is false when
// the loss diverged.
func (f *GradientFitter) descend(x, y []float64, alpha float64) (slope, intercept float64, ok bool) {
	n := float64(len(x))
	prevLoss := math.Inf(1)
	rising := 0

	for step := 0; step < f.maxSteps; step++ {
		var gradSlope, gradIntercept, loss float64
		for i := range x {
			residual := y[i] - (slope*x[i] + intercept)
			gradSlope += -2 * x[i] * residual
			gradIntercept += -2 * residual
			loss += residual * residual
		}
		gradSlope /= n
		gradIntercept /= n
		loss /= n

		if math.IsNaN(loss) || math.IsInf(loss, 0) {
			return 0, 0, false
		}
		if loss > prevLoss {
			rising++
			if rising >= divergenceStreak {
				return 0, 0, false
			}
		} else {
			rising = 0
		}
		prevLoss = loss

		deltaSlope := alpha * gradSlope
		deltaIntercept := alpha * gradIntercept
		slope -= deltaSlope
		intercept -= deltaIntercept

		if math.Abs(deltaSlope)+math.Abs(deltaIntercept) < f.tolerance {
			break
		}
	}

	return slope, intercept, true
}
