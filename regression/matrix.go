package regression

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
)

// MatrixFitter solves ordinary least squares through the design matrix
// X = [x 1] using a QR factorization. QR keeps the solve stable under
// near-singular designs, unlike inverting the normal equations directly.
type MatrixFitter struct{}

// NewMatrixFitter creates the matrix least-squares strategy.
func NewMatrixFitter() MatrixFitter {
	return MatrixFitter{}
}

// Method returns format.FitMatrix.
func (MatrixFitter) Method() format.FitMethod {
	return format.FitMatrix
}

// Fit estimates the coefficients by minimizing ||Xθ - y||₂ with θ = (slope,
// intercept). A rank-deficient or numerically singular design is reported as
// a degenerate fit.
func (MatrixFitter) Fit(x, y []float64) (Fit, error) {
	n := len(x)
	if n < 2 || len(y) != n {
		return Fit{}, fmt.Errorf("%w: matrix fit needs at least 2 paired points, got %d x / %d y", errs.ErrDegenerateFit, n, len(y))
	}

	design := mat.NewDense(n, 2, nil)
	for i, xi := range x {
		design.Set(i, 0, xi)
		design.Set(i, 1, 1)
	}
	// Copy y: NewVecDense aliases the backing slice and the caller's data
	// must stay untouched.
	rhs := mat.NewVecDense(n, slices.Clone(y))

	var qr mat.QR
	qr.Factorize(design)

	var theta mat.VecDense
	if err := qr.SolveVecTo(&theta, false, rhs); err != nil {
		return Fit{}, fmt.Errorf("%w: least-squares solve failed: %v", errs.ErrDegenerateFit, err)
	}

	return Fit{
		Method:    format.FitMatrix,
		Slope:     theta.AtVec(0),
		Intercept: theta.AtVec(1),
	}, nil
}
