package twosided

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrInvalidParameter is returned for a negative smoothing parameter or a
// sample too short for the filter.
var ErrInvalidParameter = errors.New("twosided: invalid parameter")

// ErrSingularMatrix is returned when the system matrix cannot be factorized.
// It should not occur for lambda >= 0 but is checked defensively.
var ErrSingularMatrix = errors.New("twosided: system matrix is not positive definite")

// MinObservations is the smallest sample length the filter accepts. The
// pentadiagonal structure needs at least four rows.
const MinObservations = 4

// PenaltyMatrix builds the n-by-n system matrix A = I + lambda*D'D of the
// two-sided HP filter, where D is the (n-2)-by-n second-difference operator.
// A is symmetric pentadiagonal: interior rows follow the pattern
// [lambda, -4*lambda, 1+6*lambda, -4*lambda, lambda], and the first and last
// two rows carry reduced coefficients because the penalty vanishes outside
// the sample. For lambda = 0 the matrix is the identity.
func PenaltyMatrix(lambda float64, n int) (*mat.SymBandDense, error) {
	if n < MinObservations {
		return nil, fmt.Errorf("%w: need at least %d observations, got %d",
			ErrInvalidParameter, MinObservations, n)
	}
	if lambda < 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: lambda must be a non-negative finite number, got %v",
			ErrInvalidParameter, lambda)
	}

	a := mat.NewSymBandDense(n, 2, nil)
	for i := 0; i < n; i++ {
		a.SetSymBand(i, i, 1)
	}

	// Accumulate lambda*d'd for each second-difference stencil d = [1, -2, 1]
	// anchored at row k of D.
	for k := 0; k+2 < n; k++ {
		addSymBand(a, k, k, lambda)
		addSymBand(a, k, k+1, -2*lambda)
		addSymBand(a, k, k+2, lambda)
		addSymBand(a, k+1, k+1, 4*lambda)
		addSymBand(a, k+1, k+2, -2*lambda)
		addSymBand(a, k+2, k+2, lambda)
	}

	return a, nil
}

func addSymBand(a *mat.SymBandDense, i, j int, v float64) {
	a.SetSymBand(i, j, a.At(i, j)+v)
}
