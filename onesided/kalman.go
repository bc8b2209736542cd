package onesided

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is returned for a non-positive smoothing parameter, a
// sample too short for the filter, an out-of-range discard count, or an
// invalid initial covariance.
var ErrInvalidParameter = errors.New("onesided: invalid parameter")

// ErrShapeMismatch is returned when initial states or covariances do not
// match the number of series.
var ErrShapeMismatch = errors.New("onesided: shape mismatch")

// State is the local-linear-trend state of one series: the trend level and
// its slope.
type State struct {
	Level float64
	Slope float64
}

// Covariance is a symmetric 2x2 estimation-error covariance over (level, slope).
type Covariance struct {
	LL float64 // Var(level)
	LS float64 // Cov(level, slope)
	SS float64 // Var(slope)
}

// Gain is the 2x1 Kalman gain applied to the innovation.
type Gain struct {
	Level float64
	Slope float64
}

// finite reports whether both state components are finite numbers.
func (x State) finite() bool {
	return !math.IsNaN(x.Level) && !math.IsInf(x.Level, 0) &&
		!math.IsNaN(x.Slope) && !math.IsInf(x.Slope, 0)
}

// valid reports whether the covariance is finite and positive semi-definite.
func (c Covariance) valid() bool {
	for _, v := range []float64{c.LL, c.LS, c.SS} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return c.LL >= 0 && c.SS >= 0 && c.LL*c.SS-c.LS*c.LS >= -1e-12
}

// Kalman runs the filtering recursion for a single series under the local
// linear trend model
//
//	level_t = level_{t-1} + slope_{t-1}
//	slope_t = slope_{t-1} + eta_t,   Var(eta) = 1/lambda
//	y_t     = level_t + eps_t,       Var(eps) = 1
//
// The slope-noise variance 1/lambda makes the implied smoother match the
// discrete HP penalty: the second difference of the trend is exactly the
// slope innovation.
type Kalman struct {
	x    State
	p    Covariance
	q    float64 // slope process-noise variance, 1/lambda
	gain Gain
}

// NewKalman creates a recursion with the given smoothing parameter, initial
// state and initial covariance. lambda must be strictly positive: at
// lambda = 0 the model degenerates and no steady state exists.
func NewKalman(lambda float64, x State, p Covariance) (*Kalman, error) {
	if lambda <= 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: lambda must be a positive finite number, got %v",
			ErrInvalidParameter, lambda)
	}
	if !p.valid() {
		return nil, fmt.Errorf("%w: initial covariance is not positive semi-definite",
			ErrInvalidParameter)
	}
	return &Kalman{x: x, p: p, q: 1 / lambda}, nil
}

// Predict advances state and covariance one step under the transition model.
// The level moves by the slope; the slope is a random walk, so only its
// uncertainty grows.
func (k *Kalman) Predict() {
	k.x.Level += k.x.Slope

	ll := k.p.LL + 2*k.p.LS + k.p.SS
	ls := k.p.LS + k.p.SS
	ss := k.p.SS + k.q
	k.p = Covariance{LL: ll, LS: ls, SS: ss}
}

// Update folds the observation y into the predicted state and returns the
// filtered level. Must be called after Predict.
func (k *Kalman) Update(y float64) float64 {
	// Innovation variance: S = H P H' + R with H = [1, 0], R = 1.
	s := k.p.LL + 1
	k.gain = Gain{Level: k.p.LL / s, Slope: k.p.LS / s}

	innovation := y - k.x.Level
	k.x.Level += k.gain.Level * innovation
	k.x.Slope += k.gain.Slope * innovation

	ll := (1 - k.gain.Level) * k.p.LL
	ls := (1 - k.gain.Level) * k.p.LS
	ss := k.p.SS - k.gain.Slope*k.p.LS
	k.p = Covariance{LL: ll, LS: ls, SS: ss}

	return k.x.Level
}

// Step runs one predict/update pair and returns the filtered level.
func (k *Kalman) Step(y float64) float64 {
	k.Predict()
	return k.Update(y)
}

// State returns the current filtered state.
func (k *Kalman) State() State {
	return k.x
}

// Cov returns the current estimation-error covariance.
func (k *Kalman) Cov() Covariance {
	return k.p
}

// Gain returns the gain used by the most recent update.
func (k *Kalman) Gain() Gain {
	return k.gain
}

// SteadyState iterates the covariance recursion to its fixed point and
// returns the limiting post-update covariance together with the steady-state
// gain. For any lambda > 0 the predict/update map is a contraction, so the
// iteration converges from the diffuse prior.
func SteadyState(lambda float64) (Covariance, Gain, error) {
	k, err := NewKalman(lambda, State{}, Covariance{LL: DiffuseVariance, SS: DiffuseVariance})
	if err != nil {
		return Covariance{}, Gain{}, err
	}

	const (
		tol     = 1e-13
		maxIter = 1_000_000
	)

	prev := k.p
	for i := 0; i < maxIter; i++ {
		k.Predict()
		k.Update(0) // the covariance recursion does not depend on the data
		if math.Abs(k.p.LL-prev.LL) < tol &&
			math.Abs(k.p.LS-prev.LS) < tol &&
			math.Abs(k.p.SS-prev.SS) < tol {
			return k.p, k.gain, nil
		}
		prev = k.p
	}

	return Covariance{}, Gain{}, fmt.Errorf("%w: covariance recursion did not converge for lambda=%v",
		ErrInvalidParameter, lambda)
}
