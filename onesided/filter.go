// Package onesided implements the one-sided (causal) Hodrick-Prescott filter.
package onesided

import (
	"fmt"
	"math"

	"github.com/sartorproj/gohpfilter/timeseries"
)

// DefaultLambda is the conventional smoothing parameter for quarterly data.
const DefaultLambda = 1600

// DiffuseVariance is the default initial variance of level and slope,
// encoding near-total uncertainty about the starting state.
const DiffuseVariance = 1e6

// MinObservations is the smallest sample length the filter accepts.
const MinObservations = 4

// Config holds configuration for the one-sided filter.
type Config struct {
	// Lambda is the smoothing parameter, must be > 0 (default: 1600).
	Lambda float64

	// Discard drops the first Discard rows from the output, where the
	// diffuse prior has not yet converged (default: 0).
	Discard int

	// InitialState optionally overrides the starting state per column.
	// When nil, level and slope are back-extrapolated from the first two
	// observations of each series.
	InitialState []State

	// InitialCovariance optionally overrides the starting covariance per
	// column. When nil, a diffuse prior diag(DiffuseVariance) is used.
	InitialCovariance []Covariance
}

// DefaultConfig returns the default one-sided filter configuration.
func DefaultConfig() *Config {
	return &Config{
		Lambda: DefaultLambda,
	}
}

// Filter estimates the trend of every series in the dataset with the
// one-sided HP filter: a Kalman recursion over the local linear trend model,
// run independently per column. Each output value depends only on
// observations up to and including its own time index. The first
// cfg.Discard rows are dropped, so the output has data.Rows()-cfg.Discard
// rows; remaining rows align with input indices [Discard, Rows).
//
// A nil config selects DefaultConfig.
func Filter(data *timeseries.Dataset, cfg *Config) (*timeseries.Dataset, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := data.Validate(); err != nil {
		return nil, err
	}

	rows := data.Rows()
	cols := data.Cols()

	if rows < MinObservations {
		return nil, fmt.Errorf("%w: need at least %d observations, got %d",
			ErrInvalidParameter, MinObservations, rows)
	}
	if cfg.Lambda <= 0 || math.IsNaN(cfg.Lambda) || math.IsInf(cfg.Lambda, 0) {
		return nil, fmt.Errorf("%w: lambda must be a positive finite number, got %v",
			ErrInvalidParameter, cfg.Lambda)
	}
	if cfg.Discard < 0 {
		return nil, fmt.Errorf("%w: discard must be non-negative, got %d",
			ErrInvalidParameter, cfg.Discard)
	}
	if cfg.Discard >= rows {
		return nil, fmt.Errorf("%w: discard %d leaves no output for %d rows",
			ErrInvalidParameter, cfg.Discard, rows)
	}
	if cfg.InitialState != nil && len(cfg.InitialState) != cols {
		return nil, fmt.Errorf("%w: %d initial states for %d series",
			ErrShapeMismatch, len(cfg.InitialState), cols)
	}
	if cfg.InitialCovariance != nil && len(cfg.InitialCovariance) != cols {
		return nil, fmt.Errorf("%w: %d initial covariances for %d series",
			ErrShapeMismatch, len(cfg.InitialCovariance), cols)
	}
	for j, x := range cfg.InitialState {
		if !x.finite() {
			return nil, fmt.Errorf("%w: initial state for series %d is not finite",
				ErrInvalidParameter, j)
		}
	}
	for j, p := range cfg.InitialCovariance {
		if !p.valid() {
			return nil, fmt.Errorf("%w: initial covariance for series %d is not positive semi-definite",
				ErrInvalidParameter, j)
		}
	}

	series := make([]*timeseries.Series, cols)
	for j, s := range data.Series {
		x, p := initials(cfg, j, s.Values)

		k, err := NewKalman(cfg.Lambda, x, p)
		if err != nil {
			return nil, err
		}

		values := make([]float64, rows)
		for i, y := range s.Values {
			values[i] = k.Step(y)
		}

		trend := s.Slice(cfg.Discard, rows)
		copy(trend.Values, values[cfg.Discard:])
		series[j] = trend
	}

	return &timeseries.Dataset{Series: series}, nil
}

// initials resolves the starting state and covariance for column j. The
// default state is back-extrapolated one step before the sample: the slope
// is the first observed increment and the level is the first observation
// minus that slope, so the first prediction lands on y[0].
func initials(cfg *Config, j int, values []float64) (State, Covariance) {
	var x State
	if cfg.InitialState != nil {
		x = cfg.InitialState[j]
	} else {
		slope := values[1] - values[0]
		x = State{Level: values[0] - slope, Slope: slope}
	}

	var p Covariance
	if cfg.InitialCovariance != nil {
		p = cfg.InitialCovariance[j]
	} else {
		p = Covariance{LL: DiffuseVariance, SS: DiffuseVariance}
	}

	return x, p
}

// Decomposition represents the trend/cycle split of a dataset. When rows are
// discarded, Original holds the matching tail of the input.
type Decomposition struct {
	Original *timeseries.Dataset
	Trend    *timeseries.Dataset
	Cycle    *timeseries.Dataset
}

// Decompose runs Filter and also returns the cyclical component y - trend
// over the retained rows.
func Decompose(data *timeseries.Dataset, cfg *Config) (*Decomposition, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trend, err := Filter(data, cfg)
	if err != nil {
		return nil, err
	}

	tail := make([]*timeseries.Series, data.Cols())
	for j, s := range data.Series {
		tail[j] = s.Slice(cfg.Discard, data.Rows())
	}
	original := &timeseries.Dataset{Series: tail}

	cycle, err := original.Sub(trend)
	if err != nil {
		return nil, err
	}

	return &Decomposition{
		Original: original,
		Trend:    trend,
		Cycle:    cycle,
	}, nil
}
