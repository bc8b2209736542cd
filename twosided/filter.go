// Package twosided implements the two-sided (full-sample) Hodrick-Prescott filter.
package twosided

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gohpfilter/timeseries"
)

// DefaultLambda is the conventional smoothing parameter for quarterly data.
const DefaultLambda = 1600

// Config holds configuration for the two-sided filter.
type Config struct {
	Lambda float64 // Smoothing parameter, must be >= 0 (default: 1600)
}

// DefaultConfig returns the default two-sided filter configuration.
func DefaultConfig() *Config {
	return &Config{
		Lambda: DefaultLambda,
	}
}

// Filter estimates the trend of every series in the dataset with the
// two-sided HP filter. The system matrix is built and factorized once and
// all columns are solved against the same factorization. The output has the
// same shape as the input; names and timestamps pass through unchanged.
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

	a, err := PenaltyMatrix(cfg.Lambda, rows)
	if err != nil {
		return nil, err
	}

	var chol mat.BandCholesky
	if ok := chol.Factorize(a); !ok {
		return nil, fmt.Errorf("%w: lambda=%v, n=%d", ErrSingularMatrix, cfg.Lambda, rows)
	}

	var x mat.Dense
	if err := chol.SolveTo(&x, data.Matrix()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularMatrix, err)
	}

	series := make([]*timeseries.Series, cols)
	for j, s := range data.Series {
		values := make([]float64, rows)
		for i := range values {
			values[i] = x.At(i, j)
		}
		trend := s.Copy()
		trend.Values = values
		series[j] = trend
	}

	return &timeseries.Dataset{Series: series}, nil
}

// Decomposition represents the trend/cycle split of a dataset.
type Decomposition struct {
	Original *timeseries.Dataset
	Trend    *timeseries.Dataset
	Cycle    *timeseries.Dataset
}

// Decompose runs Filter and also returns the cyclical component y - trend.
// Trend plus cycle reconstructs the input exactly.
func Decompose(data *timeseries.Dataset, cfg *Config) (*Decomposition, error) {
	trend, err := Filter(data, cfg)
	if err != nil {
		return nil, err
	}

	cycle, err := data.Sub(trend)
	if err != nil {
		return nil, err
	}

	return &Decomposition{
		Original: data,
		Trend:    trend,
		Cycle:    cycle,
	}, nil
}
