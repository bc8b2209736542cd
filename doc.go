// Package gohpfilter provides Hodrick-Prescott trend filtering for time series.
//
// GoHPFilter decomposes one or more time series into a smooth trend and a
// residual cyclical component using the Hodrick-Prescott (HP) filter. Two
// estimators are provided: the classic two-sided filter, which uses the full
// sample, and a one-sided filter, which at each point uses only current and
// past observations and is therefore suitable for real-time analysis.
//
// # Quick Start
//
// Apply the two-sided filter to a dataset:
//
//	data, _ := timeseries.NewDataset(timeseries.New(values))
//	trend, _ := twosided.Filter(data, nil) // lambda = 1600
//
// Apply the one-sided filter, dropping a warm-up period:
//
//	cfg := onesided.DefaultConfig()
//	cfg.Discard = 8
//	trend, _ := onesided.Filter(data, cfg)
//
// Obtain both trend and cycle in one call:
//
//	dec, _ := twosided.Decompose(data, nil)
//	// dec.Trend, dec.Cycle
//
// # Packages
//
// The library is organized into the following packages:
//
//   - timeseries: Series and Dataset types, CSV loading and saving
//   - twosided: Two-sided (full-sample) HP filter
//   - onesided: One-sided (causal) HP filter via a Kalman recursion
//
// # References
//
//   - Hodrick, R.J., & Prescott, E.C. (1997). Postwar U.S. Business Cycles: An Empirical Investigation
//   - Stock, J.H., & Watson, M.W. (1999). Forecasting Inflation
package gohpfilter
