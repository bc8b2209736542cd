// Package twosided implements the two-sided Hodrick-Prescott filter.
//
// The two-sided filter finds the trend tau minimizing
//
//	sum (y_t - tau_t)^2 + lambda * sum (tau_{t+1} - 2*tau_t + tau_{t-1})^2
//
// over the full sample. The first-order conditions form a linear system
// A*tau = y with a symmetric pentadiagonal A depending only on lambda and the
// sample length, which is factorized once per call with a banded Cholesky
// decomposition and solved for every column of the dataset.
//
// Because every trend point uses the entire series, the estimate is
// non-causal; use package onesided for real-time filtering.
//
// # Usage
//
//	trend, err := twosided.Filter(data, nil) // lambda = 1600
//
//	cfg := &twosided.Config{Lambda: 129600}  // monthly data
//	dec, err := twosided.Decompose(data, cfg)
//	// dec.Trend, dec.Cycle
package twosided
