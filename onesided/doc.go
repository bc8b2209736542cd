// Package onesided implements the one-sided Hodrick-Prescott filter.
//
// The one-sided filter is the causal counterpart of the two-sided HP filter:
// the trend at time t is estimated from observations up to and including t
// only, which makes it usable in real time. Each series is modeled as a
// local linear trend
//
//	level_t = level_{t-1} + slope_{t-1}
//	slope_t = slope_{t-1} + eta_t
//	y_t     = level_t + eps_t
//
// with Var(eta)/Var(eps) = 1/lambda, the state-space equivalent of the HP
// curvature penalty, and filtered with an exact Kalman recursion. For any
// lambda > 0 the recursion's covariance converges to a steady state, exposed
// by SteadyState.
//
// Early output rows lean on the diffuse prior and are typically unreliable;
// the Discard option drops a warm-up period from the front of the output.
//
// # Usage
//
//	trend, err := onesided.Filter(data, nil) // lambda = 1600, discard = 0
//
//	cfg := onesided.DefaultConfig()
//	cfg.Discard = 8
//	dec, err := onesided.Decompose(data, cfg)
//	// dec.Trend, dec.Cycle align with input rows [8, T)
package onesided
