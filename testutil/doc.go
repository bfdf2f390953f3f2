// Package testutil provides testing utilities for hotsax.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating synthetic series, injecting
// anomalies, and computing exact discords for verification.
//
// # Series Generation
//
//	rng := testutil.NewRNG(seed)
//	values := rng.RandomWalk(1000, 0.5)   // seeded random walk
//	values = testutil.Sine(1000, 100, 1)  // clean periodic signal
//
// # Anomaly Injection
//
//	testutil.ScaleRange(values, 430, 460, 0.2)
//
// # Exact Discord (Ground Truth)
//
//	pos, dist, ok := testutil.NaiveDiscord(values, 50)
package testutil
