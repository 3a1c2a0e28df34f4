// Package testutil provides testing utilities for VectorEngine.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for element slices and naive
// reference implementations that fast paths are checked against.
//
// # Random Elements
//
//	rng := testutil.NewRNG(seed)
//	data := rng.Elements(1000, -50, 50) // uniform in [-50, 50]
//
// # Reference Statistics
//
//	assert.Equal(t, testutil.Mode(data), v.Mode())
package testutil
