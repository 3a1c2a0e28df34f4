// Package vectorengine provides fixed-length integer vectors with lazily
// computed, memoized statistics.
//
// An Engine generates vectors from parametric rules, and every Vector it
// returns can be transformed into new vectors or queried for aggregates.
// Statistics learned while generating or transforming are carried along, so
// most queries on derived vectors never scan the elements.
//
// # Quick Start
//
//	e, _ := vectorengine.New()
//	v, _ := e.Sequence(5, 5, -1)  // 5 4 3 2 1
//	v.Median()                    // 3, read off the descending shape
//	v.Mode()                      // -1: no value repeats
//
// # Generators
//
//	e.Sequence(length, start, step)  // arithmetic progression
//	e.Uniform(length, value)
//	e.Random(length, seed)           // deterministic, values in [0, 100]
//	e.Prime(length, start)           // also Semiprime, Abundant, Composite
//
// The number-theoretic generators answer membership queries from sieve
// tables that grow on demand up to a per-kind ceiling. Beyond the ceiling
// each candidate is tested directly; results are identical either way.
//
// # Transforms
//
// Cloned, Sorted, Reversed, Shifted, ScalarAdd, ScalarMultiply, VectorAdd
// and VectorMultiply each return a fresh vector and leave the receiver's
// elements untouched.
//
// # Queries
//
// Sum, Minimum, Maximum, Median (upper median) and Mode are cached after the
// first call. Frequency is not. Large vectors are reduced on several
// goroutines; see WithWorkers and WithThresholds.
//
// # Arithmetic
//
// Elements are int64 and arithmetic wraps on overflow. Sum stays consistent
// with the wrapped elements. Order-dependent statistics and shape flags are
// dropped whenever an element wrapped.
//
// # Concurrency
//
// An Engine is safe for concurrent use. A Vector is not: use each Vector
// from one goroutine at a time, or clone it first.
package vectorengine
