// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow/underflow
// when converting between signed/unsigned and different bit-width integer types.
//
// Use cases:
//   - Capping int64 size estimates to int table limits
//   - Checking that table limits fit the uint32 domain of roaring bitmaps
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, values already range-checked against a table size), use direct
// type casts instead to avoid overhead.
package conv
