// Package sieve provides growable lookup tables answering "is n prime /
// semiprime / abundant" in O(1).
//
// Architecture:
//   - Three independent tables, one per Kind, each valid over [0, Limit)
//   - Prime and abundant membership live in dense bitsets
//     (github.com/bits-and-blooms/bitset); semiprimes, which thin out as n
//     grows, live in a roaring bitmap (github.com/RoaringBitmap/roaring/v2)
//   - Tables are immutable once built and published through atomic pointers,
//     so queries never lock; growth rebuilds the whole table at the new size
//     under a mutex and swaps it in
//   - Limits only grow, toward a per-kind ceiling
//
// Queries outside a table's bounds fall back to the numtheory predicates.
// The fallback is not an error and returns the same answer the table would.
//
//	c := sieve.New(sieve.DefaultConfig())
//	c.EnsureCapacity(sieve.KindPrime, 42, 4)
//	c.Query(sieve.KindPrime, 43) // true, from the table
package sieve
