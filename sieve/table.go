package sieve

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// table is an immutable membership snapshot valid over [0, limit).
// Exactly one of dense and sparse is set.
type table struct {
	limit  int
	dense  *bitset.BitSet
	sparse *roaring.Bitmap
	bytes  int64
}

func (t *table) contains(n int) bool {
	if t.sparse != nil {
		return t.sparse.Contains(uint32(n))
	}
	return t.dense.Test(uint(n))
}

func (t *table) count() uint64 {
	if t.sparse != nil {
		return t.sparse.GetCardinality()
	}
	return uint64(t.dense.Count())
}

// denseBytes is the footprint of a bitset covering limit values.
func denseBytes(limit int) int64 {
	return int64((limit + 63) / 64 * 8)
}

// sievePrimes runs Eratosthenes over [0, limit) and returns the prime bits.
func sievePrimes(limit int) *bitset.BitSet {
	n := uint(max(limit, 0))
	composite := bitset.New(n)
	for i := uint(2); i*i < n; i++ {
		if composite.Test(i) {
			continue
		}
		for j := i * i; j < n; j += i {
			composite.Set(j)
		}
	}

	primes := composite.Complement()
	if n > 0 {
		primes.Clear(0)
	}
	if n > 1 {
		primes.Clear(1)
	}
	return primes
}

// buildPrimeTable builds the prime table for [0, limit).
func buildPrimeTable(limit int) *table {
	return &table{
		limit: limit,
		dense: sievePrimes(limit),
		bytes: denseBytes(limit),
	}
}

// buildSemiprimeTable marks i·j for every prime pair i ≤ j with i·j < limit.
// primes must cover at least [0, limit/2+1).
func buildSemiprimeTable(limit int, primes *bitset.BitSet) *table {
	n := uint(limit)
	marks := bitset.New(n)
	for i, ok := primes.NextSet(2); ok && i*i < n; i, ok = primes.NextSet(i + 1) {
		for j, ok := primes.NextSet(i); ok && i*j < n; j, ok = primes.NextSet(j + 1) {
			marks.Set(i * j)
		}
	}

	members := make([]uint32, 0, marks.Count())
	for i, ok := marks.NextSet(0); ok; i, ok = marks.NextSet(i + 1) {
		members = append(members, uint32(i))
	}

	rb := roaring.New()
	rb.AddMany(members)
	rb.RunOptimize()

	return &table{
		limit:  limit,
		sparse: rb,
		bytes:  int64(rb.GetSizeInBytes()),
	}
}

// buildAbundantTable accumulates proper divisor sums for [0, limit) and keeps
// the values whose sum exceeds themselves.
func buildAbundantTable(limit int) *table {
	sums := make([]int32, max(limit, 0))
	for i := 2; i <= (limit-1)/2; i++ {
		for m := 2 * i; m < limit; m += i {
			sums[m] += int32(i)
		}
	}

	bits := bitset.New(uint(max(limit, 0)))
	for n := 2; n < limit; n++ {
		// +1 for the divisor 1, which the accumulation skips.
		if int(sums[n])+1 > n {
			bits.Set(uint(n))
		}
	}

	return &table{
		limit: limit,
		dense: bits,
		bytes: denseBytes(limit),
	}
}
