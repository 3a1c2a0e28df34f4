package testutil

import (
	"math/rand"
	"slices"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64Range returns a pseudo-random number in [lo, hi].
func (r *RNG) Int64Range(lo, hi int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Int63n(hi-lo+1)
}

// Elements returns n values drawn uniformly from [lo, hi].
// Locks only once per call (preferred over calling Int64Range in a loop).
func (r *RNG) Elements(n int, lo, hi int64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]int64, n)
	for i := range data {
		data[i] = lo + r.rand.Int63n(hi-lo+1)
	}
	return data
}

// SortedElements returns n values from [lo, hi] in non-decreasing order.
func (r *RNG) SortedElements(n int, lo, hi int64) []int64 {
	data := r.Elements(n, lo, hi)
	slices.Sort(data)
	return data
}

// Sum returns the wrapping sum of data.
func Sum(data []int64) int64 {
	var s int64
	for _, v := range data {
		s += v
	}
	return s
}

// Minimum returns the smallest element of a non-empty slice.
func Minimum(data []int64) int64 {
	return slices.Min(data)
}

// Maximum returns the largest element of a non-empty slice.
func Maximum(data []int64) int64 {
	return slices.Max(data)
}

// Median returns the element at index len/2 of the sorted copy of data.
func Median(data []int64) int64 {
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	return sorted[len(sorted)/2]
}

// Mode returns the unique most frequent element, or -1 when the highest
// frequency is shared by several values.
func Mode(data []int64) int64 {
	best, mode, unique := 0, int64(-1), false
	for i, v := range data {
		if slices.Index(data, v) != i {
			continue
		}
		n := Frequency(data, v)
		switch {
		case n > best:
			best, mode, unique = n, v, true
		case n == best:
			unique = false
		}
	}
	if !unique {
		return -1
	}
	return mode
}

// Frequency counts occurrences of value.
func Frequency(data []int64, value int64) int {
	n := 0
	for _, v := range data {
		if v == value {
			n++
		}
	}
	return n
}

// DivisorSum returns the sum of the proper divisors of n by trial division.
func DivisorSum(n int64) int64 {
	if n < 2 {
		return 0
	}
	var s int64
	for d := int64(1); d <= n/2; d++ {
		if n%d == 0 {
			s += d
		}
	}
	return s
}

// IsPrime reports primality by trial division.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// IsSemiprime reports whether n has exactly two prime factors, counted with
// multiplicity.
func IsSemiprime(n int64) bool {
	factors := 0
	for d := int64(2); d*d <= n; d++ {
		for n%d == 0 {
			n /= d
			factors++
		}
	}
	if n > 1 {
		factors++
	}
	return factors == 2
}

// IsAbundant reports whether the proper divisors of n sum to more than n.
func IsAbundant(n int64) bool {
	return n > 0 && DivisorSum(n) > n
}
