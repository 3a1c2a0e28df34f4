package numtheory

import "math/bits"

// Sequence minimums. Generators clamp their start value up to these.
const (
	MinPrime     int64 = 2
	MinSemiprime int64 = 4
	MinAbundant  int64 = 12
	MinComposite int64 = 4
)

// trialLimit is the largest n IsPrime settles by trial division.
const trialLimit = 1 << 20

// millerRabinBases make Miller-Rabin deterministic for every 64-bit n.
var millerRabinBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// IsPrime reports whether n is prime. Small n use 6k±1 trial division, larger
// n a deterministic Miller-Rabin test.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	if n > trialLimit {
		return millerRabin(uint64(n))
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

func millerRabin(n uint64) bool {
	d := n - 1
	r := bits.TrailingZeros64(d)
	d >>= r

next:
	for _, a := range millerRabinBases {
		if a%n == 0 {
			continue
		}
		x := powMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		for range r - 1 {
			x = mulMod(x, x, n)
			if x == n-1 {
				continue next
			}
		}
		return false
	}
	return true
}

// mulMod returns a*b mod m for a, b < m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

// IsComposite reports whether n is greater than one and not prime.
func IsComposite(n int64) bool {
	return n > 1 && !IsPrime(n)
}

// IsSemiprime reports whether n is the product of exactly two primes,
// counted with multiplicity (9 = 3·3 qualifies).
func IsSemiprime(n int64) bool {
	if n < 4 || IsPrime(n) {
		return false
	}

	factors := 0
	for d := int64(2); d <= n/d; d++ {
		for n%d == 0 {
			n /= d
			factors++
			if factors > 2 {
				return false
			}
		}
	}
	if n > 1 {
		factors++
	}
	return factors == 2
}

// IsAbundant reports whether the proper divisors of n sum to more than n.
//
// Divisors are visited in pairs (d, n/d) up to √n and the scan stops as soon
// as the running sum exceeds n. Odd numbers have no even divisors, so only
// odd candidates are tried for them.
func IsAbundant(n int64) bool {
	if n < MinAbundant || IsPrime(n) {
		return false
	}

	sum := int64(1)
	d, step := int64(2), int64(1)
	if n%2 != 0 {
		d, step = 3, 2
	}
	for ; d <= n/d; d += step {
		if n%d != 0 {
			continue
		}
		sum += d
		if q := n / d; q != d {
			sum += q
		}
		if sum > n {
			return true
		}
	}
	return false
}

// ProperDivisorSum returns the sum of the proper divisors of n (σ(n) − n).
// Returns 0 for n < 2.
func ProperDivisorSum(n int64) int64 {
	if n < 2 {
		return 0
	}
	sum := int64(1)
	for d := int64(2); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		sum += d
		if q := n / d; q != d {
			sum += q
		}
	}
	return sum
}
