package sieve

import "github.com/mzammit001/VectorEngine/numtheory"

// Kind selects one of the sieve tables.
type Kind uint8

const (
	// KindPrime answers primality.
	KindPrime Kind = iota
	// KindSemiprime answers "product of exactly two primes" (the pq sequence).
	KindSemiprime
	// KindAbundant answers "proper divisors sum to more than n".
	KindAbundant

	kindCount = 3
)

// Kinds lists every table kind in index order.
var Kinds = [kindCount]Kind{KindPrime, KindSemiprime, KindAbundant}

func (k Kind) String() string {
	switch k {
	case KindPrime:
		return "prime"
	case KindSemiprime:
		return "pq"
	case KindAbundant:
		return "abundant"
	default:
		return "unknown"
	}
}

// Provider is the capability generators and predicates use to answer
// membership questions. A single process-wide instance is normally shared.
type Provider interface {
	// EnsureCapacity grows the table for kind so that a scan collecting
	// length members from start is likely covered. It never shrinks a table
	// and may decline to grow (ceiling reached, memory budget exhausted).
	EnsureCapacity(kind Kind, start int64, length int)

	// EnsureRange grows the table for kind to cover [start, limit), under
	// the same ceiling and memory rules as EnsureCapacity.
	EnsureRange(kind Kind, start, limit int64)

	// Query reports whether n is a member of kind. Values outside the table
	// are answered by direct computation.
	Query(kind Kind, n int64) bool
}

// Direct answers a query for kind without any table.
func Direct(kind Kind, n int64) bool {
	switch kind {
	case KindPrime:
		return numtheory.IsPrime(n)
	case KindSemiprime:
		return numtheory.IsSemiprime(n)
	case KindAbundant:
		return numtheory.IsAbundant(n)
	default:
		return false
	}
}

// Uncached is a Provider that never builds tables.
type Uncached struct{}

// EnsureCapacity implements Provider.
func (Uncached) EnsureCapacity(Kind, int64, int) {}

// EnsureRange implements Provider.
func (Uncached) EnsureRange(Kind, int64, int64) {}

// Query implements Provider.
func (Uncached) Query(kind Kind, n int64) bool { return Direct(kind, n) }
