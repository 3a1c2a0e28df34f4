// Package numtheory provides the uncached number-theoretic predicates behind
// the prime, semiprime ("pq"), abundant and composite sequences.
//
// Every function is pure and safe for concurrent use. The sieve package uses
// them to answer queries outside its table bounds, so they must stay correct
// for any int64 input, not merely fast for small ones.
package numtheory
