package vectorengine

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/mzammit001/VectorEngine/numtheory"
	"github.com/mzammit001/VectorEngine/sieve"
)

// RandomMax is the inclusive upper bound of Random elements.
const RandomMax = 100

// randomStream is the fixed PCG stream; the seed alone selects the sequence.
const randomStream = 0x9e3779b97f4a7c15

func (e *Engine) generate(kind string, length int, build func() (*Vector, error)) (*Vector, error) {
	began := time.Now()
	if length < 1 {
		err := &ErrInvalidLength{Length: length}
		e.metrics.RecordGenerate(kind, length, time.Since(began), err)
		e.logger.LogGenerate(kind, length, err)
		return nil, err
	}

	v, err := build()
	e.metrics.RecordGenerate(kind, length, time.Since(began), err)
	e.logger.LogGenerate(kind, length, err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Uniform returns a vector with every element set to value.
func (e *Engine) Uniform(length int, value int64) (*Vector, error) {
	return e.generate("uniform", length, func() (*Vector, error) {
		return e.uniform(length, value), nil
	})
}

func (e *Engine) uniform(length int, value int64) *Vector {
	elements := make([]int64, length)
	for i := range elements {
		elements[i] = value
	}
	v := e.newVector(elements)
	v.fillUniform(value)
	return v
}

// Sequence returns the arithmetic progression start, start+step, ...
//
// A zero step is the same as Uniform(length, start).
func (e *Engine) Sequence(length int, start, step int64) (*Vector, error) {
	if step == 0 {
		return e.Uniform(length, start)
	}
	return e.generate("sequence", length, func() (*Vector, error) {
		elements := make([]int64, length)
		var sum int64
		monotone := true
		x := start
		for i := range elements {
			elements[i] = x
			sum += x
			if i < length-1 && addOverflows(x, step) {
				monotone = false
			}
			x += step
		}

		v := e.newVector(elements)
		v.sum = some(sum)
		switch {
		case length == 1:
			v.fillUniform(start)
		case monotone:
			// Distinct values: no element repeats.
			v.setMode(0, false)
			if step > 0 {
				v.flags = FlagStable
			} else {
				v.flags = FlagReversed
			}
			v.deriveOrderStats()
		}
		return v, nil
	})
}

// Random returns length values drawn uniformly from [0, RandomMax] by a
// generator seeded with seed. The same seed always yields the same vector.
func (e *Engine) Random(length int, seed int64) (*Vector, error) {
	return e.generate("random", length, func() (*Vector, error) {
		rng := rand.New(rand.NewPCG(uint64(seed), randomStream))
		elements := make([]int64, length)
		var sum int64
		lo, hi := int64(RandomMax), int64(0)
		for i := range elements {
			x := rng.Int64N(RandomMax + 1)
			elements[i] = x
			sum += x
			lo = min(lo, x)
			hi = max(hi, x)
		}

		v := e.newVector(elements)
		v.flags = FlagRandom
		v.sum = some(sum)
		v.minimum, v.maximum = some(lo), some(hi)
		return v, nil
	})
}

// Prime returns the first length primes not below start.
func (e *Engine) Prime(length int, start int64) (*Vector, error) {
	start = max(start, numtheory.MinPrime)
	return e.scan("prime", length, start, e.capacity(sieve.KindPrime), e.IsPrime)
}

// Semiprime returns the first length semiprimes (the pq sequence) not below start.
func (e *Engine) Semiprime(length int, start int64) (*Vector, error) {
	start = max(start, numtheory.MinSemiprime)
	return e.scan("pq", length, start, e.capacity(sieve.KindSemiprime), e.IsSemiprime)
}

// Abundant returns the first length abundant numbers not below start.
func (e *Engine) Abundant(length int, start int64) (*Vector, error) {
	start = max(start, numtheory.MinAbundant)
	return e.scan("abundant", length, start, e.capacity(sieve.KindAbundant), e.IsAbundant)
}

// Composite returns the first length composite numbers not below start.
func (e *Engine) Composite(length int, start int64) (*Vector, error) {
	start = max(start, numtheory.MinComposite)
	// At least every other integer from 4 on is composite.
	reserve := func(start int64, length int) {
		bound := int64(math.MaxInt64)
		if span := 2 * int64(length); !addOverflows(start, span) {
			bound = start + span
		}
		e.sieves.EnsureRange(sieve.KindPrime, start, bound)
	}
	return e.scan("composite", length, start, reserve, e.IsComposite)
}

func (e *Engine) capacity(kind sieve.Kind) func(int64, int) {
	return func(start int64, length int) {
		e.sieves.EnsureCapacity(kind, start, length)
	}
}

// scan collects the first length members from start. Members of these
// sequences never repeat and are found in increasing order. A scan that
// reaches math.MaxInt64 short of length members fails.
func (e *Engine) scan(kind string, length int, start int64, reserve func(int64, int), member func(int64) bool) (*Vector, error) {
	return e.generate(kind, length, func() (*Vector, error) {
		reserve(start, length)

		elements := make([]int64, 0, length)
		var sum int64
		for n := start; len(elements) < length; n++ {
			if member(n) {
				elements = append(elements, n)
				sum += n
			}
			if n == math.MaxInt64 && len(elements) < length {
				return nil, &ErrSequenceExhausted{Kind: kind, Start: start, Length: length, Found: len(elements)}
			}
		}

		v := e.newVector(elements)
		v.sum = some(sum)
		if length == 1 {
			v.fillUniform(elements[0])
			return v, nil
		}
		v.setMode(0, false)
		v.flags = FlagStable
		v.deriveOrderStats()
		return v, nil
	})
}
