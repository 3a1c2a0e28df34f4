package parallel

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"

	"github.com/mzammit001/VectorEngine/internal/resource"
)

// Span is the half-open index range [Lo, Hi).
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices in the span.
func (s Span) Len() int { return s.Hi - s.Lo }

// Split partitions [0, n) into at most parts contiguous spans of equal size;
// the last span absorbs the remainder. Every index is covered exactly once.
func Split(n, parts int) []Span {
	if n <= 0 {
		return nil
	}
	parts = min(max(parts, 1), n)
	size := n / parts
	spans := make([]Span, parts)
	for i := range spans {
		spans[i] = Span{Lo: i * size, Hi: (i + 1) * size}
	}
	spans[parts-1].Hi = n
	return spans
}

// Runner executes reductions on a bounded number of goroutines.
// A nil Runner runs everything sequentially.
type Runner struct {
	workers int
	rc      *resource.Controller
}

// NewRunner creates a Runner fanning out to at most workers goroutines.
// If workers <= 0, runtime.GOMAXPROCS(0) is used. rc may be nil.
func NewRunner(workers int, rc *resource.Controller) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{workers: workers, rc: rc}
}

// Workers returns the maximum fan-out.
func (r *Runner) Workers() int {
	if r == nil {
		return 1
	}
	return r.workers
}

// fanout reserves worker slots for a job over n elements and returns the
// number of spans to use along with the matching release.
func (r *Runner) fanout(n int) (int, func()) {
	if r == nil || r.workers <= 1 || n < 2 {
		return 1, func() {}
	}
	got := r.rc.TryAcquireWorkers(min(r.workers, n))
	if got <= 1 {
		r.rc.ReleaseWorkers(got)
		return 1, func() {}
	}
	return got, func() { r.rc.ReleaseWorkers(got) }
}

// slot pads a partial result onto its own cache line.
type slot[T any] struct {
	v T
	_ cpu.CacheLinePad
}

// Reduce computes partial over every span of [0, n) and folds the results
// with combine. combine must be associative and commutative.
func Reduce[T any](r *Runner, n int, partial func(lo, hi int) T, combine func(a, b T) T) T {
	parts, release := r.fanout(n)
	defer release()
	if parts <= 1 {
		return partial(0, n)
	}

	spans := Split(n, parts)
	slots := make([]slot[T], len(spans))

	var g errgroup.Group
	g.SetLimit(len(spans))
	for i, s := range spans {
		g.Go(func() error {
			slots[i].v = partial(s.Lo, s.Hi)
			return nil
		})
	}
	_ = g.Wait()

	acc := slots[0].v
	for i := 1; i < len(slots); i++ {
		acc = combine(acc, slots[i].v)
	}
	return acc
}

// Sum returns the wrapping sum of data.
func Sum(r *Runner, data []int64) int64 {
	return Reduce(r, len(data), func(lo, hi int) int64 {
		return SumSequential(data[lo:hi])
	}, addInt64)
}

// SumSequential returns the wrapping sum of data on the calling goroutine.
func SumSequential(data []int64) int64 {
	var s int64
	for _, v := range data {
		s += v
	}
	return s
}

// Count returns how many elements of data equal value.
func Count(r *Runner, data []int64, value int64) int64 {
	return Reduce(r, len(data), func(lo, hi int) int64 {
		return CountSequential(data[lo:hi], value)
	}, addInt64)
}

// CountSequential counts value in data on the calling goroutine.
func CountSequential(data []int64, value int64) int64 {
	var c int64
	for _, v := range data {
		if v == value {
			c++
		}
	}
	return c
}

// Bounds is a minimum/maximum pair.
type Bounds struct {
	Min, Max int64
}

// MinMax returns the smallest and largest element of data.
// For empty data it returns {MaxInt64, MinInt64}.
func MinMax(r *Runner, data []int64) Bounds {
	return Reduce(r, len(data), func(lo, hi int) Bounds {
		return MinMaxSequential(data[lo:hi])
	}, func(a, b Bounds) Bounds {
		return Bounds{Min: min(a.Min, b.Min), Max: max(a.Max, b.Max)}
	})
}

// MinMaxSequential scans data on the calling goroutine.
func MinMaxSequential(data []int64) Bounds {
	b := Bounds{Min: math.MaxInt64, Max: math.MinInt64}
	for _, v := range data {
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b
}

func addInt64(a, b int64) int64 { return a + b }
