package vectorengine

import (
	"cmp"
	"slices"
	"time"

	"github.com/mzammit001/VectorEngine/internal/parallel"
	"github.com/mzammit001/VectorEngine/internal/tally"
)

// memo returns the cached value of stat, computing and storing it first if
// needed.
func (v *Vector) memo(stat Stat, c *cached, compute func() int64) int64 {
	began := time.Now()
	hit := c.ok
	if !hit {
		*c = some(compute())
	}
	v.e.metrics.RecordQuery(string(stat), hit, time.Since(began))
	return c.value
}

// Sum returns the sum of the elements, wrapping on overflow.
func (v *Vector) Sum() int64 {
	return v.memo(StatSum, &v.sum, v.computeSum)
}

func (v *Vector) computeSum() int64 {
	n := len(v.elements)
	switch {
	case n == 1:
		return v.elements[0]
	case v.flags.Has(FlagUniform):
		return int64(n) * v.elements[0]
	case n >= v.e.thresholds.ParallelSum:
		return parallel.Sum(v.e.runner, v.elements)
	}
	return parallel.SumSequential(v.elements)
}

// Minimum returns the smallest element.
func (v *Vector) Minimum() int64 {
	return v.memo(StatMinimum, &v.minimum, func() int64 {
		lo, _ := v.fillBounds()
		return lo
	})
}

// Maximum returns the largest element.
func (v *Vector) Maximum() int64 {
	return v.memo(StatMaximum, &v.maximum, func() int64 {
		_, hi := v.fillBounds()
		return hi
	})
}

// fillBounds caches and returns the minimum and maximum, scanning only when
// neither the cache nor the shape knows them.
func (v *Vector) fillBounds() (lo, hi int64) {
	if lo, hi, ok := v.knownBounds(); ok {
		v.minimum, v.maximum = some(lo), some(hi)
		return lo, hi
	}
	var b parallel.Bounds
	if len(v.elements) >= v.e.thresholds.ParallelSum {
		b = parallel.MinMax(v.e.runner, v.elements)
	} else {
		b = parallel.MinMaxSequential(v.elements)
	}
	v.minimum, v.maximum = some(b.Min), some(b.Max)
	return b.Min, b.Max
}

// Median returns the upper median: the element at index Len/2 of the
// sorted order.
func (v *Vector) Median() int64 {
	return v.memo(StatMedian, &v.median, v.computeMedian)
}

func (v *Vector) computeMedian() int64 {
	n := len(v.elements)
	switch {
	case n == 1:
		return v.elements[0]
	case v.flags.ascending():
		return v.elements[n/2]
	case v.flags.Has(FlagReversed):
		return v.elements[n-1-n/2]
	}
	return v.sorted().elements[n/2]
}

// Mode returns the unique most frequent element, or NoMode when the highest
// frequency is shared.
func (v *Vector) Mode() int64 {
	began := time.Now()
	v.repairInconsistentShape()
	hit := v.mode.ok
	if !hit {
		v.setMode(v.computeMode())
	}
	v.e.metrics.RecordQuery(string(StatMode), hit, time.Since(began))
	return v.modeValue()
}

func (v *Vector) computeMode() (int64, bool) {
	el := v.elements
	switch {
	case len(el) == 1:
		return el[0], true
	case len(el) == 2:
		return el[0], el[0] == el[1]
	case v.flags.Has(FlagUniform):
		return el[0], true
	case v.flags&orderFlags != 0:
		return runMode(el)
	}

	lo, hi := v.fillBounds()
	if v.countable(lo, hi) {
		if h, err := tally.NewHistogram(el, lo, hi, v.e.thresholds.CountingLimit); err == nil {
			return h.Mode()
		}
	}
	return tally.MapMode(el)
}

// runMode finds the mode of ordered elements, where equal values are adjacent.
func runMode(el []int64) (int64, bool) {
	var m tally.ModeTracker
	start := 0
	for i := 1; i <= len(el); i++ {
		if i == len(el) || el[i] != el[start] {
			m.Observe(el[start], int64(i-start))
			start = i
		}
	}
	return m.Mode()
}

// repairInconsistentShape clears cached order statistics and the order
// flags when they contradict each other. It is the only place a cached
// statistic returns to unset.
func (v *Vector) repairInconsistentShape() {
	if v.flags&orderFlags == 0 || !v.minimum.ok || !v.maximum.ok {
		return
	}
	if v.minimum.value <= v.maximum.value {
		return
	}
	v.e.logger.LogShapeRepair(v.flags, v.minimum.value, v.maximum.value)
	v.minimum, v.maximum, v.median, v.mode = cached{}, cached{}, cached{}, cached{}
	v.modeNone = false
	v.flags &^= orderFlags | FlagUniform
}

// Frequency returns how many elements equal value. It is not cached.
func (v *Vector) Frequency(value int64) int64 {
	began := time.Now()
	count := v.frequency(value)
	v.e.metrics.RecordQuery("frequency", false, time.Since(began))
	return count
}

func (v *Vector) frequency(value int64) int64 {
	el := v.elements
	if v.flags.Has(FlagUniform) {
		if el[0] == value {
			return int64(len(el))
		}
		return 0
	}
	if lo, hi, ok := v.knownBounds(); ok && (value < lo || value > hi) {
		return 0
	}
	switch {
	case v.flags.Has(FlagStable):
		return countSorted(el, value, 1)
	case v.flags.Has(FlagReversed):
		return countSorted(el, value, -1)
	case len(el) >= v.e.thresholds.ParallelFrequency:
		return parallel.Count(v.e.runner, el, value)
	}
	return parallel.CountSequential(el, value)
}

// countSorted counts value in el, which is ordered ascending when dir is 1
// and descending when dir is -1.
func countSorted(el []int64, value int64, dir int) int64 {
	before := func(x, t int64) int {
		if dir*cmp.Compare(x, t) < 0 {
			return -1
		}
		return 1
	}
	through := func(x, t int64) int {
		if dir*cmp.Compare(x, t) <= 0 {
			return -1
		}
		return 1
	}
	i, _ := slices.BinarySearchFunc(el, value, before)
	j, _ := slices.BinarySearchFunc(el, value, through)
	return int64(j - i)
}
