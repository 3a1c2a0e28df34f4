package vectorengine

import (
	"slices"
	"time"

	"github.com/mzammit001/VectorEngine/internal/parallel"
	"github.com/mzammit001/VectorEngine/internal/tally"
)

// Transforms never modify their receiver's elements. They may fill in
// statistics on the receiver that they learn along the way.

// Cloned returns an exact copy of v, including cached statistics and flags.
func (v *Vector) Cloned() *Vector {
	defer v.e.observeTransform("cloned", time.Now())
	return v.clone()
}

// Sorted returns the elements in non-decreasing order.
func (v *Vector) Sorted() *Vector {
	defer v.e.observeTransform("sorted", time.Now())
	return v.sorted()
}

func (v *Vector) sorted() *Vector {
	switch {
	case v.flags.ascending():
		return v.clone()
	case v.flags.Has(FlagReversed):
		return v.mirror()
	}

	n := len(v.elements)
	out := v.e.newVector(make([]int64, n))
	out.copyStats(v)
	if !v.flags.Has(FlagRandom) || !v.countingSort(out) {
		copy(out.elements, v.elements)
		if n >= v.e.thresholds.ParallelSort {
			parallel.Sort(v.e.runner, out.elements)
		} else {
			slices.Sort(out.elements)
		}
	}
	out.flags = v.flags&FlagRandom | FlagStable
	out.deriveOrderStats()

	v.minimum, v.maximum, v.median = out.minimum, out.maximum, out.median
	return out
}

// countingSort sorts v into out with a counting array when the value range
// allows it, recovering sum and mode for both vectors.
func (v *Vector) countingSort(out *Vector) bool {
	lo, hi := v.fillBounds()
	if !v.countable(lo, hi) {
		return false
	}
	sum, mode, unique, err := tally.CountingSort(out.elements, v.elements, lo, hi, v.e.thresholds.CountingLimit)
	if err != nil {
		return false
	}
	v.sum, out.sum = some(sum), some(sum)
	if !v.mode.ok {
		v.setMode(mode, unique)
	}
	out.mode, out.modeNone = v.mode, v.modeNone
	return true
}

// countable reports whether a counting array over [lo, hi] is allowed and
// small enough relative to the length to beat a comparison sort or a map.
func (v *Vector) countable(lo, hi int64) bool {
	if !tally.Eligible(lo, hi, v.e.thresholds.CountingLimit) {
		return false
	}
	return hi-lo <= max(int64(len(v.elements))*denseFactor, denseFloor)
}

const (
	denseFactor = 8
	denseFloor  = 1 << 16
)

// Reversed returns the elements in reverse order.
func (v *Vector) Reversed() *Vector {
	defer v.e.observeTransform("reversed", time.Now())
	if v.flags.Has(FlagUniform) {
		return v.clone()
	}
	return v.mirror()
}

func (v *Vector) mirror() *Vector {
	out := v.clone()
	slices.Reverse(out.elements)
	out.flags = v.flags.swapOrder()
	return out
}

// Shifted rotates the elements right by amount mod Len positions.
// Negative amounts rotate left.
func (v *Vector) Shifted(amount int) *Vector {
	defer v.e.observeTransform("shifted", time.Now())

	n := len(v.elements)
	k := amount % n
	if k < 0 {
		k += n
	}
	out := v.e.newVector(make([]int64, n))
	copy(out.elements[k:], v.elements[:n-k])
	copy(out.elements[:k], v.elements[n-k:])
	out.copyStats(v)
	out.flags = v.flags
	if k != 0 && !v.flags.Has(FlagUniform) {
		out.flags &^= orderFlags
	}
	return out
}

// ScalarAdd returns v with c added to every element.
func (v *Vector) ScalarAdd(c int64) *Vector {
	defer v.e.observeTransform("scalar#add", time.Now())
	return v.addScalar(c)
}

func (v *Vector) addScalar(c int64) *Vector {
	n := len(v.elements)
	out := v.e.newVector(make([]int64, n))
	wrapped, negative := false, false
	for i, x := range v.elements {
		y := x + c
		if addOverflows(x, c) {
			wrapped = true
		}
		if y < 0 {
			negative = true
		}
		out.elements[i] = y
	}

	out.flags = v.flags
	if wrapped || negative {
		out.flags &^= FlagRandom
	}
	if v.sum.ok {
		out.sum = some(v.sum.value + int64(n)*c)
	}
	// x+c is a bijection even when it wraps, so the mode carries over.
	if v.mode.ok {
		out.setMode(v.mode.value+c, !v.modeNone)
	}
	if v.flags.Has(FlagUniform) {
		out.fillUniform(out.elements[0])
		return out
	}
	if wrapped {
		out.flags &^= orderFlags
		return out
	}
	out.minimum = shift(v.minimum, c)
	out.maximum = shift(v.maximum, c)
	out.median = shift(v.median, c)
	return out
}

func shift(c cached, by int64) cached {
	if !c.ok {
		return c
	}
	return some(c.value + by)
}

func scale(c cached, by int64) cached {
	if !c.ok {
		return c
	}
	return some(c.value * by)
}

// ScalarMultiply returns v with every element multiplied by c.
func (v *Vector) ScalarMultiply(c int64) *Vector {
	defer v.e.observeTransform("scalar#mul", time.Now())
	return v.mulScalar(c)
}

func (v *Vector) mulScalar(c int64) *Vector {
	n := len(v.elements)
	switch c {
	case 0:
		return v.e.uniform(n, 0)
	case 1:
		return v.clone()
	}

	out := v.e.newVector(make([]int64, n))
	wrapped := false
	for i, x := range v.elements {
		if mulOverflows(x, c) {
			wrapped = true
		}
		out.elements[i] = x * c
	}

	if v.sum.ok {
		out.sum = some(v.sum.value * c)
	}
	if v.flags.Has(FlagUniform) {
		out.flags = FlagUniform | FlagStable
		if c > 0 && !wrapped {
			out.flags |= v.flags & FlagRandom
		}
		out.fillUniform(out.elements[0])
		return out
	}
	if wrapped {
		return out
	}

	if v.mode.ok {
		out.setMode(v.mode.value*c, !v.modeNone)
	}
	if c > 0 {
		out.flags = v.flags
		out.minimum = scale(v.minimum, c)
		out.maximum = scale(v.maximum, c)
		out.median = scale(v.median, c)
		return out
	}

	out.flags = v.flags.swapOrder() &^ FlagRandom
	out.minimum = scale(v.maximum, c)
	out.maximum = scale(v.minimum, c)
	// Negation maps the upper median onto the lower one, which only
	// coincide for odd lengths.
	if n%2 == 1 {
		out.median = scale(v.median, c)
	}
	return out
}
