package vectorengine

import (
	"slices"
	"strconv"
	"strings"
)

// NoMode is reported by Mode when no single value occurs most often.
const NoMode int64 = -1

// Stat names a cached statistic.
type Stat string

const (
	StatSum     Stat = "sum"
	StatMode    Stat = "mode"
	StatMedian  Stat = "median"
	StatMinimum Stat = "minimum"
	StatMaximum Stat = "maximum"
)

// cached is an optional memoized value.
type cached struct {
	value int64
	ok    bool
}

func some(v int64) cached { return cached{value: v, ok: true} }

// Vector is a fixed-length sequence of int64 elements with lazily computed,
// memoized statistics.
//
// Elements never change after construction. Transforms return new vectors
// and leave their receivers untouched. Statistics move from unset to known
// and stay there, with one exception: Mode clears min, max, median and mode
// when they contradict the order flags, then recomputes them.
//
// Arithmetic wraps on int64 overflow. A Vector is not safe for concurrent use.
type Vector struct {
	e        *Engine
	elements []int64

	sum     cached
	median  cached
	minimum cached
	maximum cached
	mode    cached
	// modeNone is meaningful when mode.ok: no unique most frequent value.
	modeNone bool

	flags Flags
}

func (e *Engine) newVector(elements []int64) *Vector {
	return &Vector{e: e, elements: elements}
}

// FromElements creates a vector holding a copy of elements.
// Nothing is known about its shape until it is queried.
func (e *Engine) FromElements(elements []int64) (*Vector, error) {
	if len(elements) < 1 {
		return nil, &ErrInvalidLength{Length: len(elements)}
	}
	return e.newVector(slices.Clone(elements)), nil
}

// Len returns the number of elements.
func (v *Vector) Len() int { return len(v.elements) }

// At returns the element at index i.
func (v *Vector) At(i int) (int64, error) {
	if i < 0 || i >= len(v.elements) {
		return 0, &ErrIndexOutOfRange{Index: i, Length: len(v.elements)}
	}
	return v.elements[i], nil
}

// Elements returns a copy of the elements.
func (v *Vector) Elements() []int64 { return slices.Clone(v.elements) }

// Flags returns the shape flags currently known for the vector.
func (v *Vector) Flags() Flags { return v.flags }

// String returns the elements separated by single spaces.
func (v *Vector) String() string {
	var sb strings.Builder
	buf := make([]byte, 0, 20)
	for i, x := range v.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		buf = strconv.AppendInt(buf[:0], x, 10)
		sb.Write(buf)
	}
	return sb.String()
}

// Known reports whether stat is cached.
func (v *Vector) Known(stat Stat) bool {
	switch stat {
	case StatSum:
		return v.sum.ok
	case StatMode:
		return v.mode.ok
	case StatMedian:
		return v.median.ok
	case StatMinimum:
		return v.minimum.ok
	case StatMaximum:
		return v.maximum.ok
	default:
		return false
	}
}

// Stat returns the statistic named by stat.
func (v *Vector) Stat(stat Stat) (int64, error) {
	switch stat {
	case StatSum:
		return v.Sum(), nil
	case StatMode:
		return v.Mode(), nil
	case StatMedian:
		return v.Median(), nil
	case StatMinimum:
		return v.Minimum(), nil
	case StatMaximum:
		return v.Maximum(), nil
	default:
		return 0, ErrUnknownStat
	}
}

func (v *Vector) setMode(value int64, unique bool) {
	v.mode = some(value)
	v.modeNone = !unique
}

func (v *Vector) modeValue() int64 {
	if v.modeNone {
		return NoMode
	}
	return v.mode.value
}

// copyStats copies every order-independent statistic from src.
func (v *Vector) copyStats(src *Vector) {
	v.sum = src.sum
	v.median = src.median
	v.minimum = src.minimum
	v.maximum = src.maximum
	v.mode = src.mode
	v.modeNone = src.modeNone
}

// clone copies elements, cache and flags into a fresh vector.
func (v *Vector) clone() *Vector {
	out := *v
	out.elements = slices.Clone(v.elements)
	return &out
}

// fillUniform sets every statistic of a vector whose elements all equal x.
func (v *Vector) fillUniform(x int64) {
	n := int64(len(v.elements))
	v.sum = some(n * x)
	v.median = some(x)
	v.minimum = some(x)
	v.maximum = some(x)
	v.setMode(x, true)
	v.flags |= FlagUniform | FlagStable
	v.flags &^= FlagReversed
}

// knownBounds returns the minimum and maximum if they are cached or can be
// read off the shape in O(1).
func (v *Vector) knownBounds() (lo, hi int64, ok bool) {
	if v.minimum.ok && v.maximum.ok {
		return v.minimum.value, v.maximum.value, true
	}
	n := len(v.elements)
	first, last := v.elements[0], v.elements[n-1]
	switch {
	case v.flags.Has(FlagUniform):
		return first, first, true
	case v.flags.Has(FlagStable):
		return first, last, true
	case v.flags.Has(FlagReversed):
		return last, first, true
	}
	return 0, 0, false
}

// deriveOrderStats reads min, max and median off the positions implied by
// the order flags, then drops them again if they contradict each other.
func (v *Vector) deriveOrderStats() {
	n := len(v.elements)
	first, last := v.elements[0], v.elements[n-1]
	switch {
	case v.flags.Has(FlagUniform):
		v.fillUniform(first)
		return
	case v.flags.Has(FlagStable):
		v.minimum, v.maximum = some(first), some(last)
		v.median = some(v.elements[n/2])
	case v.flags.Has(FlagReversed):
		v.minimum, v.maximum = some(last), some(first)
		v.median = some(v.elements[n-1-n/2])
	default:
		return
	}

	if v.minimum.value > v.maximum.value {
		v.minimum, v.maximum, v.median = cached{}, cached{}, cached{}
		v.flags &^= FlagStable | FlagReversed
	}
}
