package tally

import "errors"

// ErrRangeTooLarge is returned when a Histogram range exceeds the allowed span.
var ErrRangeTooLarge = errors.New("histogram range too large")

// ModeTracker resolves the most frequent value as frequencies are observed.
//
// A strictly higher frequency claims the mode. A frequency equal to the
// current best leaves no unique mode until some later value beats it.
// The outcome does not depend on observation order.
type ModeTracker struct {
	best   int64
	value  int64
	unique bool
}

// Observe records that value occurs freq times.
func (m *ModeTracker) Observe(value, freq int64) {
	switch {
	case freq > m.best:
		m.best, m.value, m.unique = freq, value, true
	case freq == m.best:
		m.unique = false
	}
}

// Mode returns the unique most frequent value. ok is false on a tie or when
// nothing was observed.
func (m *ModeTracker) Mode() (value int64, ok bool) {
	return m.value, m.unique
}

// Frequency returns the best frequency observed.
func (m *ModeTracker) Frequency() int64 { return m.best }

// Histogram is a counting array over the closed range [Lo, Hi].
type Histogram struct {
	Lo     int64
	Counts []int64
}

// Eligible reports whether a Histogram over [lo, hi] is allowed: the range
// must be non-negative and hi must not exceed limit.
func Eligible(lo, hi, limit int64) bool {
	return lo >= 0 && hi >= lo && hi <= limit
}

// NewHistogram counts data, all of which must lie in [lo, hi].
func NewHistogram(data []int64, lo, hi int64, limit int64) (*Histogram, error) {
	if !Eligible(lo, hi, limit) {
		return nil, ErrRangeTooLarge
	}
	h := &Histogram{Lo: lo, Counts: make([]int64, hi-lo+1)}
	for _, v := range data {
		h.Counts[v-lo]++
	}
	return h, nil
}

// Mode returns the unique most frequent value in the histogram.
func (h *Histogram) Mode() (int64, bool) {
	var m ModeTracker
	for i, c := range h.Counts {
		if c > 0 {
			m.Observe(h.Lo+int64(i), c)
		}
	}
	return m.Mode()
}

// Expand writes the counted values into dst in ascending order and returns
// their sum. dst must have room for every counted value.
func (h *Histogram) Expand(dst []int64) int64 {
	var sum int64
	k := 0
	for i, c := range h.Counts {
		v := h.Lo + int64(i)
		for range c {
			dst[k] = v
			k++
		}
		sum += v * c
	}
	return sum
}

// MapCounts counts data with a hash map.
func MapCounts(data []int64) map[int64]int64 {
	counts := make(map[int64]int64)
	for _, v := range data {
		counts[v]++
	}
	return counts
}

// MapMode returns the unique most frequent value of data using a hash map.
func MapMode(data []int64) (int64, bool) {
	var m ModeTracker
	for v, c := range MapCounts(data) {
		m.Observe(v, c)
	}
	return m.Mode()
}

// CountingSort sorts data, all of which lies in [lo, hi], into dst and
// returns the sum and mode recovered along the way.
func CountingSort(dst, data []int64, lo, hi, limit int64) (sum, mode int64, unique bool, err error) {
	h, err := NewHistogram(data, lo, hi, limit)
	if err != nil {
		return 0, 0, false, err
	}
	sum = h.Expand(dst)
	mode, unique = h.Mode()
	return sum, mode, unique, nil
}
