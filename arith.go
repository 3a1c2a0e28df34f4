package vectorengine

import "math"

// addOverflows reports whether a+b wraps.
func addOverflows(a, b int64) bool {
	s := a + b
	return (s^a)&(s^b) < 0
}

// mulOverflows reports whether a*b wraps.
func mulOverflows(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return true
	}
	return (a*b)/b != a
}
