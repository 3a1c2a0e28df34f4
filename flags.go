package vectorengine

import "strings"

// Flags describe the shape of a vector's elements. They are hints that let
// operations skip scans; every result they enable equals the result of the
// full computation.
type Flags uint8

const (
	// FlagStable marks elements in non-decreasing order.
	FlagStable Flags = 1 << iota
	// FlagReversed marks elements in non-increasing order.
	FlagReversed
	// FlagUniform marks all elements equal. A uniform vector is also Stable.
	FlagUniform
	// FlagRandom marks elements sampled from a small non-negative range,
	// which makes counting algorithms worth trying.
	FlagRandom

	orderFlags = FlagStable | FlagReversed
)

// Has reports whether every flag in g is set.
func (f Flags) Has(g Flags) bool { return f&g == g }

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, p := range []struct {
		flag Flags
		name string
	}{
		{FlagStable, "stable"},
		{FlagReversed, "reversed"},
		{FlagUniform, "uniform"},
		{FlagRandom, "random"},
	} {
		if f.Has(p.flag) {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}

// ascending reports non-decreasing order, which uniform vectors also have.
func (f Flags) ascending() bool { return f&(FlagStable|FlagUniform) != 0 }

// descending reports non-increasing order, which uniform vectors also have.
func (f Flags) descending() bool { return f&(FlagReversed|FlagUniform) != 0 }

// swapOrder exchanges Stable and Reversed, as negation or mirroring does.
// Uniform vectors keep Stable.
func (f Flags) swapOrder() Flags {
	if f.Has(FlagUniform) {
		return f
	}
	out := f &^ orderFlags
	if f.Has(FlagStable) {
		out |= FlagReversed
	}
	if f.Has(FlagReversed) {
		out |= FlagStable
	}
	return out
}

type binaryOp uint8

const (
	opAdd binaryOp = iota
	opMultiply
)

func (op binaryOp) String() string {
	if op == opMultiply {
		return "vector#mul"
	}
	return "vector#add"
}

// shape is what combineFlags may know about one operand.
type shape struct {
	flags   Flags
	lo, hi  int64
	bounded bool
}

func (v *Vector) shape() shape {
	lo, hi, ok := v.knownBounds()
	return shape{flags: v.flags, lo: lo, hi: hi, bounded: ok}
}

func (s shape) nonNegative() bool { return s.bounded && s.lo >= 0 }
func (s shape) nonPositive() bool { return s.bounded && s.hi <= 0 }

// magnitudeOrder reports whether |x| is non-decreasing (asc) or
// non-increasing (desc) across the operand. Both are false unless the
// operand has an order and a known sign.
func (s shape) magnitudeOrder() (asc, desc bool) {
	switch {
	case s.nonNegative():
		return s.flags.ascending(), s.flags.descending()
	case s.nonPositive():
		return s.flags.descending(), s.flags.ascending()
	}
	return false, false
}

// combineFlags is the decision table for the flags of an elementwise result.
// It only claims what holds for exact integer arithmetic; callers drop order
// flags when an element overflowed.
//
//	add:  uniform+uniform → uniform; ascending+ascending → stable;
//	      descending+descending → reversed
//	mul:  uniform·uniform → uniform; otherwise both operands need a known
//	      sign and an order: matching magnitude orders give the product's
//	      magnitude order, which flips when exactly one side is non-positive
//	both: random survives only when both operands are random
//
// Anything else yields no flags.
func combineFlags(op binaryOp, a, b shape) Flags {
	var out Flags
	if a.flags.Has(FlagRandom) && b.flags.Has(FlagRandom) {
		out |= FlagRandom
	}
	if a.flags.Has(FlagUniform) && b.flags.Has(FlagUniform) {
		return out | FlagUniform | FlagStable
	}

	var asc, desc bool
	switch op {
	case opAdd:
		asc = a.flags.ascending() && b.flags.ascending()
		desc = a.flags.descending() && b.flags.descending()
	case opMultiply:
		aAsc, aDesc := a.magnitudeOrder()
		bAsc, bDesc := b.magnitudeOrder()
		magAsc, magDesc := aAsc && bAsc, aDesc && bDesc
		switch {
		case a.nonNegative() && b.nonNegative(), a.nonPositive() && b.nonPositive():
			asc, desc = magAsc, magDesc
		case a.nonNegative() && b.nonPositive(), a.nonPositive() && b.nonNegative():
			asc, desc = magDesc, magAsc
		}
	}

	switch {
	case asc && desc:
		out |= FlagUniform | FlagStable
	case asc:
		out |= FlagStable
	case desc:
		out |= FlagReversed
	}
	return out
}
