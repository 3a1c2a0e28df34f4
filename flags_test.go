package vectorengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "none", Flags(0).String())
	assert.Equal(t, "stable|uniform", (FlagUniform | FlagStable).String())
	assert.Equal(t, "reversed|random", (FlagReversed | FlagRandom).String())
}

func TestSwapOrder(t *testing.T) {
	assert.Equal(t, FlagReversed|FlagRandom, (FlagStable | FlagRandom).swapOrder())
	assert.Equal(t, FlagStable, FlagReversed.swapOrder())
	assert.Equal(t, FlagUniform|FlagStable, (FlagUniform | FlagStable).swapOrder())
	assert.Equal(t, Flags(0), Flags(0).swapOrder())
}

func TestCombineFlags(t *testing.T) {
	unbounded := func(f Flags) shape { return shape{flags: f} }
	bounded := func(f Flags, lo, hi int64) shape { return shape{flags: f, lo: lo, hi: hi, bounded: true} }

	tests := []struct {
		name string
		op   binaryOp
		a, b shape
		want Flags
	}{
		{"AddUniform", opAdd, bounded(FlagUniform|FlagStable, 1, 1), bounded(FlagUniform|FlagStable, 2, 2), FlagUniform | FlagStable},
		{"AddStable", opAdd, unbounded(FlagStable), unbounded(FlagStable), FlagStable},
		{"AddStableUniform", opAdd, unbounded(FlagStable), unbounded(FlagUniform | FlagStable), FlagStable},
		{"AddReversed", opAdd, unbounded(FlagReversed), unbounded(FlagReversed), FlagReversed},
		{"AddReversedUniform", opAdd, unbounded(FlagUniform | FlagStable), unbounded(FlagReversed), FlagReversed},
		{"AddMixed", opAdd, unbounded(FlagStable), unbounded(FlagReversed), 0},
		{"AddUnordered", opAdd, unbounded(0), unbounded(FlagStable), 0},
		{"AddRandom", opAdd, unbounded(FlagRandom), unbounded(FlagRandom), FlagRandom},
		{"AddRandomStable", opAdd, unbounded(FlagRandom | FlagStable), unbounded(FlagStable), FlagStable},

		{"MulUniform", opMultiply, bounded(FlagUniform|FlagStable, -3, -3), bounded(FlagUniform|FlagStable, 2, 2), FlagUniform | FlagStable},
		{"MulNonNegativeStable", opMultiply, bounded(FlagStable, 0, 9), bounded(FlagStable, 1, 5), FlagStable},
		{"MulNonNegativeReversed", opMultiply, bounded(FlagReversed, 0, 9), bounded(FlagReversed, 1, 5), FlagReversed},
		{"MulNonPositiveStable", opMultiply, bounded(FlagStable, -9, 0), bounded(FlagStable, -5, -1), FlagReversed},
		{"MulNonPositiveReversed", opMultiply, bounded(FlagReversed, -9, 0), bounded(FlagReversed, -5, -1), FlagStable},
		{"MulSignFlip", opMultiply, bounded(FlagStable, -9, -1), bounded(FlagReversed, 1, 5), FlagStable},
		{"MulSignFlipReversed", opMultiply, bounded(FlagStable, 1, 9), bounded(FlagReversed, -5, -1), FlagReversed},
		{"MulOppositeMagnitudes", opMultiply, bounded(FlagStable, -9, -1), bounded(FlagStable, 1, 5), 0},
		{"MulMixedSign", opMultiply, bounded(FlagStable, -9, 9), bounded(FlagStable, 1, 5), 0},
		{"MulUnknownSign", opMultiply, unbounded(FlagStable), bounded(FlagStable, 1, 5), 0},
		{"MulUnordered", opMultiply, bounded(0, 1, 9), bounded(FlagStable, 1, 5), 0},
		{"MulRandom", opMultiply, bounded(FlagRandom, 0, 100), bounded(FlagRandom, 0, 100), FlagRandom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, combineFlags(tt.op, tt.a, tt.b))
		})
	}
}

func TestBinaryOpString(t *testing.T) {
	assert.Equal(t, "vector#add", opAdd.String())
	assert.Equal(t, "vector#mul", opMultiply.String())
}
