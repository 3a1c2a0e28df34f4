package vectorengine

import (
	"math"
	"slices"
	"testing"

	"github.com/mzammit001/VectorEngine/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloned(t *testing.T) {
	e := newTestEngine(t)
	v, err := e.Sequence(4, 1, 2)
	require.NoError(t, err)

	c := v.Cloned()
	assert.Equal(t, v.Elements(), c.Elements())
	assert.Equal(t, v.Flags(), c.Flags())
	assert.True(t, c.Known(StatMedian))
	assert.Equal(t, v.Median(), c.Median())
}

func TestSorted(t *testing.T) {
	t.Run("Stable", func(t *testing.T) {
		e := newTestEngine(t)
		v, err := e.Prime(5, 10)
		require.NoError(t, err)

		assert.Equal(t, v.Elements(), v.Sorted().Elements())
	})

	t.Run("Reversed", func(t *testing.T) {
		e := newTestEngine(t)
		v, err := e.Sequence(4, 10, -3)
		require.NoError(t, err)

		s := v.Sorted()
		assert.Equal(t, []int64{1, 4, 7, 10}, s.Elements())
		assert.Equal(t, FlagStable, s.Flags())
		assert.Equal(t, int64(7), s.Median())
	})

	t.Run("RandomCounting", func(t *testing.T) {
		e := newTestEngine(t)
		v, err := e.Random(1000, 7)
		require.NoError(t, err)
		want := slices.Sorted(slices.Values(v.Elements()))

		s := v.Sorted()
		assert.Equal(t, want, s.Elements())
		assert.Equal(t, FlagStable|FlagRandom, s.Flags())
		assert.True(t, s.Known(StatMode))
		assert.True(t, v.Known(StatMode))
		assert.Equal(t, testutil.Mode(want), s.Mode())
		assert.Equal(t, testutil.Sum(want), s.Sum())
		assert.Equal(t, testutil.Median(want), v.Median())
	})

	t.Run("Comparison", func(t *testing.T) {
		e := newTestEngine(t)
		data := testutil.NewRNG(3).Elements(2000, -1_000_000, 1_000_000)
		v := mustFrom(t, e, data...)

		s := v.Sorted()
		assert.IsNonDecreasing(t, s.Elements())
		assert.Equal(t, testutil.Median(data), s.Median())
		assert.Equal(t, testutil.Minimum(data), v.Minimum())
		assert.Equal(t, data, v.Elements())
	})

	t.Run("Parallel", func(t *testing.T) {
		e := newTestEngine(t, WithWorkers(4), WithThresholds(smallThresholds()))
		data := testutil.NewRNG(5).Elements(5001, math.MinInt64/4, math.MaxInt64/4)
		v := mustFrom(t, e, data...)

		want := slices.Clone(data)
		slices.Sort(want)
		assert.Equal(t, want, v.Sorted().Elements())
	})

	t.Run("Idempotent", func(t *testing.T) {
		e := newTestEngine(t)
		v := mustFrom(t, e, 3, -1, 4, 1, -5, 9, 2, 6)

		once := v.Sorted()
		assert.Equal(t, once.Elements(), once.Sorted().Elements())
	})
}

func TestReversed(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Involution", func(t *testing.T) {
		v := mustFrom(t, e, 3, -1, 4, 1, -5)
		r := v.Reversed()

		assert.Equal(t, []int64{-5, 1, 4, -1, 3}, r.Elements())
		assert.Equal(t, v.Elements(), r.Reversed().Elements())
	})

	t.Run("SwapsOrderKeepsStats", func(t *testing.T) {
		v, err := e.Sequence(5, 1, 1)
		require.NoError(t, err)

		r := v.Reversed()
		assert.Equal(t, FlagReversed, r.Flags())
		assert.True(t, r.Known(StatMedian))
		assert.Equal(t, int64(3), r.Median())
		assert.Equal(t, v.Sum(), r.Sum())
		assert.Equal(t, FlagStable, r.Reversed().Flags())
	})

	t.Run("Uniform", func(t *testing.T) {
		v, err := e.Uniform(3, 2)
		require.NoError(t, err)

		assert.Equal(t, FlagUniform|FlagStable, v.Reversed().Flags())
	})
}

func TestShifted(t *testing.T) {
	e := newTestEngine(t)
	v := mustFrom(t, e, 1, 2, 3, 4)

	tests := []struct {
		amount int
		want   []int64
	}{
		{0, []int64{1, 2, 3, 4}},
		{1, []int64{4, 1, 2, 3}},
		{4, []int64{1, 2, 3, 4}},
		{5, []int64{4, 1, 2, 3}},
		{-1, []int64{2, 3, 4, 1}},
		{-6, []int64{3, 4, 1, 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, v.Shifted(tt.amount).Elements(), "amount %d", tt.amount)
	}

	t.Run("Composition", func(t *testing.T) {
		w := mustFrom(t, e, 5, 8, 1, 0, 3, 3, 7)
		for a := -9; a <= 9; a++ {
			for b := -9; b <= 9; b++ {
				assert.Equal(t, w.Shifted(a+b).Elements(), w.Shifted(a).Shifted(b).Elements())
			}
		}
	})

	t.Run("Flags", func(t *testing.T) {
		s, err := e.Sequence(4, 1, 1)
		require.NoError(t, err)

		assert.Equal(t, FlagStable, s.Shifted(8).Flags())
		shifted := s.Shifted(1)
		assert.Zero(t, shifted.Flags())
		assert.Equal(t, int64(3), shifted.Median())
		assert.Equal(t, int64(10), shifted.Sum())

		u, err := e.Uniform(4, 9)
		require.NoError(t, err)
		assert.Equal(t, FlagUniform|FlagStable, u.Shifted(3).Flags())
	})
}

func TestScalarAdd(t *testing.T) {
	e := newTestEngine(t)

	t.Run("ShiftsStats", func(t *testing.T) {
		v, err := e.Sequence(5, 10, -2)
		require.NoError(t, err)

		w := v.ScalarAdd(3)
		assert.Equal(t, []int64{13, 11, 9, 7, 5}, w.Elements())
		assert.Equal(t, FlagReversed, w.Flags())
		assert.True(t, w.Known(StatMedian))
		assert.Equal(t, v.Sum()+15, w.Sum())
		assert.Equal(t, int64(9), w.Median())
		assert.Equal(t, int64(5), w.Minimum())
		assert.Equal(t, NoMode, w.Mode())
	})

	t.Run("ModeSentinelIsNotAValue", func(t *testing.T) {
		v := mustFrom(t, e, -1, -1, 5)
		assert.Equal(t, int64(-1), v.Mode())
		assert.Equal(t, int64(0), v.ScalarAdd(1).Mode())

		none := mustFrom(t, e, 1, 2, 3)
		assert.Equal(t, NoMode, none.Mode())
		assert.Equal(t, NoMode, none.ScalarAdd(1).Mode())
	})

	t.Run("RandomNeedsNonNegative", func(t *testing.T) {
		v, err := e.Random(50, 9)
		require.NoError(t, err)

		assert.True(t, v.ScalarAdd(5).Flags().Has(FlagRandom))
		assert.False(t, v.ScalarAdd(-1000).Flags().Has(FlagRandom))
	})

	t.Run("Wraparound", func(t *testing.T) {
		v, err := e.Sequence(3, 0, 1)
		require.NoError(t, err)

		w := v.ScalarAdd(math.MaxInt64)
		assert.Equal(t, []int64{math.MaxInt64, math.MinInt64, math.MinInt64 + 1}, w.Elements())
		assert.Zero(t, w.Flags()&orderFlags)
		assert.False(t, w.Known(StatMinimum))
		assert.False(t, w.Known(StatMedian))
		assert.Equal(t, testutil.Sum(w.Elements()), w.Sum())
		c := int64(math.MaxInt64)
		assert.Equal(t, v.Sum()+3*c, w.Sum())
		assert.Equal(t, int64(math.MinInt64), w.Minimum())
		assert.Equal(t, int64(math.MinInt64+1), w.Median())
	})
}

func TestScalarMultiply(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Zero", func(t *testing.T) {
		v := mustFrom(t, e, 3, 1, 2)
		z := v.ScalarMultiply(0)

		assert.Equal(t, []int64{0, 0, 0}, z.Elements())
		assert.Equal(t, FlagUniform|FlagStable, z.Flags())
		assert.Equal(t, int64(0), z.Mode())
	})

	t.Run("One", func(t *testing.T) {
		v, err := e.Sequence(3, 1, 1)
		require.NoError(t, err)

		assert.Equal(t, v.Elements(), v.ScalarMultiply(1).Elements())
		assert.Equal(t, v.Flags(), v.ScalarMultiply(1).Flags())
	})

	t.Run("Positive", func(t *testing.T) {
		v, err := e.Sequence(4, 1, 1)
		require.NoError(t, err)

		w := v.ScalarMultiply(3)
		assert.Equal(t, []int64{3, 6, 9, 12}, w.Elements())
		assert.Equal(t, FlagStable, w.Flags())
		assert.Equal(t, int64(30), w.Sum())
		assert.Equal(t, int64(9), w.Median())
	})

	t.Run("NegativeEvenLength", func(t *testing.T) {
		v, err := e.Sequence(4, 1, 1)
		require.NoError(t, err)

		w := v.ScalarMultiply(-1)
		assert.Equal(t, []int64{-1, -2, -3, -4}, w.Elements())
		assert.Equal(t, FlagReversed, w.Flags())
		assert.False(t, w.Known(StatMedian))
		assert.Equal(t, int64(-4), w.Minimum())
		assert.Equal(t, int64(-1), w.Maximum())
		assert.Equal(t, int64(-2), w.Median())
	})

	t.Run("NegativeOddLength", func(t *testing.T) {
		v, err := e.Sequence(5, 1, 1)
		require.NoError(t, err)

		w := v.ScalarMultiply(-2)
		assert.True(t, w.Known(StatMedian))
		assert.Equal(t, int64(-6), w.Median())
		assert.Equal(t, int64(-30), w.Sum())
	})

	t.Run("NegativeDropsRandom", func(t *testing.T) {
		v, err := e.Random(20, 1)
		require.NoError(t, err)

		assert.False(t, v.ScalarMultiply(-1).Flags().Has(FlagRandom))
	})

	t.Run("Wraparound", func(t *testing.T) {
		v, err := e.Sequence(3, 1, math.MaxInt64/2)
		require.NoError(t, err)

		w := v.ScalarMultiply(2)
		assert.Zero(t, w.Flags())
		assert.False(t, w.Known(StatMaximum))
		assert.False(t, w.Known(StatMode))
		assert.True(t, w.Known(StatSum))
		assert.Equal(t, testutil.Sum(w.Elements()), w.Sum())
		assert.Equal(t, testutil.Maximum(w.Elements()), w.Maximum())
	})

	t.Run("MinInt64TimesMinusOne", func(t *testing.T) {
		v, err := e.Sequence(2, math.MinInt64, 1)
		require.NoError(t, err)

		w := v.ScalarMultiply(-1)
		assert.Equal(t, []int64{math.MinInt64, math.MaxInt64}, w.Elements())
		assert.Zero(t, w.Flags())
		assert.Equal(t, testutil.Minimum(w.Elements()), w.Minimum())
	})
}
