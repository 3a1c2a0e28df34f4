package vectorengine

import (
	"errors"
	"math"
	"testing"

	"github.com/mzammit001/VectorEngine/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorAdd(t *testing.T) {
	e := newTestEngine(t)

	t.Run("StablePlusStable", func(t *testing.T) {
		a, err := e.Sequence(5, 1, 1)
		require.NoError(t, err)
		b, err := e.Prime(5, 2)
		require.NoError(t, err)

		s, err := a.VectorAdd(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 5, 8, 11, 16}, s.Elements())
		assert.Equal(t, FlagStable, s.Flags())
		for _, stat := range []Stat{StatSum, StatMinimum, StatMaximum, StatMedian} {
			assert.True(t, s.Known(stat), stat)
		}
		assert.Equal(t, int64(43), s.Sum())
		assert.Equal(t, int64(8), s.Median())
		assert.False(t, s.Known(StatMode))
		assert.Equal(t, NoMode, s.Mode())
	})

	t.Run("ReversedPlusReversed", func(t *testing.T) {
		a, err := e.Sequence(4, 10, -1)
		require.NoError(t, err)
		b, err := e.Sequence(4, 0, -5)
		require.NoError(t, err)

		s, err := a.VectorAdd(b)
		require.NoError(t, err)
		assert.Equal(t, FlagReversed, s.Flags())
		assert.Equal(t, int64(-8), s.Minimum())
		assert.Equal(t, testutil.Median(s.Elements()), s.Median())
	})

	t.Run("MixedOrder", func(t *testing.T) {
		a, err := e.Sequence(4, 1, 1)
		require.NoError(t, err)
		b, err := e.Sequence(4, 8, -2)
		require.NoError(t, err)

		s, err := a.VectorAdd(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{9, 8, 7, 6}, s.Elements())
		assert.Zero(t, s.Flags())
		assert.Equal(t, int64(6), s.Minimum())
		assert.Equal(t, int64(8), s.Median())
	})

	t.Run("UniformIsScalar", func(t *testing.T) {
		a := mustFrom(t, e, 4, -2, 7)
		u, err := e.Uniform(3, 10)
		require.NoError(t, err)

		s, err := u.VectorAdd(a)
		require.NoError(t, err)
		assert.Equal(t, []int64{14, 8, 17}, s.Elements())
	})

	t.Run("RandomBelowDeriveThreshold", func(t *testing.T) {
		a, err := e.Random(100, 1)
		require.NoError(t, err)
		b, err := e.Sequence(100, 0, 1)
		require.NoError(t, err)

		s, err := a.VectorAdd(b)
		require.NoError(t, err)
		assert.True(t, s.Known(StatSum))
		assert.False(t, s.Known(StatMinimum))
		assert.False(t, s.Known(StatMedian))
		assert.Equal(t, testutil.Minimum(s.Elements()), s.Minimum())
		assert.Equal(t, testutil.Sum(s.Elements()), s.Sum())
	})

	t.Run("Wraparound", func(t *testing.T) {
		a, err := e.Sequence(3, math.MaxInt64-2, 1)
		require.NoError(t, err)
		b, err := e.Sequence(3, 0, 1)
		require.NoError(t, err)

		s, err := a.VectorAdd(b)
		require.NoError(t, err)
		assert.Zero(t, s.Flags())
		assert.Equal(t, testutil.Sum(s.Elements()), s.Sum())
		assert.Equal(t, testutil.Maximum(s.Elements()), s.Maximum())
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		a, err := e.Uniform(3, 1)
		require.NoError(t, err)
		b, err := e.Uniform(4, 1)
		require.NoError(t, err)

		s, err := a.VectorAdd(b)
		assert.Nil(t, s)
		require.ErrorIs(t, err, ErrInvalidArgument)

		var mismatch *ErrLengthMismatch
		require.True(t, errors.As(err, &mismatch))
		assert.Equal(t, 3, mismatch.Expected)
		assert.Equal(t, 4, mismatch.Actual)
	})
}

func TestVectorMultiply(t *testing.T) {
	e := newTestEngine(t)

	t.Run("Identity", func(t *testing.T) {
		a := mustFrom(t, e, 1, 2, 3, 4)
		ones, err := e.Uniform(4, 1)
		require.NoError(t, err)

		p, err := a.VectorMultiply(ones)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4}, p.Elements())

		p, err = ones.VectorMultiply(a)
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3, 4}, p.Elements())
	})

	t.Run("Zero", func(t *testing.T) {
		a := mustFrom(t, e, 1, 2, 3, 4)
		zeros, err := e.Uniform(4, 0)
		require.NoError(t, err)

		p, err := a.VectorMultiply(zeros)
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 0, 0, 0}, p.Elements())
		assert.Equal(t, int64(0), p.Mode())
	})

	t.Run("NonNegativeStable", func(t *testing.T) {
		a, err := e.Sequence(4, 1, 1)
		require.NoError(t, err)
		b, err := e.Prime(4, 2)
		require.NoError(t, err)

		p, err := a.VectorMultiply(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 6, 15, 28}, p.Elements())
		assert.Equal(t, FlagStable, p.Flags())
		assert.False(t, p.Known(StatMode))
		assert.False(t, p.Known(StatSum))
		assert.Equal(t, int64(15), p.Median())
		assert.Equal(t, int64(51), p.Sum())
	})

	t.Run("SignFlip", func(t *testing.T) {
		a, err := e.Sequence(4, -4, 1)
		require.NoError(t, err)
		b, err := e.Sequence(4, 4, -1)
		require.NoError(t, err)

		p, err := a.VectorMultiply(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{-16, -9, -4, -1}, p.Elements())
		assert.Equal(t, FlagStable, p.Flags())
		assert.Equal(t, int64(-16), p.Minimum())
	})

	t.Run("MixedSignsHaveNoOrder", func(t *testing.T) {
		a, err := e.Sequence(4, -4, 1)
		require.NoError(t, err)
		b, err := e.Sequence(4, 1, 1)
		require.NoError(t, err)

		p, err := a.VectorMultiply(b)
		require.NoError(t, err)
		assert.Equal(t, []int64{-4, -6, -6, -4}, p.Elements())
		assert.Zero(t, p.Flags())
		assert.Equal(t, NoMode, p.Mode())
	})

	t.Run("Wraparound", func(t *testing.T) {
		a, err := e.Sequence(3, 1<<31, 1<<31)
		require.NoError(t, err)

		p, err := a.VectorMultiply(a.Cloned())
		require.NoError(t, err)
		assert.Zero(t, p.Flags())
		assert.Equal(t, testutil.Maximum(p.Elements()), p.Maximum())
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		a := mustFrom(t, e, 1)
		b := mustFrom(t, e, 1, 2)

		_, err := a.VectorMultiply(b)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}
