//go:build unit

package timerange_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"amaluz-seeder/internal/pkg/timerange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

func TestWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)

	t.Run("rejects inverted bounds", func(t *testing.T) {
		_, err := timerange.NewWindow(end, start)
		require.ErrorIs(t, err, timerange.ErrInvalidRange)
	})

	t.Run("contains is inclusive on both ends", func(t *testing.T) {
		w, err := timerange.NewWindow(start, end)
		require.NoError(t, err)

		assert.True(t, w.Contains(start))
		assert.True(t, w.Contains(end))
		assert.True(t, w.Contains(start.Add(time.Hour)))
		assert.False(t, w.Contains(start.Add(-time.Second)))
		assert.False(t, w.Contains(end.Add(time.Second)))
	})

	t.Run("clamp saturates out-of-window instants", func(t *testing.T) {
		w, err := timerange.NewWindow(start, end)
		require.NoError(t, err)

		assert.Equal(t, start, w.Clamp(start.Add(-time.Hour)))
		assert.Equal(t, end, w.Clamp(end.Add(time.Hour)))
		inside := start.Add(48 * time.Hour)
		assert.Equal(t, inside, w.Clamp(inside))
	})
}

func TestRandomInstant(t *testing.T) {
	lower := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	upper := lower.Add(72 * time.Hour)

	t.Run("stays inside the bounds", func(t *testing.T) {
		rng := newRng()
		for range 500 {
			got, err := timerange.RandomInstant(rng, lower, upper)
			require.NoError(t, err)
			assert.False(t, got.Before(lower))
			assert.False(t, got.After(upper))
		}
	})

	t.Run("degenerate range returns the bound", func(t *testing.T) {
		got, err := timerange.RandomInstant(newRng(), lower, lower)
		require.NoError(t, err)
		assert.Equal(t, lower, got)
	})

	t.Run("inverted range errors", func(t *testing.T) {
		_, err := timerange.RandomInstant(newRng(), upper, lower)
		require.ErrorIs(t, err, timerange.ErrInvalidRange)
	})

	t.Run("same seed gives the same draw", func(t *testing.T) {
		a, err := timerange.RandomInstant(newRng(), lower, upper)
		require.NoError(t, err)
		b, err := timerange.RandomInstant(newRng(), lower, upper)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestNextAfter(t *testing.T) {
	prev := time.Date(2024, 6, 10, 9, 30, 0, 0, time.UTC)
	ceiling := prev.Add(30 * 24 * time.Hour)

	t.Run("always strictly later", func(t *testing.T) {
		rng := newRng()
		for range 500 {
			got, err := timerange.NextAfter(rng, prev, time.Minute, 2*time.Hour, ceiling)
			require.NoError(t, err)
			assert.True(t, got.After(prev))
			assert.False(t, got.After(ceiling))
		}
	})

	t.Run("clamped to ceiling still advances", func(t *testing.T) {
		got, err := timerange.NextAfter(newRng(), ceiling, time.Hour, 2*time.Hour, ceiling)
		require.NoError(t, err)
		assert.True(t, got.After(ceiling))
		assert.Equal(t, ceiling.Add(time.Second), got)
	})

	t.Run("rejects bad deltas", func(t *testing.T) {
		_, err := timerange.NextAfter(newRng(), prev, 0, time.Hour, ceiling)
		require.ErrorIs(t, err, timerange.ErrInvalidRange)

		_, err = timerange.NextAfter(newRng(), prev, 2*time.Hour, time.Hour, ceiling)
		require.ErrorIs(t, err, timerange.ErrInvalidRange)
	})
}

func TestSequentialInstant(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(100 * time.Hour)

	t.Run("evenly spaced and monotonic", func(t *testing.T) {
		var prev time.Time
		for i := range 11 {
			got, err := timerange.SequentialInstant(start, end, 11, i)
			require.NoError(t, err)
			if i > 0 {
				assert.True(t, got.After(prev))
				assert.Equal(t, 10*time.Hour, got.Sub(prev))
			}
			prev = got
		}
	})

	t.Run("endpoints land on bounds", func(t *testing.T) {
		first, err := timerange.SequentialInstant(start, end, 5, 0)
		require.NoError(t, err)
		assert.Equal(t, start, first)

		last, err := timerange.SequentialInstant(start, end, 5, 4)
		require.NoError(t, err)
		assert.Equal(t, end, last)
	})

	t.Run("single instant collapses to start", func(t *testing.T) {
		got, err := timerange.SequentialInstant(start, end, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, start, got)
	})

	t.Run("index out of range errors", func(t *testing.T) {
		_, err := timerange.SequentialInstant(start, end, 3, 3)
		require.ErrorIs(t, err, timerange.ErrInvalidRange)
		_, err = timerange.SequentialInstant(start, end, 0, 0)
		require.ErrorIs(t, err, timerange.ErrInvalidRange)
	})
}
