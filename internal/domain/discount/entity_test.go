//go:build unit

package discount_test

import (
	"testing"
	"time"

	"amaluz-seeder/internal/domain/discount"
	"amaluz-seeder/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscount(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewDiscountBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "AMALUZ-XMAS24", actual.Code())
		assert.True(t, actual.RegisteredAt().Before(actual.StartsAt()))
	})

	t.Run("validation", func(t *testing.T) {
		starts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		ends := starts.Add(7 * 24 * time.Hour)

		_, err := builder.NewDiscountBuilder().WithCode("  ").BuildDomain()
		require.ErrorIs(t, err, discount.ErrEmptyCode)

		_, err = builder.NewDiscountBuilder().WithPercent(decimal.Zero).BuildDomain()
		require.ErrorIs(t, err, discount.ErrInvalidPercent)

		_, err = builder.NewDiscountBuilder().WithPercent(decimal.NewFromInt(101)).BuildDomain()
		require.ErrorIs(t, err, discount.ErrInvalidPercent)

		_, err = builder.NewDiscountBuilder().
			WithValidity(ends, starts).
			WithRegisteredAt(starts.Add(-time.Hour)).
			BuildDomain()
		require.ErrorIs(t, err, discount.ErrInvalidValidity)

		_, err = builder.NewDiscountBuilder().
			WithValidity(starts, ends).
			WithRegisteredAt(starts.Add(time.Second)).
			BuildDomain()
		require.ErrorIs(t, err, discount.ErrRegisteredAfterStart)

		// 100% off is a legal clearance code
		_, err = builder.NewDiscountBuilder().WithPercent(decimal.NewFromInt(100)).BuildDomain()
		require.NoError(t, err)
	})

	t.Run("active at is inclusive on both ends", func(t *testing.T) {
		starts := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		ends := starts.Add(7 * 24 * time.Hour)
		d, err := builder.NewDiscountBuilder().
			WithValidity(starts, ends).
			WithRegisteredAt(starts.Add(-24 * time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, d.ActiveAt(starts))
		assert.True(t, d.ActiveAt(ends))
		assert.True(t, d.ActiveAt(starts.Add(time.Hour)))
		assert.False(t, d.ActiveAt(starts.Add(-time.Second)))
		assert.False(t, d.ActiveAt(ends.Add(time.Second)))
	})

	t.Run("apply rounds the cut to cents", func(t *testing.T) {
		d, err := builder.NewDiscountBuilder().WithPercent(decimal.NewFromInt(25)).BuildDomain()
		require.NoError(t, err)

		got := d.Apply(decimal.NewFromInt(10000))
		assert.True(t, got.Equal(decimal.NewFromInt(7500)))

		got = d.Apply(decimal.NewFromFloat(99.99))
		assert.True(t, got.Equal(decimal.NewFromFloat(74.99)), "got %s", got)
	})
}
