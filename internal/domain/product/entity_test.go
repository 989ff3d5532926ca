//go:build unit

package product_test

import (
	"testing"
	"time"

	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ProductBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewProductBuilder()
			c.mutate(b)
			actual, err := b.BuildDomain()
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestProduct(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewProductBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, product.StatusActive, actual.Status())
		assert.True(t, actual.IsActive())
		assert.Equal(t, actual.RegisteredAt(), actual.UpdatedAt())
		assert.True(t, actual.SalePrice().GreaterThan(actual.SupplierCost()))
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.ProductBuilder) { b.WithName("  ") },
				errIs:  product.ErrEmptyName,
			},
			{
				name:   "unknown category",
				mutate: func(b *builder.ProductBuilder) { b.WithCategory("furniture") },
				errIs:  product.ErrInvalidCategory,
			},
			{
				name:   "unknown fragrance",
				mutate: func(b *builder.ProductBuilder) { b.WithFragrance("petrol") },
				errIs:  product.ErrInvalidFragrance,
			},
			{
				name:   "zero price",
				mutate: func(b *builder.ProductBuilder) { b.WithSalePrice(decimal.Zero) },
				errIs:  product.ErrNonPositivePrice,
			},
			{
				name: "price equal to cost",
				mutate: func(b *builder.ProductBuilder) {
					b.WithSalePrice(decimal.NewFromInt(100)).WithSupplierCost(decimal.NewFromInt(100))
				},
				errIs: product.ErrPriceBelowCost,
			},
			{
				name: "price below cost",
				mutate: func(b *builder.ProductBuilder) {
					b.WithSalePrice(decimal.NewFromInt(99)).WithSupplierCost(decimal.NewFromInt(100))
				},
				errIs: product.ErrPriceBelowCost,
			},
			{
				name:   "zero weight",
				mutate: func(b *builder.ProductBuilder) { b.WithWeightGrams(0) },
				errIs:  product.ErrInvalidWeight,
			},
			{
				name:   "no supplier is allowed",
				mutate: func(b *builder.ProductBuilder) { b.WithoutSupplier() },
			},
		})
	})

	t.Run("deactivate and reactivate", func(t *testing.T) {
		registered := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
		p, err := builder.NewProductBuilder().WithRegisteredAt(registered).BuildDomain()
		require.NoError(t, err)

		offAt := registered.Add(48 * time.Hour)
		require.NoError(t, p.Deactivate(offAt))
		assert.Equal(t, product.StatusInactive, p.Status())
		assert.Equal(t, offAt, p.UpdatedAt())

		err = p.Deactivate(offAt.Add(time.Hour))
		require.ErrorIs(t, err, product.ErrAlreadyInactive)

		onAt := offAt.Add(72 * time.Hour)
		require.NoError(t, p.Reactivate(onAt))
		assert.Equal(t, product.StatusActive, p.Status())
		assert.Equal(t, onAt, p.UpdatedAt())

		err = p.Reactivate(onAt.Add(time.Hour))
		require.ErrorIs(t, err, product.ErrAlreadyActive)
	})

	t.Run("status changes never move updated at backwards", func(t *testing.T) {
		registered := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
		p, err := builder.NewProductBuilder().WithRegisteredAt(registered).BuildDomain()
		require.NoError(t, err)

		err = p.Deactivate(registered.Add(-time.Minute))
		require.ErrorIs(t, err, product.ErrNonMonotonicUpdate)
		assert.Equal(t, product.StatusActive, p.Status())
		assert.Equal(t, registered, p.UpdatedAt())
	})
}
