//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"amaluz-seeder/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory(t *testing.T) {
	registered := time.Date(2024, 2, 15, 9, 5, 0, 0, time.UTC)

	newInv := func(t *testing.T, stock int) *inventory.Inventory {
		t.Helper()
		inv, err := inventory.NewInventory(uuid.New(), stock, registered)
		require.NoError(t, err)
		return inv
	}

	t.Run("starts with available equal to on hand", func(t *testing.T) {
		inv := newInv(t, 24)
		assert.Equal(t, 24, inv.OnHand())
		assert.Equal(t, 24, inv.Available())
		assert.Equal(t, inventory.LevelInStock, inv.Level())
	})

	t.Run("rejects negative initial stock", func(t *testing.T) {
		_, err := inventory.NewInventory(uuid.New(), -1, registered)
		require.ErrorIs(t, err, inventory.ErrNegativeStock)
	})

	t.Run("decrement", func(t *testing.T) {
		t.Run("consumes stock and stamps the instant", func(t *testing.T) {
			inv := newInv(t, 10)
			at := registered.Add(time.Hour)

			ok, err := inv.Decrement(4, at)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, 6, inv.Available())
			assert.Equal(t, 6, inv.OnHand())
			assert.Equal(t, at, inv.UpdatedAt())
		})

		t.Run("insufficient stock reports false without mutation", func(t *testing.T) {
			inv := newInv(t, 3)
			at := registered.Add(time.Hour)

			ok, err := inv.Decrement(4, at)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Equal(t, 3, inv.Available())
			assert.Equal(t, registered, inv.UpdatedAt())
		})

		t.Run("zero or negative quantity is an error", func(t *testing.T) {
			inv := newInv(t, 3)
			_, err := inv.Decrement(0, registered.Add(time.Hour))
			require.ErrorIs(t, err, inventory.ErrNonPositiveQuantity)
			_, err = inv.Decrement(-2, registered.Add(time.Hour))
			require.ErrorIs(t, err, inventory.ErrNonPositiveQuantity)
		})

		t.Run("can drain to exactly zero", func(t *testing.T) {
			inv := newInv(t, 5)
			ok, err := inv.Decrement(5, registered.Add(time.Hour))
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, 0, inv.Available())
			assert.Equal(t, inventory.LevelDepleted, inv.Level())
		})

		t.Run("rejects time going backwards", func(t *testing.T) {
			inv := newInv(t, 5)
			_, err := inv.Decrement(1, registered.Add(-time.Second))
			require.ErrorIs(t, err, inventory.ErrNonMonotonicUpdate)
		})
	})

	t.Run("increment restores both levels", func(t *testing.T) {
		inv := newInv(t, 2)
		at := registered.Add(time.Hour)

		require.NoError(t, inv.Increment(10, at))
		assert.Equal(t, 12, inv.Available())
		assert.Equal(t, 12, inv.OnHand())
		assert.Equal(t, at, inv.UpdatedAt())

		err := inv.Increment(0, at.Add(time.Hour))
		require.ErrorIs(t, err, inventory.ErrNonPositiveQuantity)
	})

	t.Run("level thresholds", func(t *testing.T) {
		cases := []struct {
			stock int
			want  inventory.Level
		}{
			{stock: 0, want: inventory.LevelDepleted},
			{stock: 1, want: inventory.LevelLowStock},
			{stock: 11, want: inventory.LevelLowStock},
			{stock: 12, want: inventory.LevelInStock},
			{stock: 24, want: inventory.LevelInStock},
		}
		for _, c := range cases {
			inv := newInv(t, c.stock)
			assert.Equal(t, c.want, inv.Level(), "stock %d", c.stock)
		}
	})

	t.Run("reconstruct validates the stock invariant", func(t *testing.T) {
		_, err := inventory.ReconstructInventory(uuid.New(), uuid.New(), 5, 8, registered, registered)
		require.ErrorIs(t, err, inventory.ErrAvailableExceedsOnHand)
	})
}
