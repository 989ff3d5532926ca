//go:build unit

package seed_test

import (
	"testing"

	"amaluz-seeder/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phase(name string, after ...string) seed.Phase {
	return seed.Phase{Name: name, After: after}
}

func names(phases []seed.Phase) []string {
	out := make([]string, len(phases))
	for i, p := range phases {
		out[i] = p.Name
	}
	return out
}

func TestOrder(t *testing.T) {
	t.Run("respects dependencies", func(t *testing.T) {
		got, err := seed.Order([]seed.Phase{
			phase("orders", "carts", "discounts"),
			phase("carts", "users", "inventory"),
			phase("inventory", "products"),
			phase("products", "suppliers"),
			phase("discounts", "users"),
			phase("suppliers"),
			phase("users"),
		})
		require.NoError(t, err)

		pos := make(map[string]int)
		for i, p := range got {
			pos[p.Name] = i
		}
		assert.Less(t, pos["suppliers"], pos["products"])
		assert.Less(t, pos["products"], pos["inventory"])
		assert.Less(t, pos["users"], pos["carts"])
		assert.Less(t, pos["inventory"], pos["carts"])
		assert.Less(t, pos["users"], pos["discounts"])
		assert.Less(t, pos["carts"], pos["orders"])
		assert.Less(t, pos["discounts"], pos["orders"])
	})

	t.Run("ready phases run in name order", func(t *testing.T) {
		got, err := seed.Order([]seed.Phase{
			phase("zeta"),
			phase("alpha"),
			phase("mike"),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "mike", "zeta"}, names(got))
	})

	t.Run("rejects cycles", func(t *testing.T) {
		_, err := seed.Order([]seed.Phase{
			phase("a", "b"),
			phase("b", "c"),
			phase("c", "a"),
		})
		require.ErrorIs(t, err, seed.ErrCyclicPhases)
	})

	t.Run("rejects self-cycles", func(t *testing.T) {
		_, err := seed.Order([]seed.Phase{phase("a", "a")})
		require.ErrorIs(t, err, seed.ErrCyclicPhases)
	})

	t.Run("rejects unknown dependencies", func(t *testing.T) {
		_, err := seed.Order([]seed.Phase{phase("a", "ghost")})
		require.ErrorIs(t, err, seed.ErrUnknownPhase)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := seed.Order([]seed.Phase{phase("a"), phase("a")})
		require.ErrorIs(t, err, seed.ErrDuplicatePhase)
	})

	t.Run("empty graph is fine", func(t *testing.T) {
		got, err := seed.Order(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
