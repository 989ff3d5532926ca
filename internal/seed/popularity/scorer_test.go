//go:build unit

package popularity_test

import (
	"testing"

	"amaluz-seeder/internal/seed/popularity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	best := uuid.New()
	worst := uuid.New()
	mid := uuid.New()

	scorer := popularity.NewScorer(map[uuid.UUID]popularity.Signals{
		best:  {UnitsSold: 100, PositiveComments: 20, CartAdds: 50},
		mid:   {UnitsSold: 50, PositiveComments: 10, CartAdds: 25},
		worst: {UnitsSold: 0, PositiveComments: 0, CartAdds: 0},
	})

	t.Run("best product scores the full 10", func(t *testing.T) {
		assert.True(t, scorer.Score(best).Equal(decimal.NewFromInt(10)), "got %s", scorer.Score(best))
	})

	t.Run("worst product scores 0", func(t *testing.T) {
		assert.True(t, scorer.Score(worst).IsZero())
	})

	t.Run("middle product lands mid-range", func(t *testing.T) {
		got := scorer.Score(mid)
		assert.True(t, got.GreaterThan(decimal.Zero))
		assert.True(t, got.LessThan(decimal.NewFromInt(10)))
	})

	t.Run("unknown product scores 0", func(t *testing.T) {
		assert.True(t, scorer.Score(uuid.New()).IsZero())
	})

	t.Run("all scores stay in bounds", func(t *testing.T) {
		for _, id := range []uuid.UUID{best, mid, worst} {
			got := scorer.Score(id)
			assert.False(t, got.IsNegative())
			assert.True(t, got.LessThanOrEqual(decimal.NewFromInt(10)))
		}
	})
}

func TestSalesOutweighOtherSignals(t *testing.T) {
	seller := uuid.New()
	talker := uuid.New()

	scorer := popularity.NewScorer(map[uuid.UUID]popularity.Signals{
		seller: {UnitsSold: 100, PositiveComments: 0, CartAdds: 0},
		talker: {UnitsSold: 0, PositiveComments: 100, CartAdds: 100},
	})

	assert.True(t, scorer.Score(seller).GreaterThan(scorer.Score(talker)))
}

func TestUniformSignalsScoreZero(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	scorer := popularity.NewScorer(map[uuid.UUID]popularity.Signals{
		a: {UnitsSold: 5, PositiveComments: 5, CartAdds: 5},
		b: {UnitsSold: 5, PositiveComments: 5, CartAdds: 5},
	})

	// no spread means no signal: every product normalizes to the floor
	assert.True(t, scorer.Score(a).IsZero())
	assert.True(t, scorer.Score(b).IsZero())
}

func TestRank(t *testing.T) {
	best := uuid.New()
	worst := uuid.New()
	mid := uuid.New()

	scorer := popularity.NewScorer(map[uuid.UUID]popularity.Signals{
		best:  {UnitsSold: 100, PositiveComments: 20, CartAdds: 50},
		mid:   {UnitsSold: 50, PositiveComments: 10, CartAdds: 25},
		worst: {UnitsSold: 0, PositiveComments: 0, CartAdds: 0},
	})

	t.Run("orders by score descending", func(t *testing.T) {
		got := scorer.Rank()
		require.Equal(t, []uuid.UUID{best, mid, worst}, got)
	})

	t.Run("ties break by product id", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		tied := popularity.NewScorer(map[uuid.UUID]popularity.Signals{
			a: {UnitsSold: 5},
			b: {UnitsSold: 5},
		})
		got := tied.Rank()
		require.Len(t, got, 2)
		assert.True(t, got[0].String() < got[1].String())
	})

	t.Run("rank is stable across calls", func(t *testing.T) {
		assert.Equal(t, scorer.Rank(), scorer.Rank())
	})
}
