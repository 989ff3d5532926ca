//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"amaluz-seeder/internal/domain/order"
	"amaluz-seeder/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, actual.Status())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
		// 2 * 34900 + 12000 shipping
		assert.True(t, actual.Total().Equal(decimal.NewFromInt(81800)))
	})

	t.Run("order code embeds the creation instant", func(t *testing.T) {
		created := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)
		actual, err := builder.NewOrderBuilder().WithCreatedAt(created).BuildDomain()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(actual.Code(), "ORD-20240520143000-1-"))
		assert.Len(t, actual.Code(), len("ORD-20240520143000-1-")+4)
	})

	t.Run("same inputs mint the same code", func(t *testing.T) {
		created := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)

		first, err := builder.NewOrderBuilder().WithCreatedAt(created).BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewOrderBuilder().WithCreatedAt(created).BuildDomain()
		require.NoError(t, err)
		other, err := builder.NewOrderBuilder().WithCreatedAt(created).WithSeq(2).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, first.Code(), second.Code())
		assert.NotEqual(t, first.Code(), other.Code())
	})

	t.Run("discount cuts the gross before shipping", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().
			WithLines(builder.OrderLineSpec{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(10000)}).
			WithDiscount(uuid.New(), decimal.NewFromInt(25)).
			WithShippingFee(decimal.NewFromInt(5000)).
			BuildDomain()
		require.NoError(t, err)

		// 10000 - 2500 + 5000
		assert.True(t, actual.Total().Equal(decimal.NewFromInt(12500)))
		require.NotNil(t, actual.DiscountID())
	})

	t.Run("shipping fee is never discounted", func(t *testing.T) {
		actual, err := builder.NewOrderBuilder().
			WithLines(builder.OrderLineSpec{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(100)}).
			WithDiscount(uuid.New(), decimal.NewFromInt(100)).
			WithShippingFee(decimal.NewFromInt(7000)).
			BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.Total().Equal(decimal.NewFromInt(7000)))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := builder.NewOrderBuilder().WithLines().BuildDomain()
		require.ErrorIs(t, err, order.ErrNoLines)

		_, err = builder.NewOrderBuilder().
			WithLines(builder.OrderLineSpec{ProductID: uuid.New(), Quantity: 0, UnitPrice: decimal.NewFromInt(100)}).
			BuildDomain()
		require.ErrorIs(t, err, order.ErrNonPositiveQuantity)

		_, err = builder.NewOrderBuilder().
			WithLines(builder.OrderLineSpec{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.Zero}).
			BuildDomain()
		require.ErrorIs(t, err, order.ErrNonPositiveUnitPrice)

		_, err = builder.NewOrderBuilder().WithShippingFee(decimal.NewFromInt(-1)).BuildDomain()
		require.ErrorIs(t, err, order.ErrNegativeShippingFee)
	})
}

func TestLineSubtotal(t *testing.T) {
	l, err := order.NewLine(uuid.New(), 3, decimal.NewFromInt(34900))
	require.NoError(t, err)
	assert.True(t, l.Subtotal().Equal(decimal.NewFromInt(104700)))
}

func TestOrderTransitions(t *testing.T) {
	created := time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC)

	newPending := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := builder.NewOrderBuilder().WithCreatedAt(created).BuildDomain()
		require.NoError(t, err)
		return o
	}

	t.Run("happy path walks every hop", func(t *testing.T) {
		o := newPending(t)
		at := created

		for _, next := range []order.Status{
			order.StatusProcessing, order.StatusShipped, order.StatusDelivered,
		} {
			at = at.Add(time.Hour)
			require.NoError(t, o.TransitionTo(next, at))
			assert.Equal(t, next, o.Status())
			assert.Equal(t, at, o.UpdatedAt())
		}
	})

	t.Run("cancellation leaves from pending only", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.TransitionTo(order.StatusCancelled, created.Add(10*time.Minute)))

		o2 := newPending(t)
		require.NoError(t, o2.TransitionTo(order.StatusProcessing, created.Add(time.Hour)))
		err := o2.TransitionTo(order.StatusCancelled, created.Add(2*time.Hour))
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("refund is reachable from delivered and cancelled", func(t *testing.T) {
		delivered := newPending(t)
		at := created
		for _, next := range []order.Status{order.StatusProcessing, order.StatusShipped, order.StatusDelivered} {
			at = at.Add(time.Hour)
			require.NoError(t, delivered.TransitionTo(next, at))
		}
		require.NoError(t, delivered.TransitionTo(order.StatusRefunded, at.Add(time.Hour)))

		cancelled := newPending(t)
		require.NoError(t, cancelled.TransitionTo(order.StatusCancelled, created.Add(time.Minute)))
		require.NoError(t, cancelled.TransitionTo(order.StatusRefunded, created.Add(time.Hour)))
	})

	t.Run("no hop leaves refunded", func(t *testing.T) {
		o := newPending(t)
		require.NoError(t, o.TransitionTo(order.StatusCancelled, created.Add(time.Minute)))
		require.NoError(t, o.TransitionTo(order.StatusRefunded, created.Add(time.Hour)))

		for _, next := range []order.Status{
			order.StatusPending, order.StatusProcessing, order.StatusShipped,
			order.StatusDelivered, order.StatusCancelled, order.StatusRefunded,
		} {
			err := o.TransitionTo(next, created.Add(2*time.Hour))
			require.ErrorIs(t, err, order.ErrInvalidTransition, "refunded -> %s", next)
		}
	})

	t.Run("skipping a hop is rejected", func(t *testing.T) {
		o := newPending(t)
		err := o.TransitionTo(order.StatusShipped, created.Add(time.Hour))
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		err = o.TransitionTo(order.StatusDelivered, created.Add(time.Hour))
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("transitions must be strictly later", func(t *testing.T) {
		o := newPending(t)
		err := o.TransitionTo(order.StatusProcessing, created)
		require.ErrorIs(t, err, order.ErrNonMonotonicUpdate)
		err = o.TransitionTo(order.StatusProcessing, created.Add(-time.Second))
		require.ErrorIs(t, err, order.ErrNonMonotonicUpdate)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}
