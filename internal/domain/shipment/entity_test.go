//go:build unit

package shipment_test

import (
	"testing"
	"time"

	"amaluz-seeder/internal/domain/shipment"
	"amaluz-seeder/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipment(t *testing.T) {
	created := time.Date(2024, 5, 20, 14, 35, 0, 0, time.UTC)

	newPending := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s, err := builder.NewShipmentBuilder().WithCreatedAt(created).BuildDomain()
		require.NoError(t, err)
		return s
	}

	t.Run("basic success case", func(t *testing.T) {
		s := newPending(t)
		assert.Equal(t, shipment.StatusPending, s.Status())
		assert.Nil(t, s.ActualDelivery())
		assert.Equal(t, created, s.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		_, err := builder.NewShipmentBuilder().WithCarrier("").BuildDomain()
		require.ErrorIs(t, err, shipment.ErrEmptyCarrier)

		_, err = builder.NewShipmentBuilder().WithTrackingCode("").BuildDomain()
		require.ErrorIs(t, err, shipment.ErrEmptyTrackingCode)

		_, err = builder.NewShipmentBuilder().WithFee(decimal.NewFromInt(-1)).BuildDomain()
		require.ErrorIs(t, err, shipment.ErrNegativeFee)

		_, err = builder.NewShipmentBuilder().
			WithCreatedAt(created).
			WithEstimatedDelivery(created.Add(-time.Hour)).
			BuildDomain()
		require.ErrorIs(t, err, shipment.ErrEstimateBeforeShip)
	})

	t.Run("delivery path records the actual instant", func(t *testing.T) {
		s := newPending(t)

		transitAt := created.Add(24 * time.Hour)
		require.NoError(t, s.MarkInTransit(transitAt))
		assert.Equal(t, shipment.StatusInTransit, s.Status())

		deliveredAt := transitAt.Add(4 * 24 * time.Hour)
		require.NoError(t, s.MarkDelivered(deliveredAt))
		assert.Equal(t, shipment.StatusDelivered, s.Status())
		require.NotNil(t, s.ActualDelivery())
		assert.Equal(t, deliveredAt, *s.ActualDelivery())

		returnedAt := deliveredAt.Add(24 * time.Hour)
		require.NoError(t, s.MarkReturned(returnedAt))
		assert.Equal(t, shipment.StatusReturned, s.Status())
	})

	t.Run("failure leaves from pending only", func(t *testing.T) {
		s := newPending(t)
		require.NoError(t, s.MarkFailed(created.Add(10*time.Minute)))
		assert.Equal(t, shipment.StatusFailed, s.Status())

		s2 := newPending(t)
		require.NoError(t, s2.MarkInTransit(created.Add(time.Hour)))
		err := s2.MarkFailed(created.Add(2 * time.Hour))
		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	})

	t.Run("cannot deliver before transit", func(t *testing.T) {
		s := newPending(t)
		err := s.MarkDelivered(created.Add(time.Hour))
		require.ErrorIs(t, err, shipment.ErrInvalidTransition)
	})

	t.Run("hops must be strictly later", func(t *testing.T) {
		s := newPending(t)
		err := s.MarkInTransit(created)
		require.ErrorIs(t, err, shipment.ErrNonMonotonicUpdate)
	})
}
