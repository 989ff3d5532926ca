//go:build unit

package builder

import (
	"time"

	domshipment "amaluz-seeder/internal/domain/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShipmentBuilder struct {
	OrderID           uuid.UUID
	Carrier           string
	TrackingCode      string
	Fee               decimal.Decimal
	EstimatedDelivery time.Time
	CreatedAt         time.Time
}

func NewShipmentBuilder() *ShipmentBuilder {
	created := time.Date(2024, 5, 20, 14, 35, 0, 0, time.UTC)
	return &ShipmentBuilder{
		OrderID:           uuid.New(),
		Carrier:           "Servientrega",
		TrackingCode:      "SV-20240520-0001",
		Fee:               decimal.NewFromInt(12000),
		EstimatedDelivery: created.Add(5 * 24 * time.Hour),
		CreatedAt:         created,
	}
}

func (b *ShipmentBuilder) BuildDomain() (*domshipment.Shipment, error) {
	return domshipment.NewShipment(b.OrderID, b.Carrier, b.TrackingCode, b.Fee, b.EstimatedDelivery, b.CreatedAt)
}

func (b *ShipmentBuilder) WithCarrier(carrier string) *ShipmentBuilder {
	b.Carrier = carrier
	return b
}

func (b *ShipmentBuilder) WithTrackingCode(code string) *ShipmentBuilder {
	b.TrackingCode = code
	return b
}

func (b *ShipmentBuilder) WithFee(fee decimal.Decimal) *ShipmentBuilder {
	b.Fee = fee
	return b
}

func (b *ShipmentBuilder) WithEstimatedDelivery(at time.Time) *ShipmentBuilder {
	b.EstimatedDelivery = at
	return b
}

func (b *ShipmentBuilder) WithCreatedAt(at time.Time) *ShipmentBuilder {
	b.CreatedAt = at
	return b
}
