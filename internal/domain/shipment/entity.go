package shipment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCarrier       = errors.New("carrier cannot be empty")
	ErrEmptyTrackingCode  = errors.New("tracking code cannot be empty")
	ErrNegativeFee        = errors.New("shipping fee cannot be negative")
	ErrEstimateBeforeShip = errors.New("estimated delivery cannot precede shipment creation")
	ErrInvalidTransition  = errors.New("invalid shipment status transition")
	ErrNonMonotonicUpdate = errors.New("status change must be strictly later than the last change")
)

// Shipment mirrors its order's progress: in transit when the order ships,
// delivered with the order, returned on a post-delivery refund, failed when
// the order dies before shipping.
type Shipment struct {
	id                uuid.UUID
	orderID           uuid.UUID
	carrier           string
	trackingCode      string
	fee               decimal.Decimal
	status            Status
	estimatedDelivery time.Time
	actualDelivery    *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewShipment(orderID uuid.UUID, carrier, trackingCode string, fee decimal.Decimal, estimatedDelivery, createdAt time.Time) (*Shipment, error) {
	if carrier == "" {
		return nil, ErrEmptyCarrier
	}
	if trackingCode == "" {
		return nil, ErrEmptyTrackingCode
	}
	if fee.IsNegative() {
		return nil, ErrNegativeFee
	}
	if estimatedDelivery.Before(createdAt) {
		return nil, ErrEstimateBeforeShip
	}
	return &Shipment{
		id:                uuid.New(),
		orderID:           orderID,
		carrier:           carrier,
		trackingCode:      trackingCode,
		fee:               fee,
		status:            StatusPending,
		estimatedDelivery: estimatedDelivery,
		createdAt:         createdAt,
		updatedAt:         createdAt,
	}, nil
}

func ReconstructShipment(
	id, orderID uuid.UUID,
	carrier, trackingCode string,
	fee decimal.Decimal,
	status Status,
	estimatedDelivery time.Time,
	actualDelivery *time.Time,
	createdAt, updatedAt time.Time,
) *Shipment {
	return &Shipment{
		id:                id,
		orderID:           orderID,
		carrier:           carrier,
		trackingCode:      trackingCode,
		fee:               fee,
		status:            status,
		estimatedDelivery: estimatedDelivery,
		actualDelivery:    actualDelivery,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (s *Shipment) advance(from, to Status, at time.Time) error {
	if s.status != from {
		return ErrInvalidTransition
	}
	if !at.After(s.updatedAt) {
		return ErrNonMonotonicUpdate
	}
	s.status = to
	s.updatedAt = at
	return nil
}

func (s *Shipment) MarkInTransit(at time.Time) error {
	return s.advance(StatusPending, StatusInTransit, at)
}

// MarkDelivered records the real delivery instant alongside the status hop.
func (s *Shipment) MarkDelivered(at time.Time) error {
	if err := s.advance(StatusInTransit, StatusDelivered, at); err != nil {
		return err
	}
	t := at
	s.actualDelivery = &t
	return nil
}

func (s *Shipment) MarkReturned(at time.Time) error {
	return s.advance(StatusDelivered, StatusReturned, at)
}

func (s *Shipment) MarkFailed(at time.Time) error {
	return s.advance(StatusPending, StatusFailed, at)
}

func (s *Shipment) ID() uuid.UUID { return s.id }
func (s *Shipment) OrderID() uuid.UUID { return s.orderID }
func (s *Shipment) Carrier() string { return s.carrier }
func (s *Shipment) TrackingCode() string { return s.trackingCode }
func (s *Shipment) Fee() decimal.Decimal { return s.fee }
func (s *Shipment) Status() Status { return s.status }
func (s *Shipment) EstimatedDelivery() time.Time { return s.estimatedDelivery }
func (s *Shipment) ActualDelivery() *time.Time { return s.actualDelivery }
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time { return s.updatedAt }
