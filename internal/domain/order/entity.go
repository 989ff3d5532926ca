package order

import (
	"errors"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoLines              = errors.New("order must have at least one line")
	ErrNonPositiveQuantity  = errors.New("line quantity must be positive")
	ErrNonPositiveUnitPrice = errors.New("line unit price must be positive")
	ErrNegativeShippingFee  = errors.New("shipping fee cannot be negative")
	ErrInvalidTransition    = errors.New("invalid order status transition")
	ErrNonMonotonicUpdate   = errors.New("status change must be strictly later than the last change")
)

// Line freezes the unit price at purchase time.
type Line struct {
	id        uuid.UUID
	productID uuid.UUID
	quantity  int
	unitPrice decimal.Decimal
}

func NewLine(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrNonPositiveQuantity
	}
	if !unitPrice.IsPositive() {
		return Line{}, ErrNonPositiveUnitPrice
	}
	return Line{
		id:        uuid.New(),
		productID: productID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func ReconstructLine(id, productID uuid.UUID, quantity int, unitPrice decimal.Decimal) Line {
	return Line{id: id, productID: productID, quantity: quantity, unitPrice: unitPrice}
}

func (l Line) ID() uuid.UUID { return l.id }
func (l Line) ProductID() uuid.UUID { return l.productID }
func (l Line) Quantity() int { return l.quantity }
func (l Line) UnitPrice() decimal.Decimal { return l.unitPrice }

func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

type Order struct {
	id          uuid.UUID
	code        string
	userID      uuid.UUID
	addressID   uuid.UUID
	discountID  *uuid.UUID
	lines       []Line
	discounted  decimal.Decimal
	shippingFee decimal.Decimal
	total       decimal.Decimal
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// DiscountSpec carries only what total computation needs from a discount.
type DiscountSpec struct {
	ID      uuid.UUID
	Percent decimal.Decimal
}

// NewOrder starts at pending. Total = gross - discount cut + shipping fee,
// rounded to cents at the discount step only, matching receipt arithmetic.
func NewOrder(
	seq int,
	userID, addressID uuid.UUID,
	lines []Line,
	disc *DiscountSpec,
	shippingFee decimal.Decimal,
	createdAt time.Time,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if shippingFee.IsNegative() {
		return nil, ErrNegativeShippingFee
	}

	gross := decimal.Zero
	for _, l := range lines {
		gross = gross.Add(l.Subtotal())
	}

	discounted := gross
	var discountID *uuid.UUID
	if disc != nil {
		cut := gross.Mul(disc.Percent).Div(decimal.NewFromInt(100)).Round(2)
		discounted = gross.Sub(cut)
		id := disc.ID
		discountID = &id
	}

	return &Order{
		id:          uuid.New(),
		code:        buildCode(createdAt, seq),
		userID:      userID,
		addressID:   addressID,
		discountID:  discountID,
		lines:       lines,
		discounted:  discounted,
		shippingFee: shippingFee,
		total:       discounted.Add(shippingFee),
		status:      StatusPending,
		createdAt:   createdAt,
		updatedAt:   createdAt,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	code string,
	userID, addressID uuid.UUID,
	discountID *uuid.UUID,
	lines []Line,
	discounted, shippingFee, total decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:          id,
		code:        code,
		userID:      userID,
		addressID:   addressID,
		discountID:  discountID,
		lines:       lines,
		discounted:  discounted,
		shippingFee: shippingFee,
		total:       total,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// buildCode derives the suffix from the stamp and sequence so the same run
// inputs always mint the same code.
func buildCode(createdAt time.Time, seq int) string {
	stamp := createdAt.Format("20060102150405")
	h := fnv.New32a()
	fmt.Fprintf(h, "%s-%d", stamp, seq)
	return fmt.Sprintf("ORD-%s-%d-%04x", stamp, seq, h.Sum32()&0xffff)
}

// TransitionTo moves the order along the lifecycle. Every hop must be both
// legal for the current status and strictly later than the previous change.
func (o *Order) TransitionTo(next Status, at time.Time) error {
	if !next.IsValid() || !o.status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, next)
	}
	if !at.After(o.updatedAt) {
		return ErrNonMonotonicUpdate
	}
	o.status = next
	o.updatedAt = at
	return nil
}

func (o *Order) ID() uuid.UUID { return o.id }
func (o *Order) Code() string { return o.code }
func (o *Order) UserID() uuid.UUID { return o.userID }
func (o *Order) AddressID() uuid.UUID { return o.addressID }
func (o *Order) DiscountID() *uuid.UUID { return o.discountID }
func (o *Order) Lines() []Line { return o.lines }
func (o *Order) ShippingFee() decimal.Decimal { return o.shippingFee }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) Status() Status { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Gross is the pre-discount, pre-shipping sum of line subtotals.
func (o *Order) Gross() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range o.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}
