//go:build unit

package builder

import (
	"time"

	domorder "amaluz-seeder/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLineSpec struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

type OrderBuilder struct {
	Seq         int
	UserID      uuid.UUID
	AddressID   uuid.UUID
	Lines       []OrderLineSpec
	Discount    *domorder.DiscountSpec
	ShippingFee decimal.Decimal
	CreatedAt   time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Seq:       1,
		UserID:    uuid.New(),
		AddressID: uuid.New(),
		Lines: []OrderLineSpec{
			{ProductID: uuid.New(), Quantity: 2, UnitPrice: decimal.NewFromInt(34900)},
		},
		ShippingFee: decimal.NewFromInt(12000),
		CreatedAt:   time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) BuildDomain() (*domorder.Order, error) {
	lines := make([]domorder.Line, 0, len(b.Lines))
	for _, spec := range b.Lines {
		l, err := domorder.NewLine(spec.ProductID, spec.Quantity, spec.UnitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return domorder.NewOrder(b.Seq, b.UserID, b.AddressID, lines, b.Discount, b.ShippingFee, b.CreatedAt)
}

func (b *OrderBuilder) WithLines(lines ...OrderLineSpec) *OrderBuilder {
	b.Lines = lines
	return b
}

func (b *OrderBuilder) WithDiscount(id uuid.UUID, percent decimal.Decimal) *OrderBuilder {
	b.Discount = &domorder.DiscountSpec{ID: id, Percent: percent}
	return b
}

func (b *OrderBuilder) WithShippingFee(fee decimal.Decimal) *OrderBuilder {
	b.ShippingFee = fee
	return b
}

func (b *OrderBuilder) WithSeq(seq int) *OrderBuilder {
	b.Seq = seq
	return b
}

func (b *OrderBuilder) WithCreatedAt(at time.Time) *OrderBuilder {
	b.CreatedAt = at
	return b
}
