//go:build unit

package builder

import (
	"time"

	domdiscount "amaluz-seeder/internal/domain/discount"

	"github.com/shopspring/decimal"
)

type DiscountBuilder struct {
	Code         string
	Description  string
	Percent      decimal.Decimal
	StartsAt     time.Time
	EndsAt       time.Time
	RegisteredAt time.Time
}

func NewDiscountBuilder() *DiscountBuilder {
	starts := time.Date(2024, 12, 17, 0, 0, 0, 0, time.UTC)
	return &DiscountBuilder{
		Code:         "AMALUZ-XMAS24",
		Description:  "Christmas candle sale",
		Percent:      decimal.NewFromInt(25),
		StartsAt:     starts,
		EndsAt:       starts.Add(9 * 24 * time.Hour),
		RegisteredAt: starts.Add(-12 * 24 * time.Hour),
	}
}

func (b *DiscountBuilder) BuildDomain() (*domdiscount.Discount, error) {
	return domdiscount.NewDiscount(b.Code, b.Description, b.Percent, b.StartsAt, b.EndsAt, b.RegisteredAt)
}

func (b *DiscountBuilder) WithCode(code string) *DiscountBuilder {
	b.Code = code
	return b
}

func (b *DiscountBuilder) WithPercent(p decimal.Decimal) *DiscountBuilder {
	b.Percent = p
	return b
}

func (b *DiscountBuilder) WithValidity(starts, ends time.Time) *DiscountBuilder {
	b.StartsAt = starts
	b.EndsAt = ends
	return b
}

func (b *DiscountBuilder) WithRegisteredAt(at time.Time) *DiscountBuilder {
	b.RegisteredAt = at
	return b
}
