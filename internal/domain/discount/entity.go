package discount

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode            = errors.New("discount code cannot be empty")
	ErrInvalidPercent       = errors.New("discount percent must be in (0, 100]")
	ErrInvalidValidity      = errors.New("discount must start before it ends")
	ErrRegisteredAfterStart = errors.New("discount must be registered before its start")
)

// Discount is a percentage code valid over [StartsAt, EndsAt]. Registration
// precedes the validity window; holiday anchoring is the factory's concern.
type Discount struct {
	id           uuid.UUID
	code         string
	description  string
	percent      decimal.Decimal
	startsAt     time.Time
	endsAt       time.Time
	registeredAt time.Time
}

func NewDiscount(code, description string, percent decimal.Decimal, startsAt, endsAt, registeredAt time.Time) (*Discount, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrEmptyCode
	}
	if !percent.IsPositive() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidPercent
	}
	if startsAt.After(endsAt) {
		return nil, ErrInvalidValidity
	}
	if registeredAt.After(startsAt) {
		return nil, ErrRegisteredAfterStart
	}
	return &Discount{
		id:           uuid.New(),
		code:         code,
		description:  description,
		percent:      percent,
		startsAt:     startsAt,
		endsAt:       endsAt,
		registeredAt: registeredAt,
	}, nil
}

func ReconstructDiscount(id uuid.UUID, code, description string, percent decimal.Decimal, startsAt, endsAt, registeredAt time.Time) *Discount {
	return &Discount{
		id:           id,
		code:         code,
		description:  description,
		percent:      percent,
		startsAt:     startsAt,
		endsAt:       endsAt,
		registeredAt: registeredAt,
	}
}

// ActiveAt reports whether t falls inside the validity window, inclusive.
func (d *Discount) ActiveAt(t time.Time) bool {
	return !t.Before(d.startsAt) && !t.After(d.endsAt)
}

// Apply reduces amount by the discount percentage, rounded to cents.
func (d *Discount) Apply(amount decimal.Decimal) decimal.Decimal {
	cut := amount.Mul(d.percent).Div(decimal.NewFromInt(100)).Round(2)
	return amount.Sub(cut)
}

func (d *Discount) ID() uuid.UUID { return d.id }
func (d *Discount) Code() string { return d.code }
func (d *Discount) Description() string { return d.description }
func (d *Discount) Percent() decimal.Decimal { return d.percent }
func (d *Discount) StartsAt() time.Time { return d.startsAt }
func (d *Discount) EndsAt() time.Time { return d.endsAt }
func (d *Discount) RegisteredAt() time.Time { return d.registeredAt }
