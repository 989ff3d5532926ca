package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("product name cannot be empty")
	ErrInvalidCategory    = errors.New("invalid product category")
	ErrInvalidFragrance   = errors.New("invalid product fragrance")
	ErrNonPositivePrice   = errors.New("sale price must be positive")
	ErrPriceBelowCost     = errors.New("sale price must exceed supplier cost")
	ErrInvalidWeight      = errors.New("weight must be positive")
	ErrNonMonotonicUpdate = errors.New("update must not precede the last change")
	ErrAlreadyActive      = errors.New("product is already active")
	ErrAlreadyInactive    = errors.New("product is already inactive")
)

type Product struct {
	id            uuid.UUID
	supplierID    *uuid.UUID
	name          string
	description   string
	category      Category
	fragrance     Fragrance
	salePrice     decimal.Decimal
	supplierCost  decimal.Decimal
	weightGrams   int
	dimensions    string
	warrantyMonth int
	status        Status
	registeredAt  time.Time
	updatedAt     time.Time
}

func NewProduct(
	supplierID *uuid.UUID,
	name, description string,
	category Category,
	fragrance Fragrance,
	salePrice, supplierCost decimal.Decimal,
	weightGrams int,
	dimensions string,
	warrantyMonth int,
	registeredAt time.Time,
) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if !fragrance.IsValid() {
		return nil, ErrInvalidFragrance
	}
	if !salePrice.IsPositive() {
		return nil, ErrNonPositivePrice
	}
	if salePrice.LessThanOrEqual(supplierCost) {
		return nil, ErrPriceBelowCost
	}
	if weightGrams <= 0 {
		return nil, ErrInvalidWeight
	}

	return &Product{
		id:            uuid.New(),
		supplierID:    supplierID,
		name:          name,
		description:   description,
		category:      category,
		fragrance:     fragrance,
		salePrice:     salePrice,
		supplierCost:  supplierCost,
		weightGrams:   weightGrams,
		dimensions:    dimensions,
		warrantyMonth: warrantyMonth,
		status:        StatusActive,
		registeredAt:  registeredAt,
		updatedAt:     registeredAt,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	supplierID *uuid.UUID,
	name, description string,
	category Category,
	fragrance Fragrance,
	salePrice, supplierCost decimal.Decimal,
	weightGrams int,
	dimensions string,
	warrantyMonth int,
	status Status,
	registeredAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:            id,
		supplierID:    supplierID,
		name:          name,
		description:   description,
		category:      category,
		fragrance:     fragrance,
		salePrice:     salePrice,
		supplierCost:  supplierCost,
		weightGrams:   weightGrams,
		dimensions:    dimensions,
		warrantyMonth: warrantyMonth,
		status:        status,
		registeredAt:  registeredAt,
		updatedAt:     updatedAt,
	}
}

// Deactivate marks the product unavailable, stamping the moment stock ran out.
func (p *Product) Deactivate(at time.Time) error {
	if p.status == StatusInactive {
		return ErrAlreadyInactive
	}
	if at.Before(p.updatedAt) {
		return ErrNonMonotonicUpdate
	}
	p.status = StatusInactive
	p.updatedAt = at
	return nil
}

func (p *Product) Reactivate(at time.Time) error {
	if p.status == StatusActive {
		return ErrAlreadyActive
	}
	if at.Before(p.updatedAt) {
		return ErrNonMonotonicUpdate
	}
	p.status = StatusActive
	p.updatedAt = at
	return nil
}

func (p *Product) ID() uuid.UUID { return p.id }
func (p *Product) SupplierID() *uuid.UUID { return p.supplierID }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Category() Category { return p.category }
func (p *Product) Fragrance() Fragrance { return p.fragrance }
func (p *Product) SalePrice() decimal.Decimal { return p.salePrice }
func (p *Product) SupplierCost() decimal.Decimal { return p.supplierCost }
func (p *Product) WeightGrams() int { return p.weightGrams }
func (p *Product) Dimensions() string { return p.dimensions }
func (p *Product) WarrantyMonths() int { return p.warrantyMonth }
func (p *Product) Status() Status { return p.status }
func (p *Product) IsActive() bool { return p.status == StatusActive }
func (p *Product) RegisteredAt() time.Time { return p.registeredAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
