//go:build unit

package builder

import (
	"time"

	domproduct "amaluz-seeder/internal/domain/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductBuilder struct {
	SupplierID     *uuid.UUID
	Name           string
	Description    string
	Category       domproduct.Category
	Fragrance      domproduct.Fragrance
	SalePrice      decimal.Decimal
	SupplierCost   decimal.Decimal
	WeightGrams    int
	Dimensions     string
	WarrantyMonths int
	RegisteredAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	supplierID := uuid.New()
	return &ProductBuilder{
		SupplierID:     &supplierID,
		Name:           "Vanilla Dusk Candle",
		Description:    "Hand-poured soy candle with a warm vanilla finish.",
		Category:       domproduct.CategoryAromatic,
		Fragrance:      domproduct.FragranceVanilla,
		SalePrice:      decimal.NewFromInt(34900),
		SupplierCost:   decimal.NewFromInt(18200),
		WeightGrams:    320,
		Dimensions:     "8x8x10cm",
		WarrantyMonths: 3,
		RegisteredAt:   time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) BuildDomain() (*domproduct.Product, error) {
	return domproduct.NewProduct(
		b.SupplierID, b.Name, b.Description, b.Category, b.Fragrance,
		b.SalePrice, b.SupplierCost, b.WeightGrams, b.Dimensions, b.WarrantyMonths,
		b.RegisteredAt,
	)
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithCategory(c domproduct.Category) *ProductBuilder {
	b.Category = c
	return b
}

func (b *ProductBuilder) WithFragrance(f domproduct.Fragrance) *ProductBuilder {
	b.Fragrance = f
	return b
}

func (b *ProductBuilder) WithSalePrice(p decimal.Decimal) *ProductBuilder {
	b.SalePrice = p
	return b
}

func (b *ProductBuilder) WithSupplierCost(c decimal.Decimal) *ProductBuilder {
	b.SupplierCost = c
	return b
}

func (b *ProductBuilder) WithWeightGrams(w int) *ProductBuilder {
	b.WeightGrams = w
	return b
}

func (b *ProductBuilder) WithRegisteredAt(at time.Time) *ProductBuilder {
	b.RegisteredAt = at
	return b
}

func (b *ProductBuilder) WithoutSupplier() *ProductBuilder {
	b.SupplierID = nil
	return b
}
