package repository

import (
	"context"

	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(db db.DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const insertProductSQL = `
INSERT INTO products (
	id, supplier_id, name, description, category, fragrance,
	sale_price, supplier_cost, weight_grams, dimensions, warranty_months,
	status, registered_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

func (r *ProductRepository) InsertBatch(ctx context.Context, products []*product.Product) error {
	for _, p := range products {
		salePrice, err := pgconv.NumericFromDecimal(p.SalePrice())
		if err != nil {
			return infra.WrapRepoErr("failed to convert sale price", err)
		}
		supplierCost, err := pgconv.NumericFromDecimal(p.SupplierCost())
		if err != nil {
			return infra.WrapRepoErr("failed to convert supplier cost", err)
		}
		_, err = r.db.Exec(ctx, insertProductSQL,
			pgconv.UUIDToPgtype(p.ID()),
			pgconv.UUIDPtrToPgtype(p.SupplierID()),
			p.Name(),
			p.Description(),
			string(p.Category()),
			string(p.Fragrance()),
			salePrice,
			supplierCost,
			p.WeightGrams(),
			p.Dimensions(),
			p.WarrantyMonths(),
			string(p.Status()),
			pgconv.TimeToPgtype(p.RegisteredAt()),
			pgconv.TimeToPgtype(p.UpdatedAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert product", err)
		}
	}
	return nil
}

const updateProductStatusSQL = `
UPDATE products SET status = $2, updated_at = $3 WHERE id = $1`

func (r *ProductRepository) UpdateStatus(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Exec(ctx, updateProductStatusSQL,
		pgconv.UUIDToPgtype(p.ID()),
		string(p.Status()),
		pgconv.TimeToPgtype(p.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update product status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "product not found")
	}
	return nil
}
