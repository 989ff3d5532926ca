package repository

import (
	"context"

	"amaluz-seeder/internal/domain/supplier"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type SupplierRepository struct {
	db db.DBTX
}

func NewSupplierRepository(db db.DBTX) *SupplierRepository {
	return &SupplierRepository{db: db}
}

const insertSupplierSQL = `
INSERT INTO suppliers (id, name, contact_name, phone, address, registered_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *SupplierRepository) InsertBatch(ctx context.Context, suppliers []*supplier.Supplier) error {
	for _, s := range suppliers {
		_, err := r.db.Exec(ctx, insertSupplierSQL,
			pgconv.UUIDToPgtype(s.ID()),
			s.Name(),
			s.ContactName(),
			s.Phone(),
			s.Address(),
			pgconv.TimeToPgtype(s.RegisteredAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert supplier", err)
		}
	}
	return nil
}
