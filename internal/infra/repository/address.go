package repository

import (
	"context"

	"amaluz-seeder/internal/domain/address"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type AddressRepository struct {
	db db.DBTX
}

func NewAddressRepository(db db.DBTX) *AddressRepository {
	return &AddressRepository{db: db}
}

const insertAddressSQL = `
INSERT INTO addresses (id, user_id, street, city, region, postal_code, country, registered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *AddressRepository) InsertBatch(ctx context.Context, addresses []*address.Address) error {
	for _, a := range addresses {
		_, err := r.db.Exec(ctx, insertAddressSQL,
			pgconv.UUIDToPgtype(a.ID()),
			pgconv.UUIDToPgtype(a.UserID()),
			a.Street(),
			a.City(),
			a.Region(),
			a.PostalCode(),
			a.Country(),
			pgconv.TimeToPgtype(a.RegisteredAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert address", err)
		}
	}
	return nil
}
