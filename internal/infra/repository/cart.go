package repository

import (
	"context"

	"amaluz-seeder/internal/domain/cart"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type CartRepository struct {
	db db.DBTX
}

func NewCartRepository(db db.DBTX) *CartRepository {
	return &CartRepository{db: db}
}

const insertCartLineSQL = `
INSERT INTO cart_lines (id, user_id, product_id, quantity, registered_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *CartRepository) InsertLines(ctx context.Context, lines []*cart.Line) error {
	for _, l := range lines {
		_, err := r.db.Exec(ctx, insertCartLineSQL,
			pgconv.UUIDToPgtype(l.ID()),
			pgconv.UUIDToPgtype(l.UserID()),
			pgconv.UUIDToPgtype(l.ProductID()),
			l.Quantity(),
			pgconv.TimeToPgtype(l.RegisteredAt()),
			pgconv.TimeToPgtype(l.UpdatedAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert cart line", err)
		}
	}
	return nil
}
