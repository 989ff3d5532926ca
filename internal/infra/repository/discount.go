package repository

import (
	"context"

	"amaluz-seeder/internal/domain/discount"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
	"amaluz-seeder/internal/seed"
)

type DiscountRepository struct {
	db db.DBTX
}

func NewDiscountRepository(db db.DBTX) *DiscountRepository {
	return &DiscountRepository{db: db}
}

const insertDiscountSQL = `
INSERT INTO discounts (id, code, description, percent, starts_at, ends_at, registered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (r *DiscountRepository) InsertBatch(ctx context.Context, discounts []*discount.Discount) error {
	for _, d := range discounts {
		percent, err := pgconv.NumericFromDecimal(d.Percent())
		if err != nil {
			return infra.WrapRepoErr("failed to convert discount percent", err)
		}
		_, err = r.db.Exec(ctx, insertDiscountSQL,
			pgconv.UUIDToPgtype(d.ID()),
			d.Code(),
			d.Description(),
			percent,
			pgconv.TimeToPgtype(d.StartsAt()),
			pgconv.TimeToPgtype(d.EndsAt()),
			pgconv.TimeToPgtype(d.RegisteredAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert discount", err)
		}
	}
	return nil
}

const insertDiscountUsageSQL = `
INSERT INTO discount_usages (id, discount_id, user_id, order_id, used_at)
VALUES ($1, $2, $3, $4, $5)`

func (r *DiscountRepository) InsertUsages(ctx context.Context, usages []seed.DiscountUsage) error {
	for _, u := range usages {
		_, err := r.db.Exec(ctx, insertDiscountUsageSQL,
			pgconv.UUIDToPgtype(u.ID),
			pgconv.UUIDToPgtype(u.DiscountID),
			pgconv.UUIDToPgtype(u.UserID),
			pgconv.UUIDToPgtype(u.OrderID),
			pgconv.TimeToPgtype(u.UsedAt),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert discount usage", err)
		}
	}
	return nil
}
