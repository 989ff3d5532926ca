package repository

import (
	"context"

	"amaluz-seeder/internal/domain/inventory"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(db db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const insertInventorySQL = `
INSERT INTO inventories (id, product_id, on_hand, available, registered_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *InventoryRepository) InsertBatch(ctx context.Context, inventories []*inventory.Inventory) error {
	for _, inv := range inventories {
		_, err := r.db.Exec(ctx, insertInventorySQL,
			pgconv.UUIDToPgtype(inv.ID()),
			pgconv.UUIDToPgtype(inv.ProductID()),
			inv.OnHand(),
			inv.Available(),
			pgconv.TimeToPgtype(inv.RegisteredAt()),
			pgconv.TimeToPgtype(inv.UpdatedAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert inventory", err)
		}
	}
	return nil
}

const updateInventoryLevelsSQL = `
UPDATE inventories SET on_hand = $2, available = $3, updated_at = $4 WHERE id = $1`

func (r *InventoryRepository) UpdateLevels(ctx context.Context, inv *inventory.Inventory) error {
	tag, err := r.db.Exec(ctx, updateInventoryLevelsSQL,
		pgconv.UUIDToPgtype(inv.ID()),
		inv.OnHand(),
		inv.Available(),
		pgconv.TimeToPgtype(inv.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update inventory levels", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "inventory not found")
	}
	return nil
}
