package repository

import (
	"context"

	"amaluz-seeder/internal/domain/shipment"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type ShipmentRepository struct {
	db db.DBTX
}

func NewShipmentRepository(db db.DBTX) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

const insertShipmentSQL = `
INSERT INTO shipments (id, order_id, carrier, tracking_code, fee, status, estimated_delivery, actual_delivery, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (r *ShipmentRepository) InsertBatch(ctx context.Context, shipments []*shipment.Shipment) error {
	for _, s := range shipments {
		fee, err := pgconv.NumericFromDecimal(s.Fee())
		if err != nil {
			return infra.WrapRepoErr("failed to convert shipment fee", err)
		}
		_, err = r.db.Exec(ctx, insertShipmentSQL,
			pgconv.UUIDToPgtype(s.ID()),
			pgconv.UUIDToPgtype(s.OrderID()),
			s.Carrier(),
			s.TrackingCode(),
			fee,
			string(s.Status()),
			pgconv.TimeToPgtype(s.EstimatedDelivery()),
			pgconv.TimePtrToPgtype(s.ActualDelivery()),
			pgconv.TimeToPgtype(s.CreatedAt()),
			pgconv.TimeToPgtype(s.UpdatedAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert shipment", err)
		}
	}
	return nil
}

const updateShipmentSQL = `
UPDATE shipments SET status = $2, actual_delivery = $3, updated_at = $4 WHERE id = $1`

func (r *ShipmentRepository) Update(ctx context.Context, s *shipment.Shipment) error {
	tag, err := r.db.Exec(ctx, updateShipmentSQL,
		pgconv.UUIDToPgtype(s.ID()),
		string(s.Status()),
		pgconv.TimePtrToPgtype(s.ActualDelivery()),
		pgconv.TimeToPgtype(s.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update shipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "shipment not found")
	}
	return nil
}
