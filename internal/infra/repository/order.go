package repository

import (
	"context"

	"amaluz-seeder/internal/domain/order"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

const insertOrderSQL = `
INSERT INTO orders (id, code, user_id, address_id, discount_id, shipping_fee, total, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const insertOrderLineSQL = `
INSERT INTO order_lines (id, order_id, product_id, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)`

func (r *OrderRepository) InsertBatch(ctx context.Context, orders []*order.Order) error {
	for _, o := range orders {
		shippingFee, err := pgconv.NumericFromDecimal(o.ShippingFee())
		if err != nil {
			return infra.WrapRepoErr("failed to convert shipping fee", err)
		}
		total, err := pgconv.NumericFromDecimal(o.Total())
		if err != nil {
			return infra.WrapRepoErr("failed to convert order total", err)
		}
		_, err = r.db.Exec(ctx, insertOrderSQL,
			pgconv.UUIDToPgtype(o.ID()),
			o.Code(),
			pgconv.UUIDToPgtype(o.UserID()),
			pgconv.UUIDToPgtype(o.AddressID()),
			pgconv.UUIDPtrToPgtype(o.DiscountID()),
			shippingFee,
			total,
			string(o.Status()),
			pgconv.TimeToPgtype(o.CreatedAt()),
			pgconv.TimeToPgtype(o.UpdatedAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert order", err)
		}

		for _, l := range o.Lines() {
			unitPrice, err := pgconv.NumericFromDecimal(l.UnitPrice())
			if err != nil {
				return infra.WrapRepoErr("failed to convert unit price", err)
			}
			_, err = r.db.Exec(ctx, insertOrderLineSQL,
				pgconv.UUIDToPgtype(l.ID()),
				pgconv.UUIDToPgtype(o.ID()),
				pgconv.UUIDToPgtype(l.ProductID()),
				l.Quantity(),
				unitPrice,
			)
			if err != nil {
				return infra.WrapRepoErr("failed to insert order line", err)
			}
		}
	}
	return nil
}

const updateOrderStatusSQL = `
UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`

func (r *OrderRepository) UpdateStatus(ctx context.Context, o *order.Order) error {
	tag, err := r.db.Exec(ctx, updateOrderStatusSQL,
		pgconv.UUIDToPgtype(o.ID()),
		string(o.Status()),
		pgconv.TimeToPgtype(o.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "order not found")
	}
	return nil
}
