package seed

import (
	"context"
	"time"

	"amaluz-seeder/internal/domain/address"
	"amaluz-seeder/internal/domain/cart"
	"amaluz-seeder/internal/domain/comment"
	"amaluz-seeder/internal/domain/discount"
	"amaluz-seeder/internal/domain/inventory"
	"amaluz-seeder/internal/domain/order"
	"amaluz-seeder/internal/domain/product"
	"amaluz-seeder/internal/domain/shipment"
	"amaluz-seeder/internal/domain/supplier"
	"amaluz-seeder/internal/domain/user"

	"github.com/google/uuid"
)

// DiscountUsage is one redemption of a discount code by a user, the ledger
// row that keeps a code single-use per customer.
type DiscountUsage struct {
	ID         uuid.UUID
	DiscountID uuid.UUID
	UserID     uuid.UUID
	OrderID    uuid.UUID
	UsedAt     time.Time
}

// Tx is the write surface the generator sees. Inserts carry initial rows;
// status and level updates are issued separately so DB audit triggers observe
// real value changes in order.
type Tx interface {
	InsertUsers(ctx context.Context, users []*user.User) error
	UpdateUserStatus(ctx context.Context, u *user.User) error

	InsertSuppliers(ctx context.Context, suppliers []*supplier.Supplier) error

	InsertProducts(ctx context.Context, products []*product.Product) error
	UpdateProductStatus(ctx context.Context, p *product.Product) error

	InsertInventories(ctx context.Context, inventories []*inventory.Inventory) error
	UpdateInventoryLevels(ctx context.Context, inv *inventory.Inventory) error

	InsertDiscounts(ctx context.Context, discounts []*discount.Discount) error
	InsertDiscountUsages(ctx context.Context, usages []DiscountUsage) error

	InsertCartLines(ctx context.Context, lines []*cart.Line) error

	InsertAddresses(ctx context.Context, addresses []*address.Address) error

	InsertOrders(ctx context.Context, orders []*order.Order) error
	UpdateOrderStatus(ctx context.Context, o *order.Order) error

	InsertShipments(ctx context.Context, shipments []*shipment.Shipment) error
	UpdateShipment(ctx context.Context, s *shipment.Shipment) error

	InsertComments(ctx context.Context, comments []*comment.Comment) error
}

// UnitOfWork runs the whole seeding run in one transaction: either every
// generated row lands or none do.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}
