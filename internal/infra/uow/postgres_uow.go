package uow

import (
	"context"
	"errors"
	"log/slog"

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
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/infra/repository"
	"amaluz-seeder/internal/pkg/errs"
	"amaluz-seeder/internal/seed"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) seed.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// Within runs fn inside a single transaction. The generator mutates its
// working set while fn runs, so the transaction is never retried: on any
// error everything rolls back and the run fails as a whole.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx seed.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	tx := &pgTx{dbtx: pgxTx}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	userRepo      *repository.UserRepository
	supplierRepo  *repository.SupplierRepository
	productRepo   *repository.ProductRepository
	inventoryRepo *repository.InventoryRepository
	discountRepo  *repository.DiscountRepository
	cartRepo      *repository.CartRepository
	addressRepo   *repository.AddressRepository
	orderRepo     *repository.OrderRepository
	shipmentRepo  *repository.ShipmentRepository
	commentRepo   *repository.CommentRepository
}

func (t *pgTx) users() *repository.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.dbtx)
	}
	return t.userRepo
}

func (t *pgTx) suppliers() *repository.SupplierRepository {
	if t.supplierRepo == nil {
		t.supplierRepo = repository.NewSupplierRepository(t.dbtx)
	}
	return t.supplierRepo
}

func (t *pgTx) products() *repository.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository(t.dbtx)
	}
	return t.productRepo
}

func (t *pgTx) inventories() *repository.InventoryRepository {
	if t.inventoryRepo == nil {
		t.inventoryRepo = repository.NewInventoryRepository(t.dbtx)
	}
	return t.inventoryRepo
}

func (t *pgTx) discounts() *repository.DiscountRepository {
	if t.discountRepo == nil {
		t.discountRepo = repository.NewDiscountRepository(t.dbtx)
	}
	return t.discountRepo
}

func (t *pgTx) carts() *repository.CartRepository {
	if t.cartRepo == nil {
		t.cartRepo = repository.NewCartRepository(t.dbtx)
	}
	return t.cartRepo
}

func (t *pgTx) addresses() *repository.AddressRepository {
	if t.addressRepo == nil {
		t.addressRepo = repository.NewAddressRepository(t.dbtx)
	}
	return t.addressRepo
}

func (t *pgTx) orders() *repository.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository(t.dbtx)
	}
	return t.orderRepo
}

func (t *pgTx) shipments() *repository.ShipmentRepository {
	if t.shipmentRepo == nil {
		t.shipmentRepo = repository.NewShipmentRepository(t.dbtx)
	}
	return t.shipmentRepo
}

func (t *pgTx) comments() *repository.CommentRepository {
	if t.commentRepo == nil {
		t.commentRepo = repository.NewCommentRepository(t.dbtx)
	}
	return t.commentRepo
}

func (t *pgTx) InsertUsers(ctx context.Context, users []*user.User) error {
	return t.users().InsertBatch(ctx, users)
}

func (t *pgTx) UpdateUserStatus(ctx context.Context, u *user.User) error {
	return t.users().UpdateStatus(ctx, u)
}

func (t *pgTx) InsertSuppliers(ctx context.Context, suppliers []*supplier.Supplier) error {
	return t.suppliers().InsertBatch(ctx, suppliers)
}

func (t *pgTx) InsertProducts(ctx context.Context, products []*product.Product) error {
	return t.products().InsertBatch(ctx, products)
}

func (t *pgTx) UpdateProductStatus(ctx context.Context, p *product.Product) error {
	return t.products().UpdateStatus(ctx, p)
}

func (t *pgTx) InsertInventories(ctx context.Context, inventories []*inventory.Inventory) error {
	return t.inventories().InsertBatch(ctx, inventories)
}

func (t *pgTx) UpdateInventoryLevels(ctx context.Context, inv *inventory.Inventory) error {
	return t.inventories().UpdateLevels(ctx, inv)
}

func (t *pgTx) InsertDiscounts(ctx context.Context, discounts []*discount.Discount) error {
	return t.discounts().InsertBatch(ctx, discounts)
}

func (t *pgTx) InsertDiscountUsages(ctx context.Context, usages []seed.DiscountUsage) error {
	return t.discounts().InsertUsages(ctx, usages)
}

func (t *pgTx) InsertCartLines(ctx context.Context, lines []*cart.Line) error {
	return t.carts().InsertLines(ctx, lines)
}

func (t *pgTx) InsertAddresses(ctx context.Context, addresses []*address.Address) error {
	return t.addresses().InsertBatch(ctx, addresses)
}

func (t *pgTx) InsertOrders(ctx context.Context, orders []*order.Order) error {
	return t.orders().InsertBatch(ctx, orders)
}

func (t *pgTx) UpdateOrderStatus(ctx context.Context, o *order.Order) error {
	return t.orders().UpdateStatus(ctx, o)
}

func (t *pgTx) InsertShipments(ctx context.Context, shipments []*shipment.Shipment) error {
	return t.shipments().InsertBatch(ctx, shipments)
}

func (t *pgTx) UpdateShipment(ctx context.Context, s *shipment.Shipment) error {
	return t.shipments().Update(ctx, s)
}

func (t *pgTx) InsertComments(ctx context.Context, comments []*comment.Comment) error {
	return t.comments().InsertBatch(ctx, comments)
}
