package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQuantity    = errors.New("quantity must be positive")
	ErrNegativeStock          = errors.New("stock levels cannot be negative")
	ErrAvailableExceedsOnHand = errors.New("available stock cannot exceed on-hand stock")
	ErrNonMonotonicUpdate     = errors.New("update must not precede the last change")
)

type Level string

const (
	LevelInStock  Level = "in_stock"
	LevelLowStock Level = "low_stock"
	LevelDepleted Level = "depleted"
)

const lowStockBound = 12

// Inventory tracks one product's stock. The invariant 0 <= available <= onHand
// holds at every point; Decrement refuses to break it instead of erroring.
type Inventory struct {
	id           uuid.UUID
	productID    uuid.UUID
	onHand       int
	available    int
	registeredAt time.Time
	updatedAt    time.Time
}

func NewInventory(productID uuid.UUID, initialStock int, registeredAt time.Time) (*Inventory, error) {
	if initialStock < 0 {
		return nil, ErrNegativeStock
	}
	return &Inventory{
		id:           uuid.New(),
		productID:    productID,
		onHand:       initialStock,
		available:    initialStock,
		registeredAt: registeredAt,
		updatedAt:    registeredAt,
	}, nil
}

func ReconstructInventory(id, productID uuid.UUID, onHand, available int, registeredAt, updatedAt time.Time) (*Inventory, error) {
	if onHand < 0 || available < 0 {
		return nil, ErrNegativeStock
	}
	if available > onHand {
		return nil, ErrAvailableExceedsOnHand
	}
	return &Inventory{
		id:           id,
		productID:    productID,
		onHand:       onHand,
		available:    available,
		registeredAt: registeredAt,
		updatedAt:    updatedAt,
	}, nil
}

// Decrement consumes qty units at the given instant. It reports false without
// mutating anything when stock is insufficient; qty <= 0 is a caller bug.
func (i *Inventory) Decrement(qty int, at time.Time) (bool, error) {
	if qty <= 0 {
		return false, ErrNonPositiveQuantity
	}
	if at.Before(i.updatedAt) {
		return false, ErrNonMonotonicUpdate
	}
	if qty > i.available {
		return false, nil
	}
	i.available -= qty
	i.onHand -= qty
	i.updatedAt = at
	return true, nil
}

func (i *Inventory) Increment(qty int, at time.Time) error {
	if qty <= 0 {
		return ErrNonPositiveQuantity
	}
	if at.Before(i.updatedAt) {
		return ErrNonMonotonicUpdate
	}
	i.available += qty
	i.onHand += qty
	i.updatedAt = at
	return nil
}

func (i *Inventory) Level() Level {
	switch {
	case i.available == 0:
		return LevelDepleted
	case i.available < lowStockBound:
		return LevelLowStock
	default:
		return LevelInStock
	}
}

func (i *Inventory) ID() uuid.UUID { return i.id }
func (i *Inventory) ProductID() uuid.UUID { return i.productID }
func (i *Inventory) OnHand() int { return i.onHand }
func (i *Inventory) Available() int { return i.available }
func (i *Inventory) RegisteredAt() time.Time { return i.registeredAt }
func (i *Inventory) UpdatedAt() time.Time { return i.updatedAt }
