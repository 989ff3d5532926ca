package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveQuantity = errors.New("cart quantity must be at least 1")
	ErrBeforeParentFloor   = errors.New("cart line cannot precede its user or product registration")
)

// Line is one (user, product) cart entry. Uniqueness of the pair is enforced
// by the generating pass and the DB constraint, not here.
type Line struct {
	id           uuid.UUID
	userID       uuid.UUID
	productID    uuid.UUID
	quantity     int
	registeredAt time.Time
	updatedAt    time.Time
}

// NewLine validates the temporal floor: the line must follow both the user's
// and the product's registration.
func NewLine(userID, productID uuid.UUID, quantity int, floor, registeredAt time.Time) (*Line, error) {
	if quantity < 1 {
		return nil, ErrNonPositiveQuantity
	}
	if registeredAt.Before(floor) {
		return nil, ErrBeforeParentFloor
	}
	return &Line{
		id:           uuid.New(),
		userID:       userID,
		productID:    productID,
		quantity:     quantity,
		registeredAt: registeredAt,
		updatedAt:    registeredAt,
	}, nil
}

func ReconstructLine(id, userID, productID uuid.UUID, quantity int, registeredAt, updatedAt time.Time) *Line {
	return &Line{
		id:           id,
		userID:       userID,
		productID:    productID,
		quantity:     quantity,
		registeredAt: registeredAt,
		updatedAt:    updatedAt,
	}
}

func (l *Line) ID() uuid.UUID { return l.id }
func (l *Line) UserID() uuid.UUID { return l.userID }
func (l *Line) ProductID() uuid.UUID { return l.productID }
func (l *Line) Quantity() int { return l.quantity }
func (l *Line) RegisteredAt() time.Time { return l.registeredAt }
func (l *Line) UpdatedAt() time.Time { return l.updatedAt }
