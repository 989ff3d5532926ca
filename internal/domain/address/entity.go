package address

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyStreet     = errors.New("street cannot be empty")
	ErrEmptyCity       = errors.New("city cannot be empty")
	ErrBeforeUserFloor = errors.New("address cannot precede its user registration")
)

// Address is a per-order shipping destination owned by a user. It joins the
// order's temporal floor: the order is created after the address.
type Address struct {
	id           uuid.UUID
	userID       uuid.UUID
	street       string
	city         string
	region       string
	postalCode   string
	country      string
	registeredAt time.Time
}

func NewAddress(userID uuid.UUID, street, city, region, postalCode, country string, userFloor, registeredAt time.Time) (*Address, error) {
	if strings.TrimSpace(street) == "" {
		return nil, ErrEmptyStreet
	}
	if strings.TrimSpace(city) == "" {
		return nil, ErrEmptyCity
	}
	if registeredAt.Before(userFloor) {
		return nil, ErrBeforeUserFloor
	}
	return &Address{
		id:           uuid.New(),
		userID:       userID,
		street:       street,
		city:         city,
		region:       region,
		postalCode:   postalCode,
		country:      country,
		registeredAt: registeredAt,
	}, nil
}

func ReconstructAddress(id, userID uuid.UUID, street, city, region, postalCode, country string, registeredAt time.Time) *Address {
	return &Address{
		id:           id,
		userID:       userID,
		street:       street,
		city:         city,
		region:       region,
		postalCode:   postalCode,
		country:      country,
		registeredAt: registeredAt,
	}
}

func (a *Address) ID() uuid.UUID { return a.id }
func (a *Address) UserID() uuid.UUID { return a.userID }
func (a *Address) Street() string { return a.street }
func (a *Address) City() string { return a.city }
func (a *Address) Region() string { return a.region }
func (a *Address) PostalCode() string { return a.postalCode }
func (a *Address) Country() string { return a.country }
func (a *Address) RegisteredAt() time.Time { return a.registeredAt }
