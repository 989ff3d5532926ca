package supplier

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName  = errors.New("supplier name cannot be empty")
	ErrEmptyPhone = errors.New("supplier phone cannot be empty")
)

// Supplier is the root of the dependency chain: nothing but the simulation
// window bounds its registration instant.
type Supplier struct {
	id           uuid.UUID
	name         string
	contactName  string
	phone        string
	address      string
	registeredAt time.Time
}

func NewSupplier(name, contactName, phone, address string, registeredAt time.Time) (*Supplier, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(phone) == "" {
		return nil, ErrEmptyPhone
	}
	return &Supplier{
		id:           uuid.New(),
		name:         name,
		contactName:  contactName,
		phone:        phone,
		address:      address,
		registeredAt: registeredAt,
	}, nil
}

func ReconstructSupplier(id uuid.UUID, name, contactName, phone, address string, registeredAt time.Time) *Supplier {
	return &Supplier{
		id:           id,
		name:         name,
		contactName:  contactName,
		phone:        phone,
		address:      address,
		registeredAt: registeredAt,
	}
}

func (s *Supplier) ID() uuid.UUID { return s.id }
func (s *Supplier) Name() string { return s.name }
func (s *Supplier) ContactName() string { return s.contactName }
func (s *Supplier) Phone() string { return s.phone }
func (s *Supplier) Address() string { return s.address }
func (s *Supplier) RegisteredAt() time.Time { return s.registeredAt }
