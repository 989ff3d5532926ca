package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole        = errors.New("invalid user role")
	ErrInvalidStatus      = errors.New("invalid user status")
	ErrEmptyName          = errors.New("user name cannot be empty")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmptyPasswordHash  = errors.New("password hash cannot be empty")
	ErrNonMonotonicUpdate = errors.New("update must not precede the last change")
	ErrAlreadyConfirmed   = errors.New("user is already confirmed")
)

type User struct {
	id           uuid.UUID
	role         Role
	status       Status
	name         string
	email        string
	phone        string
	passwordHash string
	registeredAt time.Time
	updatedAt    time.Time
}

func NewUser(role Role, name, email, phone, passwordHash string, registeredAt time.Time) (*User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, ErrEmptyPasswordHash
	}

	status := StatusUnconfirmed
	if role != RoleCustomer {
		// Staff accounts come in active; only shoppers go through confirmation.
		status = StatusActive
	}

	return &User{
		id:           uuid.New(),
		role:         role,
		status:       status,
		name:         name,
		email:        strings.ToLower(email),
		phone:        phone,
		passwordHash: passwordHash,
		registeredAt: registeredAt,
		updatedAt:    registeredAt,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	role Role,
	status Status,
	name, email, phone, passwordHash string,
	registeredAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		role:         role,
		status:       status,
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		registeredAt: registeredAt,
		updatedAt:    updatedAt,
	}
}

// Confirm flips an unconfirmed account to active at the given instant.
func (u *User) Confirm(at time.Time) error {
	if u.status != StatusUnconfirmed {
		return ErrAlreadyConfirmed
	}
	if at.Before(u.updatedAt) {
		return ErrNonMonotonicUpdate
	}
	u.status = StatusActive
	u.updatedAt = at
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Role() Role { return u.role }
func (u *User) Status() Status { return u.status }
func (u *User) Name() string { return u.name }
func (u *User) Email() string { return u.email }
func (u *User) Phone() string { return u.phone }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) RegisteredAt() time.Time { return u.registeredAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) IsActiveCustomer() bool {
	return u.role == RoleCustomer && u.status == StatusActive
}
