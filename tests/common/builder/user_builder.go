//go:build unit

package builder

import (
	"time"

	domuser "amaluz-seeder/internal/domain/user"
)

type UserBuilder struct {
	Role         domuser.Role
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	RegisteredAt time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Role:         domuser.RoleCustomer,
		Name:         "Maria Lopez",
		Email:        "maria.lopez@example.com",
		Phone:        "+57 300 555 0101",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		RegisteredAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	return domuser.NewUser(b.Role, b.Name, b.Email, b.Phone, b.PasswordHash, b.RegisteredAt)
}

func (b *UserBuilder) WithRole(role domuser.Role) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.PasswordHash = hash
	return b
}

func (b *UserBuilder) WithRegisteredAt(at time.Time) *UserBuilder {
	b.RegisteredAt = at
	return b
}
