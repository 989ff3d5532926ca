package repository

import (
	"context"

	"amaluz-seeder/internal/domain/user"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const insertUserSQL = `
INSERT INTO users (id, role, status, name, email, phone, password_hash, registered_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (r *UserRepository) InsertBatch(ctx context.Context, users []*user.User) error {
	for _, u := range users {
		_, err := r.db.Exec(ctx, insertUserSQL,
			pgconv.UUIDToPgtype(u.ID()),
			string(u.Role()),
			string(u.Status()),
			u.Name(),
			u.Email(),
			u.Phone(),
			u.PasswordHash(),
			pgconv.TimeToPgtype(u.RegisteredAt()),
			pgconv.TimeToPgtype(u.UpdatedAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert user", err)
		}
	}
	return nil
}

const updateUserStatusSQL = `
UPDATE users SET status = $2, updated_at = $3 WHERE id = $1`

func (r *UserRepository) UpdateStatus(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, updateUserStatusSQL,
		pgconv.UUIDToPgtype(u.ID()),
		string(u.Status()),
		pgconv.TimeToPgtype(u.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepositoryError(infra.KindNotFound, "user not found")
	}
	return nil
}
