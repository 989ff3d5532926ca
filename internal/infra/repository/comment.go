package repository

import (
	"context"

	"amaluz-seeder/internal/domain/comment"
	"amaluz-seeder/internal/infra"
	"amaluz-seeder/internal/infra/db"
	"amaluz-seeder/internal/pkg/pgconv"
)

type CommentRepository struct {
	db db.DBTX
}

func NewCommentRepository(db db.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

const insertCommentSQL = `
INSERT INTO comments (id, user_id, product_id, rating, text, registered_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (r *CommentRepository) InsertBatch(ctx context.Context, comments []*comment.Comment) error {
	for _, c := range comments {
		_, err := r.db.Exec(ctx, insertCommentSQL,
			pgconv.UUIDToPgtype(c.ID()),
			pgconv.UUIDToPgtype(c.UserID()),
			pgconv.UUIDToPgtype(c.ProductID()),
			c.Rating(),
			c.Text(),
			pgconv.TimeToPgtype(c.RegisteredAt()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert comment", err)
		}
	}
	return nil
}
