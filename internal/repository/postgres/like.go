package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type likeRepo struct {
	db *pgxpool.Pool
}

func newLikeRepo(db *pgxpool.Pool) Like {
	return &likeRepo{
		db: db,
	}
}

func (r *likeRepo) Create(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, "INSERT INTO likes(post_id, user_id) VALUES($1, $2) ON CONFLICT DO NOTHING", postID, userID)
	return err
}

func (r *likeRepo) Delete(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, "DELETE FROM likes WHERE post_id = $1 AND user_id = $2", postID, userID)
	return err
}

func (r *likeRepo) Exists(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = $1 AND user_id = $2)",
		postID,
		userID,
	).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *likeRepo) CountByPost(ctx context.Context, postID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM likes WHERE post_id = $1", postID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
