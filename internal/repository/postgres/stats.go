package postgres

import (
	"context"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

type statsRepo struct {
	db *pgxpool.Pool
}

func newStatsRepo(db *pgxpool.Pool) Stats {
	return &statsRepo{
		db: db,
	}
}

func (r *statsRepo) Totals(ctx context.Context) (*model.SiteStats, error) {
	var stats model.SiteStats
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		(SELECT COUNT(*) FROM posts),
		(SELECT COUNT(*) FROM posts WHERE status = 'published'),
		(SELECT COUNT(*) FROM posts WHERE status = 'review'),
		(SELECT COUNT(*) FROM posts WHERE status = 'draft'),
		(SELECT COUNT(*) FROM comments),
		(SELECT COUNT(*) FROM likes),
		(SELECT COUNT(*) FROM profiles WHERE role IN ('writer', 'admin')),
		(SELECT COALESCE(SUM(views), 0) FROM posts)`,
	).Scan(
		&stats.PostsTotal,
		&stats.PostsPublished,
		&stats.PostsInReview,
		&stats.PostsDraft,
		&stats.CommentsTotal,
		&stats.LikesTotal,
		&stats.AuthorsTotal,
		&stats.ViewsTotal,
	); err != nil {
		return nil, err
	}

	return &stats, nil
}
