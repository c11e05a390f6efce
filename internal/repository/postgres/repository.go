package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
	if *limit <= 0 {
		*limit = 10
	}
}

var ErrFieldsNotAllowedToUpdate = errors.New("some fields are not allowed to update")

type Post interface {
	Create(ctx context.Context, post model.Post, categoryID *uuid.UUID, tagIDs []uuid.UUID) (*model.Post, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.FullPost, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*model.FullPost, error)
	FindPublished(ctx context.Context, limit int, offset int) ([]*model.PostListItem, int64, error)
	FindPublishedByCategory(ctx context.Context, categorySlug string, limit int, offset int) ([]*model.PostListItem, int64, error)
	FindPublishedByTag(ctx context.Context, tagSlug string, limit int, offset int) ([]*model.PostListItem, int64, error)
	FindFeatured(ctx context.Context, limit int) ([]*model.PostListItem, error)
	SearchPublishedByTitle(ctx context.Context, query string, limit int, offset int) ([]*model.PostListItem, int64, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, int64, error)
	FindPublishedByAuthor(ctx context.Context, authorID uuid.UUID, limit int, offset int) ([]*model.PostListItem, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	SetCategory(ctx context.Context, postID uuid.UUID, categoryID *uuid.UUID) error
	SetTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, publishedAt *time.Time) error
	IncrViews(ctx context.Context, id uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)
	FindByPost(ctx context.Context, postID uuid.UUID) ([]*model.FullComment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*model.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Like interface {
	Create(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	Delete(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	Exists(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (bool, error)
	CountByPost(ctx context.Context, postID uuid.UUID) (int64, error)
}

type Category interface {
	Create(ctx context.Context, category model.Category) (*model.Category, error)
	FindAll(ctx context.Context) ([]*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Tag interface {
	Create(ctx context.Context, tag model.Tag) (*model.Tag, error)
	FindAll(ctx context.Context) ([]*model.Tag, error)
	FindBySlug(ctx context.Context, slug string) (*model.Tag, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Profile interface {
	Create(ctx context.Context, profile model.Profile) (*model.Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	FindAuthors(ctx context.Context, limit int, offset int) ([]*model.Profile, int64, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}

type Work interface {
	Create(ctx context.Context, work model.Work) (*model.Work, error)
	FindAll(ctx context.Context) ([]*model.Work, error)
	FindBySlug(ctx context.Context, slug string) (*model.Work, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Stats interface {
	Totals(ctx context.Context) (*model.SiteStats, error)
}

type PostgresRepository struct {
	Post
	Comment
	Like
	Category
	Tag
	Profile
	Work
	Stats
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:     newPostRepo(db),
		Comment:  newCommentRepo(db),
		Like:     newLikeRepo(db),
		Category: newCategoryRepo(db),
		Tag:      newTagRepo(db),
		Profile:  newProfileRepo(db),
		Work:     newWorkRepo(db),
		Stats:    newStatsRepo(db),
	}
}
