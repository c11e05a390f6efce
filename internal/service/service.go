package service

import (
	"context"
	"mime/multipart"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Comment interface {
	ListByPost(ctx context.Context, postID uuid.UUID) ([]*model.CommentNode, error)
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreateCommentDto) (*model.FullComment, error)
	Update(ctx context.Context, commentID uuid.UUID, requesterID uuid.UUID, content string) (*model.FullComment, error)
	Delete(ctx context.Context, commentID uuid.UUID, requesterID uuid.UUID, requesterIsAdmin bool) error
}

type Post interface {
	Create(ctx context.Context, authorID uuid.UUID, input dto.CreatePostDto) (*model.Post, error)
	GetBySlug(ctx context.Context, slug string) (*model.FullPost, error)
	GetByID(ctx context.Context, id uuid.UUID, requester *model.Profile) (*model.FullPost, error)
	List(ctx context.Context, limit int, offset int) ([]*model.PostListItem, int64, error)
	ListByCategory(ctx context.Context, categorySlug string, limit int, offset int) ([]*model.PostListItem, int64, error)
	ListByTag(ctx context.Context, tagSlug string, limit int, offset int) ([]*model.PostListItem, int64, error)
	ListFeatured(ctx context.Context, limit int) ([]*model.PostListItem, error)
	Search(ctx context.Context, query string, limit int, offset int) ([]*model.PostListItem, int64, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, requester *model.Profile, limit int, offset int) ([]*model.PostListItem, int64, error)
	Edit(ctx context.Context, postID uuid.UUID, requester *model.Profile, input dto.EditPostDto) error
	UpdateStatus(ctx context.Context, postID uuid.UUID, requester *model.Profile, status string) error
	Delete(ctx context.Context, postID uuid.UUID, requester *model.Profile) error
	ToggleLike(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (bool, error)
	IsLiked(ctx context.Context, postID uuid.UUID, userID uuid.UUID) bool
	LikeCount(ctx context.Context, postID uuid.UUID) (int64, error)
}

type Category interface {
	Create(ctx context.Context, input dto.CreateCategoryDto) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateCategoryDto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Tag interface {
	Create(ctx context.Context, input dto.CreateTagDto) (*model.Tag, error)
	List(ctx context.Context) ([]*model.Tag, error)
	GetBySlug(ctx context.Context, slug string) (*model.Tag, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateTagDto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Profile interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateProfileDto) error
	CreateAuthor(ctx context.Context, input dto.CreateAuthorDto) (*model.Profile, error)
	ListAuthors(ctx context.Context, limit int, offset int) ([]*model.Profile, int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role string) error
}

type Work interface {
	Create(ctx context.Context, input dto.CreateWorkDto) (*model.Work, error)
	List(ctx context.Context) ([]*model.Work, error)
	GetBySlug(ctx context.Context, slug string) (*model.Work, error)
	Update(ctx context.Context, id uuid.UUID, input dto.UpdateWorkDto) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Stats interface {
	Totals(ctx context.Context) (*model.SiteStats, error)
}

type Image interface {
	Upload(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type Service struct {
	Comment
	Post
	Category
	Tag
	Profile
	Work
	Stats
	Image
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Comment:  newCommentService(logger, repo),
		Post:     newPostService(logger, repo),
		Category: newCategoryService(logger, repo),
		Tag:      newTagService(logger, repo),
		Profile:  newProfileService(logger, repo),
		Work:     newWorkService(logger, repo),
		Stats:    newStatsService(logger, repo),
		Image:    newImageService(logger),
	}
}
