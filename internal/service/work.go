package service

import (
	"context"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"github.com/InkwellPress/blog-service/internal/repository/redisrepo"
	"github.com/InkwellPress/blog-service/pkg/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type workService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newWorkService(logger *zap.Logger, repo *repository.Repository) Work {
	return &workService{
		logger: logger,
		repo:   repo,
	}
}

func (s *workService) Create(ctx context.Context, input dto.CreateWorkDto) (*model.Work, error) {
	work, err := s.repo.Postgres.Work.Create(ctx, model.Work{
		Title:         input.Title,
		Slug:          utils.Slugify(input.Title),
		Description:   input.Description,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		Category:      input.Category,
		Tags:          input.Tags,
		ProjectURL:    input.ProjectURL,
		GithubURL:     input.GithubURL,
		OrderIndex:    input.OrderIndex,
		IsFeatured:    input.IsFeatured,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create work %q: %s", input.Title, err.Error())
		return nil, ErrInternal
	}

	s.invalidate(ctx)

	return work, nil
}

func (s *workService) List(ctx context.Context) ([]*model.Work, error) {
	cached, err := redisrepo.GetMany[model.Work](s.repo.Redis.Default, ctx, redisrepo.WORKS_KEY)
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get works from redis: %s", err.Error())
		return nil, ErrInternal
	}

	works, err := s.repo.Postgres.Work.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find works from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.WORKS_KEY, works, postListCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set works in redis: %s", err.Error())
	}

	return works, nil
}

func (s *workService) GetBySlug(ctx context.Context, slug string) (*model.Work, error) {
	work, err := s.repo.Postgres.Work.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrWorkNotFound
		}

		s.logger.Sugar().Errorf("failed to find work(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return work, nil
}

func (s *workService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateWorkDto) error {
	updates := make(map[string]interface{})
	if input.Title != nil {
		updates["title"] = *input.Title
		updates["slug"] = utils.Slugify(*input.Title)
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Content != nil {
		updates["content"] = *input.Content
	}
	if input.FeaturedImage != nil {
		updates["featured_image"] = *input.FeaturedImage
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Tags != nil {
		updates["tags"] = input.Tags
	}
	if input.ProjectURL != nil {
		updates["project_url"] = *input.ProjectURL
	}
	if input.GithubURL != nil {
		updates["github_url"] = *input.GithubURL
	}
	if input.OrderIndex != nil {
		updates["order_index"] = *input.OrderIndex
	}
	if input.IsFeatured != nil {
		updates["is_featured"] = *input.IsFeatured
	}
	if len(updates) == 0 {
		return ErrNothingToUpdate
	}

	if err := s.repo.Postgres.Work.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update work(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx)

	return nil
}

func (s *workService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Postgres.Work.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete work(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx)

	return nil
}

func (s *workService) invalidate(ctx context.Context) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.WORKS_KEY).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete works from redis: %s", err.Error())
	}
}
