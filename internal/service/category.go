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

type categoryService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCategoryService(logger *zap.Logger, repo *repository.Repository) Category {
	return &categoryService{
		logger: logger,
		repo:   repo,
	}
}

func (s *categoryService) Create(ctx context.Context, input dto.CreateCategoryDto) (*model.Category, error) {
	category, err := s.repo.Postgres.Category.Create(ctx, model.Category{
		Name:  input.Name,
		Slug:  utils.Slugify(input.Name),
		Color: input.Color,
		Icon:  input.Icon,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create category %q: %s", input.Name, err.Error())
		return nil, ErrInternal
	}

	s.invalidate(ctx)

	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]*model.Category, error) {
	cached, err := redisrepo.GetMany[model.Category](s.repo.Redis.Default, ctx, redisrepo.CATEGORIES_KEY)
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get categories from redis: %s", err.Error())
		return nil, ErrInternal
	}

	categories, err := s.repo.Postgres.Category.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find categories from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.CATEGORIES_KEY, categories, postListCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set categories in redis: %s", err.Error())
	}

	return categories, nil
}

func (s *categoryService) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	category, err := s.repo.Postgres.Category.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrCategoryNotFound
		}

		s.logger.Sugar().Errorf("failed to find category(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateCategoryDto) error {
	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
		updates["slug"] = utils.Slugify(*input.Name)
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}
	if input.Icon != nil {
		updates["icon"] = *input.Icon
	}
	if len(updates) == 0 {
		return ErrNothingToUpdate
	}

	if err := s.repo.Postgres.Category.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update category(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx)

	return nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Postgres.Category.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete category(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx)

	return nil
}

func (s *categoryService) invalidate(ctx context.Context) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.CATEGORIES_KEY).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete categories from redis: %s", err.Error())
	}
}
