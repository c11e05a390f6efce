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

type tagService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newTagService(logger *zap.Logger, repo *repository.Repository) Tag {
	return &tagService{
		logger: logger,
		repo:   repo,
	}
}

func (s *tagService) Create(ctx context.Context, input dto.CreateTagDto) (*model.Tag, error) {
	tag, err := s.repo.Postgres.Tag.Create(ctx, model.Tag{
		Name:  input.Name,
		Slug:  utils.Slugify(input.Name),
		Color: input.Color,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create tag %q: %s", input.Name, err.Error())
		return nil, ErrInternal
	}

	s.invalidate(ctx)

	return tag, nil
}

func (s *tagService) List(ctx context.Context) ([]*model.Tag, error) {
	cached, err := redisrepo.GetMany[model.Tag](s.repo.Redis.Default, ctx, redisrepo.TAGS_KEY)
	if err == nil {
		return cached, nil
	}
	if err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get tags from redis: %s", err.Error())
		return nil, ErrInternal
	}

	tags, err := s.repo.Postgres.Tag.FindAll(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find tags from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.TAGS_KEY, tags, postListCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set tags in redis: %s", err.Error())
	}

	return tags, nil
}

func (s *tagService) GetBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	tag, err := s.repo.Postgres.Tag.FindBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrTagNotFound
		}

		s.logger.Sugar().Errorf("failed to find tag(%s) from postgres: %s", slug, err.Error())
		return nil, ErrInternal
	}

	return tag, nil
}

func (s *tagService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateTagDto) error {
	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
		updates["slug"] = utils.Slugify(*input.Name)
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}
	if len(updates) == 0 {
		return ErrNothingToUpdate
	}

	if err := s.repo.Postgres.Tag.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update tag(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx)

	return nil
}

func (s *tagService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Postgres.Tag.Delete(ctx, id); err != nil {
		s.logger.Sugar().Errorf("failed to delete tag(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx)

	return nil
}

func (s *tagService) invalidate(ctx context.Context) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.TAGS_KEY).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete tags from redis: %s", err.Error())
	}
}
