package service

import (
	"context"
	"time"

	"github.com/InkwellPress/blog-service/internal/dto"
	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"github.com/InkwellPress/blog-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const profileCacheTTL = time.Hour

type profileService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newProfileService(logger *zap.Logger, repo *repository.Repository) Profile {
	return &profileService{
		logger: logger,
		repo:   repo,
	}
}

func (s *profileService) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	cachedProfile, err := redisrepo.Get[model.Profile](s.repo.Redis.Default, ctx, redisrepo.ProfileKey(id.String()))
	if err == nil && cachedProfile != nil {
		return cachedProfile, nil
	}
	if err != nil && err != redis.Nil {
		s.logger.Sugar().Errorf("failed to get profile(%s) from redis: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	profile, err := s.repo.Postgres.Profile.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to get profile(%s) from postgres: %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.ProfileKey(id.String()), profile, profileCacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set profile(%s) in redis: %s", id.String(), err.Error())
	}

	return profile, nil
}

func (s *profileService) Update(ctx context.Context, id uuid.UUID, input dto.UpdateProfileDto) error {
	updates := make(map[string]interface{})
	if input.DisplayName != nil {
		updates["display_name"] = *input.DisplayName
	}
	if input.AvatarURL != nil {
		updates["avatar_url"] = *input.AvatarURL
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if len(updates) == 0 {
		return ErrNothingToUpdate
	}

	if err := s.repo.Postgres.Profile.Update(ctx, id, updates); err != nil {
		s.logger.Sugar().Errorf("failed to update profile(%s): %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *profileService) CreateAuthor(ctx context.Context, input dto.CreateAuthorDto) (*model.Profile, error) {
	profile, err := s.repo.Postgres.Profile.Create(ctx, model.Profile{
		Email:       input.Email,
		DisplayName: &input.DisplayName,
		Bio:         input.Bio,
		Role:        input.Role,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create author(%s): %s", input.Email, err.Error())
		return nil, ErrInternal
	}

	return profile, nil
}

func (s *profileService) ListAuthors(ctx context.Context, limit int, offset int) ([]*model.Profile, int64, error) {
	authors, total, err := s.repo.Postgres.Profile.FindAuthors(ctx, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find authors from postgres: %s", err.Error())
		return nil, 0, ErrInternal
	}

	return authors, total, nil
}

func (s *profileService) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	if _, err := s.repo.Postgres.Profile.FindByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return ErrProfileNotFound
		}

		s.logger.Sugar().Errorf("failed to get profile(%s) from postgres: %s", id.String(), err.Error())
		return ErrInternal
	}

	if err := s.repo.Postgres.Profile.UpdateRole(ctx, id, role); err != nil {
		s.logger.Sugar().Errorf("failed to update profile(%s) role: %s", id.String(), err.Error())
		return ErrInternal
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *profileService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.repo.Redis.Default.Del(ctx, redisrepo.ProfileKey(id.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete profile(%s) from redis: %s", id.String(), err.Error())
	}
}
