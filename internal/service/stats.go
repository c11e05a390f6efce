package service

import (
	"context"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/repository"
	"go.uber.org/zap"
)

type statsService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newStatsService(logger *zap.Logger, repo *repository.Repository) Stats {
	return &statsService{
		logger: logger,
		repo:   repo,
	}
}

func (s *statsService) Totals(ctx context.Context) (*model.SiteStats, error) {
	stats, err := s.repo.Postgres.Stats.Totals(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get site stats from postgres: %s", err.Error())
		return nil, ErrInternal
	}

	return stats, nil
}
