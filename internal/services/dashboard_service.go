package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/talentflow/ats-service/internal/cache"
	"github.com/talentflow/ats-service/internal/repositories"
)

const (
	dashboardStatsKey = "dashboard:stats"
	dashboardStatsTTL = 30 * time.Second
)

// DashboardService serves aggregated recruiting metrics, cached briefly in
// Redis because the dashboard polls.
type DashboardService interface {
	Stats(ctx context.Context) (*repositories.DashboardStats, error)
}

type dashboardService struct {
	repo   repositories.Repository
	cache  cache.CacheService
	logger *slog.Logger
}

func NewDashboardService(repo repositories.Repository, cacheService cache.CacheService, logger *slog.Logger) DashboardService {
	return &dashboardService{
		repo:   repo,
		cache:  cacheService,
		logger: logger,
	}
}

func (s *dashboardService) Stats(ctx context.Context) (*repositories.DashboardStats, error) {
	var cached repositories.DashboardStats
	err := s.cache.Get(ctx, dashboardStatsKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Dashboard cache read failed", "error", err)
	}

	stats, err := s.repo.Dashboard().Stats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, dashboardStatsKey, stats, dashboardStatsTTL); err != nil {
		s.logger.Warn("Dashboard cache write failed", "error", err)
	}

	return stats, nil
}
