package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/talentflow/ats-service/internal/cache"
	"github.com/talentflow/ats-service/internal/repositories"
)

func newDashboardFixture() (*MockDashboardRepository, *MockCacheService, DashboardService) {
	dashboardRepo := &MockDashboardRepository{}
	cacheService := &MockCacheService{}
	service := NewDashboardService(&MockRepository{dashboardRepo: dashboardRepo}, cacheService, testLogger())
	return dashboardRepo, cacheService, service
}

func TestDashboardService_Stats_CacheMiss(t *testing.T) {
	dashboardRepo, cacheService, service := newDashboardFixture()

	stats := &repositories.DashboardStats{
		ActiveJobs:      4,
		TotalCandidates: 120,
		Pipeline:        repositories.PipelineCounts{Review: 12, Assessment: 5},
	}

	cacheService.On("Get", mock.Anything, "dashboard:stats", mock.Anything).Return(cache.ErrCacheMiss)
	dashboardRepo.On("Stats", mock.Anything).Return(stats, nil)
	cacheService.On("Set", mock.Anything, "dashboard:stats", stats, dashboardStatsTTL).Return(nil)

	got, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, stats, got)
	dashboardRepo.AssertExpectations(t)
	cacheService.AssertExpectations(t)
}

func TestDashboardService_Stats_CacheHit(t *testing.T) {
	dashboardRepo, cacheService, service := newDashboardFixture()

	cacheService.On("Get", mock.Anything, "dashboard:stats", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*repositories.DashboardStats)
			dest.ActiveJobs = 7
		}).
		Return(nil)

	got, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.ActiveJobs)
	dashboardRepo.AssertNotCalled(t, "Stats", mock.Anything)
}

func TestDashboardService_Stats_CacheDownFallsThrough(t *testing.T) {
	dashboardRepo, cacheService, service := newDashboardFixture()

	stats := &repositories.DashboardStats{ActiveJobs: 2}

	cacheService.On("Get", mock.Anything, "dashboard:stats", mock.Anything).Return(errors.New("connection refused"))
	dashboardRepo.On("Stats", mock.Anything).Return(stats, nil)
	cacheService.On("Set", mock.Anything, "dashboard:stats", stats, dashboardStatsTTL).Return(errors.New("connection refused"))

	got, err := service.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, stats, got)
}
