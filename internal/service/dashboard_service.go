package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

const dashboardCacheKey = "dashboard:stats"

// DashboardService serves the landing page counters with a short Redis
// cache in front of the aggregation query.
type DashboardService struct {
	dashboards repository.DashboardRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewDashboardService builds the service. A nil cache client disables
// caching.
func NewDashboardService(dashboards repository.DashboardRepository, cache *redis.Client, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		dashboards: dashboards,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Stats returns dashboard counters, served from cache when fresh.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	stats, err := s.dashboards.Stats(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.storeCache(ctx, stats)
	return stats, nil
}

func (s *DashboardService) fromCache(ctx context.Context) *domain.DashboardStats {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
		return nil
	}
	var stats domain.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		s.logger.Warn("dashboard cache decode failed", zap.Error(err))
		return nil
	}
	return &stats
}

func (s *DashboardService) storeCache(ctx context.Context, stats *domain.DashboardStats) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, dashboardCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}
