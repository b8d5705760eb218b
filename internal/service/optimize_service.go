package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	"github.com/MatthewMo520/CalendarOptimizer/internal/schedule"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

// OptimizeService runs scheduling passes over the stored events and serves
// derived views (conflicts, free slots, summaries).
type OptimizeService struct {
	store     EventStore
	cache     ResultCache
	engine    *schedule.Optimizer
	resultTTL time.Duration
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewOptimizeService constructs an optimize service. cache and metrics may be
// nil when the respective concern is disabled.
func NewOptimizeService(store EventStore, cache ResultCache, engine *schedule.Optimizer, resultTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *OptimizeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OptimizeService{
		store:     store,
		cache:     cache,
		engine:    engine,
		resultTTL: resultTTL,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Optimize loads all events, runs one scheduling pass, persists the resulting
// placements, and caches the full result.
func (s *OptimizeService) Optimize(ctx context.Context) (*models.OptimizationResult, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load events")
	}

	started := time.Now()
	result, err := s.engine.Optimize(events, s.now())
	if err != nil {
		return nil, appErrors.FromError(err)
	}
	s.metrics.RecordOptimization(result.Report, time.Since(started))

	if err := s.store.SaveSchedule(ctx, result.Events); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist schedule")
	}

	if s.cache != nil {
		entry := cachedOptimization{Result: result, GeneratedAt: s.now().UTC()}
		if err := s.cache.Set(ctx, resultCacheKey, entry, s.resultTTL); err != nil {
			s.logger.Warn("result_cache_write_failed", zap.Error(err))
		}
	}

	s.logger.Info("optimization_completed",
		zap.Int("scheduled", result.Report.ScheduledCount),
		zap.Int("total", result.Report.TotalCount),
		zap.Int("conflicts", result.Report.ConflictsCount))
	return result, nil
}

// cachedOptimization is the cache envelope for an optimization result. The
// timestamp lets read paths disclose how stale a served result is.
type cachedOptimization struct {
	Result      *models.OptimizationResult `json:"result"`
	GeneratedAt time.Time                  `json:"generatedAt"`
}

// CachedResult returns the latest cached optimization result together with
// the time it was generated, or ErrCacheMiss when nothing is cached.
func (s *OptimizeService) CachedResult(ctx context.Context) (*models.OptimizationResult, time.Time, error) {
	if s.cache == nil {
		return nil, time.Time{}, appErrors.ErrCacheMiss
	}
	var entry cachedOptimization
	if err := s.cache.Get(ctx, resultCacheKey, &entry); err != nil {
		s.metrics.RecordCacheLookup(false)
		return nil, time.Time{}, err
	}
	s.metrics.RecordCacheLookup(true)
	return entry.Result, entry.GeneratedAt, nil
}

// Conflicts detects pairwise overlaps among the stored events without
// re-running placement.
func (s *OptimizeService) Conflicts(ctx context.Context) ([]models.Conflict, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load events")
	}
	return s.engine.FindConflicts(events, s.now()), nil
}

// Slots lists free start times for a hypothetical event of the requested
// duration, treating the current schedule as occupied.
func (s *OptimizeService) Slots(ctx context.Context, query dto.SlotsQuery) (*dto.SlotsResponse, error) {
	if query.Duration <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "duration must be a positive number of minutes")
	}

	earliest, err := parseOptionalTime(query.EarliestStart)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "earliestStart must be RFC 3339")
	}
	latest, err := parseOptionalTime(query.LatestStart)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "latestStart must be RFC 3339")
	}
	if earliest != nil && latest != nil && !latest.After(*earliest) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "latestStart must be after earliestStart")
	}

	events, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load events")
	}

	slots := s.engine.AvailableSlots(query.Duration, earliest, latest, events, s.now(), query.Limit)
	return &dto.SlotsResponse{Slots: slots, Count: len(slots)}, nil
}

// Summary renders the current schedule as human-readable text.
func (s *OptimizeService) Summary(ctx context.Context) (string, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load events")
	}
	result := &models.OptimizationResult{
		Events:    events,
		Conflicts: s.engine.FindConflicts(events, s.now()),
	}
	return schedule.Summary(result), nil
}

func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
