package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	"github.com/MatthewMo520/CalendarOptimizer/internal/schedule"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

// resultCacheKey holds the latest optimization result. Every event mutation
// invalidates it.
const resultCacheKey = "optimizer:result:latest"

// EventStore is the persistence surface the services depend on.
type EventStore interface {
	List(ctx context.Context) ([]models.Event, error)
	FindByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	SaveSchedule(ctx context.Context, events []models.Event) error
}

// ResultCache caches serialized optimization output.
type ResultCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// EventService manages the event collection.
type EventService struct {
	store    EventStore
	cache    ResultCache
	validate *validator.Validate
	logger   *zap.Logger
}

// NewEventService constructs an event service. cache may be nil when result
// caching is disabled.
func NewEventService(store EventStore, cache ResultCache, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{
		store:    store,
		cache:    cache,
		validate: validator.New(),
		logger:   logger,
	}
}

// List returns all events in creation order.
func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}

// Create validates and stores a new event.
func (s *EventService) Create(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid event payload")
	}
	// Mirror the engine's batch rule here: an anchored event without a
	// fixedTime would poison every later optimization pass.
	anchored := req.Type == string(models.EventKindFixed) ||
		req.Type == string(models.EventKindMandatory) ||
		req.DayOfWeek != nil
	if anchored && req.FixedTime == nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "fixed, mandatory and recurring events require fixedTime")
	}
	if req.FixedTime != nil {
		if _, _, err := schedule.ParseWallClock(*req.FixedTime); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid fixedTime %q", *req.FixedTime))
		}
	}
	if req.EarliestStart != nil && req.LatestStart != nil && !req.LatestStart.After(*req.EarliestStart) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "latestStart must be after earliestStart")
	}

	event := models.Event{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		Duration:      req.Duration,
		Priority:      req.Priority,
		Kind:          models.EventKind(req.Type),
		DayOfWeek:     req.DayOfWeek,
		FixedTime:     req.FixedTime,
		EarliestStart: req.EarliestStart,
		LatestStart:   req.LatestStart,
	}
	if event.Priority == 0 {
		event.Priority = 2
	}
	if event.Kind == "" {
		event.Kind = models.EventKindFlexible
	}

	if err := s.store.Create(ctx, &event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	s.invalidateResult(ctx)
	s.logger.Info("event_created", zap.String("id", event.ID), zap.String("title", event.Title))
	return &event, nil
}

// Delete removes an event by id.
func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("event %s not found", id))
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete event")
	}
	s.invalidateResult(ctx)
	s.logger.Info("event_deleted", zap.String("id", id))
	return nil
}

// Clear removes every event.
func (s *EventService) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear events")
	}
	s.invalidateResult(ctx)
	s.logger.Info("events_cleared")
	return nil
}

func (s *EventService) invalidateResult(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, resultCacheKey); err != nil {
		s.logger.Warn("result_cache_invalidation_failed", zap.Error(err))
	}
}
