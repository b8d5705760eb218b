package repository

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

// MemoryEventRepository keeps events in process memory. It backs the API when
// no database is configured and mirrors the SQL repository's contract,
// including sql.ErrNoRows on misses.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	events map[string]models.Event
}

// NewMemoryEventRepository constructs an empty in-memory store.
func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{events: make(map[string]models.Event)}
}

func (r *MemoryEventRepository) List(_ context.Context) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, e)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		}
		return events[i].ID < events[j].ID
	})
	return events, nil
}

func (r *MemoryEventRepository) FindByID(_ context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &e, nil
}

func (r *MemoryEventRepository) Create(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryEventRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.events, id)
	return nil
}

func (r *MemoryEventRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = make(map[string]models.Event)
	return nil
}

func (r *MemoryEventRepository) SaveSchedule(_ context.Context, events []models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for i := range events {
		stored, ok := r.events[events[i].ID]
		if !ok {
			continue
		}
		stored.ScheduledTime = events[i].ScheduledTime
		stored.IsScheduled = events[i].IsScheduled
		stored.UpdatedAt = now
		r.events[stored.ID] = stored
	}
	return nil
}
