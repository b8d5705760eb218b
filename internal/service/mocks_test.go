package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

// testNow is a Monday morning, comfortably inside working hours.
var testNow = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

// stubStore is a scriptable EventStore for service tests.
type stubStore struct {
	events      []models.Event
	listErr     error
	createErr   error
	deleteErr   error
	clearErr    error
	saveErr     error
	saved       []models.Event
	deletedIDs  []string
	clearCalled bool
}

func (s *stubStore) List(context.Context) ([]models.Event, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.events, nil
}

func (s *stubStore) FindByID(_ context.Context, id string) (*models.Event, error) {
	for i := range s.events {
		if s.events[i].ID == id {
			return &s.events[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

func (s *stubStore) Create(_ context.Context, event *models.Event) error {
	if s.createErr != nil {
		return s.createErr
	}
	if event.ID == "" {
		event.ID = "generated-id"
	}
	s.events = append(s.events, *event)
	return nil
}

func (s *stubStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedIDs = append(s.deletedIDs, id)
	return nil
}

func (s *stubStore) Clear(context.Context) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	s.clearCalled = true
	s.events = nil
	return nil
}

func (s *stubStore) SaveSchedule(_ context.Context, events []models.Event) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = events
	return nil
}

// stubCache is an in-memory ResultCache recording invalidations.
type stubCache struct {
	values  map[string][]byte
	deleted []string
	setErr  error
}

func newStubCache() *stubCache {
	return &stubCache{values: map[string][]byte{}}
}

func (c *stubCache) Get(_ context.Context, key string, dest interface{}) error {
	data, ok := c.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *stubCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *stubCache) Delete(_ context.Context, key string) error {
	c.deleted = append(c.deleted, key)
	delete(c.values, key)
	return nil
}
