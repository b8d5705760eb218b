package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

func TestEventServiceCreateAppliesDefaults(t *testing.T) {
	store := &stubStore{}
	cache := newStubCache()
	svc := NewEventService(store, cache, nil)

	event, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Title:    "Homework",
		Duration: 90,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, event.Priority)
	assert.Equal(t, models.EventKindFlexible, event.Kind)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, []string{"optimizer:result:latest"}, cache.deleted)
}

func TestEventServiceCreateRejectsMissingTitle(t *testing.T) {
	svc := NewEventService(&stubStore{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateEventRequest{Duration: 30})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceCreateRejectsBadFixedTime(t *testing.T) {
	svc := NewEventService(&stubStore{}, nil, nil)

	bad := "25:99"
	_, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Title:     "Class",
		Duration:  60,
		Type:      "fixed",
		FixedTime: &bad,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceCreateRejectsAnchoredWithoutFixedTime(t *testing.T) {
	svc := NewEventService(&stubStore{}, nil, nil)

	monday := 1
	cases := []dto.CreateEventRequest{
		{Title: "Meeting", Duration: 60, Type: "fixed"},
		{Title: "Class", Duration: 60, Type: "mandatory"},
		{Title: "Standup", Duration: 30, DayOfWeek: &monday},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), req)
		require.Error(t, err, req.Title)
		assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	}
}

func TestEventServiceCreateRejectsInvertedWindow(t *testing.T) {
	svc := NewEventService(&stubStore{}, nil, nil)

	earliest := testNow.Add(2 * time.Hour)
	latest := testNow
	_, err := svc.Create(context.Background(), dto.CreateEventRequest{
		Title:         "Deep Work",
		Duration:      60,
		EarliestStart: &earliest,
		LatestStart:   &latest,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestEventServiceDeleteMapsMissingRows(t *testing.T) {
	store := &stubStore{deleteErr: sql.ErrNoRows}
	svc := NewEventService(store, nil, nil)

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestEventServiceDeleteInvalidatesCache(t *testing.T) {
	store := &stubStore{}
	cache := newStubCache()
	svc := NewEventService(store, cache, nil)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
	assert.Equal(t, []string{"e1"}, store.deletedIDs)
	assert.Equal(t, []string{"optimizer:result:latest"}, cache.deleted)
}

func TestEventServiceClear(t *testing.T) {
	store := &stubStore{events: []models.Event{{ID: "e1"}}}
	cache := newStubCache()
	svc := NewEventService(store, cache, nil)

	require.NoError(t, svc.Clear(context.Background()))
	assert.True(t, store.clearCalled)
	assert.Equal(t, []string{"optimizer:result:latest"}, cache.deleted)
}
