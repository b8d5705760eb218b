package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

func TestMemoryEventRepositoryCreateAndList(t *testing.T) {
	repo := NewMemoryEventRepository()
	ctx := context.Background()

	first := &models.Event{Title: "First", Duration: 30, Priority: 2, Kind: models.EventKindFlexible}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)

	second := &models.Event{Title: "Second", Duration: 60, Priority: 1, Kind: models.EventKindFlexible}
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.Create(ctx, second))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "First", events[0].Title)
	assert.Equal(t, "Second", events[1].Title)
}

func TestMemoryEventRepositoryFindByID(t *testing.T) {
	repo := NewMemoryEventRepository()
	ctx := context.Background()

	event := &models.Event{Title: "Gym", Duration: 60, Priority: 3, Kind: models.EventKindFlexible}
	require.NoError(t, repo.Create(ctx, event))

	found, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gym", found.Title)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMemoryEventRepositoryDelete(t *testing.T) {
	repo := NewMemoryEventRepository()
	ctx := context.Background()

	event := &models.Event{Title: "Gym", Duration: 60, Priority: 3, Kind: models.EventKindFlexible}
	require.NoError(t, repo.Create(ctx, event))

	require.NoError(t, repo.Delete(ctx, event.ID))
	assert.ErrorIs(t, repo.Delete(ctx, event.ID), sql.ErrNoRows)

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMemoryEventRepositoryClear(t *testing.T) {
	repo := NewMemoryEventRepository()
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, &models.Event{Title: title, Duration: 30, Priority: 2, Kind: models.EventKindFlexible}))
	}
	require.NoError(t, repo.Clear(ctx))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMemoryEventRepositorySaveSchedule(t *testing.T) {
	repo := NewMemoryEventRepository()
	ctx := context.Background()

	event := &models.Event{Title: "Homework", Duration: 90, Priority: 1, Kind: models.EventKindFlexible}
	require.NoError(t, repo.Create(ctx, event))

	scheduled := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	placed := *event
	placed.ScheduledTime = &scheduled
	placed.IsScheduled = true
	require.NoError(t, repo.SaveSchedule(ctx, []models.Event{placed}))

	found, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.True(t, found.IsScheduled)
	require.NotNil(t, found.ScheduledTime)
	assert.True(t, found.ScheduledTime.Equal(scheduled))

	// Unknown ids in the batch are skipped, not an error.
	assert.NoError(t, repo.SaveSchedule(ctx, []models.Event{{ID: "ghost", IsScheduled: true}}))
}

func TestMemoryEventRepositoryListCopiesState(t *testing.T) {
	repo := NewMemoryEventRepository()
	ctx := context.Background()

	event := &models.Event{Title: "Original", Duration: 30, Priority: 2, Kind: models.EventKindFlexible}
	require.NoError(t, repo.Create(ctx, event))

	events, err := repo.List(ctx)
	require.NoError(t, err)
	events[0].Title = "Mutated"

	found, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", found.Title)
}
