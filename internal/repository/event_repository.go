package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

// EventRepository persists events in PostgreSQL.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository constructs an event repository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, location, duration, priority, kind, day_of_week, fixed_time, earliest_start, latest_start, scheduled_time, is_scheduled, created_at, updated_at`

// List returns every event in creation order. Creation order matters: it is
// the priority tie-break the optimizer relies on.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY created_at ASC, id ASC`, eventColumns)
	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// FindByID fetches a single event.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)
	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create inserts an event.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	event.UpdatedAt = now
	query := `INSERT INTO events (id, title, description, location, duration, priority, kind, day_of_week, fixed_time, earliest_start, latest_start, scheduled_time, is_scheduled, created_at, updated_at)
VALUES (:id, :title, :description, :location, :duration, :priority, :kind, :day_of_week, :fixed_time, :earliest_start, :latest_start, :scheduled_time, :is_scheduled, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// Delete removes an event, reporting sql.ErrNoRows for unknown ids.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Clear removes every event.
func (r *EventRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("clear events: %w", err)
	}
	return nil
}

// SaveSchedule writes the placement outcome of an optimization pass back in
// one transaction, so readers never observe a half-applied schedule.
func (r *EventRepository) SaveSchedule(ctx context.Context, events []models.Event) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schedule update: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC()
	for i := range events {
		if _, err = tx.ExecContext(ctx,
			`UPDATE events SET scheduled_time = $1, is_scheduled = $2, updated_at = $3 WHERE id = $4`,
			events[i].ScheduledTime, events[i].IsScheduled, now, events[i].ID,
		); err != nil {
			return fmt.Errorf("update event schedule %s: %w", events[i].ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit schedule update: %w", err)
	}
	return nil
}
