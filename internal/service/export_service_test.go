package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

func exportFixtures() []models.Event {
	monday := 1
	nine := "09:00"
	scheduled := time.Date(2026, time.January, 6, 14, 0, 0, 0, time.UTC)
	return []models.Event{
		{ID: "e1", Title: "Math Class", Duration: 60, Priority: 1, Kind: models.EventKindMandatory, DayOfWeek: &monday, FixedTime: &nine, IsScheduled: true},
		{ID: "e2", Title: "Homework", Duration: 90, Priority: 2, Kind: models.EventKindFlexible, ScheduledTime: &scheduled, IsScheduled: true},
		{ID: "e3", Title: "Reading", Duration: 30, Priority: 3, Kind: models.EventKindFlexible},
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewExportService(&stubStore{events: exportFixtures()}, nil)
	svc.now = func() time.Time { return testNow }

	out, contentType, err := svc.Render(context.Background(), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	text := string(out)
	assert.Contains(t, text, "Title,Type,Duration (min),Priority,When,Status")
	assert.Contains(t, text, "Math Class,mandatory,60,1,Every Monday at 09:00 (next 2026-01-05),scheduled")
	assert.Contains(t, text, "Homework,flexible,90,2,2026-01-06 14:00,scheduled")
	assert.Contains(t, text, "Reading,flexible,30,3,,unscheduled")
}

func TestExportNextOccurrenceRollsForward(t *testing.T) {
	svc := NewExportService(&stubStore{events: exportFixtures()}, nil)
	// Tuesday: the next Monday occurrence is six days out.
	svc.now = func() time.Time { return testNow.AddDate(0, 0, 1) }

	out, _, err := svc.Render(context.Background(), FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Every Monday at 09:00 (next 2026-01-12)")
}

func TestExportPDF(t *testing.T) {
	svc := NewExportService(&stubStore{events: exportFixtures()}, nil)

	out, contentType, err := svc.Render(context.Background(), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(&stubStore{}, nil)

	_, _, err := svc.Render(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
