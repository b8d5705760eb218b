package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

func TestReportSuccessRateAndSuggestions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HorizonDays = 1
	opt := NewOptimizer(cfg, nil)

	events := []models.Event{
		flexibleEvent("a", "Deep Work", 480, 1),
		flexibleEvent("b", "More Deep Work", 480, 1),
	}

	result, err := opt.Optimize(events, testNow)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Report.ScheduledCount)
	assert.InDelta(t, 0.5, result.Report.SuccessRate, 1e-9)
	assert.Contains(t, result.Report.Suggestions, "More Deep Work could not be scheduled within 1 days")
	assert.Contains(t, result.Report.Suggestions, "1 high-priority events remain unscheduled")
}

func TestReportGapSuggestion(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	morning := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	afternoon := time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC)
	events := []models.Event{
		{ID: "a", Title: "Breakfast Sync", Duration: 30, Kind: models.EventKindFlexible, ScheduledTime: &morning, IsScheduled: true},
		{ID: "b", Title: "Planning", Duration: 60, Kind: models.EventKindFlexible, ScheduledTime: &afternoon, IsScheduled: true},
	}

	report := opt.buildReport(events, nil)
	assert.Contains(t, report.Suggestions, "Large gap (270 min) between Breakfast Sync and Planning")
}

func TestSummaryListsSections(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	events := []models.Event{
		recurringEvent("math", "Math", "9:00 AM", 1, 60),
		recurringEvent("physics", "Physics", "9:30 AM", 1, 60),
		flexibleEvent("essay", "Essay", 120, 2),
	}

	result, err := opt.Optimize(events, testNow)
	require.NoError(t, err)

	summary := Summary(result)
	assert.Contains(t, summary, "Weekly Events:")
	assert.Contains(t, summary, "Math (60min) every Monday at 9:00 AM")
	assert.Contains(t, summary, "Scheduled Events:")
	assert.Contains(t, summary, "Essay")
	assert.Contains(t, summary, "Math conflicts with Physics")
}

func TestSummaryEmptyCalendar(t *testing.T) {
	summary := Summary(&models.OptimizationResult{})
	assert.Equal(t, "No events on the calendar.\n", summary)
}
