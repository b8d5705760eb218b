package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

func TestAvailableSlotsSkipBusyStarts(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	placed := []models.Event{
		recurringEvent("class", "Class", "9:00 AM", 1, 60),
	}

	slots := opt.AvailableSlots(60, nil, nil, placed, testNow, 4)
	require.Len(t, slots, 4)

	// 09:00 and 09:30 collide with the class; listing resumes at 10:00 and
	// offers every later start as an alternative.
	expected := []time.Time{
		testNow.Add(1 * time.Hour),
		testNow.Add(90 * time.Minute),
		testNow.Add(2 * time.Hour),
		testNow.Add(150 * time.Minute),
	}
	assert.Equal(t, expected, slots)
}

func TestAvailableSlotsRespectsWorkingBandEnd(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	// A three-hour task can start no later than 17:00.
	slots := opt.AvailableSlots(180, nil, nil, nil, testNow, 100)
	for _, s := range slots {
		endMinutes := s.Hour()*60 + s.Minute() + 180
		assert.LessOrEqual(t, endMinutes, 20*60, "slot %s runs past working hours", s)
	}
}

func TestAvailableSlotsWeekendsSkipped(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	friday := time.Date(2026, time.January, 9, 17, 0, 0, 0, time.UTC)
	require.Equal(t, time.Friday, friday.Weekday())

	slots := opt.AvailableSlots(60, nil, nil, nil, friday, 200)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.NotEqual(t, time.Saturday, s.Weekday())
		assert.NotEqual(t, time.Sunday, s.Weekday())
	}
	// Friday evening still has 17:00..19:00 starts, then Monday follows.
	assert.Equal(t, friday, slots[0])
}

func TestAvailableSlotsExplicitWindow(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	earliest := time.Date(2026, time.January, 6, 10, 0, 0, 0, time.UTC)
	latest := earliest.Add(2 * time.Hour)

	slots := opt.AvailableSlots(60, &earliest, &latest, nil, testNow, 10)
	assert.Equal(t, []time.Time{
		earliest,
		earliest.Add(30 * time.Minute),
		earliest.Add(time.Hour),
	}, slots, "candidates step from earliestStart and must finish by latestStart")
}

func TestAvailableSlotsWeekendSkipDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipWeekends = false
	opt := NewOptimizer(cfg, nil)

	saturday := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	require.Equal(t, time.Saturday, saturday.Weekday())

	slots := opt.AvailableSlots(60, nil, nil, nil, saturday, 1)
	require.Len(t, slots, 1)
	assert.Equal(t, saturday, slots[0])
}

func TestFindSlotStartsFromNowNotWorkStart(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	afternoon := time.Date(2026, time.January, 5, 15, 10, 0, 0, time.UTC)
	start, ok := opt.findSlot(models.Event{Duration: 60, Kind: models.EventKindFlexible}, nil, afternoon)
	require.True(t, ok)
	assert.Equal(t, afternoon.Add(20*time.Minute), start, "first candidate rounds now up to the slot grid")
}

func TestFindSlotRollsToNextDayWhenTodayIsFull(t *testing.T) {
	opt := NewOptimizer(DefaultConfig(), nil)

	lateEvening := time.Date(2026, time.January, 5, 19, 45, 0, 0, time.UTC)
	start, ok := opt.findSlot(models.Event{Duration: 120, Kind: models.EventKindFlexible}, nil, lateEvening)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, time.January, 6, 8, 0, 0, 0, time.UTC), start)
}
