package schedule

import (
	"time"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

// occupation is the concrete time footprint of an event. Recurring events
// occupy a minute-of-day span on a weekday; one-off events occupy an
// absolute interval.
type occupation struct {
	event     models.Event
	recurring bool

	weekday  int
	startMin int
	endMin   int

	start time.Time
	end   time.Time
}

// resolveOccupation derives the footprint of an event, if it has one.
// Flexible events without a scheduled time have no footprint yet.
func resolveOccupation(e models.Event, now time.Time) (occupation, bool) {
	if e.Recurring() {
		hour, minute, err := ParseWallClock(*e.FixedTime)
		if err != nil {
			return occupation{}, false
		}
		start := minutesOfDay(hour, minute)
		return occupation{
			event:     e,
			recurring: true,
			weekday:   *e.DayOfWeek,
			startMin:  start,
			endMin:    start + e.Duration,
		}, true
	}

	if e.ScheduledTime != nil {
		start := *e.ScheduledTime
		return occupation{event: e, start: start, end: start.Add(time.Duration(e.Duration) * time.Minute)}, true
	}

	// Anchored one-off without a resolved time yet: fixedTime implies today.
	if e.Anchored() && e.FixedTime != nil {
		hour, minute, err := ParseWallClock(*e.FixedTime)
		if err != nil {
			return occupation{}, false
		}
		start := midnight(now).Add(time.Duration(minutesOfDay(hour, minute)) * time.Minute)
		return occupation{event: e, start: start, end: start.Add(time.Duration(e.Duration) * time.Minute)}, true
	}

	return occupation{}, false
}

// conflictsWith applies the pair rules: recurring events collide on a shared
// weekday, a recurring and a one-off event collide when the one-off date
// lands on that weekday, and two one-off events collide only on the same
// calendar date.
func (o occupation) conflictsWith(other occupation) bool {
	switch {
	case o.recurring && other.recurring:
		return o.weekday == other.weekday &&
			minuteSpansOverlap(o.startMin, o.endMin, other.startMin, other.endMin)
	case o.recurring:
		return other.conflictsWith(o)
	case other.recurring:
		if int(o.start.Weekday()) != other.weekday {
			return false
		}
		startMin := minutesOfDay(o.start.Hour(), o.start.Minute())
		return minuteSpansOverlap(startMin, startMin+o.event.Duration, other.startMin, other.endMin)
	default:
		return sameDate(o.start, other.start) && Overlaps(o.start, o.end, other.start, other.end)
	}
}

// FindConflicts reports every overlapping pair among concretely-timed events:
// anchored events and flexible events that already carry a scheduled time.
// Pairs are unordered and never duplicated. The scan is O(n²), which is fine
// for the tens-to-hundreds of events a personal calendar holds.
func (o *Optimizer) FindConflicts(events []models.Event, now time.Time) []models.Conflict {
	occupations := make([]occupation, 0, len(events))
	for _, e := range events {
		if occ, ok := resolveOccupation(e, now); ok {
			occupations = append(occupations, occ)
		}
	}

	conflicts := make([]models.Conflict, 0)
	for i := 0; i < len(occupations); i++ {
		for j := i + 1; j < len(occupations); j++ {
			if occupations[i].conflictsWith(occupations[j]) {
				conflicts = append(conflicts, newConflict(occupations[i], occupations[j]))
			}
		}
	}
	return conflicts
}

func newConflict(a, b occupation) models.Conflict {
	c := models.Conflict{
		Event1ID:    a.event.ID,
		Event2ID:    b.event.ID,
		Event1Title: a.event.Title,
		Event2Title: b.event.Title,
	}
	if !a.recurring {
		start := a.start
		c.Event1Time = &start
	}
	if !b.recurring {
		start := b.start
		c.Event2Time = &start
	}
	if a.recurring {
		weekday := a.weekday
		c.DayOfWeek = &weekday
	} else if b.recurring {
		weekday := b.weekday
		c.DayOfWeek = &weekday
	}
	return c
}
