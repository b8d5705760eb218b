package schedule

import (
	"time"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

// blocked reports whether the candidate interval [start, end) collides with
// any occupied footprint. Recurring footprints project onto the candidate's
// calendar day when the weekday matches.
func blocked(start, end time.Time, occupied []occupation) bool {
	day := midnight(start)
	for _, occ := range occupied {
		if occ.recurring {
			if int(start.Weekday()) != occ.weekday {
				continue
			}
			occStart := day.Add(time.Duration(occ.startMin) * time.Minute)
			occEnd := day.Add(time.Duration(occ.endMin) * time.Minute)
			if Overlaps(start, end, occStart, occEnd) {
				return true
			}
			continue
		}
		if Overlaps(start, end, occ.start, occ.end) {
			return true
		}
	}
	return false
}

// findSlot searches for the earliest non-conflicting start time for a
// flexible event. It walks candidates chronologically at the configured
// granularity, so identical inputs always yield the identical slot. The
// second return value is false when the horizon holds no free slot, which is
// a normal outcome, not an error.
func (o *Optimizer) findSlot(e models.Event, occupied []occupation, now time.Time) (time.Time, bool) {
	duration := time.Duration(e.Duration) * time.Minute
	slot := time.Duration(o.cfg.SlotMinutes) * time.Minute

	if e.EarliestStart != nil && e.LatestStart != nil {
		// The caller-supplied window is authoritative: candidates step from
		// earliestStart and the whole occupied interval must fit before
		// latestStart. Weekend skipping still applies.
		for cand := *e.EarliestStart; !cand.Add(duration).After(*e.LatestStart); cand = cand.Add(slot) {
			if o.cfg.SkipWeekends && isWeekend(cand) {
				continue
			}
			if !blocked(cand, cand.Add(duration), occupied) {
				return cand, true
			}
		}
		return time.Time{}, false
	}

	for offset := 0; offset < o.cfg.HorizonDays; offset++ {
		day := midnight(now).AddDate(0, 0, offset)
		if o.cfg.SkipWeekends && isWeekend(day) {
			continue
		}

		dayStart := day.Add(time.Duration(o.cfg.WorkStartHour) * time.Hour)
		dayEnd := day.Add(time.Duration(o.cfg.WorkEndHour) * time.Hour)
		if offset == 0 {
			if from := ceilToSlot(now, o.cfg.SlotMinutes); from.After(dayStart) {
				dayStart = from
			}
		}

		for cand := dayStart; !cand.Add(duration).After(dayEnd); cand = cand.Add(slot) {
			if e.EarliestStart != nil && cand.Before(*e.EarliestStart) {
				continue
			}
			if e.LatestStart != nil && cand.After(*e.LatestStart) {
				break
			}
			if !blocked(cand, cand.Add(duration), occupied) {
				return cand, true
			}
		}
	}

	return time.Time{}, false
}

// AvailableSlots lists every free start time for an event of the given
// duration, in the same candidate order findSlot uses. Consecutive slots may
// overlap each other; they are alternatives, not a packing. A zero limit
// defaults to one working day's worth of slots.
func (o *Optimizer) AvailableSlots(durationMinutes int, earliest, latest *time.Time, placed []models.Event, now time.Time, limit int) []time.Time {
	if limit <= 0 {
		limit = (o.cfg.WorkEndHour - o.cfg.WorkStartHour) * 60 / o.cfg.SlotMinutes
	}

	occupied := make([]occupation, 0, len(placed))
	for _, e := range placed {
		if occ, ok := resolveOccupation(e, now); ok {
			occupied = append(occupied, occ)
		}
	}

	duration := time.Duration(durationMinutes) * time.Minute
	slot := time.Duration(o.cfg.SlotMinutes) * time.Minute
	slots := make([]time.Time, 0, limit)

	if earliest != nil && latest != nil {
		for cand := *earliest; !cand.Add(duration).After(*latest) && len(slots) < limit; cand = cand.Add(slot) {
			if o.cfg.SkipWeekends && isWeekend(cand) {
				continue
			}
			if !blocked(cand, cand.Add(duration), occupied) {
				slots = append(slots, cand)
			}
		}
		return slots
	}

	for offset := 0; offset < o.cfg.HorizonDays && len(slots) < limit; offset++ {
		day := midnight(now).AddDate(0, 0, offset)
		if o.cfg.SkipWeekends && isWeekend(day) {
			continue
		}

		dayStart := day.Add(time.Duration(o.cfg.WorkStartHour) * time.Hour)
		dayEnd := day.Add(time.Duration(o.cfg.WorkEndHour) * time.Hour)
		if offset == 0 {
			if from := ceilToSlot(now, o.cfg.SlotMinutes); from.After(dayStart) {
				dayStart = from
			}
		}

		for cand := dayStart; !cand.Add(duration).After(dayEnd) && len(slots) < limit; cand = cand.Add(slot) {
			if !blocked(cand, cand.Add(duration), occupied) {
				slots = append(slots, cand)
			}
		}
	}
	return slots
}
