package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

var wallClockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)

// ParseWallClock parses "H:MM" or "HH:MM" with an optional AM/PM suffix
// (case-insensitive). 12 AM maps to hour 0, 12 PM stays 12.
func ParseWallClock(s string) (hour, minute int, err error) {
	m := wallClockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid time %q, expected H:MM or HH:MM with optional AM/PM", s))
	}

	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	if meridiem := strings.ToUpper(m[3]); meridiem != "" {
		if hour < 1 || hour > 12 {
			return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("invalid 12h hour in %q", s))
		}
		if hour == 12 {
			hour = 0
		}
		if meridiem == "PM" {
			hour += 12
		}
	}

	if hour > 23 || minute > 59 {
		return 0, 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("time %q out of range", s))
	}
	return hour, minute, nil
}

// Overlaps reports whether two half-open intervals [startA, endA) and
// [startB, endB) intersect. Touching endpoints do not conflict.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return !(!endA.After(startB) || !endB.After(startA))
}

// NextWeekday returns the smallest date >= from whose weekday equals target
// (0=Sunday..6=Saturday). from itself is returned when it already matches.
func NextWeekday(from time.Time, target int) time.Time {
	delta := (target - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, delta)
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDate reports whether two instants fall on the same calendar date.
func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// isWeekend reports whether t falls on Saturday or Sunday.
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// minutesOfDay returns minutes elapsed since midnight for a wall-clock pair.
func minutesOfDay(hour, minute int) int {
	return hour*60 + minute
}

// ceilToSlot rounds t up to the next multiple of slot minutes from midnight.
// Instants already on a boundary are returned unchanged.
func ceilToSlot(t time.Time, slotMinutes int) time.Time {
	base := midnight(t)
	slot := time.Duration(slotMinutes) * time.Minute
	elapsed := t.Sub(base)
	steps := (elapsed + slot - 1) / slot
	return base.Add(steps * slot)
}

// minuteSpansOverlap checks two half-open minute-of-day spans for overlap.
// Spans may extend past midnight for long durations.
func minuteSpansOverlap(startA, endA, startB, endB int) bool {
	return !(endA <= startB || endB <= startA)
}
