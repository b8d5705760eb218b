package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
)

const highestPriority = 1

// buildReport summarises one optimization pass.
func (o *Optimizer) buildReport(events []models.Event, conflicts []models.Conflict) models.OptimizationReport {
	report := models.OptimizationReport{
		TotalCount:     len(events),
		ConflictsCount: len(conflicts),
		Suggestions:    []string{},
	}

	unscheduledHighPriority := 0
	for _, e := range events {
		if e.IsScheduled {
			report.ScheduledCount++
			continue
		}
		if e.EarliestStart != nil && e.LatestStart != nil {
			report.Suggestions = append(report.Suggestions,
				fmt.Sprintf("%s could not be scheduled within its window", e.Title))
		} else {
			report.Suggestions = append(report.Suggestions,
				fmt.Sprintf("%s could not be scheduled within %d days", e.Title, o.cfg.HorizonDays))
		}
		if e.Priority == highestPriority {
			unscheduledHighPriority++
		}
	}

	if unscheduledHighPriority > 0 {
		report.Suggestions = append(report.Suggestions,
			fmt.Sprintf("%d high-priority events remain unscheduled", unscheduledHighPriority))
	}
	report.Suggestions = append(report.Suggestions, gapSuggestions(events)...)

	if report.TotalCount > 0 {
		report.SuccessRate = float64(report.ScheduledCount) / float64(report.TotalCount)
	}
	return report
}

// gapSuggestions flags idle stretches longer than an hour between
// consecutive one-off events on the same day.
func gapSuggestions(events []models.Event) []string {
	timed := make([]models.Event, 0, len(events))
	for _, e := range events {
		if e.ScheduledTime != nil {
			timed = append(timed, e)
		}
	}
	sort.Slice(timed, func(a, b int) bool {
		return timed[a].ScheduledTime.Before(*timed[b].ScheduledTime)
	})

	suggestions := []string{}
	for i := 0; i+1 < len(timed); i++ {
		current := timed[i]
		next := timed[i+1]
		if !sameDate(*current.ScheduledTime, *next.ScheduledTime) {
			continue
		}
		currentEnd := current.ScheduledTime.Add(time.Duration(current.Duration) * time.Minute)
		gap := next.ScheduledTime.Sub(currentEnd)
		if gap > time.Hour {
			suggestions = append(suggestions,
				fmt.Sprintf("Large gap (%d min) between %s and %s", int(gap.Minutes()), current.Title, next.Title))
		}
	}
	return suggestions
}

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Summary renders a human-readable schedule overview: placed events in
// chronological order, recurring events by weekday, then what remains
// unscheduled and any conflicts.
func Summary(result *models.OptimizationResult) string {
	var b strings.Builder

	scheduled := make([]models.Event, 0, len(result.Events))
	recurring := make([]models.Event, 0)
	unscheduled := make([]models.Event, 0)
	for _, e := range result.Events {
		switch {
		case e.Recurring():
			recurring = append(recurring, e)
		case e.ScheduledTime != nil:
			scheduled = append(scheduled, e)
		default:
			unscheduled = append(unscheduled, e)
		}
	}
	sort.Slice(scheduled, func(a, b int) bool {
		return scheduled[a].ScheduledTime.Before(*scheduled[b].ScheduledTime)
	})

	if len(scheduled) > 0 {
		b.WriteString("Scheduled Events:\n")
		for _, e := range scheduled {
			fmt.Fprintf(&b, "  %s (%dmin) at %s\n", e.Title, e.Duration, e.ScheduledTime.Format("2006-01-02 15:04"))
		}
	}

	if len(recurring) > 0 {
		b.WriteString("\nWeekly Events:\n")
		for _, e := range recurring {
			fmt.Fprintf(&b, "  %s (%dmin) every %s at %s\n", e.Title, e.Duration, weekdayNames[*e.DayOfWeek], *e.FixedTime)
		}
	}

	if len(unscheduled) > 0 {
		fmt.Fprintf(&b, "\nUnscheduled Events (%d):\n", len(unscheduled))
		for _, e := range unscheduled {
			fmt.Fprintf(&b, "  %s (%dmin)\n", e.Title, e.Duration)
		}
	}

	if len(result.Conflicts) > 0 {
		fmt.Fprintf(&b, "\nConflicts (%d):\n", len(result.Conflicts))
		for _, c := range result.Conflicts {
			fmt.Fprintf(&b, "  %s conflicts with %s\n", c.Event1Title, c.Event2Title)
		}
	}

	if b.Len() == 0 {
		return "No events on the calendar.\n"
	}
	return b.String()
}
