package models

import "time"

// EventKind discriminates the placement strategy for an event.
type EventKind string

const (
	// EventKindFlexible events are placed by the optimizer anywhere within
	// their window (or the default search horizon).
	EventKindFlexible EventKind = "flexible"
	// EventKindFixed events happen once at an exact wall-clock time.
	EventKindFixed EventKind = "fixed"
	// EventKindMandatory events behave like fixed ones and may additionally
	// recur weekly when DayOfWeek is set.
	EventKindMandatory EventKind = "mandatory"
)

// Event is the unit of schedulable work. Field names follow the JSON wire
// shape consumed by the calendar clients.
type Event struct {
	ID            string     `db:"id" json:"id"`
	Title         string     `db:"title" json:"title"`
	Description   *string    `db:"description" json:"description,omitempty"`
	Location      *string    `db:"location" json:"location,omitempty"`
	Duration      int        `db:"duration" json:"duration"`
	Priority      int        `db:"priority" json:"priority"`
	Kind          EventKind  `db:"kind" json:"type"`
	DayOfWeek     *int       `db:"day_of_week" json:"dayOfWeek,omitempty"`
	FixedTime     *string    `db:"fixed_time" json:"fixedTime,omitempty"`
	EarliestStart *time.Time `db:"earliest_start" json:"earliestStart,omitempty"`
	LatestStart   *time.Time `db:"latest_start" json:"latestStart,omitempty"`
	ScheduledTime *time.Time `db:"scheduled_time" json:"scheduledTime,omitempty"`
	IsScheduled   bool       `db:"is_scheduled" json:"isScheduled"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// Anchored reports whether the optimizer must honor the event's time as-is.
// Fixed and mandatory events are anchored, as is anything carrying an
// explicit recurrence weekday.
func (e Event) Anchored() bool {
	return e.Kind == EventKindFixed || e.Kind == EventKindMandatory || e.DayOfWeek != nil
}

// Recurring reports whether the event repeats weekly on DayOfWeek.
func (e Event) Recurring() bool {
	return e.DayOfWeek != nil && e.FixedTime != nil
}

// Conflict is a detected pairwise overlap between two occupied intervals.
// Conflicts are derived on demand, never stored.
type Conflict struct {
	Event1ID    string     `json:"event1Id"`
	Event2ID    string     `json:"event2Id"`
	Event1Title string     `json:"event1"`
	Event2Title string     `json:"event2"`
	Event1Time  *time.Time `json:"event1Time,omitempty"`
	Event2Time  *time.Time `json:"event2Time,omitempty"`
	DayOfWeek   *int       `json:"dayOfWeek,omitempty"`
}

// OptimizationReport summarises an optimization pass.
type OptimizationReport struct {
	ScheduledCount int      `json:"scheduledCount"`
	TotalCount     int      `json:"totalCount"`
	ConflictsCount int      `json:"conflictsCount"`
	SuccessRate    float64  `json:"successRate"`
	Suggestions    []string `json:"suggestions"`
}

// OptimizationResult is the full output of one optimization pass.
type OptimizationResult struct {
	Events    []Event            `json:"events"`
	Conflicts []Conflict         `json:"conflicts"`
	Report    OptimizationReport `json:"report"`
}
