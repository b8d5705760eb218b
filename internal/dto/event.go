package dto

import "time"

// CreateEventRequest is the payload producers (form, chat, import) submit.
type CreateEventRequest struct {
	Title         string     `json:"title" validate:"required"`
	Duration      int        `json:"duration" validate:"required,gt=0"`
	Priority      int        `json:"priority" validate:"omitempty,min=1,max=3"`
	Type          string     `json:"type" validate:"omitempty,oneof=flexible fixed mandatory"`
	Description   *string    `json:"description"`
	Location      *string    `json:"location"`
	DayOfWeek     *int       `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	FixedTime     *string    `json:"fixedTime"`
	EarliestStart *time.Time `json:"earliestStart"`
	LatestStart   *time.Time `json:"latestStart"`
}

// SlotsQuery filters the available-slot listing.
type SlotsQuery struct {
	Duration      int    `form:"duration"`
	EarliestStart string `form:"earliestStart"`
	LatestStart   string `form:"latestStart"`
	Limit         int    `form:"limit"`
}

// SlotsResponse lists candidate start times.
type SlotsResponse struct {
	Slots []time.Time `json:"slots"`
	Count int         `json:"count"`
}

// SummaryResponse wraps the human-readable schedule overview.
type SummaryResponse struct {
	Summary string `json:"summary"`
}
