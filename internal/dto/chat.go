package dto

// ChatRequest carries one natural-language message from the user.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// SuggestedEvent is a draft event extracted from a chat message. The client
// confirms it through the regular create-event endpoint; the optimizer never
// sees unconfirmed suggestions.
type SuggestedEvent struct {
	Title     string  `json:"title"`
	Duration  int     `json:"duration"`
	Priority  int     `json:"priority"`
	Type      string  `json:"type"`
	FixedTime *string `json:"fixedTime,omitempty"`
}

// ChatResponse is the assistant reply, optionally with a draft event.
type ChatResponse struct {
	Reply          string          `json:"reply"`
	SuggestedEvent *SuggestedEvent `json:"suggestedEvent,omitempty"`
	Action         string          `json:"action"`
}
