package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	"github.com/MatthewMo520/CalendarOptimizer/internal/schedule"
)

// ChatService turns a natural-language message into a draft event using
// keyword matching. The draft is only a suggestion; the client submits it
// through the regular create-event endpoint once confirmed.
type ChatService struct {
	logger *zap.Logger
}

// NewChatService constructs a chat service.
func NewChatService(logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{logger: logger}
}

var (
	durationPattern = regexp.MustCompile(`(\d+)\s*(hours?|hrs?|h|minutes?|mins?|m)`)

	meridiemClockPattern = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*([ap]m)\b`)
	plainClockPattern    = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
)

var (
	chatSubjects   = []string{"math", "science", "english", "history", "chemistry", "physics", "programming", "coding"}
	chatActivities = []string{"study", "meeting", "class", "lecture", "review", "practice", "workout", "exercise"}
)

const chatHelpReply = "I'd be happy to help you add events! Try saying something like:\n" +
	"- 'I need to study math for 2 hours'\n" +
	"- 'Schedule a meeting at 3 PM tomorrow'\n" +
	"- 'Add my chemistry class every Monday at 9 AM'"

// Reply parses one message and answers with either a draft event or usage
// guidance.
func (s *ChatService) Reply(req dto.ChatRequest) *dto.ChatResponse {
	message := strings.ToLower(req.Message)

	suggested, ok := parseMessage(message)
	if !ok {
		return &dto.ChatResponse{Reply: chatHelpReply, Action: "info"}
	}

	s.logger.Debug("chat_suggestion", zap.String("title", suggested.Title), zap.Int("duration", suggested.Duration))
	return &dto.ChatResponse{
		Reply: fmt.Sprintf("I understand you want to add: %q\nDuration: %d minutes\nShall I add this to your calendar?",
			suggested.Title, suggested.Duration),
		SuggestedEvent: suggested,
		Action:         "create_event",
	}
}

// parseMessage extracts a draft event from a lowercased message. It reports
// false when the message carries no recognisable scheduling signal.
func parseMessage(message string) (*dto.SuggestedEvent, bool) {
	duration := 60
	hasDuration := false
	if m := durationPattern.FindStringSubmatch(message); m != nil {
		value, _ := strconv.Atoi(m[1])
		if strings.HasPrefix(m[2], "h") {
			duration = value * 60
		} else {
			duration = value
		}
		hasDuration = true
	}

	var subject, activity string
	for _, s := range chatSubjects {
		if strings.Contains(message, s) {
			subject = capitalize(s)
			break
		}
	}
	for _, a := range chatActivities {
		if strings.Contains(message, a) {
			activity = capitalize(a)
			break
		}
	}
	if !hasDuration && subject == "" && activity == "" {
		return nil, false
	}

	title := "Study Session"
	switch {
	case activity != "" && subject != "":
		title = activity + " " + subject
	case subject != "":
		title = "Study " + subject
	case activity != "":
		title = activity
	}

	// Priority 1 is highest.
	priority := 2
	if containsAny(message, "urgent", "important", "asap", "critical") {
		priority = 1
	} else if containsAny(message, "low", "optional", "maybe") {
		priority = 3
	}

	// Anchored kinds need a wall-clock time the create endpoint will accept;
	// without one the draft stays flexible regardless of keywords.
	fixedTime := parseClock(message)
	kind := models.EventKindFlexible
	if fixedTime != nil {
		if containsAny(message, "class", "lecture", "mandatory", "must") {
			kind = models.EventKindMandatory
		} else {
			kind = models.EventKindFixed
		}
	}

	return &dto.SuggestedEvent{
		Title:     title,
		Duration:  duration,
		Priority:  priority,
		Type:      string(kind),
		FixedTime: fixedTime,
	}, true
}

// parseClock extracts the first wall-clock time in the message, normalised to
// a form the event validator's time parser accepts.
func parseClock(message string) *string {
	if m := meridiemClockPattern.FindStringSubmatch(message); m != nil {
		minute := m[2]
		if minute == "" {
			minute = "00"
		}
		clock := fmt.Sprintf("%s:%s %s", m[1], minute, strings.ToUpper(m[3]))
		if _, _, err := schedule.ParseWallClock(clock); err == nil {
			return &clock
		}
		return nil
	}
	if m := plainClockPattern.FindStringSubmatch(message); m != nil {
		clock := fmt.Sprintf("%s:%s", m[1], m[2])
		if _, _, err := schedule.ParseWallClock(clock); err == nil {
			return &clock
		}
	}
	return nil
}

func containsAny(message string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(message, w) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
