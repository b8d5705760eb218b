package schedule

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

// Config holds the scheduling constants for one engine instance. Values come
// from application configuration, never from call sites.
type Config struct {
	HorizonDays   int
	WorkStartHour int
	WorkEndHour   int
	SlotMinutes   int
	SkipWeekends  bool
}

// DefaultConfig mirrors the application defaults: a 14-day horizon,
// 08:00-20:00 working band, 30-minute slots, weekdays only.
func DefaultConfig() Config {
	return Config{
		HorizonDays:   14,
		WorkStartHour: 8,
		WorkEndHour:   20,
		SlotMinutes:   30,
		SkipWeekends:  true,
	}
}

// Optimizer is the schedule optimization engine. It is a pure function of
// its input event list, the reference instant and the fixed configuration:
// it holds no state between calls and is safe for concurrent use across
// independent event collections.
type Optimizer struct {
	cfg    Config
	logger *zap.Logger
}

// NewOptimizer builds an engine, filling zero config fields with defaults.
func NewOptimizer(cfg Config, logger *zap.Logger) *Optimizer {
	def := DefaultConfig()
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = def.HorizonDays
	}
	if cfg.SlotMinutes <= 0 {
		cfg.SlotMinutes = def.SlotMinutes
	}
	if cfg.WorkEndHour <= cfg.WorkStartHour {
		cfg.WorkStartHour = def.WorkStartHour
		cfg.WorkEndHour = def.WorkEndHour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{cfg: cfg, logger: logger}
}

// Config exposes the engine constants, mainly for report text.
func (o *Optimizer) Config() Config {
	return o.cfg
}

// Optimize runs one scheduling pass: anchored events keep their times,
// flexible events are placed greedily in priority order (input order breaks
// ties), and remaining conflicts among anchored events are reported, never
// repaired. The input slice is not mutated.
func (o *Optimizer) Optimize(events []models.Event, now time.Time) (*models.OptimizationResult, error) {
	if err := o.validate(events); err != nil {
		return nil, err
	}

	out := make([]models.Event, len(events))
	copy(out, events)

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return out[order[a]].Priority < out[order[b]].Priority
	})

	occupied := make([]occupation, 0, len(out))

	// Seed with anchored events and flexible events that already carry a
	// scheduled time; re-optimizing previous output must not move them.
	for _, i := range order {
		e := &out[i]
		switch {
		case e.Anchored():
			e.IsScheduled = true
			if !e.Recurring() && e.FixedTime != nil && e.ScheduledTime == nil {
				hour, minute, _ := ParseWallClock(*e.FixedTime)
				start := midnight(now).Add(time.Duration(minutesOfDay(hour, minute)) * time.Minute)
				e.ScheduledTime = &start
			}
		case e.ScheduledTime != nil:
			e.IsScheduled = true
		default:
			continue
		}
		if occ, ok := resolveOccupation(*e, now); ok {
			occupied = append(occupied, occ)
		}
	}

	for _, i := range order {
		e := &out[i]
		if e.Anchored() || e.ScheduledTime != nil {
			continue
		}
		start, ok := o.findSlot(*e, occupied, now)
		if !ok {
			e.IsScheduled = false
			continue
		}
		e.ScheduledTime = &start
		e.IsScheduled = true
		if occ, resolved := resolveOccupation(*e, now); resolved {
			occupied = append(occupied, occ)
		}
	}

	conflicts := o.FindConflicts(out, now)
	report := o.buildReport(out, conflicts)

	o.logger.Info("optimization_pass",
		zap.Int("total", report.TotalCount),
		zap.Int("scheduled", report.ScheduledCount),
		zap.Int("conflicts", report.ConflictsCount),
	)

	return &models.OptimizationResult{Events: out, Conflicts: conflicts, Report: report}, nil
}

// validate rejects the whole batch before any placement happens, so a single
// malformed event never produces a partially processed schedule.
func (o *Optimizer) validate(events []models.Event) error {
	for _, e := range events {
		if e.Duration <= 0 {
			return invalidEvent(e, "duration must be positive")
		}
		switch e.Kind {
		case models.EventKindFlexible, models.EventKindFixed, models.EventKindMandatory:
		default:
			return invalidEvent(e, fmt.Sprintf("unknown event type %q", e.Kind))
		}
		if e.DayOfWeek != nil && (*e.DayOfWeek < 0 || *e.DayOfWeek > 6) {
			return invalidEvent(e, "dayOfWeek must be between 0 (Sunday) and 6 (Saturday)")
		}
		if e.Anchored() {
			if e.FixedTime == nil {
				if e.ScheduledTime == nil {
					return invalidEvent(e, "anchored events require fixedTime")
				}
			} else if _, _, err := ParseWallClock(*e.FixedTime); err != nil {
				return invalidEvent(e, fmt.Sprintf("unparsable fixedTime %q", *e.FixedTime))
			}
			continue
		}
		if e.EarliestStart != nil && e.LatestStart != nil {
			window := e.LatestStart.Sub(*e.EarliestStart)
			if window < time.Duration(e.Duration)*time.Minute {
				return invalidEvent(e, fmt.Sprintf("window of %d minutes is narrower than duration %d", int(window.Minutes()), e.Duration))
			}
		}
	}
	return nil
}

func invalidEvent(e models.Event, reason string) error {
	label := e.Title
	if label == "" {
		label = e.ID
	}
	return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("event %q: %s", label, reason))
}
