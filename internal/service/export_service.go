package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	"github.com/MatthewMo520/CalendarOptimizer/internal/schedule"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/export"
)

// Export formats.
const (
	FormatCSV = "csv"
	FormatPDF = "pdf"
)

// ExportService renders the current schedule as downloadable documents.
type ExportService struct {
	store  EventStore
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService constructs an export service.
func NewExportService(store EventStore, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		store:  store,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
		now:    time.Now,
	}
}

// Render produces the schedule in the requested format and returns the
// document bytes together with its content type.
func (s *ExportService) Render(ctx context.Context, format string) ([]byte, string, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load events")
	}

	data := s.scheduleDataset(events)
	switch format {
	case FormatCSV:
		out, err := s.csv.Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render CSV export")
		}
		return out, "text/csv", nil
	case FormatPDF:
		out, err := s.pdf.Render(data, "Schedule")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render PDF export")
		}
		return out, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

var exportWeekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// scheduleDataset flattens events into a tabular form. Recurring events show
// their weekly pattern and next concrete occurrence; one-offs show the
// scheduled time.
func (s *ExportService) scheduleDataset(events []models.Event) export.Dataset {
	data := export.Dataset{
		Headers: []string{"Title", "Type", "Duration (min)", "Priority", "When", "Status"},
	}
	for _, e := range events {
		when := ""
		switch {
		case e.Recurring():
			next := schedule.NextWeekday(s.now(), *e.DayOfWeek)
			when = fmt.Sprintf("Every %s at %s (next %s)",
				exportWeekdayNames[*e.DayOfWeek], *e.FixedTime, next.Format("2006-01-02"))
		case e.ScheduledTime != nil:
			when = e.ScheduledTime.Format("2006-01-02 15:04")
		}
		status := "unscheduled"
		if e.IsScheduled {
			status = "scheduled"
		}
		data.Rows = append(data.Rows, map[string]string{
			"Title":          e.Title,
			"Type":           string(e.Kind),
			"Duration (min)": strconv.Itoa(e.Duration),
			"Priority":       strconv.Itoa(e.Priority),
			"When":           when,
			"Status":         status,
		})
	}
	return data
}
