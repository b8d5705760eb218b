package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MatthewMo520/CalendarOptimizer/internal/service"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/response"
)

// ScheduleExporter is what the export handler needs from the service layer.
type ScheduleExporter interface {
	Render(ctx context.Context, format string) ([]byte, string, error)
}

// ExportHandler serves schedule downloads.
type ExportHandler struct {
	exporter ScheduleExporter
}

// NewExportHandler constructs an export handler.
func NewExportHandler(exporter ScheduleExporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Register mounts the export route on the given group.
func (h *ExportHandler) Register(r *gin.RouterGroup) {
	r.GET("/schedule/export", h.export)
}

func (h *ExportHandler) export(c *gin.Context) {
	format := c.DefaultQuery("format", service.FormatCSV)

	out, contentType, err := h.exporter.Render(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("schedule-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, out)
}
