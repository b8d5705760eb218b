package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/response"
)

// ScheduleOptimizer is what the optimize handler needs from the service
// layer.
type ScheduleOptimizer interface {
	Optimize(ctx context.Context) (*models.OptimizationResult, error)
	CachedResult(ctx context.Context) (*models.OptimizationResult, time.Time, error)
	Conflicts(ctx context.Context) ([]models.Conflict, error)
	Slots(ctx context.Context, query dto.SlotsQuery) (*dto.SlotsResponse, error)
	Summary(ctx context.Context) (string, error)
}

// OptimizeHandler serves scheduling endpoints.
type OptimizeHandler struct {
	optimizer ScheduleOptimizer
}

// NewOptimizeHandler constructs an optimize handler.
func NewOptimizeHandler(optimizer ScheduleOptimizer) *OptimizeHandler {
	return &OptimizeHandler{optimizer: optimizer}
}

// Register mounts the scheduling routes on the given group.
func (h *OptimizeHandler) Register(r *gin.RouterGroup) {
	r.POST("/optimize", h.optimize)
	r.GET("/conflicts", h.conflicts)
	r.GET("/slots", h.slots)
	r.GET("/schedule/summary", h.summary)
}

// optimize runs a scheduling pass. When the calendar has not changed since
// the last pass, the cached result is served instead, with its generation
// time exposed so clients can judge staleness.
func (h *OptimizeHandler) optimize(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, generatedAt, err := h.optimizer.CachedResult(ctx); err == nil {
		response.JSON(c, http.StatusOK, cached, map[string]interface{}{
			"cached":      true,
			"generatedAt": generatedAt.Format(time.RFC3339),
		})
		return
	} else if !errors.Is(err, appErrors.ErrCacheMiss) {
		response.Error(c, err)
		return
	}

	result, err := h.optimizer.Optimize(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *OptimizeHandler) conflicts(c *gin.Context) {
	conflicts, err := h.optimizer.Conflicts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, conflicts, map[string]interface{}{"count": len(conflicts)})
}

func (h *OptimizeHandler) slots(c *gin.Context) {
	var query dto.SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid query parameters"))
		return
	}
	slots, err := h.optimizer.Slots(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slots)
}

func (h *OptimizeHandler) summary(c *gin.Context) {
	summary, err := h.optimizer.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SummaryResponse{Summary: summary})
}
