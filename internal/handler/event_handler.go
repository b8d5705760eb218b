package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
	"github.com/MatthewMo520/CalendarOptimizer/internal/models"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/response"
)

// EventManager is what the event handler needs from the service layer.
type EventManager interface {
	List(ctx context.Context) ([]models.Event, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// EventHandler serves the event collection endpoints.
type EventHandler struct {
	events EventManager
}

// NewEventHandler constructs an event handler.
func NewEventHandler(events EventManager) *EventHandler {
	return &EventHandler{events: events}
}

// Register mounts the event routes on the given group.
func (h *EventHandler) Register(r *gin.RouterGroup) {
	r.GET("/events", h.list)
	r.POST("/events", h.create)
	r.DELETE("/events/:id", h.delete)
	r.POST("/events/clear", h.clear)
}

func (h *EventHandler) list(c *gin.Context) {
	events, err := h.events.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, map[string]interface{}{"count": len(events)})
}

func (h *EventHandler) create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	event, err := h.events.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

func (h *EventHandler) delete(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (h *EventHandler) clear(c *gin.Context) {
	if err := h.events.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
