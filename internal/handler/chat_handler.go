package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
	"github.com/MatthewMo520/CalendarOptimizer/pkg/response"
)

// EventSuggester is what the chat handler needs from the service layer.
type EventSuggester interface {
	Reply(req dto.ChatRequest) *dto.ChatResponse
}

// ChatHandler serves the natural-language event suggestion endpoint.
type ChatHandler struct {
	suggester EventSuggester
}

// NewChatHandler constructs a chat handler.
func NewChatHandler(suggester EventSuggester) *ChatHandler {
	return &ChatHandler{suggester: suggester}
}

// Register mounts the chat route on the given group.
func (h *ChatHandler) Register(r *gin.RouterGroup) {
	r.POST("/chat", h.chat)
}

func (h *ChatHandler) chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid request body"))
		return
	}
	if req.Message == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "message is required"))
		return
	}
	response.JSON(c, http.StatusOK, h.suggester.Reply(req))
}
