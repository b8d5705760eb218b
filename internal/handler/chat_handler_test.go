package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewMo520/CalendarOptimizer/internal/dto"
)

type suggesterMock struct {
	resp *dto.ChatResponse
}

func (m *suggesterMock) Reply(dto.ChatRequest) *dto.ChatResponse {
	return m.resp
}

func newChatRouter(mock *suggesterMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewChatHandler(mock).Register(r.Group("/api/v1"))
	return r
}

func TestChatHandlerSuggestion(t *testing.T) {
	r := newChatRouter(&suggesterMock{resp: &dto.ChatResponse{
		Reply:          "I understand",
		SuggestedEvent: &dto.SuggestedEvent{Title: "Study Math", Duration: 120, Priority: 2, Type: "flexible"},
		Action:         "create_event",
	}})

	body, _ := json.Marshal(dto.ChatRequest{Message: "study math for 2 hours"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data dto.ChatResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "create_event", envelope.Data.Action)
	require.NotNil(t, envelope.Data.SuggestedEvent)
	assert.Equal(t, "Study Math", envelope.Data.SuggestedEvent.Title)
}

func TestChatHandlerEmptyMessage(t *testing.T) {
	r := newChatRouter(&suggesterMock{})

	body, _ := json.Marshal(dto.ChatRequest{})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandlerInvalidBody(t *testing.T) {
	r := newChatRouter(&suggesterMock{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
