package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/MatthewMo520/CalendarOptimizer/pkg/errors"
)

type exporterMock struct {
	out         []byte
	contentType string
	err         error
}

func (m *exporterMock) Render(_ context.Context, _ string) ([]byte, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.out, m.contentType, nil
}

func newExportRouter(mock *exporterMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewExportHandler(mock).Register(r.Group("/api/v1"))
	return r
}

func TestExportHandlerCSV(t *testing.T) {
	r := newExportRouter(&exporterMock{out: []byte("Title,Type\n"), contentType: "text/csv"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/schedule/export?format=csv", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
	assert.Equal(t, "Title,Type\n", w.Body.String())
}

func TestExportHandlerDefaultsToCSV(t *testing.T) {
	r := newExportRouter(&exporterMock{out: []byte("Title,Type\n"), contentType: "text/csv"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/schedule/export", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")
}

func TestExportHandlerUnsupportedFormat(t *testing.T) {
	r := newExportRouter(&exporterMock{err: appErrors.Clone(appErrors.ErrValidation, `unsupported export format "xlsx"`)})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/schedule/export?format=xlsx", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
