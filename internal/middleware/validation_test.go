package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kingrain94/property-docs-api/pkg/logger"
)

func newValidationRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, c.Query("q"))
	})
	router.Any("/docs", handlers...)
	return router
}

func TestBlockSuspiciousPatterns(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.BlockSuspiciousPatterns())

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"plain search", "q=lease+renewal", http.StatusOK},
		{"iso date", "start_time=2026-01-01", http.StatusOK},
		{"sql union", "q=1+UNION+SELECT+password", http.StatusBadRequest},
		{"sql comment", "q=abc--", http.StatusBadRequest},
		{"script tag", "q=%3Cscript%3Ealert(1)%3C/script%3E", http.StatusBadRequest},
		{"path traversal", "q=../../etc/passwd", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/docs?"+tt.query, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSanitizeInput(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.SanitizeInput())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/docs?q=rent%00notice%07", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rentnotice", w.Body.String())
}

func TestValidateContentType(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.ValidateContentType("application/json"))

	send := func(method, contentType string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(method, "/docs", strings.NewReader("{}"))
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost, "application/json; charset=utf-8"))
	assert.Equal(t, http.StatusBadRequest, send(http.MethodPost, ""))
	assert.Equal(t, http.StatusUnsupportedMediaType, send(http.MethodPost, "text/xml"))
	assert.Equal(t, http.StatusOK, send(http.MethodGet, ""))
}

func TestValidateRequestSize(t *testing.T) {
	m := NewValidationMiddleware(logger.NewNop())
	router := newValidationRouter(m.ValidateRequestSize(8))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/docs", strings.NewReader(`{"propertyId":"p1"}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/docs", strings.NewReader(`{}`))
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
