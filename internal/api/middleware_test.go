// internal/api/middleware_test.go
package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "idea-service/internal/common/errors"
	"idea-service/internal/common/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCORS_DefaultAllowsAll(t *testing.T) {
	s := newTestServer(t, nil, defaultHandlerConfig(), RouterConfig{AllowedOrigins: []string{"*"}})

	w := s.do(http.MethodGet, "/api/health", "")

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t, nil, defaultHandlerConfig(), RouterConfig{AllowedOrigins: []string{"*"}})

	for _, path := range []string{"/api/generate", "/api/validate", "/api/health"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		w := httptest.NewRecorder()

		s.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code, path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	s := newTestServer(t, nil, defaultHandlerConfig(), RouterConfig{AllowedOrigins: []string{"https://ideas.example.com/"}})

	tests := []struct {
		origin   string
		expected string
	}{
		{origin: "https://ideas.example.com", expected: "https://ideas.example.com"},
		{origin: "https://evil.example.com", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			s.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, nil, defaultHandlerConfig(), RouterConfig{})

	w := s.do(http.MethodGet, "/api/health", "")
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil, defaultHandlerConfig(), RouterConfig{})

	w := s.do(http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.ErrCodeRouteNotFound))

	w = s.do(http.MethodGet, "/api/generate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.ErrCodeMethodNotAllowed))
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Recovery(logger.NewTestLogger(t)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), string(apperrors.ErrCodeInternal))
	assert.Contains(t, w.Body.String(), "panic: boom")
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil, defaultHandlerConfig(), RouterConfig{MetricsEnabled: true})

	s.do(http.MethodPost, "/api/validate", `{}`)
	s.do(http.MethodPost, "/api/generate", `{"category":"jobs"}`)
	w := s.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "idea_service_http_requests_total")
	assert.Contains(t, body, "idea_service_feasibility_score")
	assert.Contains(t, body, `idea_service_ideas_generated_total{category="jobs",mode="template"}`)
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	s := newTestServer(t, nil, defaultHandlerConfig(), RouterConfig{MetricsEnabled: false})

	w := s.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
