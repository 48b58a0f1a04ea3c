// internal/api/router.go
package api

import (
	apperrors "idea-service/internal/common/errors"
	"idea-service/internal/common/logger"
	"idea-service/internal/common/observability"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterConfig struct {
	AllowedOrigins []string
	MaxBodyBytes   int64
	MetricsEnabled bool
	TracingEnabled bool
	ServiceName    string
}

// Route describes one registered endpoint for the startup banner.
type Route struct {
	Method      string
	Path        string
	Description string
}

// Routes lists the public API in registration order.
var Routes = []Route{
	{Method: "GET", Path: "/api/health", Description: "Health check"},
	{Method: "POST", Path: "/api/generate", Description: "Generate ideas"},
	{Method: "POST", Path: "/api/validate", Description: "Validate business concept"},
	{Method: "GET", Path: "/api/ollama/status", Description: "Check Ollama status"},
}

func NewRouter(cfg RouterConfig, h *Handlers, log logger.Logger, obs *observability.Observability) *gin.Engine {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// span first so recovery and logging run inside it
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(RequestID())
	router.Use(Recovery(log))
	router.Use(Logger(log))
	if cfg.MetricsEnabled {
		router.Use(Metrics(obs))
	}
	router.Use(CORS(cfg.AllowedOrigins))
	router.Use(BodyLimit(cfg.MaxBodyBytes))

	errorHandler := apperrors.NewErrorHandler(log)
	router.NoRoute(func(c *gin.Context) {
		errorHandler.Handle(c, apperrors.NewRouteNotFoundError(c.Request.URL.Path))
	})
	router.NoMethod(func(c *gin.Context) {
		errorHandler.Handle(c, apperrors.NewMethodNotAllowedError(c.Request.Method, c.Request.URL.Path))
	})

	router.GET("/ready", h.Ready)
	if cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", h.Health)
		apiGroup.POST("/generate", h.Generate)
		apiGroup.POST("/validate", h.Validate)
		apiGroup.GET("/ollama/status", h.OllamaStatus)
	}

	return router
}
