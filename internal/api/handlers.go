// internal/api/handlers.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	apperrors "idea-service/internal/common/errors"
	"idea-service/internal/common/logger"
	"idea-service/internal/common/metrics"
	"idea-service/internal/common/validation"
	"idea-service/internal/models"
	feasibilityscorer "idea-service/internal/services/feasibility-scorer"
	ideaenhancer "idea-service/internal/services/idea-enhancer"
	ideagenerator "idea-service/internal/services/idea-generator"
	ollamastatus "idea-service/internal/services/ollama-status"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName     = "Local AI Service"
	DefaultCategory = ideagenerator.CategoryBusinesses

	modeTemplate = "template"
	modeEnhance  = "enhance"
)

type IdeaGenerator interface {
	Generate(category string, context map[string]string) string
}

type FeasibilityScorer interface {
	Calculate(input feasibilityscorer.Input) feasibilityscorer.Result
}

type StatusProber interface {
	Probe(ctx context.Context) ollamastatus.Status
}

// HandlerConfig carries the response constants and generation pacing.
type HandlerConfig struct {
	ModelName        string
	Confidence       float64
	SimulatedLatency time.Duration
}

type Handlers struct {
	generator    IdeaGenerator
	scorer       FeasibilityScorer
	prober       StatusProber
	config       HandlerConfig
	errorHandler *apperrors.ErrorHandler
	logger       logger.Logger
	ready        atomic.Bool
	now          func() time.Time
}

func NewHandlers(
	generator IdeaGenerator,
	scorer FeasibilityScorer,
	prober StatusProber,
	config HandlerConfig,
	log logger.Logger,
) *Handlers {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	h := &Handlers{
		generator:    generator,
		scorer:       scorer,
		prober:       prober,
		config:       config,
		errorHandler: apperrors.NewErrorHandler(log),
		logger:       log,
		now:          time.Now,
	}
	h.ready.Store(true)
	return h
}

// SetReady flips the /ready answer, e.g. while draining on shutdown.
func (h *Handlers) SetReady(ready bool) {
	h.ready.Store(ready)
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    models.StatusHealthy,
		Service:   ServiceName,
		Model:     h.config.ModelName,
		Timestamp: models.Timestamp(h.now()),
	})
}

func (h *Handlers) Ready(c *gin.Context) {
	if !h.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "draining"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.StatusReady})
}

func (h *Handlers) Generate(c *gin.Context) {
	body, err := readBody(c, generateValidator)
	if err != nil {
		h.errorHandler.Handle(c, err)
		return
	}

	var req models.GenerateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errorHandler.Handle(c, apperrors.NewInvalidRequestBodyError(err))
		return
	}

	if err := h.simulateLatency(c.Request.Context()); err != nil {
		h.errorHandler.Handle(c, apperrors.NewRequestCanceledError(err))
		return
	}

	category := DefaultCategory
	if req.Category != nil {
		category = *req.Category
	}

	var text, mode string
	if ideaenhancer.IsEnhanceRequest(req.Prompt) {
		text, mode = ideaenhancer.Enhance(req.Prompt), modeEnhance
	} else {
		text, mode = h.generator.Generate(category, stringContext(req.Context)), modeTemplate
	}

	metricCategory := category
	if mode == modeEnhance {
		metricCategory = modeEnhance
	} else if text == ideagenerator.NotFound {
		metricCategory = "unknown"
	}
	metrics.IdeasGenerated.WithLabelValues(metricCategory, mode).Inc()

	h.logger.Info("idea generated", map[string]interface{}{
		"requestId": requestID(c),
		"category":  category,
		"mode":      mode,
		"length":    len(text),
	})

	c.JSON(http.StatusOK, models.GenerateResponse{
		Text:       text,
		Confidence: h.config.Confidence,
		Model:      h.config.ModelName,
		Timestamp:  models.Timestamp(h.now()),
	})
}

func (h *Handlers) Validate(c *gin.Context) {
	body, err := readBody(c, validateValidator)
	if err != nil {
		h.errorHandler.Handle(c, err)
		return
	}

	var input feasibilityscorer.Input
	if err := json.Unmarshal(body, &input); err != nil {
		h.errorHandler.Handle(c, apperrors.NewInvalidRequestBodyError(err))
		return
	}

	result := h.scorer.Calculate(input)

	metrics.FeasibilityScores.Observe(float64(result.Score))
	metrics.FeasibilityRecommendations.WithLabelValues(result.Recommendation).Inc()

	h.logger.Info("feasibility calculated", map[string]interface{}{
		"requestId":      requestID(c),
		"score":          result.Score,
		"recommendation": result.Recommendation,
	})

	c.JSON(http.StatusOK, models.ValidateResponse{
		FeasibilityScore: result.Score,
		Factors:          result.Factors,
		Recommendation:   result.Recommendation,
		Timestamp:        models.Timestamp(h.now()),
	})
}

// OllamaStatus always answers 200; an unreachable daemon is reported in the body.
func (h *Handlers) OllamaStatus(c *gin.Context) {
	status := h.prober.Probe(c.Request.Context())
	if !status.Connected {
		c.JSON(http.StatusOK, models.OllamaDisconnectedResponse{
			Status: models.StatusDisconnected,
			Error:  status.ErrorText(),
		})
		return
	}

	available := status.Models
	if available == nil {
		available = []string{}
	}
	c.JSON(http.StatusOK, models.OllamaConnectedResponse{
		Status:          models.StatusConnected,
		AvailableModels: available,
	})
}

func (h *Handlers) simulateLatency(ctx context.Context) error {
	if h.config.SimulatedLatency <= 0 {
		return nil
	}
	timer := time.NewTimer(h.config.SimulatedLatency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// readBody reads the request body and checks it against v.
func readBody(c *gin.Context, v *validation.Validator) ([]byte, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, apperrors.NewRequestTooLargeError(tooLarge.Limit)
		}
		return nil, apperrors.NewInvalidRequestBodyError(err)
	}

	result, err := v.ValidateBytes(body)
	if err != nil {
		return nil, apperrors.NewInvalidRequestBodyError(err)
	}
	if !result.Valid {
		return nil, apperrors.NewSchemaValidationFailedError(result.GetErrorMessages())
	}
	return body, nil
}

// stringContext keeps the string-valued entries of the optional request context.
func stringContext(raw map[string]interface{}) map[string]string {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
