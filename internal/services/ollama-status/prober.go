// internal/services/ollama-status/prober.go
package ollamastatus

import (
	"context"
	"errors"
	"fmt"

	apperrors "idea-service/internal/common/errors"
	commonhttp "idea-service/internal/common/http"
	"idea-service/internal/common/logger"
	"idea-service/internal/common/metrics"
)

// Prober checks whether a local Ollama server answers its model listing.
type Prober struct {
	config *Config
	client *commonhttp.Client
	logger logger.Logger
}

// NewProber builds a Prober. A nil client gets one bounded by config.Timeout.
func NewProber(config *Config, client *commonhttp.Client, log logger.Logger) *Prober {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := *config
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if client == nil {
		client = commonhttp.NewClient(cfg.Timeout)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Prober{
		config: &cfg,
		client: client,
		logger: log.WithFields(map[string]interface{}{"component": "ollama-status"}),
	}
}

// Probe never returns an error; failures are reported as a disconnected Status.
func (p *Prober) Probe(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	url := p.config.TagsURL()

	var tags tagsResponse
	if err := p.client.GetJSON(ctx, url, &tags); err != nil {
		return p.disconnected(url, classifyError(err))
	}

	models := make([]string, 0, len(tags.Models))
	for i, m := range tags.Models {
		if m.Name == nil {
			return p.disconnected(url, apperrors.NewOllamaBadResponseError(
				fmt.Sprintf("model entry %d has no name", i)))
		}
		models = append(models, *m.Name)
	}

	metrics.OllamaProbes.WithLabelValues("connected").Inc()
	p.logger.Debug("ollama probe succeeded", map[string]interface{}{
		"url":    url,
		"models": len(models),
	})

	return Status{Connected: true, Models: models}
}

func (p *Prober) disconnected(url string, stdErr *apperrors.StandardError) Status {
	metrics.OllamaProbes.WithLabelValues("disconnected").Inc()
	p.logger.Warn("ollama probe failed", map[string]interface{}{
		"url":       url,
		"errorCode": stdErr.Code,
		"details":   stdErr.Details,
	})
	return Status{Err: stdErr}
}

func classifyError(err error) *apperrors.StandardError {
	var statusErr *commonhttp.StatusError
	if errors.As(err, &statusErr) {
		return apperrors.NewOllamaBadResponseError(statusErr.Error())
	}
	if errors.Is(err, commonhttp.ErrDecodeResponse) {
		return apperrors.NewOllamaBadResponseError(err.Error())
	}
	return apperrors.NewOllamaUnavailableError(err)
}
