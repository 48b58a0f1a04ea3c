// cmd/idea-service/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"idea-service/internal/api"
	"idea-service/internal/common/config"
	"idea-service/internal/common/logger"
	"idea-service/internal/common/observability"
	feasibilityscorer "idea-service/internal/services/feasibility-scorer"
	ideagenerator "idea-service/internal/services/idea-generator"
	ollamastatus "idea-service/internal/services/ollama-status"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	obs, err := observability.New(cfg.Observability.ServiceName, prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("observability init failed: %w", err)
	}

	tracing, err := observability.SetupTracing(ctx, observability.TracingConfig{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.App.Version,
		Endpoint:       cfg.Observability.TraceEndpoint,
		Headers:        cfg.Observability.TraceHeaders,
	})
	if err != nil {
		return fmt.Errorf("tracing init failed: %w", err)
	}
	if tracing != nil {
		zapLog.Info("tracing enabled", zap.String("endpoint", cfg.Observability.TraceEndpoint))
	}

	handlers, err := buildHandlers(cfg, log)
	if err != nil {
		return err
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		MetricsEnabled: cfg.Observability.MetricsEnabled,
		TracingEnabled: tracing != nil,
		ServiceName:    cfg.Observability.ServiceName,
	}, handlers, log, obs)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: config.GetDuration(cfg.Server.ReadTimeout),
		ReadTimeout:       config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout:      config.GetDuration(cfg.Server.WriteTimeout),
		IdleTimeout:       config.GetDuration(cfg.Server.IdleTimeout),
	}

	printBanner(cmd.OutOrStdout(), cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zapLog.Info("http server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zapLog.Info("shutdown signal received, draining requests")
		handlers.SetReady(false)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
		defer cancel()

		var errs []error
		if err := server.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
		if err := tracing.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		if err := obs.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		zapLog.Error("service stopped with error", zap.Error(err))
		return err
	}
	zapLog.Info("service stopped gracefully")
	return nil
}

func buildHandlers(cfg *config.Config, log logger.Logger) (*api.Handlers, error) {
	generator, err := ideagenerator.NewGenerator(ideagenerator.DefaultConfig(), ideagenerator.NewSource(cfg.Generator.Seed))
	if err != nil {
		return nil, fmt.Errorf("idea generator init failed: %w", err)
	}

	prober := ollamastatus.NewProber(&ollamastatus.Config{
		BaseURL: cfg.Ollama.BaseURL,
		Timeout: config.GetDuration(cfg.Ollama.Timeout),
	}, nil, log)

	return api.NewHandlers(
		generator,
		feasibilityscorer.NewScorer(nil),
		prober,
		api.HandlerConfig{
			ModelName:        cfg.Generator.ModelName,
			Confidence:       cfg.Generator.Confidence,
			SimulatedLatency: config.GetDuration(cfg.Generator.SimulatedLatencyMS),
		},
		log,
	), nil
}

func printBanner(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "Starting %s on port %d\n", api.ServiceName, cfg.Server.Port)
	fmt.Fprintf(w, "Model: %s\n", cfg.Generator.ModelName)
	fmt.Fprintln(w, "Endpoints:")
	for _, r := range api.Routes {
		fmt.Fprintf(w, "  - %-4s %-19s - %s\n", r.Method, r.Path, r.Description)
	}
	if cfg.Observability.MetricsEnabled {
		fmt.Fprintf(w, "  - %-4s %-19s - %s\n", "GET", "/metrics", "Prometheus metrics")
	}
	fmt.Fprintf(w, "  - %-4s %-19s - %s\n", "GET", "/ready", "Readiness probe")
}
