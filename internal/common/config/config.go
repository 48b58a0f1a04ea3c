// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Server        ServerConfig        `mapstructure:"server"`
	Generator     GeneratorConfig     `mapstructure:"generator"`
	Ollama        OllamaConfig        `mapstructure:"ollama"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// IsProduction reports whether the service runs with production settings.
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

type ServerConfig struct {
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // milliseconds
	IdleTimeout     int      `mapstructure:"idle_timeout"`     // milliseconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // milliseconds
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	MaxBodyBytes    int64    `mapstructure:"max_body_bytes"`
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// GeneratorConfig holds settings for idea generation and the generate endpoint.
type GeneratorConfig struct {
	Seed               uint64  `mapstructure:"seed"` // 0 = unseeded
	ModelName          string  `mapstructure:"model_name"`
	Confidence         float64 `mapstructure:"confidence"`
	SimulatedLatencyMS int     `mapstructure:"simulated_latency_ms"`
}

// OllamaConfig points the status probe at a local Ollama daemon.
type OllamaConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// ObservabilityConfig controls metrics and tracing export.
type ObservabilityConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	TraceEndpoint  string `mapstructure:"trace_endpoint"`
	TraceHeaders   string `mapstructure:"trace_headers"`
}

// TracingEnabled reports whether an OTLP trace endpoint is configured.
func (o ObservabilityConfig) TracingEnabled() bool {
	return o.TraceEndpoint != ""
}
