// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Values(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: idea-test
  environment: test
server:
  host: 127.0.0.1
  port: 8081
  allowed_origins:
    - http://localhost:3000
generator:
  seed: 42
  model_name: test-model
ollama:
  base_url: http://ollama.local:11434/
logging:
  level: debug
  format: console
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "idea-test", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Address())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, uint64(42), cfg.Generator.Seed)
	assert.Equal(t, "test-model", cfg.Generator.ModelName)
	assert.Equal(t, 0.85, cfg.Generator.Confidence)
	assert.Equal(t, "http://ollama.local:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, 2000, cfg.Ollama.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "idea-test", cfg.Observability.ServiceName)
	assert.False(t, cfg.Observability.TracingEnabled())
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfigFile(t, "app:\n  name: bare\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "local-ai-model", cfg.Generator.ModelName)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Observability.MetricsEnabled)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OLLAMA_BASE_URL", "http://10.0.0.5:11434")
	t.Setenv("IDEA_MODEL", "from-env")

	path := writeConfigFile(t, `
server:
  port: 8081
generator:
  model_name: ${IDEA_MODEL}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://10.0.0.5:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, "from-env", cfg.Generator.ModelName)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "port out of range", body: "server:\n  port: 70000\n"},
		{name: "confidence above one", body: "generator:\n  confidence: 1.5\n"},
		{name: "unknown log level", body: "logging:\n  level: verbose\n"},
		{name: "unknown log format", body: "logging:\n  format: xml\n"},
		{name: "non-http ollama url", body: "ollama:\n  base_url: ftp://example.com\n"},
		{name: "negative latency", body: "generator:\n  simulated_latency_ms: -5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfigFile(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, GetDuration(2000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
