// internal/services/ollama-status/config.go
package ollamastatus

import (
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultTimeout = 2 * time.Second

	tagsPath = "/api/tags"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// TagsURL is the model listing endpoint under BaseURL.
func (c *Config) TagsURL() string {
	return strings.TrimRight(c.BaseURL, "/") + tagsPath
}
