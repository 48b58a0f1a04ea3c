// internal/models/status.go
package models

import "time"

const (
	StatusHealthy      = "healthy"
	StatusReady        = "ready"
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

type HealthResponse struct {
	Status    string  `json:"status"`
	Service   string  `json:"service"`
	Model     string  `json:"model"`
	Timestamp float64 `json:"timestamp"`
}

type OllamaConnectedResponse struct {
	Status          string   `json:"status"`
	AvailableModels []string `json:"available_models"`
}

type OllamaDisconnectedResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Timestamp renders t as fractional Unix seconds.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}
