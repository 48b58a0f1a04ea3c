// internal/models/idea.go
package models

// GenerateRequest is the body accepted by POST /api/generate. A missing or
// null category selects the default; an empty string is kept as given.
type GenerateRequest struct {
	Prompt   string                 `json:"prompt"`
	Category *string                `json:"category"`
	Context  map[string]interface{} `json:"context,omitempty"`
}

// GenerateResponse is returned by POST /api/generate.
type GenerateResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Model      string  `json:"model"`
	Timestamp  float64 `json:"timestamp"`
}
