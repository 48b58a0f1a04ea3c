// internal/services/ollama-status/models.go
package ollamastatus

import apperrors "idea-service/internal/common/errors"

type tagsResponse struct {
	Models []modelTag `json:"models"`
}

type modelTag struct {
	Name *string `json:"name"`
}

// Status is the outcome of one probe. Err is set exactly when Connected is false.
type Status struct {
	Connected bool
	Models    []string
	Err       *apperrors.StandardError
}

// ErrorText is the human-readable failure reason for a disconnected probe.
func (s Status) ErrorText() string {
	if s.Err == nil {
		return ""
	}
	if s.Err.Details != "" {
		return s.Err.Details
	}
	return s.Err.Message
}
