package errors

import (
	"github.com/gin-gonic/gin"
)

// Logger is the slice of logger.Logger the error handler needs.
type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      ErrorCode              `json:"code"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp float64                `json:"timestamp"`
}

// ErrorHandler converts errors into structured JSON responses.
type ErrorHandler struct {
	logger Logger
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle writes err to c and aborts the handler chain.
func (h *ErrorHandler) Handle(c *gin.Context, err error) {
	stdErr := Normalize(err)
	status := GetHTTPStatus(stdErr.Code)

	h.logError(c, stdErr, status)

	c.AbortWithStatusJSON(status, ToResponse(stdErr))
}

// ToResponse builds the wire payload for stdErr.
func ToResponse(stdErr *StandardError) ErrorResponse {
	return ErrorResponse{
		Error:     stdErr.Message,
		Code:      stdErr.Code,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		Metadata:  stdErr.Metadata,
		Timestamp: float64(stdErr.Timestamp.UnixNano()) / 1e9,
	}
}

func (h *ErrorHandler) logError(c *gin.Context, stdErr *StandardError, status int) {
	fields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"status":        status,
		"errorCategory": GetErrorCategory(stdErr.Code),
		"method":        c.Request.Method,
		"path":          c.Request.URL.Path,
	}
	if status >= 500 {
		h.logger.Error("request failed", fields)
		return
	}
	h.logger.Warn("request rejected", fields)
}
