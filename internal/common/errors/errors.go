// Package errors provides the structured error payloads returned by the HTTP layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequestBody     ErrorCode = "INVALID_REQUEST_BODY"
	ErrCodeRequestTooLarge        ErrorCode = "REQUEST_TOO_LARGE"
	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeRouteNotFound          ErrorCode = "ROUTE_NOT_FOUND"
	ErrCodeMethodNotAllowed       ErrorCode = "METHOD_NOT_ALLOWED"
	ErrCodeRequestCanceled        ErrorCode = "REQUEST_CANCELED"

	ErrCodeOllamaUnavailable ErrorCode = "OLLAMA_UNAVAILABLE"
	ErrCodeOllamaBadResponse ErrorCode = "OLLAMA_BAD_RESPONSE"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewInvalidRequestBodyError reports a body that is not parseable JSON of the expected shape.
func NewInvalidRequestBodyError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequestBody,
		Message:   "Request body must be a valid JSON object",
		Details:   errDetails(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRequestTooLargeError reports a body over the configured limit.
func NewRequestTooLargeError(limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestTooLarge,
		Message:   "Request body too large",
		Details:   fmt.Sprintf("limit: %d bytes", limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationFailedError carries the individual schema violations in Metadata.
func NewSchemaValidationFailedError(violations []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   "Request body failed schema validation",
		Details:   fmt.Sprintf("%d violation(s)", len(violations)),
		Retryable: false,
		Metadata:  map[string]interface{}{"violations": violations},
		Timestamp: time.Now().UTC(),
	}
}

func NewRouteNotFoundError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeRouteNotFound,
		Message:   "Route not found",
		Details:   fmt.Sprintf("path: %s", path),
		Timestamp: time.Now().UTC(),
	}
}

func NewMethodNotAllowedError(method, path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMethodNotAllowed,
		Message:   "Method not allowed",
		Details:   fmt.Sprintf("%s %s", method, path),
		Timestamp: time.Now().UTC(),
	}
}

func NewRequestCanceledError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRequestCanceled,
		Message:   "Request canceled before completion",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOllamaUnavailableError creates a retryable connection error for the Ollama probe.
func NewOllamaUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeOllamaUnavailable,
		Message:   "Ollama service unreachable",
		Details:   errDetails(err),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewOllamaBadResponseError reports a reachable Ollama that answered with something unusable.
func NewOllamaBadResponseError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeOllamaBadResponse,
		Message:   "Ollama returned an unexpected response",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   errDetails(err),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func errDetails(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// HTTPStatusMapping maps error codes to response statuses.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeInvalidRequestBody:     http.StatusBadRequest,
	ErrCodeRequestTooLarge:        http.StatusRequestEntityTooLarge,
	ErrCodeSchemaValidationFailed: http.StatusBadRequest,
	ErrCodeRouteNotFound:          http.StatusNotFound,
	ErrCodeMethodNotAllowed:       http.StatusMethodNotAllowed,
	ErrCodeRequestCanceled:        http.StatusServiceUnavailable,
	ErrCodeOllamaUnavailable:      http.StatusBadGateway,
	ErrCodeOllamaBadResponse:      http.StatusBadGateway,
	ErrCodeInternal:               http.StatusInternalServerError,
}

// GetHTTPStatus returns the response status for code, 500 when unmapped.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeRequestTooLarge, ErrCodeSchemaValidationFailed,
		ErrCodeRouteNotFound, ErrCodeMethodNotAllowed:
		return "CLIENT"
	case ErrCodeOllamaUnavailable, ErrCodeOllamaBadResponse:
		return "EXTERNAL_SERVICE"
	case ErrCodeRequestCanceled:
		return "TIMEOUT"
	default:
		return "SYSTEM"
	}
}

// Normalize returns err as a *StandardError, wrapping unknown errors as INTERNAL_ERROR.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}
