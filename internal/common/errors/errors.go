// Package errors provides standardized error handling for the website
// generation pipeline.
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Classification errors are always absorbed into a low-confidence default.
	ErrCodeClassificationFailed ErrorCode = "CLASSIFICATION_FAILED"

	// Generation errors are recoverable by the fallback engine.
	ErrCodeAIUnavailable   ErrorCode = "AI_UNAVAILABLE"
	ErrCodeAIRateLimited   ErrorCode = "AI_RATE_LIMITED"
	ErrCodeMalformedOutput ErrorCode = "MALFORMED_OUTPUT"

	// Render errors are fatal for the request; there is no fallback HTML.
	ErrCodeTemplateNotFound    ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrCodeTemplateParseFailed ErrorCode = "TEMPLATE_PARSE_FAILED"
	ErrCodeRenderFailed        ErrorCode = "RENDER_FAILED"

	ErrCodeCacheUnavailable ErrorCode = "CACHE_UNAVAILABLE"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// NewAIUnavailableError creates a retryable completion backend error.
func NewAIUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAIUnavailable,
		Message:   "Completion backend unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewAIRateLimitedError creates a retryable throttling error.
func NewAIRateLimitedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeAIRateLimited,
		Message:   "Completion backend rate limited the request",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedOutputError creates a non-retryable parse error. Partial or
// invalid backend output must never be handed on as if it were valid.
func NewMalformedOutputError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedOutput,
		Message:   "Completion output could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewClassificationFailedError creates a non-retryable classification error.
// Callers degrade to the general-practice default instead of surfacing it.
func NewClassificationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeClassificationFailed,
		Message:   "Specialty classification failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateNotFoundError creates a non-retryable template lookup error.
func NewTemplateNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateNotFound,
		Message:   "Template not found in store",
		Details:   fmt.Sprintf("template: %s", name),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTemplateParseFailedError creates a non-retryable template compile error.
func NewTemplateParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeTemplateParseFailed,
		Message:   "Template source failed to compile",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRenderFailedError creates a non-retryable render error.
func NewRenderFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeRenderFailed,
		Message:   "Rendering failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache backend error. Cache
// regions are not sources of truth; callers treat this as a miss.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Cache backend error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// GetRetryCount returns the recommended retry count per error code.
func GetRetryCount(code ErrorCode) int {
	switch code {
	case ErrCodeAIRateLimited:
		return 3
	case ErrCodeAIUnavailable:
		return 2
	case ErrCodeCacheUnavailable:
		return 1
	default:
		return 0
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	return GetRetryCount(code) > 0
}

// IsGenerationError reports whether err carries one of the generation error
// codes that the fallback engine recovers from.
func IsGenerationError(err error) bool {
	var stdErr *StandardError
	if !errors.As(err, &stdErr) {
		return false
	}
	switch stdErr.Code {
	case ErrCodeAIUnavailable, ErrCodeAIRateLimited, ErrCodeMalformedOutput:
		return true
	}
	return false
}

// CodeOf extracts the error code from err, or "UNKNOWN" for foreign errors.
func CodeOf(err error) ErrorCode {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code
	}
	return "UNKNOWN"
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CLASSIFICATION"):
		return "CLASSIFICATION"
	case strings.Contains(codeStr, "AI") || strings.Contains(codeStr, "OUTPUT"):
		return "GENERATION"
	case strings.Contains(codeStr, "TEMPLATE") || strings.Contains(codeStr, "RENDER"):
		return "RENDER"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	default:
		return "OTHER"
	}
}
