// Package errors defines the typed error taxonomy shared across the service
// and its mapping onto HTTP response codes.
package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrTypeConfig represents configuration errors (e.g. missing webhook secret)
	ErrTypeConfig ErrorType = "config"
	// ErrTypeSignature represents webhook signature verification failures
	ErrTypeSignature ErrorType = "signature"
	// ErrTypeMalformedPayload represents structurally invalid webhook payloads
	ErrTypeMalformedPayload ErrorType = "malformed_payload"
	// ErrTypeStoreUnavailable represents status cache backend failures
	ErrTypeStoreUnavailable ErrorType = "store_unavailable"
	// ErrTypeProvider represents e-signature provider call failures
	ErrTypeProvider ErrorType = "provider"
	// ErrTypeNotFound represents resource not found errors
	ErrTypeNotFound ErrorType = "not_found"
	// ErrTypeInternal represents internal system errors
	ErrTypeInternal ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type    ErrorType              `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	parts := []string{string(e.Type), e.Message}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Cause))
	}

	if len(e.Context) > 0 {
		contextParts := make([]string, 0, len(e.Context))
		for k, v := range e.Context {
			contextParts = append(contextParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("context={%s}", strings.Join(contextParts, ", ")))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// ConfigError creates a new configuration error
func ConfigError(msg string) *AppError {
	return &AppError{
		Type:    ErrTypeConfig,
		Message: msg,
	}
}

// SignatureError creates a new signature verification error
func SignatureError(msg string) *AppError {
	return &AppError{
		Type:    ErrTypeSignature,
		Message: msg,
	}
}

// MalformedPayloadError creates a new malformed payload error
func MalformedPayloadError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeMalformedPayload,
		Message: msg,
		Cause:   cause,
	}
}

// StoreUnavailableError creates a new store unavailable error
func StoreUnavailableError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeStoreUnavailable,
		Message: msg,
		Cause:   cause,
	}
}

// ProviderError creates a new provider error
func ProviderError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeProvider,
		Message: msg,
		Cause:   cause,
	}
}

// NotFoundError creates a new not found error
func NotFoundError(resource string) *AppError {
	return &AppError{
		Type:    ErrTypeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// InternalError creates a new internal error
func InternalError(msg string, cause error) *AppError {
	return &AppError{
		Type:    ErrTypeInternal,
		Message: msg,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	if err == nil {
		return false
	}

	appErr, ok := err.(*AppError)
	if !ok {
		return false
	}

	return appErr.Type == errType
}

// GetType returns the error type if it's an AppError, otherwise ErrTypeInternal
func GetType(err error) ErrorType {
	if err == nil {
		return ""
	}

	appErr, ok := err.(*AppError)
	if !ok {
		return ErrTypeInternal
	}

	return appErr.Type
}

// HTTPStatus maps an error onto the HTTP status code the handlers respond with.
// Configuration and decode failures are the caller's fault (400), signature
// failures are forbidden (403), and a broken cache backend on the write path
// is a bad gateway (502).
func HTTPStatus(err error) int {
	switch GetType(err) {
	case ErrTypeConfig, ErrTypeMalformedPayload:
		return http.StatusBadRequest
	case ErrTypeSignature:
		return http.StatusForbidden
	case ErrTypeNotFound:
		return http.StatusNotFound
	case ErrTypeStoreUnavailable, ErrTypeProvider:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
