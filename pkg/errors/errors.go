// Package errors defines structured error types for the VendorSoluce risk service.
// Errors carry a machine-readable code, an HTTP status and optional metadata so
// the interface layer can map them to responses without string matching.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Facely1er/vendor-soluce-portal-sub001/pkg/constants"
)

// AppError is the structured application error used across all layers.
type AppError struct {
	Code       constants.ErrorCode
	HTTPStatus int
	Message    string
	Details    map[string]string
	cause      error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches an underlying error and returns a copy.
func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.cause = cause
	return &clone
}

// WithDetail attaches a key/value detail and returns a copy.
func (e *AppError) WithDetail(key, value string) *AppError {
	clone := *e
	clone.Details = make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		clone.Details[k] = v
	}
	clone.Details[key] = value
	return &clone
}

// New creates a new AppError with the given code, status and message.
func New(code constants.ErrorCode, httpStatus int, message string) *AppError {
	return &AppError{
		Code:       code,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// ================================================================================
// Predefined Constructors
// ================================================================================

// ErrValidation creates an invalid_request error for input rejected before
// any repository access.
func ErrValidation(message string) *AppError {
	return New(constants.ErrCodeInvalidRequest, http.StatusBadRequest, message)
}

// ErrNotFound creates a not_found error for a missing subject.
func ErrNotFound(entity, id string) *AppError {
	return New(constants.ErrCodeNotFound, http.StatusNotFound,
		fmt.Sprintf("%s not found: %s", entity, id)).
		WithDetail("entity", entity).
		WithDetail("id", id)
}

// ErrRepositoryUnavailable creates a repository_unavailable error for storage
// failures that survived the retry budget.
func ErrRepositoryUnavailable(op string, cause error) *AppError {
	return New(constants.ErrCodeRepositoryUnavailable, http.StatusServiceUnavailable,
		fmt.Sprintf("repository operation failed: %s", op)).
		WithDetail("operation", op).
		WithCause(cause)
}

// ErrRateLimitExceeded creates a rate_limit_exceeded error.
func ErrRateLimitExceeded(scope constants.RateLimitScope) *AppError {
	return New(constants.ErrCodeRateLimitExceeded, http.StatusTooManyRequests,
		fmt.Sprintf("rate limit exceeded for scope %q", scope)).
		WithDetail("scope", string(scope))
}

// ErrUnauthorized creates an unauthorized error for the internal API.
func ErrUnauthorized(message string) *AppError {
	return New(constants.ErrCodeUnauthorized, http.StatusUnauthorized, message)
}

// ErrInternal creates an internal_error wrapping an unexpected failure.
func ErrInternal(message string, cause error) *AppError {
	return New(constants.ErrCodeInternal, http.StatusInternalServerError, message).WithCause(cause)
}

// ================================================================================
// Predicates
// ================================================================================

// As attempts to cast any error to an AppError.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// IsNotFound reports whether err is a not_found AppError.
func IsNotFound(err error) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == constants.ErrCodeNotFound
	}
	return false
}

// IsValidation reports whether err is an invalid_request AppError.
func IsValidation(err error) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == constants.ErrCodeInvalidRequest
	}
	return false
}

// IsUnavailable reports whether err indicates a transient storage failure the
// caller may retry.
func IsUnavailable(err error) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == constants.ErrCodeRepositoryUnavailable
	}
	return false
}

// HTTPStatusOf returns the HTTP status for any error, defaulting to 500.
func HTTPStatusOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}
