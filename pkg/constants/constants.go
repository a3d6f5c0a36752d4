// Package constants defines system-wide constants for the VendorSoluce risk service.
// This package provides type-safe constant definitions used across all modules.
package constants

import "time"

// ServiceName is the canonical service identifier used in logs, traces and metrics.
const ServiceName = "vsrp-risk-service"

// ================================================================================
// Error Codes
// ================================================================================

// ErrorCode represents a machine-readable error code returned by the API.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates a malformed or failed-validation request.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested subject does not exist.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeUnauthorized indicates a missing or invalid internal API token.
	ErrCodeUnauthorized ErrorCode = "unauthorized"

	// ErrCodeRateLimitExceeded indicates the caller exceeded its request budget.
	ErrCodeRateLimitExceeded ErrorCode = "rate_limit_exceeded"

	// ErrCodeRepositoryUnavailable indicates a storage read or write failed
	// after the retry budget was exhausted.
	ErrCodeRepositoryUnavailable ErrorCode = "repository_unavailable"

	// ErrCodeInternal indicates an unexpected server-side failure.
	ErrCodeInternal ErrorCode = "internal_error"
)

// ================================================================================
// Log Levels
// ================================================================================

// LogLevel represents the severity of a log entry.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelFatal
)

// String returns the lowercase name of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ================================================================================
// Engine Defaults
// ================================================================================

const (
	// DefaultHistoryLimit bounds how many historical assessment records a
	// single computation reads per subject.
	DefaultHistoryLimit = 50

	// DefaultRepositoryTimeout is the per-query timeout applied to history
	// reads when the caller did not supply a tighter deadline.
	DefaultRepositoryTimeout = 5 * time.Second

	// ForecastHorizonDays is the fixed number of future points produced by
	// the forecast engine regardless of the requested trend window.
	ForecastHorizonDays = 30

	// ForecastIntervalHalfWidth is the symmetric confidence interval applied
	// around each forecast point.
	ForecastIntervalHalfWidth = 10.0

	// ProfileCacheTTL is how long entity profiles stay in the in-process cache.
	ProfileCacheTTL = 2 * time.Minute

	// TrendCacheTTL is how long computed trend reports stay in Redis.
	TrendCacheTTL = 10 * time.Minute

	// RatingCacheTTL is how long vendor ratings stay in Redis.
	RatingCacheTTL = 15 * time.Minute
)

// ================================================================================
// Rate Limit Scopes
// ================================================================================

// RateLimitScope identifies which request budget a rate-limit decision applies to.
type RateLimitScope string

const (
	// RateLimitScopeAnalytics covers the trend and forecast endpoints.
	RateLimitScopeAnalytics RateLimitScope = "analytics"

	// RateLimitScopeInternal covers the internal recompute endpoints.
	RateLimitScopeInternal RateLimitScope = "internal"
)
