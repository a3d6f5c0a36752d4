// Package logger defines the structured logging interface for the VendorSoluce
// risk service. The production implementation lives in
// internal/infrastructure/monitoring and is backed by zap; this package only
// carries the contract so domain and application code stay free of the backend.
package logger

import "context"

// Fields is a set of key/value pairs attached to a log entry.
type Fields map[string]interface{}

// Logger is the structured, context-aware logging contract.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Fields)
	Info(ctx context.Context, msg string, fields ...Fields)
	Warn(ctx context.Context, msg string, fields ...Fields)
	Error(ctx context.Context, msg string, err error, fields ...Fields)
	Fatal(ctx context.Context, msg string, err error, fields ...Fields)

	// WithFields returns a logger that attaches the given fields to every entry.
	WithFields(fields Fields) Logger

	// WithComponent returns a logger scoped to a named component.
	WithComponent(component string) Logger
}
