// Package logging defines the structured-logging interface used across the
// portal. The server wires an slog-backed implementation; tests can pass a
// logger writing to a buffer or discard.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs, e.g.:
//
//	log.Info(ctx, "application submitted", "regno", regNo)
type Logger interface {
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}
