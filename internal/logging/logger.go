// Package logging defines the minimal structured-logging surface the client
// depends on. The concrete implementation wraps log/slog; swapping in another
// backend only requires satisfying Logger.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs:
//
//	log.Info(ctx, "hydration complete", "authenticated", ok)
type Logger interface {
	// Debug logs fine-grained diagnostics.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs a warning for unusual but non-fatal conditions. Persistence
	// failures are reported here: they degrade to "no saved state" and must
	// never interrupt the user.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
