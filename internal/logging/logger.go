// Package logging is the structured logger shared by the journal packages.
//
// Components depend on the Logger interface and receive a child logger
// tagged with their module name, for example:
//
//	logger.With("module", "store").Error(ctx, "save journal", "path", path, "error", err)
//
// SlogLogger is the only implementation; New picks a text or JSON handler.
package logging

import "context"

// Logger writes leveled records with key/value attributes. The context is
// passed through to the handler.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that adds args to every record.
	With(args ...any) Logger
}
