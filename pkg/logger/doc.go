// Package logger builds log/slog loggers with context extraction and optional
// Sentry reporting.
//
// Context extractors pull request-scoped values (request ID, content type,
// user ID) out of the context on every log call:
//
//	log := logger.New(logger.FromContextValue(requestIDKey{}, "request_id"))
//	log.InfoContext(ctx, "content parsed", slog.Int("fields", n))
//	// {"level":"INFO","msg":"content parsed","fields":3,"request_id":"..."}
//
// NewWithConfig selects level and format (json or text), typically from
// LOG_LEVEL and LOG_FORMAT. NewWithSentry additionally forwards warnings and
// errors to Sentry; with an empty DSN it falls back to stdout only, so the same
// code path runs in development and production.
//
// ContextHandler wraps any slog.Handler, Fanout sends records to several
// handlers, and Discard returns a logger that drops everything.
package logger
