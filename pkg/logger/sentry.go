package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures NewWithSentry.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level stored as a Sentry log, parsed by ParseLevel.
	MinLevel string `env:"SENTRY_MIN_LEVEL" envDefault:"warn"`
	// Stdout configures the local handler that always receives logs.
	Stdout Config
}

// NewWithSentry creates a logger writing to stdout and, when DSN is set, to
// Sentry. Errors become Sentry issues; records at MinLevel and above are kept
// as Sentry logs. Without a DSN, or if the SDK fails to start, only stdout is used.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := newHandler(os.Stdout, cfg.Stdout)
	if cfg.DSN == "" {
		return slog.New(NewContextHandler(stdout, extractors...))
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	})
	if err != nil {
		slog.New(stdout).Error("sentry init failed", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(stdout, extractors...))
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   levelsFrom(ParseLevel(cfg.MinLevel)),
	}.NewSentryHandler(context.Background())

	return slog.New(NewContextHandler(Fanout(stdout, remote), extractors...))
}

// levelsFrom lists the standard levels at or above min.
func levelsFrom(min slog.Level) []slog.Level {
	var out []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= min {
			out = append(out, l)
		}
	}
	return out
}
