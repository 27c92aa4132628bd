package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type testKey struct{}

func TestContextHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newHandler(&buf, Config{Level: "debug"})
	log := slog.New(NewContextHandler(h, FromContextValue(testKey{}, "request_id")))

	ctx := context.WithValue(context.Background(), testKey{}, "req-1")
	log.DebugContext(ctx, "content parsed", slog.Int("fields", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "content parsed", entry["msg"])
	require.Equal(t, "req-1", entry["request_id"])
	require.InDelta(t, 2, entry["fields"], 0)
}

func TestFromContextValue(t *testing.T) {
	t.Parallel()

	ex := FromContextValue(testKey{}, "request_id")

	_, ok := ex(context.Background())
	require.False(t, ok)

	_, ok = ex(context.WithValue(context.Background(), testKey{}, ""))
	require.False(t, ok)

	attr, ok := ex(context.WithValue(context.Background(), testKey{}, "abc"))
	require.True(t, ok)
	require.Equal(t, "abc", attr.Value.String())
}

func TestNewHandler_Format(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	slog.New(newHandler(&buf, Config{Format: "TEXT"})).Info("hello")
	require.Contains(t, buf.String(), "msg=hello")

	buf.Reset()
	slog.New(newHandler(&buf, Config{Level: "warn"})).Info("hidden")
	require.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	require.Equal(t, slog.LevelError, ParseLevel("ERROR"))
	require.Equal(t, slog.LevelWarn, ParseLevel(" warn "))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestFanout(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	h := Fanout(
		newHandler(&a, Config{Level: "info"}),
		newHandler(&b, Config{Level: "error"}),
	)
	log := slog.New(h).With("component", "test")

	log.Info("info only")
	require.Contains(t, a.String(), "info only")
	require.Empty(t, b.String())

	log.Error("both")
	require.Contains(t, a.String(), "both")
	require.Contains(t, b.String(), `"component":"test"`)
}

func TestNewWithSentry_NoDSN(t *testing.T) {
	t.Parallel()
	require.NotNil(t, NewWithSentry(SentryConfig{}))
	require.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}

func TestLevelsFrom(t *testing.T) {
	t.Parallel()

	require.Equal(t, []slog.Level{slog.LevelWarn, slog.LevelError}, levelsFrom(slog.LevelWarn))
	require.Equal(t, []slog.Level{slog.LevelError}, levelsFrom(ParseLevel("error")))
	require.Len(t, levelsFrom(slog.LevelDebug), 4)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("boom") }

func TestFanout_ContinuesAfterError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := Fanout(failingHandler{newHandler(io.Discard, Config{})}, newHandler(&buf, Config{}))

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "still delivered", 0))
	require.EqualError(t, err, "boom")
	require.Contains(t, buf.String(), "still delivered")
}
