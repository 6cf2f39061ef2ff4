package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sixpack/pkg/logger"
	"github.com/dmitrymomot/sixpack/pkg/requestid"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Zero(t, buf.Len())
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithProduction("storefront"))
		log.Info("hello")
		assert.Equal(t, "storefront", decode(t, buf)["service"])
	})

	t.Run("development is text at debug", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithDevelopment("storefront"))
		log.Debug("details")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "service=storefront")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
	})
}

func TestContextExtractors(t *testing.T) {
	t.Parallel()

	type key struct{}
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextExtractors(requestid.LoggerExtractor(), nil),
		logger.WithContextValue("tenant", key{}),
	)

	ctx := requestid.WithContext(context.Background(), "req-9")
	ctx = context.WithValue(ctx, key{}, "acme")
	log.With("a", 1).InfoContext(ctx, "hello")

	entry := decode(t, buf)
	assert.Equal(t, "req-9", entry["request_id"])
	assert.Equal(t, "acme", entry["tenant"])
	assert.EqualValues(t, 1, entry["a"])
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf))
	log.Info("call",
		logger.Component("sixpack"),
		logger.Experiment("button-color"),
		logger.Alternative("red"),
		logger.ClientID("ABC"),
		logger.Endpoint("participate"),
		logger.StatusCode(200),
		logger.Duration(1500*time.Millisecond),
		logger.Error(errors.New("boom")),
		logger.Error(nil),
	)

	entry := decode(t, buf)
	assert.Equal(t, "sixpack", entry["component"])
	assert.Equal(t, "button-color", entry["experiment"])
	assert.Equal(t, "red", entry["alternative"])
	assert.Equal(t, "ABC", entry["client_id"])
	assert.Equal(t, "participate", entry["endpoint"])
	assert.EqualValues(t, 200, entry["status"])
	assert.EqualValues(t, 1500, entry["duration_ms"])
	assert.Equal(t, "boom", entry["error"])
}

func TestDiscard(t *testing.T) {
	t.Parallel()
	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
