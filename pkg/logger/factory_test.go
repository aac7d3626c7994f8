package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/batchcode/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("default level suppresses info records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Info("hidden")
		log.Warn("visible")

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "visible")
	})

	t.Run("custom level lets debug records through", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

		log.Debug("diagnostic")

		assert.Contains(t, buf.String(), "diagnostic")
	})

	t.Run("json format produces parseable records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithLevel(slog.LevelInfo),
		)

		log.Info("event", slog.String("code", "123456"))

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &record))
		assert.Equal(t, "event", record["msg"])
		assert.Equal(t, "123456", record["code"])
	})

	t.Run("static attrs appear on every record", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithFormat(logger.FormatJSON),
			logger.WithLevel(slog.LevelInfo),
			logger.WithAttr(slog.String("run_id", "abc-123")),
		)

		log.Info("first")
		log.Info("second")

		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			var record map[string]any
			require.NoError(t, json.Unmarshal([]byte(line), &record))
			assert.Equal(t, "abc-123", record["run_id"])
		}
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("yaml")))
		})
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("error attr carries the error", func(t *testing.T) {
		t.Parallel()
		attr := logger.Error(assert.AnError)
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()
		attr := logger.Error(nil)
		assert.True(t, attr.Equal(slog.Attr{}))
	})

	t.Run("component and count attrs", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "component", logger.Component("codes").Key)
		assert.Equal(t, int64(5), logger.Count(5).Value.Int64())
	})
}
