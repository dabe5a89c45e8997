package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type errorCloser struct {
	err error
}

func (c *errorCloser) Close() error {
	return c.err
}

func TestSafeClose(t *testing.T) {
	t.Run("does nothing for a nil closer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(nil, logger, "test_operation")
		assert.Empty(t, buf.String())
	})

	t.Run("no error logged on successful close", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(&errorCloser{}, logger, "test_operation")
		assert.NotContains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("logs error when close fails", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		SafeCloseWithLogging(&errorCloser{err: assert.AnError}, logger, "test_operation")

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to close resource"`)
		assert.Contains(t, output, `"operation":"test_operation"`)
	})
}

func TestHandleDeferredError(t *testing.T) {
	t.Run("sets the original error when none was set", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		var err error
		HandleDeferredError(&err, func() error { return assert.AnError }, logger, "close_db")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "close_db failed")
		assert.Contains(t, buf.String(), `"msg":"deferred operation failed"`)
	})

	t.Run("keeps the original error when both fail", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		original := errors.New("original failure")
		err := original
		HandleDeferredError(&err, func() error { return assert.AnError }, logger, "close_db")

		assert.Equal(t, original, err)
	})

	t.Run("leaves the error untouched on success", func(t *testing.T) {
		var err error
		HandleDeferredError(&err, func() error { return nil }, nil, "close_db")
		assert.NoError(t, err)
	})
}
