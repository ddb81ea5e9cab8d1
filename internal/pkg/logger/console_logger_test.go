//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger_LogsToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestWriterLogger_DebugWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelDebug, &buf)

	logger.Debug("resolved tool kit ", "14.1.6")

	assert.Contains(t, buf.String(), "resolved tool kit 14.1.6")
}

func TestConsoleLogger_Panic(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(config.LogLevelInfo, &buf)

	assert.PanicsWithValue(t, "unrecoverable", func() {
		logger.Panic("unrecoverable")
	})
	assert.Contains(t, buf.String(), "unrecoverable")
}

func TestNewConsoleLogger(t *testing.T) {
	logger := NewConsoleLogger(config.LogLevelInfo)
	require.NotNil(t, logger)

	require.NotPanics(t, func() {
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}
