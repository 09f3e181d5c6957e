package logx_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cm/internal/logx"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    slog.Level
		expectError bool
	}{
		"error level":      {input: "error", expected: slog.LevelError},
		"warn level":       {input: "warn", expected: slog.LevelWarn},
		"warning level":    {input: "warning", expected: slog.LevelWarn},
		"info level":       {input: "info", expected: slog.LevelInfo},
		"debug level":      {input: "debug", expected: slog.LevelDebug},
		"case insensitive": {input: "INFO", expected: slog.LevelInfo},
		"unknown level":    {input: "unknown", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := logx.GetLevel(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, logx.ErrUnknownLogLevel)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestGetFormat(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		expected    logx.Format
		expectError bool
	}{
		"json":             {input: "json", expected: logx.FormatJSON},
		"logfmt":           {input: "logfmt", expected: logx.FormatLogfmt},
		"case insensitive": {input: "JSON", expected: logx.FormatJSON},
		"unknown":          {input: "xml", expectError: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := logx.GetFormat(tc.input)
			if tc.expectError {
				require.ErrorIs(t, err, logx.ErrUnknownLogFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestCreateHandlerEmitsJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := logx.CreateHandler(&buf, slog.LevelInfo, logx.FormatJSON)
	require.NotNil(t, handler)

	logger := slog.New(handler)
	logger.Info("hello", "file", "main.go")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "main.go", record["file"])
}

func TestCreateHandlerEmitsLogfmt(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	handler := logx.CreateHandler(&buf, slog.LevelWarn, logx.FormatLogfmt)
	logger := slog.New(handler)
	logger.Warn("skipping file")

	assert.Contains(t, buf.String(), "msg=\"skipping file\"")
}

func TestCreateHandlerWithStringsRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	_, err := logx.CreateHandlerWithStrings(&buf, "verbose", "json")
	require.ErrorIs(t, err, logx.ErrInvalidArgument)
	require.ErrorIs(t, err, logx.ErrUnknownLogLevel)
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := logx.NewConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, string(logx.FormatLogfmt), cfg.Format)
}

func TestConfigNewHandler(t *testing.T) {
	t.Parallel()

	cfg := logx.NewConfig()

	var buf bytes.Buffer

	handler, err := cfg.NewHandler(&buf)
	require.NoError(t, err)
	require.NotNil(t, handler)
}
