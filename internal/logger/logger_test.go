package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "export"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"format": "css", "path": "tokens.json"})
	log.Info("export written")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "export written", entry["message"])
	require.Equal(t, "css", entry["format"])
	require.Equal(t, "tokens.json", entry["path"])
	require.Equal(t, "export", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerFieldOrderIsStable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"zeta": 1, "alpha": 2, "mid": 3}).Info("ordered")

	line := buf.String()
	require.Less(t, strings.Index(line, `"alpha"`), strings.Index(line, `"mid"`))
	require.Less(t, strings.Index(line, `"mid"`), strings.Index(line, `"zeta"`))
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.With("document", "brand.yaml")
	log.Error(errors.New("boom"), "reload failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "reload failed", entry["message"])
	require.Equal(t, "brand.yaml", entry["document"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	nilLogger.Info("ignored")
	nilLogger.Error(errors.New("ignored"), "ignored")

	Nop().With("a", 1).Warn("ignored")
}
