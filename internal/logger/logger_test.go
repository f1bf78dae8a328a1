package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	pferrors "github.com/alexisbeaulieu97/passforge/pkg/errors"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"length": 12, "command": "generate"})
	log.Info("password generated")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "password generated", entry["message"])
	require.Equal(t, float64(12), entry["length"])
	require.Equal(t, "generate", entry["command"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithField("key", "dark")
	log.Error(errors.New("boom"), "theme save failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "theme save failed", entry["message"])
	require.Equal(t, "dark", entry["key"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"shouty", "trace", "panic"} {
		_, err := New(Options{Level: level})
		var validationErr *pferrors.ValidationError
		require.ErrorAs(t, err, &validationErr, level)
		require.Equal(t, "log_level", validationErr.Field)
	}
}

func TestValidLevelIgnoresCase(t *testing.T) {
	t.Parallel()

	require.True(t, ValidLevel("DEBUG"))
	require.True(t, ValidLevel("warn"))
	require.False(t, ValidLevel(""))
	require.False(t, ValidLevel("fatal"))

	level, err := ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, level)
}

func TestLoggerVerboseForcesDebug(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "error", Verbose: true, Component: "cli", Writer: buf})
	require.NoError(t, err)

	log.Debug("settings loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "debug", entry["level"])
	require.Equal(t, "cli", entry["component"])
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	require.Nil(t, nilLog.WithField("a", 1))
	nilLog.Info("ignored")
	nilLog.Warn("ignored")
	nilLog.Error(errors.New("x"), "ignored")

	nop := Nop()
	nop.WithField("a", 1).Info("ignored")
}
