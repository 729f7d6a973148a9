package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLevel("debug"))
	assert.Equal(t, LevelInfo, parseLevel("info"))
	assert.Equal(t, LevelWarn, parseLevel("warn"))
	assert.Equal(t, LevelWarn, parseLevel("warning"))
	assert.Equal(t, LevelError, parseLevel("error"))
	assert.Equal(t, LevelFatal, parseLevel("fatal"))
	assert.Equal(t, LevelInfo, parseLevel("nonsense"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "FATAL", LevelFatal.String())
}

func TestLevelFiltering(t *testing.T) {
	l, err := New(LevelWarn, "", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	l.logger.SetOutput(&buf)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "[WARN] kept warn")
	assert.Contains(t, out, "[ERROR] kept error")
}

func TestFileLogging(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "relay.log")

	l, err := New(LevelDebug, logPath, false)
	require.NoError(t, err)

	l.Info("session connected: %s", "abc-123")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "session connected: abc-123")
}

func TestPreserveAppends(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "relay.log")

	first, err := New(LevelInfo, logPath, true)
	require.NoError(t, err)
	first.Info("first run")
	require.NoError(t, first.Close())

	second, err := New(LevelInfo, logPath, true)
	require.NoError(t, err)
	second.Info("second run")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestTruncateWithoutPreserve(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "relay.log")

	first, err := New(LevelInfo, logPath, false)
	require.NoError(t, err)
	first.Info("first run")
	require.NoError(t, first.Close())

	second, err := New(LevelInfo, logPath, false)
	require.NoError(t, err)
	second.Info("second run")
	require.NoError(t, second.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestPackageFunctionsWithoutInit(t *testing.T) {
	saved := defaultLogger
	defaultLogger = nil
	defer func() { defaultLogger = saved }()

	// None of these should panic when the logger was never initialized.
	Debug("ignored")
	Info("ignored")
	Warn("ignored")
	Error("ignored")
}

func TestStderrFallbackPrefix(t *testing.T) {
	l, err := New(LevelDebug, "", false)
	require.NoError(t, err)

	var buf bytes.Buffer
	l.logger.SetOutput(&buf)
	l.Debug("formatted %d and %s", 42, "text")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "[DEBUG] formatted 42 and text"))
}
