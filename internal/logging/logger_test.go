package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"mosaic-tui/internal/config"
)

func TestDisabledIsNop(t *testing.T) {
	logger, err := New(config.LoggingConfig{Enabled: false}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "nop logger should not accept any level")
}

func TestFileLoggerCarriesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mosaic.log")
	logger, err := New(config.LoggingConfig{Enabled: true, Path: path, Level: "info"}, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("view changed")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "view changed", entry["msg"])
	session, ok := entry["session"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(session)
	assert.NoError(t, err)
}

func TestVerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.log")
	logger, err := New(config.LoggingConfig{Enabled: true, Path: path, Level: "error"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestBadLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Enabled: true, Path: filepath.Join(t.TempDir(), "x.log"), Level: "loud"}, false)
	assert.ErrorContains(t, err, "failed to parse log level")
}
