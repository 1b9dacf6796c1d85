package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			xdg.Reload()
			t.Cleanup(xdg.Reload)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "file-clean", "file-clean.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestLogFilePath(t *testing.T) {
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	path, err := logFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(stateHome, "file-clean", "file-clean.log"), path)
	assert.DirExists(t, filepath.Dir(path))
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, zerolog.DebugLevel)

	logger := GetLogger("walker")
	logger.Info().Msg("scanning")

	assert.Contains(t, buf.String(), `"component":"walker"`)
	assert.Contains(t, buf.String(), "scanning")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, zerolog.DebugLevel)

	logger := WithFields(map[string]interface{}{"path": "/tmp/x", "count": 3})
	logger.Info().Msg("fields")

	out := buf.String()
	assert.Contains(t, out, `"path":"/tmp/x"`)
	assert.Contains(t, out, `"count":3`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	SetupWriter(&buf, zerolog.DebugLevel)

	done := LogOperationStart(GetLogger("test"), "classify")
	done()

	out := buf.String()
	require.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"classify"`)
}
