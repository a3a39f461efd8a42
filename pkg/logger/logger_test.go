package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yockii/styleguide/pkg/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("not initialised", F("k", "v"))
	})
}

func TestWithAddsFields(t *testing.T) {
	prev := logger
	t.Cleanup(func() { logger = prev })

	core, logs := observer.New(zap.DebugLevel)
	logger = zap.New(core)
	With(F("run_id", 42))
	Info("hello", F("chapter", 3))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.EqualValues(t, 42, entry.ContextMap()["run_id"])
	assert.EqualValues(t, 3, entry.ContextMap()["chapter"])
}

func TestInitWritesFile(t *testing.T) {
	prev := logger
	t.Cleanup(func() { logger = prev })
	config.Reset()
	t.Cleanup(config.Reset)
	chdir(t, t.TempDir())

	require.NoError(t, config.Init())
	logFile := filepath.Join(t.TempDir(), "nested", "app.log")
	config.Set("log.filename", logFile)
	config.Set("log.console", false)
	config.Set("log.level", "debug")

	Init()
	Debug("written")
	require.NoError(t, Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written"`)
	assert.Contains(t, string(data), `"level":"DEBUG"`)
}

func TestInitWarnsWhenLogDirUnusable(t *testing.T) {
	prev, prevErr := logger, stderr
	t.Cleanup(func() { logger, stderr = prev, prevErr })
	config.Reset()
	t.Cleanup(config.Reset)
	chdir(t, t.TempDir())

	var buf bytes.Buffer
	stderr = zapcore.AddSync(&buf)

	require.NoError(t, config.Init())
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	config.Set("log.filename", filepath.Join(blocker, "app.log"))
	config.Set("log.console", false)

	Init()
	require.NoError(t, Sync())

	assert.Contains(t, buf.String(), "file logging disabled")
	assert.Contains(t, buf.String(), "WARN")
}

// chdir changes the working directory for the duration of the test
// and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
