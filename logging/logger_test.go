package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	dev, err := NewLogger(true, "")
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))

	prod, err := NewLogger(false, "")
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, prod.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "imgcanvas.log")

	logger, err := NewLogger(false, path)
	require.NoError(t, err)

	logger.Info("stage complete", zap.String("stage", "resize"), zap.Int("bytes", 42))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"stage complete"`)
	assert.Contains(t, string(data), `"stage":"resize"`)
	assert.Contains(t, string(data), `"bytes":42`)
}

func TestDefaultFileWriterConfig(t *testing.T) {
	cfg := DefaultFileWriterConfig()
	assert.Equal(t, DefaultMaxSizeMB, cfg.MaxSizeMB)
	assert.Equal(t, DefaultMaxBackups, cfg.MaxBackups)
	assert.Equal(t, DefaultMaxAgeDays, cfg.MaxAgeDays)
	assert.True(t, cfg.Compress)
}
