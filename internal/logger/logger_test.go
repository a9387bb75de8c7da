package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/rehearse/internal/config"
)

func TestNew_Console(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		l, err := New(&config.Config{Env: env, Log: config.Log{Level: "info"}})
		require.NoError(t, err, env)
		assert.True(t, l.Core().Enabled(zap.InfoLevel))
		assert.False(t, l.Core().Enabled(zap.DebugLevel))
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&config.Config{Log: config.Log{Level: "loud"}})
	assert.Error(t, err)
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rehearse.log")
	l, err := New(&config.Config{Log: config.Log{Level: "debug", File: path, MaxSizeMB: 1}})
	require.NoError(t, err)

	l.Info("hello", zap.String("item", "a:b"))
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"item":"a:b"`)
}
