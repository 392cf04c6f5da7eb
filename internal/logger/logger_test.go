package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesWarningsToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(Config{Dir: dir}))
	t.Cleanup(Close)

	assert.Equal(t, log.WarnLevel, L().GetLevel())

	Info("hidden message")
	Warn("calendar is overloaded", "days", 2)
	Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "calendar is overloaded")
	assert.Contains(t, string(data), "days=2")
	assert.NotContains(t, string(data), "hidden message")
}

func TestInit_DebugLowersLevel(t *testing.T) {
	require.NoError(t, Init(Config{Debug: true, Dir: t.TempDir()}))
	t.Cleanup(Close)

	assert.Equal(t, log.DebugLevel, L().GetLevel())
	Debug("debug message")
	Error("error message")
}

func TestInit_WithoutDirDiscards(t *testing.T) {
	require.NoError(t, Init(Config{}))
	assert.NotNil(t, L())
	Warn("goes nowhere")
}

func TestL_BeforeInit(t *testing.T) {
	saved := logger
	logger = nil
	t.Cleanup(func() { logger = saved })

	assert.NotNil(t, L())
	Info("no logger yet")
}
