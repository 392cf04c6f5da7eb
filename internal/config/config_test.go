package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.Budget, cfg.Budget)
	assert.Equal(t, def.DBPath, cfg.DBPath)
	assert.True(t, cfg.Plan.IncludeSunday)
	assert.False(t, cfg.Log.Debug)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
budget:
  sleeping_hours: 7
db_path: /tmp/cal.db
plan:
  include_sunday: false
log:
  debug: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 24.0, cfg.Budget.HoursPerDay)
	assert.Equal(t, 7.0, cfg.Budget.SleepingHours)
	assert.Equal(t, "/tmp/cal.db", cfg.DBPath)
	assert.False(t, cfg.Plan.IncludeSunday)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, 17.0, cfg.SchedulerBudget().AwakeHours())
}

func TestLoad_JSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{"budget": {"hours_per_day": 20, "sleeping_hours": 6}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 14.0, cfg.SchedulerBudget().AwakeHours())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "config.yaml", "budget:\n  sleeping_hours: 7\n")
	t.Setenv("WORKCAL_BUDGET__SLEEPING_HOURS", "9")
	t.Setenv("WORKCAL_DB_PATH", "/tmp/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9.0, cfg.Budget.SleepingHours)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}

func TestLoad_RejectsUnsupportedFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "config.toml", "x = 1"))
	assert.ErrorContains(t, err, "unsupported config format")
}

func TestLoad_RejectsInvalidBudget(t *testing.T) {
	path := writeConfig(t, "config.yaml", "budget:\n  hours_per_day: 8\n  sleeping_hours: 8\n")
	_, err := Load(path)
	assert.ErrorContains(t, err, "invalid budget")
}

func TestLoad_RejectsMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "config.json", "{not json"))
	assert.Error(t, err)
}
