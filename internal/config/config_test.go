package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "memory", cfg.StoreKind)
	assert.Equal(t, "resin.db", cfg.DBPath)
	assert.Equal(t, "data/resin_datasets.json", cfg.DatasetPath)
	assert.Equal(t, "exports", cfg.ExportsDir)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RESIN_STORE", "sqlite")
	t.Setenv("RESIN_DB_PATH", "/var/lib/resin/resin.db")
	t.Setenv("RESIN_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "sqlite", cfg.StoreKind)
	assert.Equal(t, "/var/lib/resin/resin.db", cfg.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLogLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("garbage"))
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("simulation complete", "ions", 9)

	assert.Contains(t, stderr.String(), "simulation complete")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry))
	assert.Equal(t, "simulation complete", entry["msg"])
	assert.Equal(t, float64(9), entry["ions"])
}

func TestSetupLoggerWithWritersRespectsLevel(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelWarn)

	logger.Debug("hidden")

	assert.Empty(t, stderr.String())
	assert.Empty(t, file.String())
}
