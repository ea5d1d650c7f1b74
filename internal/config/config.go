package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds all configuration values.
type Config struct {
	// Persistence
	StoreKind string
	DBPath    string

	// Data files
	DatasetPath   string
	OverridesPath string

	// Export artifacts
	ExportsDir string

	// Logging
	LogFile  string
	LogLevel slog.Level
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		StoreKind: getEnv("RESIN_STORE", "memory"),
		DBPath:    getEnv("RESIN_DB_PATH", "resin.db"),

		DatasetPath:   getEnv("RESIN_DATASET_PATH", "data/resin_datasets.json"),
		OverridesPath: getEnv("RESIN_OVERRIDES_FILE", ""),

		ExportsDir: getEnv("RESIN_EXPORTS_DIR", "exports"),

		LogFile:  getEnv("RESIN_LOG_FILE", "/tmp/resinctl.log"),
		LogLevel: parseLogLevel(getEnv("RESIN_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
