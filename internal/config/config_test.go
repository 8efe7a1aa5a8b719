package config

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "VERSION", "LOG_LEVEL", "FILTER_WORKERS"} {
		_ = os.Unsetenv(key)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "1.0.0", cfg.Version)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.FilterWorkers)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	_ = os.Setenv("PORT", "9090")
	_ = os.Setenv("VERSION", "2.0.0")
	_ = os.Setenv("LOG_LEVEL", "debug")
	_ = os.Setenv("FILTER_WORKERS", "8")
	defer clearEnv(t)

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "2.0.0", cfg.Version)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.FilterWorkers)
}

func TestLoad_InvalidWorkerCountFallsBack(t *testing.T) {
	clearEnv(t)
	_ = os.Setenv("FILTER_WORKERS", "not-a-number")
	defer clearEnv(t)

	cfg := Load()

	assert.Equal(t, 4, cfg.FilterWorkers)
}

func TestSetupLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected zerolog.Level
	}{
		{
			name:     "info level",
			logLevel: "info",
			expected: zerolog.InfoLevel,
		},
		{
			name:     "debug level",
			logLevel: "debug",
			expected: zerolog.DebugLevel,
		},
		{
			name:     "warn level",
			logLevel: "warn",
			expected: zerolog.WarnLevel,
		},
		{
			name:     "unknown level falls back to info",
			logLevel: "loud",
			expected: zerolog.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Version: "1.0.0", LogLevel: tt.logLevel}
			logger := cfg.SetupLogger()
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}
