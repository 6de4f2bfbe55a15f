package wire

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars() {
	envKeys := []string{
		"SERVER_HOST", "SERVER_PORT", "ENVIRONMENT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"REALTIME_WORKERS", "REALTIME_BUFFER", "REALTIME_SUB_BUFFER",
		"LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT",
	}

	for _, key := range envKeys {
		os.Unsetenv(key)
	}
}

func TestProvideConfig_Defaults(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	cfg := ProvideConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	// The stream endpoint holds its connection open.
	assert.Equal(t, 0, cfg.Server.WriteTimeout)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, "pitchside_db", cfg.Database.DatabaseName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	assert.Equal(t, 4, cfg.Realtime.Workers)
	assert.Equal(t, 1000, cfg.Realtime.ChannelBufferSize)
	assert.Equal(t, 64, cfg.Realtime.SubscriberBuffer)

	assert.Equal(t, 50, cfg.Chat.DefaultPageSize)
	assert.Equal(t, 100, cfg.Chat.MaxPageSize)

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestProvideConfig_EnvironmentOverrides(t *testing.T) {
	clearTestEnvVars()

	testEnvVars := map[string]string{
		"SERVER_PORT":      "9090",
		"DB_HOST":          "db.internal",
		"DB_NAME":          "pitchside_test",
		"REALTIME_WORKERS": "8",
		"LOG_LEVEL":        "debug",
	}
	for key, value := range testEnvVars {
		os.Setenv(key, value)
	}
	defer clearTestEnvVars()

	cfg := ProvideConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "pitchside_test", cfg.Database.DatabaseName)
	assert.Equal(t, 8, cfg.Realtime.Workers)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestGetIntEnvOrDefault(t *testing.T) {
	os.Setenv("TEST_INT", "42")
	defer os.Unsetenv("TEST_INT")

	assert.Equal(t, 42, getIntEnvOrDefault("TEST_INT", 10))

	os.Setenv("INVALID_INT", "not-a-number")
	defer os.Unsetenv("INVALID_INT")

	assert.Equal(t, 10, getIntEnvOrDefault("INVALID_INT", 10))
	assert.Equal(t, 100, getIntEnvOrDefault("NON_EXISTENT_INT", 100))
}
