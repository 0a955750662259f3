package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_CONNS", "DB_AUTO_MIGRATE", "SESSION_TTL", "SESSION_EVICTION_SCHEDULE",
	"RABBITMQ_URL", "RABBITMQ_EXCHANGE", "LOG_LEVEL", "SHUTDOWN_TIMEOUT",
}

// clearEnv blanks every config key for the duration of the test; getEnv
// treats an empty value as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "@every 1m", cfg.SessionEvictionSchedule)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "orders_topic", cfg.RabbitMQExchange)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv sets variables it loads; remember to unset them.
	for _, k := range []string{"DB_NAME", "SESSION_TTL", "LOG_LEVEL"} {
		t.Cleanup(func() { _ = os.Unsetenv(k) })
		require.NoError(t, os.Unsetenv(k))
	}

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=pandeyji\nSESSION_TTL=5m\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "pandeyji", cfg.DBName)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_CONNS", "many")
	t.Setenv("SESSION_TTL", "-1s")
	t.Setenv("DB_AUTO_MIGRATE", "sometimes")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := LoadConfig("")
	require.Error(t, err)
	for _, key := range []string{"DB_MAX_CONNS", "SESSION_TTL", "DB_AUTO_MIGRATE", "LOG_LEVEL"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestConfig_Postgres(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "n", DBSslMode: "disable", DBMaxConns: 4}
	pg := cfg.Postgres()
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=disable", pg.DSN())
	assert.Equal(t, int32(4), pg.MaxConns)
}
