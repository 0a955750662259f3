package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"orderbot/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	DBMaxConns    int32
	DBAutoMigrate bool

	SessionTTL              time.Duration
	SessionEvictionSchedule string

	RabbitMQURL      string
	RabbitMQExchange string

	LogLevel        slog.Level
	ShutdownTimeout time.Duration
}

// LoadConfig reads envFile when it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var errs []string
	intVar := func(key string, def int) int {
		v, err := strconv.Atoi(getEnv(key, strconv.Itoa(def)))
		if err != nil || v <= 0 {
			errs = append(errs, key+" must be a positive integer")
			return def
		}
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := time.ParseDuration(getEnv(key, def.String()))
		if err != nil || v <= 0 {
			errs = append(errs, key+" must be a positive duration")
			return def
		}
		return v
	}
	boolVar := func(key string, def bool) bool {
		v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(def)))
		if err != nil {
			errs = append(errs, key+" must be a boolean")
			return def
		}
		return v
	}

	cfg := Config{
		HTTPPort:                getEnv("HTTP_PORT", "8000"),
		DBHost:                  getEnv("DB_HOST", "localhost"),
		DBPort:                  getEnv("DB_PORT", "5432"),
		DBUser:                  getEnv("DB_USER", "postgres"),
		DBPassword:              getEnv("DB_PASSWORD", "postgres"),
		DBName:                  getEnv("DB_NAME", "orderbot"),
		DBSslMode:               getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:              int32(min(intVar("DB_MAX_CONNS", 10), 1000)),
		DBAutoMigrate:           boolVar("DB_AUTO_MIGRATE", false),
		SessionTTL:              durationVar("SESSION_TTL", 30*time.Minute),
		SessionEvictionSchedule: getEnv("SESSION_EVICTION_SCHEDULE", "@every 1m"),
		RabbitMQURL:             getEnv("RABBITMQ_URL", ""),
		RabbitMQExchange:        getEnv("RABBITMQ_EXCHANGE", "orders_topic"),
		ShutdownTimeout:         durationVar("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		errs = append(errs, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

// Postgres returns the database part of the configuration.
func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSslMode,
		MaxConns: c.DBMaxConns,
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}
