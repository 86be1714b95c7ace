package config

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Port     string
	LogLevel string
	GinMode  string

	DBDriver          string
	DatabaseURL       string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	TxIsolation       sql.IsolationLevel
	MigrateOnStart    bool

	CORSOrigins    []string
	MetricsEnabled bool
	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads an optional .env file and then the process environment. Every
// malformed value is reported, not just the first one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var errs []error
	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8080"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		GinMode:     getEnvOrDefault("GIN_MODE", "debug"),
		DBDriver:    strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverPostgres)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
	}

	cfg.DBMaxOpenConns = getInt("DB_MAX_OPEN_CONNS", 25, &errs)
	cfg.DBMaxIdleConns = getInt("DB_MAX_IDLE_CONNS", 5, &errs)
	cfg.DBConnMaxLifetime = getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute, &errs)
	cfg.MigrateOnStart = getBool("MIGRATE_ON_START", true, &errs)
	cfg.MetricsEnabled = getBool("METRICS_ENABLED", true, &errs)
	cfg.RateLimitRPS = getFloat("RATE_LIMIT_RPS", 0, &errs)
	cfg.RateLimitBurst = getInt("RATE_LIMIT_BURST", 0, &errs)

	isolation, err := ParseIsolation(getEnvOrDefault("DB_TX_ISOLATION", "serializable"))
	if err != nil {
		errs = append(errs, err)
	}
	cfg.TxIsolation = isolation

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL environment variable is required"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, cfg.DBDriver))
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE must be debug, release or test, got %q", cfg.GinMode))
	}

	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

// RateLimitEnabled is false when either rate limit setting is zero.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0 && c.RateLimitBurst > 0
}

func ParseIsolation(value string) (sql.IsolationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "serializable":
		return sql.LevelSerializable, nil
	case "repeatable_read", "repeatable read":
		return sql.LevelRepeatableRead, nil
	case "read_committed", "read committed":
		return sql.LevelReadCommitted, nil
	case "default", "":
		return sql.LevelDefault, nil
	}
	return sql.LevelDefault, fmt.Errorf("DB_TX_ISOLATION %q is not supported", value)
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return v
}

func getFloat(key string, defaultValue float64, errs *[]error) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return v
}

func getBool(key string, defaultValue bool, errs *[]error) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration, errs *[]error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
