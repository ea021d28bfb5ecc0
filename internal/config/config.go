package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liamashdown/flowintel/internal/secrets"
)

// RouteTable selects which endpoint set the API mounts
type RouteTable string

const (
	RouteTablePrimary RouteTable = "primary"
	RouteTableLegacy  RouteTable = "legacy"
	RouteTableBoth    RouteTable = "both"
)

// Config holds all application configuration
type Config struct {
	// Environment
	Environment string
	LogLevel    string

	// HTTP
	HTTPPort        int
	HealthPort      int
	CORSOrigins     []string
	RouteTable      RouteTable
	ShutdownTimeout time.Duration

	// Synthetic data; zero seeds from the clock
	RandomSeed int64

	// Database, optional
	DatabaseDSN         string
	DatabaseMaxConns    int
	DatabaseMaxIdleTime time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	dsn, err := secrets.GetSecret("DATABASE_DSN", "")
	if err != nil {
		return nil, fmt.Errorf("load DATABASE_DSN: %w", err)
	}

	cfg := &Config{
		Environment:         getEnv("ENVIRONMENT", "production"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		HTTPPort:            getEnvInt("HTTP_PORT", 8001),
		HealthPort:          getEnvInt("HEALTH_PORT", 8080),
		CORSOrigins:         parseCSV(getEnv("CORS_ORIGINS", "*")),
		RouteTable:          RouteTable(strings.ToLower(getEnv("ROUTE_TABLE", string(RouteTableBoth)))),
		ShutdownTimeout:     time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		RandomSeed:          getEnvInt64("RANDOM_SEED", 0),
		DatabaseDSN:         dsn,
		DatabaseMaxConns:    getEnvInt("DATABASE_MAX_CONNS", 10),
		DatabaseMaxIdleTime: time.Duration(getEnvInt("DATABASE_MAX_IDLE_TIME_MINS", 5)) * time.Minute,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks configuration for errors
func (c *Config) Validate() error {
	if err := validPort("HTTP_PORT", c.HTTPPort); err != nil {
		return err
	}
	if err := validPort("HEALTH_PORT", c.HealthPort); err != nil {
		return err
	}
	if c.HTTPPort == c.HealthPort {
		return fmt.Errorf("HTTP_PORT and HEALTH_PORT must differ (both %d)", c.HTTPPort)
	}

	switch c.RouteTable {
	case RouteTablePrimary, RouteTableLegacy, RouteTableBoth:
	default:
		return fmt.Errorf("invalid ROUTE_TABLE: %s (must be primary, legacy, or both)", c.RouteTable)
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if len(c.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	for _, o := range c.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("invalid CORS_ORIGINS entry: %s (must be * or an http(s) origin)", o)
		}
	}

	if c.DatabaseDSN != "" && c.DatabaseMaxConns < 1 {
		return fmt.Errorf("DATABASE_MAX_CONNS must be positive, got %d", c.DatabaseMaxConns)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_SEC must be positive")
	}

	return nil
}

// MountsPrimary reports whether the primary endpoint set is served
func (c *Config) MountsPrimary() bool {
	return c.RouteTable == RouteTablePrimary || c.RouteTable == RouteTableBoth
}

// MountsLegacy reports whether the legacy endpoint set is served
func (c *Config) MountsLegacy() bool {
	return c.RouteTable == RouteTableLegacy || c.RouteTable == RouteTableBoth
}

// AllowsAllOrigins reports whether CORS_ORIGINS is the wildcard
func (c *Config) AllowsAllOrigins() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func validPort(name string, port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid %s: %d (must be 1-65535)", name, port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func parseCSV(s string) []string {
	var result []string
	for _, item := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
