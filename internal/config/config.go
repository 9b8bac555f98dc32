package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the chronline service.
// Environment variables are parsed from the CHRONLINE_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort          int    `envconfig:"HTTP_PORT" default:"8080"`
	CORSAllowedOrigin string `envconfig:"CORS_ALLOWED_ORIGIN" default:"*"`

	// Storage: memory (default), sqlite, or postgres
	DBDriver    string `envconfig:"DB_DRIVER" default:"memory"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:""`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Health monitoring
	HealthIntervalSeconds     int `envconfig:"HEALTH_INTERVAL_SECONDS" default:"30"`
	HealthProbeTimeoutSeconds int `envconfig:"HEALTH_PROBE_TIMEOUT_SECONDS" default:"2"`
	BootstrapTimeoutSeconds   int `envconfig:"BOOTSTRAP_TIMEOUT_SECONDS" default:"5"`
}

// ResolveDefaults validates the driver selection and derives driver-specific
// defaults.
func (c *Config) ResolveDefaults() error {
	switch c.DBDriver {
	case "memory":
	case "sqlite":
		if c.SQLitePath == "" {
			c.SQLitePath = "./data/chronline.db"
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("CHRONLINE_POSTGRES_DSN is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Example: CHRONLINE_HTTP_PORT, CHRONLINE_DB_DRIVER.
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CHRONLINE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("db_driver", cfg.DBDriver).
		Int("port", cfg.HTTPPort).
		Str("cors_allowed_origin", cfg.CORSAllowedOrigin).
		Msg("Configuration loaded")

	return &cfg, nil
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
