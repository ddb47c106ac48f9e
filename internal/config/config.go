package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Store  StoreConfig
	UPI    UPIConfig
	Auth   AuthConfig
	Logger LoggerConfig
}

// StoreConfig holds durable-store configuration.
type StoreConfig struct {
	Path         string
	PollInterval time.Duration
}

// UPIConfig holds the static payment payee details.
type UPIConfig struct {
	PayeeID   string
	PayeeName string
}

// AuthConfig holds the admin gate configuration.
type AuthConfig struct {
	AdminPassword string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Store: StoreConfig{
			Path:         getEnv("POS_STORE_PATH", "data/pos.db"),
			PollInterval: time.Duration(getEnvAsInt("POS_POLL_INTERVAL_SECONDS", 10)) * time.Second,
		},
		UPI: UPIConfig{
			PayeeID:   getEnv("POS_UPI_ID", ""),
			PayeeName: getEnv("POS_UPI_NAME", "Kerala Veg Restaurant"),
		},
		Auth: AuthConfig{
			AdminPassword: getEnv("POS_ADMIN_PASSWORD", ""),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Store.Path == "" {
		return fmt.Errorf("store path is required")
	}

	if c.Store.PollInterval < time.Second {
		return fmt.Errorf("poll interval must be at least one second")
	}

	if c.UPI.PayeeID == "" {
		return fmt.Errorf("UPI payee id is required")
	}

	if c.UPI.PayeeName == "" {
		return fmt.Errorf("UPI payee name is required")
	}

	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("admin password is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
