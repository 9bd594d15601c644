// Package config loads mock API configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the mock API configuration.
type Config struct {
	Server ServerConfig `validate:"required"`
	Mocks  MocksConfig  `validate:"required"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port               string `validate:"required"`
	RateLimitPerMinute int    `validate:"min=1,max=1000"`
	ReadTimeout        int    `validate:"min=1"` // seconds
	WriteTimeout       int    `validate:"min=1"` // seconds
}

// MocksConfig holds the location of the generated fixture files.
type MocksConfig struct {
	Dir string `validate:"required"`
}

// Load reads configuration from environment variables, falling back to
// defaults. A .env file is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8081"),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
			ReadTimeout:        getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:       getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
		},
		Mocks: MocksConfig{
			Dir: getEnv("MOCKS_DIR", "mocks"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// getEnv gets an environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
