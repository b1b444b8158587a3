// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	API         APIConfig
	Logger      LoggerConfig
	Locale      string
}

type APIConfig struct {
	BaseURL        string
	RequestTimeout int // seconds
	RateLimit      float64
	RateBurst      int
}

type LoggerConfig struct {
	Level  string
	Format string // "json" or "text"
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		API: APIConfig{
			BaseURL:        getEnv("API_BASE_URL", "http://localhost:5000"),
			RequestTimeout: getEnvAsInt("API_REQUEST_TIMEOUT", 15),
			RateLimit:      getEnvAsFloat("API_RATE_LIMIT", 10),
			RateBurst:      getEnvAsInt("API_RATE_BURST", 10),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Locale: getEnv("DEFAULT_LOCALE", "vi"),
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if c.API.RequestTimeout < 1 {
		return fmt.Errorf("invalid API request timeout: %d", c.API.RequestTimeout)
	}

	if c.API.RateLimit <= 0 {
		return fmt.Errorf("invalid API rate limit: %f", c.API.RateLimit)
	}

	if c.API.RateBurst < 1 {
		return fmt.Errorf("invalid API rate burst: %d", c.API.RateBurst)
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

	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	if c.Locale != "vi" && c.Locale != "en" {
		return fmt.Errorf("unsupported locale: %s", c.Locale)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
