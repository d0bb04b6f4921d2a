// Package config loads application settings from the environment, with a
// .env file as an optional local override.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string // "json" or "text"
	Environment    string // "dev", "staging", "prod"
	LogDir         string
	DBPath         string // sqlite snapshot database path
	TickIntervalMS int    // simulation tick cadence
	RNGSeed        int64  // 0 = time-seeded
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		DBPath:      getEnv("DB_PATH", "data/farm.db"),
	}

	port, err := getEnvInt("PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	tick, err := getEnvInt("TICK_INTERVAL_MS", 250)
	if err != nil {
		return nil, err
	}
	if tick <= 0 {
		return nil, fmt.Errorf("TICK_INTERVAL_MS must be positive, got %d", tick)
	}
	cfg.TickIntervalMS = tick

	seed, err := getEnvInt("RNG_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.RNGSeed = int64(seed)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}
