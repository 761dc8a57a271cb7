package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds envprobe's runtime settings.
type Config struct {
	Python       string        // interpreter to use; empty means search PATH
	LogLevel     string        // zerolog level name for stderr diagnostics
	ProbeTimeout time.Duration // per helper run, 0 disables
}

// Load reads .env (when present in the working directory) and then the
// ENVPROBE_* environment variables. Variables already set in the process
// environment win over .env entries.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	timeoutSeconds, err := getInt("ENVPROBE_PROBE_TIMEOUT_SECONDS", 0)
	if err != nil {
		return Config{}, err
	}
	if timeoutSeconds < 0 {
		return Config{}, fmt.Errorf("invalid ENVPROBE_PROBE_TIMEOUT_SECONDS: %d is negative", timeoutSeconds)
	}

	return Config{
		Python:       getString("ENVPROBE_PYTHON", ""),
		LogLevel:     getString("ENVPROBE_LOG_LEVEL", "warn"),
		ProbeTimeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func getString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
