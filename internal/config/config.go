// Package config loads runtime configuration from the environment, with
// optional .env file support.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTPTimeout bounds remote image fetches.
	HTTPTimeout time.Duration

	// OCRLanguage is the Tesseract language code.
	OCRLanguage string

	// TessdataDir overrides the Tesseract traineddata directory.
	TessdataDir string

	// Preprocess enables the scan-cleanup chain before OCR.
	Preprocess bool

	// LogLevel is the zerolog level name (debug, info, warn, error).
	LogLevel string
}

// Load reads configuration from environment variables, after best-effort
// loading of a .env file from the working directory. Unset variables fall
// back to defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPTimeout: getEnvAsDuration("EMAILSCAN_HTTP_TIMEOUT", 30*time.Second),
		OCRLanguage: getEnv("EMAILSCAN_OCR_LANGUAGE", "eng"),
		TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		Preprocess:  getEnvAsBool("EMAILSCAN_PREPROCESS", true),
		LogLevel:    getEnv("EMAILSCAN_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
