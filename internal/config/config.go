package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"fakegen/internal/generate"
)

// Defaults for the CLI layer. The confirmation threshold is deliberately a
// separate knob from the generator's collision advisory threshold.
const (
	DefaultCount            = 1000
	DefaultBasePath         = "output/test_data"
	DefaultConfirmThreshold = 1_000_000
)

// AppConfig holds the CLI-layer defaults. The core generate and export
// packages take explicit arguments; nothing here reaches them directly.
type AppConfig struct {
	DefaultCount     int
	DefaultBasePath  string
	WarnThreshold    int
	ConfirmThreshold int
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (useful for installed
	// binaries).
	if exePath, err := os.Executable(); err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to the current working directory (useful for go run).
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables")
	}

	cfg := &AppConfig{
		DefaultCount:     getEnvInt("FAKEGEN_COUNT", DefaultCount),
		DefaultBasePath:  getEnv("FAKEGEN_OUTPUT", DefaultBasePath),
		WarnThreshold:    getEnvInt("FAKEGEN_WARN_THRESHOLD", generate.DefaultWarnThreshold),
		ConfirmThreshold: getEnvInt("FAKEGEN_CONFIRM_THRESHOLD", DefaultConfirmThreshold),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
