// Package cli provides common CLI initialization utilities shared by the
// moneytracker entry point.
package cli

import (
	"os"

	"github.com/joho/godotenv"
	"moneytracker/internal/backend"
	"moneytracker/internal/config"
	"moneytracker/internal/log"
)

// SetupLogger initializes structured logging with the configured level.
// Returns the configured logger and sets it as the default logger.
func SetupLogger(level string) *log.Logger {
	logger := log.New(log.ComponentApp, log.ParseLevel(level))
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitBackend opens the configured store.
// Returns the backend result or exits the process on failure.
func InitBackend(logger *log.Logger, cfg *config.Config) *backend.Result {
	result, err := backend.Open(backend.Config{
		Type:   backend.Type(cfg.DataBackend),
		DBPath: cfg.SQLiteDBPath,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize backend", log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return result
}
