package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"moneytracker/internal/core"
)

type Config struct {
	// Database
	SQLiteDBPath string

	// Backend selection
	DataBackend string

	// Reserved built-in type labels; locale-specific in the original data,
	// so they are configurable rather than hardcoded.
	IncomeLabel  string
	ExpenseLabel string

	// StrictAmounts rejects decimal input instead of stripping separators.
	StrictAmounts bool

	// Logging
	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/moneytracker.db"),
		DataBackend:  getEnv("DATA_BACKEND", "sqlite"),

		IncomeLabel:  getEnv("INCOME_LABEL", "income"),
		ExpenseLabel: getEnv("EXPENSE_LABEL", "expense"),

		StrictAmounts: getEnvBool("STRICT_AMOUNTS", false),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate data backend
	validBackends := []string{"memory", "sqlite"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	// Validate SQLite configuration if backend is sqlite
	if c.DataBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Reserved labels back tag validation and filter matching
	if c.IncomeLabel == "" {
		errors = append(errors, "income label cannot be empty")
	}
	if c.ExpenseLabel == "" {
		errors = append(errors, "expense label cannot be empty")
	}
	if c.IncomeLabel != "" && c.IncomeLabel == c.ExpenseLabel {
		errors = append(errors, fmt.Sprintf("income and expense labels must differ, both are '%s'", c.IncomeLabel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Labels returns the reserved built-in type labels.
func (c *Config) Labels() core.Labels {
	return core.Labels{Income: c.IncomeLabel, Expense: c.ExpenseLabel}
}

// AmountPolicy returns the amount parsing policy selected by StrictAmounts.
func (c *Config) AmountPolicy() core.AmountPolicy {
	if c.StrictAmounts {
		return core.AmountRejectDecimals
	}
	return core.AmountStripDecimals
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
