package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid sqlite backend config",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "./test.db",
				IncomeLabel:  "income",
				ExpenseLabel: "expense",
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				DataBackend:  "memory",
				IncomeLabel:  "収入",
				ExpenseLabel: "支出",
			},
			wantErr: false,
		},
		{
			name: "invalid backend",
			config: Config{
				DataBackend:  "redis",
				IncomeLabel:  "income",
				ExpenseLabel: "expense",
			},
			wantErr:     true,
			errorString: "invalid data backend 'redis'",
		},
		{
			name: "empty sqlite path",
			config: Config{
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
				IncomeLabel:  "income",
				ExpenseLabel: "expense",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name: "empty income label",
			config: Config{
				DataBackend:  "memory",
				IncomeLabel:  "",
				ExpenseLabel: "expense",
			},
			wantErr:     true,
			errorString: "income label cannot be empty",
		},
		{
			name: "identical labels",
			config: Config{
				DataBackend:  "memory",
				IncomeLabel:  "cash",
				ExpenseLabel: "cash",
			},
			wantErr:     true,
			errorString: "labels must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("expected sqlite default backend, got %s", cfg.DataBackend)
	}
	if cfg.IncomeLabel != "income" || cfg.ExpenseLabel != "expense" {
		t.Fatalf("unexpected default labels: %s/%s", cfg.IncomeLabel, cfg.ExpenseLabel)
	}
	if cfg.StrictAmounts {
		t.Fatal("strict amounts should default off")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DATA_BACKEND", "memory")
	t.Setenv("STRICT_AMOUNTS", "true")
	t.Setenv("INCOME_LABEL", "収入")

	cfg := Load()
	if cfg.DataBackend != "memory" {
		t.Fatalf("expected memory backend, got %s", cfg.DataBackend)
	}
	if !cfg.StrictAmounts {
		t.Fatal("expected strict amounts on")
	}
	if cfg.Labels().Income != "収入" {
		t.Fatalf("unexpected income label %s", cfg.Labels().Income)
	}
}
