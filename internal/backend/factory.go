package backend

import (
	"fmt"
	"log/slog"

	"moneytracker/internal/storage"
)

// Open constructs the store named by config.Type.
func Open(config Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", config.DBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	case MemoryBackend:
		store := storage.NewMemoryStore()
		logger.Info("Initialized memory backend")
		return &Result{Store: store, Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
