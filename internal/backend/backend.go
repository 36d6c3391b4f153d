// Package backend selects and opens the durable store implementation.
package backend

import "moneytracker/internal/storage"

// Type names a store implementation.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Result contains the opened store and an optional cleanup function.
type Result struct {
	Store   storage.KV
	Cleanup CleanupFunc
}

// Config holds what Open needs to construct a store.
type Config struct {
	Type   Type
	DBPath string
}
