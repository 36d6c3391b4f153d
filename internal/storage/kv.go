// Package storage provides durable key-value persistence for the tracker:
// a sqlite-backed store, an in-memory store for tests and ephemeral runs,
// and a typed repository mapping the logical collections onto keys.
package storage

import "context"

// KV is durable key-value storage addressed by string keys. Values are
// opaque serialized blobs; every write replaces the full value.
type KV interface {
	// Get returns the value for key. The second result is false when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Close() error
}
