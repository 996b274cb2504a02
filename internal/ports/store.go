package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get for an absent key
var ErrKeyNotFound = errors.New("key not found")

// KVStore is a synchronous string key-value store holding whole serialized
// collections under a handful of keys.
type KVStore interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key, value string) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	Close() error
}
