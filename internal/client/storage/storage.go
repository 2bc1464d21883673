// Package storage defines the persistent key-value store the client caches
// session and profile records in, plus the BadgerDB-backed implementation
// used in production and an in-memory one for tests.
//
// The store is advisory: every value it holds is a restart cache, never the
// authoritative copy. Callers are expected to swallow storage errors and
// degrade to "no saved data".
package storage

import "context"

// Logical keys. Values are JSON-serialized records from the models package.
const (
	KeyAuth    = "@app_auth"
	KeyProfile = "@app_user_profile"
)

// Store is an asynchronous string-keyed blob store.
//
// Get returns (nil, nil) when the key is absent; a non-nil error means the
// read itself failed. Individual operations are atomic; DeleteMany is
// best-effort across keys unless the backend can delete them in one
// transaction (the Badger implementation can).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys []string) error
	Close() error
}
