// Package storage persists the application state blob. The contract is
// deliberately narrow: whole-blob load, replace, and delete under a
// single key. Backends must make Save atomic at the blob level; the core
// guarantees it only ever hands over a fully materialized snapshot.
package storage

import (
	"context"
	"fmt"
)

// Store is the persistence boundary for the state blob.
type Store interface {
	// Load returns the blob for key and whether it exists.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	// Save replaces the blob for key.
	Save(ctx context.Context, key string, blob []byte) error
	// Clear deletes the blob for key. Clearing an absent key is a no-op.
	Clear(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Backend names accepted in server configuration.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config selects and parameterizes a backend.
type Config struct {
	Backend string `yaml:"backend"`
	// Path is the database file location for the sqlite backend.
	Path string `yaml:"path"`
	// Address is the host:port for the redis backend.
	Address string `yaml:"address"`
}

// Open constructs the configured backend. An empty backend name selects
// the in-memory store.
func Open(cfg Config) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemory(), nil
	case BackendSQLite:
		return OpenSQLite(cfg.Path)
	case BackendRedis:
		return NewRedis(cfg.Address), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
