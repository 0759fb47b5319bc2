// Package kvstore provides the persistent key-value store backing the
// SimHub collections. Every value is a JSON document stored under a fixed
// key; the store knows nothing about collection shapes.
package kvstore

import "context"

// Backend defines common key-value operations across backends.
type Backend interface {
	Ensure(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// KV wraps a Backend with a stable API.
type KV struct {
	backend Backend
}

// New constructs a KV wrapper for the provided backend.
func New(backend Backend) *KV {
	return &KV{backend: backend}
}

// Ensure prepares the backend for use (creates the schema if missing).
func (s *KV) Ensure(ctx context.Context) error {
	return s.backend.Ensure(ctx)
}

// Get returns the value stored under key. The second return value reports
// whether the key was present.
func (s *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.backend.Get(ctx, key)
}

// Put stores value under key, replacing any previous value.
func (s *KV) Put(ctx context.Context, key string, value []byte) error {
	return s.backend.Put(ctx, key, value)
}

// Delete removes the value stored under key. Deleting an absent key is not
// an error.
func (s *KV) Delete(ctx context.Context, key string) error {
	return s.backend.Delete(ctx, key)
}

// Close releases backend resources.
func (s *KV) Close() error {
	return s.backend.Close()
}
