// Package store implements the SimHub collection stores: a generic
// collection engine with seed-once bootstrap, an in-memory mirror, and
// write-through persistence to the key-value store, instantiated for jobs,
// experts, software, and hardware, plus the user directory and session
// store.
//
// Within one process the mirrors are guarded by locks and safe for
// concurrent handlers. Two processes sharing one store file are NOT
// coordinated: each holds its own mirror and the last writer wins.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Persisted collection keys.
const (
	KeyUsers       = "users-directory"
	KeyCurrentUser = "current-user"
	KeyJobs        = "jobs-collection"
	KeyExperts     = "experts-collection"
	KeySoftware    = "software-collection"
	KeyHardware    = "hardware-collection"
)

// kv is the subset of kvstore.KV the collections need.
type kv interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

var lastID atomic.Int64

// newID returns a time-derived identifier. Consecutive calls within the
// same nanosecond are bumped forward so IDs stay unique in-process.
func newID(now time.Time) string {
	candidate := now.UnixNano()
	for {
		prev := lastID.Load()
		if candidate <= prev {
			candidate = prev + 1
		}
		if lastID.CompareAndSwap(prev, candidate) {
			return strconv.FormatInt(candidate, 10)
		}
	}
}

// collection owns one named, persisted sequence of entities. All reads are
// served from the in-memory mirror; every mutation rewrites the full
// persisted value before returning.
type collection[T any] struct {
	kv   kv
	key  string
	seed func() []T
	id   func(T) string

	mu     sync.RWMutex
	items  []T
	loaded bool
}

func newCollection[T any](kv kv, key string, seed func() []T, id func(T) string) *collection[T] {
	return &collection[T]{kv: kv, key: key, seed: seed, id: id}
}

// Initialize loads the persisted collection, seeding it first if no value
// exists under the key. Idempotent: once data exists it is never replaced
// by the seed.
func (c *collection[T]) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}

	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.key, err)
	}
	if ok {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("decode %s: %w", c.key, err)
		}
		c.items = items
		c.loaded = true
		return nil
	}

	items := c.seed()
	if err := c.persistLocked(ctx, items); err != nil {
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

// All returns a copy of the mirror in insertion order.
func (c *collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the entity with the given id, or ErrNotFound.
func (c *collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.id(item) == id {
			return item, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Insert appends the entity and persists the collection.
func (c *collection[T]) Insert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := append(append([]T(nil), c.items...), item)
	if err := c.persistLocked(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Mutate applies fn to the entity with the given id and persists the
// collection. Returns ErrNotFound without persisting if no entity matches.
func (c *collection[T]) Mutate(ctx context.Context, id string, fn func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := -1
	for i, item := range c.items {
		if c.id(item) == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	next := append([]T(nil), c.items...)
	fn(&next[idx])
	if err := c.persistLocked(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

// Remove deletes the entity with the given id and persists the collection.
// Returns ErrNotFound without persisting if no entity matches.
func (c *collection[T]) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := make([]T, 0, len(c.items))
	found := false
	for _, item := range c.items {
		if !found && c.id(item) == id {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		return ErrNotFound
	}
	if err := c.persistLocked(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

func (c *collection[T]) persistLocked(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", c.key, err)
	}
	return nil
}
