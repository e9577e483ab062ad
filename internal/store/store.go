// Package store implements the durable key-value layer the record
// collections persist into.  The contract is intentionally small: each
// collection serializes to a single JSON array held under one string
// key, and every write replaces the whole value.  Redis is the durable
// backend; an in-process map stands in when Redis is unreachable so the
// console keeps working with session-only state.
package store

import (
	"context"
	"errors"
)

// ErrWriteFailed wraps any storage write rejection (connection loss,
// quota, timeout).  Callers keep their in-memory state and surface the
// failure as a recoverable condition rather than crashing.
var ErrWriteFailed = errors.New("storage write failed")

// Store is the key-value persistence primitive.  Values are opaque
// strings; collections put JSON arrays in them.
type Store interface {
	// Get returns the value under key.  The boolean is false when the
	// key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key, replacing any prior value.
	Set(ctx context.Context, key string, value string) error
	// Ping verifies the backend is reachable.
	Ping(ctx context.Context) error
}
