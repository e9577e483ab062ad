package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// List loads and saves one ordered record sequence under a fixed key.
// Load falls back to the caller's seed when the key is absent or the
// stored value does not decode; Save always rewrites the whole
// sequence synchronously (write-through, no batching).
type List[T any] struct {
	store Store
	key   string
	log   zerolog.Logger
}

// NewList binds a List to a store and key.
func NewList[T any](s Store, key string, log zerolog.Logger) *List[T] {
	return &List[T]{store: s, key: key, log: log.With().Str("key", key).Logger()}
}

// Key returns the storage key the list persists under.
func (l *List[T]) Key() string {
	return l.key
}

// Load returns the persisted sequence, or seed when nothing usable is
// stored.  A corrupt value is logged and treated the same as an absent
// one; the caller never sees an error from Load.
func (l *List[T]) Load(ctx context.Context, seed []T) []T {
	raw, found, err := l.store.Get(ctx, l.key)
	if err != nil {
		l.log.Warn().Err(err).Msg("load failed, using seed data")
		return seed
	}
	if !found {
		return seed
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		l.log.Warn().Err(err).Msg("stored value is corrupt, using seed data")
		return seed
	}
	return items
}

// Save serializes the full sequence and replaces the stored value.  A
// rejected write comes back wrapped in ErrWriteFailed so callers can
// report it and keep going.
func (l *List[T]) Save(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrWriteFailed, l.key, err)
	}
	if err := l.store.Set(ctx, l.key, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}
