package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/poweracademy/academy-server/internal/store"
)

// collection is the shared core behind every entity repository: an
// in-memory ordered sequence mirrored to durable storage on every
// change.  The sequence is loaded once at startup; after that the
// in-memory copy is authoritative and each mutation rewrites the whole
// stored value (write-through).  A mutex serializes mutations so the
// single-writer model holds even with concurrent HTTP requests.
//
// When a write is rejected by the store, the in-memory state is kept
// and the wrapped store.ErrWriteFailed is returned: the console keeps
// a consistent view and the caller reports the degraded persistence.
type collection[T any] struct {
	mu    sync.Mutex
	list  *store.List[T]
	items []T
	gen   *IDGenerator
	id    func(T) int64
	setID func(*T, int64)
}

func newCollection[T any](ctx context.Context, list *store.List[T], seed []T, gen *IDGenerator, id func(T) int64, setID func(*T, int64)) *collection[T] {
	items := list.Load(ctx, seed)
	for _, it := range items {
		gen.Observe(id(it))
	}
	return &collection[T]{list: list, items: items, gen: gen, id: id, setID: setID}
}

// all returns a copy of the current sequence in display order.
func (c *collection[T]) all() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// get returns the record carrying id, or ErrNotFound.
func (c *collection[T]) get(id int64) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(c.items[i]) == id {
			return c.items[i], nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// create mints a fresh id for rec, prepends it and persists.  The
// caller's id field is ignored; identity is never taken from input.
func (c *collection[T]) create(ctx context.Context, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setID(&rec, c.gen.Next())
	c.items = UpsertByID(c.items, rec, c.id)
	return rec, c.list.Save(ctx, c.items)
}

// update replaces the record at id in place and persists.  The
// replacement is a full record, not a field patch, and keeps the
// original id and position.
func (c *collection[T]) update(ctx context.Context, id int64, rec T) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	found := false
	for i := range c.items {
		if c.id(c.items[i]) == id {
			found = true
			break
		}
	}
	if !found {
		var zero T
		return zero, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	c.setID(&rec, id)
	c.items = UpsertByID(c.items, rec, c.id)
	return rec, c.list.Save(ctx, c.items)
}

// remove deletes the record carrying id and persists.  Removing an
// absent id is a no-op and does not touch storage; the boolean reports
// whether a record was actually removed.
func (c *collection[T]) remove(ctx context.Context, id int64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, removed := RemoveByID(c.items, id, c.id)
	if !removed {
		return false, nil
	}
	c.items = next
	return true, c.list.Save(ctx, c.items)
}

// flush rewrites the current sequence to storage.  Used for the final
// write at shutdown.
func (c *collection[T]) flush(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.list.Save(ctx, c.items)
}
