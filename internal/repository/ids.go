package repository

import (
	"sync/atomic"
	"time"
)

// IDGenerator mints record identifiers.  Values start from the current
// wall clock in milliseconds (matching the ids already persisted by
// earlier versions of the console) but are forced strictly increasing
// process-wide, so records created within the same millisecond still
// get distinct ids.  Observe feeds in ids seen while loading persisted
// data so freshly minted ids can never collide with stored ones.
type IDGenerator struct {
	last atomic.Int64
}

// NewIDGenerator returns a generator ready to mint ids.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh identifier, unique for the life of the process.
func (g *IDGenerator) Next() int64 {
	for {
		now := time.Now().UnixMilli()
		last := g.last.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if g.last.CompareAndSwap(last, next) {
			return next
		}
	}
}

// Observe advances the generator past id so Next never re-issues an
// identifier that already exists in a loaded collection.
func (g *IDGenerator) Observe(id int64) {
	for {
		last := g.last.Load()
		if id <= last || g.last.CompareAndSwap(last, id) {
			return
		}
	}
}
