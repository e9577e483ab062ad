package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64
	Name string
}

func itemID(i item) int64 { return i.ID }

func TestUpsertByIDPrependsNewRecord(t *testing.T) {
	items := []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	got := UpsertByID(items, item{ID: 3, Name: "c"}, itemID)

	require.Equal(t, []item{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, got)
}

func TestUpsertByIDReplacesInPlace(t *testing.T) {
	items := []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}

	got := UpsertByID(items, item{ID: 2, Name: "b2"}, itemID)

	// The edited record keeps its position; neighbours are untouched.
	require.Equal(t, []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b2"}, {ID: 3, Name: "c"}}, got)
}

func TestUpsertByIDIsIdempotentForSameID(t *testing.T) {
	items := []item{{ID: 1, Name: "a"}}

	once := UpsertByID(items, item{ID: 1, Name: "a2"}, itemID)
	twice := UpsertByID(once, item{ID: 1, Name: "a2"}, itemID)

	require.Equal(t, once, twice)
	require.Len(t, twice, 1)
}

func TestUpsertByIDZeroIDAlwaysPrepends(t *testing.T) {
	items := []item{{ID: 0, Name: "stray"}}

	got := UpsertByID(items, item{ID: 0, Name: "new"}, itemID)

	// A zero id is "unset", never a match key, even against another
	// zero-id record already in the list.
	require.Equal(t, []item{{ID: 0, Name: "new"}, {ID: 0, Name: "stray"}}, got)
}

func TestUpsertByIDCountInvariant(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}, {ID: 3}}

	replaced := UpsertByID(items, item{ID: 2, Name: "x"}, itemID)
	require.Len(t, replaced, len(items))

	added := UpsertByID(items, item{ID: 4}, itemID)
	require.Len(t, added, len(items)+1)
}

func TestUpsertByIDDoesNotMutateInput(t *testing.T) {
	items := []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}

	_ = UpsertByID(items, item{ID: 1, Name: "a2"}, itemID)

	require.Equal(t, []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, items)
}

func TestRemoveByID(t *testing.T) {
	items := []item{{ID: 1}, {ID: 2}, {ID: 3}}

	got, removed := RemoveByID(items, 2, itemID)
	require.True(t, removed)
	require.Equal(t, []item{{ID: 1}, {ID: 3}}, got)

	got, removed = RemoveByID(got, 99, itemID)
	require.False(t, removed)
	require.Equal(t, []item{{ID: 1}, {ID: 3}}, got)
}

func TestIDGeneratorStrictlyIncreasing(t *testing.T) {
	gen := NewIDGenerator()
	prev := gen.Next()
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestIDGeneratorObserveAvoidsCollisions(t *testing.T) {
	gen := NewIDGenerator()

	// Simulate loading a collection whose stored ids run far ahead of
	// the clock.
	loaded := gen.Next() + 1_000_000
	gen.Observe(loaded)
	gen.Observe(loaded - 500) // lower ids must not move the floor back

	require.Greater(t, gen.Next(), loaded)
}
