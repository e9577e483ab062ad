package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// failingStore rejects every write, simulating an unreachable backend.
type failingStore struct {
	*MemoryStore
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("connection refused")
}

func TestListRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	l := NewList[record](s, "sm_records", zerolog.Nop())
	ctx := context.Background()

	items := []record{{ID: 2, Name: "second"}, {ID: 1, Name: "first"}}
	require.NoError(t, l.Save(ctx, items))

	got := l.Load(ctx, nil)
	require.Equal(t, items, got)
}

func TestListLoadAbsentKeyReturnsSeed(t *testing.T) {
	l := NewList[record](NewMemoryStore(), "sm_records", zerolog.Nop())
	seed := []record{{ID: 1, Name: "seeded"}}

	got := l.Load(context.Background(), seed)
	require.Equal(t, seed, got)
}

func TestListLoadCorruptValueReturnsSeed(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "sm_records", "{not json"))

	l := NewList[record](s, "sm_records", zerolog.Nop())
	seed := []record{{ID: 1, Name: "seeded"}}

	got := l.Load(ctx, seed)
	require.Equal(t, seed, got)
}

func TestListSaveReportsWriteFailure(t *testing.T) {
	l := NewList[record](&failingStore{NewMemoryStore()}, "sm_records", zerolog.Nop())

	err := l.Save(context.Background(), []record{{ID: 1}})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWriteFailed)
}

func TestListSaveEmptySlice(t *testing.T) {
	s := NewMemoryStore()
	l := NewList[record](s, "sm_records", zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, l.Save(ctx, []record{}))

	// An explicitly stored empty list must load as empty, not fall
	// back to the seed: the user deleted everything on purpose.
	got := l.Load(ctx, []record{{ID: 9, Name: "seed"}})
	require.Empty(t, got)
}
