package repository

import (
	"context"
	"fmt"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/store"
)

// PlayerRepo manages the players collection.
type PlayerRepo struct {
	c *collection[model.Player]
}

// NewPlayerRepo loads the persisted players (or the seed set on first
// run) and returns a repository over them.
func NewPlayerRepo(ctx context.Context, list *store.List[model.Player], gen *IDGenerator) *PlayerRepo {
	return &PlayerRepo{
		c: newCollection(ctx, list, model.SeedPlayers(), gen,
			func(v model.Player) int64 { return v.ID },
			func(v *model.Player, id int64) { v.ID = id }),
	}
}

// List returns all players, most recently created first.
func (r *PlayerRepo) List() []model.Player {
	return r.c.all()
}

// Get returns the player with the given id.
func (r *PlayerRepo) Get(id int64) (model.Player, error) {
	return r.c.get(id)
}

// Create validates the candidate, assigns a fresh id, prepends it and
// persists.
func (r *PlayerRepo) Create(ctx context.Context, player model.Player) (model.Player, error) {
	if err := validatePlayer(player); err != nil {
		return model.Player{}, err
	}
	return r.c.create(ctx, player)
}

// Update replaces the player at id with the candidate, keeping its
// position in the list.
func (r *PlayerRepo) Update(ctx context.Context, id int64, player model.Player) (model.Player, error) {
	if err := validatePlayer(player); err != nil {
		return model.Player{}, err
	}
	return r.c.update(ctx, id, player)
}

// Delete removes the player with the given id; absent ids are a no-op.
// The boolean reports whether a record was removed.
func (r *PlayerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.remove(ctx, id)
}

// Flush rewrites the collection to storage.
func (r *PlayerRepo) Flush(ctx context.Context) error {
	return r.c.flush(ctx)
}

func validatePlayer(player model.Player) error {
	if player.Name == "" {
		return fmt.Errorf("%w: player name is required", ErrInvalidRecord)
	}
	if player.Age < 0 {
		return fmt.Errorf("%w: player age cannot be negative", ErrInvalidRecord)
	}
	return nil
}
