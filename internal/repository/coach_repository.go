package repository

import (
	"context"
	"fmt"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/store"
)

// CoachRepo manages the coaches collection.
type CoachRepo struct {
	c *collection[model.Coach]
}

// NewCoachRepo loads the persisted coaches (or the seed set on first
// run) and returns a repository over them.
func NewCoachRepo(ctx context.Context, list *store.List[model.Coach], gen *IDGenerator) *CoachRepo {
	return &CoachRepo{
		c: newCollection(ctx, list, model.SeedCoaches(), gen,
			func(v model.Coach) int64 { return v.ID },
			func(v *model.Coach, id int64) { v.ID = id }),
	}
}

// List returns all coaches, most recently created first.
func (r *CoachRepo) List() []model.Coach {
	return r.c.all()
}

// Get returns the coach with the given id.
func (r *CoachRepo) Get(id int64) (model.Coach, error) {
	return r.c.get(id)
}

// Create validates the candidate, assigns a fresh id and a default
// rating when none was given, prepends it and persists.
func (r *CoachRepo) Create(ctx context.Context, coach model.Coach) (model.Coach, error) {
	if err := validateCoach(coach); err != nil {
		return model.Coach{}, err
	}
	if coach.Rating == 0 {
		coach.Rating = model.DefaultCoachRating
	}
	return r.c.create(ctx, coach)
}

// Update replaces the coach at id with the candidate, keeping its
// position in the list.
func (r *CoachRepo) Update(ctx context.Context, id int64, coach model.Coach) (model.Coach, error) {
	if err := validateCoach(coach); err != nil {
		return model.Coach{}, err
	}
	if coach.Rating == 0 {
		coach.Rating = model.DefaultCoachRating
	}
	return r.c.update(ctx, id, coach)
}

// Delete removes the coach with the given id; absent ids are a no-op.
// The boolean reports whether a record was removed.
func (r *CoachRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.remove(ctx, id)
}

// Flush rewrites the collection to storage.
func (r *CoachRepo) Flush(ctx context.Context) error {
	return r.c.flush(ctx)
}

func validateCoach(coach model.Coach) error {
	if coach.Name == "" {
		return fmt.Errorf("%w: coach name is required", ErrInvalidRecord)
	}
	if coach.Sport == "" {
		return fmt.Errorf("%w: coach sport is required", ErrInvalidRecord)
	}
	if coach.Rating < 0 {
		return fmt.Errorf("%w: coach rating cannot be negative", ErrInvalidRecord)
	}
	return nil
}
