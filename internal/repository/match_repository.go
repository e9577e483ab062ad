package repository

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/store"
)

// MatchRepo manages the matches collection.  Saving a match without an
// explicit status derives one from the match date and the current
// time, so the clock is injected to keep that decision testable.
type MatchRepo struct {
	c     *collection[model.Match]
	clock clockwork.Clock
}

// NewMatchRepo loads the persisted matches (or the seed set on first
// run) and returns a repository over them.
func NewMatchRepo(ctx context.Context, list *store.List[model.Match], gen *IDGenerator, clock clockwork.Clock) *MatchRepo {
	return &MatchRepo{
		c: newCollection(ctx, list, model.SeedMatches(), gen,
			func(v model.Match) int64 { return v.ID },
			func(v *model.Match, id int64) { v.ID = id }),
		clock: clock,
	}
}

// List returns all matches, most recently created first.
func (r *MatchRepo) List() []model.Match {
	return r.c.all()
}

// Get returns the match with the given id.
func (r *MatchRepo) Get(id int64) (model.Match, error) {
	return r.c.get(id)
}

// Create validates the candidate, fills in a derived status when none
// was given, assigns a fresh id, prepends it and persists.
func (r *MatchRepo) Create(ctx context.Context, match model.Match) (model.Match, error) {
	if err := validateMatch(match); err != nil {
		return model.Match{}, err
	}
	match.Status = r.resolveStatus(match)
	return r.c.create(ctx, match)
}

// Update replaces the match at id with the candidate, keeping its
// position in the list.  An empty status is re-derived from the date.
func (r *MatchRepo) Update(ctx context.Context, id int64, match model.Match) (model.Match, error) {
	if err := validateMatch(match); err != nil {
		return model.Match{}, err
	}
	match.Status = r.resolveStatus(match)
	return r.c.update(ctx, id, match)
}

// Delete removes the match with the given id; absent ids are a no-op.
// The boolean reports whether a record was removed.
func (r *MatchRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.remove(ctx, id)
}

// Flush rewrites the collection to storage.
func (r *MatchRepo) Flush(ctx context.Context) error {
	return r.c.flush(ctx)
}

// resolveStatus keeps an explicitly chosen status and derives one from
// the date otherwise.
func (r *MatchRepo) resolveStatus(match model.Match) model.MatchStatus {
	if match.Status.Valid() {
		return match.Status
	}
	return model.DeriveMatchStatus(match.Date, r.clock.Now())
}

func validateMatch(match model.Match) error {
	if match.Title == "" {
		return fmt.Errorf("%w: match title is required", ErrInvalidRecord)
	}
	if match.Date == "" {
		return fmt.Errorf("%w: match date is required", ErrInvalidRecord)
	}
	if _, err := match.DateTime(); err != nil {
		return fmt.Errorf("%w: match date must be YYYY-MM-DD", ErrInvalidRecord)
	}
	if match.Status != "" && !match.Status.Valid() {
		return fmt.Errorf("%w: match status must be %q or %q", ErrInvalidRecord, model.MatchUpcoming, model.MatchFinished)
	}
	return nil
}
