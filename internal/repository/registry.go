package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/store"
)

// Registry bundles the five record collections the console manages.
// It is built once at startup, loading every collection from storage,
// and handed to the API layer whole.
type Registry struct {
	Coaches *CoachRepo
	Courses *CourseRepo
	Players *PlayerRepo
	Matches *MatchRepo
	Videos  *VideoRepo
}

// NewRegistry loads all five collections from s.  Storage keys are the
// prefix followed by the collection name, e.g. "sm_coaches".  One id
// generator is shared across collections so identifiers are unique
// process-wide, not just per list.
func NewRegistry(ctx context.Context, s store.Store, prefix string, clock clockwork.Clock, log zerolog.Logger) *Registry {
	gen := NewIDGenerator()
	return &Registry{
		Coaches: NewCoachRepo(ctx, store.NewList[model.Coach](s, prefix+string(model.KindCoaches), log), gen),
		Courses: NewCourseRepo(ctx, store.NewList[model.Course](s, prefix+string(model.KindCourses), log), gen),
		Players: NewPlayerRepo(ctx, store.NewList[model.Player](s, prefix+string(model.KindPlayers), log), gen),
		Matches: NewMatchRepo(ctx, store.NewList[model.Match](s, prefix+string(model.KindMatches), log), gen, clock),
		Videos:  NewVideoRepo(ctx, store.NewList[model.Video](s, prefix+string(model.KindVideos), log), gen),
	}
}

// Delete removes the record with id from the named collection.
// Deleting an id that is not there is a no-op for every kind; the
// boolean reports whether a record was actually removed.
func (r *Registry) Delete(ctx context.Context, kind model.Kind, id int64) (bool, error) {
	switch kind {
	case model.KindCoaches:
		return r.Coaches.Delete(ctx, id)
	case model.KindCourses:
		return r.Courses.Delete(ctx, id)
	case model.KindPlayers:
		return r.Players.Delete(ctx, id)
	case model.KindMatches:
		return r.Matches.Delete(ctx, id)
	case model.KindVideos:
		return r.Videos.Delete(ctx, id)
	}
	return false, fmt.Errorf("unknown collection kind %q", kind)
}

// Exists reports whether the named collection holds a record with id.
func (r *Registry) Exists(kind model.Kind, id int64) bool {
	var err error
	switch kind {
	case model.KindCoaches:
		_, err = r.Coaches.Get(id)
	case model.KindCourses:
		_, err = r.Courses.Get(id)
	case model.KindPlayers:
		_, err = r.Players.Get(id)
	case model.KindMatches:
		_, err = r.Matches.Get(id)
	case model.KindVideos:
		_, err = r.Videos.Get(id)
	default:
		return false
	}
	return err == nil
}

// Flush rewrites every collection to storage.  Called once at shutdown
// so the stored state matches memory even if an earlier write failed.
func (r *Registry) Flush(ctx context.Context) error {
	return errors.Join(
		r.Coaches.Flush(ctx),
		r.Courses.Flush(ctx),
		r.Players.Flush(ctx),
		r.Matches.Flush(ctx),
		r.Videos.Flush(ctx),
	)
}
