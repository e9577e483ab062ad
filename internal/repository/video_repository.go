package repository

import (
	"context"
	"fmt"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/store"
)

// VideoRepo manages the videos collection.  A video carries either an
// external link or inline file data, selected by its mode; the unused
// field is cleared on save so stored records stay unambiguous.
type VideoRepo struct {
	c *collection[model.Video]
}

// NewVideoRepo loads the persisted videos and returns a repository
// over them.  Videos ship with no seed records.
func NewVideoRepo(ctx context.Context, list *store.List[model.Video], gen *IDGenerator) *VideoRepo {
	return &VideoRepo{
		c: newCollection(ctx, list, model.SeedVideos(), gen,
			func(v model.Video) int64 { return v.ID },
			func(v *model.Video, id int64) { v.ID = id }),
	}
}

// List returns all videos, most recently created first.
func (r *VideoRepo) List() []model.Video {
	return r.c.all()
}

// Get returns the video with the given id.
func (r *VideoRepo) Get(id int64) (model.Video, error) {
	return r.c.get(id)
}

// Create validates the candidate, assigns a fresh id, prepends it and
// persists.
func (r *VideoRepo) Create(ctx context.Context, video model.Video) (model.Video, error) {
	video, err := normalizeVideo(video)
	if err != nil {
		return model.Video{}, err
	}
	return r.c.create(ctx, video)
}

// Update replaces the video at id with the candidate, keeping its
// position in the list.
func (r *VideoRepo) Update(ctx context.Context, id int64, video model.Video) (model.Video, error) {
	video, err := normalizeVideo(video)
	if err != nil {
		return model.Video{}, err
	}
	return r.c.update(ctx, id, video)
}

// Delete removes the video with the given id; absent ids are a no-op.
// The boolean reports whether a record was removed.
func (r *VideoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.remove(ctx, id)
}

// Flush rewrites the collection to storage.
func (r *VideoRepo) Flush(ctx context.Context) error {
	return r.c.flush(ctx)
}

// normalizeVideo validates mode and payload and blanks the field the
// mode does not use.
func normalizeVideo(video model.Video) (model.Video, error) {
	if !video.Mode.Valid() {
		return model.Video{}, fmt.Errorf("%w: video mode must be %q or %q", ErrInvalidRecord, model.VideoLink, model.VideoFile)
	}
	switch video.Mode {
	case model.VideoLink:
		if video.URL == "" {
			return model.Video{}, fmt.Errorf("%w: video url is required in link mode", ErrInvalidRecord)
		}
		video.FileData = ""
	case model.VideoFile:
		if video.FileData == "" {
			return model.Video{}, fmt.Errorf("%w: video file data is required in file mode", ErrInvalidRecord)
		}
		video.URL = ""
	}
	return video, nil
}
