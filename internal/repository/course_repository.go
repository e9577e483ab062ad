package repository

import (
	"context"
	"fmt"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/store"
)

// CourseRepo manages the courses collection.  Enrolled exceeding Seats
// is tolerated; staff correct it by editing either field.
type CourseRepo struct {
	c *collection[model.Course]
}

// NewCourseRepo loads the persisted courses (or the seed set on first
// run) and returns a repository over them.
func NewCourseRepo(ctx context.Context, list *store.List[model.Course], gen *IDGenerator) *CourseRepo {
	return &CourseRepo{
		c: newCollection(ctx, list, model.SeedCourses(), gen,
			func(v model.Course) int64 { return v.ID },
			func(v *model.Course, id int64) { v.ID = id }),
	}
}

// List returns all courses, most recently created first.
func (r *CourseRepo) List() []model.Course {
	return r.c.all()
}

// Get returns the course with the given id.
func (r *CourseRepo) Get(id int64) (model.Course, error) {
	return r.c.get(id)
}

// Create validates the candidate, assigns a fresh id, prepends it and
// persists.
func (r *CourseRepo) Create(ctx context.Context, course model.Course) (model.Course, error) {
	if err := validateCourse(course); err != nil {
		return model.Course{}, err
	}
	return r.c.create(ctx, course)
}

// Update replaces the course at id with the candidate, keeping its
// position in the list.
func (r *CourseRepo) Update(ctx context.Context, id int64, course model.Course) (model.Course, error) {
	if err := validateCourse(course); err != nil {
		return model.Course{}, err
	}
	return r.c.update(ctx, id, course)
}

// Delete removes the course with the given id; absent ids are a no-op.
// The boolean reports whether a record was removed.
func (r *CourseRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return r.c.remove(ctx, id)
}

// Flush rewrites the collection to storage.
func (r *CourseRepo) Flush(ctx context.Context) error {
	return r.c.flush(ctx)
}

func validateCourse(course model.Course) error {
	if course.Title == "" {
		return fmt.Errorf("%w: course title is required", ErrInvalidRecord)
	}
	if course.Price < 0 {
		return fmt.Errorf("%w: course price cannot be negative", ErrInvalidRecord)
	}
	if course.Seats < 0 || course.Enrolled < 0 {
		return fmt.Errorf("%w: course seats and enrolled cannot be negative", ErrInvalidRecord)
	}
	return nil
}
