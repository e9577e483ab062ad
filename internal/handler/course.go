package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
)

// ListCourses handles GET /v1/courses.
func (h *Console) ListCourses(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": h.Registry.Courses.List()})
}

// CreateCourse handles POST /v1/courses.
func (h *Console) CreateCourse(c echo.Context) error {
	course, ok := h.bindCourse(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Courses.Create(c.Request().Context(), course)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindCourses, queue.ActionCreated, saved.ID)
	return c.JSON(http.StatusCreated, saved)
}

// UpdateCourse handles PUT /v1/courses/:id.
func (h *Console) UpdateCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	course, ok := h.bindCourse(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Courses.Update(c.Request().Context(), id, course)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindCourses, queue.ActionUpdated, saved.ID)
	return c.JSON(http.StatusOK, saved)
}

// DeleteCourse handles DELETE /v1/courses/:id.
func (h *Console) DeleteCourse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	removed, err := h.Registry.Courses.Delete(c.Request().Context(), id)
	if err != nil {
		return h.mutationError(c, err)
	}
	if removed {
		h.publishChange(c, model.KindCourses, queue.ActionDeleted, id)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Console) bindCourse(c echo.Context) (model.Course, bool) {
	var body model.Course
	if err := c.Bind(&body); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return model.Course{}, false
	}
	body.Title = strings.TrimSpace(body.Title)
	if body.Title == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
		return model.Course{}, false
	}
	// Enrolled above Seats is allowed through: the console surfaces it
	// in the enrollment summary and staff fix whichever field is wrong.
	if body.Enrolled > body.Seats && body.Seats > 0 {
		h.Log.Warn().Str("title", body.Title).Int("enrolled", body.Enrolled).Int("seats", body.Seats).
			Msg("course enrolled exceeds seats")
	}
	return body, true
}
