package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/views"
)

// Overview handles GET /v1/overview: the dashboard payload with
// headline counts, the distinct sports on offer and per-course
// enrollment.  Everything here is recomputed from the live
// collections on each request.
func (h *Console) Overview(c echo.Context) error {
	coaches := h.Registry.Coaches.List()
	courses := h.Registry.Courses.List()
	players := h.Registry.Players.List()
	matches := h.Registry.Matches.List()

	return c.JSON(http.StatusOK, map[string]any{
		"stats":      views.Overview(coaches, courses, players, matches, h.Clock.Now()),
		"sports":     views.UniqueSports(coaches, courses, players),
		"enrollment": views.EnrollmentSummary(courses),
	})
}
