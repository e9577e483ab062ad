package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
	"github.com/poweracademy/academy-server/internal/views"
)

// ListMatches handles GET /v1/matches.
func (h *Console) ListMatches(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": h.Registry.Matches.List()})
}

// ListUpcomingMatches handles GET /v1/matches/upcoming.  The view is
// recomputed against the clock on every request; it is never cached,
// so a match whose date passes overnight drops out on the next read.
func (h *Console) ListUpcomingMatches(c echo.Context) error {
	items := views.UpcomingMatches(h.Registry.Matches.List(), h.Clock.Now())
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// CreateMatch handles POST /v1/matches.  A missing status is derived
// from the date: future dates are upcoming, everything else finished.
func (h *Console) CreateMatch(c echo.Context) error {
	match, ok := h.bindMatch(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Matches.Create(c.Request().Context(), match)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindMatches, queue.ActionCreated, saved.ID)
	return c.JSON(http.StatusCreated, saved)
}

// UpdateMatch handles PUT /v1/matches/:id.
func (h *Console) UpdateMatch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	match, ok := h.bindMatch(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Matches.Update(c.Request().Context(), id, match)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindMatches, queue.ActionUpdated, saved.ID)
	return c.JSON(http.StatusOK, saved)
}

// DeleteMatch handles DELETE /v1/matches/:id.
func (h *Console) DeleteMatch(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	removed, err := h.Registry.Matches.Delete(c.Request().Context(), id)
	if err != nil {
		return h.mutationError(c, err)
	}
	if removed {
		h.publishChange(c, model.KindMatches, queue.ActionDeleted, id)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Console) bindMatch(c echo.Context) (model.Match, bool) {
	var body model.Match
	if err := c.Bind(&body); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return model.Match{}, false
	}
	body.Title = strings.TrimSpace(body.Title)
	body.Date = strings.TrimSpace(body.Date)
	if body.Title == "" || body.Date == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "title and date are required"})
		return model.Match{}, false
	}
	return body, true
}
