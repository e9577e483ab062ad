package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
)

// ListCoaches handles GET /v1/coaches and returns every coach, most
// recently added first.
func (h *Console) ListCoaches(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": h.Registry.Coaches.List()})
}

// CreateCoach handles POST /v1/coaches.  The body is a full coach
// record; any id in it is ignored and a fresh one is assigned.
func (h *Console) CreateCoach(c echo.Context) error {
	coach, ok := h.bindCoach(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Coaches.Create(c.Request().Context(), coach)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindCoaches, queue.ActionCreated, saved.ID)
	return c.JSON(http.StatusCreated, saved)
}

// UpdateCoach handles PUT /v1/coaches/:id and replaces the whole
// record at that id, keeping its list position.
func (h *Console) UpdateCoach(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	coach, ok := h.bindCoach(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Coaches.Update(c.Request().Context(), id, coach)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindCoaches, queue.ActionUpdated, saved.ID)
	return c.JSON(http.StatusOK, saved)
}

// DeleteCoach handles DELETE /v1/coaches/:id.  The console asks the
// user to confirm before calling this; deleting an id that is already
// gone still succeeds.
func (h *Console) DeleteCoach(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	removed, err := h.Registry.Coaches.Delete(c.Request().Context(), id)
	if err != nil {
		return h.mutationError(c, err)
	}
	if removed {
		h.publishChange(c, model.KindCoaches, queue.ActionDeleted, id)
	}
	return c.NoContent(http.StatusNoContent)
}

// bindCoach decodes and boundary-validates a coach payload.  On
// failure it writes the response itself and returns ok=false.
func (h *Console) bindCoach(c echo.Context) (model.Coach, bool) {
	var body model.Coach
	if err := c.Bind(&body); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return model.Coach{}, false
	}
	body.Name = strings.TrimSpace(body.Name)
	body.Sport = strings.TrimSpace(body.Sport)
	if body.Name == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
		return model.Coach{}, false
	}
	if body.Sport == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "sport is required"})
		return model.Coach{}, false
	}
	return body, true
}
