package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
	"github.com/poweracademy/academy-server/internal/views"
)

// ListPlayers handles GET /v1/players?q=&sport=.  Both filters are
// optional; q is a literal substring match over name, team and sport
// and sport is an exact match.  With neither set the full list comes
// back.
func (h *Console) ListPlayers(c echo.Context) error {
	query := c.QueryParam("q")
	sport := c.QueryParam("sport")
	items := views.FilterPlayers(h.Registry.Players.List(), query, sport)
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

// CreatePlayer handles POST /v1/players.
func (h *Console) CreatePlayer(c echo.Context) error {
	player, ok := h.bindPlayer(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Players.Create(c.Request().Context(), player)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindPlayers, queue.ActionCreated, saved.ID)
	return c.JSON(http.StatusCreated, saved)
}

// UpdatePlayer handles PUT /v1/players/:id.
func (h *Console) UpdatePlayer(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	player, ok := h.bindPlayer(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Players.Update(c.Request().Context(), id, player)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindPlayers, queue.ActionUpdated, saved.ID)
	return c.JSON(http.StatusOK, saved)
}

// DeletePlayer handles DELETE /v1/players/:id.
func (h *Console) DeletePlayer(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	removed, err := h.Registry.Players.Delete(c.Request().Context(), id)
	if err != nil {
		return h.mutationError(c, err)
	}
	if removed {
		h.publishChange(c, model.KindPlayers, queue.ActionDeleted, id)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Console) bindPlayer(c echo.Context) (model.Player, bool) {
	var body model.Player
	if err := c.Bind(&body); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return model.Player{}, false
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
		return model.Player{}, false
	}
	if body.Age < 0 {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "age cannot be negative"})
		return model.Player{}, false
	}
	return body, true
}
