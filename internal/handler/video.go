package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
)

// ListVideos handles GET /v1/videos.
func (h *Console) ListVideos(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"items": h.Registry.Videos.List()})
}

// CreateVideo handles POST /v1/videos.  Link-mode videos need a URL;
// file-mode videos carry the inline data URL produced by the media
// encode endpoint.
func (h *Console) CreateVideo(c echo.Context) error {
	video, ok := h.bindVideo(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Videos.Create(c.Request().Context(), video)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindVideos, queue.ActionCreated, saved.ID)
	return c.JSON(http.StatusCreated, saved)
}

// UpdateVideo handles PUT /v1/videos/:id.
func (h *Console) UpdateVideo(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	video, ok := h.bindVideo(c)
	if !ok {
		return nil
	}
	saved, err := h.Registry.Videos.Update(c.Request().Context(), id, video)
	if err != nil {
		return h.mutationError(c, err)
	}
	h.publishChange(c, model.KindVideos, queue.ActionUpdated, saved.ID)
	return c.JSON(http.StatusOK, saved)
}

// DeleteVideo handles DELETE /v1/videos/:id.
func (h *Console) DeleteVideo(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	removed, err := h.Registry.Videos.Delete(c.Request().Context(), id)
	if err != nil {
		return h.mutationError(c, err)
	}
	if removed {
		h.publishChange(c, model.KindVideos, queue.ActionDeleted, id)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Console) bindVideo(c echo.Context) (model.Video, bool) {
	var body model.Video
	if err := c.Bind(&body); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return model.Video{}, false
	}
	body.URL = strings.TrimSpace(body.URL)
	if !body.Mode.Valid() {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "mode must be \"link\" or \"file\""})
		return model.Video{}, false
	}
	if body.Mode == model.VideoLink && body.URL == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "url is required in link mode"})
		return model.Video{}, false
	}
	if body.Mode == model.VideoFile && body.FileData == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "fileData is required in file mode"})
		return model.Video{}, false
	}
	return body, true
}
