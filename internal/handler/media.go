package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/media"
)

// EncodeMedia handles POST /v1/media/encode.  It accepts a multipart
// upload under the "file" field and returns the base64 data URL that
// image and video records embed.  Uploads over the configured limit
// are rejected before anything is buffered in full.
func (h *Console) EncodeMedia(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file field"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unreadable upload"})
	}
	defer f.Close()

	dataURL, err := media.EncodeReader(f, fh.Header.Get("Content-Type"), h.MediaMaxBytes)
	if err != nil {
		if errors.Is(err, media.ErrTooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "file exceeds upload limit"})
		}
		h.Log.Error().Err(err).Str("filename", fh.Filename).Msg("media encode failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not encode file"})
	}
	return c.JSON(http.StatusOK, map[string]string{"dataUrl": dataURL})
}
