// Package handler contains the HTTP handlers behind the academy
// console.  Handlers validate input at the boundary, call into the
// record collections, and translate collection errors into HTTP
// responses; they render nothing themselves.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
	"github.com/poweracademy/academy-server/internal/repository"
	"github.com/poweracademy/academy-server/internal/session"
	"github.com/poweracademy/academy-server/internal/store"
)

// Console bundles everything the handlers need: the record
// collections, the per-kind edit sessions, the change-event publisher
// and the clock that decides what counts as "upcoming".
type Console struct {
	Registry      *repository.Registry
	Sessions      *session.Manager
	Events        *queue.Publisher
	Clock         clockwork.Clock
	MediaMaxBytes int64
	Log           zerolog.Logger
}

// NewConsole constructs the handler set and panics if a dependency is
// missing; wiring bugs should fail at startup, not per request.
func NewConsole(reg *repository.Registry, sessions *session.Manager, events *queue.Publisher, clock clockwork.Clock, mediaMaxBytes int64, log zerolog.Logger) *Console {
	if reg == nil || sessions == nil || events == nil || clock == nil {
		panic("nil dependency passed to NewConsole")
	}
	return &Console{
		Registry:      reg,
		Sessions:      sessions,
		Events:        events,
		Clock:         clock,
		MediaMaxBytes: mediaMaxBytes,
		Log:           log.With().Str("component", "handler").Logger(),
	}
}

// parseID reads the :id route parameter.
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// kindParam reads and checks the :kind route parameter.
func kindParam(c echo.Context) (model.Kind, bool) {
	return model.KindFromString(c.Param("kind"))
}

// mutationError maps collection errors onto HTTP responses.  A storage
// write failure is recoverable: the change is live in memory and will
// be retried on the next save or the shutdown flush, so the client
// gets a 503 rather than a silent success or a crash.
func (h *Console) mutationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidRecord):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "record not found"})
	case errors.Is(err, store.ErrWriteFailed):
		h.Log.Error().Err(err).Msg("storage write failed")
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": "storage unavailable; change kept in memory and will be retried",
		})
	default:
		h.Log.Error().Err(err).Msg("mutation failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// publishChange emits a record-change event.  Publishing is
// best-effort; the publisher already logs failures.
func (h *Console) publishChange(c echo.Context, kind model.Kind, action queue.ChangeAction, recordID int64) {
	ev := queue.NewRecordChangedEvent(kind, action, recordID, h.Clock.Now())
	_ = h.Events.Publish(c.Request().Context(), ev)
}
