package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
	"github.com/poweracademy/academy-server/internal/repository"
	"github.com/poweracademy/academy-server/internal/session"
	"github.com/poweracademy/academy-server/internal/store"
)

// rejectingStore accepts reads but fails every write.
type rejectingStore struct {
	*store.MemoryStore
}

func (s *rejectingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("connection refused")
}

func newTestConsole(t *testing.T, s store.Store) *Console {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC))
	reg := repository.NewRegistry(context.Background(), s, "sm_", clock, zerolog.Nop())
	return NewConsole(reg, session.NewManager(), queue.NewPublisher("", zerolog.Nop()), clock, 1<<20, zerolog.Nop())
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, path, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, h(c))
	return rec
}

func decodeItems[T any](t *testing.T, rec *httptest.ResponseRecorder) []T {
	t.Helper()
	var payload struct {
		Items []T `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload.Items
}

func TestListCoachesReturnsSeed(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.ListCoaches, http.MethodGet, "/v1/coaches", "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeItems[model.Coach](t, rec)
	require.Len(t, items, 2)
	require.Equal(t, "Captain Ahmed", items[0].Name)
}

func TestCreateCoach(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.CreateCoach, http.MethodPost, "/v1/coaches",
		`{"name":"Captain Omar","sport":"Football"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var saved model.Coach
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	require.NotZero(t, saved.ID)
	require.Equal(t, model.DefaultCoachRating, saved.Rating)
}

func TestCreateCoachRejectsMissingName(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.CreateCoach, http.MethodPost, "/v1/coaches", `{"sport":"Football"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCoachMissingRecord(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.UpdateCoach, http.MethodPut, "/v1/coaches/9999",
		`{"name":"Ghost","sport":"Chess"}`, "id", "9999")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCoachIsIdempotent(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.DeleteCoach, http.MethodDelete, "/v1/coaches/1", "", "id", "1")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, h.DeleteCoach, http.MethodDelete, "/v1/coaches/1", "", "id", "1")
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestWriteFailureReturnsServiceUnavailable(t *testing.T) {
	h := newTestConsole(t, &rejectingStore{store.NewMemoryStore()})

	rec := doJSON(t, h.CreateCoach, http.MethodPost, "/v1/coaches",
		`{"name":"Captain Omar","sport":"Football"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// The record still made it into the in-memory collection.
	list := h.Registry.Coaches.List()
	require.Equal(t, "Captain Omar", list[0].Name)
}

func TestListPlayersWithFilters(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())
	ctx := context.Background()
	_, err := h.Registry.Players.Create(ctx, model.Player{Name: "Ali Hassan", Sport: "Swimming"})
	require.NoError(t, err)
	_, err = h.Registry.Players.Create(ctx, model.Player{Name: "Ali Tarek", Sport: "Basketball"})
	require.NoError(t, err)

	rec := doJSON(t, h.ListPlayers, http.MethodGet, "/v1/players?q=Ali&sport=Swimming", "")
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeItems[model.Player](t, rec)
	require.Len(t, items, 1)
	require.Equal(t, "Ali Hassan", items[0].Name)
}

func TestListUpcomingMatches(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())
	ctx := context.Background()
	_, err := h.Registry.Matches.Create(ctx, model.Match{Title: "Played", Date: "2025-08-01"})
	require.NoError(t, err)

	rec := doJSON(t, h.ListUpcomingMatches, http.MethodGet, "/v1/matches/upcoming", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// Only the seeded 2025-09-10 fixture is still ahead of the fake
	// clock.
	items := decodeItems[model.Match](t, rec)
	require.Len(t, items, 1)
	require.Equal(t, "Power Sharks vs Blue Waves", items[0].Title)
}

func TestOverview(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.Overview, http.MethodGet, "/v1/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Stats struct {
			Players         int `json:"players"`
			Courses         int `json:"courses"`
			Coaches         int `json:"coaches"`
			UpcomingMatches int `json:"upcomingMatches"`
		} `json:"stats"`
		Sports     []string `json:"sports"`
		Enrollment []struct {
			Name     string `json:"name"`
			Enrolled int    `json:"enrolled"`
			Seats    int    `json:"seats"`
		} `json:"enrollment"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, 1, payload.Stats.Players)
	require.Equal(t, 2, payload.Stats.Coaches)
	require.Equal(t, 1, payload.Stats.UpcomingMatches)
	require.Equal(t, []string{"Swimming", "Basketball"}, payload.Sports)
	require.Len(t, payload.Enrollment, 1)
	require.Equal(t, "Swimming Basics", payload.Enrollment[0].Name)
}

func TestSessionSaveWithoutOpenSession(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.SaveSession, http.MethodPost, "/v1/coaches/session/save",
		`{"name":"Captain Omar","sport":"Football"}`, "kind", "coaches")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSessionCreateFlow(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.OpenCreateSession, http.MethodPost, "/v1/coaches/session/create", "", "kind", "coaches")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h.SaveSession, http.MethodPost, "/v1/coaches/session/save",
		`{"name":"Captain Omar","sport":"Football"}`, "kind", "coaches")
	require.Equal(t, http.StatusCreated, rec.Code)

	// Saving closed the session.
	require.False(t, h.Sessions.Current(model.KindCoaches).Open)
	require.Len(t, h.Registry.Coaches.List(), 3)
}

func TestSessionEditFlow(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.OpenEditSession, http.MethodPost, "/v1/coaches/session/edit/1", "", "kind", "coaches", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)

	// The submitted body carries no id; the session's target decides
	// which record is replaced.
	rec = doJSON(t, h.SaveSession, http.MethodPost, "/v1/coaches/session/save",
		`{"name":"Captain Ahmed","sport":"Swimming","rating":5}`, "kind", "coaches")
	require.Equal(t, http.StatusOK, rec.Code)

	updated, err := h.Registry.Coaches.Get(1)
	require.NoError(t, err)
	require.Equal(t, float64(5), updated.Rating)
	require.Len(t, h.Registry.Coaches.List(), 2)
	require.False(t, h.Sessions.Current(model.KindCoaches).Open)
}

func TestSessionEditMissingTarget(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.OpenEditSession, http.MethodPost, "/v1/coaches/session/edit/9999", "", "kind", "coaches", "id", "9999")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.False(t, h.Sessions.Current(model.KindCoaches).Open)
}

func TestSessionStaysOpenOnInvalidSave(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())
	h.Sessions.OpenCreate(model.KindCoaches)

	rec := doJSON(t, h.SaveSession, http.MethodPost, "/v1/coaches/session/save",
		`{"sport":"Football"}`, "kind", "coaches")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The user can fix the form and retry.
	require.True(t, h.Sessions.Current(model.KindCoaches).Open)
}

func TestSessionCancel(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())
	h.Sessions.OpenEdit(model.KindPlayers, 1)

	rec := doJSON(t, h.CloseSession, http.MethodDelete, "/v1/players/session", "", "kind", "players")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.False(t, h.Sessions.Current(model.KindPlayers).Open)
}

func TestSessionUnknownKind(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	rec := doJSON(t, h.OpenCreateSession, http.MethodPost, "/v1/halls/session/create", "", "kind", "halls")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEncodeMedia(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "photo.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/media/encode", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	require.NoError(t, h.EncodeMedia(e.NewContext(req, rec)))

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Contains(t, payload["dataUrl"], ";base64,aGVsbG8=")
}

func TestEncodeMediaOverLimit(t *testing.T) {
	h := newTestConsole(t, store.NewMemoryStore())
	h.MediaMaxBytes = 4

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "big.bin")
	require.NoError(t, err)
	_, err = fw.Write([]byte("too big"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/media/encode", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	require.NoError(t, h.EncodeMedia(e.NewContext(req, rec)))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
