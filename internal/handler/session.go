package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poweracademy/academy-server/internal/model"
	"github.com/poweracademy/academy-server/internal/queue"
	"github.com/poweracademy/academy-server/internal/session"
)

// Edit-session endpoints mirror the console's modal dialogs: opening
// the "add" modal opens a create session, opening "edit" targets an
// existing record, and cancel or save closes it.  The session decides
// whether a save creates or updates; that intent is never read off the
// submitted record's own id field.

// OpenCreateSession handles POST /v1/:kind/session/create.
func (h *Console) OpenCreateSession(c echo.Context) error {
	kind, ok := kindParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown collection"})
	}
	h.Sessions.OpenCreate(kind)
	return c.JSON(http.StatusOK, h.Sessions.Current(kind))
}

// OpenEditSession handles POST /v1/:kind/session/edit/:id.  The target
// must exist; editing a record that was deleted under you is a 404,
// not a silent create.
func (h *Console) OpenEditSession(c echo.Context) error {
	kind, ok := kindParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown collection"})
	}
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if !h.Registry.Exists(kind, id) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "record not found"})
	}
	h.Sessions.OpenEdit(kind, id)
	return c.JSON(http.StatusOK, h.Sessions.Current(kind))
}

// GetSession handles GET /v1/:kind/session.
func (h *Console) GetSession(c echo.Context) error {
	kind, ok := kindParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown collection"})
	}
	return c.JSON(http.StatusOK, h.Sessions.Current(kind))
}

// CloseSession handles DELETE /v1/:kind/session (the cancel button).
func (h *Console) CloseSession(c echo.Context) error {
	kind, ok := kindParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown collection"})
	}
	h.Sessions.Close(kind)
	return c.NoContent(http.StatusNoContent)
}

// SaveSession handles POST /v1/:kind/session/save: the modal's save
// button.  The open session's intent routes the candidate record to
// create or update; on success the session closes, on failure it
// stays open so the user can fix the form and retry.
func (h *Console) SaveSession(c echo.Context) error {
	kind, ok := kindParam(c)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown collection"})
	}
	intent, open := h.Sessions.Current(kind).Intent()
	if !open {
		return c.JSON(http.StatusConflict, map[string]string{"error": "no open edit session"})
	}
	switch kind {
	case model.KindCoaches:
		return h.saveCoach(c, intent)
	case model.KindCourses:
		return h.saveCourse(c, intent)
	case model.KindPlayers:
		return h.savePlayer(c, intent)
	case model.KindMatches:
		return h.saveMatch(c, intent)
	case model.KindVideos:
		return h.saveVideo(c, intent)
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": "unknown collection"})
}

func (h *Console) saveCoach(c echo.Context, intent session.Intent) error {
	body, ok := h.bindCoach(c)
	if !ok {
		return nil
	}
	var (
		saved  model.Coach
		err    error
		action = queue.ActionCreated
		status = http.StatusCreated
	)
	if intent.Update {
		saved, err = h.Registry.Coaches.Update(c.Request().Context(), intent.TargetID, body)
		action, status = queue.ActionUpdated, http.StatusOK
	} else {
		saved, err = h.Registry.Coaches.Create(c.Request().Context(), body)
	}
	if err != nil {
		return h.mutationError(c, err)
	}
	h.Sessions.Close(model.KindCoaches)
	h.publishChange(c, model.KindCoaches, action, saved.ID)
	return c.JSON(status, saved)
}

func (h *Console) saveCourse(c echo.Context, intent session.Intent) error {
	body, ok := h.bindCourse(c)
	if !ok {
		return nil
	}
	var (
		saved  model.Course
		err    error
		action = queue.ActionCreated
		status = http.StatusCreated
	)
	if intent.Update {
		saved, err = h.Registry.Courses.Update(c.Request().Context(), intent.TargetID, body)
		action, status = queue.ActionUpdated, http.StatusOK
	} else {
		saved, err = h.Registry.Courses.Create(c.Request().Context(), body)
	}
	if err != nil {
		return h.mutationError(c, err)
	}
	h.Sessions.Close(model.KindCourses)
	h.publishChange(c, model.KindCourses, action, saved.ID)
	return c.JSON(status, saved)
}

func (h *Console) savePlayer(c echo.Context, intent session.Intent) error {
	body, ok := h.bindPlayer(c)
	if !ok {
		return nil
	}
	var (
		saved  model.Player
		err    error
		action = queue.ActionCreated
		status = http.StatusCreated
	)
	if intent.Update {
		saved, err = h.Registry.Players.Update(c.Request().Context(), intent.TargetID, body)
		action, status = queue.ActionUpdated, http.StatusOK
	} else {
		saved, err = h.Registry.Players.Create(c.Request().Context(), body)
	}
	if err != nil {
		return h.mutationError(c, err)
	}
	h.Sessions.Close(model.KindPlayers)
	h.publishChange(c, model.KindPlayers, action, saved.ID)
	return c.JSON(status, saved)
}

func (h *Console) saveMatch(c echo.Context, intent session.Intent) error {
	body, ok := h.bindMatch(c)
	if !ok {
		return nil
	}
	var (
		saved  model.Match
		err    error
		action = queue.ActionCreated
		status = http.StatusCreated
	)
	if intent.Update {
		saved, err = h.Registry.Matches.Update(c.Request().Context(), intent.TargetID, body)
		action, status = queue.ActionUpdated, http.StatusOK
	} else {
		saved, err = h.Registry.Matches.Create(c.Request().Context(), body)
	}
	if err != nil {
		return h.mutationError(c, err)
	}
	h.Sessions.Close(model.KindMatches)
	h.publishChange(c, model.KindMatches, action, saved.ID)
	return c.JSON(status, saved)
}

func (h *Console) saveVideo(c echo.Context, intent session.Intent) error {
	body, ok := h.bindVideo(c)
	if !ok {
		return nil
	}
	var (
		saved  model.Video
		err    error
		action = queue.ActionCreated
		status = http.StatusCreated
	)
	if intent.Update {
		saved, err = h.Registry.Videos.Update(c.Request().Context(), intent.TargetID, body)
		action, status = queue.ActionUpdated, http.StatusOK
	} else {
		saved, err = h.Registry.Videos.Create(c.Request().Context(), body)
	}
	if err != nil {
		return h.mutationError(c, err)
	}
	h.Sessions.Close(model.KindVideos)
	h.publishChange(c, model.KindVideos, action, saved.ID)
	return c.JSON(status, saved)
}
