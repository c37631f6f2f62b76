// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/classkit/mission-market/middleware"
	"github.com/classkit/mission-market/models"
	"github.com/classkit/mission-market/session"
)

type SessionHandler struct {
	store *session.Store
}

func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// Create handles POST /sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.store.Create()

	slog.Info("session created", "session_id", s.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: s.ID,
		Screen:    s.CurrentScreen(),
		Missions:  models.Missions(),
	})
}

// Get handles GET /sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, s.View())
}

// Reset handles POST /sessions/{id}/reset
// A full reset is available from every screen and restores the
// fresh-session defaults.
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, ok := h.lookup(w, r)
	if !ok {
		return
	}

	s.Reset()
	slog.Info("session reset", "session_id", s.ID)

	middleware.JSONResponse(w, http.StatusOK, s.View())
}

// lookup resolves the {id} path value to a session, writing the error
// response itself when the session is missing.
func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	return lookupSession(h.store, w, r)
}

func lookupSession(store *session.Store, w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}
	s, err := store.Get(id)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}
