// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/classkit/mission-market/middleware"
	"github.com/classkit/mission-market/models"
	"github.com/classkit/mission-market/session"
)

type MissionHandler struct {
	store *session.Store
}

func NewMissionHandler(store *session.Store) *MissionHandler {
	return &MissionHandler{store: store}
}

// List handles GET /missions
func (h *MissionHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MissionListResponse{
		Missions: models.Missions(),
	})
}

// Select handles POST /sessions/{id}/mission
// Confirming a mission sets the label and its budget together from the
// fixed tier table and moves the session to the shop screen.
func (h *MissionHandler) Select(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(h.store, w, r)
	if !ok {
		return
	}

	var req models.SelectMissionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Label == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "label is required")
		return
	}

	err := s.SelectMission(req.Label)
	if errors.Is(err, session.ErrUnknownMission) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown mission: "+req.Label)
		return
	}
	if errors.Is(err, session.ErrWrongScreen) {
		middleware.ErrorResponse(w, http.StatusConflict, "Mission can only be chosen on the start screen")
		return
	}
	if err != nil {
		slog.Error("failed to select mission", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to select mission")
		return
	}

	slog.Info("mission selected", "session_id", s.ID, "mission", req.Label, "budget", s.Budget)

	middleware.JSONResponse(w, http.StatusOK, s.View())
}
