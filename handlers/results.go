// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/classkit/mission-market/middleware"
	"github.com/classkit/mission-market/models"
	"github.com/classkit/mission-market/render"
	"github.com/classkit/mission-market/session"
)

// exportHint mirrors the guidance the original tool shows when an image
// cannot be produced.
const exportHint = "브라우저의 인쇄 기능(Ctrl+P 또는 Cmd+P)으로 PDF로 저장하거나, 운영체제의 화면 캡처 도구를 사용하세요."

type ResultHandler struct {
	store    *session.Store
	renderer *render.Renderer
}

func NewResultHandler(store *session.Store, renderer *render.Renderer) *ResultHandler {
	return &ResultHandler{store: store, renderer: renderer}
}

// Summary handles GET /sessions/{id}/summary
// Only a result screen with a non-empty cart has a summary; an empty
// cart is a guarded warning state whose single exit is back to the shop.
func (h *ResultHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(h.store, w, r)
	if !ok {
		return
	}

	if s.CurrentScreen() != models.ScreenResult {
		middleware.ErrorResponse(w, http.StatusConflict, "Summary is only available on the result screen")
		return
	}
	if s.CartLen() == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "장바구니가 비어 있습니다. 쇼핑 화면으로 돌아가세요.")
		return
	}

	data := s.Summary()
	middleware.JSONResponse(w, http.StatusOK, models.SummaryResponse{
		Budget:     data.Budget,
		Lines:      data.Lines,
		Total:      data.Total,
		OverBudget: data.Total > data.Budget && data.Budget > 0,
		Reason:     data.Reason,
		ExportHint: exportHint,
	})
}

// ExportImage handles GET /sessions/{id}/summary.png
// Serves the summary as a downloadable PNG. A rendering failure degrades
// to the textual print/screenshot guidance; it never breaks the result
// screen.
func (h *ResultHandler) ExportImage(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(h.store, w, r)
	if !ok {
		return
	}

	if s.CurrentScreen() != models.ScreenResult {
		middleware.ErrorResponse(w, http.StatusConflict, "Summary is only available on the result screen")
		return
	}
	if s.CartLen() == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "장바구니가 비어 있습니다. 쇼핑 화면으로 돌아가세요.")
		return
	}

	img, err := h.renderer.Summary(s.Summary())
	if err != nil {
		slog.Error("summary image rendering failed", "session_id", s.ID, "error", err)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(exportHint))
		return
	}

	slog.Info("summary image exported", "session_id", s.ID, "bytes", len(img))

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", `attachment; filename="result.png"`)
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}

// ReturnToShop handles POST /sessions/{id}/return
// The only exit from an empty-cart result screen.
func (h *ResultHandler) ReturnToShop(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(h.store, w, r)
	if !ok {
		return
	}

	err := s.ReturnToShop()
	if errors.Is(err, session.ErrWrongScreen) {
		middleware.ErrorResponse(w, http.StatusConflict, "Returning to the shop is only available on the result screen")
		return
	}
	if errors.Is(err, session.ErrCartNotEmpty) {
		middleware.ErrorResponse(w, http.StatusConflict, "Cart is not empty; use reset to start over")
		return
	}
	if err != nil {
		slog.Error("failed to return to shop", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to return to shop")
		return
	}

	slog.Info("returned to shop", "session_id", s.ID)

	middleware.JSONResponse(w, http.StatusOK, s.View())
}
