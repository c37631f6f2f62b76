// Copyright (c) 2026 Classkit.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/classkit/mission-market/catalog"
	"github.com/classkit/mission-market/middleware"
	"github.com/classkit/mission-market/models"
	"github.com/classkit/mission-market/session"
)

type ShoppingHandler struct {
	store *session.Store
	cat   *catalog.Catalog
}

func NewShoppingHandler(store *session.Store, cat *catalog.Catalog) *ShoppingHandler {
	return &ShoppingHandler{store: store, cat: cat}
}

// SetQuantity handles PUT /sessions/{id}/cart
// Quantity edits are a self-loop on the shop screen: quantity 0 removes
// the line, a positive quantity upserts it with the product's current
// price. Entries for other categories are untouched — the cart is the
// union of commitments across all categories visited.
func (h *ShoppingHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(h.store, w, r)
	if !ok {
		return
	}

	var req models.SetQuantityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Quantity < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "quantity must be non-negative")
		return
	}

	p, found := h.cat.FindProduct(req.Category, req.Name)
	if !found {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown product: "+req.Name)
		return
	}

	err := s.SetQuantity(p, req.Quantity)
	if errors.Is(err, session.ErrWrongScreen) {
		middleware.ErrorResponse(w, http.StatusConflict, "Cart can only be edited on the shop screen")
		return
	}
	if err != nil {
		slog.Error("failed to set quantity", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	slog.Info("cart updated", "session_id", s.ID, "product", req.Name, "category", p.Category, "qty", req.Quantity)

	middleware.JSONResponse(w, http.StatusOK, s.View())
}

// Submit handles POST /sessions/{id}/submit
// Freezes the justification text and moves to the result screen. The
// cart may be empty; the result screen handles that case with a warning.
func (h *ShoppingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(h.store, w, r)
	if !ok {
		return
	}

	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := s.Submit(req.Reason)
	if errors.Is(err, session.ErrWrongScreen) {
		middleware.ErrorResponse(w, http.StatusConflict, "Submit is only available on the shop screen")
		return
	}
	if err != nil {
		slog.Error("failed to submit", "session_id", s.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit")
		return
	}

	slog.Info("session submitted", "session_id", s.ID, "cart_lines", s.CartLen())

	middleware.JSONResponse(w, http.StatusOK, s.View())
}
